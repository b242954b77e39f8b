package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/devconnect-api/pkg/helpers"
	"github.com/devconnect/devconnect-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth resolves the bearer credential to a user id and injects it into the
// Gin context. Verification is pure: no store access happens before or during
// resolution, so an unauthenticated call never touches persistence.
//
// The token is read from "Authorization: Bearer <token>", with the legacy
// "x-auth-token" header accepted for older clients.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			response.AbortWith(c, http.StatusUnauthorized, "No token, authorization denied")
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			response.AbortWith(c, http.StatusUnauthorized, "Token is not valid")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if strings.HasPrefix(h, "Bearer ") {
			return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		}
	}
	return strings.TrimSpace(c.GetHeader("x-auth-token"))
}
