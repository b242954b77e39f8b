package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/devconnect-api/internal/container"
	handlers "github.com/devconnect/devconnect-api/internal/interface/http"
	"github.com/devconnect/devconnect-api/internal/interface/middleware"
	"github.com/devconnect/devconnect-api/pkg/helpers"
)

// UserModule wires registration and login.
// Public: POST /api/users, POST /api/auth
// Protected: GET /api/auth, POST /api/users/avatar

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.POST("/auth", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/auth", m.Handler.Current)
		auth.POST("/users/avatar", m.Handler.UploadAvatar)
	}
}
