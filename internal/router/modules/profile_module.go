package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/devconnect-api/internal/container"
	handlers "github.com/devconnect/devconnect-api/internal/interface/http"
	"github.com/devconnect/devconnect-api/internal/interface/middleware"
	"github.com/devconnect/devconnect-api/pkg/helpers"
)

// ProfileModule wires the profile aggregate routes.
// Public: GET /api/profiles, GET /api/profiles/users/:user_id,
// GET /api/profiles/github/:username, GET /api/profiles/search
// Protected: everything that mutates, plus GET /api/profiles/me.

type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	githubLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/profiles", m.Handler.GetAll)
	rg.GET("/profiles/search", m.Handler.Search)
	rg.GET("/profiles/users/:user_id", m.Handler.GetByUser)
	rg.GET("/profiles/github/:username", githubLimiter, m.Handler.Github)

	auth := rg.Group("/profiles")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/me", m.Handler.Me)
		auth.POST("", m.Handler.Upsert)
		auth.DELETE("", m.Handler.Delete)

		auth.PUT("/experience", m.Handler.AddExperience)
		auth.PUT("/experience/:exp_id", m.Handler.UpdateExperience)
		auth.DELETE("/experience/:exp_id", m.Handler.RemoveExperience)

		auth.PUT("/education", m.Handler.AddEducation)
		auth.PUT("/education/:edu_id", m.Handler.UpdateEducation)
		auth.DELETE("/education/:edu_id", m.Handler.RemoveEducation)
	}
}
