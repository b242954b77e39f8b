package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/devconnect-api/internal/container"
	handlers "github.com/devconnect/devconnect-api/internal/interface/http"
	"github.com/devconnect/devconnect-api/internal/interface/middleware"
	"github.com/devconnect/devconnect-api/pkg/helpers"
)

// PostModule wires the post aggregate routes; every route requires auth.

type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/posts")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.GetAll)
		auth.GET("/:id", m.Handler.GetByID)
		auth.DELETE("/:id", m.Handler.Delete)

		auth.PUT("/like/:id", m.Handler.Like)
		auth.PUT("/unlike/:id", m.Handler.Unlike)

		auth.POST("/comment/:id", m.Handler.AddComment)
		auth.DELETE("/comment/:post_id/:comment_id", m.Handler.RemoveComment)
	}
}
