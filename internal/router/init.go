package router

import (
	"github.com/devconnect/devconnect-api/internal/application"
	"github.com/devconnect/devconnect-api/internal/container"
	pginfra "github.com/devconnect/devconnect-api/internal/infrastructure/postgres"
	handlers "github.com/devconnect/devconnect-api/internal/interface/http"
	"github.com/devconnect/devconnect-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	userRepo := pginfra.NewUserRepository(pool)
	profileRepo := pginfra.NewProfileRepository(pool)
	postRepo := pginfra.NewPostRepository(pool)

	userSvc := application.NewUserService(
		userRepo,
		container.GetJWT(),
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetRabbitPub(),
		logger,
	)
	profileSvc := application.NewProfileService(
		profileRepo,
		userRepo,
		logger,
		container.GetES(),
		cfg.ESProfilesIndex,
		container.GetGithub(),
		container.GetRedis(),
	)
	postSvc := application.NewPostService(postRepo, userRepo, logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), container.GetJWT()))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(profileSvc, logger), container.GetJWT()))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), container.GetJWT()))
	r.Add(modules.NewDebugModule())
}
