package auth

import (
	"meetup-planner/core/cache"
	"meetup-planner/core/config"
	"meetup-planner/core/logger"
	"meetup-planner/modules/auth/controller"
	"meetup-planner/modules/auth/router"
	"meetup-planner/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init registers Google sign-in. It is skipped when Google credentials are
// missing or there is no cache to hold the sign-in state.
func Init(e *echo.Echo, c cache.Cache, cfg config.AuthConfig, jwtSecret string) service.AuthServiceInterface {
	if !cfg.GoogleEnabled() {
		logger.Info("Auth:Init:Skipped", "reason", "google credentials not configured")
		return nil
	}
	if c == nil {
		logger.Warn("Auth:Init:Skipped", "reason", "cache unavailable")
		return nil
	}

	svc := service.NewAuthService(service.NewGoogleProvider(cfg), c, jwtSecret, cfg.TokenTTL)
	router.NewAuthRouter(controller.NewAuthController(svc)).Setup(e)
	return svc
}
