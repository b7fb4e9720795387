package availability

import (
	"meetup-planner/core/config"
	"meetup-planner/core/database"
	"meetup-planner/core/logger"
	"meetup-planner/core/middleware"
	"meetup-planner/modules/availability/controller"
	"meetup-planner/modules/availability/repository"
	"meetup-planner/modules/availability/router"
	"meetup-planner/modules/availability/service"

	"github.com/labstack/echo/v4"
)

// Init wires the slot engine for the configured availability representation.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, cfg config.AvailabilityConfig, contacts service.ContactResolver) (service.AvailabilityServiceInterface, error) {
	repo := repository.NewAvailabilityRepository(db)
	strategy, err := service.NewStrategy(cfg.Representation, repo, cfg.ProjectionCount)
	if err != nil {
		return nil, err
	}
	logger.Info("Availability:Init", "representation", strategy.Name(), "projection_count", cfg.ProjectionCount)

	svc := service.NewAvailabilityService(repo, strategy, contacts, cfg.PreviewFallback)
	ctrl := controller.NewAvailabilityController(svc)
	rtr := router.NewAvailabilityRouter(ctrl)

	rtr.Setup(e, mw)
	return svc, nil
}
