package venue

import (
	"context"

	"meetup-planner/core/cache"
	"meetup-planner/core/config"
	"meetup-planner/core/database"
	"meetup-planner/core/logger"
	"meetup-planner/core/middleware"
	"meetup-planner/modules/venue/controller"
	"meetup-planner/modules/venue/repository"
	"meetup-planner/modules/venue/router"
	"meetup-planner/modules/venue/service"

	"github.com/labstack/echo/v4"
)

// Init wires venue matching. The generative recommender is only built when
// configured; c may be nil to disable caching.
func Init(ctx context.Context, e *echo.Echo, db database.IDatabase, c cache.Cache, mw *middleware.Middleware, cfg config.VenueConfig, contacts service.ContactResolver) (service.VenueServiceInterface, error) {
	repo := repository.NewVenueRepository(db)

	var recommender service.Recommender
	if cfg.Source == "gemini" {
		gemini, err := service.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		recommender = service.NewGenerativeRecommender(gemini)
		if c != nil {
			recommender = service.NewCachedRecommender(recommender, c, cfg.CacheTTL)
		}
		logger.Info("Venue:Init", "source", cfg.Source, "model", cfg.GeminiModel, "cached", c != nil)
	} else {
		logger.Info("Venue:Init", "source", service.SourceCatalog)
	}

	svc := service.NewVenueService(repo, recommender, contacts, cfg.MaxResults, cfg.DefaultLocation)
	ctrl := controller.NewVenueController(svc)
	rtr := router.NewVenueRouter(ctrl)

	rtr.Setup(e, mw)
	return svc, nil
}
