package contact

import (
	"meetup-planner/core/database"
	"meetup-planner/core/middleware"
	"meetup-planner/modules/contact/controller"
	"meetup-planner/modules/contact/repository"
	"meetup-planner/modules/contact/router"
	"meetup-planner/modules/contact/service"

	"github.com/labstack/echo/v4"
)

// Init registers contact routes and returns the service for other modules.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) service.ContactServiceInterface {
	repo := repository.NewContactRepository(db)
	svc := service.NewContactService(repo)
	ctrl := controller.NewContactController(svc)
	rtr := router.NewContactRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
