package meetup

import (
	"meetup-planner/core/database"
	"meetup-planner/core/middleware"
	"meetup-planner/modules/meetup/controller"
	"meetup-planner/modules/meetup/repository"
	"meetup-planner/modules/meetup/router"
	"meetup-planner/modules/meetup/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, contacts service.ContactResolver) service.MeetupServiceInterface {
	repo := repository.NewMeetupRepository(db)
	svc := service.NewMeetupService(repo, contacts)
	ctrl := controller.NewMeetupController(svc)
	rtr := router.NewMeetupRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
