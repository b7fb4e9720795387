package router

import (
	"meetup-planner/core/middleware"
	"meetup-planner/modules/meetup/controller"

	"github.com/labstack/echo/v4"
)

type MeetupRouter struct {
	MeetupController *controller.MeetupController
}

func NewMeetupRouter(ctrl *controller.MeetupController) *MeetupRouter {
	return &MeetupRouter{MeetupController: ctrl}
}

func (r *MeetupRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	meetupRoutes := privateRoutes.Group("/meetups", mw.AuthMiddleware())
	meetupRoutes.POST("", r.MeetupController.ConfirmMeetup)
	meetupRoutes.GET("", r.MeetupController.ListMeetups)
	meetupRoutes.GET("/:id", r.MeetupController.GetMeetup)
	meetupRoutes.PUT("/:id/participants/:contactId/sent", r.MeetupController.MarkMessageSent)
}
