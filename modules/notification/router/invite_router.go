package router

import (
	"meetup-planner/core/middleware"
	"meetup-planner/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

type InviteRouter struct {
	InviteController *controller.InviteController
}

func NewInviteRouter(ctrl *controller.InviteController) *InviteRouter {
	return &InviteRouter{InviteController: ctrl}
}

func (r *InviteRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	inviteRoutes := e.Group("/api/v1").Group("/private").Group("/meetups", mw.AuthMiddleware())
	inviteRoutes.POST("/:id/invites", r.InviteController.SendInvites)
}
