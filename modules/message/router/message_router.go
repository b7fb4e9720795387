package router

import (
	"meetup-planner/core/middleware"
	"meetup-planner/modules/message/controller"

	"github.com/labstack/echo/v4"
)

type MessageRouter struct {
	MessageController *controller.MessageController
}

func NewMessageRouter(ctrl *controller.MessageController) *MessageRouter {
	return &MessageRouter{MessageController: ctrl}
}

func (r *MessageRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	messageRoutes := e.Group("/api/v1").Group("/private").Group("/messages", mw.AuthMiddleware())
	messageRoutes.POST("/preview", r.MessageController.PreviewInvites)
}
