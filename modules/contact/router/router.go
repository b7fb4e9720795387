package router

import (
	"meetup-planner/core/middleware"
	"meetup-planner/modules/contact/controller"

	"github.com/labstack/echo/v4"
)

type ContactRouter struct {
	ContactController *controller.ContactController
}

func NewContactRouter(contactController *controller.ContactController) *ContactRouter {
	return &ContactRouter{ContactController: contactController}
}

func (r *ContactRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	contactRoutes := privateRoutes.Group("/contacts", mw.AuthMiddleware())
	contactRoutes.GET("", r.ContactController.ListContacts)
	contactRoutes.POST("", r.ContactController.CreateContact)
}
