package router

import (
	"meetup-planner/core/middleware"
	"meetup-planner/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

type AvailabilityRouter struct {
	AvailabilityController *controller.AvailabilityController
}

func NewAvailabilityRouter(ctrl *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{AvailabilityController: ctrl}
}

func (r *AvailabilityRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	slotRoutes := privateRoutes.Group("/slots", mw.AuthMiddleware())
	slotRoutes.POST("/common", r.AvailabilityController.FindCommonSlots)
	slotRoutes.POST("/coverage", r.AvailabilityController.FindCoverageSlots)
	slotRoutes.POST("/preview", r.AvailabilityController.PreviewSlots)

	contactRoutes := privateRoutes.Group("/contacts", mw.AuthMiddleware())
	contactRoutes.PUT("/:id/availability", r.AvailabilityController.SetAvailability)
}
