package router

import (
	"meetup-planner/core/middleware"
	"meetup-planner/modules/venue/controller"

	"github.com/labstack/echo/v4"
)

type VenueRouter struct {
	VenueController *controller.VenueController
}

func NewVenueRouter(ctrl *controller.VenueController) *VenueRouter {
	return &VenueRouter{VenueController: ctrl}
}

func (r *VenueRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	venueRoutes := privateRoutes.Group("/venues", mw.AuthMiddleware())
	venueRoutes.POST("/recommend", r.VenueController.RecommendVenues)
	venueRoutes.GET("/:id", r.VenueController.GetVenue)
}
