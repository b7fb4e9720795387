package router

import (
	"meetup-planner/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	AuthController *controller.AuthController
}

func NewAuthRouter(ctrl *controller.AuthController) *AuthRouter {
	return &AuthRouter{AuthController: ctrl}
}

func (r *AuthRouter) Setup(e *echo.Echo) {
	publicRoutes := e.Group("/api/v1").Group("/public")

	authRoutes := publicRoutes.Group("/auth")
	authRoutes.GET("/google", r.AuthController.GoogleAuth)
	authRoutes.GET("/google/callback", r.AuthController.GoogleCallback)
}
