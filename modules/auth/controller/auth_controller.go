package controller

import (
	"net/http"

	"meetup-planner/core/controller"
	"meetup-planner/core/errors"
	"meetup-planner/core/logger"
	"meetup-planner/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(svc service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    svc,
	}
}

// GoogleAuth redirects the user to the Google consent page
// @Summary Start Google sign-in
// @Tags Auth
// @Success 302
// @Router /public/auth/google [get]
func (c *AuthController) GoogleAuth(ctx echo.Context) error {
	authURL, appErr := c.AuthService.GetAuthURL(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return ctx.Redirect(http.StatusFound, authURL)
}

// GoogleCallback exchanges the code and returns an access token
// @Summary Finish Google sign-in
// @Tags Auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "State issued by /public/auth/google"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} errors.AppError
// @Router /public/auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx echo.Context) error {
	if e := ctx.QueryParam("error"); e != "" {
		logger.Warn("AuthController:GoogleCallback:ProviderError", "error", e, "description", ctx.QueryParam("error_description"))
		return c.BadRequest(errors.ErrInvalidRequestData, "Google sign-in error: "+e)
	}

	code, state := ctx.QueryParam("code"), ctx.QueryParam("state")
	if code == "" || state == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "code and state are required")
	}

	result, appErr := c.AuthService.HandleCallback(ctx.Request().Context(), code, state)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Signed in")
}
