package controller

import (
	"meetup-planner/core/controller"
	"meetup-planner/core/errors"
	"meetup-planner/modules/venue/dto"
	"meetup-planner/modules/venue/service"

	"github.com/labstack/echo/v4"
)

type VenueController struct {
	controller.BaseController
	VenueService service.VenueServiceInterface
}

func NewVenueController(svc service.VenueServiceInterface) *VenueController {
	return &VenueController{
		BaseController: controller.NewBaseController(),
		VenueService:   svc,
	}
}

// RecommendVenues handles POST /venues/recommend
// @Summary Rank venues for a group
// @Tags Venue
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RecommendVenuesRequest true "Contacts and optional location"
// @Success 200 {object} dto.RecommendVenuesResponse
// @Failure 502 {object} errors.AppError
// @Router /private/venues/recommend [post]
func (c *VenueController) RecommendVenues(ctx echo.Context) error {
	ownerID, appErr := c.OwnerID(ctx)
	if appErr != nil {
		return c.Unauthorized(appErr.Code, appErr.Message)
	}

	var req dto.RecommendVenuesRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.VenueService.RecommendVenues(ctx.Request().Context(), ownerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetVenue handles GET /venues/:id
func (c *VenueController) GetVenue(ctx echo.Context) error {
	result, appErr := c.VenueService.GetVenue(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
