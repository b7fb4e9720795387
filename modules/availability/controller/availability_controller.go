package controller

import (
	"meetup-planner/core/controller"
	"meetup-planner/core/errors"
	"meetup-planner/modules/availability/dto"
	"meetup-planner/modules/availability/service"

	"github.com/labstack/echo/v4"
)

type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
}

func NewAvailabilityController(svc service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
	}
}

type slotsFunc func(c *AvailabilityController, ctx echo.Context, ownerID string, ids []string) (*dto.FindSlotsResponse, *errors.AppError)

func (c *AvailabilityController) handleSlots(ctx echo.Context, fn slotsFunc) error {
	ownerID, appErr := c.OwnerID(ctx)
	if appErr != nil {
		return c.Unauthorized(appErr.Code, appErr.Message)
	}

	var req dto.FindSlotsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := fn(c, ctx, ownerID, req.ContactIDs)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Slots found")
}

// FindCommonSlots handles POST /slots/common
// @Summary Windows when every contact is free
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.FindSlotsRequest true "Contacts"
// @Success 200 {object} dto.FindSlotsResponse
// @Failure 503 {object} errors.AppError
// @Router /private/slots/common [post]
func (c *AvailabilityController) FindCommonSlots(ctx echo.Context) error {
	return c.handleSlots(ctx, func(c *AvailabilityController, ctx echo.Context, ownerID string, ids []string) (*dto.FindSlotsResponse, *errors.AppError) {
		return c.AvailabilityService.FindCommonSlots(ctx.Request().Context(), ownerID, ids)
	})
}

// FindCoverageSlots handles POST /slots/coverage
// @Summary Windows with who can attend each
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.FindSlotsRequest true "Contacts"
// @Success 200 {object} dto.FindSlotsResponse
// @Router /private/slots/coverage [post]
func (c *AvailabilityController) FindCoverageSlots(ctx echo.Context) error {
	return c.handleSlots(ctx, func(c *AvailabilityController, ctx echo.Context, ownerID string, ids []string) (*dto.FindSlotsResponse, *errors.AppError) {
		return c.AvailabilityService.FindCoverageSlots(ctx.Request().Context(), ownerID, ids)
	})
}

// PreviewSlots handles POST /slots/preview
func (c *AvailabilityController) PreviewSlots(ctx echo.Context) error {
	return c.handleSlots(ctx, func(c *AvailabilityController, ctx echo.Context, ownerID string, ids []string) (*dto.FindSlotsResponse, *errors.AppError) {
		return c.AvailabilityService.PreviewSlots(ctx.Request().Context(), ownerID, ids)
	})
}

// SetAvailability handles PUT /contacts/:id/availability
// @Summary Replace a contact's availability
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Param id path string true "Contact ID"
// @Param request body dto.SetAvailabilityRequest true "Windows"
// @Success 200 {object} map[string]string
// @Router /private/contacts/{id}/availability [put]
func (c *AvailabilityController) SetAvailability(ctx echo.Context) error {
	ownerID, appErr := c.OwnerID(ctx)
	if appErr != nil {
		return c.Unauthorized(appErr.Code, appErr.Message)
	}

	var req dto.SetAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.AvailabilityService.SetAvailability(ctx.Request().Context(), ownerID, ctx.Param("id"), &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Availability saved")
}
