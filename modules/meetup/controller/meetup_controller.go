package controller

import (
	"meetup-planner/core/controller"
	"meetup-planner/core/errors"
	"meetup-planner/modules/meetup/dto"
	"meetup-planner/modules/meetup/service"

	"github.com/labstack/echo/v4"
)

type MeetupController struct {
	controller.BaseController
	MeetupService service.MeetupServiceInterface
}

func NewMeetupController(svc service.MeetupServiceInterface) *MeetupController {
	return &MeetupController{
		BaseController: controller.NewBaseController(),
		MeetupService:  svc,
	}
}

// ConfirmMeetup handles POST /meetups
// @Summary Confirm a meetup
// @Description Creates a confirmed meetup and one participant link per contact. Not idempotent.
// @Tags Meetup
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ConfirmMeetupRequest true "Venue, date, time and contacts"
// @Success 200 {object} dto.MeetupResponse
// @Failure 400 {object} errors.AppError
// @Router /private/meetups [post]
func (c *MeetupController) ConfirmMeetup(ctx echo.Context) error {
	ownerID, appErr := c.OwnerID(ctx)
	if appErr != nil {
		return c.Unauthorized(appErr.Code, appErr.Message)
	}

	var req dto.ConfirmMeetupRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.MeetupService.Confirm(ctx.Request().Context(), ownerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Meetup confirmed")
}

// ListMeetups handles GET /meetups
// @Summary List the caller's meetups
// @Tags Meetup
// @Security BearerAuth
// @Produce json
// @Success 200 {array} entity.Meetup
// @Router /private/meetups [get]
func (c *MeetupController) ListMeetups(ctx echo.Context) error {
	ownerID, appErr := c.OwnerID(ctx)
	if appErr != nil {
		return c.Unauthorized(appErr.Code, appErr.Message)
	}

	result, appErr := c.MeetupService.ListMeetups(ctx.Request().Context(), ownerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetMeetup handles GET /meetups/:id
func (c *MeetupController) GetMeetup(ctx echo.Context) error {
	ownerID, appErr := c.OwnerID(ctx)
	if appErr != nil {
		return c.Unauthorized(appErr.Code, appErr.Message)
	}

	result, appErr := c.MeetupService.GetMeetup(ctx.Request().Context(), ownerID, ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// MarkMessageSent handles PUT /meetups/:id/participants/:contactId/sent
func (c *MeetupController) MarkMessageSent(ctx echo.Context) error {
	ownerID, appErr := c.OwnerID(ctx)
	if appErr != nil {
		return c.Unauthorized(appErr.Code, appErr.Message)
	}

	result, appErr := c.MeetupService.MarkMessageSent(ctx.Request().Context(), ownerID, ctx.Param("id"), ctx.Param("contactId"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
