package controller

import (
	"meetup-planner/core/controller"
	"meetup-planner/modules/notification/service"

	"github.com/labstack/echo/v4"
)

type InviteController struct {
	controller.BaseController
	InviteService service.InviteServiceInterface
}

func NewInviteController(svc service.InviteServiceInterface) *InviteController {
	return &InviteController{
		BaseController: controller.NewBaseController(),
		InviteService:  svc,
	}
}

// SendInvites handles POST /meetups/:id/invites
// @Summary Build invite links for a meetup
// @Description Returns one WhatsApp link per participant and queues the sent flag for each.
// @Tags Meetup
// @Security BearerAuth
// @Produce json
// @Param id path string true "Meetup ID"
// @Success 200 {object} dto.DispatchResponse
// @Failure 404 {object} errors.AppError
// @Router /private/meetups/{id}/invites [post]
func (c *InviteController) SendInvites(ctx echo.Context) error {
	ownerID, appErr := c.OwnerID(ctx)
	if appErr != nil {
		return c.Unauthorized(appErr.Code, appErr.Message)
	}

	result, appErr := c.InviteService.Dispatch(ctx.Request().Context(), ownerID, ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Invites ready")
}
