package controller

import (
	"meetup-planner/core/controller"
	"meetup-planner/core/errors"
	"meetup-planner/modules/message/dto"
	"meetup-planner/modules/message/service"

	"github.com/labstack/echo/v4"
)

type MessageController struct {
	controller.BaseController
	MessageService service.MessageServiceInterface
}

func NewMessageController(svc service.MessageServiceInterface) *MessageController {
	return &MessageController{
		BaseController: controller.NewBaseController(),
		MessageService: svc,
	}
}

// PreviewInvites handles POST /messages/preview
// @Summary Compose invitations without sending them
// @Tags Message
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PreviewInvitesRequest true "Participants, venue and time"
// @Success 200 {array} dto.InvitePreview
// @Failure 400 {object} errors.AppError
// @Router /private/messages/preview [post]
func (c *MessageController) PreviewInvites(ctx echo.Context) error {
	ownerID, appErr := c.OwnerID(ctx)
	if appErr != nil {
		return c.Unauthorized(appErr.Code, appErr.Message)
	}

	var req dto.PreviewInvitesRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.MessageService.PreviewInvites(ctx.Request().Context(), ownerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
