package controller

import (
	"meetup-planner/core/controller"
	"meetup-planner/core/errors"
	"meetup-planner/modules/contact/dto"
	"meetup-planner/modules/contact/service"

	"github.com/labstack/echo/v4"
)

type ContactController struct {
	controller.BaseController
	ContactService service.ContactServiceInterface
}

func NewContactController(svc service.ContactServiceInterface) *ContactController {
	return &ContactController{
		BaseController: controller.NewBaseController(),
		ContactService: svc,
	}
}

// ListContacts handles GET /contacts
// @Summary List contacts
// @Tags Contact
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.ContactResponse
// @Router /private/contacts [get]
func (c *ContactController) ListContacts(ctx echo.Context) error {
	ownerID, appErr := c.OwnerID(ctx)
	if appErr != nil {
		return c.Unauthorized(appErr.Code, appErr.Message)
	}

	result, appErr := c.ContactService.ListContacts(ctx.Request().Context(), ownerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// CreateContact handles POST /contacts
// @Summary Create a contact
// @Tags Contact
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Contact"
// @Success 200 {object} dto.ContactResponse
// @Router /private/contacts [post]
func (c *ContactController) CreateContact(ctx echo.Context) error {
	ownerID, appErr := c.OwnerID(ctx)
	if appErr != nil {
		return c.Unauthorized(appErr.Code, appErr.Message)
	}

	var req dto.CreateContactRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ContactService.CreateContact(ctx.Request().Context(), ownerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Contact created successfully")
}
