package controller

import (
	stderrors "errors"
	"net/http"
	"time"

	"meetup-planner/core/constants"
	"meetup-planner/core/errors"
	"meetup-planner/core/logger"
	"meetup-planner/core/utils"

	"github.com/labstack/echo/v4"
)

type (
	SuccessResponse struct {
		Status    int       `json:"status"`
		Message   string    `json:"message"`
		Data      any       `json:"data,omitempty"`
		Timestamp time.Time `json:"timestamp"`
	}

	ErrorResponse struct {
		Status    string           `json:"status"`
		Code      errors.ErrorCode `json:"code"`
		Message   string           `json:"message"`
		Details   any              `json:"details,omitempty"`
		Timestamp time.Time        `json:"timestamp"`
	}
)

type BaseController interface {
	BadRequest(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	NotFound(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	Unauthorized(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	SuccessResponse(c echo.Context, data any, message string) error
	ErrorResponse(c echo.Context, err error) error
	OwnerID(c echo.Context) (string, *errors.AppError)
}

type responseHandler struct{}

func NewBaseController() BaseController {
	return &responseHandler{}
}

func NewSuccessResponse(httpStatusCode int, data any, message string) *SuccessResponse {
	return &SuccessResponse{
		Status:    httpStatusCode,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

func NewErrorResponse(httpStatusCode int, appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	err := &ErrorResponse{
		Status:    "error",
		Code:      appErrCode,
		Message:   message,
		Timestamp: time.Now(),
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return echo.NewHTTPError(httpStatusCode, err)
}

// StatusFor maps an application error code to its HTTP status.
func StatusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrInvalidInput, errors.ErrInvalidRequestData:
		return http.StatusBadRequest
	case errors.ErrUnauthorized, errors.ErrTokenExpired, errors.ErrInvalidTokenFormat, errors.ErrMissingAuthorizationHeader:
		return http.StatusUnauthorized
	case errors.ErrForbidden:
		return http.StatusForbidden
	case errors.ErrNotFound:
		return http.StatusNotFound
	case errors.ErrAlreadyExists:
		return http.StatusConflict
	case errors.ErrStoreRead:
		return http.StatusServiceUnavailable
	case errors.ErrVenueParse, errors.ErrVenueService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *responseHandler) BadRequest(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusBadRequest, appErrCode, message, details...)
}

func (h *responseHandler) NotFound(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusNotFound, appErrCode, message, details...)
}

func (h *responseHandler) Unauthorized(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusUnauthorized, appErrCode, message, details...)
}

func (h *responseHandler) SuccessResponse(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusOK, NewSuccessResponse(http.StatusOK, data, message))
}

func (h *responseHandler) ErrorResponse(c echo.Context, err error) error {
	httpStatus := http.StatusInternalServerError
	appCode := errors.ErrInternalServer
	msg := "internal server error"

	var ae *errors.AppError
	if stderrors.As(err, &ae) && ae != nil {
		appCode = ae.Code
		httpStatus = StatusFor(appCode)
		if ae.Message != "" {
			msg = ae.Message
		}
	} else if err != nil && err.Error() != "" {
		msg = err.Error()
	}

	logger.Error("BaseController:ErrorResponse",
		"status", httpStatus,
		"code", appCode,
		"message", msg,
		"request_id", c.Get(constants.ContextRequestID),
	)
	return NewErrorResponse(httpStatus, appCode, msg)
}

// OwnerID reads the authenticated user id placed by the auth middleware.
func (h *responseHandler) OwnerID(c echo.Context) (string, *errors.AppError) {
	claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok || claims == nil || claims.UserID == "" {
		return "", errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}
	return claims.UserID, nil
}
