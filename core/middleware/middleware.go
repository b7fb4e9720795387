package middleware

import (
	stderrors "errors"
	"net/http"
	"strings"

	"meetup-planner/core/constants"
	"meetup-planner/core/controller"
	"meetup-planner/core/errors"
	"meetup-planner/core/logger"
	"meetup-planner/core/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type Middleware struct {
	jwtSecret string
}

func NewMiddleware(jwtSecret string) *Middleware {
	return &Middleware{jwtSecret: jwtSecret}
}

// ParseBearer validates an "Authorization: Bearer <token>" header value.
func (m *Middleware) ParseBearer(header string) (*utils.TokenClaims, *errors.AppError) {
	if header == "" {
		return nil, errors.NewAppError(errors.ErrMissingAuthorizationHeader, "Missing authorization header", nil)
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "Invalid token format", nil)
	}

	claims, err := utils.ValidateAndParseToken(token, m.jwtSecret)
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.NewAppError(errors.ErrTokenExpired, "Token expired", err)
		}
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token", err)
	}
	return claims, nil
}

func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, appErr := m.ParseBearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if appErr != nil {
				logger.Warn("Middleware:AuthMiddleware:Rejected", "code", appErr.Code, "path", c.Path())
				return controller.NewErrorResponse(http.StatusUnauthorized, appErr.Code, appErr.Message)
			}
			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

func (m *Middleware) RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(constants.HeaderRequestID)
			if id == "" {
				id = utils.GenerateID()
			}
			c.Set(constants.ContextRequestID, id)
			c.Response().Header().Set(constants.HeaderRequestID, id)
			return next(c)
		}
	}
}
