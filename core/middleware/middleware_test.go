package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meetup-planner/core/constants"
	"meetup-planner/core/errors"
	"meetup-planner/core/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (echo.Context, *httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	return c, rec, err
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	m := NewMiddleware("secret")
	tok, err := utils.GenerateToken("u1", "secret", time.Hour)
	require.NoError(t, err)

	c, rec, err := run(t, m.AuthMiddleware(), "Bearer "+tok)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
	require.True(t, ok)
	assert.Equal(t, "u1", claims.UserID)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	m := NewMiddleware("secret")
	expired, err := utils.GenerateToken("u1", "secret", -time.Minute)
	require.NoError(t, err)

	cases := map[string]string{
		"missing header": "",
		"no bearer":      "Token abc",
		"garbage":        "Bearer abc",
		"expired":        "Bearer " + expired,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := run(t, m.AuthMiddleware(), header)
			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		})
	}
}

func TestParseBearerCodes(t *testing.T) {
	m := NewMiddleware("secret")

	_, appErr := m.ParseBearer("")
	assert.Equal(t, errors.ErrMissingAuthorizationHeader, appErr.Code)

	_, appErr = m.ParseBearer("Basic xyz")
	assert.Equal(t, errors.ErrInvalidTokenFormat, appErr.Code)
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	m := NewMiddleware("secret")

	c, rec, err := run(t, m.RequestID(), "")
	require.NoError(t, err)

	id, _ := c.Get(constants.ContextRequestID).(string)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, rec.Header().Get(constants.HeaderRequestID))
}
