package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"meetup-planner/core/config"
	"meetup-planner/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopQueue struct{}

func (nopQueue) Enqueue(context.Context, string, any) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Env:          "test",
		JWT:          config.JWTConfig{Secret: "secret"},
		Availability: config.AvailabilityConfig{Representation: "weekly", ProjectionCount: 4},
		Venue:        config.VenueConfig{Source: "catalog", MaxResults: 5},
		Message:      config.MessageConfig{Locale: "en"},
	}
}

func TestBuildRegistersRoutes(t *testing.T) {
	raw, _, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	e, err := build(context.Background(), testConfig(), database.New(sqlx.NewDb(raw, "sqlmock")), nil, nopQueue{}, nil)
	require.NoError(t, err)

	routes := map[string]bool{}
	for _, r := range e.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /health",
		"GET /api/v1/private/contacts",
		"POST /api/v1/private/slots/common",
		"POST /api/v1/private/slots/coverage",
		"POST /api/v1/private/slots/preview",
		"POST /api/v1/private/venues/recommend",
		"POST /api/v1/private/messages/preview",
		"POST /api/v1/private/meetups",
		"GET /api/v1/private/meetups/:id",
		"POST /api/v1/private/meetups/:id/invites",
		"PUT /api/v1/private/meetups/:id/participants/:contactId/sent",
		"POST /mcp",
	} {
		assert.True(t, routes[want], want)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/private/meetups", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealth(t *testing.T) {
	raw, _, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	e, err := build(context.Background(), testConfig(), database.New(sqlx.NewDb(raw, "sqlmock")), nil, nopQueue{}, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["database"])
	assert.Equal(t, "disabled", body["cache"])
}
