package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, c.Server.Port)
	assert.Equal(t, "weekly", c.Availability.Representation)
	assert.Equal(t, 4, c.Availability.ProjectionCount)
	assert.Equal(t, "catalog", c.Venue.Source)
	assert.Equal(t, 5, c.Venue.MaxResults)
	assert.Equal(t, 30*time.Minute, c.Venue.CacheTTL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AVAILABILITY_REPRESENTATION", "dated")
	t.Setenv("DATABASE_PORT", "6543")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dated", c.Availability.Representation)
	assert.Equal(t, 6543, c.Database.Port)
}

func TestDatabaseURLs(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", d.DSN())
	assert.Equal(t, "postgres://u:p@db:5432/n?sslmode=disable", d.URL())
}

func TestGetSafeBeforeInit(t *testing.T) {
	Set(nil)
	_, ok := GetSafe()
	assert.False(t, ok)

	Set(&Config{Env: "production"})
	c, ok := GetSafe()
	require.True(t, ok)
	assert.True(t, c.IsProduction())
}
