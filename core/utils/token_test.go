package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken("u1", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateAndParseToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}

func TestTokenWrongSecret(t *testing.T) {
	tok, err := GenerateToken("u1", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ValidateAndParseToken(tok, "other")
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	tok, err := GenerateToken("u1", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateAndParseToken(tok, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenFallsBackToSubject(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u9"}).SignedString([]byte("s"))
	require.NoError(t, err)

	claims, err := ValidateAndParseToken(tok, "s")
	require.NoError(t, err)
	assert.Equal(t, "u9", claims.UserID)
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
}
