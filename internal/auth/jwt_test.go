package auth

import (
	"testing"
	"time"

	"holocron/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Minute,
		Issuer: "holocron",
	}
}

func TestAccessToken_RoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateAccessToken(cfg, 7, "Luke Skywalker", "luke@rebellion.org")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Luke Skywalker", claims.Name)
	assert.Equal(t, "luke@rebellion.org", claims.Email)
	assert.Equal(t, "holocron", claims.Issuer)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateAccessToken(cfg, 7, "Luke Skywalker", "luke@rebellion.org")
	require.NoError(t, err)

	other := &config.JWTConfig{Secret: "another-secret", Expiry: time.Minute, Issuer: "holocron"}
	_, err = ParseAccessToken(other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_Expired(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Expiry: -time.Minute, Issuer: "holocron"}
	token, err := GenerateAccessToken(cfg, 7, "Luke Skywalker", "luke@rebellion.org")
	require.NoError(t, err)

	_, err = ParseAccessToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_Garbage(t *testing.T) {
	_, err := ParseAccessToken(testJWTConfig(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
