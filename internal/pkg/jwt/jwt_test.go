package jwt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenClaims(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "168h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("4321", "Maria Santos", true)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "4321", claims["employee_id"])
	assert.Equal(t, "Maria Santos", claims["name"])
	assert.Equal(t, true, claims["is_admin"])
	assert.Equal(t, TypeAccess, claims["type"])
	assert.Greater(t, expiresAt, int64(0))
}

func TestRefreshTokenClaims(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "168h")

	tokenString, _, err := svc.GenerateRefreshToken("4321")
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "4321", claims["employee_id"])
	assert.Equal(t, TypeRefresh, claims["type"])
	assert.NotContains(t, claims, "is_admin")
}

func TestInvalidTTLFallsBack(t *testing.T) {
	svc := NewJWTService("test-secret", "bogus", "-1h")

	_, _, err := svc.GenerateAccessToken("4321", "Maria Santos", false)
	assert.NoError(t, err)
}

func TestRevocation(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "168h")

	tokenString, _, err := svc.GenerateRefreshToken("4321")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}

func TestRefreshTokenCookieScope(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "168h")

	cookie := svc.RefreshTokenCookie("some-token", 1790000000)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}
