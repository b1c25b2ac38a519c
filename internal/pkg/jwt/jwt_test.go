package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTService_InvalidDuration(t *testing.T) {
	_, err := NewJWTService("secret", "soon", "24h")
	assert.Error(t, err)

	_, err = NewJWTService("secret", "1h", "")
	assert.Error(t, err)
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc, err := NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	require.NoError(t, err)

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "jdoe", "jdoe@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "jdoe", claims["username"])
	assert.Equal(t, TokenTypeAccess, claims["type"])
}

func TestGenerateRefreshToken_Unique(t *testing.T) {
	svc, err := NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	require.NoError(t, err)

	first, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	second, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), first)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims["type"])
}

func TestRefreshTokenCookie(t *testing.T) {
	svc, err := NewJWTService("secret", "1h", "24h")
	require.NoError(t, err)

	cookie := svc.RefreshTokenCookie("abc", 1700000000)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "abc", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int64(1700000000), cookie.Expires.Unix())
}
