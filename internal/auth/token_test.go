package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestTokenTTL(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"userId": "user-1",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	ttl, ok := TokenTTL(token)
	assert.True(t, ok)
	assert.Greater(t, ttl, 55*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestTokenTTL_Expired(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, ok := TokenTTL(token)
	assert.False(t, ok)
}

func TestTokenTTL_NoExpClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"userId": "user-1"})

	_, ok := TokenTTL(token)
	assert.False(t, ok)
}

func TestTokenTTL_Garbage(t *testing.T) {
	_, ok := TokenTTL("not-a-jwt")
	assert.False(t, ok)
}
