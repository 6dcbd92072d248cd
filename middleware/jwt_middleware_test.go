package middleware

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, refreshToken, err := GenerateJWT("507f1f77bcf86cd799439011", "affiliate@example.com", "affiliate")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, token, refreshToken)

	claims := &JwtCustomClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	assert.Equal(t, "affiliate@example.com", claims.Email)
	assert.Equal(t, "affiliate", claims.UserType)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
}

func TestGenerateJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, _, err := GenerateJWT("507f1f77bcf86cd799439011", "user@example.com", "user")
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(token, &JwtCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("a-different-secret"), nil
	})
	assert.Error(t, err)
}

func TestTokenBlacklist(t *testing.T) {
	token := "some.jwt.token"
	assert.False(t, IsTokenBlacklisted(token))

	BlacklistToken(token, time.Now().Add(time.Hour))
	assert.True(t, IsTokenBlacklisted(token))
}

func TestTokenBlacklistSweepRemovesExpired(t *testing.T) {
	BlacklistToken("expired.token", time.Now().Add(-time.Minute))
	BlacklistToken("live.token", time.Now().Add(time.Hour))

	sweepExpiredTokens(time.Now())

	assert.False(t, IsTokenBlacklisted("expired.token"))
	assert.True(t, IsTokenBlacklisted("live.token"))
}

// Logout (write), authenticated requests (read) and the cleanup goroutine
// (delete) all touch the blacklist concurrently; run with -race.
func TestTokenBlacklistConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		token := fmt.Sprintf("concurrent.token.%d", i)

		wg.Add(3)
		go func() {
			defer wg.Done()
			BlacklistToken(token, time.Now().Add(time.Minute))
		}()
		go func() {
			defer wg.Done()
			IsTokenBlacklisted(token)
		}()
		go func() {
			defer wg.Done()
			sweepExpiredTokens(time.Now())
		}()
	}
	wg.Wait()

	assert.True(t, IsTokenBlacklisted("concurrent.token.0"))
}
