package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.Header.Set("X-Real-IP", "203.0.113.7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter()
	e.Use(limiter.RateLimit())
	e.POST("/api/wallet/withdraw", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// The withdraw endpoint allows a burst of 3
	for i := 0; i < 3; i++ {
		rec := performRequest(e, "/api/wallet/withdraw")
		require.Equal(t, http.StatusOK, rec.Code, "request %d within burst", i+1)
	}

	rec := performRequest(e, "/api/wallet/withdraw")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Once blocked, the IP stays blocked
	rec = performRequest(e, "/api/wallet/withdraw")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimitAllowsDistinctIPs(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter()
	e.Use(limiter.RateLimit())
	e.POST("/api/wallet/withdraw", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/wallet/withdraw", nil)
	req.Header.Set("X-Real-IP", "198.51.100.9")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
