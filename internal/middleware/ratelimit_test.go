package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFrozenLimiter(interval time.Duration) (*RateLimiter, *time.Time) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(interval)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestRateLimiterAllow(t *testing.T) {
	rl, now := newFrozenLimiter(30 * time.Second)

	_, ok := rl.Allow("1.2.3.4")
	require.True(t, ok)

	wait, ok := rl.Allow("1.2.3.4")
	assert.False(t, ok)
	assert.Equal(t, 30*time.Second, wait)

	// A different client is not affected.
	_, ok = rl.Allow("5.6.7.8")
	assert.True(t, ok)

	*now = now.Add(31 * time.Second)
	_, ok = rl.Allow("1.2.3.4")
	assert.True(t, ok)
}

func TestRateLimiterPrune(t *testing.T) {
	rl, now := newFrozenLimiter(30 * time.Second)

	_, ok := rl.Allow("1.2.3.4")
	require.True(t, ok)

	*now = now.Add(2 * time.Hour)
	rl.Prune(time.Hour)

	assert.Empty(t, rl.last)
}

func newRateLimitedApp(rl *RateLimiter) http.Handler {
	app := drift.New()
	app.SetMode(drift.ReleaseMode)

	limited := app.Group("")
	limited.Use(RateLimit(rl))
	limited.Post("/generate", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return app
}

func TestRateLimitMiddleware(t *testing.T) {
	rl, _ := newFrozenLimiter(30 * time.Second)
	app := newRateLimitedApp(rl)

	req := httptest.NewRequest(http.MethodPost, "/generate", nil)
	req.RemoteAddr = "1.2.3.4:5000"

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "retry_after")
}

func TestRateLimitUsesForwardedFor(t *testing.T) {
	rl, _ := newFrozenLimiter(30 * time.Second)
	app := newRateLimitedApp(rl)

	first := httptest.NewRequest(http.MethodPost, "/generate", nil)
	first.RemoteAddr = "10.0.0.1:1111"
	first.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, first)
	require.Equal(t, http.StatusOK, rec.Code)

	// Same forwarded client behind a different proxy address.
	second := httptest.NewRequest(http.MethodPost, "/generate", nil)
	second.RemoteAddr = "10.0.0.2:2222"
	second.Header.Set("X-Forwarded-For", "203.0.113.7")

	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
