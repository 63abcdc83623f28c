package middleware

import (
	"net"
	"strings"
	"sync"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
)

// RateLimiter enforces a minimum interval between requests per client key.
// It keeps one timestamp per client; Prune drops stale entries.
type RateLimiter struct {
	mu       sync.Mutex
	last     map[string]time.Time
	interval time.Duration
	now      func() time.Time
}

func NewRateLimiter(interval time.Duration) *RateLimiter {
	return &RateLimiter{
		last:     map[string]time.Time{},
		interval: interval,
		now:      time.Now,
	}
}

// Allow reports whether the client may proceed. When denied it returns the
// remaining wait. An allowed call records the current time for the client.
func (rl *RateLimiter) Allow(key string) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if last, ok := rl.last[key]; ok {
		if elapsed := now.Sub(last); elapsed < rl.interval {
			return rl.interval - elapsed, false
		}
	}

	rl.last[key] = now
	return 0, true
}

// Prune removes entries older than the given age.
func (rl *RateLimiter) Prune(olderThan time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-olderThan)
	for key, last := range rl.last {
		if last.Before(cutoff) {
			delete(rl.last, key)
		}
	}
}

// RateLimit rejects requests that arrive before the client's interval has
// elapsed.
func RateLimit(rl *RateLimiter) drift.HandlerFunc {
	return func(c *drift.Context) {
		wait, ok := rl.Allow(clientKey(c))
		if !ok {
			_ = c.JSON(429, map[string]any{
				"error":       "Too many requests, please slow down",
				"retry_after": int(wait.Seconds()) + 1,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func clientKey(c *drift.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
