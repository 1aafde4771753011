package smarty

import (
	"log/slog"
	"sync"
	"time"
)

// Limiter throttles outbound API calls.
type Limiter interface {
	WaitIfNeeded()
}

// RateLimiter caps the number of lookups per interval, sleeping when the
// cap is reached. Safe for concurrent use.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // calls allowed per interval
	interval  time.Duration // reset window
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a new RateLimiter instance.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded blocks until the current window has room for another call.
func (rl *RateLimiter) WaitIfNeeded() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			slog.Warn("smarty rate limit reached, sleeping", "limit", rl.limit, "sleep", sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
