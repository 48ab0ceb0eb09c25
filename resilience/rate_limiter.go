package resilience

import (
	"sync"
	"time"
)

// RateLimiterConfig sizes a token bucket: Rate tokens drip in per
// second and the bucket holds at most Burst of them.
type RateLimiterConfig struct {
	Rate  float64
	Burst int
}

// RateLimiter is a token bucket. A full bucket absorbs a burst of
// calls; after that, calls are admitted at the steady refill rate.
type RateLimiter struct {
	rate  float64
	burst int

	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter builds a full bucket. Rate defaults to 10/s and Burst
// to one second's worth of tokens when unset.
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	if cfg.Rate <= 0 {
		cfg.Rate = 10.0
	}
	if cfg.Burst <= 0 {
		cfg.Burst = int(cfg.Rate)
	}
	return &RateLimiter{
		rate:       cfg.Rate,
		burst:      cfg.Burst,
		tokens:     float64(cfg.Burst),
		lastRefill: time.Now(),
	}
}

// Allow reports whether one call is admitted right now.
func (rl *RateLimiter) Allow() bool {
	return rl.AllowN(1)
}

// AllowN reports whether n calls are admitted right now. It never
// blocks; a rejected call consumes no tokens.
func (rl *RateLimiter) AllowN(n int) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.refill()
	if rl.tokens < float64(n) {
		return false
	}
	rl.tokens -= float64(n)
	return true
}

// refill credits tokens for the time elapsed since the last call.
// Callers must hold mu.
func (rl *RateLimiter) refill() {
	now := time.Now()
	rl.tokens += now.Sub(rl.lastRefill).Seconds() * rl.rate
	rl.lastRefill = now
	if rl.tokens > float64(rl.burst) {
		rl.tokens = float64(rl.burst)
	}
}
