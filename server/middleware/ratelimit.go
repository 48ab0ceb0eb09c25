package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Garrettc123/ai-business-automation-tree/resilience"
)

// RateLimit returns middleware admitting perMinute requests per client,
// keyed by IP. Each client gets a token bucket that holds a full
// minute's quota, so short bursts pass and sustained overload gets 429.
func RateLimit(perMinute int) Middleware {
	if perMinute <= 0 {
		perMinute = 60
	}

	clients := &clientBuckets{
		buckets:   make(map[string]*clientBucket),
		perMinute: perMinute,
	}
	go clients.sweep()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !clients.allow(clientKey(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"Rate limit exceeded"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientKey extracts the client IP, honoring the first entry of
// X-Forwarded-For when a proxy sits in front.
func clientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type clientBucket struct {
	limiter  *resilience.RateLimiter
	lastSeen time.Time
}

type clientBuckets struct {
	mu        sync.Mutex
	buckets   map[string]*clientBucket
	perMinute int
}

func (cb *clientBuckets) allow(key string) bool {
	cb.mu.Lock()
	entry, ok := cb.buckets[key]
	if !ok {
		entry = &clientBucket{
			limiter: resilience.NewRateLimiter(resilience.RateLimiterConfig{
				Rate:  float64(cb.perMinute) / 60.0,
				Burst: cb.perMinute,
			}),
		}
		cb.buckets[key] = entry
	}
	entry.lastSeen = time.Now()
	cb.mu.Unlock()

	return entry.limiter.Allow()
}

// sweep drops buckets idle long enough to have refilled completely, so
// the map does not grow with one entry per client ever seen.
func (cb *clientBuckets) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-10 * time.Minute)
		cb.mu.Lock()
		for key, entry := range cb.buckets {
			if entry.lastSeen.Before(cutoff) {
				delete(cb.buckets, key)
			}
		}
		cb.mu.Unlock()
	}
}
