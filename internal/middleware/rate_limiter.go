package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter keeps a token bucket per caller. Authenticated requests are
// keyed by user id so one user behind a shared NAT cannot starve the
// others; anonymous requests fall back to the remote address.
type RateLimiter struct {
	callers map[string]*caller
	mu      sync.RWMutex
	rate    rate.Limit
	burst   int
}

type caller struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	rl := &RateLimiter{
		callers: make(map[string]*caller),
		rate:    r,
		burst:   b,
	}

	go rl.cleanupCallers()

	return rl
}

// cleanupCallers evicts buckets idle for longer than three minutes.
func (rl *RateLimiter) cleanupCallers() {
	for {
		time.Sleep(time.Minute)

		rl.mu.Lock()
		for key, c := range rl.callers {
			if time.Since(c.lastSeen) > 3*time.Minute {
				delete(rl.callers, key)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) getCaller(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, exists := rl.callers[key]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.callers[key] = &caller{limiter, time.Now()}
		return limiter
	}

	c.lastSeen = time.Now()
	return c.limiter
}

// Middleware returns a rate limiting middleware.
func (rl *RateLimiter) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(UserIDHeader)
			if key == "" {
				key = r.RemoteAddr
			}

			if !rl.getCaller(key).Allow() {
				respondError(w, r, http.StatusTooManyRequests, ErrorCodeRateLimitExceeded, ErrorMessageRateLimitExceeded)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
