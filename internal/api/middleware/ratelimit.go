package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"

	"golang.org/x/time/rate"

	"github.com/mvasanth/equipscan/internal/api/response"
)

// RateLimit applies per-client token-bucket rate limiting keyed by remote
// host. requestsPerMin <= 0 disables limiting.
type RateLimit struct {
	requestsPerMin int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRateLimit creates a new RateLimit middleware.
func NewRateLimit(requestsPerMin int) *RateLimit {
	return &RateLimit{
		requestsPerMin: requestsPerMin,
		limiters:       make(map[string]*rate.Limiter),
	}
}

// Limit rejects requests once a client exceeds its per-minute budget.
func (rl *RateLimit) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.requestsPerMin <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		limiter := rl.limiterFor(clientKey(r))

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.requestsPerMin))

		if !limiter.Allow() {
			w.Header().Set("Retry-After", "60")
			response.Error(w, http.StatusTooManyRequests,
				"RATE_LIMIT_EXCEEDED", "Too many requests", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimit) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(float64(rl.requestsPerMin)/60.0), rl.requestsPerMin)
		rl.limiters[key] = limiter
	}
	return limiter
}

// clientKey identifies the caller by remote host, falling back to the whole
// RemoteAddr when it has no port.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
