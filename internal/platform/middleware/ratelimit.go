package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Per-client budget: 15 requests per minute, matching the limit the
// service has always advertised to clients.
const (
	rateLimitWindow   = time.Minute
	rateLimitRequests = 15
)

// clientLimiter tracks one client's token bucket.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter bounds request rate per client IP. Clients over budget
// receive 429 with a Retry-After hint. The operation layer below treats
// this purely as a pass/reject gate; it holds no request state.
//
// Run after RealIP so the key is the real client address, not the
// proxy's.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
}

// NewRateLimiter creates a limiter with the default per-client budget.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Every(rateLimitWindow / rateLimitRequests),
		burst:   rateLimitRequests,
	}
}

// Handler returns the chi-compatible middleware.
func (rl *RateLimiter) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientKey(r.RemoteAddr)) {
				w.Header().Set("Retry-After", "60")
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"title":"Too Many Requests","status":429,"detail":"rate limit exceeded"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientKey strips the port so every connection from one address shares
// a bucket. RealIP has already rewritten RemoteAddr when behind a proxy.
func clientKey(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}

func (rl *RateLimiter) allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	c, ok := rl.clients[client]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[client] = c
	}
	c.lastSeen = now

	// Drop buckets idle long enough to have fully refilled.
	for key, other := range rl.clients {
		if now.Sub(other.lastSeen) > 2*rateLimitWindow {
			delete(rl.clients, key)
		}
	}

	return c.limiter.Allow()
}
