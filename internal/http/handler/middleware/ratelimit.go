package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// sweepThreshold is the number of tracked clients above which limiters with a
// full bucket are dropped. A full bucket behaves exactly like a new one.
const sweepThreshold = 10000

// RateLimitMiddleware keeps one token bucket per client address.
type RateLimitMiddleware struct {
	rps   rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewRateLimitMiddleware(rps float64, burst int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		rps:      rate.Limit(rps),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.limiterFor(clientAddr(r)).Allow() {
			writeJSON(w, http.StatusTooManyRequests, tooManyRequestsMsg)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) limiterFor(client string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	limiter, ok := m.limiters[client]
	if !ok {
		if len(m.limiters) >= sweepThreshold {
			m.sweep()
		}
		limiter = rate.NewLimiter(m.rps, m.burst)
		m.limiters[client] = limiter
	}
	return limiter
}

func (m *RateLimitMiddleware) sweep() {
	for client, limiter := range m.limiters {
		if limiter.Tokens() >= float64(m.burst) {
			delete(m.limiters, client)
		}
	}
}

// clientAddr is the host part of the peer address. Forwarding headers are
// ignored since any client can set them.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
