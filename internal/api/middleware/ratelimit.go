package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles clients by IP with a token bucket per
// client. Defaults allow 100 requests per 15 minutes, refilled continuously.
type RateLimitMiddleware struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	lifetime time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimitMiddleware creates a limiter allowing maxRequests per window.
func NewRateLimitMiddleware(maxRequests int, window time.Duration) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		clients:  make(map[string]*clientLimiter),
		limit:    rate.Limit(float64(maxRequests) / window.Seconds()),
		burst:    maxRequests,
		lifetime: window,
	}
}

// Limit rejects requests over the per-IP budget with 429
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.allow(clientIP(r)) {
			writeJSONError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	client, ok := m.clients[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.clients[ip] = client
	}
	client.lastSeen = now

	// Drop idle entries so the map does not grow with one-off clients.
	if len(m.clients) > 1024 {
		for key, c := range m.clients {
			if now.Sub(c.lastSeen) > m.lifetime {
				delete(m.clients, key)
			}
		}
	}

	return client.limiter.Allow()
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
