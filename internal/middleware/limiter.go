package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"payment-gateway/internal/logger"

	"golang.org/x/time/rate"
)

// Rate Limit Tiers
const (
	// Payment submission (Strict)
	limitStrict = rate.Limit(5)
	burstStrict = 10

	// General (Default)
	limitGeneral = rate.Limit(20)
	burstGeneral = 40

	// Internal / trusted services
	limitInternal = rate.Limit(100)
	burstInternal = 200
)

const (
	ClientIDHeader    = logger.ClientIDHeader
	ServiceAuthHeader = "X-Service-Auth"

	paymentPath = "/api/v1/payment"
	visitorTTL  = 3 * time.Minute
	sweepEvery  = time.Minute
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client and tier.
type RateLimiter struct {
	internalKey string

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewRateLimiter starts a cleanup routine that runs until ctx is done.
// Requests carrying internalKey in X-Service-Auth get the internal tier; an
// empty key disables that tier.
func NewRateLimiter(ctx context.Context, internalKey string) *RateLimiter {
	l := &RateLimiter{
		internalKey: internalKey,
		visitors:    make(map[string]*visitor),
	}
	go l.cleanupVisitors(ctx, sweepEvery)
	return l
}

// getVisitor retrieves or creates a rate limiter for the given key.
func (l *RateLimiter) getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		l.visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes idle entries from the visitors map until ctx is done.
func (l *RateLimiter) cleanupVisitors(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.evict(now)
		}
	}
}

func (l *RateLimiter) evict(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(l.visitors, key)
		}
	}
}

// Middleware rejects requests over the client's quota with 429.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, burst, tier := l.resolveRateTier(r)

		// separate quotas per tier for the same client, e.g. "client:abc:strict"
		key := fmt.Sprintf("%s:%s", clientIdentity(r), tier)

		if !l.getVisitor(key, limit, burst).Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIdentity(r *http.Request) string {
	if clientID := r.Header.Get(ClientIDHeader); clientID != "" {
		return "client:" + clientID
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return "ip:" + ip
}

// resolveRateTier determines which rate limit policy applies to the request.
func (l *RateLimiter) resolveRateTier(r *http.Request) (rate.Limit, int, string) {
	if l.internalKey != "" && r.Header.Get(ServiceAuthHeader) == l.internalKey {
		return limitInternal, burstInternal, "internal"
	}

	if r.Method == http.MethodPost && r.URL.Path == paymentPath {
		return limitStrict, burstStrict, "strict"
	}

	return limitGeneral, burstGeneral, "general"
}
