package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"catalog-page/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	tierPage   = "page"
	tierAPI    = "api"
	tierHealth = "health"

	visitorTTL    = 3 * time.Minute
	sweepInterval = time.Minute
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter is a per-client token bucket. Every rendered page costs two
// upstream fetches, so page loads get the configured rate and the JSON
// endpoints twice that.
type Limiter struct {
	page  rate.Limit
	burst int

	mu       sync.Mutex
	visitors map[string]*visitor
	now      func() time.Time
}

// NewLimiter starts a Limiter whose idle visitors are swept until ctx ends.
func NewLimiter(ctx context.Context, perSecond float64, burst int) *Limiter {
	l := &Limiter{
		page:     rate.Limit(perSecond),
		burst:    burst,
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
	go l.sweepLoop(ctx)
	return l
}

func (l *Limiter) get(key string, r rate.Limit, b int) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(r, b)}
		l.visitors[key] = v
	}
	v.lastSeen = l.now()
	return v.limiter
}

func (l *Limiter) sweepLoop(ctx context.Context) {
	t := time.NewTicker(sweepInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			l.sweep()
		}
	}
}

// sweep removes visitors idle for longer than visitorTTL.
func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, v := range l.visitors {
		if l.now().Sub(v.lastSeen) > visitorTTL {
			delete(l.visitors, key)
		}
	}
}

// Middleware rejects requests over the caller's quota with 429.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, burst, tier := l.resolveTier(r)
		if tier == tierHealth {
			next.ServeHTTP(w, r)
			return
		}

		key := clientIdentity(r) + ":" + tier
		if !l.get(key, limit, burst).Allow() {
			logger.FromCtx(r.Context()).Warn("rate limited",
				zap.String("key", key),
				zap.String("path", r.URL.Path),
			)
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *Limiter) resolveTier(r *http.Request) (rate.Limit, int, string) {
	switch {
	case r.URL.Path == "/health":
		return rate.Inf, 0, tierHealth
	case strings.HasPrefix(r.URL.Path, "/api/"):
		return l.page * 2, l.burst * 2, tierAPI
	default:
		return l.page, l.burst, tierPage
	}
}

// clientIdentity prefers a client supplied device id and falls back to the
// remote IP.
func clientIdentity(r *http.Request) string {
	if deviceID := r.Header.Get("X-Device-ID"); deviceID != "" {
		return "device:" + deviceID
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return "ip:" + ip
}
