package infra

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterTTL             = 30 * time.Minute
)

type limiterEntry struct {
	limiter *rate.Limiter
	lastUse time.Time
}

// RateLimiter throttles credential endpoints per client IP.
type RateLimiter struct {
	every time.Duration
	burst int
	paths map[string]struct{}

	mu      sync.Mutex
	entries map[string]*limiterEntry
}

func NewRateLimiter(every time.Duration, burst int, paths ...string) *RateLimiter {
	limited := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		limited[p] = struct{}{}
	}

	return &RateLimiter{
		every:   every,
		burst:   burst,
		paths:   limited,
		entries: make(map[string]*limiterEntry),
	}
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := l.paths[strings.TrimSuffix(r.URL.Path, "/")]; !ok {
			next.ServeHTTP(w, r)
			return
		}

		if !l.limiter(clientIP(r)).Allow() {
			writeError(w, "too many attempts, please try again later", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Run drops idle limiters until ctx is done.
func (l *RateLimiter) Run(ctx context.Context) error {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			l.prune(now)
		}
	}
}

func (l *RateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.entries[ip] = e
	}
	e.lastUse = time.Now()

	return e.limiter
}

func (l *RateLimiter) prune(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, e := range l.entries {
		if now.Sub(e.lastUse) > limiterTTL {
			delete(l.entries, ip)
		}
	}
}

// clientIP reads RemoteAddr, which ProxyHeaders rewrites only behind a trusted
// proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return strings.TrimSpace(host)
}
