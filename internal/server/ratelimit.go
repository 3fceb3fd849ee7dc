package server

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/embedkit/tweetcard/pkg/errors"
)

// sweepThreshold bounds the entry map: once it grows past this, expired
// windows are dropped on the next insert.
const sweepThreshold = 4096

type windowEntry struct {
	count int
	reset time.Time
}

// rateLimiter is a fixed-window per-client limiter. Counters live in
// process memory; multi-instance deployments get a per-instance limit.
type rateLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	entries map[string]*windowEntry
}

// newRateLimiter creates a limiter allowing max requests per window.
// A max of zero or less disables limiting entirely.
func newRateLimiter(max int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		max:     max,
		window:  window,
		entries: make(map[string]*windowEntry),
	}
}

func (l *rateLimiter) middleware(next http.Handler) http.Handler {
	if l.max <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		now := time.Now()

		l.mu.Lock()
		e := l.entries[key]
		if e == nil || now.After(e.reset) {
			if len(l.entries) >= sweepThreshold {
				l.sweepLocked(now)
			}
			e = &windowEntry{reset: now.Add(l.window)}
			l.entries[key] = e
		}
		e.count++
		count, reset := e.count, e.reset
		l.mu.Unlock()

		h := w.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(l.max))
		h.Set("X-RateLimit-Reset", reset.UTC().Format(time.RFC3339))

		if count > l.max {
			retryAfter := int(time.Until(reset).Seconds()) + 1
			h.Set("X-RateLimit-Remaining", "0")
			h.Set("Retry-After", strconv.Itoa(retryAfter))
			writeJSON(w, http.StatusTooManyRequests, map[string]any{
				"error":      errors.ErrCodeRateLimited,
				"message":    "Rate limit exceeded. Try again in " + strconv.Itoa(retryAfter) + " seconds.",
				"retryAfter": retryAfter,
			})
			return
		}

		h.Set("X-RateLimit-Remaining", strconv.Itoa(l.max-count))
		next.ServeHTTP(w, r)
	})
}

func (l *rateLimiter) sweepLocked(now time.Time) {
	for key, e := range l.entries {
		if now.After(e.reset) {
			delete(l.entries, key)
		}
	}
}

// clientIP identifies the caller, preferring proxy headers over the
// socket address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
