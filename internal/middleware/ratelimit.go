package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// limiter tracks per-client fixed windows. Entries expire with their window
// and are reaped lazily on the next touch.
type limiter struct {
	mu      sync.Mutex
	limit   int
	per     time.Duration
	windows map[string]*window
}

type window struct {
	count int
	until time.Time
}

// allow records one hit for the key and reports whether it stays within the
// limit. It returns the remaining window on rejection.
func (l *limiter) allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	w, ok := l.windows[key]
	if !ok || now.After(w.until) {
		if len(l.windows) > 4096 {
			l.prune(now)
		}
		w = &window{until: now.Add(l.per)}
		l.windows[key] = w
	}
	if w.count >= l.limit {
		return false, time.Until(w.until)
	}
	w.count++
	return true, 0
}

func (l *limiter) prune(now time.Time) {
	for key, w := range l.windows {
		if now.After(w.until) {
			delete(l.windows, key)
		}
	}
}

// RateLimit throttles write endpoints per client IP: at most limit requests
// per window. Rejected requests get 429 with a Retry-After hint.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	l := &limiter{limit: limit, per: per, windows: make(map[string]*window)}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, wait := l.allow(throttleKey(r))
			if !ok {
				secs := int(wait.Seconds()) + 1
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// throttleKey picks the client address used for bucketing. Forwarded entries
// must parse as an IP; garbage falls back to the socket peer so a spoofed
// header cannot dodge the limit.
func throttleKey(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		for _, part := range strings.Split(xf, ",") {
			ip := strings.TrimSpace(part)
			if ip != "" && net.ParseIP(ip) != nil {
				return ip
			}
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && net.ParseIP(host) != nil {
		return host
	}
	return r.RemoteAddr
}
