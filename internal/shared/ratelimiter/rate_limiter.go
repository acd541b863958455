// Package ratelimiter implements a fixed-window request limiter.
package ratelimiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"user_backend/internal/api"
)

// Limiter caps how many times each key (typically a client IP) may act within
// a fixed window. Counters reset when the window elapses. Safe for concurrent
// use.
type Limiter struct {
	mu       sync.Mutex
	limit    int
	interval time.Duration
	windows  map[string]*window
}

type window struct {
	count int
	start time.Time
}

// New creates a Limiter allowing limit calls per key per interval.
func New(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:    limit,
		interval: interval,
		windows:  map[string]*window{},
	}
}

// Allow reports whether the key may act now, counting the attempt.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.interval {
		l.windows[key] = &window{count: 1, start: now}
		return true
	}

	w.count++
	return w.count <= l.limit
}

// Middleware returns a Gin middleware that rejects requests over the limit
// with 429, keyed by client IP.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			api.AbortError(c, http.StatusTooManyRequests, "Too Many Attempts.", nil)
			return
		}
		c.Next()
	}
}
