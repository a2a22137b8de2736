// Package ratelimit implements the gateway's sliding-window request limiter.
// This is part of the platform layer and contains no business logic.
package ratelimit

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"maps_gateway/platform/httpkit"
	"maps_gateway/platform/logger"
	"maps_gateway/platform/metrics"

	"github.com/gin-gonic/gin"
)

// UnknownClient is the shared bucket for requests without a forwarded
// address. All unidentified clients drain one quota; kept deliberately,
// see DESIGN.md.
const UnknownClient = "unknown"

// Limiter counts requests per client within a trailing window.
// The ledger holds only timestamps inside [now-window, now]; older entries
// are pruned lazily on each check. State is process-local and resets on
// restart.
type Limiter struct {
	mu     sync.Mutex
	ledger map[string][]time.Time
	window time.Duration
	max    int
	now    func() time.Time
	log    *logger.Logger
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New creates a sliding-window limiter allowing max requests per window
// for each client identifier.
func New(window time.Duration, max int, log *logger.Logger, opts ...Option) *Limiter {
	l := &Limiter{
		ledger: make(map[string][]time.Time),
		window: window,
		max:    max,
		now:    time.Now,
		log:    log,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow reports whether clientID may make a request now, appending the
// current timestamp to its ledger when allowed. The prune + compare +
// append sequence runs under one lock so concurrent requests for the same
// key cannot interleave.
func (l *Limiter) Allow(clientID string) bool {
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	stamps := l.ledger[clientID]
	kept := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.max {
		l.ledger[clientID] = kept
		return false
	}

	l.ledger[clientID] = append(kept, now)
	return true
}

// ClientID derives the rate-limit key from the forwarded-address header,
// taking the first hop of a comma-separated list.
func ClientID(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return UnknownClient
	}
	if idx := strings.IndexByte(forwarded, ','); idx >= 0 {
		forwarded = forwarded[:idx]
	}
	forwarded = strings.TrimSpace(forwarded)
	if forwarded == "" {
		return UnknownClient
	}
	return forwarded
}

// RateLimit returns a middleware that rejects over-quota clients with 429.
func (l *Limiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := ClientID(c.Request)

		if !l.Allow(clientID) {
			if l.log != nil {
				l.log.RateLimitExceeded(clientID, c.Request.URL.Path)
			}
			metrics.RateLimitRejections.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httpkit.ErrorResponse{
				Error:   "rate_limit_exceeded",
				Message: "Too many requests. Please wait before trying again.",
			})
			return
		}

		c.Next()
	}
}
