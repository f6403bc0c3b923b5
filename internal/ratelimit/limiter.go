// Package ratelimit implements the in-memory sliding-window limiter that
// gates lead submissions per client IP. State is process-local and resets on
// restart; this is best-effort abuse mitigation, not a security boundary.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Defaults match the reference deployment: 5 submissions per rolling minute,
// stale identifiers swept every 5 minutes.
const (
	DefaultWindow        = time.Minute
	DefaultLimit         = 5
	DefaultSweepInterval = 5 * time.Minute
)

// Result is the outcome of a limiter check, carrying what the middleware
// needs for X-RateLimit response headers.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter int // seconds, only set when not allowed
}

// Limiter tracks recent admitted requests per identifier over a rolling
// window. Construct one and inject it into the request path; there are no
// package-level globals.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string][]time.Time

	window        time.Duration
	limit         int
	sweepInterval time.Duration
	now           func() time.Time
}

type Option func(*Limiter)

// WithWindow overrides the rolling window duration.
func WithWindow(window time.Duration) Option {
	return func(l *Limiter) {
		l.window = window
	}
}

// WithLimit overrides the max admitted requests per window.
func WithLimit(limit int) Option {
	return func(l *Limiter) {
		l.limit = limit
	}
}

// WithSweepInterval overrides how often the background sweep runs.
func WithSweepInterval(interval time.Duration) Option {
	return func(l *Limiter) {
		l.sweepInterval = interval
	}
}

// WithNow injects a clock, for tests that roll the window without sleeping.
func WithNow(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

func New(opts ...Option) *Limiter {
	l := &Limiter{
		buckets:       make(map[string][]time.Time),
		window:        DefaultWindow,
		limit:         DefaultLimit,
		sweepInterval: DefaultSweepInterval,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow prunes the identifier's timestamps to the current window and decides.
// Pruning happens before the count comparison, so an identifier that aged out
// of the window is admitted again immediately even if it previously hit the
// cap. The current timestamp is appended only on admission; rejected attempts
// write back the pruned slice unchanged.
func (l *Limiter) Allow(identifier string) *Result {
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := prune(l.buckets[identifier], cutoff)

	if len(recent) >= l.limit {
		l.buckets[identifier] = recent
		resetAt := now.Add(l.window)
		if len(recent) > 0 {
			resetAt = recent[0].Add(l.window)
		}
		return &Result{
			Allowed:    false,
			Limit:      l.limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfterSeconds(resetAt, now),
		}
	}

	recent = append(recent, now)
	l.buckets[identifier] = recent

	return &Result{
		Allowed:   true,
		Limit:     l.limit,
		Remaining: l.limit - len(recent),
		ResetAt:   recent[0].Add(l.window),
	}
}

// Start runs the periodic sweep until ctx is cancelled. The sweep only
// reclaims memory for identifiers whose window has fully drained; it never
// admits or rejects anything.
func (l *Limiter) Start(ctx context.Context) {
	ticker := time.NewTicker(l.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

func (l *Limiter) sweep() {
	cutoff := l.now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	for identifier, timestamps := range l.buckets {
		recent := prune(timestamps, cutoff)
		if len(recent) == 0 {
			delete(l.buckets, identifier)
		} else {
			l.buckets[identifier] = recent
		}
	}
}

// prune drops timestamps at or before cutoff. Timestamps are appended in
// order, so the survivors are a suffix.
func prune(timestamps []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for ; i < len(timestamps); i++ {
		if timestamps[i].After(cutoff) {
			break
		}
	}
	return timestamps[i:]
}

func retryAfterSeconds(resetAt, now time.Time) int {
	secs := int(resetAt.Sub(now).Seconds())
	if secs < 1 {
		secs = 1
	}
	return secs
}
