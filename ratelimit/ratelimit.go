// Package ratelimit tracks failed authentication attempts per caller
// identifier and enforces a temporary lockout once the budget is spent.
package ratelimit

import (
	"sync"
	"time"
)

// Default policy values; both are adjustable via options without changing
// the algorithm.
const (
	DefaultMaxFailedAttempts = 5
	DefaultLockoutWindow     = 15 * time.Minute
)

// record tracks the failures observed for one identifier. A record whose
// lastAttemptAt is older than the lockout window is stale and must be
// treated as absent.
type record struct {
	count         int
	lastAttemptAt time.Time
}

// Limiter enforces a sliding lockout window anchored on the most recent
// failure: each new failure re-arms the full lockout duration. Safe for
// concurrent use.
type Limiter struct {
	mu      sync.Mutex
	records map[string]*record

	maxAttempts int
	window      time.Duration
	nowTime     func() time.Time
}

// LimiterOption defines a function type to modify the Limiter instance.
type LimiterOption func(*Limiter)

// WithMaxAttempts overrides the failed-attempt budget.
func WithMaxAttempts(n int) LimiterOption {
	return func(l *Limiter) {
		l.maxAttempts = n
	}
}

// WithLockoutWindow overrides the sliding lockout duration.
func WithLockoutWindow(d time.Duration) LimiterOption {
	return func(l *Limiter) {
		l.window = d
	}
}

// WithNowTime sets the now time function (primarily for testing).
func WithNowTime(nowFunc func() time.Time) LimiterOption {
	return func(l *Limiter) {
		l.nowTime = nowFunc
	}
}

// NewLimiter creates a Limiter with the default policy unless overridden.
func NewLimiter(options ...LimiterOption) *Limiter {
	l := &Limiter{
		records:     make(map[string]*record),
		maxAttempts: DefaultMaxFailedAttempts,
		window:      DefaultLockoutWindow,
		nowTime:     time.Now,
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// CheckAllowed reports whether identifier may attempt authentication and how
// many attempts remain. A stale record is cleared when observed and the full
// budget restored.
func (l *Limiter) CheckAllowed(identifier string) (allowed bool, remaining int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[identifier]
	if !ok {
		return true, l.maxAttempts
	}
	if l.nowTime().Sub(rec.lastAttemptAt) > l.window {
		delete(l.records, identifier)
		return true, l.maxAttempts
	}
	remaining = l.maxAttempts - rec.count
	if remaining < 0 {
		remaining = 0
	}
	return rec.count < l.maxAttempts, remaining
}

// RecordFailure creates or increments the identifier's record and re-arms
// the lockout window from now. A stale record restarts the count at one.
func (l *Limiter) RecordFailure(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowTime()
	rec, ok := l.records[identifier]
	if !ok || now.Sub(rec.lastAttemptAt) > l.window {
		l.records[identifier] = &record{count: 1, lastAttemptAt: now}
		return
	}
	rec.count++
	rec.lastAttemptAt = now
}

// Clear removes the identifier's record. Called on successful
// authentication so a legitimate caller regains the full budget.
func (l *Limiter) Clear(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.records, identifier)
}
