package ratelimit_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/caredirectory/go-admin-auth/ratelimit"
)

const testIdentifier = "1.2.3.4"

// fakeClock is a settable clock for driving the lockout window in tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestLimiter_CheckAllowed(t *testing.T) {
	t.Run("unknown identifier has full budget", func(t *testing.T) {
		l := ratelimit.NewLimiter()
		allowed, remaining := l.CheckAllowed(testIdentifier)
		require.True(t, allowed)
		require.Equal(t, ratelimit.DefaultMaxFailedAttempts, remaining)
	})

	t.Run("failures shrink the budget", func(t *testing.T) {
		l := ratelimit.NewLimiter()
		l.RecordFailure(testIdentifier)
		l.RecordFailure(testIdentifier)

		allowed, remaining := l.CheckAllowed(testIdentifier)
		require.True(t, allowed)
		require.Equal(t, 3, remaining)
	})

	t.Run("budget exhausted blocks the identifier", func(t *testing.T) {
		l := ratelimit.NewLimiter()
		for i := 0; i < ratelimit.DefaultMaxFailedAttempts; i++ {
			l.RecordFailure(testIdentifier)
		}

		allowed, remaining := l.CheckAllowed(testIdentifier)
		require.False(t, allowed)
		require.Equal(t, 0, remaining)
	})

	t.Run("other identifiers are unaffected", func(t *testing.T) {
		l := ratelimit.NewLimiter()
		for i := 0; i < ratelimit.DefaultMaxFailedAttempts; i++ {
			l.RecordFailure(testIdentifier)
		}

		allowed, remaining := l.CheckAllowed("5.6.7.8")
		require.True(t, allowed)
		require.Equal(t, ratelimit.DefaultMaxFailedAttempts, remaining)
	})
}

func TestLimiter_LockoutWindow(t *testing.T) {
	t.Run("window elapse restores the full budget and clears the record", func(t *testing.T) {
		clock := newFakeClock()
		l := ratelimit.NewLimiter(ratelimit.WithNowTime(clock.Now))

		for i := 0; i < ratelimit.DefaultMaxFailedAttempts; i++ {
			l.RecordFailure(testIdentifier)
		}
		allowed, _ := l.CheckAllowed(testIdentifier)
		require.False(t, allowed)

		clock.Advance(ratelimit.DefaultLockoutWindow + time.Second)

		allowed, remaining := l.CheckAllowed(testIdentifier)
		require.True(t, allowed)
		require.Equal(t, ratelimit.DefaultMaxFailedAttempts, remaining)
	})

	t.Run("window slides from the most recent failure", func(t *testing.T) {
		clock := newFakeClock()
		l := ratelimit.NewLimiter(ratelimit.WithNowTime(clock.Now))

		for i := 0; i < ratelimit.DefaultMaxFailedAttempts; i++ {
			l.RecordFailure(testIdentifier)
			clock.Advance(10 * time.Minute)
		}

		// 40 minutes after the first failure but only 10 after the last:
		// each failure re-armed the full window, so still locked out.
		allowed, _ := l.CheckAllowed(testIdentifier)
		require.False(t, allowed)
	})

	t.Run("a failure after the window restarts the count", func(t *testing.T) {
		clock := newFakeClock()
		l := ratelimit.NewLimiter(ratelimit.WithNowTime(clock.Now))

		for i := 0; i < ratelimit.DefaultMaxFailedAttempts; i++ {
			l.RecordFailure(testIdentifier)
		}
		clock.Advance(ratelimit.DefaultLockoutWindow + time.Second)
		l.RecordFailure(testIdentifier)

		allowed, remaining := l.CheckAllowed(testIdentifier)
		require.True(t, allowed)
		require.Equal(t, ratelimit.DefaultMaxFailedAttempts-1, remaining)
	})
}

func TestLimiter_Clear(t *testing.T) {
	l := ratelimit.NewLimiter()
	for i := 0; i < ratelimit.DefaultMaxFailedAttempts; i++ {
		l.RecordFailure(testIdentifier)
	}
	l.Clear(testIdentifier)

	allowed, remaining := l.CheckAllowed(testIdentifier)
	require.True(t, allowed)
	require.Equal(t, ratelimit.DefaultMaxFailedAttempts, remaining)
}

func TestLimiter_Options(t *testing.T) {
	clock := newFakeClock()
	l := ratelimit.NewLimiter(
		ratelimit.WithMaxAttempts(2),
		ratelimit.WithLockoutWindow(time.Minute),
		ratelimit.WithNowTime(clock.Now),
	)

	l.RecordFailure(testIdentifier)
	l.RecordFailure(testIdentifier)
	allowed, _ := l.CheckAllowed(testIdentifier)
	require.False(t, allowed)

	clock.Advance(61 * time.Second)
	allowed, remaining := l.CheckAllowed(testIdentifier)
	require.True(t, allowed)
	require.Equal(t, 2, remaining)
}

// Concurrent failures for the same identifier must not lose updates.
func TestLimiter_ConcurrentRecordFailure(t *testing.T) {
	const n = 50
	l := ratelimit.NewLimiter(ratelimit.WithMaxAttempts(100))

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.RecordFailure(testIdentifier)
		}()
	}
	wg.Wait()

	allowed, remaining := l.CheckAllowed(testIdentifier)
	require.True(t, allowed)
	require.Equal(t, 100-n, remaining)
}
