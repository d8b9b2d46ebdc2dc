// Package sessions issues, validates, invalidates, and garbage-collects the
// ephemeral session records backing admin authentication. Sessions live only
// in process memory; a restart invalidates every session, which is accepted
// for a single-instance deployment.
package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/caredirectory/go-admin-auth/roles"
)

const (
	DefaultTTL           = 24 * time.Hour
	DefaultSweepInterval = time.Hour

	// tokenBytes is the entropy of a session token: 256 bits, rendered as
	// 64 hex characters. Token equality is the sole identity key;
	// collisions are not checked.
	tokenBytes = 32
)

// Store holds the live session records. All operations are safe for
// concurrent use from request handlers and from the background sweeper,
// which shares the same lock but never holds it across a full
// copy-then-replace of the map.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl           time.Duration
	sweepInterval time.Duration
	nowTime       func() time.Time
	sweepHook     func(removed int)

	stop     chan struct{}
	stopOnce sync.Once
}

// StoreOption defines a function type to modify the Store instance.
type StoreOption func(*Store)

// WithTTL overrides the session time-to-live.
func WithTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithSweepInterval overrides how often the background sweeper runs.
func WithSweepInterval(interval time.Duration) StoreOption {
	return func(s *Store) {
		s.sweepInterval = interval
	}
}

// WithNowTime sets the now time function (primarily for testing).
func WithNowTime(nowFunc func() time.Time) StoreOption {
	return func(s *Store) {
		s.nowTime = nowFunc
	}
}

// WithSweepHook registers a callback invoked with the number of sessions
// removed by each background sweep.
func WithSweepHook(hook func(removed int)) StoreOption {
	return func(s *Store) {
		s.sweepHook = hook
	}
}

// NewStore creates an empty Store and starts its background sweeper. The
// caller owns the store for the process lifetime and must call Close at
// shutdown to stop the sweeper.
func NewStore(options ...StoreOption) *Store {
	s := &Store{
		sessions:      make(map[string]*Session),
		ttl:           DefaultTTL,
		sweepInterval: DefaultSweepInterval,
		nowTime:       time.Now,
		stop:          make(chan struct{}),
	}
	for _, opt := range options {
		opt(s)
	}
	go s.sweepLoop()
	return s
}

// Create mints a new session for role, recording the caller's address and
// agent as session metadata.
func (s *Store) Create(role roles.Role, clientAddress, clientAgent string) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, errors.Wrap(err, "[Store.Create] generateToken")
	}

	now := s.nowTime()
	session := &Session{
		ID:            token,
		Role:          role,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.ttl),
		ClientAddress: clientAddress,
		ClientAgent:   clientAgent,
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	return session, nil
}

// Validate returns the live session for token. An unknown token reports
// false; an expired one is removed on observation and reported false. The
// expiry check and removal happen atomically under the lock.
func (s *Store) Validate(token string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if session.Expired(s.nowTime()) {
		delete(s.sessions, token)
		return nil, false
	}
	return session, true
}

// Invalidate removes the session for token. Idempotent: invalidating an
// absent token is not an error.
func (s *Store) Invalidate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Sweep removes every expired session and returns the number removed. It
// runs periodically in the background to bound memory growth from sessions
// whose owners never logged out and never returned.
func (s *Store) Sweep() int {
	now := s.nowTime()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

// Len returns the number of sessions currently held, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the background sweeper. Idempotent. Sessions still held are
// discarded with the process; the store is memory-only.
func (s *Store) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

func (s *Store) sweepLoop() {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			removed := s.Sweep()
			if s.sweepHook != nil {
				s.sweepHook(removed)
			}
		case <-s.stop:
			return
		}
	}
}

func generateToken() (string, error) {
	bytes := make([]byte, tokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
