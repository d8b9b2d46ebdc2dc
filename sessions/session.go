package sessions

import (
	"time"

	"github.com/caredirectory/go-admin-auth/roles"
)

// Session is an issued, time-bounded proof of a successful authentication,
// identified by an opaque unguessable token. A session is immutable after
// creation; ExpiresAt is always CreatedAt plus the store's TTL.
type Session struct {
	ID            string     // Opaque token, 256 bits of entropy rendered as hex
	Role          roles.Role // Privilege level granted to the session
	CreatedAt     time.Time  // When the session was minted
	ExpiresAt     time.Time  // CreatedAt + TTL, set once and never mutated
	ClientAddress string     // Network address the session was minted for
	ClientAgent   string     // User agent string at creation
}

// Expired reports whether the session has passed its expiry at the given
// instant. A session is still valid at exactly ExpiresAt.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
