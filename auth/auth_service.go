// Package auth orchestrates session validation, rate limiting, and
// shared-secret verification into the two authentication strategies the
// admin surface accepts: a bearer session token, or the configured admin
// key. Authorization decisions consult the static role table after
// authentication succeeds.
package auth

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/caredirectory/go-admin-auth/credentials"
	"github.com/caredirectory/go-admin-auth/ratelimit"
	"github.com/caredirectory/go-admin-auth/roles"
	"github.com/caredirectory/go-admin-auth/sessions"
)

// Header and query parameter names credentials are extracted from.
const (
	SessionTokenHeader  = "x-session-token"
	AuthorizationHeader = "Authorization"
	AdminKeyHeader      = "x-admin-key"
	AdminKeyQueryParam  = "key"
)

// Result is the outcome of one authentication attempt. Err is nil iff
// Authenticated is true; Session references a record owned by the store and
// is set only on success.
type Result struct {
	Authenticated bool
	Session       *sessions.Session
	Err           error
}

// Secrets holds the configured shared admin secret, supplied at startup.
// Exactly one field should be set; KeyHash wins when both are present. An
// empty Secrets fails every key-based attempt closed with ErrMisconfigured.
type Secrets struct {
	Key     string // Plaintext admin key, compared timing-safely
	KeyHash string // bcrypt hash of the admin key
}

func (s Secrets) configured() bool {
	return s.Key != "" || s.KeyHash != ""
}

func (s Secrets) match(provided string) bool {
	if s.KeyHash != "" {
		return credentials.CompareHash(provided, s.KeyHash)
	}
	return credentials.Compare(provided, s.Key)
}

// Service is the authentication facade. It owns no state of its own: the
// session store and rate limiter are single shared instances constructed at
// startup and passed in by reference.
type Service struct {
	secrets Secrets
	store   *sessions.Store
	limiter *ratelimit.Limiter
	logger  zerolog.Logger
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithLogger overrides the logger (defaults to the global zerolog logger).
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService initializes the authentication facade with its required
// collaborators.
func NewService(secrets Secrets, store *sessions.Store, limiter *ratelimit.Limiter, options ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, errors.New("[NewService] session store is required")
	}
	if limiter == nil {
		return nil, errors.New("[NewService] rate limiter is required")
	}

	s := &Service{
		secrets: secrets,
		store:   store,
		limiter: limiter,
		logger:  log.Logger,
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// Authenticate runs the authentication state machine over one request:
//
//  1. A presented session token is validated first; a hit is terminal.
//  2. The caller's address is checked against the rate limiter. A locked-out
//     caller is rejected before any credential comparison, so lockout also
//     blocks timing-based enumeration.
//  3. The admin key is compared timing-safely. A mismatch increments the
//     failure count; a match clears it and mints a super_admin session.
//
// Every failure is reported in the Result, never raised.
func (s *Service) Authenticate(r Request) Result {
	token := sessionToken(r)
	if token != "" {
		if session, ok := s.store.Validate(token); ok {
			return Result{Authenticated: true, Session: session}
		}
	}

	identifier := r.ClientAddress()
	if allowed, _ := s.limiter.CheckAllowed(identifier); !allowed {
		return Result{Err: ErrRateLimited}
	}

	key := adminKey(r)
	if key == "" {
		if token != "" {
			return Result{Err: ErrInvalidSession}
		}
		return Result{Err: ErrNoCredentials}
	}

	if !s.secrets.configured() {
		// Operator fault, not a caller fault.
		s.logger.Error().Str("client", identifier).Msg("admin key presented but no key is configured")
		return Result{Err: ErrMisconfigured}
	}

	if !s.secrets.match(key) {
		s.limiter.RecordFailure(identifier)
		return Result{Err: ErrInvalidCredentials}
	}

	s.limiter.Clear(identifier)
	session, err := s.store.Create(roles.RoleSuperAdmin, identifier, r.ClientAgent())
	if err != nil {
		return Result{Err: errors.Wrap(err, "[Service.Authenticate] store.Create")}
	}
	return Result{Authenticated: true, Session: session}
}

// RequireAuth authenticates the request and, when permission is non-empty,
// additionally checks the session's role against it. A failed permission
// check downgrades the result to ErrInsufficientPermission, which callers
// must distinguish from authentication failure.
func (s *Service) RequireAuth(r Request, permission roles.Permission) Result {
	result := s.Authenticate(r)
	if !result.Authenticated || permission == "" {
		return result
	}
	if !roles.HasPermission(result.Session.Role, permission) {
		return Result{Err: ErrInsufficientPermission}
	}
	return result
}

// RequireSuperAdmin authenticates the request and requires the super_admin
// role itself, not merely the wildcard permission, since no other role ever
// holds it.
func (s *Service) RequireSuperAdmin(r Request) Result {
	result := s.Authenticate(r)
	if !result.Authenticated {
		return result
	}
	if result.Session.Role != roles.RoleSuperAdmin {
		return Result{Err: ErrInsufficientPermission}
	}
	return result
}

// Logout invalidates the session presented by the request, if any.
// Idempotent.
func (s *Service) Logout(r Request) {
	if token := sessionToken(r); token != "" {
		s.store.Invalidate(token)
	}
}

func sessionToken(r Request) string {
	if token := r.Header(SessionTokenHeader); token != "" {
		return token
	}
	authHeader := r.Header(AuthorizationHeader)
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func adminKey(r Request) string {
	if key := r.Header(AdminKeyHeader); key != "" {
		return key
	}
	return r.QueryParam(AdminKeyQueryParam)
}
