package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/caredirectory/go-admin-auth/auth"
	"github.com/caredirectory/go-admin-auth/roles"
	"github.com/caredirectory/go-admin-auth/sessions"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

// ContextKeySession stores the authenticated session.
const ContextKeySession ContextKey = "session"

// SessionFromContext returns the session injected by the auth middleware.
func SessionFromContext(ctx context.Context) (*sessions.Session, bool) {
	session, ok := ctx.Value(ContextKeySession).(*sessions.Session)
	return session, ok
}

// RequireAuth guards a route with authentication and, when permission is
// non-empty, a role check. The session is injected into the request context
// on success.
func (s *Server) RequireAuth(permission roles.Permission) func(http.HandlerFunc) http.HandlerFunc {
	return s.guard(func(r auth.Request) auth.Result {
		return s.auth.RequireAuth(r, permission)
	})
}

// RequireSuperAdmin guards a route with authentication and the super_admin
// role specifically.
func (s *Server) RequireSuperAdmin() func(http.HandlerFunc) http.HandlerFunc {
	return s.guard(s.auth.RequireSuperAdmin)
}

func (s *Server) guard(check func(auth.Request) auth.Result) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			result := check(AdaptRequest(r))
			if !result.Authenticated {
				s.rejectRequest(w, result.Err)
				return
			}
			s.metrics.AuthAttempts.WithLabelValues("success").Inc()
			ctx := context.WithValue(r.Context(), ContextKeySession, result.Session)
			next(w, r.WithContext(ctx))
		}
	}
}

// rejectRequest maps the auth error taxonomy onto the HTTP status split:
// insufficient permission is 403, a missing server secret is 503, and every
// other failure is 401.
func (s *Server) rejectRequest(w http.ResponseWriter, err error) {
	s.metrics.AuthAttempts.WithLabelValues(outcomeLabel(err)).Inc()
	switch {
	case errors.Is(err, auth.ErrInsufficientPermission):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrMisconfigured):
		writeJSONError(w, http.StatusServiceUnavailable, "misconfigured", err.Error())
	default:
		Unauthorized(w, err.Error())
	}
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, auth.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, auth.ErrInvalidSession):
		return "invalid_session"
	case errors.Is(err, auth.ErrInsufficientPermission):
		return "insufficient_permission"
	case errors.Is(err, auth.ErrMisconfigured):
		return "misconfigured"
	case errors.Is(err, auth.ErrNoCredentials):
		return "no_credentials"
	default:
		return "error"
	}
}
