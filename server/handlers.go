package server

import (
	"net/http"
	"time"
)

type loginResponse struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

type sessionResponse struct {
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
	ClientAddress string    `json:"client_address"`
	ClientAgent   string    `json:"client_agent"`
}

type statsResponse struct {
	ActiveSessions int `json:"active_sessions"`
}

// LoginHandler authenticates with the shared admin key (or an existing
// session token) and returns the session token to present on later requests.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := s.auth.Authenticate(AdaptRequest(r))
		if !result.Authenticated {
			s.rejectRequest(w, result.Err)
			return
		}
		s.metrics.AuthAttempts.WithLabelValues("success").Inc()
		writeJSON(w, http.StatusOK, loginResponse{
			Token:     result.Session.ID,
			Role:      string(result.Session.Role),
			ExpiresAt: result.Session.ExpiresAt,
		})
	}
}

// LogoutHandler invalidates the presented session token. Always succeeds;
// logging out an unknown token is a no-op.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.auth.Logout(AdaptRequest(r))
		w.WriteHeader(http.StatusNoContent)
	}
}

// SessionHandler returns metadata for the authenticated session.
func (s *Server) SessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			Unauthorized(w, "no session")
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse{
			Role:          string(session.Role),
			CreatedAt:     session.CreatedAt,
			ExpiresAt:     session.ExpiresAt,
			ClientAddress: session.ClientAddress,
			ClientAgent:   session.ClientAgent,
		})
	}
}

// StatsHandler reports store occupancy. Super-admin only.
func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, statsResponse{ActiveSessions: s.store.Len()})
	}
}

// HealthHandler is a liveness probe.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
