// Package server is the HTTP-facing host layer for the admin authentication
// subsystem: route registration, request adaptation, and the 401/403
// response split.
package server

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/caredirectory/go-admin-auth/auth"
	"github.com/caredirectory/go-admin-auth/internal/config"
	"github.com/caredirectory/go-admin-auth/internal/metrics"
	"github.com/caredirectory/go-admin-auth/ratelimit"
	"github.com/caredirectory/go-admin-auth/sessions"
)

type Server struct {
	env     string
	mux     *http.ServeMux
	routes  []string
	config  config.Config
	auth    *auth.Service
	store   *sessions.Store
	metrics *metrics.Metrics
}

// New wires the authentication facade over the injected store and limiter.
// The caller owns the store's lifecycle (its sweeper is stopped via
// Store.Close at shutdown).
func New(cfg config.Config, store *sessions.Store, limiter *ratelimit.Limiter, m *metrics.Metrics) (*Server, error) {
	secrets := auth.Secrets{
		Key:     cfg.GetAdminKey(),
		KeyHash: cfg.GetAdminKeyHash(),
	}
	authService, err := auth.NewService(secrets, store, limiter)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create auth service: %w", err)
	}

	s := &Server{
		env:     cfg.GetEnv(),
		mux:     http.NewServeMux(),
		config:  cfg,
		auth:    authService,
		store:   store,
		metrics: m,
	}
	m.ObserveActiveSessions(store.Len)

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return
	}
	for _, route := range s.routes {
		log.Info().Str("route", route).Msg("registered")
	}
}
