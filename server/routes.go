package server

import "github.com/caredirectory/go-admin-auth/roles"

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())
	s.RegisterRouteHandler("GET "+RouteMetrics, s.metrics.Handler())

	// LOGIN / LOGOUT
	s.RegisterRouteFunc("POST "+RouteAdminLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteAdminLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))

	// Authenticated admin routes
	s.RegisterRouteFunc("GET "+RouteAdminSession, ChainMiddleware(s.SessionHandler(), append(s.APIMiddleware(), s.RequireAuth(roles.PermissionRead))...))
	s.RegisterRouteFunc("GET "+RouteAdminStats, ChainMiddleware(s.StatsHandler(), append(s.APIMiddleware(), s.RequireSuperAdmin())...))
}
