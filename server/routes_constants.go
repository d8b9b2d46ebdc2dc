package server

const (
	RouteHealth       = "/healthz"
	RouteMetrics      = "/metrics"
	RouteAdminLogin   = "/admin/login"
	RouteAdminLogout  = "/admin/logout"
	RouteAdminSession = "/admin/session"
	RouteAdminStats   = "/admin/stats"
)
