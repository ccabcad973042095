package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes - Login & Logout
	RouteLogin            = "/login"
	RouteAuthLogin        = "/auth/login"
	RouteAuthLogout       = "/auth/logout"
	RouteAuthSwitchTenant = "/auth/switch-tenant"

	// Role home routes
	RouteHome     = "/home"
	RouteAdmin    = "/admin"
	RouteProducer = "/producer"
	RouteMaster   = "/master"
)
