package server

import (
	"github.com/artevia/venue-gateway/session"
)

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("GET /{$}", ChainMiddleware(s.IndexHandler(), s.HTMLMiddleware()...))

	// LOGIN
	s.RegisterRouteHandler("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginSubmissionHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthSwitchTenant, ChainMiddleware(s.SwitchTenantHandler(),
		s.HTMLMiddleware(s.RequireRole(session.RoleAdmin, session.RoleMaster))...))

	// Role shells (guarded)
	s.RegisterRouteHandler("GET "+RouteHome, ChainMiddleware(s.HomeHandler(),
		s.HTMLMiddleware(s.RequireRole(session.RoleVisitor))...))
	s.RegisterRouteHandler("GET "+RouteAdmin, ChainMiddleware(s.AdminHandler(),
		s.HTMLMiddleware(s.RequireRole(session.RoleAdmin))...))
	s.RegisterRouteHandler("GET "+RouteProducer, ChainMiddleware(s.ProducerHandler(),
		s.HTMLMiddleware(s.RequireRole(session.RoleAdmin), s.RequireProducerTenant)...))
	s.RegisterRouteHandler("GET "+RouteMaster, ChainMiddleware(s.MasterHandler(),
		s.HTMLMiddleware(s.RequireRole(session.RoleMaster))...))
}
