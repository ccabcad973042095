package server

import (
	"net/http"
	"net/url"

	"github.com/artevia/venue-gateway/session"
)

// RedirectPathFor maps a role (and, for admins, the tenant type) to its
// post-login landing route.
func RedirectPathFor(role session.Role, tenantType session.TenantType) string {
	switch role {
	case session.RoleMaster:
		return RouteMaster
	case session.RoleAdmin:
		if tenantType == session.TenantTypeProducer {
			return RouteProducer
		}
		return RouteAdmin
	default:
		return RouteHome
	}
}

// RequireRole guards a route. Unauthenticated access redirects to the login
// page with the originally requested path preserved; an authenticated
// session with a different role is sent to its own landing route.
func (s *Server) RequireRole(roles ...session.Role) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sess := s.auth.Snapshot()
			if !sess.Authenticated() {
				http.Redirect(w, r, loginRedirectURL(r.URL.Path), http.StatusSeeOther)
				return
			}
			for _, role := range roles {
				if sess.Role == role {
					next(w, r)
					return
				}
			}
			http.Redirect(w, r, RedirectPathFor(sess.Role, sess.TenantType), http.StatusSeeOther)
		}
	}
}

// RequireProducerTenant keeps museum admins out of the producer shell.
// Chain after RequireRole(RoleAdmin).
func (s *Server) RequireProducerTenant(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.auth.Snapshot()
		if sess.TenantType != session.TenantTypeProducer {
			http.Redirect(w, r, RedirectPathFor(sess.Role, sess.TenantType), http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

func loginRedirectURL(requestedPath string) string {
	return RouteLogin + "?next=" + url.QueryEscape(requestedPath)
}
