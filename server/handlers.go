package server

import (
	"net/http"
	"net/url"
	"strings"
)

// IndexHandler sends an authenticated session to its landing route and
// everyone else to the login page.
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.auth.Snapshot()
		if !sess.Authenticated() {
			http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, RedirectPathFor(sess.Role, sess.TenantType), http.StatusSeeOther)
	}
}

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	AppName string
	Error   string
	Email   string // Preserve email on error
	Next    string // Originally requested path, carried through the form
}

// LoginPageHandler displays the login page (GET /login)
func (s *Server) LoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := LoginPageData{
			AppName: s.config.GetAppName(),
			Error:   r.URL.Query().Get("error"),
			Email:   r.URL.Query().Get("email"),
			Next:    r.URL.Query().Get("next"),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.templates.ExecuteTemplate(w, "login", data); err != nil {
			s.log.Err(err).Msg("failed to render login page")
		}
	}
}

// LoginSubmissionHandler authenticates the posted credentials and redirects
// to the originally requested path, falling back to the role's landing
// route (POST /auth/login).
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		email := r.FormValue("email")
		password := r.FormValue("password")
		next := r.FormValue("next")

		result, err := s.auth.Login(r.Context(), email, password)
		if err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("login failed")
			target := RouteLogin + "?error=" + url.QueryEscape("Invalid credentials") +
				"&email=" + url.QueryEscape(email)
			if next != "" {
				target += "&next=" + url.QueryEscape(next)
			}
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}

		if safeRedirectPath(next) {
			http.Redirect(w, r, next, http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, RedirectPathFor(result.Role, result.TenantType), http.StatusSeeOther)
	}
}

// LogoutHandler clears the session and returns to the login page
// (GET /auth/logout). No backend call is made.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.auth.Logout()
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	}
}

// SwitchTenantHandler moves the session to another tenant and lands on the
// (possibly different) role home (POST /auth/switch-tenant).
func (s *Server) SwitchTenantHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		targetTenantID := r.FormValue("target_tenant_id")
		if targetTenantID == "" {
			http.Error(w, "target_tenant_id is required", http.StatusBadRequest)
			return
		}

		result, err := s.auth.SwitchTenant(r.Context(), targetTenantID)
		if err != nil {
			s.log.Warn().Err(err).Str("target_tenant_id", targetTenantID).Msg("tenant switch failed")
			sess := s.auth.Snapshot()
			http.Redirect(w, r, RedirectPathFor(sess.Role, sess.TenantType), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, RedirectPathFor(result.Role, result.TenantType), http.StatusSeeOther)
	}
}

func (s *Server) HomeHandler() http.HandlerFunc {
	return s.shellHandler("Home", LayoutVisitor)
}

func (s *Server) AdminHandler() http.HandlerFunc {
	return s.shellHandler("Dashboard", LayoutAdmin)
}

func (s *Server) ProducerHandler() http.HandlerFunc {
	return s.shellHandler("Producer dashboard", LayoutProducer)
}

func (s *Server) MasterHandler() http.HandlerFunc {
	return s.shellHandler("Platform overview", LayoutMaster)
}

// safeRedirectPath accepts only local absolute paths, so a crafted next
// parameter cannot bounce the user off-site after login.
func safeRedirectPath(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//")
}
