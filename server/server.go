package server

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/artevia/venue-gateway/auth"
	"github.com/artevia/venue-gateway/internal/config"
	"github.com/artevia/venue-gateway/tenant"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Server is the app shell: it owns the routes, the role guard, and the
// layout chrome wrapped around each page. All business logic lives behind
// the backend API; the server only propagates session and tenant state.
type Server struct {
	env       string
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	auth      *auth.Service
	tenants   *tenant.Service
	templates *template.Template
	log       zerolog.Logger
}

func New(cfg config.Config, authService *auth.Service, tenantService *tenant.Service, log zerolog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("[Server New] config is required")
	}
	if authService == nil {
		return nil, errors.New("[Server New] auth service is required")
	}
	if tenantService == nil {
		return nil, errors.New("[Server New] tenant service is required")
	}

	templates, err := template.New("layouts").Parse(layoutTemplates)
	if err != nil {
		return nil, errors.Wrap(err, "[Server New] parse layout templates")
	}

	s := &Server{
		env:       cfg.GetEnv(),
		mux:       http.NewServeMux(),
		config:    cfg,
		auth:      authService,
		tenants:   tenantService,
		templates: templates,
		log:       log,
	}

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
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)
		if len(parts) > 1 {
			s.logRoute(parts[0], parts[1])
		} else {
			s.logRoute("", parts[0])
		}
	}
}

func (s *Server) logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	s.log.Info().Msgf("[%-19s] %s", displayMethod, path)
}
