package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/artevia/venue-gateway/backend"
	apperrors "github.com/artevia/venue-gateway/internal/errors"
	"github.com/artevia/venue-gateway/internal/utils"
	"github.com/artevia/venue-gateway/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const demoTenantID = "demo"

// TenantListener is notified whenever the active tenant ID changes,
// including transitions to and from "".
type TenantListener func(tenantID string)

// LoginResult is returned to the caller so it can pick the post-login
// redirect.
type LoginResult struct {
	Role       session.Role
	TenantType session.TenantType
}

// Service is the single source of truth for who is logged in, as whom, for
// which tenant. It is the only component allowed to write the session store.
type Service struct {
	store    *session.Store
	client   *backend.Client
	log      zerolog.Logger
	demoMode bool
	onTenant TenantListener

	mu      sync.RWMutex
	current session.Session
}

type ServiceOption func(*Service)

// WithDemoMode makes login infer identity from the email shape instead of
// contacting the backend.
func WithDemoMode(enabled bool) ServiceOption {
	return func(s *Service) {
		s.demoMode = enabled
	}
}

// WithTenantListener registers the callback fired on tenant changes.
func WithTenantListener(listener TenantListener) ServiceOption {
	return func(s *Service) {
		s.onTenant = listener
	}
}

// NewService builds the auth service and rehydrates the in-memory session
// from the store exactly once, at construction.
func NewService(store *session.Store, client *backend.Client, log zerolog.Logger, options ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, errors.New("[NewService] session store is required")
	}
	if client == nil {
		return nil, errors.New("[NewService] backend client is required")
	}

	s := &Service{
		store:  store,
		client: client,
		log:    log,
	}
	for _, opt := range options {
		opt(s)
	}

	if sess := store.Load(); sess != nil {
		s.current = *sess
	}
	return s, nil
}

// Login authenticates against the backend (or locally in demo mode),
// persists the resulting session, and returns the role and tenant type for
// post-login redirection. On failure the session is left untouched.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if s.demoMode {
		return s.demoLogin(email), nil
	}

	res, err := s.client.Login(ctx, email, password)
	if err != nil {
		return LoginResult{}, errors.Wrap(err, "[Service.Login] backend login")
	}
	if res.AccessToken == "" {
		return LoginResult{}, errors.Wrap(apperrors.ErrMissingToken, "[Service.Login]")
	}

	sess := session.Session{
		Token:      res.AccessToken,
		Role:       session.NormalizeRole(res.Role),
		TenantID:   res.TenantID,
		TenantType: session.NormalizeTenantType(res.TenantType),
		Email:      res.User.Email,
		Name:       res.User.Name,
	}
	s.replaceSession(sess)
	return LoginResult{Role: sess.Role, TenantType: sess.TenantType}, nil
}

// demoLogin never touches the network. Emails containing "master" get the
// master role, everything else is an admin; "producer" in the email selects
// a producer tenant.
func (s *Service) demoLogin(email string) LoginResult {
	role := session.RoleAdmin
	if strings.Contains(strings.ToLower(email), "master") {
		role = session.RoleMaster
	}
	tenantType := session.TenantTypeMuseum
	if strings.Contains(strings.ToLower(email), "producer") {
		tenantType = session.TenantTypeProducer
	}

	sess := session.Session{
		Token:      "demo-" + uuid.New().String(),
		Role:       role,
		TenantID:   demoTenantID,
		TenantType: tenantType,
		Email:      email,
		Name:       strings.SplitN(email, "@", 2)[0],
	}
	s.replaceSession(sess)
	return LoginResult{Role: role, TenantType: tenantType}
}

// Logout resets every session field and removes the stored record. It makes
// no network call.
func (s *Service) Logout() {
	s.mu.Lock()
	changed := s.current.TenantID != ""
	s.current = session.Session{}
	s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		s.log.Error().Err(err).Msg("failed to clear session store")
	}
	if changed {
		s.notifyTenant("")
	}
}

// UpdateSession applies a token refresh or tenant switch. The role is
// re-normalized; tenant type and email carry over from the prior session,
// and a nil name preserves the prior name.
func (s *Service) UpdateSession(token, role, tenantID string, name *string) {
	s.mu.Lock()
	next := s.current
	next.Token = token
	next.Role = session.NormalizeRole(role)
	changed := next.TenantID != tenantID
	next.TenantID = tenantID
	if name != nil {
		next.Name = *name
	}
	s.current = next
	s.mu.Unlock()

	s.persist(next)
	if changed {
		s.notifyTenant(tenantID)
	}
}

// SwitchTenant asks the backend for a token scoped to the target tenant and
// folds the response into the session.
func (s *Service) SwitchTenant(ctx context.Context, targetTenantID string) (LoginResult, error) {
	if !s.IsAuthenticated() {
		return LoginResult{}, errors.Wrap(NotAuthenticatedErr, "[Service.SwitchTenant]")
	}

	res, err := s.client.SwitchTenant(ctx, targetTenantID)
	if err != nil {
		return LoginResult{}, errors.Wrap(err, "[Service.SwitchTenant] backend switch")
	}

	var name *string
	if res.Name != "" {
		name = utils.Ptr(res.Name)
	}
	s.UpdateSession(res.AccessToken, res.Role, res.TenantID, name)

	sess := s.Snapshot()
	return LoginResult{Role: sess.Role, TenantType: sess.TenantType}, nil
}

// Snapshot returns a copy of the current session.
func (s *Service) Snapshot() session.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsAuthenticated reports whether a token is held.
func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token != ""
}

// TokenExpiry reads the expiry claim of the backend-issued access token
// without verifying it; verification is the backend's job. Demo tokens are
// not JWTs and report no expiry.
func (s *Service) TokenExpiry() (time.Time, bool) {
	sess := s.Snapshot()
	if !sess.Authenticated() {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(sess.Token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (s *Service) replaceSession(sess session.Session) {
	s.mu.Lock()
	changed := s.current.TenantID != sess.TenantID
	s.current = sess
	s.mu.Unlock()

	s.persist(sess)
	if changed {
		s.notifyTenant(sess.TenantID)
	}
}

func (s *Service) persist(sess session.Session) {
	if err := s.store.Save(&sess); err != nil {
		s.log.Error().Err(err).Msg("failed to persist session")
	}
}

func (s *Service) notifyTenant(tenantID string) {
	if s.onTenant != nil {
		s.onTenant(tenantID)
	}
}
