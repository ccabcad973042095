package tenant

import (
	"context"
	"sync"

	"github.com/artevia/venue-gateway/backend"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Service resolves tenant settings and feature flags whenever the active
// tenant changes. Fetch failures are absorbed: consumers see nil settings
// and default flags, never an error.
type Service struct {
	client *backend.Client
	log    zerolog.Logger
	policy FlagPolicy

	mu       sync.Mutex
	tenantID string
	settings *Settings
	flags    map[string]bool
	loading  bool
	fetchSeq uint64
}

type ServiceOption func(*Service)

// WithFlagPolicy overrides the default flag policy.
func WithFlagPolicy(policy FlagPolicy) ServiceOption {
	return func(s *Service) {
		s.policy = policy
	}
}

func NewService(client *backend.Client, log zerolog.Logger, options ...ServiceOption) (*Service, error) {
	if client == nil {
		return nil, errors.New("[NewService] backend client is required")
	}
	s := &Service{
		client: client,
		log:    log,
		policy: DefaultFlagPolicy(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// SetTenantID records the active tenant and refetches when it changed.
// An empty ID clears the settings.
func (s *Service) SetTenantID(ctx context.Context, tenantID string) {
	s.mu.Lock()
	if s.tenantID == tenantID {
		s.mu.Unlock()
		return
	}
	s.tenantID = tenantID
	s.mu.Unlock()

	s.Refetch(ctx)
}

// Refetch reloads settings and flags for the active tenant. Each fetch is
// tagged with a sequence captured under the lock; a response only applies
// if no newer fetch started in the meantime, so settings always reflect the
// most recently requested tenant even when responses arrive out of order.
func (s *Service) Refetch(ctx context.Context) {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	tenantID := s.tenantID
	if tenantID == "" {
		s.settings = nil
		s.flags = nil
		s.loading = false
		s.mu.Unlock()
		return
	}
	s.loading = true
	s.mu.Unlock()

	settings, settingsErr := s.client.TenantSettings(ctx, tenantID)
	flags, flagsErr := s.client.TenantFlags(ctx, tenantID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.fetchSeq {
		s.log.Debug().Str("tenant_id", tenantID).Msg("discarding stale tenant fetch")
		return
	}
	s.loading = false

	if settingsErr != nil {
		s.log.Error().Err(settingsErr).Str("tenant_id", tenantID).Msg("tenant settings fetch failed, falling back to defaults")
		s.settings = nil
	} else {
		s.settings = &Settings{
			ID:             tenantID,
			Name:           settings.Name,
			Slug:           settings.Slug,
			Type:           settings.Type,
			IsCityMode:     settings.IsCityMode,
			PrimaryColor:   settings.PrimaryColor,
			SecondaryColor: settings.SecondaryColor,
			Theme:          settings.Theme,
			LogoURL:        settings.LogoURL,
		}
	}

	if flagsErr != nil {
		s.log.Error().Err(flagsErr).Str("tenant_id", tenantID).Msg("tenant flags fetch failed, falling back to policy defaults")
		s.flags = nil
	} else {
		s.flags = flags
	}
}

// Tenant returns a copy of the current settings, or nil when unknown.
// Nil means "unknown/default", not an error state.
func (s *Service) Tenant() *Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		return nil
	}
	copied := *s.settings
	return &copied
}

// Loading reports whether the latest fetch is still in flight.
func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsCityMode fails closed to non-city mode when settings are unknown.
func (s *Service) IsCityMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings != nil && s.settings.IsCityMode
}

// FlagEnabled resolves a feature flag through the policy.
func (s *Service) FlagEnabled(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.policy.Resolve(s.flags, name)
}

// TenantID returns the active tenant ID, or "".
func (s *Service) TenantID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tenantID
}
