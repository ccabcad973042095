package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/artevia/venue-gateway/internal/errors"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// TokenSource supplies the current bearer token, or "" when unauthenticated.
type TokenSource func() string

// Client is the HTTP client of the external backend API. All responses pass
// through one normalization step so the rest of the gateway sees a single
// canonical shape regardless of backend envelope drift.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
	log         zerolog.Logger
}

type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client (primarily for testing).
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTokenSource sets the supplier of the bearer token attached to requests.
func WithTokenSource(source TokenSource) ClientOption {
	return func(c *Client) {
		c.tokenSource = source
	}
}

func NewClient(baseURL string, log zerolog.Logger, options ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("[NewClient] baseURL is required")
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		log:        log,
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// Login posts credentials to the backend auth endpoint. A non-success status
// or an unreadable body is an authentication failure.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := loginRequest{Email: email, Password: password}
	var res LoginResponse
	if err := c.post(ctx, "/auth/login", body, &res); err != nil {
		return nil, errors.Wrap(apperrors.ErrAuthFailed, err.Error())
	}
	return &res, nil
}

// SwitchTenant exchanges the current token for one scoped to the target
// tenant.
func (c *Client) SwitchTenant(ctx context.Context, targetTenantID string) (*SwitchTenantResponse, error) {
	body := switchTenantRequest{TargetTenantID: targetTenantID}
	var res SwitchTenantResponse
	if err := c.post(ctx, "/auth/switch-tenant", body, &res); err != nil {
		return nil, errors.Wrap(apperrors.ErrSwitchRejected, err.Error())
	}
	return &res, nil
}

// TenantSettings fetches the settings record for a tenant.
func (c *Client) TenantSettings(ctx context.Context, tenantID string) (*TenantSettingsResponse, error) {
	var res TenantSettingsResponse
	if err := c.get(ctx, "/tenants/"+tenantID+"/settings", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// TenantFlags fetches the feature-flag bundle for a tenant. Flags absent
// from the bundle are resolved by the flag policy, not here.
func (c *Client) TenantFlags(ctx context.Context, tenantID string) (map[string]bool, error) {
	var res tenantResponse
	if err := c.get(ctx, "/tenants/"+tenantID, &res); err != nil {
		return nil, err
	}
	return res.Features, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "[Client.post] marshal request body")
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrapf(err, "[Client.newRequest] %s %s", method, path)
	}
	req.Header.Set("X-Request-Id", uuid.New().String())
	req.Header.Set("Accept", "application/json")
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	c.log.Debug().Str("method", req.Method).Str("path", req.URL.Path).Msg("backend request")
	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "[Client.do] %s %s", req.Method, req.URL.Path)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return errors.Wrapf(apperrors.ErrTenantNotFound, "%s %s", req.Method, req.URL.Path)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return errors.Wrapf(apperrors.ErrBadResponse, "%s %s returned %d", req.Method, req.URL.Path, res.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := decode(res.Body, out); err != nil {
		return errors.Wrapf(err, "[Client.do] decode %s %s", req.Method, req.URL.Path)
	}
	return nil
}

// decode unwraps any data envelopes before unmarshalling the payload. The
// backend has shipped bare objects, {"data": {...}} and {"data": {"data":
// {...}}} over time; callers only ever see the innermost shape.
func decode(r io.Reader, out any) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	return json.Unmarshal(normalizeEnvelope(raw), out)
}

func normalizeEnvelope(raw []byte) []byte {
	for {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Data) == 0 {
			return raw
		}
		raw = envelope.Data
	}
}
