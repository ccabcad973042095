package tenant_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/artevia/venue-gateway/backend"
	"github.com/artevia/venue-gateway/tenant"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.Handler, options ...tenant.ServiceOption) *tenant.Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := backend.NewClient(srv.URL, zerolog.Nop())
	require.NoError(t, err)
	service, err := tenant.NewService(client, zerolog.Nop(), options...)
	require.NoError(t, err)
	return service
}

func settingsHandler(t *testing.T, byTenant map[string]string) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tenants/{id}/settings", func(w http.ResponseWriter, r *http.Request) {
		body, ok := byTenant[r.PathValue("id")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(body))
	})
	mux.HandleFunc("GET /tenants/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":{}}`))
	})
	return mux
}

func TestRefetchPopulatesSettings(t *testing.T) {
	service := newTestService(t, settingsHandler(t, map[string]string{
		"t1": `{"name":"City of Arts","slug":"coa","type":"MUSEUM","isCityMode":true,"primaryColor":"#222","theme":"dark"}`,
	}))

	service.SetTenantID(context.Background(), "t1")

	settings := service.Tenant()
	require.NotNil(t, settings)
	require.Equal(t, "t1", settings.ID)
	require.Equal(t, "City of Arts", settings.Name)
	require.True(t, service.IsCityMode())
	require.False(t, service.Loading())
}

func TestRefetchNotFoundFallsBackToDefaults(t *testing.T) {
	service := newTestService(t, settingsHandler(t, nil))

	service.SetTenantID(context.Background(), "missing")

	require.Nil(t, service.Tenant())
	require.False(t, service.IsCityMode())
	require.False(t, service.Loading())
}

func TestClearingTenantClearsSettings(t *testing.T) {
	service := newTestService(t, settingsHandler(t, map[string]string{
		"t1": `{"name":"MAC","isCityMode":false}`,
	}))

	service.SetTenantID(context.Background(), "t1")
	require.NotNil(t, service.Tenant())

	service.SetTenantID(context.Background(), "")
	require.Nil(t, service.Tenant())
	require.False(t, service.IsCityMode())
}

func TestSetTenantIDUnchangedDoesNotRefetch(t *testing.T) {
	var calls int
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tenants/{id}/settings", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"name":"MAC"}`))
	})
	mux.HandleFunc("GET /tenants/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":{}}`))
	})
	service := newTestService(t, mux)

	service.SetTenantID(context.Background(), "t1")
	service.SetTenantID(context.Background(), "t1")
	require.Equal(t, 1, calls)
}

func TestFlagResolution(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tenants/{id}/settings", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"MAC"}`))
	})
	mux.HandleFunc("GET /tenants/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":{"shop":false,"certificates":true}}`))
	})
	service := newTestService(t, mux)
	service.SetTenantID(context.Background(), "t1")

	require.False(t, service.FlagEnabled(tenant.FlagShop), "explicit false wins")
	require.True(t, service.FlagEnabled(tenant.FlagCertificates))
	require.True(t, service.FlagEnabled(tenant.FlagGamification), "undefined fails open")
	require.False(t, service.FlagEnabled(tenant.FlagMunicipalHierarchy), "municipal features fail closed")
}

func TestFlagDefaultsWithoutTenant(t *testing.T) {
	service := newTestService(t, settingsHandler(t, nil))

	require.True(t, service.FlagEnabled(tenant.FlagShop))
	require.False(t, service.FlagEnabled(tenant.FlagMunicipalHierarchy))
}

func TestStaleResponseDiscarded(t *testing.T) {
	releaseA := make(chan struct{})
	aStarted := make(chan struct{})
	var once sync.Once
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tenants/{id}/settings", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "a" {
			once.Do(func() { close(aStarted) })
			<-releaseA
			w.Write([]byte(`{"name":"Tenant A","isCityMode":true}`))
			return
		}
		w.Write([]byte(`{"name":"Tenant B","isCityMode":false}`))
	})
	mux.HandleFunc("GET /tenants/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":{}}`))
	})
	service := newTestService(t, mux)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		service.SetTenantID(context.Background(), "a")
	}()

	// Switch to tenant b while a's fetch is still in flight, then let a's
	// late response arrive.
	<-aStarted
	service.SetTenantID(context.Background(), "b")
	close(releaseA)
	wg.Wait()

	settings := service.Tenant()
	require.NotNil(t, settings)
	require.Equal(t, "Tenant B", settings.Name, "late response for a must not overwrite b")
	require.False(t, service.IsCityMode())
}
