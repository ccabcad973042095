package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/artevia/venue-gateway/session"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*session.Store, string) {
	t.Helper()
	dir := t.TempDir()
	return session.NewStore(dir, zerolog.Nop()), dir
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	saved := &session.Session{
		Token:      "token-123",
		Role:       session.RoleAdmin,
		TenantID:   "tenant-1",
		TenantType: session.TenantTypeMuseum,
		Email:      "ana@example.com",
		Name:       "Ana",
	}
	require.NoError(t, store.Save(saved))

	loaded := store.Load()
	require.NotNil(t, loaded)
	require.Equal(t, saved, loaded)
}

func TestStoreLoadAbsent(t *testing.T) {
	store, _ := newTestStore(t)
	require.Nil(t, store.Load())
}

func TestStoreLoadCorrupt(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0o600))
	require.Nil(t, store.Load())
}

func TestStoreClear(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Save(&session.Session{Token: "t"}))
	require.NoError(t, store.Clear())
	require.Nil(t, store.Load())

	// clearing again is fine
	require.NoError(t, store.Clear())
}

func TestStoreSaveOverwrites(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Save(&session.Session{Token: "first"}))
	require.NoError(t, store.Save(&session.Session{Token: "second"}))

	loaded := store.Load()
	require.NotNil(t, loaded)
	require.Equal(t, "second", loaded.Token)
}
