package session_test

import (
	"testing"

	"github.com/artevia/venue-gateway/session"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected session.Role
	}{
		{"upper master", "MASTER", session.RoleMaster},
		{"lower master", "master", session.RoleMaster},
		{"mixed case admin", "AdMiN", session.RoleAdmin},
		{"upper admin", "ADMIN", session.RoleAdmin},
		{"visitor", "visitor", session.RoleVisitor},
		{"padded visitor", "  Visitor ", session.RoleVisitor},
		{"unknown defaults to visitor", "superuser", session.RoleVisitor},
		{"empty defaults to visitor", "", session.RoleVisitor},
		{"garbage defaults to visitor", "!!@@##", session.RoleVisitor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, session.NormalizeRole(tc.input))
		})
	}
}

func TestNormalizeRoleIdempotent(t *testing.T) {
	for _, input := range []string{"MASTER", "admin", "Visitor", "nonsense", ""} {
		once := session.NormalizeRole(input)
		twice := session.NormalizeRole(string(once))
		require.Equal(t, once, twice, "normalizing %q twice changed the result", input)
	}
}

func TestNormalizeTenantType(t *testing.T) {
	require.Equal(t, session.TenantTypeProducer, session.NormalizeTenantType("PRODUCER"))
	require.Equal(t, session.TenantTypeProducer, session.NormalizeTenantType("producer"))
	require.Equal(t, session.TenantTypeMuseum, session.NormalizeTenantType("MUSEUM"))
	require.Equal(t, session.TenantTypeMuseum, session.NormalizeTenantType(""))
	require.Equal(t, session.TenantTypeMuseum, session.NormalizeTenantType("something-else"))
}

func TestAuthenticated(t *testing.T) {
	var nilSession *session.Session
	require.False(t, nilSession.Authenticated())
	require.False(t, (&session.Session{}).Authenticated())
	require.True(t, (&session.Session{Token: "t"}).Authenticated())
}
