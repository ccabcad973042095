package session

import "strings"

// Role represents the authorization level of a session.
type Role string

const (
	RoleVisitor Role = "visitor"
	RoleAdmin   Role = "admin"
	RoleMaster  Role = "master" // platform-level super admin
)

// TenantType distinguishes venue tenants from event-producer tenants.
type TenantType string

const (
	TenantTypeMuseum   TenantType = "MUSEUM"
	TenantTypeProducer TenantType = "PRODUCER"
)

// Session is the authenticated identity of the gateway. A non-empty Token
// means the session is authenticated; Role is meaningful only in that case.
type Session struct {
	Token      string     `json:"token,omitempty"`
	Role       Role       `json:"role,omitempty"`
	TenantID   string     `json:"tenant_id,omitempty"`
	TenantType TenantType `json:"tenant_type,omitempty"`
	Email      string     `json:"email,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// Authenticated reports whether the session holds an access token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// NormalizeRole maps any role string from the backend onto exactly one Role.
// Matching is case-insensitive; anything unrecognized falls back to the
// lowest privilege.
func NormalizeRole(role string) Role {
	switch strings.ToUpper(strings.TrimSpace(role)) {
	case "MASTER":
		return RoleMaster
	case "ADMIN":
		return RoleAdmin
	case "VISITOR":
		return RoleVisitor
	default:
		return RoleVisitor
	}
}

// NormalizeTenantType maps a backend tenant type onto one of the known
// types. Missing or unrecognized values default to MUSEUM.
func NormalizeTenantType(tenantType string) TenantType {
	if strings.EqualFold(strings.TrimSpace(tenantType), string(TenantTypeProducer)) {
		return TenantTypeProducer
	}
	return TenantTypeMuseum
}
