package backend

// Wire shapes of the backend API after envelope normalization. Domain types
// live in their owning packages; these are the transport DTOs only.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	Role        string `json:"role"`
	TenantID    string `json:"tenantId"`
	TenantType  string `json:"tenantType"`
	User        struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

type switchTenantRequest struct {
	TargetTenantID string `json:"targetTenantId"`
}

type SwitchTenantResponse struct {
	AccessToken string `json:"accessToken"`
	Role        string `json:"role"`
	TenantID    string `json:"tenantId"`
	Name        string `json:"name"`
}

type TenantSettingsResponse struct {
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Type           string `json:"type"`
	IsCityMode     bool   `json:"isCityMode"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	Theme          string `json:"theme"`
	LogoURL        string `json:"logoUrl,omitempty"`
}

type tenantResponse struct {
	Features map[string]bool `json:"features"`
}
