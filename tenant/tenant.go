package tenant

// Settings is the per-tenant configuration resolved from the backend
// whenever the active tenant changes. It is never persisted locally.
type Settings struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Type           string `json:"type"`
	IsCityMode     bool   `json:"is_city_mode"` // sole switch for terminology and navigation
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Theme          string `json:"theme"`
	LogoURL        string `json:"logo_url,omitempty"`
}
