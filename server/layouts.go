package server

import (
	"net/http"

	"github.com/artevia/venue-gateway/session"
	"github.com/artevia/venue-gateway/tenant"
	"github.com/artevia/venue-gateway/terminology"
)

// Layout names the chrome wrapped around a page.
type Layout string

const (
	LayoutVisitor  Layout = "Visitor"
	LayoutAdmin    Layout = "Admin"
	LayoutProducer Layout = "Producer"
	LayoutMaster   Layout = "Master"
)

type NavLink struct {
	Label string
	Path  string
}

type shellData struct {
	AppName string
	Title   string
	Layout  Layout
	Session session.Session
	Tenant  *tenant.Settings
	Terms   terminology.Terms
	Nav     []NavLink
}

func (s *Server) shellHandler(title string, layout Layout) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		terms := terminology.Resolve(s.tenants.IsCityMode(), nil)
		data := shellData{
			AppName: s.config.GetAppName(),
			Title:   title,
			Layout:  layout,
			Session: s.auth.Snapshot(),
			Tenant:  s.tenants.Tenant(),
			Terms:   terms,
			Nav:     s.navLinks(layout, terms),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.templates.ExecuteTemplate(w, "shell", data); err != nil {
			s.log.Err(err).Str("layout", string(layout)).Msg("failed to render shell")
		}
	}
}

// navLinks builds the navigation for a layout, labelled with the current
// terminology and filtered by the tenant's feature flags.
func (s *Server) navLinks(layout Layout, terms terminology.Terms) []NavLink {
	type candidate struct {
		label string
		path  string
		flag  string // "" means always visible
	}

	var candidates []candidate
	switch layout {
	case LayoutVisitor:
		candidates = []candidate{
			{terms.Works, "/home/works", ""},
			{terms.Trails, "/home/trails", ""},
			{terms.Events, "/home/events", ""},
			{"Shop", "/home/shop", tenant.FlagShop},
			{"Rewards", "/home/rewards", tenant.FlagGamification},
		}
	case LayoutAdmin:
		candidates = []candidate{
			{terms.Works, "/admin/works", ""},
			{terms.Trails, "/admin/trails", ""},
			{terms.Rooms, "/admin/rooms", ""},
			{terms.Events, "/admin/events", ""},
			{terms.Visitors, "/admin/visitors", ""},
			{"Shop", "/admin/shop", tenant.FlagShop},
			{"Certificates", "/admin/certificates", tenant.FlagCertificates},
			{"Municipal hierarchy", "/admin/municipal", tenant.FlagMunicipalHierarchy},
		}
	case LayoutProducer:
		candidates = []candidate{
			{terms.Events, "/producer/events", ""},
			{terms.Visitors, "/producer/visitors", ""},
			{"Certificates", "/producer/certificates", tenant.FlagCertificates},
		}
	case LayoutMaster:
		candidates = []candidate{
			{"Tenants", "/master/tenants", ""},
			{"Analytics", "/master/analytics", ""},
		}
	}

	links := make([]NavLink, 0, len(candidates))
	for _, c := range candidates {
		if c.flag != "" && !s.tenants.FlagEnabled(c.flag) {
			continue
		}
		links = append(links, NavLink{Label: c.label, Path: c.path})
	}
	return links
}

const layoutTemplates = `
{{define "login"}}<!DOCTYPE html>
<html>
<head><title>{{.AppName}} - Sign in</title></head>
<body>
<h1>{{.AppName}}</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/auth/login">
<input type="hidden" name="next" value="{{.Next}}">
<label>Email <input type="email" name="email" value="{{.Email}}" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Sign in</button>
</form>
</body>
</html>{{end}}

{{define "shell"}}<!DOCTYPE html>
<html>
<head>
<title>{{.AppName}} - {{.Title}}</title>
{{with .Tenant}}<style>:root { --primary: {{.PrimaryColor}}; --secondary: {{.SecondaryColor}}; }</style>{{end}}
</head>
<body class="layout-{{.Layout}}">
<header>
{{with .Tenant}}{{if .LogoURL}}<img src="{{.LogoURL}}" alt="{{.Name}}">{{end}}<span>{{.Name}}</span>{{end}}
<nav>
{{range .Nav}}<a href="{{.Path}}">{{.Label}}</a>
{{end}}</nav>
<span>{{.Session.Name}}</span>
<a href="/auth/logout">Sign out</a>
</header>
<main>
<h1>{{.Title}}</h1>
</main>
</body>
</html>{{end}}
`
