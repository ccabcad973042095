package tenant

// Feature flag names used by the navigation layer.
const (
	FlagShop               = "shop"
	FlagGamification       = "gamification"
	FlagCertificates       = "certificates"
	FlagMunicipalHierarchy = "municipalHierarchy"
)

// FlagPolicy names the default for flags the backend leaves undefined.
// Most features fail open; the flags listed in ClosedFlags fail closed.
type FlagPolicy struct {
	OpenByDefault bool
	ClosedFlags   []string
}

// DefaultFlagPolicy fails open except for municipal-hierarchy features,
// which stay hidden until a tenant opts in.
func DefaultFlagPolicy() FlagPolicy {
	return FlagPolicy{
		OpenByDefault: true,
		ClosedFlags:   []string{FlagMunicipalHierarchy},
	}
}

// Resolve answers whether a flag is enabled given a (possibly nil) fetched
// bundle.
func (p FlagPolicy) Resolve(flags map[string]bool, name string) bool {
	if enabled, ok := flags[name]; ok {
		return enabled
	}
	return p.Default(name)
}

// Default is the answer for a flag the backend did not define.
func (p FlagPolicy) Default(name string) bool {
	for _, closed := range p.ClosedFlags {
		if closed == name {
			return false
		}
	}
	return p.OpenByDefault
}
