// Package terminology maps the generic domain nouns onto mode-appropriate
// display labels. City-mode tenants trade museum vocabulary for
// municipal/tourism vocabulary.
package terminology

// Translator resolves a translation key, falling back to the given string
// when the translation layer has no entry. A nil Translator always falls
// back.
type Translator func(key, fallback string) string

// Terms is the fixed-shape record of display nouns. Every field is
// guaranteed non-empty.
type Terms struct {
	Work     string
	Works    string
	Artist   string
	Artists  string
	Trail    string
	Trails   string
	Room     string
	Rooms    string
	Floor    string
	Floors   string
	Event    string
	Events   string
	Visitor  string
	Visitors string
}

type entry struct {
	key    string
	museum string
	city   string
	assign func(*Terms, string)
}

var table = []entry{
	{"work", "Work", "Attraction", func(t *Terms, v string) { t.Work = v }},
	{"works", "Works", "Attractions", func(t *Terms, v string) { t.Works = v }},
	{"artist", "Artist", "Creator", func(t *Terms, v string) { t.Artist = v }},
	{"artists", "Artists", "Creators", func(t *Terms, v string) { t.Artists = v }},
	{"trail", "Trail", "Route", func(t *Terms, v string) { t.Trail = v }},
	{"trails", "Trails", "Routes", func(t *Terms, v string) { t.Trails = v }},
	{"room", "Room", "District", func(t *Terms, v string) { t.Room = v }},
	{"rooms", "Rooms", "Districts", func(t *Terms, v string) { t.Rooms = v }},
	{"floor", "Floor", "Area", func(t *Terms, v string) { t.Floor = v }},
	{"floors", "Floors", "Areas", func(t *Terms, v string) { t.Floors = v }},
	{"event", "Event", "Event", func(t *Terms, v string) { t.Event = v }},
	{"events", "Events", "Events", func(t *Terms, v string) { t.Events = v }},
	{"visitor", "Visitor", "Tourist", func(t *Terms, v string) { t.Visitor = v }},
	{"visitors", "Visitors", "Tourists", func(t *Terms, v string) { t.Visitors = v }},
}

// Resolve builds the terminology record for the given mode. Pure: the
// result depends only on the two inputs and is recomputed on every call.
func Resolve(isCityMode bool, tr Translator) Terms {
	var terms Terms
	for _, e := range table {
		fallback := e.museum
		key := "terminology.museum." + e.key
		if isCityMode {
			fallback = e.city
			key = "terminology.city." + e.key
		}
		label := fallback
		if tr != nil {
			if translated := tr(key, fallback); translated != "" {
				label = translated
			}
		}
		e.assign(&terms, label)
	}
	return terms
}
