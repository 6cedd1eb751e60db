package locale

import (
	"cmp"
	"maps"
	"slices"
	"sync"
)

// Backend is a provider of locale facets. Implementations keep their own
// option map and must deep copy it in Clone.
type Backend interface {
	Clone() Backend
	SetOption(name, value string)
	ClearOptions()
	// Install returns l with the facet for a single category attached, or l
	// unchanged when the provider has nothing to offer.
	Install(l Locale, category Category, kind FacetKind) Locale
}

// BackendFactory creates a fresh provider instance.
type BackendFactory func() Backend

type registration struct {
	name    string
	rank    int
	factory BackendFactory
}

var (
	registrationsMu sync.Mutex
	registrations   []registration
)

// RegisterBackend makes a provider available to the process-wide manager.
// Providers call it from init; rank orders the lazy population of Global.
// Registering a name twice keeps the first factory.
func RegisterBackend(name string, rank int, factory BackendFactory) {
	if name == "" || factory == nil {
		return
	}
	registrationsMu.Lock()
	defer registrationsMu.Unlock()
	for _, r := range registrations {
		if r.name == name {
			return
		}
	}
	registrations = append(registrations, registration{name: name, rank: rank, factory: factory})
}

func registeredBackends() []registration {
	registrationsMu.Lock()
	out := slices.Clone(registrations)
	registrationsMu.Unlock()

	slices.SortStableFunc(out, func(a, b registration) int {
		return cmp.Compare(a.rank, b.rank)
	})
	return out
}

// Installable reports whether a facet for category should be attached for
// kind. Character dependent categories need at least one facet kind.
func Installable(category Category, kind FacetKind) bool {
	if !category.Single() {
		return false
	}
	if category.CharDependent() {
		return kind&AllFacetKinds != 0
	}
	return true
}

// Options is the string option map shared by the bundled providers.
type Options map[string]string

// Clone returns an independent copy.
func (o Options) Clone() Options {
	return maps.Clone(o)
}

// Get returns the value for name or fallback when it is unset or empty.
func (o Options) Get(name, fallback string) string {
	if v, ok := o[name]; ok && v != "" {
		return v
	}
	return fallback
}

// OptionTimeZone names the zone calendars are created in.
const OptionTimeZone = "time_zone"
