package locale

import (
	"fmt"
	"maps"

	"github.com/goliatone/go-locale/calendar"
)

type facetEntry struct {
	facet any
	kind  FacetKind
}

// Locale is an immutable set of facets for one Descriptor. With returns a
// new value layered on the receiver, so a Locale may be shared freely.
type Locale struct {
	desc   Descriptor
	facets map[Category]facetEntry
}

// New returns a Locale for desc without any facets.
func New(desc Descriptor) Locale {
	return Locale{desc: desc}
}

// Classic returns an empty C locale.
func Classic() Locale {
	return New(ClassicDescriptor)
}

// Descriptor returns the identity the locale was created for.
func (l Locale) Descriptor() Descriptor {
	return l.desc
}

// With returns a copy of l with facet installed for a single category.
func (l Locale) With(category Category, facet any) Locale {
	return l.WithKind(category, AllFacetKinds, facet)
}

// WithKind is With recording which character kinds the facet serves.
func (l Locale) WithKind(category Category, kind FacetKind, facet any) Locale {
	if !category.Single() || facet == nil {
		return l
	}
	next := make(map[Category]facetEntry, len(l.facets)+1)
	maps.Copy(next, l.facets)
	next[category] = facetEntry{facet: facet, kind: kind}
	return Locale{desc: l.desc, facets: next}
}

// Has reports whether a facet is installed for category.
func (l Locale) Has(category Category) bool {
	_, ok := l.facets[category]
	return ok
}

// Kind reports the character kinds the category's facet was installed for.
func (l Locale) Kind(category Category) FacetKind {
	return l.facets[category].kind
}

// Categories returns the union of installed categories.
func (l Locale) Categories() Category {
	var out Category
	for c := range l.facets {
		out |= c
	}
	return out
}

// Facet returns the raw facet for category.
func (l Locale) Facet(category Category) (any, bool) {
	entry, ok := l.facets[category]
	return entry.facet, ok
}

func facetAs[T any](l Locale, category Category) (T, bool) {
	var zero T
	raw, ok := l.Facet(category)
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	return v, ok
}

func (l Locale) Converter() (Converter, bool) {
	return facetAs[Converter](l, CategoryConvert)
}

func (l Locale) Collator() (Collator, bool) {
	return facetAs[Collator](l, CategoryCollation)
}

func (l Locale) Formatter() (Formatter, bool) {
	return facetAs[Formatter](l, CategoryFormatting)
}

func (l Locale) Parser() (Parser, bool) {
	return facetAs[Parser](l, CategoryParsing)
}

func (l Locale) Codec() (Codec, bool) {
	return facetAs[Codec](l, CategoryCodepage)
}

func (l Locale) Calendars() (CalendarFactory, bool) {
	return facetAs[CalendarFactory](l, CategoryCalendar)
}

func (l Locale) Info() (Info, bool) {
	return facetAs[Info](l, CategoryInformation)
}

// NewCalendar creates a calendar from the locale's calendar facet.
func (l Locale) NewCalendar() (calendar.Calendar, error) {
	factory, ok := l.Calendars()
	if !ok {
		return nil, fmt.Errorf("%w: %s for %s", ErrMissingFacet, CategoryCalendar, l.desc)
	}
	return factory.NewCalendar()
}
