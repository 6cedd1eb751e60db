// Package icu provides the Unicode aware backend. Case mapping,
// normalization, collation and number printing come from golang.org/x/text;
// calendars are calendar.Engine instances.
//
// Import it for its side effect to make the backend available through
// locale.Global:
//
//	import _ "github.com/goliatone/go-locale/backends/icu"
package icu

import (
	"golang.org/x/text/language"

	locale "github.com/goliatone/go-locale"
	"github.com/goliatone/go-locale/calendar"
	"github.com/goliatone/go-locale/internal/codec"
	"github.com/goliatone/go-locale/internal/collation"
)

const (
	// Name is the registration name.
	Name = "icu"
	// Rank orders the backend first in the process-wide manager.
	Rank = 0
)

func init() {
	locale.RegisterBackend(Name, Rank, func() locale.Backend { return New() })
}

// Backend installs x/text based facets.
type Backend struct {
	options locale.Options
}

func New() *Backend {
	return &Backend{options: locale.Options{}}
}

func (b *Backend) Clone() locale.Backend {
	return &Backend{options: b.options.Clone()}
}

func (b *Backend) SetOption(name, value string) {
	if b.options == nil {
		b.options = locale.Options{}
	}
	b.options[name] = value
}

func (b *Backend) ClearOptions() {
	b.options = locale.Options{}
}

func (b *Backend) Install(l locale.Locale, category locale.Category, kind locale.FacetKind) locale.Locale {
	if !locale.Installable(category, kind) {
		return l
	}
	desc := l.Descriptor()
	tag := desc.Tag()
	tz := b.options.Get(locale.OptionTimeZone, "")

	switch category {
	case locale.CategoryConvert:
		return l.WithKind(category, kind, newConverter(tag))
	case locale.CategoryCollation:
		return l.WithKind(category, kind, collation.New(tag))
	case locale.CategoryFormatting:
		return l.WithKind(category, kind, newFormatter(tag, tz))
	case locale.CategoryParsing:
		return l.WithKind(category, kind, newParser(tag, tz))
	case locale.CategoryCodepage:
		c, err := codec.ByHTMLName(desc.Encoding)
		if err != nil {
			return l
		}
		return l.WithKind(category, kind, c)
	case locale.CategoryCalendar:
		return l.WithKind(category, kind, calendarFactory(desc, tz))
	case locale.CategoryInformation:
		return l.WithKind(category, kind, locale.NewInfo(desc, Name))
	}
	return l
}

func calendarFactory(desc locale.Descriptor, tz string) locale.CalendarFactory {
	country := desc.Country
	if country == "" && !desc.IsClassic() {
		if region, conf := desc.Tag().Region(); conf != language.No {
			country = region.String()
		}
	}
	return calendar.FactoryFunc(func() (calendar.Calendar, error) {
		return calendar.NewEngine(
			calendar.WithCountry(country),
			calendar.WithEncoding(desc.Encoding),
			calendar.WithTimeZone(tz),
		), nil
	})
}

var _ locale.Backend = (*Backend)(nil)
