// Package posix provides a backend with the semantics of the POSIX
// extended locale API: strcoll style collation, strftime and strfmon
// formatting, and single byte code pages.
package posix

import (
	"golang.org/x/text/language"

	locale "github.com/goliatone/go-locale"
	"github.com/goliatone/go-locale/calendar"
	"github.com/goliatone/go-locale/internal/codec"
	"github.com/goliatone/go-locale/internal/rules"
)

const (
	Name = "posix"
	Rank = 1
)

func init() {
	locale.RegisterBackend(Name, Rank, func() locale.Backend { return New() })
}

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

// rulesFor mirrors newlocale: the C locale for classic descriptors, the
// closest table entry otherwise.
func rulesFor(desc locale.Descriptor) rules.Rules {
	if desc.IsClassic() {
		return rules.Classic()
	}
	tag := desc.Tag()
	if tag == language.Und {
		return rules.Classic()
	}
	return rules.For(tag)
}

func (b *Backend) Install(l locale.Locale, category locale.Category, kind locale.FacetKind) locale.Locale {
	if !locale.Installable(category, kind) {
		return l
	}
	desc := l.Descriptor()
	tz := b.options.Get(locale.OptionTimeZone, "")

	switch category {
	case locale.CategoryConvert:
		return l.WithKind(category, kind, converter{})
	case locale.CategoryCollation:
		return l.WithKind(category, kind, newCollator(desc))
	case locale.CategoryFormatting:
		return l.WithKind(category, kind, newFormatter(rulesFor(desc), tz))
	case locale.CategoryParsing:
		return l.WithKind(category, kind, newParser(rulesFor(desc), tz))
	case locale.CategoryCodepage:
		c, err := codec.ByCharmapName(desc.Encoding)
		if err != nil {
			return l
		}
		return l.WithKind(category, kind, c)
	case locale.CategoryCalendar:
		week := calendar.RulesFor(desc.Country)
		return l.WithKind(category, kind, calendar.FactoryFunc(func() (calendar.Calendar, error) {
			return calendar.NewGregorian(tz, week), nil
		}))
	case locale.CategoryInformation:
		return l.WithKind(category, kind, locale.NewInfo(desc, Name))
	}
	return l
}

var _ locale.Backend = (*Backend)(nil)
