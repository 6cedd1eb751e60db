// Package winapi provides a backend built on the Windows national language
// support API. On Windows it queries GetLocaleInfoEx and CompareStringEx;
// elsewhere it falls back to the shared locale tables.
package winapi

import (
	"bytes"
	"hash/fnv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	locale "github.com/goliatone/go-locale"
	"github.com/goliatone/go-locale/calendar"
	"github.com/goliatone/go-locale/internal/codec"
	"github.com/goliatone/go-locale/internal/rules"
)

const (
	Name = "winapi"
	Rank = 2
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

func (b *Backend) Install(l locale.Locale, category locale.Category, kind locale.FacetKind) locale.Locale {
	if !locale.Installable(category, kind) {
		return l
	}
	desc := l.Descriptor()
	tz := b.options.Get(locale.OptionTimeZone, "")

	switch category {
	case locale.CategoryConvert:
		return l.WithKind(category, kind, newConverter(desc.Tag()))
	case locale.CategoryCollation:
		return l.WithKind(category, kind, newCollator(desc))
	case locale.CategoryFormatting:
		return l.WithKind(category, kind, newFormatter(nativeRules(desc), tz))
	case locale.CategoryParsing:
		return l.WithKind(category, kind, newParser(nativeRules(desc), tz))
	case locale.CategoryCodepage:
		c, err := codec.ByHTMLName(desc.Encoding)
		if err != nil {
			return l
		}
		return l.WithKind(category, kind, c)
	case locale.CategoryCalendar:
		week := weekRules(desc)
		return l.WithKind(category, kind, calendar.FactoryFunc(func() (calendar.Calendar, error) {
			return calendar.NewGregorian(tz, week), nil
		}))
	case locale.CategoryInformation:
		return l.WithKind(category, kind, locale.NewInfo(desc, Name))
	}
	return l
}

func tableRules(desc locale.Descriptor) rules.Rules {
	if desc.IsClassic() {
		return rules.Classic()
	}
	return rules.For(desc.Tag())
}

// weekRules prefers the first day the host reports for the locale.
func weekRules(desc locale.Descriptor) calendar.WeekRules {
	week := calendar.RulesFor(desc.Country)
	if first, ok := firstDayOfWeek(desc); ok {
		week.FirstDayOfWeek = first
	}
	return week
}

// converter plays the role of LCMapStringEx and NormalizeString.
type converter struct {
	tag language.Tag
}

func newConverter(tag language.Tag) converter {
	return converter{tag: tag}
}

func (c converter) ToUpper(s string) string  { return cases.Upper(c.tag).String(s) }
func (c converter) ToLower(s string) string  { return cases.Lower(c.tag).String(s) }
func (c converter) ToTitle(s string) string  { return cases.Title(c.tag).String(s) }
func (c converter) FoldCase(s string) string { return cases.Lower(c.tag).String(s) }

func (converter) Normalize(s string, form locale.NormForm) string {
	switch form {
	case locale.NFD:
		return norm.NFD.String(s)
	case locale.NFKC:
		return norm.NFKC.String(s)
	case locale.NFKD:
		return norm.NFKD.String(s)
	}
	return norm.NFC.String(s)
}

func byteOrder(a, b string) int {
	return bytes.Compare([]byte(a), []byte(b))
}

func hashKey(key []byte) uint64 {
	h := fnv.New64a()
	h.Write(key)
	return h.Sum64()
}

var (
	_ locale.Backend   = (*Backend)(nil)
	_ locale.Converter = converter{}
)
