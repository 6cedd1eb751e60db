// Package std provides the locale independent backend: Go's own case
// mapping, byte order collation and fixed ISO style formats. It is the
// last resort in the default ranking.
package std

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"

	locale "github.com/goliatone/go-locale"
	"github.com/goliatone/go-locale/calendar"
	"github.com/goliatone/go-locale/internal/codec"
)

const (
	Name = "std"
	Rank = 3
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
		return l.WithKind(category, kind, converter{})
	case locale.CategoryCollation:
		return l.WithKind(category, kind, collator{})
	case locale.CategoryFormatting:
		return l.WithKind(category, kind, newFormatter(tz))
	case locale.CategoryParsing:
		return l.WithKind(category, kind, newParser(tz))
	case locale.CategoryCodepage:
		c, err := newCodec(desc.Encoding)
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

// newCodec supports UTF-8 and Latin-1 only; anything else needs a native
// backend.
func newCodec(encoding string) (*codec.Codec, error) {
	c, err := codec.ByCharmapName(encoding)
	if err != nil {
		return nil, err
	}
	switch c.Encoding() {
	case codec.UTF8, charmap.ISO8859_1.String():
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s is not available in the std backend", locale.ErrCodec, encoding)
}

type converter struct{}

func (converter) ToUpper(s string) string  { return strings.ToUpper(s) }
func (converter) ToLower(s string) string  { return strings.ToLower(s) }
func (converter) FoldCase(s string) string { return strings.ToLower(s) }

// ToTitle upper cases the first letter of every word.
func (converter) ToTitle(s string) string {
	var b strings.Builder
	start := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			b.WriteRune(r)
			start = true
			continue
		}
		if start {
			b.WriteRune(unicode.ToTitle(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		start = false
	}
	return b.String()
}

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

// collator compares code units. Every level gives the same order.
type collator struct{}

func (collator) Compare(_ locale.CollateLevel, a, b string) int {
	return strings.Compare(a, b)
}

func (collator) Transform(_ locale.CollateLevel, s string) []byte {
	return []byte(s)
}

func (collator) Hash(_ locale.CollateLevel, s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

var (
	_ locale.Backend   = (*Backend)(nil)
	_ locale.Converter = converter{}
	_ locale.Collator  = collator{}
)
