package locale

import (
	"time"

	"github.com/goliatone/go-locale/calendar"
)

// NormForm selects a Unicode normalization form.
type NormForm int

const (
	NFC NormForm = iota
	NFD
	NFKC
	NFKD
)

// CollateLevel selects how many differences a comparison considers.
type CollateLevel int

const (
	// Primary compares base letters only.
	Primary CollateLevel = iota
	// Secondary also compares accents.
	Secondary
	// Tertiary also compares case.
	Tertiary
	Quaternary
	// Identical breaks remaining ties by code point.
	Identical
)

// Converter performs case mapping and normalization.
type Converter interface {
	ToUpper(s string) string
	ToLower(s string) string
	ToTitle(s string) string
	FoldCase(s string) string
	Normalize(s string, form NormForm) string
}

// Collator orders strings. Compare returns -1, 0 or 1. Transform returns a
// key whose byte order matches Compare; Hash is equal for strings that
// compare equal.
type Collator interface {
	Compare(level CollateLevel, a, b string) int
	Transform(level CollateLevel, s string) []byte
	Hash(level CollateLevel, s string) uint64
}

// Formatter renders numbers, money and dates.
type Formatter interface {
	FormatNumber(v float64, decimals int) string
	// FormatCurrency renders v in currency code, or in the locale's
	// currency when code is empty. iso selects the ISO code over the
	// national symbol.
	FormatCurrency(v float64, code string, iso bool) string
	FormatPercent(v float64, decimals int) string
	FormatDate(t time.Time) string
	FormatTime(t time.Time) string
	FormatDateTime(t time.Time) string
	// FormatPattern uses the provider's own pattern dialect.
	FormatPattern(t time.Time, pattern string) string
}

// Parser reads numbers and times written in the locale's conventions.
type Parser interface {
	ParseNumber(s string) (float64, error)
	ParseTime(s string, loc *time.Location) (time.Time, error)
}

// Codec converts between UTF-8 and the locale's character set.
type Codec interface {
	Encoding() string
	Encode(s string) ([]byte, error)
	Decode(b []byte) (string, error)
}

// Info describes the locale a facet set was generated for.
type Info interface {
	Descriptor() Descriptor
	Language() string
	Country() string
	Encoding() string
	Variant() string
	IsUTF8() bool
	// Backend names the provider that produced the facet.
	Backend() string
}

type info struct {
	desc    Descriptor
	backend string
}

// NewInfo returns an Info facet for desc produced by backend.
func NewInfo(desc Descriptor, backend string) Info {
	return info{desc: desc, backend: backend}
}

func (i info) Descriptor() Descriptor { return i.desc }
func (i info) Language() string       { return i.desc.Language }
func (i info) Country() string        { return i.desc.Country }
func (i info) Encoding() string       { return i.desc.Encoding }
func (i info) Variant() string        { return i.desc.Variant }
func (i info) IsUTF8() bool           { return i.desc.IsUTF8() }
func (i info) Backend() string        { return i.backend }

// RuneConverter applies a Converter to rune slices.
type RuneConverter struct {
	Converter Converter
}

func (r RuneConverter) ToUpper(s []rune) []rune {
	return []rune(r.Converter.ToUpper(string(s)))
}

func (r RuneConverter) ToLower(s []rune) []rune {
	return []rune(r.Converter.ToLower(string(s)))
}

func (r RuneConverter) FoldCase(s []rune) []rune {
	return []rune(r.Converter.FoldCase(string(s)))
}

// CalendarFactory is the facet installed for CategoryCalendar.
type CalendarFactory = calendar.Factory
