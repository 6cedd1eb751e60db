package icu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	locale "github.com/goliatone/go-locale"
	"github.com/goliatone/go-locale/calendar"
)

// 1970-02-05 15:33:13 GMT
var sample = time.Unix(3600*24*(31+4)+3600*15+60*33+13, 0).UTC()

func generate(t *testing.T, desc locale.Descriptor, opts ...locale.GeneratorOption) locale.Locale {
	t.Helper()
	m := locale.NewManager()
	m.Register(Name, New())
	m.Select(Name, locale.AllCategories)

	gen, err := locale.NewGenerator(append([]locale.GeneratorOption{locale.WithManager(m)}, opts...)...)
	require.NoError(t, err)
	return gen.Generate(desc)
}

func TestInstallsEveryCategory(t *testing.T) {
	l := generate(t, locale.Descriptor{Language: "en", Country: "US", Encoding: "UTF-8"})
	for _, category := range locale.KnownCategories() {
		assert.True(t, l.Has(category), "missing %s", category)
	}

	info, ok := l.Info()
	require.True(t, ok)
	assert.Equal(t, Name, info.Backend())
	assert.Equal(t, "US", info.Country())
}

func TestConverter(t *testing.T) {
	de, _ := generate(t, locale.Descriptor{Language: "de", Country: "DE"}).Converter()
	assert.Equal(t, "STRASSE", de.ToUpper("straße"))
	assert.Equal(t, "strasse", de.FoldCase("Straße"))
	assert.Equal(t, "Hallo Welt", de.ToTitle("hallo welt"))

	tr, _ := generate(t, locale.Descriptor{Language: "tr", Country: "TR"}).Converter()
	assert.Equal(t, "istanbul", tr.ToLower("İstanbul"))

	assert.Equal(t, "e\u0301", de.Normalize("\u00e9", locale.NFD))
	assert.Equal(t, "\u00e9", de.Normalize("e\u0301", locale.NFC))
	assert.Equal(t, "fi", de.Normalize("\ufb01", locale.NFKC))
}

func TestCollator(t *testing.T) {
	col, ok := generate(t, locale.Descriptor{Language: "en", Country: "US"}).Collator()
	require.True(t, ok)

	assert.Equal(t, -1, col.Compare(locale.Tertiary, "a", "ç"))
	assert.Equal(t, -1, col.Compare(locale.Tertiary, "ç", "d"))
	assert.Equal(t, 0, col.Compare(locale.Primary, "Resume", "résumé"))
	assert.Equal(t, col.Hash(locale.Primary, "Resume"), col.Hash(locale.Primary, "résumé"))
}

func TestFormatter(t *testing.T) {
	en, ok := generate(t, locale.Descriptor{Language: "en", Country: "US"}).Formatter()
	require.True(t, ok)
	assert.Equal(t, "1,045.45", en.FormatNumber(1045.45, 2))
	assert.Equal(t, "$1,043.34", en.FormatCurrency(1043.34, "", false))
	assert.Equal(t, "USD 1,043.34", en.FormatCurrency(1043.34, "", true))
	assert.Equal(t, "25%", en.FormatPercent(0.25, 0))
	assert.Equal(t, "February 5, 1970", en.FormatDate(sample))
	assert.Equal(t, "3:33 PM", en.FormatTime(sample))
	assert.Equal(t, "February 5, 1970 3:33 PM", en.FormatDateTime(sample))

	de, _ := generate(t, locale.Descriptor{Language: "de", Country: "DE"}).Formatter()
	assert.Equal(t, "1.045,45", de.FormatNumber(1045.45, 2))
	assert.Equal(t, "1.043,34 €", de.FormatCurrency(1043.34, "EUR", false))
	assert.Equal(t, "1.043,34 EUR", de.FormatCurrency(1043.34, "", true))

	es, _ := generate(t, locale.Descriptor{Language: "es", Country: "MX"}).Formatter()
	assert.Equal(t, "5 de febrero de 1970", es.FormatDate(sample))
	assert.Equal(t, "15:33", es.FormatTime(sample))
}

func TestFormatterTimeZoneOption(t *testing.T) {
	desc := locale.Descriptor{Language: "en", Country: "US"}

	plus1, _ := generate(t, desc, locale.WithBackendOption(locale.OptionTimeZone, "GMT+01:00")).Formatter()
	assert.Equal(t, "16", plus1.FormatPattern(sample, "%H"))

	plus15, _ := generate(t, desc, locale.WithBackendOption(locale.OptionTimeZone, "GMT+00:15")).Formatter()
	assert.Equal(t, "48", plus15.FormatPattern(sample, "%M"))

	gmt, _ := generate(t, desc, locale.WithBackendOption(locale.OptionTimeZone, "GMT")).Formatter()
	assert.Equal(t, "02/05/70", gmt.FormatPattern(sample, "%x"))
	assert.Equal(t, "03:33:13 PM", gmt.FormatPattern(sample, "%X"))
}

func TestParser(t *testing.T) {
	de, ok := generate(t, locale.Descriptor{Language: "de", Country: "DE"}).Parser()
	require.True(t, ok)

	n, err := de.ParseNumber("1.045,45")
	require.NoError(t, err)
	assert.Equal(t, 1045.45, n)

	_, err = de.ParseNumber("abc")
	assert.ErrorIs(t, err, locale.ErrParse)

	got, err := de.ParseTime("1970-02-05 15:33:13", time.UTC)
	require.NoError(t, err)
	assert.True(t, got.Equal(sample), "parsed %v", got)

	_, err = de.ParseTime("not a date", time.UTC)
	assert.ErrorIs(t, err, locale.ErrParse)
}

func TestCodec(t *testing.T) {
	l := generate(t, locale.Descriptor{Language: "ru", Country: "RU", Encoding: "KOI8-R"})
	c, ok := l.Codec()
	require.True(t, ok)
	assert.Equal(t, "koi8-r", c.Encoding())

	raw, err := c.Encode("мир")
	require.NoError(t, err)
	back, err := c.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "мир", back)

	unknown := generate(t, locale.Descriptor{Language: "en", Encoding: "X-UNKNOWN"})
	assert.False(t, unknown.Has(locale.CategoryCodepage))
}

func TestCalendarFacet(t *testing.T) {
	us := generate(t, locale.Descriptor{Language: "en", Country: "US"},
		locale.WithBackendOption(locale.OptionTimeZone, "GMT"))
	cal, err := us.NewCalendar()
	require.NoError(t, err)
	assert.IsType(t, &calendar.Engine{}, cal)
	assert.Equal(t, "GMT", cal.TimeZone())

	first, err := cal.Field(calendar.FirstDayOfWeek, calendar.Current)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	de := generate(t, locale.Descriptor{Language: "de", Country: "DE"})
	cal, err = de.NewCalendar()
	require.NoError(t, err)
	first, err = cal.Field(calendar.FirstDayOfWeek, calendar.Current)
	require.NoError(t, err)
	assert.Equal(t, 2, first)
}

func TestCharacterCategoriesNeedFacetKind(t *testing.T) {
	l := generate(t, locale.Descriptor{Language: "en"}, locale.WithFacetKinds(locale.NoCharFacet))
	assert.Equal(t, locale.CategoryCalendar|locale.CategoryInformation, l.Categories())
}

func TestCloneKeepsOptionsApart(t *testing.T) {
	b := New()
	b.SetOption(locale.OptionTimeZone, "GMT+01:00")
	clone := b.Clone()
	b.ClearOptions()

	l := clone.Install(locale.New(locale.Descriptor{Language: "en"}), locale.CategoryFormatting, locale.CharFacet)
	f, ok := l.Formatter()
	require.True(t, ok)
	assert.Equal(t, "16", f.FormatPattern(sample, "%H"))
}
