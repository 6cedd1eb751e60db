//go:build !windows

package winapi

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

var enUS = locale.Descriptor{Language: "en", Country: "US", Encoding: "UTF-8"}

func TestStrftimeTable(t *testing.T) {
	f, ok := generate(t, enUS, locale.WithBackendOption(locale.OptionTimeZone, "GMT")).Formatter()
	require.True(t, ok)

	cases := map[string]string{
		"%a": "Thu",
		"%A": "Thursday",
		"%b": "Feb",
		"%B": "February",
		"%d": "05",
		"%D": "02/05/70",
		"%e": " 5",
		"%h": "Feb",
		"%H": "15",
		"%I": "03",
		"%m": "02",
		"%M": "33",
		"%n": "\n",
		"%p": "PM",
		"%r": "03:33:13 PM",
		"%R": "15:33",
		"%S": "13",
		"%t": "\t",
		"%y": "70",
		"%Y": "1970",
		"%%": "%",
	}
	for pattern, want := range cases {
		assert.Equal(t, want, f.FormatPattern(sample, pattern), pattern)
	}

	assert.Equal(t, "02/05/70", f.FormatDate(sample))
	assert.Equal(t, "03:33:13 PM", f.FormatTime(sample))
	assert.Equal(t, "02/05/70 03:33:13 PM", f.FormatDateTime(sample))
}

func TestNumbersAndCurrency(t *testing.T) {
	en, _ := generate(t, enUS).Formatter()
	assert.Equal(t, "1,045.45", en.FormatNumber(1045.45, 2))
	assert.Equal(t, "$1,043.34", en.FormatCurrency(1043.34, "", false))
	assert.Equal(t, "USD 1,043.34", en.FormatCurrency(1043.34, "", true))
	assert.Equal(t, "-$2.50", en.FormatCurrency(-2.5, "USD", false))
	assert.Equal(t, "12.5%", en.FormatPercent(0.125, 1))

	de, _ := generate(t, locale.Descriptor{Language: "de", Country: "DE"}).Formatter()
	assert.Equal(t, "1.043,34 €", de.FormatCurrency(1043.34, "", false))
	assert.Equal(t, "1.043,34 EUR", de.FormatCurrency(1043.34, "", true))
	assert.Equal(t, "1.043,34 USD", de.FormatCurrency(1043.34, "usd", false))
}

func TestParser(t *testing.T) {
	en, ok := generate(t, enUS).Parser()
	require.True(t, ok)

	got, err := en.ParseTime("02/05/70 03:33:13 PM", time.UTC)
	require.NoError(t, err)
	assert.True(t, got.Equal(sample), "parsed %v", got)

	n, err := en.ParseNumber("1,045.45")
	require.NoError(t, err)
	assert.Equal(t, 1045.45, n)

	_, err = en.ParseNumber("1.2.3")
	assert.ErrorIs(t, err, locale.ErrParse)
}

func TestCollationIgnoresWidth(t *testing.T) {
	c, ok := generate(t, enUS).Collator()
	require.True(t, ok)
	assert.Equal(t, -1, c.Compare(locale.Tertiary, "a", "ç"))
	assert.Equal(t, -1, c.Compare(locale.Tertiary, "ç", "d"))
	assert.Equal(t, 0, c.Compare(locale.Primary, "A", "a"))

	for _, level := range []locale.CollateLevel{locale.Primary, locale.Secondary, locale.Tertiary, locale.Quaternary} {
		assert.Equal(t, 0, c.Compare(level, "ａ", "a"), "level %d", level)
		assert.Equal(t, 0, c.Compare(level, "ＡＢＣ", "ABC"), "level %d", level)
		assert.Equal(t, c.Transform(level, "ａｂｃ"), c.Transform(level, "abc"), "level %d", level)
		assert.Equal(t, c.Hash(level, "ｶ"), c.Hash(level, "カ"), "level %d", level)
	}
}

func TestConverterAndCodec(t *testing.T) {
	l := generate(t, locale.Descriptor{Language: "tr", Country: "TR", Encoding: "windows-1254"})
	conv, ok := l.Converter()
	require.True(t, ok)
	assert.Equal(t, "İSTANBUL", conv.ToUpper("istanbul"))
	assert.Equal(t, "é", conv.Normalize("é", locale.NFD))

	c, ok := l.Codec()
	require.True(t, ok)
	raw, err := c.Encode("ş")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xfe}, raw)
}

func TestCalendarUsesRegionWeekRules(t *testing.T) {
	us := generate(t, enUS, locale.WithBackendOption(locale.OptionTimeZone, "GMT"))
	cal, err := us.NewCalendar()
	require.NoError(t, err)
	assert.IsType(t, &calendar.Gregorian{}, cal)
	assert.Equal(t, "GMT", cal.TimeZone())

	first, err := cal.Field(calendar.FirstDayOfWeek, calendar.Current)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	fr, err := generate(t, locale.Descriptor{Language: "fr", Country: "FR"}).NewCalendar()
	require.NoError(t, err)
	first, err = fr.Field(calendar.FirstDayOfWeek, calendar.Current)
	require.NoError(t, err)
	assert.Equal(t, 2, first)
}

func TestCloneKeepsOptionsApart(t *testing.T) {
	b := New()
	b.SetOption(locale.OptionTimeZone, "GMT+01:00")
	clone := b.Clone()
	b.ClearOptions()

	l := clone.Install(locale.New(enUS), locale.CategoryFormatting, locale.CharFacet)
	f, ok := l.Formatter()
	require.True(t, ok)
	assert.Equal(t, "16", f.FormatPattern(sample, "%H"))

	l = b.Install(locale.New(enUS), locale.CategoryFormatting, locale.NoCharFacet)
	assert.False(t, l.Has(locale.CategoryFormatting))
}
