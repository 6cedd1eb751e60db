package std

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

func TestFormatsIgnoreLocale(t *testing.T) {
	for _, desc := range []locale.Descriptor{
		{Language: "en", Country: "US"},
		{Language: "de", Country: "DE"},
		locale.ClassicDescriptor,
	} {
		f, ok := generate(t, desc, locale.WithBackendOption(locale.OptionTimeZone, "UTC")).Formatter()
		require.True(t, ok)
		assert.Equal(t, "1045.45", f.FormatNumber(1045.45, 2))
		assert.Equal(t, "0.1", f.FormatNumber(0.1, -1))
		assert.Equal(t, "USD 1043.34", f.FormatCurrency(1043.34, "usd", true))
		assert.Equal(t, "12.50", f.FormatCurrency(12.5, "", false))
		assert.Equal(t, "50%", f.FormatPercent(0.5, 0))
		assert.Equal(t, "1970-02-05", f.FormatDate(sample))
		assert.Equal(t, "15:33", f.FormatTime(sample))
		assert.Equal(t, "1970-02-05T15:33:13Z", f.FormatDateTime(sample))
		assert.Equal(t, "Thu 05 Feb", f.FormatPattern(sample, "Mon 02 Jan"))
	}
}

func TestTimeZoneOption(t *testing.T) {
	f, _ := generate(t, locale.Descriptor{Language: "en"},
		locale.WithBackendOption(locale.OptionTimeZone, "GMT+01:00")).Formatter()
	assert.Equal(t, "16", f.FormatPattern(sample, "15"))
	assert.Equal(t, "1970-02-05T16:33:13+01:00", f.FormatDateTime(sample))
}

func TestParser(t *testing.T) {
	p, ok := generate(t, locale.Descriptor{Language: "en"}).Parser()
	require.True(t, ok)

	n, err := p.ParseNumber(" 1045.45 ")
	require.NoError(t, err)
	assert.Equal(t, 1045.45, n)

	_, err = p.ParseNumber("1,045.45")
	assert.ErrorIs(t, err, locale.ErrParse)

	for _, s := range []string{"1970-02-05T15:33:13Z", "1970-02-05 15:33:13", "Feb 5, 1970 3:33:13 PM"} {
		got, err := p.ParseTime(s, time.UTC)
		require.NoError(t, err, s)
		assert.True(t, got.Equal(sample), "%s parsed as %v", s, got)
	}

	_, err = p.ParseTime("not a date", nil)
	assert.ErrorIs(t, err, locale.ErrParse)
}

func TestConverterAndCollator(t *testing.T) {
	l := generate(t, locale.Descriptor{Language: "tr", Country: "TR"})
	conv, ok := l.Converter()
	require.True(t, ok)
	assert.Equal(t, "ISTANBUL", conv.ToUpper("istanbul"))
	assert.Equal(t, "Hello World 2x", conv.ToTitle("hELLO wORLD 2x"))
	assert.Equal(t, "é", conv.Normalize("é", locale.NFD))

	col, ok := l.Collator()
	require.True(t, ok)
	assert.Equal(t, 1, col.Compare(locale.Primary, "a", "B"))
	assert.Equal(t, -1, col.Compare(locale.Identical, "a", "b"))
	assert.Equal(t, []byte("abc"), col.Transform(locale.Tertiary, "abc"))
	assert.NotEqual(t, col.Hash(locale.Primary, "a"), col.Hash(locale.Primary, "A"))
}

func TestCodecs(t *testing.T) {
	utf8 := generate(t, locale.Descriptor{Language: "en", Encoding: "UTF-8"})
	c, ok := utf8.Codec()
	require.True(t, ok)
	assert.Equal(t, "UTF-8", c.Encoding())

	latin1 := generate(t, locale.Descriptor{Language: "en", Encoding: "ISO-8859-1"})
	c, ok = latin1.Codec()
	require.True(t, ok)
	raw, err := c.Encode("é")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xe9}, raw)

	koi := generate(t, locale.Descriptor{Language: "ru", Encoding: "KOI8-R"})
	assert.False(t, koi.Has(locale.CategoryCodepage))
}

func TestCalendar(t *testing.T) {
	l := generate(t, locale.Descriptor{Language: "de", Country: "DE"},
		locale.WithBackendOption(locale.OptionTimeZone, "Europe/Berlin"))
	cal, err := l.NewCalendar()
	require.NoError(t, err)
	assert.IsType(t, &calendar.Gregorian{}, cal)
	assert.Equal(t, "Europe/Berlin", cal.TimeZone())

	first, err := cal.Field(calendar.FirstDayOfWeek, calendar.Current)
	require.NoError(t, err)
	assert.Equal(t, 2, first)
}
