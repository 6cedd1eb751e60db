package posix

import (
	"bytes"
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

func TestNumbers(t *testing.T) {
	classic, ok := generate(t, locale.ClassicDescriptor).Formatter()
	require.True(t, ok)
	assert.Equal(t, "1045.45", classic.FormatNumber(1045.45, 2))

	en, _ := generate(t, enUS).Formatter()
	assert.Equal(t, "1,045.45", en.FormatNumber(1045.45, 2))

	ru, _ := generate(t, locale.Descriptor{Language: "ru", Country: "RU", Encoding: "UTF-8"}).Formatter()
	assert.Equal(t, "12 345,45", ru.FormatNumber(12345.45, 2))

	p, _ := generate(t, locale.ClassicDescriptor).Parser()
	n, err := p.ParseNumber("1045.45")
	require.NoError(t, err)
	assert.Equal(t, 1045.45, n)
}

func TestCurrencyFollowsStrfmon(t *testing.T) {
	en, _ := generate(t, enUS).Formatter()
	assert.Equal(t, "$1,043.34", en.FormatCurrency(1043.34, "", false))
	assert.Equal(t, "USD 1,043.34", en.FormatCurrency(1043.34, "", true))
	assert.Equal(t, "-$5.00", en.FormatCurrency(-5, "", false))
	assert.Equal(t, "EUR 7.50", en.FormatCurrency(7.5, "eur", false))

	fr, _ := generate(t, locale.Descriptor{Language: "fr", Country: "FR"}).Formatter()
	// CLDR groups French digits with a narrow no-break space.
	assert.Equal(t, "1\u202f043,34 €", fr.FormatCurrency(1043.34, "", false))

	fp, _ := generate(t, locale.Descriptor{Language: "fr", Country: "FR"}).Parser()
	for _, s := range []string{"1 043,34", "1\u00a0043,34", "1\u202f043,34"} {
		n, err := fp.ParseNumber(s)
		require.NoError(t, err, s)
		assert.Equal(t, 1043.34, n, s)
	}
}

func TestDateTimeFollowsStrftime(t *testing.T) {
	en, _ := generate(t, enUS, locale.WithBackendOption(locale.OptionTimeZone, "GMT")).Formatter()
	assert.Equal(t, "02/05/70", en.FormatDate(sample))
	assert.Equal(t, "03:33:13 PM", en.FormatTime(sample))
	assert.Equal(t, "Thu 05 Feb 1970 03:33:13 PM GMT", en.FormatDateTime(sample))

	plus1, _ := generate(t, enUS, locale.WithBackendOption(locale.OptionTimeZone, "GMT+01:00")).Formatter()
	assert.Equal(t, "16", plus1.FormatPattern(sample, "%H"))

	plus15, _ := generate(t, enUS, locale.WithBackendOption(locale.OptionTimeZone, "GMT+00:15")).Formatter()
	assert.Equal(t, "48", plus15.FormatPattern(sample, "%M"))

	c, _ := generate(t, locale.ClassicDescriptor, locale.WithBackendOption(locale.OptionTimeZone, "GMT")).Formatter()
	assert.Equal(t, "Thu Feb  5 15:33:13 1970", c.FormatDateTime(sample))
}

func TestParseTimeUsesLocaleFormats(t *testing.T) {
	en, _ := generate(t, enUS).Parser()
	got, err := en.ParseTime("Thu 05 Feb 1970 03:33:13 PM GMT", time.UTC)
	require.NoError(t, err)
	assert.True(t, got.Equal(sample))

	de, _ := generate(t, locale.Descriptor{Language: "de", Country: "DE"}).Parser()
	got, err = de.ParseTime("05.02.1970", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1970, 2, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = de.ParseTime("1970-02-05T15:33:13Z", time.UTC)
	require.NoError(t, err)
	assert.True(t, got.Equal(sample))

	_, err = de.ParseTime("not a date", time.UTC)
	assert.ErrorIs(t, err, locale.ErrParse)
}

func TestCollation(t *testing.T) {
	c, ok := generate(t, locale.ClassicDescriptor).Collator()
	require.True(t, ok)
	assert.Equal(t, -1, c.Compare(locale.Tertiary, "a", "b"))
	assert.Equal(t, 0, c.Compare(locale.Tertiary, "a", "a"))

	en, _ := generate(t, enUS).Collator()
	pairs := [][2]string{{"a", "ç"}, {"ç", "d"}}
	for _, p := range pairs {
		assert.Equal(t, -1, en.Compare(locale.Primary, p[0], p[1]), "%q < %q", p[0], p[1])
		assert.Equal(t, -1, bytes.Compare(en.Transform(locale.Primary, p[0]), en.Transform(locale.Primary, p[1])))
	}

	assert.Equal(t, en.Hash(locale.Primary, "é"), en.Hash(locale.Primary, "é"))
}

func TestPJWHash(t *testing.T) {
	assert.Equal(t, uint32(0), pjwHash(nil))
	assert.Equal(t, uint32('a'), pjwHash([]byte("a")))
	assert.Equal(t, uint32('a')<<4+uint32('b'), pjwHash([]byte("ab")))
	// Long inputs fold the high nibble back in and stay within 28 bits.
	assert.Less(t, pjwHash([]byte("a fairly long string to overflow")), uint32(1<<28))
}

func TestConverter(t *testing.T) {
	conv, ok := generate(t, enUS).Converter()
	require.True(t, ok)
	assert.Equal(t, "CAFÉ", conv.ToUpper("café"))
	assert.Equal(t, "café", conv.ToLower("CAFÉ"))
	assert.Equal(t, "\u00e9", conv.Normalize("e\u0301", locale.NFC))
	assert.Equal(t, "e\u0301", conv.Normalize("\u00e9", locale.NFD))
	assert.Equal(t, "fi", conv.Normalize("\ufb01", locale.NFKC))
	assert.Equal(t, "e\u0301", conv.Normalize("\u00e9", locale.NFKD))
}

func TestCodecAndCalendar(t *testing.T) {
	l := generate(t, locale.Descriptor{Language: "en", Country: "US", Encoding: "ISO8859-1"},
		locale.WithBackendOption(locale.OptionTimeZone, "GMT"))

	c, ok := l.Codec()
	require.True(t, ok)
	raw, err := c.Encode("café")
	require.NoError(t, err)
	assert.Equal(t, []byte("caf\xe9"), raw)

	cal, err := l.NewCalendar()
	require.NoError(t, err)
	assert.IsType(t, &calendar.Gregorian{}, cal)
	assert.Equal(t, "GMT", cal.TimeZone())

	info, _ := l.Info()
	assert.Equal(t, Name, info.Backend())
	assert.False(t, info.IsUTF8())
}
