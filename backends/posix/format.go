package posix

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	locale "github.com/goliatone/go-locale"
	"github.com/goliatone/go-locale/internal/gcal"
	"github.com/goliatone/go-locale/internal/rules"
	"github.com/goliatone/go-locale/internal/strftime"
)

type formatter struct {
	rules rules.Rules
	loc   *time.Location
}

func zoneLocation(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	return gcal.LoadZone(tz).Loc
}

func newFormatter(r rules.Rules, tz string) *formatter {
	return &formatter{rules: r, loc: zoneLocation(tz)}
}

func (f *formatter) in(t time.Time) time.Time {
	if f.loc == nil {
		return t
	}
	return t.In(f.loc)
}

func (f *formatter) FormatNumber(value float64, decimals int) string {
	return f.rules.FormatNumber(value, decimals)
}

// FormatCurrency follows strfmon: %n puts the national symbol right before
// the amount, %i uses the international code followed by a space. Locales
// that place the symbol after the amount separate it with a space.
func (f *formatter) FormatCurrency(value float64, code string, iso bool) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	local := f.rules.Currency
	if code == "" {
		code = local.Code
	}

	decimals := local.Decimals
	if decimals <= 0 {
		decimals = 2
	}
	sign := ""
	if value < 0 {
		sign = "-"
	}
	amount := f.rules.FormatNumber(math.Abs(value), decimals)

	symbol := code
	if !iso && code == local.Code && local.Symbol != "" {
		symbol = local.Symbol
	}
	switch {
	case symbol == "":
		return sign + amount
	case local.SymbolPosition == "after":
		return sign + amount + " " + symbol
	case iso || symbol == code:
		return sign + symbol + " " + amount
	default:
		return sign + symbol + amount
	}
}

func (f *formatter) FormatPercent(value float64, decimals int) string {
	return f.rules.FormatNumber(value*100, decimals) + "%"
}

func (f *formatter) FormatDate(t time.Time) string {
	return strftime.Format(f.in(t), "%x", f.rules)
}

func (f *formatter) FormatTime(t time.Time) string {
	return strftime.Format(f.in(t), "%X", f.rules)
}

func (f *formatter) FormatDateTime(t time.Time) string {
	return strftime.Format(f.in(t), "%c", f.rules)
}

// FormatPattern renders a strftime pattern.
func (f *formatter) FormatPattern(t time.Time, pattern string) string {
	return strftime.Format(f.in(t), pattern, f.rules)
}

type parser struct {
	rules rules.Rules
	loc   *time.Location
}

func newParser(r rules.Rules, tz string) *parser {
	return &parser{rules: r, loc: zoneLocation(tz)}
}

func (p *parser) ParseNumber(s string) (float64, error) {
	v, err := p.rules.ParseNumber(s)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q: %v", locale.ErrParse, s, err)
	}
	return v, nil
}

// ParseTime tries the locale's %c, %x %X, %x and %X formats first, like
// strptime would, then falls back to dateparse.
func (p *parser) ParseTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = p.loc
	}
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	if t, ok := strftime.Parse(s, loc, p.rules, "%c", "%x %X", "%x", "%X"); ok {
		return t, nil
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q: %v", locale.ErrParse, s, err)
	}
	return t, nil
}

var (
	_ locale.Formatter = (*formatter)(nil)
	_ locale.Parser    = (*parser)(nil)
)
