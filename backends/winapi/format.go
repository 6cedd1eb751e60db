package winapi

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

// FormatCurrency mirrors GetCurrencyFormatEx. iso swaps the local symbol
// for LOCALE_SINTLSYMBOL.
func (f *formatter) FormatCurrency(value float64, code string, iso bool) string {
	local := f.rules.Currency
	code = strings.ToUpper(strings.TrimSpace(code))
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

	if iso || code != local.Code || local.Symbol == "" {
		if code == "" {
			return sign + amount
		}
		if local.SymbolPosition == "after" {
			return sign + amount + " " + code
		}
		return sign + code + " " + amount
	}
	if local.SymbolPosition == "after" {
		return sign + amount + " " + local.Symbol
	}
	return sign + local.Symbol + amount
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

// FormatDateTime joins the short date and the time like GetDateFormatEx
// followed by GetTimeFormatEx.
func (f *formatter) FormatDateTime(t time.Time) string {
	return strftime.Format(f.in(t), "%x %X", f.rules)
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

func (p *parser) ParseTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = p.loc
	}
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	if t, ok := strftime.Parse(s, loc, p.rules, "%x %X", "%x", "%X"); ok {
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
