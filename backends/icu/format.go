package icu

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	locale "github.com/goliatone/go-locale"
	"github.com/goliatone/go-locale/internal/gcal"
	"github.com/goliatone/go-locale/internal/rules"
	"github.com/goliatone/go-locale/internal/strftime"
)

// formatter prints numbers through x/text and uses the shared rules table
// for separators, names and layouts when the locale has an entry.
type formatter struct {
	tag     language.Tag
	printer *message.Printer
	rules   rules.Rules
	matched bool
	loc     *time.Location
}

func newFormatter(tag language.Tag, tz string) *formatter {
	r, ok := rules.Match(tag)
	if !ok {
		r = rules.For(tag)
	}
	f := &formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
		rules:   r,
		matched: ok,
	}
	if tz != "" {
		f.loc = gcal.LoadZone(tz).Loc
	}
	return f
}

func (f *formatter) in(t time.Time) time.Time {
	if f.loc == nil {
		return t
	}
	return t.In(f.loc)
}

func (f *formatter) FormatNumber(value float64, decimals int) string {
	if f.matched {
		return f.rules.FormatNumber(value, decimals)
	}
	opts := []number.Option{}
	if decimals >= 0 {
		opts = append(opts, number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals))
	}
	return f.printer.Sprintf("%v", number.Decimal(value, opts...))
}

// FormatCurrency places the symbol according to the locale rules. An empty
// code selects the locale's own currency, falling back to the region's
// currency from CLDR.
func (f *formatter) FormatCurrency(amount float64, code string, iso bool) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = f.localCurrency()
	}
	decimals := f.rules.Currency.Decimals
	if decimals <= 0 {
		decimals = 2
	}
	formattedAmount := f.FormatNumber(amount, decimals)
	if code == "" {
		return formattedAmount
	}

	symbol := code
	if !iso {
		symbol = f.symbol(code, amount, decimals)
	}
	if f.rules.Currency.SymbolPosition == "after" {
		return formattedAmount + " " + symbol
	}
	if iso {
		return symbol + " " + formattedAmount
	}
	return symbol + formattedAmount
}

func (f *formatter) localCurrency() string {
	if f.matched && f.rules.Currency.Code != "" {
		return f.rules.Currency.Code
	}
	if unit, conf := currency.FromTag(f.tag); conf != language.No {
		return unit.String()
	}
	return ""
}

// symbol extracts the national symbol x/text prints for code, trying
// English when the locale only knows the ISO code.
func (f *formatter) symbol(code string, amount float64, decimals int) string {
	if f.matched && code == f.rules.Currency.Code && f.rules.Currency.Symbol != "" {
		return f.rules.Currency.Symbol
	}
	unit, err := currency.ParseISO(code)
	if err != nil || unit.String() == "XXX" {
		return code
	}

	opts := []number.Option{number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)}
	extract := func(p *message.Printer) string {
		full := p.Sprintf("%v", currency.Symbol(unit.Amount(amount)))
		plain := p.Sprintf("%v", number.Decimal(amount, opts...))
		return strings.TrimSpace(strings.ReplaceAll(full, plain, ""))
	}

	symbol := extract(f.printer)
	if symbol == "" || symbol == unit.String() {
		symbol = extract(message.NewPrinter(language.English))
	}
	if symbol == "" {
		return unit.String()
	}
	return symbol
}

func (f *formatter) FormatPercent(value float64, decimals int) string {
	if f.matched {
		return f.rules.FormatNumber(value*100, decimals) + "%"
	}
	opts := []number.Option{}
	if decimals >= 0 {
		opts = append(opts, number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals))
	}
	return f.printer.Sprintf("%v", number.Percent(value, opts...))
}

func (f *formatter) FormatDate(t time.Time) string {
	t = f.in(t)
	return f.rules.FormatDate(t.Year(), int(t.Month()), t.Day())
}

func (f *formatter) FormatTime(t time.Time) string {
	t = f.in(t)
	layout := f.rules.Time.Pattern
	if layout == "" {
		if f.rules.Time.Use24Hour {
			layout = "15:04"
		} else {
			layout = "3:04 PM"
		}
	}
	return t.Format(layout)
}

func (f *formatter) FormatDateTime(t time.Time) string {
	return fmt.Sprintf("%s %s", f.FormatDate(t), f.FormatTime(t))
}

// FormatPattern renders a strftime pattern.
func (f *formatter) FormatPattern(t time.Time, pattern string) string {
	return strftime.Format(f.in(t), pattern, f.rules)
}

var _ locale.Formatter = (*formatter)(nil)
