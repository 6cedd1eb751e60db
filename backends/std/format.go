package std

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	locale "github.com/goliatone/go-locale"
	"github.com/goliatone/go-locale/internal/gcal"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type formatter struct {
	loc *time.Location
}

func zoneLocation(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	return gcal.LoadZone(tz).Loc
}

func newFormatter(tz string) *formatter {
	return &formatter{loc: zoneLocation(tz)}
}

func (f *formatter) in(t time.Time) time.Time {
	if f.loc == nil {
		return t
	}
	return t.In(f.loc)
}

// FormatNumber prints the shortest representation when decimals is
// negative.
func (f *formatter) FormatNumber(value float64, decimals int) string {
	prec := decimals
	if prec < 0 {
		prec = -1
	}
	return strconv.FormatFloat(value, 'f', prec, 64)
}

// FormatCurrency always uses the ISO code; there is no national symbol
// without locale data.
func (f *formatter) FormatCurrency(amount float64, code string, _ bool) string {
	formatted := f.FormatNumber(amount, 2)
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return formatted
	}
	return code + " " + formatted
}

func (f *formatter) FormatPercent(value float64, decimals int) string {
	return f.FormatNumber(value*100, decimals) + "%"
}

func (f *formatter) FormatDate(t time.Time) string {
	return f.in(t).Format(dateLayout)
}

func (f *formatter) FormatTime(t time.Time) string {
	return f.in(t).Format(timeLayout)
}

func (f *formatter) FormatDateTime(t time.Time) string {
	return f.in(t).Format(time.RFC3339)
}

// FormatPattern takes a Go reference layout.
func (f *formatter) FormatPattern(t time.Time, layout string) string {
	return f.in(t).Format(layout)
}

type parser struct {
	loc *time.Location
}

func newParser(tz string) *parser {
	return &parser{loc: zoneLocation(tz)}
}

func (p *parser) ParseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q: %v", locale.ErrParse, s, err)
	}
	return v, nil
}

var layouts = []string{time.RFC3339, dateLayout + " " + timeLayout + ":05", dateLayout, timeLayout}

func (p *parser) ParseTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = p.loc
	}
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
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
