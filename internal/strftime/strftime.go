// Package strftime renders and parses times with C strftime patterns using
// the month, day and am/pm names of a rules table. Rendering goes through
// github.com/lestrrat-go/strftime; this package supplies the locale names
// and the %c, %x, %X and %r expansions.
package strftime

import (
	"strings"
	"time"

	lestrrat "github.com/lestrrat-go/strftime"

	"github.com/goliatone/go-locale/internal/rules"
)

// maxDepth stops %c/%x/%X from recursing forever through a bad rules table.
const maxDepth = 4

// Format renders t with pattern. Unknown conversions are copied as is.
func Format(t time.Time, pattern string, r rules.Rules) string {
	return render(t, pattern, r, 0)
}

func render(t time.Time, pattern string, r rules.Rules, depth int) string {
	ds, err := specifications(r, depth)
	if err != nil {
		return pattern
	}
	f, err := lestrrat.New(escape(pattern, ds), lestrrat.WithSpecificationSet(ds), lestrrat.WithLocale(names{r}))
	if err != nil {
		return pattern
	}
	return f.FormatString(t)
}

// specifications extends the library defaults with the locale composites and
// %s.
func specifications(r rules.Rules, depth int) (lestrrat.SpecificationSet, error) {
	ds := lestrrat.NewSpecificationSet()
	extra := map[byte]lestrrat.Appender{
		's': lestrrat.UnixSeconds(),
		'r': nested("%I:%M:%S %p", r, depth),
	}
	for _, verb := range []byte{'c', 'x', 'X'} {
		sub, _ := composite(verb, r)
		extra[verb] = nested(sub, r, depth)
	}
	for verb, a := range extra {
		if err := ds.Set(verb, a); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

func nested(pattern string, r rules.Rules, depth int) lestrrat.Appender {
	return lestrrat.AppendFunc(func(b []byte, t time.Time) []byte {
		if depth+1 >= maxDepth {
			return b
		}
		return append(b, render(t, pattern, r, depth+1)...)
	})
}

// escape drops the E and O modifiers and doubles the percent sign of
// conversions ds does not know, so they print literally.
func escape(pattern string, ds lestrrat.SpecificationSet) string {
	var b strings.Builder
	known := func(verb byte) bool {
		_, err := ds.Lookup(verb)
		return err == nil
	}
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 == len(pattern) {
			b.WriteString("%%")
			continue
		}
		i++
		verb := pattern[i]
		if (verb == 'E' || verb == 'O') && i+1 < len(pattern) {
			i++
			verb = pattern[i]
		}
		if (verb == '-' || verb == '#') && i+1 < len(pattern) && known(pattern[i+1]) {
			b.WriteByte('%')
			b.WriteByte(verb)
			i++
			b.WriteByte(pattern[i])
			continue
		}
		if known(verb) {
			b.WriteByte('%')
		} else {
			b.WriteString("%%")
		}
		b.WriteByte(verb)
	}
	return b.String()
}

// names feeds the rules tables to the library's name conversions.
type names struct {
	r rules.Rules
}

func (n names) Month(m time.Month) string          { return pick(n.r.MonthNames, int(m)-1) }
func (n names) ShortMonth(m time.Month) string     { return pick(n.r.MonthAbbr, int(m)-1) }
func (n names) Weekday(w time.Weekday) string      { return pick(n.r.DayNames, int(w)) }
func (n names) ShortWeekday(w time.Weekday) string { return pick(n.r.DayAbbr, int(w)) }

func (n names) Meridiem(hour int) string {
	if hour < 12 {
		return n.r.AmPm[0]
	}
	return n.r.AmPm[1]
}

func composite(verb byte, r rules.Rules) (string, bool) {
	switch verb {
	case 'c':
		return r.Posix.DateTime, true
	case 'x':
		return r.Posix.Date, true
	case 'X':
		return r.Posix.Time, true
	case 'D':
		return "%m/%d/%y", true
	case 'F':
		return "%Y-%m-%d", true
	case 'r':
		return "%I:%M:%S %p", true
	case 'R':
		return "%H:%M", true
	case 'T':
		return "%H:%M:%S", true
	}
	return "", false
}

func pick(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

// Layout converts pattern to a Go reference layout for time.Parse. It
// reports false when a conversion has no layout equivalent or depends on
// names that are not English.
func Layout(pattern string, r rules.Rules) (string, bool) {
	var b strings.Builder
	if !layout(&b, pattern, r, 0) {
		return "", false
	}
	return b.String(), true
}

func layout(b *strings.Builder, pattern string, r rules.Rules, depth int) bool {
	english := isEnglish(r)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 == len(pattern) {
			b.WriteByte(c)
			continue
		}
		i++
		verb := pattern[i]
		if sub, ok := composite(verb, r); ok {
			if depth >= 4 || !layout(b, sub, r, depth+1) {
				return false
			}
			continue
		}
		var part string
		switch verb {
		case 'a', 'A', 'b', 'h', 'B', 'p':
			if !english {
				return false
			}
			part = map[byte]string{'a': "Mon", 'A': "Monday", 'b': "Jan", 'h': "Jan", 'B': "January", 'p': "PM"}[verb]
		case 'd':
			part = "02"
		case 'e':
			part = "_2"
		case 'H':
			part = "15"
		case 'I':
			part = "03"
		case 'j':
			part = "002"
		case 'm':
			part = "01"
		case 'M':
			part = "04"
		case 'S':
			part = "05"
		case 'y':
			part = "06"
		case 'Y':
			part = "2006"
		case 'z':
			part = "-0700"
		case 'Z':
			part = "MST"
		case 'n':
			part = "\n"
		case 't':
			part = "\t"
		case '%':
			part = "%"
		default:
			return false
		}
		b.WriteString(part)
	}
	return true
}

func isEnglish(r rules.Rules) bool {
	return len(r.MonthAbbr) > 0 && r.MonthAbbr[0] == "Jan" &&
		len(r.DayAbbr) > 0 && r.DayAbbr[0] == "Sun" &&
		strings.EqualFold(r.AmPm[1], "PM")
}

// Parse tries each pattern in turn the way strptime would and returns the
// first successful result.
func Parse(value string, loc *time.Location, r rules.Rules, patterns ...string) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	for _, pattern := range patterns {
		l, ok := Layout(pattern, r)
		if !ok {
			continue
		}
		if t, err := time.ParseInLocation(l, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
