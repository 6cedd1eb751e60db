package rules

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Classic returns the conventions of the C locale.
func Classic() Rules {
	return classic.Clone()
}

// Locales lists the locales with their own rules.
func Locales() []string {
	out := make([]string, 0, len(data))
	for k := range data {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// For returns the rules for tag, walking its parent chain and falling back
// to English.
func For(tag language.Tag) Rules {
	if tag == language.Und {
		return Classic()
	}
	if r, ok := Match(tag); ok {
		return r
	}
	return data["en"].Clone()
}

// Match is For without the English fallback.
func Match(tag language.Tag) (Rules, bool) {
	if r, ok := data[tag.String()]; ok {
		return r.Clone(), true
	}
	for _, candidate := range parentChain(tag) {
		if r, ok := data[candidate]; ok {
			return r.Clone(), true
		}
	}
	base, _ := tag.Base()
	if r, ok := data[base.String()]; ok {
		return r.Clone(), true
	}
	return Rules{}, false
}

// Lookup is For on a locale identifier such as "de-DE" or "de_DE".
func Lookup(locale string) Rules {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return Classic()
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return data["en"].Clone()
	}
	return For(tag)
}

func parentChain(tag language.Tag) []string {
	var chain []string
	seen := make(map[string]struct{}, 4)
	for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
		value := parent.String()
		if value == "" || value == "und" {
			break
		}
		if _, exists := seen[value]; exists {
			break
		}
		seen[value] = struct{}{}
		chain = append(chain, value)
	}
	return chain
}

// FormatNumber renders value with the decimal and thousand separators of r.
// Negative decimals mean two digits.
func (r Rules) FormatNumber(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 2
	}
	formatted := fmt.Sprintf("%.*f", decimals, value)
	return Group(formatted, r.Currency.DecimalSep, r.Currency.ThousandSep)
}

// Group rewrites a plain "-1234.5" number with the given separators.
func Group(formatted, decimalSep, thousandSep string) string {
	sign := ""
	if strings.HasPrefix(formatted, "-") {
		sign, formatted = "-", formatted[1:]
	}
	integerPart, fraction, hasFraction := strings.Cut(formatted, ".")
	if decimalSep == "" {
		decimalSep = "."
	}

	if thousandSep != "" && len(integerPart) > 3 {
		var result strings.Builder
		for i, digit := range integerPart {
			if i > 0 && (len(integerPart)-i)%3 == 0 {
				result.WriteString(thousandSep)
			}
			result.WriteRune(digit)
		}
		integerPart = result.String()
	}

	if hasFraction {
		return sign + integerPart + decimalSep + fraction
	}
	return sign + integerPart
}

// ParseNumber reads a number written with the separators of r. Plain ASCII
// spaces and no-break spaces are accepted as thousand separators whenever
// the locale groups with a space.
func (r Rules) ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	thousand := r.Currency.ThousandSep
	if thousand != "" {
		s = strings.ReplaceAll(s, thousand, "")
		if strings.TrimSpace(thousand) == "" {
			s = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "").Replace(s)
		}
	}
	if sep := r.Currency.DecimalSep; sep != "" && sep != "." {
		s = strings.Replace(s, sep, ".", 1)
	}
	return strconv.ParseFloat(s, 64)
}

// FormatDate renders the long date pattern of r.
func (r Rules) FormatDate(year, month, day int) string {
	name := ""
	if month >= 1 && month <= len(r.MonthNames) {
		name = r.MonthNames[month-1]
	}
	out := strings.ReplaceAll(r.Date.Pattern, "{day}", fmt.Sprint(day))
	out = strings.ReplaceAll(out, "{month}", name)
	return strings.ReplaceAll(out, "{year}", fmt.Sprint(year))
}
