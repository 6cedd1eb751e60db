// Package rules holds the locale formatting conventions shared by the
// providers: separators, names of months and days, and the posix style
// date/time formats.
package rules

// Rules contains the formatting conventions of one locale.
type Rules struct {
	Locale     string         `json:"locale" yaml:"locale"`
	Date       DatePattern    `json:"date_patterns" yaml:"date_patterns"`
	Currency   CurrencyFormat `json:"currency_rules" yaml:"currency_rules"`
	MonthNames []string       `json:"month_names" yaml:"month_names"`
	MonthAbbr  []string       `json:"month_abbr" yaml:"month_abbr"`
	DayNames   []string       `json:"day_names" yaml:"day_names"`
	DayAbbr    []string       `json:"day_abbr" yaml:"day_abbr"`
	AmPm       [2]string      `json:"am_pm" yaml:"am_pm"`
	Time       TimeFormat     `json:"time_format" yaml:"time_format"`
	Posix      PosixFormats   `json:"posix" yaml:"posix"`
}

// DatePattern describes the long date layout.
type DatePattern struct {
	// Pattern uses placeholders: {day}, {month}, {year}
	Pattern  string `json:"pattern" yaml:"pattern"`
	DayFirst bool   `json:"day_first" yaml:"day_first"`
}

// CurrencyFormat describes numbers and money.
type CurrencyFormat struct {
	SymbolPosition string `json:"symbol_position" yaml:"symbol_position"` // "before", "after"
	DecimalSep     string `json:"decimal_separator" yaml:"decimal_separator"`
	ThousandSep    string `json:"thousand_separator" yaml:"thousand_separator"`
	Decimals       int    `json:"decimals" yaml:"decimals"`
	// Symbol and Code describe the local currency.
	Symbol string `json:"symbol" yaml:"symbol"`
	Code   string `json:"code" yaml:"code"`
}

// TimeFormat describes the short time layout as a Go reference layout.
type TimeFormat struct {
	Use24Hour bool   `json:"use_24_hour" yaml:"use_24_hour"`
	Pattern   string `json:"pattern" yaml:"pattern"`
}

// PosixFormats are strftime formats for %x, %X and %c.
type PosixFormats struct {
	Date     string `json:"d_fmt" yaml:"d_fmt"`
	Time     string `json:"t_fmt" yaml:"t_fmt"`
	DateTime string `json:"d_t_fmt" yaml:"d_t_fmt"`
}

// Clone returns a deep copy of r.
func (r Rules) Clone() Rules {
	r.MonthNames = append([]string(nil), r.MonthNames...)
	r.MonthAbbr = append([]string(nil), r.MonthAbbr...)
	r.DayNames = append([]string(nil), r.DayNames...)
	r.DayAbbr = append([]string(nil), r.DayAbbr...)
	return r
}
