package calendar

import (
	"strings"

	"github.com/goliatone/go-locale/internal/gcal"
)

//go:generate go run ../cmd/locale-weekdata -out weekdata_gen.go

// WeekRules describes how a region numbers weeks.
type WeekRules struct {
	// FirstDayOfWeek is 1 for Sunday through 7 for Saturday.
	FirstDayOfWeek int
	// MinimalDays is how many days the first week of a year must hold.
	MinimalDays int
}

// RulesFor returns the week conventions of a two letter region code.
// Unknown or empty regions get the world defaults.
func RulesFor(country string) WeekRules {
	country = strings.ToUpper(strings.TrimSpace(country))
	rules := WeekRules{FirstDayOfWeek: weekFirstDayDefault, MinimalDays: weekMinDaysDefault}
	if day, ok := weekFirstDay[country]; ok {
		rules.FirstDayOfWeek = day
	}
	if days, ok := weekMinDays[country]; ok {
		rules.MinimalDays = days
	}
	return rules
}

func (r WeekRules) native() gcal.Rules {
	return gcal.Rules{FirstDayOfWeek: r.FirstDayOfWeek, MinimalDays: r.MinimalDays}.Normalize()
}
