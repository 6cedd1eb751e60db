package calendar

import (
	"fmt"

	"github.com/goliatone/go-locale/internal/gcal"
)

// Field names a calendar period.
type Field int

const (
	Invalid Field = iota
	Era
	Year
	ExtendedYear
	Month
	Day
	DayOfYear
	DayOfWeek
	DayOfWeekInMonth
	DayOfWeekLocal
	Hour
	Hour12
	AmPm
	Minute
	Second
	WeekOfYear
	WeekOfMonth
	FirstDayOfWeek
)

var fieldNames = map[Field]string{
	Invalid:          "invalid",
	Era:              "era",
	Year:             "year",
	ExtendedYear:     "extended_year",
	Month:            "month",
	Day:              "day",
	DayOfYear:        "day_of_year",
	DayOfWeek:        "day_of_week",
	DayOfWeekInMonth: "day_of_week_in_month",
	DayOfWeekLocal:   "day_of_week_local",
	Hour:             "hour",
	Hour12:           "hour_12",
	AmPm:             "am_pm",
	Minute:           "minute",
	Second:           "second",
	WeekOfYear:       "week_of_year",
	WeekOfMonth:      "week_of_month",
	FirstDayOfWeek:   "first_day_of_week",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Fields lists every field with a native counterpart, in display order.
func Fields() []Field {
	return []Field{
		Era, Year, ExtendedYear, Month, Day, DayOfYear, DayOfWeek,
		DayOfWeekInMonth, DayOfWeekLocal, Hour, Hour12, AmPm, Minute,
		Second, WeekOfYear, WeekOfMonth,
	}
}

// ToNative maps f to the engine field. FirstDayOfWeek has no engine field
// and is rejected like any unknown value.
func ToNative(f Field) (gcal.Field, error) {
	switch f {
	case Era:
		return gcal.Era, nil
	case Year:
		return gcal.Year, nil
	case ExtendedYear:
		return gcal.ExtendedYear, nil
	case Month:
		return gcal.Month, nil
	case Day:
		return gcal.DayOfMonth, nil
	case DayOfYear:
		return gcal.DayOfYear, nil
	case DayOfWeek:
		return gcal.DayOfWeek, nil
	case DayOfWeekInMonth:
		return gcal.DayOfWeekInMonth, nil
	case DayOfWeekLocal:
		return gcal.DowLocal, nil
	case Hour:
		return gcal.HourOfDay, nil
	case Hour12:
		return gcal.Hour, nil
	case AmPm:
		return gcal.AmPm, nil
	case Minute:
		return gcal.Minute, nil
	case Second:
		return gcal.Second, nil
	case WeekOfYear:
		return gcal.WeekOfYear, nil
	case WeekOfMonth:
		return gcal.WeekOfMonth, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidField, f)
}

// ParseField resolves a field by its name.
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if n == name && f != Invalid {
			return f, nil
		}
	}
	return Invalid, fmt.Errorf("%w: %q", ErrInvalidField, name)
}
