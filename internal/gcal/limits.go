package gcal

import "time"

// LimitType selects one of the fixed bounds of a field.
type LimitType int

const (
	LimitMinimum LimitType = iota
	LimitGreatestMinimum
	LimitLeastMaximum
	LimitMaximum
)

const (
	hourMillis = 60 * 60 * 1000
	dayMillis  = 24 * hourMillis

	// MaxMillis and MinMillis bound the instants the engine accepts.
	MaxMillis = 183882168921600000.0
	MinMillis = -184303902528000000.0
)

var limits = [FieldCount][4]int{
	Era:              {0, 0, 1, 1},
	Year:             {1, 1, 5828963, 5838270},
	Month:            {0, 0, 11, 11},
	WeekOfYear:       {1, 1, 52, 53},
	WeekOfMonth:      {0, 0, 4, 6},
	DayOfMonth:       {1, 1, 28, 31},
	DayOfYear:        {1, 1, 365, 366},
	DayOfWeek:        {1, 1, 7, 7},
	DayOfWeekInMonth: {-1, -1, 4, 5},
	AmPm:             {0, 0, 1, 1},
	Hour:             {0, 0, 11, 11},
	HourOfDay:        {0, 0, 23, 23},
	Minute:           {0, 0, 59, 59},
	Second:           {0, 0, 59, 59},
	Millisecond:      {0, 0, 999, 999},
	ZoneOffset:       {-16 * hourMillis, -16 * hourMillis, 12 * hourMillis, 30 * hourMillis},
	DstOffset:        {0, 0, 0, 2 * hourMillis},
	YearWoy:          {-5838270, -5838270, 5828964, 5838271},
	DowLocal:         {1, 1, 7, 7},
	ExtendedYear:     {-5838270, -5838270, 5828964, 5838271},
}

// Limit returns the fixed bound lt of field f under the week rules r.
// Week of month is the only field whose bounds depend on the rules.
func Limit(f Field, lt LimitType, r Rules) int {
	if !f.Valid() || lt < LimitMinimum || lt > LimitMaximum {
		return 0
	}
	if f == WeekOfMonth {
		r = r.Normalize()
		switch lt {
		case LimitMinimum:
			if r.MinimalDays == 1 {
				return 1
			}
			return 0
		case LimitGreatestMinimum:
			return 1
		case LimitLeastMaximum:
			return (28 + 7 - r.MinimalDays) / 7
		default:
			return (31 + 6 + 7 - r.MinimalDays) / 7
		}
	}
	return limits[f][lt]
}

// ActualMinimum returns the smallest value f can take around t.
func ActualMinimum(t time.Time, f Field, r Rules) int {
	if f == WeekOfMonth {
		r = r.Normalize()
		first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		return weekNumber(1, 1, weekday(first), r)
	}
	return Limit(f, LimitMinimum, r)
}

// ActualMaximum returns the largest value f can take around t.
func ActualMaximum(t time.Time, f Field, r Rules) int {
	r = r.Normalize()
	y, m, _ := t.Date()
	switch f {
	case DayOfMonth:
		return daysIn(y, int(m))
	case DayOfYear:
		return yearLength(y)
	case WeekOfYear:
		return weeksInYear(ComputeFields(t, r)[YearWoy], r)
	case WeekOfMonth:
		last := daysIn(y, int(m))
		ld := time.Date(y, m, last, 0, 0, 0, 0, time.UTC)
		return weekNumber(last, last, weekday(ld), r)
	case DayOfWeekInMonth:
		return (daysIn(y, int(m))-1)/7 + 1
	case Year, YearWoy, ExtendedYear:
		return Limit(f, LimitLeastMaximum, r)
	}
	return Limit(f, LimitMaximum, r)
}
