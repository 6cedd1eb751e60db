// Package gcal implements a lenient proleptic Gregorian calendar engine.
//
// A Calendar keeps an instant (milliseconds since the Unix epoch as a float64)
// and a set of broken-down fields. Setting a field invalidates the instant;
// reading a field or the instant recomputes whatever is stale. Fields set most
// recently win when more than one combination can determine a date.
package gcal

// Field identifies a calendar field of the engine.
type Field int

const (
	Era Field = iota
	Year
	Month
	WeekOfYear
	WeekOfMonth
	DayOfMonth
	DayOfYear
	DayOfWeek
	DayOfWeekInMonth
	AmPm
	Hour
	HourOfDay
	Minute
	Second
	Millisecond
	ZoneOffset
	DstOffset
	YearWoy
	DowLocal
	ExtendedYear

	FieldCount
)

var fieldNames = [FieldCount]string{
	Era:              "era",
	Year:             "year",
	Month:            "month",
	WeekOfYear:       "week_of_year",
	WeekOfMonth:      "week_of_month",
	DayOfMonth:       "day_of_month",
	DayOfYear:        "day_of_year",
	DayOfWeek:        "day_of_week",
	DayOfWeekInMonth: "day_of_week_in_month",
	AmPm:             "am_pm",
	Hour:             "hour",
	HourOfDay:        "hour_of_day",
	Minute:           "minute",
	Second:           "second",
	Millisecond:      "millisecond",
	ZoneOffset:       "zone_offset",
	DstOffset:        "dst_offset",
	YearWoy:          "year_woy",
	DowLocal:         "dow_local",
	ExtendedYear:     "extended_year",
}

// Valid reports whether f names a field of the engine.
func (f Field) Valid() bool {
	return f >= 0 && f < FieldCount
}

func (f Field) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return fieldNames[f]
}

// Fields holds one value per engine field.
type Fields [FieldCount]int

// Get returns the value stored for f.
func (fs Fields) Get(f Field) int {
	if !f.Valid() {
		return 0
	}
	return fs[f]
}
