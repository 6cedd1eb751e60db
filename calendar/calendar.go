// Package calendar exposes locale aware calendars behind a single interface.
//
// Two implementations ship with the module. Engine wraps the lazily
// recomputing native engine and is safe for concurrent use. Gregorian is an
// eager, lightweight calendar used by providers that have no richer engine.
package calendar

import (
	"errors"
	"time"
)

var (
	// ErrInvalidField is returned when a field has no calendar meaning.
	ErrInvalidField = errors.New("calendar: invalid date_time period type")
	// ErrDateTime wraps failures reported by a calendar engine.
	ErrDateTime = errors.New("calendar: date_time error")
	// ErrOptionNotSettable is returned by SetOption for read-only options.
	ErrOptionNotSettable = errors.New("calendar: option is not settable")
)

// ValueKind selects which value of a field is read.
type ValueKind int

const (
	Current ValueKind = iota
	AbsoluteMinimum
	ActualMinimum
	GreatestMinimum
	LeastMaximum
	ActualMaximum
	AbsoluteMaximum
)

func (k ValueKind) String() string {
	switch k {
	case Current:
		return "current"
	case AbsoluteMinimum:
		return "absolute_minimum"
	case ActualMinimum:
		return "actual_minimum"
	case GreatestMinimum:
		return "greatest_minimum"
	case LeastMaximum:
		return "least_maximum"
	case ActualMaximum:
		return "actual_maximum"
	case AbsoluteMaximum:
		return "absolute_maximum"
	}
	return "unknown"
}

// UpdateMode selects how Adjust propagates a change.
type UpdateMode int

const (
	// Move carries overflow into larger fields.
	Move UpdateMode = iota
	// Roll wraps within the field's range and leaves larger fields alone.
	Roll
)

// Option names a boolean calendar property.
type Option int

const (
	IsGregorian Option = iota
	IsDST
)

// PosixTime is an instant as seconds and nanoseconds since the Unix epoch.
type PosixTime struct {
	Seconds     int64
	Nanoseconds uint32
}

// PosixTimeOf converts t to a PosixTime.
func PosixTimeOf(t time.Time) PosixTime {
	return PosixTime{Seconds: t.Unix(), Nanoseconds: uint32(t.Nanosecond())}
}

// Time returns p as a UTC time.
func (p PosixTime) Time() time.Time {
	return time.Unix(p.Seconds, int64(p.Nanoseconds)).UTC()
}

func (p PosixTime) millis() float64 {
	return float64(p.Seconds)*1000 + float64(p.Nanoseconds)/1e6
}

// Calendar is the behaviour every calendar implementation provides.
type Calendar interface {
	Clone() Calendar
	SetField(f Field, v int) error
	Field(f Field, kind ValueKind) (int, error)
	SetTime(t PosixTime) error
	Time() (PosixTime, error)
	// Normalize resolves pending field changes.
	Normalize() error
	Adjust(f Field, mode UpdateMode, delta int) error
	// Difference returns how many units of f separate the receiver from
	// other. Neither calendar is modified.
	Difference(other Calendar, f Field) (int, error)
	SetTimeZone(id string)
	TimeZone() string
	Option(o Option) (bool, error)
	SetOption(o Option, v bool) error
	// SameRules reports whether other computes dates exactly like the
	// receiver does.
	SameRules(other Calendar) bool
}

// Factory creates calendars bound to a locale.
type Factory interface {
	NewCalendar() (Calendar, error)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func() (Calendar, error)

// NewCalendar calls fn.
func (fn FactoryFunc) NewCalendar() (Calendar, error) {
	return fn()
}
