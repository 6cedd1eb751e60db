package calendar

import (
	"fmt"
	"time"

	"github.com/goliatone/go-locale/internal/gcal"
)

// Gregorian is an eager proleptic Gregorian calendar. Every change is
// applied immediately, so fields never wait for normalization. It is not
// safe for concurrent use; Clone before sharing.
type Gregorian struct {
	t     time.Time
	zone  gcal.Zone
	rules gcal.Rules
}

// NewGregorian returns a Gregorian calendar set to the current instant in
// zone (the host zone when empty) using rules.
func NewGregorian(zone string, rules WeekRules) *Gregorian {
	z := gcal.LocalZone()
	if zone != "" {
		z = gcal.LoadZone(zone)
	}
	return &Gregorian{t: time.Now().In(z.Loc), zone: z, rules: rules.native()}
}

func (g *Gregorian) Clone() Calendar {
	cp := *g
	return &cp
}

// SetField replaces one field and normalizes at once. Day-of-week fields
// move within the current week; week fields move by whole weeks.
func (g *Gregorian) SetField(f Field, v int) error {
	nf, err := ToNative(f)
	if err != nil {
		return err
	}
	fields := gcal.ComputeFields(g.t, g.rules)
	t := g.t
	y, m, d := t.Date()
	hour, minute, sec, nsec := t.Hour(), t.Minute(), t.Second(), t.Nanosecond()

	switch nf {
	case gcal.Era:
		year := fields[gcal.Year]
		if v <= 0 {
			y = 1 - year
		} else {
			y = year
		}
	case gcal.Year:
		if fields[gcal.Era] == 0 {
			y = 1 - v
		} else {
			y = v
		}
	case gcal.ExtendedYear:
		y = v
	case gcal.Month:
		m = time.Month(v + 1)
	case gcal.DayOfMonth:
		d = v
	case gcal.DayOfYear:
		m, d = time.January, v
	case gcal.HourOfDay:
		hour = v
	case gcal.Hour:
		hour = fields[gcal.AmPm]*12 + v
	case gcal.AmPm:
		hour = v*12 + fields[gcal.Hour]
	case gcal.Minute:
		minute = v
	case gcal.Second:
		sec = v
	case gcal.DayOfWeek:
		first := g.rules.FirstDayOfWeek
		d += weekPosition(v, first) - weekPosition(fields[nf], first)
	case gcal.DowLocal:
		d += v - fields[nf]
	case gcal.DayOfWeekInMonth, gcal.WeekOfYear, gcal.WeekOfMonth:
		d += 7 * (v - fields[nf])
	}
	return g.set(time.Date(y, m, d, hour, minute, sec, nsec, g.zone.Loc))
}

func weekPosition(dow, first int) int {
	p := (dow - first) % 7
	if p < 0 {
		p += 7
	}
	return p
}

func (g *Gregorian) set(t time.Time) error {
	if !gcal.InRange(gcal.MillisOf(t)) {
		return fmt.Errorf("%w: %v", ErrDateTime, gcal.ErrOutOfRange)
	}
	g.t = t
	return nil
}

func (g *Gregorian) Field(f Field, kind ValueKind) (int, error) {
	if f == FirstDayOfWeek {
		return g.rules.FirstDayOfWeek, nil
	}
	nf, err := ToNative(f)
	if err != nil {
		return 0, err
	}
	switch kind {
	case AbsoluteMinimum:
		return gcal.Limit(nf, gcal.LimitMinimum, g.rules), nil
	case GreatestMinimum:
		return gcal.Limit(nf, gcal.LimitGreatestMinimum, g.rules), nil
	case LeastMaximum:
		return gcal.Limit(nf, gcal.LimitLeastMaximum, g.rules), nil
	case AbsoluteMaximum:
		return gcal.Limit(nf, gcal.LimitMaximum, g.rules), nil
	case ActualMinimum:
		return gcal.ActualMinimum(g.t, nf, g.rules), nil
	case ActualMaximum:
		return gcal.ActualMaximum(g.t, nf, g.rules), nil
	}
	return gcal.ComputeFields(g.t, g.rules).Get(nf), nil
}

func (g *Gregorian) SetTime(p PosixTime) error {
	return g.set(time.Unix(p.Seconds, int64(p.Nanoseconds)).In(g.zone.Loc))
}

func (g *Gregorian) Time() (PosixTime, error) {
	return PosixTimeOf(g.t), nil
}

// Normalize is a no-op: fields are always normalized.
func (g *Gregorian) Normalize() error {
	return nil
}

func (g *Gregorian) Adjust(f Field, mode UpdateMode, delta int) error {
	nf, err := ToNative(f)
	if err != nil {
		return err
	}
	var t time.Time
	if mode == Roll {
		t, err = gcal.RollTo(g.t, nf, delta, g.rules)
	} else {
		t, err = gcal.AddTo(g.t, nf, delta, g.rules)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDateTime, err)
	}
	g.t = t
	return nil
}

func (g *Gregorian) Difference(other Calendar, f Field) (int, error) {
	nf, err := ToNative(f)
	if err != nil {
		return 0, err
	}
	pt, err := other.Time()
	if err != nil {
		return 0, err
	}
	n, _, err := gcal.Difference(g.t, pt.Time().In(g.zone.Loc), nf, g.rules)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDateTime, err)
	}
	return n, nil
}

func (g *Gregorian) SetTimeZone(id string) {
	g.zone = gcal.LoadZone(id)
	g.t = g.t.In(g.zone.Loc)
}

func (g *Gregorian) TimeZone() string {
	return g.zone.ID
}

func (g *Gregorian) Option(o Option) (bool, error) {
	switch o {
	case IsGregorian:
		return true, nil
	case IsDST:
		return g.t.IsDST(), nil
	}
	return false, nil
}

func (g *Gregorian) SetOption(o Option, _ bool) error {
	switch o {
	case IsGregorian:
		return fmt.Errorf("%w: is_gregorian", ErrOptionNotSettable)
	case IsDST:
		return fmt.Errorf("%w: is_dst", ErrOptionNotSettable)
	}
	return nil
}

func (g *Gregorian) SameRules(other Calendar) bool {
	peer, ok := other.(*Gregorian)
	if !ok {
		return false
	}
	return g.rules == peer.rules && g.zone.ID == peer.zone.ID
}
