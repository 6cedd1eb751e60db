package gcal

import (
	"fmt"
	"math"
	"time"
)

const (
	unset            = 0
	internallySet    = 1
	minimumUserStamp = 2
)

var datePrecedence = [][]Field{
	{DayOfMonth},
	{WeekOfYear, DayOfWeek},
	{WeekOfMonth, DayOfWeek},
	{DayOfWeekInMonth, DayOfWeek},
	{WeekOfYear, DowLocal},
	{WeekOfMonth, DowLocal},
	{DayOfWeekInMonth, DowLocal},
	{DayOfYear},
}

// Calendar is a stateful, lenient Gregorian calendar. It is not safe for
// concurrent use.
type Calendar struct {
	millis    float64
	fields    Fields
	stamp     [FieldCount]int
	nextStamp int
	timeSet   bool
	fieldsSet bool
	zone      Zone
	rules     Rules
}

// New returns a calendar in zone z set to the current instant.
func New(z Zone, r Rules) *Calendar {
	if z.Loc == nil {
		z = LoadZone(z.ID)
	}
	c := &Calendar{zone: z, rules: r.Normalize(), nextStamp: minimumUserStamp}
	c.setMillis(MillisOf(time.Now()))
	return c
}

// Clone returns an independent copy of c.
func (c *Calendar) Clone() *Calendar {
	cp := *c
	return &cp
}

// Rules returns the week conventions of c.
func (c *Calendar) Rules() Rules {
	return c.rules
}

// Zone returns the time zone of c.
func (c *Calendar) Zone() Zone {
	return c.zone
}

// SetZone moves c to zone z keeping the current instant. Pending fields
// that do not resolve to an instant stay pending and resolve in z.
func (c *Calendar) SetZone(z Zone) {
	if z.Loc == nil {
		z = LoadZone(z.ID)
	}
	if !c.timeSet && c.computeTime() != nil {
		c.zone = z
		return
	}
	c.zone = z
	c.fieldsSet = false
}

// Set stores v in field f. The instant is recomputed on the next read.
func (c *Calendar) Set(f Field, v int) error {
	if !f.Valid() {
		return fmt.Errorf("%w: field %d", ErrIllegalArgument, int(f))
	}
	if c.timeSet && !c.fieldsSet {
		c.computeFields()
	}
	c.fields[f] = v
	c.stamp[f] = c.nextStamp
	c.nextStamp++
	c.timeSet = false
	c.fieldsSet = false
	return nil
}

// Get returns the value of f after completing pending computations.
func (c *Calendar) Get(f Field) (int, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("%w: field %d", ErrIllegalArgument, int(f))
	}
	if err := c.complete(); err != nil {
		return 0, err
	}
	return c.fields[f], nil
}

// Limit returns the fixed bound lt of f.
func (c *Calendar) Limit(f Field, lt LimitType) int {
	return Limit(f, lt, c.rules)
}

// ActualMinimum returns the smallest value f can take for the current date.
func (c *Calendar) ActualMinimum(f Field) (int, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("%w: field %d", ErrIllegalArgument, int(f))
	}
	if err := c.complete(); err != nil {
		return 0, err
	}
	return ActualMinimum(c.timeValue(), f, c.rules), nil
}

// ActualMaximum returns the largest value f can take for the current date.
func (c *Calendar) ActualMaximum(f Field) (int, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("%w: field %d", ErrIllegalArgument, int(f))
	}
	if err := c.complete(); err != nil {
		return 0, err
	}
	return ActualMaximum(c.timeValue(), f, c.rules), nil
}

// SetTime sets the instant in milliseconds since the epoch.
func (c *Calendar) SetTime(ms float64) error {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || !InRange(ms) {
		return fmt.Errorf("%w: %v", ErrOutOfRange, ms)
	}
	c.setMillis(ms)
	return nil
}

// Time returns the instant in milliseconds since the epoch, resolving any
// pending field changes.
func (c *Calendar) Time() (float64, error) {
	if !c.timeSet {
		if err := c.computeTime(); err != nil {
			return 0, err
		}
		c.fieldsSet = false
	}
	return c.millis, nil
}

// Add moves the calendar by delta units of f.
func (c *Calendar) Add(f Field, delta int) error {
	if err := c.complete(); err != nil {
		return err
	}
	t, err := AddTo(c.timeValue(), f, delta, c.rules)
	if err != nil {
		return err
	}
	c.setMillis(MillisOf(t))
	return nil
}

// Roll changes f by delta without altering larger fields.
func (c *Calendar) Roll(f Field, delta int) error {
	if err := c.complete(); err != nil {
		return err
	}
	t, err := RollTo(c.timeValue(), f, delta, c.rules)
	if err != nil {
		return err
	}
	c.setMillis(MillisOf(t))
	return nil
}

// FieldDifference returns the number of whole units of f between the current
// instant and target. The calendar is left advanced by that amount.
func (c *Calendar) FieldDifference(target float64, f Field) (int, error) {
	if err := c.complete(); err != nil {
		return 0, err
	}
	if !InRange(target) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, target)
	}
	n, end, err := Difference(c.timeValue(), TimeOf(target, c.zone.Loc), f, c.rules)
	if err != nil {
		return 0, err
	}
	c.setMillis(MillisOf(end))
	return n, nil
}

// InDaylightTime reports whether the current instant observes daylight saving.
func (c *Calendar) InDaylightTime() (bool, error) {
	if err := c.complete(); err != nil {
		return false, err
	}
	return c.timeValue().IsDST(), nil
}

// IsEquivalentTo reports whether other computes dates the same way as c.
func (c *Calendar) IsEquivalentTo(other *Calendar) bool {
	if other == nil {
		return false
	}
	return c.rules == other.rules && c.zone.ID == other.zone.ID && c.zone.Loc.String() == other.zone.Loc.String()
}

func (c *Calendar) setMillis(ms float64) {
	c.millis = ms
	c.timeSet = true
	c.fieldsSet = false
	c.fields = Fields{}
	c.stamp = [FieldCount]int{}
	c.nextStamp = minimumUserStamp
}

func (c *Calendar) timeValue() time.Time {
	return TimeOf(c.millis, c.zone.Loc)
}

func (c *Calendar) complete() error {
	if !c.timeSet {
		if err := c.computeTime(); err != nil {
			return err
		}
	}
	if !c.fieldsSet {
		c.computeFields()
	}
	return nil
}

func (c *Calendar) computeFields() {
	c.fields = ComputeFields(c.timeValue(), c.rules)
	for i := range c.stamp {
		c.stamp[i] = internallySet
	}
	c.nextStamp = minimumUserStamp
	c.fieldsSet = true
}

func (c *Calendar) computeTime() error {
	y, m, d := c.resolveDate()
	hour := c.resolveHour()
	t := time.Date(y, time.Month(m), d,
		hour, c.fieldOr(Minute, 0), c.fieldOr(Second, 0),
		c.fieldOr(Millisecond, 0)*int(time.Millisecond), c.zone.Loc)
	ms := MillisOf(t)
	if !InRange(ms) {
		return fmt.Errorf("%w: fields resolve to %v", ErrOutOfRange, ms)
	}
	c.millis = ms
	c.timeSet = true
	return nil
}

func (c *Calendar) fieldOr(f Field, def int) int {
	if c.stamp[f] == unset {
		return def
	}
	return c.fields[f]
}

func (c *Calendar) resolveYear() int {
	if c.stamp[ExtendedYear] > c.stamp[Year] && c.stamp[ExtendedYear] > c.stamp[Era] {
		return c.fields[ExtendedYear]
	}
	year := c.fieldOr(Year, 1970)
	if c.fieldOr(Era, 1) == 0 {
		return 1 - year
	}
	return year
}

func (c *Calendar) weekYear(year int) int {
	if c.stamp[YearWoy] == unset {
		return year
	}
	for _, f := range []Field{Year, ExtendedYear, Era} {
		if c.stamp[f] > c.stamp[YearWoy] {
			return year
		}
	}
	return c.fields[YearWoy]
}

func (c *Calendar) resolveDateLine() int {
	best, bestStamp := -1, unset
	for i, line := range datePrecedence {
		lineStamp := unset
		for _, f := range line {
			s := c.stamp[f]
			if s == unset {
				lineStamp = unset
				break
			}
			lineStamp = max(lineStamp, s)
		}
		if lineStamp > bestStamp {
			best, bestStamp = i, lineStamp
		}
	}
	return best
}

// resolveDate returns a possibly denormalized year, 1-based month and day.
func (c *Calendar) resolveDate() (int, int, int) {
	year := c.resolveYear()
	month := c.fieldOr(Month, 0) + 1
	line := c.resolveDateLine()
	if line <= 0 {
		return year, month, c.fieldOr(DayOfMonth, 1)
	}
	if line == len(datePrecedence)-1 {
		return year, 1, c.fields[DayOfYear]
	}

	dow := c.fields[DayOfWeek]
	if datePrecedence[line][1] == DowLocal {
		dow = floorMod(c.fields[DowLocal]-1+c.rules.FirstDayOfWeek-1, 7) + 1
	}
	relDow := floorMod(dow-c.rules.FirstDayOfWeek, 7)

	switch datePrecedence[line][0] {
	case WeekOfYear:
		wy := c.weekYear(year)
		jan1 := time.Date(wy, time.January, 1, 0, 0, 0, 0, time.UTC)
		start := firstWeekStart(weekday(jan1), c.rules)
		return wy, 1, start + (c.fields[WeekOfYear]-1)*7 + relDow
	case WeekOfMonth:
		year, month = normalizeMonth(year, month)
		first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		start := firstWeekStart(weekday(first), c.rules)
		return year, month, start + (c.fields[WeekOfMonth]-1)*7 + relDow
	default:
		year, month = normalizeMonth(year, month)
		n := c.fields[DayOfWeekInMonth]
		if n >= 0 {
			first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
			return year, month, 1 + floorMod(dow-weekday(first), 7) + (n-1)*7
		}
		last := daysIn(year, month)
		ld := time.Date(year, time.Month(month), last, 0, 0, 0, 0, time.UTC)
		return year, month, last - floorMod(weekday(ld)-dow, 7) + (n+1)*7
	}
}

func (c *Calendar) resolveHour() int {
	hodStamp := c.stamp[HourOfDay]
	hourStamp := max(c.stamp[Hour], c.stamp[AmPm])
	best := max(hodStamp, hourStamp)
	switch {
	case best == unset:
		return 0
	case best == hodStamp:
		return c.fields[HourOfDay]
	default:
		return c.fieldOr(Hour, 0) + 12*c.fieldOr(AmPm, 0)
	}
}
