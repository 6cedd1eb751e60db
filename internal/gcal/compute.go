package gcal

import (
	"math"
	"time"
)

// Rules carries the week conventions of a region.
type Rules struct {
	// FirstDayOfWeek uses the engine's day numbering, 1 = Sunday.
	FirstDayOfWeek int
	// MinimalDays is the number of days the first week of a year or month
	// must contain.
	MinimalDays int
}

// DefaultRules are the conventions of the root region: weeks start on Monday
// and the first week needs a single day.
func DefaultRules() Rules {
	return Rules{FirstDayOfWeek: 2, MinimalDays: 1}
}

// Normalize clamps out-of-range values back to the defaults.
func (r Rules) Normalize() Rules {
	def := DefaultRules()
	if r.FirstDayOfWeek < 1 || r.FirstDayOfWeek > 7 {
		r.FirstDayOfWeek = def.FirstDayOfWeek
	}
	if r.MinimalDays < 1 || r.MinimalDays > 7 {
		r.MinimalDays = def.MinimalDays
	}
	return r
}

// ComputeFields breaks t down into engine fields, in t's location.
func ComputeFields(t time.Time, r Rules) Fields {
	r = r.Normalize()
	var f Fields

	y, m, d := t.Date()
	if y > 0 {
		f[Era] = 1
		f[Year] = y
	} else {
		f[Era] = 0
		f[Year] = 1 - y
	}
	f[ExtendedYear] = y
	f[Month] = int(m) - 1
	f[DayOfMonth] = d

	doy := t.YearDay()
	dow := weekday(t)
	f[DayOfYear] = doy
	f[DayOfWeek] = dow
	f[DayOfWeekInMonth] = (d-1)/7 + 1
	f[DowLocal] = floorMod(dow-r.FirstDayOfWeek, 7) + 1

	hour := t.Hour()
	f[HourOfDay] = hour
	f[AmPm] = hour / 12
	f[Hour] = hour % 12
	f[Minute] = t.Minute()
	f[Second] = t.Second()
	f[Millisecond] = t.Nanosecond() / int(time.Millisecond)

	raw, dst := zoneOffsets(t)
	f[ZoneOffset] = raw
	f[DstOffset] = dst

	relDow := floorMod(dow-r.FirstDayOfWeek, 7)
	relDowJan1 := floorMod(dow-doy+1-r.FirstDayOfWeek, 7)
	woy := (doy - 1 + relDowJan1) / 7
	if 7-relDowJan1 >= r.MinimalDays {
		woy++
	}
	yearWoy := y
	if woy == 0 {
		prevDoy := doy + yearLength(y-1)
		woy = weekNumber(prevDoy, prevDoy, dow, r)
		yearWoy--
	} else {
		lastDoy := yearLength(y)
		if doy >= lastDoy-5 {
			lastRelDow := floorMod(relDow+lastDoy-doy, 7)
			if 6-lastRelDow >= r.MinimalDays && doy+7-relDow > lastDoy {
				woy = 1
				yearWoy++
			}
		}
	}
	f[WeekOfYear] = woy
	f[YearWoy] = yearWoy
	f[WeekOfMonth] = weekNumber(d, d, dow, r)
	return f
}

// weekNumber returns the week of a period that desiredDay falls in, given
// that day dayOfPeriod of the period is a dayOfWeek.
func weekNumber(desiredDay, dayOfPeriod, dayOfWeek int, r Rules) int {
	periodStartDow := floorMod(dayOfWeek-r.FirstDayOfWeek-dayOfPeriod+1, 7)
	weekNo := (desiredDay + periodStartDow - 1) / 7
	if 7-periodStartDow >= r.MinimalDays {
		weekNo++
	}
	return weekNo
}

// firstWeekStart returns the day of month (possibly <= 0) on which week one
// of the month that starts on firstDow begins.
func firstWeekStart(firstDow int, r Rules) int {
	offset := floorMod(firstDow-r.FirstDayOfWeek, 7)
	start := 1 - offset
	if 7-offset < r.MinimalDays {
		start += 7
	}
	return start
}

func weeksInYear(y int, r Rules) int {
	start := firstWeekStart(weekday(time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)), r)
	next := firstWeekStart(weekday(time.Date(y+1, time.January, 1, 0, 0, 0, 0, time.UTC)), r)
	return (yearLength(y) + next - start) / 7
}

// zoneOffsets splits t's UTC offset into the raw offset and the daylight
// saving amount, both in milliseconds.
func zoneOffsets(t time.Time) (int, int) {
	_, offset := t.Zone()
	if !t.IsDST() {
		return offset * 1000, 0
	}
	loc := t.Location()
	raw := offset - 3600
	for _, at := range []time.Time{
		time.Date(t.Year(), time.January, 1, 12, 0, 0, 0, loc),
		time.Date(t.Year(), time.July, 1, 12, 0, 0, 0, loc),
	} {
		if !at.IsDST() {
			_, raw = at.Zone()
			break
		}
	}
	return raw * 1000, (offset - raw) * 1000
}

// weekday returns t's day of week, 1 = Sunday.
func weekday(t time.Time) int {
	return int(t.Weekday()) + 1
}

func isLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func yearLength(y int) int {
	if isLeap(y) {
		return 366
	}
	return 365
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysIn returns the length of month m (1-based) of year y.
func daysIn(y, m int) int {
	y, m = normalizeMonth(y, m)
	if m == 2 && isLeap(y) {
		return 29
	}
	return monthDays[m-1]
}

// normalizeMonth folds an out-of-range 1-based month into its year.
func normalizeMonth(y, m int) (int, int) {
	m--
	y += floorDiv(m, 12)
	return y, floorMod(m, 12) + 1
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// TimeOf converts engine milliseconds to a time in loc. Sub-millisecond
// precision is kept down to the nanosecond the float carries.
func TimeOf(ms float64, loc *time.Location) time.Time {
	sec := math.Floor(ms / 1000)
	nsec := math.Round((ms - sec*1000) * 1e6)
	if nsec >= 1e9 {
		sec++
		nsec -= 1e9
	}
	return time.Unix(int64(sec), int64(nsec)).In(loc)
}

// MillisOf converts t to engine milliseconds.
func MillisOf(t time.Time) float64 {
	return float64(t.Unix())*1000 + float64(t.Nanosecond())/1e6
}

// InRange reports whether ms is an instant the engine accepts.
func InRange(ms float64) bool {
	return !math.IsNaN(ms) && ms >= MinMillis && ms <= MaxMillis
}
