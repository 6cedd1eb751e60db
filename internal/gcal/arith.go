package gcal

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrIllegalArgument mirrors the engine's rejection of a field or value.
	ErrIllegalArgument = errors.New("illegal argument")
	// ErrOutOfRange is returned when a result leaves the supported instants.
	ErrOutOfRange = errors.New("time out of range")
)

// AddTo moves t by delta units of f. Larger fields are adjusted as needed:
// adding a month to January 31 yields the last day of February.
func AddTo(t time.Time, f Field, delta int, r Rules) (time.Time, error) {
	return checked(addTo(t, f, delta, r))
}

// RollTo changes f by delta without carrying into larger fields: the value
// wraps within its actual range for t.
func RollTo(t time.Time, f Field, delta int, r Rules) (time.Time, error) {
	return checked(rollTo(t, f, delta, r))
}

func checked(t time.Time, err error) (time.Time, error) {
	if err != nil {
		return t, err
	}
	if !InRange(MillisOf(t)) {
		return t, ErrOutOfRange
	}
	return t, nil
}

func addTo(t time.Time, f Field, delta int, r Rules) (time.Time, error) {
	if !f.Valid() {
		return t, fmt.Errorf("%w: field %d", ErrIllegalArgument, int(f))
	}
	if delta == 0 {
		return t, nil
	}
	r = r.Normalize()
	switch f {
	case Era:
		fields := ComputeFields(t, r)
		era := fields[Era] + delta
		era = max(0, min(1, era))
		if era == fields[Era] {
			return t, nil
		}
		return withYear(t, extendedYear(era, fields[Year])), nil
	case Year:
		if ComputeFields(t, r)[Era] == 0 {
			delta = -delta
		}
		return addMonths(t, delta*12), nil
	case ExtendedYear, YearWoy:
		return addMonths(t, delta*12), nil
	case Month:
		return addMonths(t, delta), nil
	case WeekOfYear, WeekOfMonth, DayOfWeekInMonth:
		return t.AddDate(0, 0, 7*delta), nil
	case DayOfMonth, DayOfYear, DayOfWeek, DowLocal:
		return t.AddDate(0, 0, delta), nil
	case AmPm:
		return addMillis(t, float64(delta)*12*hourMillis)
	case Hour, HourOfDay:
		return addMillis(t, float64(delta)*hourMillis)
	case Minute:
		return addMillis(t, float64(delta)*60*1000)
	case Second:
		return addMillis(t, float64(delta)*1000)
	case Millisecond:
		return addMillis(t, float64(delta))
	}
	return t, fmt.Errorf("%w: cannot add to %s", ErrIllegalArgument, f)
}

func rollTo(t time.Time, f Field, delta int, r Rules) (time.Time, error) {
	if !f.Valid() {
		return t, fmt.Errorf("%w: field %d", ErrIllegalArgument, int(f))
	}
	if delta == 0 {
		return t, nil
	}
	r = r.Normalize()
	fields := ComputeFields(t, r)
	y, m, d := t.Date()

	switch f {
	case Era:
		era := wrap(fields[Era]+delta, 0, 1)
		return withYear(t, extendedYear(era, fields[Year])), nil
	case Year, YearWoy:
		if fields[Era] == 0 {
			delta = -delta
		}
		year := max(1, fields[Year]+delta)
		return withYear(t, extendedYear(fields[Era], year)), nil
	case ExtendedYear:
		return withYear(t, y+delta), nil
	case Month:
		mon := floorMod(int(m)-1+delta, 12) + 1
		day := min(d, daysIn(y, mon))
		return time.Date(y, time.Month(mon), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()), nil
	case DayOfMonth:
		day := wrap(d+delta, 1, daysIn(y, int(m)))
		return t.AddDate(0, 0, day-d), nil
	case DayOfYear:
		doy := fields[DayOfYear]
		next := floorMod(doy-1+delta, yearLength(y)) + 1
		return t.AddDate(0, 0, next-doy), nil
	case DayOfWeek, DowLocal:
		lead := fields[f] - 1
		if f == DayOfWeek {
			lead = floorMod(fields[DayOfWeek]-r.FirstDayOfWeek, 7)
		}
		return t.AddDate(0, 0, floorMod(lead+delta, 7)-lead), nil
	case WeekOfMonth:
		return t.AddDate(0, 0, rollWeekOfMonth(fields, daysIn(y, int(m)), delta, r)-d), nil
	case WeekOfYear:
		doy := fields[DayOfYear]
		return t.AddDate(0, 0, rollWeekOfYear(fields, yearLength(y), delta, r)-doy), nil
	case DayOfWeekInMonth:
		monthLen := daysIn(y, int(m))
		preWeeks := (d - 1) / 7
		postWeeks := (monthLen - d) / 7
		minDay := d - preWeeks*7
		gap := 7 * (preWeeks + postWeeks + 1)
		day := floorMod(d+7*delta-minDay, gap) + minDay
		return t.AddDate(0, 0, day-d), nil
	case AmPm:
		ampm := wrap(fields[AmPm]+delta, 0, 1)
		return addMillis(t, float64(ampm-fields[AmPm])*12*hourMillis)
	case Hour, HourOfDay:
		hi := Limit(f, LimitMaximum, r)
		hour := fields[f]
		return addMillis(t, float64(floorMod(hour+delta, hi+1)-hour)*hourMillis)
	case Minute:
		v := wrap(fields[Minute]+delta, 0, 59)
		return addMillis(t, float64(v-fields[Minute])*60*1000)
	case Second:
		v := wrap(fields[Second]+delta, 0, 59)
		return addMillis(t, float64(v-fields[Second])*1000)
	case Millisecond:
		v := wrap(fields[Millisecond]+delta, 0, 999)
		return addMillis(t, float64(v-fields[Millisecond]))
	}
	return t, fmt.Errorf("%w: cannot roll %s", ErrIllegalArgument, f)
}

func rollWeekOfMonth(fields Fields, monthLen, delta int, r Rules) int {
	dow := floorMod(fields[DayOfWeek]-r.FirstDayOfWeek, 7)
	dom := fields[DayOfMonth]
	fdm := floorMod(dow-dom+1, 7)
	start := 1 - fdm
	if 7-fdm < r.MinimalDays {
		start = 8 - fdm
	}
	ldm := floorMod(monthLen-dom+dow, 7)
	limit := monthLen + 7 - ldm
	gap := limit - start
	day := floorMod(dom+delta*7-start, gap) + start
	return max(1, min(monthLen, day))
}

func rollWeekOfYear(fields Fields, yearLen, delta int, r Rules) int {
	dow := floorMod(fields[DayOfWeek]-r.FirstDayOfWeek, 7)
	doy := fields[DayOfYear]
	fdy := floorMod(dow-doy+1, 7)
	start := 1 - fdy
	if 7-fdy < r.MinimalDays {
		start = 8 - fdy
	}
	ldy := floorMod(yearLen-doy+dow, 7)
	limit := yearLen + 7 - ldy
	gap := limit - start
	day := floorMod(doy+delta*7-start, gap) + start
	return max(1, min(yearLen, day))
}

// Difference counts the whole units of f that fit between start and target.
// It also returns the instant reached by adding that many units to start,
// which is where a stateful calendar is left afterwards.
func Difference(start, target time.Time, f Field, r Rules) (int, time.Time, error) {
	if !f.Valid() {
		return 0, start, fmt.Errorf("%w: field %d", ErrIllegalArgument, int(f))
	}
	if start.Equal(target) {
		return 0, start, nil
	}

	reached := func(n int) (time.Time, bool) {
		nt, err := AddTo(start, f, n, r)
		if err != nil {
			return nt, false
		}
		return nt, true
	}

	if start.Before(target) {
		lo, hi := 0, 1
		for {
			nt, ok := reached(hi)
			if !ok || nt.After(target) {
				break
			}
			if nt.Equal(target) {
				return hi, nt, nil
			}
			lo = hi
			if hi > math.MaxInt32/2 {
				return 0, start, fmt.Errorf("%w: difference overflows", ErrIllegalArgument)
			}
			hi *= 2
		}
		for hi-lo > 1 {
			mid := lo + (hi-lo)/2
			nt, ok := reached(mid)
			if ok && nt.Equal(target) {
				return mid, nt, nil
			}
			if ok && nt.Before(target) {
				lo = mid
			} else {
				hi = mid
			}
		}
		end, _ := reached(lo)
		if lo == 0 {
			end = start
		}
		return lo, end, nil
	}

	lo, hi := 0, -1
	for {
		nt, ok := reached(hi)
		if !ok || nt.Before(target) {
			break
		}
		if nt.Equal(target) {
			return hi, nt, nil
		}
		lo = hi
		if hi < math.MinInt32/2 {
			return 0, start, fmt.Errorf("%w: difference overflows", ErrIllegalArgument)
		}
		hi *= 2
	}
	for lo-hi > 1 {
		mid := lo + (hi-lo)/2
		nt, ok := reached(mid)
		if ok && nt.Equal(target) {
			return mid, nt, nil
		}
		if ok && nt.After(target) {
			lo = mid
		} else {
			hi = mid
		}
	}
	end, _ := reached(lo)
	if lo == 0 {
		end = start
	}
	return lo, end, nil
}

func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + n
	ny := y + floorDiv(total, 12)
	nm := floorMod(total, 12) + 1
	d = min(d, daysIn(ny, nm))
	return time.Date(ny, time.Month(nm), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func withYear(t time.Time, ext int) time.Time {
	_, m, d := t.Date()
	d = min(d, daysIn(ext, int(m)))
	return time.Date(ext, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func extendedYear(era, year int) int {
	if era == 0 {
		return 1 - year
	}
	return year
}

func addMillis(t time.Time, delta float64) (time.Time, error) {
	ms := MillisOf(t) + delta
	if !InRange(ms) {
		return t, ErrOutOfRange
	}
	return TimeOf(ms, t.Location()), nil
}

func wrap(v, lo, hi int) int {
	return floorMod(v-lo, hi-lo+1) + lo
}
