package gcal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "time/tzdata"
)

// UnknownZoneID is reported for identifiers the engine cannot resolve.
// Such zones behave like GMT.
const UnknownZoneID = "Etc/Unknown"

// Zone pairs a time zone identifier with its location.
type Zone struct {
	ID  string
	Loc *time.Location
}

// LoadZone resolves id. Accepted forms are GMT, UTC, custom offsets such as
// GMT+01:00, GMT-5 or GMT+0130, and IANA names. Anything else yields the
// unknown zone.
func LoadZone(id string) Zone {
	switch strings.ToUpper(id) {
	case "GMT", "UTC", "UT":
		return Zone{ID: strings.ToUpper(id), Loc: time.FixedZone(strings.ToUpper(id), 0)}
	}
	if offset, norm, ok := parseCustomID(id); ok {
		return Zone{ID: norm, Loc: time.FixedZone(norm, offset)}
	}
	if id != "" && id != "Local" {
		if loc, err := time.LoadLocation(id); err == nil {
			return Zone{ID: id, Loc: loc}
		}
	}
	return Zone{ID: UnknownZoneID, Loc: time.FixedZone(UnknownZoneID, 0)}
}

// LocalZone returns the host zone. The TZ environment variable names it
// when set, otherwise the zone is reported as "Local".
func LocalZone() Zone {
	if tz, ok := os.LookupEnv("TZ"); ok && tz != "" {
		if z := LoadZone(strings.TrimPrefix(tz, ":")); z.ID != UnknownZoneID {
			return z
		}
	}
	return Zone{ID: time.Local.String(), Loc: time.Local}
}

// parseCustomID parses GMT[+-]hh[[:]mm] and returns the offset in seconds
// together with the normalized GMT+hh:mm identifier.
func parseCustomID(id string) (int, string, bool) {
	upper := strings.ToUpper(id)
	var rest string
	switch {
	case strings.HasPrefix(upper, "GMT"):
		rest = id[3:]
	case strings.HasPrefix(upper, "UTC"):
		rest = id[3:]
	default:
		return 0, "", false
	}
	if len(rest) < 2 || (rest[0] != '+' && rest[0] != '-') {
		return 0, "", false
	}
	sign := 1
	if rest[0] == '-' {
		sign = -1
	}
	rest = rest[1:]

	var hh, mm string
	switch {
	case strings.Contains(rest, ":"):
		parts := strings.SplitN(rest, ":", 2)
		hh, mm = parts[0], parts[1]
		if len(mm) != 2 {
			return 0, "", false
		}
	case len(rest) <= 2:
		hh = rest
	case len(rest) == 3 || len(rest) == 4:
		hh, mm = rest[:len(rest)-2], rest[len(rest)-2:]
	default:
		return 0, "", false
	}
	if hh == "" || len(hh) > 2 || !digits(hh) || !digits(mm) {
		return 0, "", false
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours > 23 {
		return 0, "", false
	}
	minutes := 0
	if mm != "" {
		minutes, err = strconv.Atoi(mm)
		if err != nil || minutes > 59 {
			return 0, "", false
		}
	}

	signChar := "+"
	if sign < 0 {
		signChar = "-"
	}
	norm := fmt.Sprintf("GMT%s%02d:%02d", signChar, hours, minutes)
	return sign * (hours*3600 + minutes*60), norm, true
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
