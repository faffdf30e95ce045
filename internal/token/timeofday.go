package token

import (
	"fmt"
	"time"

	"countdown/internal/calendar"
	"countdown/internal/locale"
)

// timeToken is a time-of-day specification. The variant set is closed:
// emptyTime, normalTime, specialTime.
type timeToken interface {
	isValid() bool

	// resolveOn places the time of day onto the given concrete date. The
	// reference instant min drives the afternoon-preference heuristics for
	// times typed without a meridiem. Panics when the token is invalid.
	resolveOn(date time.Time, min time.Time) time.Time

	render(loc *locale.Locale) string
}

// emptyTime is the absent time part of a date-only phrase; it defaults to
// midnight.
type emptyTime struct{}

func (emptyTime) isValid() bool { return true }

func (emptyTime) resolveOn(date time.Time, _ time.Time) time.Time {
	return calendar.DateOf(date)
}

func (emptyTime) render(*locale.Locale) string { return "" }

// meridiem disambiguates a 1-12 hour value.
type meridiem int

const (
	// meridiemNone means the phrase carried no designator; resolution
	// applies the afternoon-preference heuristics.
	meridiemNone meridiem = iota
	meridiemAM
	meridiemPM
	// meridiemTwentyFourHour marks an hour typed on the 24-hour clock
	// (0, or 13 through 23); no heuristic applies.
	meridiemTwentyFourHour
)

// normalTime is an explicit time of day. minute and second are -1 when
// unspecified.
type normalTime struct {
	hour     int
	minute   int
	second   int
	meridiem meridiem
}

func (t normalTime) isValid() bool {
	switch t.meridiem {
	case meridiemAM, meridiemPM, meridiemNone:
		// The typed hour is on the 12-hour clock prior to normalization.
		if t.hour < 1 || t.hour > 12 {
			return false
		}
	case meridiemTwentyFourHour:
		if t.hour < 0 || t.hour > 23 {
			return false
		}
	default:
		return false
	}
	if t.minute != -1 && (t.minute < 0 || t.minute > 59) {
		return false
	}
	if t.second != -1 && (t.second < 0 || t.second > 59) {
		return false
	}
	// Seconds cannot be specified without minutes.
	if t.second != -1 && t.minute == -1 {
		return false
	}
	return true
}

// normalizedHour maps the typed (hour, meridiem) pair onto the 24-hour
// clock: 12 AM is 0, 1-11 PM gain twelve, everything else is unchanged.
func (t normalTime) normalizedHour() int {
	switch t.meridiem {
	case meridiemAM:
		if t.hour == 12 {
			return 0
		}
	case meridiemPM:
		if t.hour < 12 {
			return t.hour + 12
		}
	}
	return t.hour
}

func (t normalTime) resolveOn(date time.Time, min time.Time) time.Time {
	if !t.isValid() {
		panic(fmt.Sprintf("token: resolve of invalid time token %+v", t))
	}

	minute, second := t.minute, t.second
	if minute == -1 {
		minute = 0
	}
	if second == -1 {
		second = 0
	}

	hour := t.normalizedHour()
	resolved := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, second, 0, date.Location())

	// A morning hour typed without a designator usually means the
	// afternoon or evening. At most one net +12h shift is applied.
	if t.meridiem == meridiemNone && hour < 12 {
		shifted := resolved.Add(12 * time.Hour)
		switch {
		case !resolved.After(min) && shifted.After(min):
			// The morning reading already passed but the afternoon one
			// has not.
			resolved = shifted
		case hour > 0 && hour < 8 && !calendar.SameDate(date, min):
			// Bare early-morning hours on another day mean PM.
			resolved = shifted
		}
	}
	return resolved
}

func (t normalTime) render(loc *locale.Locale) string {
	// Always rendered on the 12-hour clock: a bare "17:30" would re-parse
	// as a duration, while "5:30 pm" round-trips.
	hour := t.normalizedHour()
	designator := loc.AM
	if hour >= 12 {
		designator = loc.PM
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}

	switch {
	case t.second != -1:
		return fmt.Sprintf("%d:%02d:%02d %s", display, t.minute, t.second, designator)
	case t.minute != -1:
		return fmt.Sprintf("%d:%02d %s", display, t.minute, designator)
	default:
		return fmt.Sprintf("%d %s", display, designator)
	}
}

// specialTimeKind names a fixed time of day.
type specialTimeKind int

const (
	midday specialTimeKind = iota
	midnight
)

type specialTime struct {
	kind specialTimeKind
}

func (t specialTime) isValid() bool {
	return t.kind == midday || t.kind == midnight
}

func (t specialTime) resolveOn(date time.Time, _ time.Time) time.Time {
	if !t.isValid() {
		panic(fmt.Sprintf("token: resolve of invalid time token %+v", t))
	}
	hour := 0
	if t.kind == midday {
		hour = 12
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}

func (t specialTime) render(*locale.Locale) string {
	if t.kind == midday {
		return "noon"
	}
	return "midnight"
}
