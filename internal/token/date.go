package token

import (
	"fmt"
	"time"

	"countdown/internal/calendar"
	"countdown/internal/locale"
)

// dateToken is a partial or complete date specification. The variant set is
// closed: emptyDate, normalDate, dayOfWeekDate, relativeDate, specialDate.
type dateToken interface {
	isValid() bool

	// resolve turns the token into a concrete date (midnight) on or after
	// min. When inclusive is false, min's own date does not count as a
	// match. Panics when the token is invalid.
	resolve(min time.Time, inclusive bool) time.Time

	render(loc *locale.Locale) string
}

// emptyDate is the absent date part of a time-only phrase. It resolves to
// the reference date, or the following day when the reference date is
// excluded.
type emptyDate struct{}

func (emptyDate) isValid() bool { return true }

func (emptyDate) resolve(min time.Time, inclusive bool) time.Time {
	d := calendar.DateOf(min)
	if !inclusive {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func (emptyDate) render(*locale.Locale) string { return "" }

// normalDate is an explicit date with any subset of year, month and day
// present. A zero field is unset.
type normalDate struct {
	year  int
	month int
	day   int
}

func (d normalDate) isValid() bool {
	if d.year == 0 && d.month == 0 && d.day == 0 {
		return false
	}
	// A bare year + day combination has no meaning.
	if d.year != 0 && d.day != 0 && d.month == 0 {
		return false
	}
	if d.year != 0 && (d.year < 1 || d.year > 9999) {
		return false
	}
	if d.month != 0 && (d.month < 1 || d.month > 12) {
		return false
	}
	if d.day != 0 && d.day < 1 {
		return false
	}
	if d.day != 0 {
		// Default unset fields permissively: year 2000 is a leap year, so
		// an explicit Feb 29 without a year stays valid.
		year := d.year
		if year == 0 {
			year = 2000
		}
		month := time.Month(d.month)
		if d.month == 0 {
			month = time.January
		}
		if d.day > calendar.DaysInMonth(year, month) {
			return false
		}
	}
	return true
}

// resolveIterationCap bounds the advance-and-retry loop. Day-of-month
// constraints need at most a handful of month steps and Feb 29 needs at
// most eight year steps; the cap only guards against logic errors.
const resolveIterationCap = 100

func (d normalDate) resolve(min time.Time, inclusive bool) time.Time {
	if !d.isValid() {
		panic(fmt.Sprintf("token: resolve of invalid date token %+v", d))
	}

	// An unset field defaults to 1 when a more significant field was
	// explicitly specified, otherwise to the reference date's value.
	year := d.year
	if year == 0 {
		year = min.Year()
	}
	month := d.month
	if month == 0 {
		if d.year != 0 {
			month = 1
		} else {
			month = int(min.Month())
		}
	}
	day := d.day
	if day == 0 {
		if d.year != 0 || d.month != 0 {
			day = 1
		} else {
			day = min.Day()
		}
	}

	minDate := calendar.DateOf(min)
	for i := 0; i < resolveIterationCap; i++ {
		candidate, ok := makeDate(year, month, day, min.Location())
		if ok && (candidate.After(minDate) || (inclusive && candidate.Equal(minDate))) {
			return candidate
		}

		// Advance the least-constrained free field and retry.
		switch {
		case d.day != 0 && d.month == 0:
			month++
			if month > 12 {
				month = 1
				year++
			}
		case (d.month != 0 || d.day != 0) && d.year == 0:
			year++
		default:
			// No degrees of freedom remain. Return the candidate as-is:
			// it may precede the reference, and a calendar-invalid triple
			// surfaces as its normalized neighbor. Callers treat the
			// resulting past instant as unresolvable rather than guessing.
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, min.Location())
		}
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, min.Location())
}

func (d normalDate) render(loc *locale.Locale) string {
	switch {
	case d.month != 0 && d.day != 0 && d.year != 0:
		switch loc.FieldOrder() {
		case calendar.YearFirst:
			return fmt.Sprintf("%04d/%02d/%02d", d.year, d.month, d.day)
		case calendar.MonthFirst:
			return fmt.Sprintf("%s %d, %d", loc.MonthNames[d.month-1], d.day, d.year)
		default:
			return fmt.Sprintf("%d %s %d", d.day, loc.MonthNames[d.month-1], d.year)
		}
	case d.month != 0 && d.day != 0:
		if loc.FieldOrder() == calendar.MonthFirst {
			return fmt.Sprintf("%s %d", loc.MonthNames[d.month-1], d.day)
		}
		return fmt.Sprintf("%d %s", d.day, loc.MonthNames[d.month-1])
	case d.month != 0 && d.year != 0:
		return fmt.Sprintf("%s %d", loc.MonthNames[d.month-1], d.year)
	case d.month != 0:
		return loc.MonthNames[d.month-1]
	case d.day != 0:
		return "the " + calendar.Ordinal(d.day)
	default:
		return fmt.Sprintf("%d", d.year)
	}
}

// makeDate builds a concrete date and reports whether the triple is
// calendar-valid (time.Date normalizes out-of-range values).
func makeDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	return t, t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// weekdayRelation qualifies a weekday-relative date.
type weekdayRelation int

const (
	// weekdayNext is the soonest matching weekday strictly after the
	// reference date.
	weekdayNext weekdayRelation = iota
	// weekdayAfterNext is exactly seven days after weekdayNext.
	weekdayAfterNext
	// weekdayNextWeek is the matching weekday in the week after the
	// reference's week.
	weekdayNextWeek
)

// dayOfWeekDate is a weekday-relative date ("next friday").
type dayOfWeekDate struct {
	weekday  time.Weekday
	relation weekdayRelation
}

func (d dayOfWeekDate) isValid() bool {
	return d.weekday >= time.Sunday && d.weekday <= time.Saturday
}

func (d dayOfWeekDate) resolve(min time.Time, _ bool) time.Time {
	if !d.isValid() {
		panic(fmt.Sprintf("token: resolve of invalid date token %+v", d))
	}

	t := calendar.DateOf(min).AddDate(0, 0, 1)
	for t.Weekday() != d.weekday {
		t = t.AddDate(0, 0, 1)
	}

	switch d.relation {
	case weekdayAfterNext:
		t = t.AddDate(0, 0, 7)
	case weekdayNextWeek:
		// The forward search above already lands inside the current week
		// when the target weekday has not yet occurred this week.
		if d.weekday > min.Weekday() {
			t = t.AddDate(0, 0, 7)
		}
	}
	return t
}

func (d dayOfWeekDate) render(loc *locale.Locale) string {
	name := loc.WeekdayNames[d.weekday]
	switch d.relation {
	case weekdayAfterNext:
		return name + " after next"
	case weekdayNextWeek:
		return name + " next week"
	default:
		return "next " + name
	}
}

// relativeDate is a date a fixed number of days from the reference
// ("today", "tomorrow").
type relativeDate struct {
	days int
}

func (d relativeDate) isValid() bool { return d.days == 0 || d.days == 1 }

func (d relativeDate) resolve(min time.Time, _ bool) time.Time {
	if !d.isValid() {
		panic(fmt.Sprintf("token: resolve of invalid date token %+v", d))
	}
	return calendar.DateOf(min).AddDate(0, 0, d.days)
}

func (d relativeDate) render(*locale.Locale) string {
	if d.days == 1 {
		return "tomorrow"
	}
	return "today"
}

// specialDateKind names a fixed calendar date whose year floats to the next
// occurrence.
type specialDateKind int

const (
	newYear specialDateKind = iota
	christmasDay
	newYearsEve
)

type specialDate struct {
	kind specialDateKind
}

func (d specialDate) monthDay() (time.Month, int) {
	switch d.kind {
	case christmasDay:
		return time.December, 25
	case newYearsEve:
		return time.December, 31
	default:
		return time.January, 1
	}
}

func (d specialDate) isValid() bool {
	return d.kind >= newYear && d.kind <= newYearsEve
}

func (d specialDate) resolve(min time.Time, inclusive bool) time.Time {
	if !d.isValid() {
		panic(fmt.Sprintf("token: resolve of invalid date token %+v", d))
	}

	month, day := d.monthDay()
	minDate := calendar.DateOf(min)
	t := time.Date(min.Year(), month, day, 0, 0, 0, 0, min.Location())
	if t.Before(minDate) || (!inclusive && t.Equal(minDate)) {
		t = t.AddDate(1, 0, 0)
	}
	return t
}

func (d specialDate) render(*locale.Locale) string {
	switch d.kind {
	case christmasDay:
		return "Christmas Day"
	case newYearsEve:
		return "New Year's Eve"
	default:
		return "New Year's Day"
	}
}
