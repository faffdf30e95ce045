package token

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"countdown/internal/calendar"
	"countdown/internal/locale"
)

// DurationToken is a pure elapsed-time specification built from seven
// numeric unit fields. All fields are non-negative and may be fractional.
type DurationToken struct {
	Years   float64
	Months  float64
	Weeks   float64
	Days    float64
	Hours   float64
	Minutes float64
	Seconds float64
}

// IsValid reports whether every field is a finite non-negative number.
func (t *DurationToken) IsValid() bool {
	for _, v := range []float64{t.Years, t.Months, t.Weeks, t.Days, t.Hours, t.Minutes, t.Seconds} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// EndTime applies the unit fields to start strictly smallest-first:
// seconds, minutes, hours, days, weeks, then fractional months and years.
// The order matters: fractional month and year additions measure an
// adjacent month's length, which depends on the date already advanced by
// the smaller units.
func (t *DurationToken) EndTime(start time.Time) (time.Time, error) {
	if !t.IsValid() {
		panic("token: EndTime on invalid duration token")
	}

	end := start
	end = end.Add(time.Duration(t.Seconds * float64(time.Second)))
	end = end.Add(time.Duration(t.Minutes * float64(time.Minute)))
	end = end.Add(time.Duration(t.Hours * float64(time.Hour)))
	end = calendar.AddFractionalDays(end, t.Days)
	end = calendar.AddFractionalDays(end, t.Weeks*7)
	end = calendar.AddFractionalMonths(end, t.Months)
	end = calendar.AddFractionalYears(end, t.Years)

	if end.Before(start) {
		return time.Time{}, errors.Wrap(ErrUnresolvable, "duration overflows")
	}
	return end, nil
}

// Display renders the duration as a unit-by-unit phrase, largest unit
// first, omitting zero fields. A zero duration renders as "0 seconds".
func (t *DurationToken) Display(_ *locale.Locale) string {
	parts := make([]string, 0, 7)
	appendUnit := func(value float64, singular string) {
		if value == 0 {
			return
		}
		name := singular
		if value != 1 {
			name += "s"
		}
		parts = append(parts, strconv.FormatFloat(value, 'f', -1, 64)+" "+name)
	}

	appendUnit(t.Years, "year")
	appendUnit(t.Months, "month")
	appendUnit(t.Weeks, "week")
	appendUnit(t.Days, "day")
	appendUnit(t.Hours, "hour")
	appendUnit(t.Minutes, "minute")
	appendUnit(t.Seconds, "second")

	if len(parts) == 0 {
		return "0 seconds"
	}
	return strings.Join(parts, " ")
}

const number = `\d+(?:\.\d+)?`

// durationPatterns lists the duration grammar's alternatives in priority
// order: a bare number is minutes, a colon form is hours:minutes[:seconds],
// and the long form spells out units largest-first.
var durationPatterns = []*regexp.Regexp{
	// "5" or "7.5" are minutes.
	regexp.MustCompile(`(?i)^(?P<minutes>` + number + `)$`),
	// "5:30" and "5:30:00" are h:mm and h:mm:ss.
	regexp.MustCompile(`(?i)^(?P<hours>\d+):(?P<minutes>\d\d?)(?::(?P<seconds>\d\d?))?$`),
	// "2 hours 15 minutes", "1h30m", "1.5 w 2 d", ...
	regexp.MustCompile(`(?i)^` +
		`(?:(?P<years>` + number + `)\s*(?:years|year|yrs|yr|y)\.?[\s,]*)?` +
		`(?:(?P<months>` + number + `)\s*(?:months|month|mos|mo)\.?[\s,]*)?` +
		`(?:(?P<weeks>` + number + `)\s*(?:weeks|week|wks|wk|w)\.?[\s,]*)?` +
		`(?:(?P<days>` + number + `)\s*(?:days|day|d)\.?[\s,]*)?` +
		`(?:(?P<hours>` + number + `)\s*(?:hours|hour|hrs|hr|h)\.?[\s,]*)?` +
		`(?:(?P<minutes>` + number + `)\s*(?:minutes|minute|mins|min|m)\.?[\s,]*)?` +
		`(?:(?P<seconds>` + number + `)\s*(?:seconds|second|secs|sec|s)\.?\s*)?` +
		`$`),
}

// parseDurationToken tries the duration alternatives in order and returns
// the first whole-string match that sets at least one unit field.
func parseDurationToken(text string, _ *locale.Locale) (StartToken, error) {
	for _, re := range durationPatterns {
		match := re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		c := newCaptures(re, match)

		tok := &DurationToken{}
		set := false
		for name, field := range map[string]*float64{
			"years":   &tok.Years,
			"months":  &tok.Months,
			"weeks":   &tok.Weeks,
			"days":    &tok.Days,
			"hours":   &tok.Hours,
			"minutes": &tok.Minutes,
			"seconds": &tok.Seconds,
		} {
			value, ok, err := c.floatField(name)
			if err != nil {
				continue
			}
			if ok {
				*field = value
				set = true
			}
		}

		if !set || !tok.IsValid() {
			continue
		}
		return tok, nil
	}
	return nil, errors.Wrapf(ErrFormat, "%q", text)
}
