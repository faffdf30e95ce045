// Package calendar provides wall-clock calendar arithmetic for the timer
// phrase grammar: fractional month and year addition, month-length helpers,
// name-prefix matching, and classification of short date patterns.
//
// All arithmetic is done in the location of the input time; no timezone
// conversion is performed.
package calendar

import (
	"math"
	"time"
)

// DaysInMonth returns the number of days in the given month of the given year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 30
}

// IsLeapYear reports whether the given year is a leap year.
func IsLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 != 0 {
		return true
	}
	return year%400 == 0
}

// AddMonths adds a whole number of calendar months to t, clamping the day of
// month to the length of the target month. Unlike time.Time.AddDate, January
// 31 plus one month is February 28 (or 29), not March 2.
func AddMonths(t time.Time, months int) time.Time {
	m := int(t.Month()) - 1 + months
	y := t.Year() + m/12
	m %= 12
	if m < 0 {
		m += 12
		y--
	}
	month := time.Month(m + 1)

	day := t.Day()
	if max := DaysInMonth(y, month); day > max {
		day = max
	}
	return time.Date(y, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// AddFractionalMonths adds a possibly fractional number of calendar months
// to t. The integer part is applied with AddMonths. The fractional remainder
// is converted to days using the length of the adjacent month in the
// direction of travel: the month after the advanced date when the fraction
// is positive, the month before it when negative. The day count is rounded
// to the nearest whole day.
func AddFractionalMonths(t time.Time, months float64) time.Time {
	whole := int(math.Trunc(months))
	frac := months - float64(whole)

	result := AddMonths(t, whole)
	if frac == 0 {
		return result
	}

	var adjacent time.Time
	if frac > 0 {
		adjacent = AddMonths(result, 1)
	} else {
		adjacent = AddMonths(result, -1)
	}
	monthLen := DaysInMonth(adjacent.Year(), adjacent.Month())
	return result.AddDate(0, 0, int(math.Round(float64(monthLen)*frac)))
}

// AddFractionalYears adds a possibly fractional number of calendar years to
// t, expressed as twelve fractional months per year.
func AddFractionalYears(t time.Time, years float64) time.Time {
	return AddFractionalMonths(t, years*12)
}

// AddFractionalDays adds a possibly fractional number of 24-hour days to t.
func AddFractionalDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(days * 24 * float64(time.Hour)))
}

// DateOf truncates t to midnight of the same calendar day, preserving the
// location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
