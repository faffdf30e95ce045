package calendar

import (
	"fmt"
	"strings"
	"time"
)

// namePrefixLen is the number of leading runes compared when matching month
// and weekday names. Three runes distinguish every month and weekday in the
// built-in locales ("ja" vs "ju" is settled by the third rune).
const namePrefixLen = 3

// NamePrefix returns the lowercased prefix of name used for matching: the
// first three runes, or the whole name when shorter.
func NamePrefix(name string) string {
	runes := []rune(strings.ToLower(name))
	if len(runes) > namePrefixLen {
		runes = runes[:namePrefixLen]
	}
	return string(runes)
}

// MonthFromName matches s against the given twelve month names, comparing
// the first three runes case-insensitively. Returns false when no month
// matches.
func MonthFromName(names [12]string, s string) (time.Month, bool) {
	prefix := NamePrefix(s)
	for i, name := range names {
		if NamePrefix(name) == prefix {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

// WeekdayFromName matches s against the given seven weekday names (indexed
// Sunday through Saturday), comparing the first three runes
// case-insensitively. Returns false when no weekday matches.
func WeekdayFromName(names [7]string, s string) (time.Weekday, bool) {
	prefix := NamePrefix(s)
	for i, name := range names {
		if NamePrefix(name) == prefix {
			return time.Weekday(i), true
		}
	}
	return 0, false
}

// Ordinal formats a day of month with its English ordinal suffix:
// 1st, 2nd, 3rd, 4th, ..., 11th, 12th, 13th, ..., 21st, 22nd, ...
func Ordinal(day int) string {
	suffix := "th"
	switch day % 100 {
	case 11, 12, 13:
	default:
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
