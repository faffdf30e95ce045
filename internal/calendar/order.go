package calendar

import "strings"

// FieldOrder is the order of day, month and year fields in a locale's short
// date format. It decides which interpretation of an ambiguous numeric date
// like "02/03" is tried first.
type FieldOrder int

const (
	// DayFirst orders fields day, month, year ("02/03" is 2 March).
	DayFirst FieldOrder = iota
	// MonthFirst orders fields month, day, year ("02/03" is February 3).
	MonthFirst
	// YearFirst orders fields year, month, day.
	YearFirst
)

// String returns the name of the field order.
func (o FieldOrder) String() string {
	switch o {
	case MonthFirst:
		return "month-first"
	case YearFirst:
		return "year-first"
	default:
		return "day-first"
	}
}

// ClassifyShortDatePattern classifies a short date format pattern such as
// "M/d/yyyy" or "yyyy/MM/dd". The pattern is month-first when the month
// specifier precedes both day and year, year-first when the year specifier
// precedes both month and day, and day-first otherwise (the default).
// Specifiers follow the common convention: 'M' month, 'd' day, 'y' year.
func ClassifyShortDatePattern(pattern string) FieldOrder {
	month := strings.IndexRune(pattern, 'M')
	day := strings.IndexRune(pattern, 'd')
	year := strings.IndexRune(pattern, 'y')

	switch {
	case month >= 0 && (day < 0 || month < day) && (year < 0 || month < year):
		return MonthFirst
	case year >= 0 && (month < 0 || year < month) && (day < 0 || year < day):
		return YearFirst
	default:
		return DayFirst
	}
}
