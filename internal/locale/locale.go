// Package locale carries the formatting data the timer phrase grammar needs
// from a locale: month and weekday names, meridiem designators, and the
// short date pattern whose field order decides how ambiguous numeric dates
// are read.
//
// A small built-in table covers the shipped locales; Lookup matches
// arbitrary BCP 47 tags against it and falls back to en-US.
package locale

import (
	"golang.org/x/text/language"

	"countdown/internal/calendar"
)

// Locale is the format provider consumed by the phrase grammar. Locales are
// immutable after construction and safe for concurrent use.
type Locale struct {
	// Tag is the BCP 47 tag of the locale, e.g. "en-US".
	Tag string
	// ShortDatePattern is the locale's numeric date pattern ("M/d/yyyy").
	// Its field order selects the ambiguous-date interpretation.
	ShortDatePattern string
	// MonthNames holds the full month names, January first.
	MonthNames [12]string
	// WeekdayNames holds the full weekday names, Sunday first.
	WeekdayNames [7]string
	// AM and PM are the meridiem designators used for rendering.
	AM, PM string
}

// FieldOrder returns the day/month/year ordering of the locale's short date
// pattern.
func (l *Locale) FieldOrder() calendar.FieldOrder {
	return calendar.ClassifyShortDatePattern(l.ShortDatePattern)
}

// Built-in locales.
var (
	EnUS = &Locale{
		Tag:              "en-US",
		ShortDatePattern: "M/d/yyyy",
		MonthNames: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		WeekdayNames: [7]string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		AM: "am",
		PM: "pm",
	}

	EnGB = &Locale{
		Tag:              "en-GB",
		ShortDatePattern: "dd/MM/yyyy",
		MonthNames:       EnUS.MonthNames,
		WeekdayNames:     EnUS.WeekdayNames,
		AM:               "am",
		PM:               "pm",
	}

	FrFR = &Locale{
		Tag:              "fr-FR",
		ShortDatePattern: "dd/MM/yyyy",
		MonthNames: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		WeekdayNames: [7]string{
			"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
		},
		AM: "am",
		PM: "pm",
	}

	DeDE = &Locale{
		Tag:              "de-DE",
		ShortDatePattern: "dd.MM.yyyy",
		MonthNames: [12]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		WeekdayNames: [7]string{
			"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
		},
		AM: "am",
		PM: "pm",
	}

	JaJP = &Locale{
		Tag:              "ja-JP",
		ShortDatePattern: "yyyy/MM/dd",
		MonthNames: [12]string{
			"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月",
		},
		WeekdayNames: [7]string{
			"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日",
		},
		AM: "am",
		PM: "pm",
	}
)

// Default is the locale used when the caller supplies none.
var Default = EnUS

// builtins is ordered to match the matcher's supported tags.
var builtins = []*Locale{EnUS, EnGB, FrFR, DeDE, JaJP}

var matcher = language.NewMatcher([]language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.French,
	language.German,
	language.Japanese,
})

// Lookup resolves a BCP 47 tag ("en", "fr-CA", "en-GB-oxendict") to the
// closest built-in locale. Unknown or malformed tags fall back to Default.
func Lookup(tag string) *Locale {
	if tag == "" {
		return Default
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return Default
	}
	_, index, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return Default
	}
	return builtins[index]
}
