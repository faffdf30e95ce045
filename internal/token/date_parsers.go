package token

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"countdown/internal/calendar"
	"countdown/internal/locale"
)

// dateParser emits regex fragments (no anchors, named capture groups) and
// turns a match back into a date token. Parsers are stateless.
type dateParser interface {
	// patterns returns the fragments in priority order for the locale.
	patterns(loc *locale.Locale) []string
	// parse builds a token from bound captures. It fails with ErrFormat
	// when the captured fields do not form a valid token.
	parse(c captures, loc *locale.Locale) (dateToken, error)
	// compatibleWith reports whether this parser may be paired with the
	// given time parser.
	compatibleWith(tp timeParser) bool
}

// namePattern builds a case-insensitive alternation matching any of the
// given names by their three-rune prefix plus an optional letter tail, so
// "jan", "january" and "janvier" all match their month.
func namePattern(names []string) string {
	alts := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		prefix := calendar.NamePrefix(name)
		if _, ok := seen[prefix]; ok {
			continue
		}
		seen[prefix] = struct{}{}
		alts = append(alts, regexp.QuoteMeta(prefix)+`\p{L}*`)
	}
	return strings.Join(alts, "|")
}

func monthNamePattern(loc *locale.Locale) string {
	return namePattern(loc.MonthNames[:])
}

func weekdayNamePattern(loc *locale.Locale) string {
	return namePattern(loc.WeekdayNames[:])
}

// emptyDateParser matches nothing itself; the composition engine uses it
// for time-only phrases.
type emptyDateParser struct{}

func (emptyDateParser) patterns(*locale.Locale) []string { return []string{""} }

func (emptyDateParser) parse(captures, *locale.Locale) (dateToken, error) {
	return emptyDate{}, nil
}

// The all-empty pairing would match arbitrary text.
func (emptyDateParser) compatibleWith(tp timeParser) bool {
	_, empty := tp.(emptyTimeParser)
	return !empty
}

// normalDateParser recognizes spelled and numeric explicit dates. The
// pattern priority order depends on the locale's field order: the active
// ordering is chosen once per parse attempt and applies to every ambiguous
// numeric alternative.
type normalDateParser struct{}

func (normalDateParser) patterns(loc *locale.Locale) []string {
	mn := monthNamePattern(loc)

	// The year suffix demands a comma or whitespace separator so that the
	// day digits are never split to fabricate one ("feb 2020" is a month
	// and a year, not the 20th).
	yearSuffix := `(?:(?:\s*,\s*|\s+)(?P<year>\d{4}|\d\d))?`
	spelledDayMonth := `(?:the\s+)?(?P<day>\d\d?)(?:st|nd|rd|th)?\s*(?:of\s+)?(?P<month>` + mn + `)\.?` + yearSuffix
	spelledMonthDay := `(?P<month>` + mn + `)\.?\s*(?:the\s+)?(?P<day>\d\d?)(?:st|nd|rd|th)?` + yearSuffix
	numericDayMonth := `(?P<day>\d\d?)[./-](?P<month>\d\d?)(?:[./-](?P<year>\d{4}|\d\d))?`
	numericMonthDay := `(?P<month>\d\d?)[./-](?P<day>\d\d?)(?:[./-](?P<year>\d{4}|\d\d))?`
	numericYearFirst := `(?P<year>\d{4})[./-](?P<month>\d\d?)(?:[./-](?P<day>\d\d?))?`
	dayOnly := `(?:the\s+)?(?P<day>\d\d?)(?:st|nd|rd|th)?`
	monthAndYear := `(?P<month>` + mn + `)\.?(?:\s*,?\s*(?P<year>\d{4}))?`
	yearOnly := `(?P<year>\d{4})`

	switch loc.FieldOrder() {
	case calendar.MonthFirst:
		return []string{
			spelledMonthDay, spelledDayMonth,
			numericMonthDay, numericDayMonth, numericYearFirst,
			dayOnly, monthAndYear, yearOnly,
		}
	case calendar.YearFirst:
		return []string{
			numericYearFirst,
			spelledMonthDay, spelledDayMonth,
			numericMonthDay, numericDayMonth,
			dayOnly, monthAndYear, yearOnly,
		}
	default:
		return []string{
			spelledDayMonth, spelledMonthDay,
			numericDayMonth, numericMonthDay, numericYearFirst,
			dayOnly, monthAndYear, yearOnly,
		}
	}
}

func (normalDateParser) parse(c captures, loc *locale.Locale) (dateToken, error) {
	var tok normalDate

	if year, ok, err := c.intField("year"); err != nil {
		return nil, err
	} else if ok {
		if year < 100 {
			year += 2000
		}
		tok.year = year
	}

	if raw, ok := c["month"]; ok {
		if month, err := strconv.Atoi(raw); err == nil {
			tok.month = month
		} else if month, found := calendar.MonthFromName(loc.MonthNames, raw); found {
			tok.month = int(month)
		} else {
			return nil, errors.Wrapf(ErrFormat, "bad month %q", raw)
		}
	}

	if day, ok, err := c.intField("day"); err != nil {
		return nil, err
	} else if ok {
		tok.day = day
	}

	if !tok.isValid() {
		return nil, errors.Wrapf(ErrFormat, "invalid date %d-%d-%d", tok.year, tok.month, tok.day)
	}
	return tok, nil
}

func (normalDateParser) compatibleWith(timeParser) bool { return true }

// dayOfWeekDateParser recognizes weekday-relative dates: "friday",
// "next friday", "friday after next", "friday next week".
type dayOfWeekDateParser struct{}

func (dayOfWeekDateParser) patterns(loc *locale.Locale) []string {
	wn := weekdayNamePattern(loc)
	return []string{
		`(?:next\s+)?(?P<weekday>` + wn + `)(?:\s+(?:after\s+(?P<afternext>next)|(?P<nextweek>next)\s+week))?`,
	}
}

func (dayOfWeekDateParser) parse(c captures, loc *locale.Locale) (dateToken, error) {
	raw := c["weekday"]
	weekday, found := calendar.WeekdayFromName(loc.WeekdayNames, raw)
	if !found {
		return nil, errors.Wrapf(ErrFormat, "bad weekday %q", raw)
	}

	relation := weekdayNext
	switch {
	case c.has("afternext"):
		relation = weekdayAfterNext
	case c.has("nextweek"):
		relation = weekdayNextWeek
	}
	return dayOfWeekDate{weekday: weekday, relation: relation}, nil
}

func (dayOfWeekDateParser) compatibleWith(timeParser) bool { return true }

// relativeDateParser recognizes "today" and "tomorrow".
type relativeDateParser struct{}

func (relativeDateParser) patterns(*locale.Locale) []string {
	return []string{`(?P<relative>today|tomorrow)`}
}

func (relativeDateParser) parse(c captures, _ *locale.Locale) (dateToken, error) {
	if strings.EqualFold(c["relative"], "tomorrow") {
		return relativeDate{days: 1}, nil
	}
	return relativeDate{days: 0}, nil
}

func (relativeDateParser) compatibleWith(timeParser) bool { return true }

// specialDateParser recognizes fixed named calendar dates.
type specialDateParser struct{}

func (specialDateParser) patterns(*locale.Locale) []string {
	return []string{
		`(?P<specialdate>new\s+year(?:'?s)?\s+eve|new\s+year(?:'?s)?(?:\s+day)?|(?:christmas|x-?mas)(?:\s+day)?)`,
	}
}

func (specialDateParser) parse(c captures, _ *locale.Locale) (dateToken, error) {
	raw := strings.ToLower(c["specialdate"])
	switch {
	case strings.Contains(raw, "eve"):
		return specialDate{kind: newYearsEve}, nil
	case strings.HasPrefix(raw, "new"):
		return specialDate{kind: newYear}, nil
	default:
		return specialDate{kind: christmasDay}, nil
	}
}

func (specialDateParser) compatibleWith(timeParser) bool { return true }

// dateParsers lists every date-token parser. Keyword grammars precede the
// explicit-field grammar so that "today" or "friday" is never shadowed by a
// numeric alternative; the empty parser is last and only pairs with
// non-empty time parsers.
func dateParsers() []dateParser {
	return []dateParser{
		specialDateParser{},
		relativeDateParser{},
		dayOfWeekDateParser{},
		normalDateParser{},
		emptyDateParser{},
	}
}
