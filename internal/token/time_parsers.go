package token

import (
	"strings"

	"github.com/pkg/errors"

	"countdown/internal/locale"
)

// timeParser mirrors dateParser for the time-of-day grammar.
type timeParser interface {
	patterns(loc *locale.Locale) []string
	parse(c captures, loc *locale.Locale) (timeToken, error)
	compatibleWith(dp dateParser) bool
}

// emptyTimeParser matches nothing itself; the composition engine uses it
// for date-only phrases.
type emptyTimeParser struct{}

func (emptyTimeParser) patterns(*locale.Locale) []string { return []string{""} }

func (emptyTimeParser) parse(captures, *locale.Locale) (timeToken, error) {
	return emptyTime{}, nil
}

func (emptyTimeParser) compatibleWith(dp dateParser) bool {
	_, empty := dp.(emptyDateParser)
	return !empty
}

// normalTimeParser recognizes explicit clock times. The meridiem-bearing
// alternative is listed first so "5:30 pm" binds the designator rather
// than leaving "pm" for a date fragment.
type normalTimeParser struct{}

func (normalTimeParser) patterns(*locale.Locale) []string {
	const clock = `(?P<hour>\d\d?)(?:[.:](?P<minute>\d\d?)(?:[.:](?P<second>\d\d?))?)?`
	return []string{
		clock + `\s*(?P<meridiem>[ap](?:\.?\s?m\.?)?)`,
		clock,
	}
}

func (normalTimeParser) parse(c captures, _ *locale.Locale) (timeToken, error) {
	tok := normalTime{minute: -1, second: -1}

	hour, ok, err := c.intField("hour")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(ErrFormat, "missing hour")
	}
	tok.hour = hour

	if minute, ok, err := c.intField("minute"); err != nil {
		return nil, err
	} else if ok {
		tok.minute = minute
	}
	if second, ok, err := c.intField("second"); err != nil {
		return nil, err
	} else if ok {
		tok.second = second
	}

	if raw, ok := c["meridiem"]; ok {
		switch strings.ToLower(raw)[0] {
		case 'a':
			tok.meridiem = meridiemAM
		default:
			tok.meridiem = meridiemPM
		}
	} else if hour == 0 || hour >= 13 {
		tok.meridiem = meridiemTwentyFourHour
	}

	if !tok.isValid() {
		return nil, errors.Wrapf(ErrFormat, "invalid time %d:%d:%d", tok.hour, tok.minute, tok.second)
	}
	return tok, nil
}

func (normalTimeParser) compatibleWith(dateParser) bool { return true }

// specialTimeParser recognizes fixed named times of day.
type specialTimeParser struct{}

func (specialTimeParser) patterns(*locale.Locale) []string {
	return []string{`(?P<specialtime>noon|midday|midnight)`}
}

func (specialTimeParser) parse(c captures, _ *locale.Locale) (timeToken, error) {
	if strings.EqualFold(c["specialtime"], "midnight") {
		return specialTime{kind: midnight}, nil
	}
	return specialTime{kind: midday}, nil
}

func (specialTimeParser) compatibleWith(dateParser) bool { return true }

// timeParsers lists every time-token parser in priority order.
func timeParsers() []timeParser {
	return []timeParser{
		specialTimeParser{},
		normalTimeParser{},
		emptyTimeParser{},
	}
}
