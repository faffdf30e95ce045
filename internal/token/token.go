// Package token parses free-form timer start phrases ("5", "5:30pm",
// "next friday", "2 hours 15 minutes", "christmas", "14 feb at noon") into
// immutable tokens that resolve to either an absolute end instant or a
// relative duration against a caller-supplied reference instant.
//
// Two grammars are tried in a fixed order: the duration grammar first, then
// the date-time grammar. The order is significant: bare numbers and short
// h:mm strings are durations and must not be captured by date patterns.
//
// Parsing is a pure computation with no shared mutable state; all functions
// are safe for concurrent use by multiple goroutines.
package token

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"countdown/internal/locale"
)

// ErrFormat reports input that matches no recognized pattern, or a matched
// pattern whose field values are out of range or jointly invalid (day 30 in
// February). Format errors are expected and recoverable: prompt again.
var ErrFormat = errors.New("unrecognized timer phrase")

// ErrUnresolvable reports a token that parsed successfully but cannot be
// resolved to an instant at or after the reference ("valid but impossible",
// e.g. a fixed date that only lies in the past, or an overflowing duration).
var ErrUnresolvable = errors.New("timer phrase does not resolve to a future instant")

// StartToken is the externally consumed result of a successful parse:
// either a DateTimeToken or a DurationToken. Tokens are immutable value
// objects; they carry no identity beyond their fields.
type StartToken interface {
	// IsValid reports whether the token's fields are individually in range
	// and jointly consistent. Parse only returns valid tokens.
	IsValid() bool

	// EndTime computes the instant the timer fires when started at start.
	// It fails with ErrUnresolvable when the computed end precedes start.
	// Calling EndTime on an invalid token panics: that is a programming
	// error, not a user-facing condition.
	EndTime(start time.Time) (time.Time, error)

	// Display renders the token back to a localized phrase. The result is
	// not guaranteed to re-parse to an identical token, only to one with
	// the same resolved meaning under the same locale.
	Display(loc *locale.Locale) string
}

// Parse converts a phrase into a start token, trying the duration grammar
// and then the date-time grammar. A nil locale means locale.Default.
func Parse(text string, loc *locale.Locale) (StartToken, error) {
	if loc == nil {
		loc = locale.Default
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.Wrap(ErrFormat, "empty input")
	}

	// Parser order is the primary disambiguation mechanism; see the
	// package comment.
	for _, parse := range compositeParsers {
		if tok, err := parse(trimmed, loc); err == nil {
			return tok, nil
		}
	}
	return nil, errors.Wrapf(ErrFormat, "%q", text)
}

// TryParse is the non-failing wrapper around Parse.
func TryParse(text string, loc *locale.Locale) (StartToken, bool) {
	tok, err := Parse(text, loc)
	if err != nil {
		return nil, false
	}
	return tok, true
}

// compositeParsers lists the composite-token grammars in priority order.
var compositeParsers = []func(string, *locale.Locale) (StartToken, error){
	parseDurationToken,
	parseDateTimeToken,
}

// captures binds the named groups of a regex match to a string map
// immediately, so that nothing downstream touches group names.
type captures map[string]string

func newCaptures(re *regexp.Regexp, match []string) captures {
	c := make(captures)
	for i, name := range re.SubexpNames() {
		if i < len(match) && name != "" && match[i] != "" {
			c[name] = match[i]
		}
	}
	return c
}

func (c captures) has(name string) bool {
	_, ok := c[name]
	return ok
}

// intField parses a captured group as an integer. The second result is
// false when the group was absent.
func (c captures) intField(name string) (int, bool, error) {
	s, ok := c[name]
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, errors.Wrapf(ErrFormat, "bad %s %q", name, s)
	}
	return n, true, nil
}

// floatField parses a captured group as a non-negative float. The second
// result is false when the group was absent.
func (c captures) floatField(name string) (float64, bool, error) {
	s, ok := c[name]
	if !ok {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, false, errors.Wrapf(ErrFormat, "bad %s %q", name, s)
	}
	return f, true, nil
}
