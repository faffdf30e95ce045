package token

import (
	"regexp"
	"sync"
	"time"

	"github.com/pkg/errors"

	"countdown/internal/locale"
)

// DateTimeToken glues a date token and a time token into one absolute
// instant specification.
type DateTimeToken struct {
	date dateToken
	time timeToken
}

// IsValid reports whether both parts are valid.
func (t *DateTimeToken) IsValid() bool {
	return t.date != nil && t.time != nil && t.date.isValid() && t.time.isValid()
}

// EndTime resolves the token against start. The date part is first resolved
// inclusively; when the combined instant does not lie after start, the date
// part is re-resolved excluding start's own date. A token that still
// resolves into the past is unresolvable: it is never silently coerced.
func (t *DateTimeToken) EndTime(start time.Time) (time.Time, error) {
	if !t.IsValid() {
		panic("token: EndTime on invalid date-time token")
	}

	date := t.date.resolve(start, true)
	end := t.time.resolveOn(date, start)
	if !end.After(start) {
		date = t.date.resolve(start, false)
		end = t.time.resolveOn(date, start)
	}
	if end.Before(start) {
		return time.Time{}, errors.Wrapf(ErrUnresolvable, "%s is in the past", end.Format("2006-01-02 15:04:05"))
	}
	return end, nil
}

// Display renders the token as "<date> at <time>", omitting the empty side.
func (t *DateTimeToken) Display(loc *locale.Locale) string {
	if !t.IsValid() {
		panic("token: Display on invalid date-time token")
	}
	datePart := t.date.render(loc)
	timePart := t.time.render(loc)
	switch {
	case datePart == "":
		return timePart
	case timePart == "":
		return datePart
	default:
		return datePart + " at " + timePart
	}
}

// dateTimePattern is one compiled candidate: an anchored whole-string regex
// plus the parser pair that interprets its captures.
type dateTimePattern struct {
	re *regexp.Regexp
	dp dateParser
	tp timeParser
}

// patternCache holds the compiled candidate list per locale tag. The lists
// are immutable once built, so the cache needs no further synchronization.
var patternCache sync.Map

// dateTimePatterns builds the full candidate list for a locale: date-only
// patterns, then time-only patterns, then the cross product of every
// compatible parser pair in both "date [at] time" and "time [on] date"
// orderings. Matching tries candidates in exactly this order; the order is
// the primary disambiguation mechanism for overlapping grammars.
func dateTimePatterns(loc *locale.Locale) []*dateTimePattern {
	if cached, ok := patternCache.Load(loc.Tag); ok {
		return cached.([]*dateTimePattern)
	}

	var candidates []*dateTimePattern
	add := func(expr string, dp dateParser, tp timeParser) {
		re, err := regexp.Compile(`(?i)^` + expr + `$`)
		if err != nil {
			// A fragment that does not compile is skipped; the remaining
			// candidates still apply.
			return
		}
		candidates = append(candidates, &dateTimePattern{re: re, dp: dp, tp: tp})
	}

	dps := dateParsers()
	tps := timeParsers()
	emptyDP := dateParser(emptyDateParser{})
	emptyTP := timeParser(emptyTimeParser{})

	// Date-only candidates.
	for _, dp := range dps {
		if _, empty := dp.(emptyDateParser); empty {
			continue
		}
		for _, pat := range dp.patterns(loc) {
			add(pat, dp, emptyTP)
		}
	}

	// Time-only candidates.
	for _, tp := range tps {
		if _, empty := tp.(emptyTimeParser); empty {
			continue
		}
		for _, pat := range tp.patterns(loc) {
			add(pat, emptyDP, tp)
		}
	}

	// Full cross product, both orderings.
	for _, dp := range dps {
		if _, empty := dp.(emptyDateParser); empty {
			continue
		}
		for _, tp := range tps {
			if _, empty := tp.(emptyTimeParser); empty {
				continue
			}
			if !dp.compatibleWith(tp) || !tp.compatibleWith(dp) {
				continue
			}
			for _, datePat := range dp.patterns(loc) {
				for _, timePat := range tp.patterns(loc) {
					add(datePat+`\s+(?:at\s+)?`+timePat, dp, tp)
					add(timePat+`\s+(?:on\s+)?`+datePat, dp, tp)
				}
			}
		}
	}

	patternCache.Store(loc.Tag, candidates)
	return candidates
}

// parseDateTimeToken tries each candidate pattern in order and returns the
// first whole-string match whose parsed token is valid.
func parseDateTimeToken(text string, loc *locale.Locale) (StartToken, error) {
	for _, candidate := range dateTimePatterns(loc) {
		match := candidate.re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		c := newCaptures(candidate.re, match)

		date, err := candidate.dp.parse(c, loc)
		if err != nil {
			continue
		}
		timeOfDay, err := candidate.tp.parse(c, loc)
		if err != nil {
			continue
		}

		tok := &DateTimeToken{date: date, time: timeOfDay}
		if !tok.IsValid() {
			continue
		}
		return tok, nil
	}
	return nil, errors.Wrapf(ErrFormat, "%q", text)
}
