package token

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNormalDateIsValid(t *testing.T) {
	tests := []struct {
		name string
		tok  normalDate
		want bool
	}{
		{"day only", normalDate{day: 14}, true},
		{"month only", normalDate{month: 2}, true},
		{"year only", normalDate{year: 2024}, true},
		{"full", normalDate{year: 2024, month: 2, day: 29}, true},
		{"feb 29 without year", normalDate{month: 2, day: 29}, true},
		{"all unset", normalDate{}, false},
		{"year and day without month", normalDate{year: 2024, day: 14}, false},
		{"feb 30", normalDate{month: 2, day: 30}, false},
		{"feb 29 non-leap year", normalDate{year: 2023, month: 2, day: 29}, false},
		{"month 13", normalDate{month: 13}, false},
		{"day 32", normalDate{day: 32}, false},
		{"day 0 explicit month", normalDate{month: 1, day: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.isValid(); got != tt.want {
				t.Errorf("isValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalDateResolve(t *testing.T) {
	tests := []struct {
		name      string
		tok       normalDate
		min       time.Time
		inclusive bool
		want      time.Time
	}{
		{
			name: "day only rolls to next month",
			tok:  normalDate{day: 14}, min: day(2024, time.January, 20), inclusive: true,
			want: day(2024, time.February, 14),
		},
		{
			name: "day only later this month",
			tok:  normalDate{day: 14}, min: day(2024, time.January, 10), inclusive: true,
			want: day(2024, time.January, 14),
		},
		{
			name: "day only boundary inclusive",
			tok:  normalDate{day: 10}, min: day(2024, time.January, 10), inclusive: true,
			want: day(2024, time.January, 10),
		},
		{
			name: "day only boundary exclusive",
			tok:  normalDate{day: 10}, min: day(2024, time.January, 10), inclusive: false,
			want: day(2024, time.February, 10),
		},
		{
			name: "day 31 skips short months",
			tok:  normalDate{day: 31}, min: day(2024, time.February, 1), inclusive: true,
			want: day(2024, time.March, 31),
		},
		{
			name: "day only december wraps the year",
			tok:  normalDate{day: 5}, min: day(2024, time.December, 10), inclusive: true,
			want: day(2025, time.January, 5),
		},
		{
			name: "month and day roll to next year",
			tok:  normalDate{month: 2, day: 14}, min: day(2024, time.March, 1), inclusive: true,
			want: day(2025, time.February, 14),
		},
		{
			name: "feb 29 waits for a leap year",
			tok:  normalDate{month: 2, day: 29}, min: day(2025, time.January, 1), inclusive: true,
			want: day(2028, time.February, 29),
		},
		{
			name: "month only advances past this year",
			tok:  normalDate{month: 2}, min: day(2024, time.March, 1), inclusive: true,
			want: day(2025, time.February, 1),
		},
		{
			name: "month only still ahead",
			tok:  normalDate{month: 6}, min: day(2024, time.March, 1), inclusive: true,
			want: day(2024, time.June, 1),
		},
		{
			name: "year only in the future",
			tok:  normalDate{year: 2030}, min: day(2024, time.March, 1), inclusive: true,
			want: day(2030, time.January, 1),
		},
		{
			// No degrees of freedom remain: the best-effort fallback may
			// return a date before the reference.
			name: "year only in the past is returned as-is",
			tok:  normalDate{year: 2020}, min: day(2024, time.March, 1), inclusive: true,
			want: day(2020, time.January, 1),
		},
		{
			name: "year and month in the past is returned as-is",
			tok:  normalDate{year: 2020, month: 5}, min: day(2024, time.March, 1), inclusive: true,
			want: day(2020, time.May, 1),
		},
		{
			name: "fully specified future date",
			tok:  normalDate{year: 2026, month: 2, day: 14}, min: day(2024, time.March, 1), inclusive: true,
			want: day(2026, time.February, 14),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.resolve(tt.min, tt.inclusive); !got.Equal(tt.want) {
				t.Errorf("resolve(%v, %v) = %v, want %v", tt.min, tt.inclusive, got, tt.want)
			}
		})
	}
}

func TestDayOfWeekResolve(t *testing.T) {
	// 2024-01-01 is a Monday.
	monday := day(2024, time.January, 1)
	friday := day(2024, time.January, 5)

	tests := []struct {
		name string
		tok  dayOfWeekDate
		min  time.Time
		want time.Time
	}{
		{
			name: "next friday from monday",
			tok:  dayOfWeekDate{weekday: time.Friday, relation: weekdayNext},
			min:  monday,
			want: day(2024, time.January, 5),
		},
		{
			name: "next monday from monday is strictly after",
			tok:  dayOfWeekDate{weekday: time.Monday, relation: weekdayNext},
			min:  monday,
			want: day(2024, time.January, 8),
		},
		{
			name: "friday after next is seven days past next",
			tok:  dayOfWeekDate{weekday: time.Friday, relation: weekdayAfterNext},
			min:  monday,
			want: day(2024, time.January, 12),
		},
		{
			name: "friday next week skips the current week",
			tok:  dayOfWeekDate{weekday: time.Friday, relation: weekdayNextWeek},
			min:  monday,
			want: day(2024, time.January, 12),
		},
		{
			name: "monday next week from friday needs no extra skip",
			tok:  dayOfWeekDate{weekday: time.Monday, relation: weekdayNextWeek},
			min:  friday,
			want: day(2024, time.January, 8),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.resolve(tt.min, true); !got.Equal(tt.want) {
				t.Errorf("resolve(%v) = %v, want %v", tt.min, got, tt.want)
			}
		})
	}

	// AfterNext is always exactly seven days later than Next.
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		next := dayOfWeekDate{weekday: wd, relation: weekdayNext}.resolve(monday, true)
		after := dayOfWeekDate{weekday: wd, relation: weekdayAfterNext}.resolve(monday, true)
		if !after.Equal(next.AddDate(0, 0, 7)) {
			t.Errorf("weekday %v: after-next %v is not next %v + 7 days", wd, after, next)
		}
		if !next.After(monday) {
			t.Errorf("weekday %v: next %v is not strictly after %v", wd, next, monday)
		}
		if next.Weekday() != wd {
			t.Errorf("weekday %v: next resolved to %v", wd, next.Weekday())
		}
	}
}

func TestRelativeDateResolve(t *testing.T) {
	min := time.Date(2024, time.May, 7, 15, 30, 0, 0, time.Local)

	if got := (relativeDate{days: 0}).resolve(min, true); !got.Equal(day(2024, time.May, 7)) {
		t.Errorf("today = %v", got)
	}
	if got := (relativeDate{days: 1}).resolve(min, true); !got.Equal(day(2024, time.May, 8)) {
		t.Errorf("tomorrow = %v", got)
	}
}

func TestSpecialDateResolve(t *testing.T) {
	tests := []struct {
		name      string
		tok       specialDate
		min       time.Time
		inclusive bool
		want      time.Time
	}{
		{
			name: "christmas ahead this year",
			tok:  specialDate{kind: christmasDay}, min: day(2024, time.June, 1), inclusive: true,
			want: day(2024, time.December, 25),
		},
		{
			name: "christmas already passed rolls to next year",
			tok:  specialDate{kind: christmasDay}, min: day(2024, time.December, 26), inclusive: true,
			want: day(2025, time.December, 25),
		},
		{
			name: "christmas on the day inclusive",
			tok:  specialDate{kind: christmasDay}, min: day(2024, time.December, 25), inclusive: true,
			want: day(2024, time.December, 25),
		},
		{
			name: "christmas on the day exclusive",
			tok:  specialDate{kind: christmasDay}, min: day(2024, time.December, 25), inclusive: false,
			want: day(2025, time.December, 25),
		},
		{
			name: "new year is always next january",
			tok:  specialDate{kind: newYear}, min: day(2024, time.June, 1), inclusive: true,
			want: day(2025, time.January, 1),
		},
		{
			name: "new years eve",
			tok:  specialDate{kind: newYearsEve}, min: day(2024, time.June, 1), inclusive: true,
			want: day(2024, time.December, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.resolve(tt.min, tt.inclusive); !got.Equal(tt.want) {
				t.Errorf("resolve(%v, %v) = %v, want %v", tt.min, tt.inclusive, got, tt.want)
			}
		})
	}
}

func TestEmptyDateResolve(t *testing.T) {
	min := time.Date(2024, time.May, 7, 15, 30, 0, 0, time.Local)

	if got := (emptyDate{}).resolve(min, true); !got.Equal(day(2024, time.May, 7)) {
		t.Errorf("inclusive = %v", got)
	}
	if got := (emptyDate{}).resolve(min, false); !got.Equal(day(2024, time.May, 8)) {
		t.Errorf("exclusive = %v", got)
	}
}
