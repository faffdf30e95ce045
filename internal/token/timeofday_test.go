package token

import (
	"testing"
	"time"
)

func at(y int, mo time.Month, d, h, mi, s int) time.Time {
	return time.Date(y, mo, d, h, mi, s, 0, time.Local)
}

func TestNormalizedHour(t *testing.T) {
	tests := []struct {
		name string
		tok  normalTime
		want int
	}{
		{"12 am is midnight", normalTime{hour: 12, minute: -1, second: -1, meridiem: meridiemAM}, 0},
		{"1 am", normalTime{hour: 1, minute: -1, second: -1, meridiem: meridiemAM}, 1},
		{"11 am", normalTime{hour: 11, minute: -1, second: -1, meridiem: meridiemAM}, 11},
		{"12 pm is noon", normalTime{hour: 12, minute: -1, second: -1, meridiem: meridiemPM}, 12},
		{"1 pm", normalTime{hour: 1, minute: -1, second: -1, meridiem: meridiemPM}, 13},
		{"11 pm", normalTime{hour: 11, minute: -1, second: -1, meridiem: meridiemPM}, 23},
		{"bare 5", normalTime{hour: 5, minute: -1, second: -1}, 5},
		{"17 on the 24-hour clock", normalTime{hour: 17, minute: -1, second: -1, meridiem: meridiemTwentyFourHour}, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.normalizedHour(); got != tt.want {
				t.Errorf("normalizedHour() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalTimeIsValid(t *testing.T) {
	tests := []struct {
		name string
		tok  normalTime
		want bool
	}{
		{"valid bare hour", normalTime{hour: 5, minute: -1, second: -1}, true},
		{"hour 0 needs 24-hour marker", normalTime{hour: 0, minute: -1, second: -1}, false},
		{"hour 0 with marker", normalTime{hour: 0, minute: 30, second: -1, meridiem: meridiemTwentyFourHour}, true},
		{"hour 13 am", normalTime{hour: 13, minute: -1, second: -1, meridiem: meridiemAM}, false},
		{"hour 23 with marker", normalTime{hour: 23, minute: 59, second: 59, meridiem: meridiemTwentyFourHour}, true},
		{"hour 24", normalTime{hour: 24, minute: -1, second: -1, meridiem: meridiemTwentyFourHour}, false},
		{"minute 60", normalTime{hour: 5, minute: 60, second: -1}, false},
		{"second without minute", normalTime{hour: 5, minute: -1, second: 30}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.isValid(); got != tt.want {
				t.Errorf("isValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalTimeResolveHeuristics(t *testing.T) {
	tests := []struct {
		name string
		tok  normalTime
		date time.Time
		min  time.Time
		want time.Time
	}{
		{
			name: "morning reading passed, afternoon preferred",
			tok:  normalTime{hour: 9, minute: -1, second: -1},
			date: at(2024, time.January, 1, 0, 0, 0),
			min:  at(2024, time.January, 1, 10, 0, 0),
			want: at(2024, time.January, 1, 21, 0, 0),
		},
		{
			name: "morning reading still ahead stays morning",
			tok:  normalTime{hour: 11, minute: -1, second: -1},
			date: at(2024, time.January, 1, 0, 0, 0),
			min:  at(2024, time.January, 1, 10, 0, 0),
			want: at(2024, time.January, 1, 11, 0, 0),
		},
		{
			name: "bare early hour on another day means pm",
			tok:  normalTime{hour: 5, minute: 30, second: -1},
			date: at(2024, time.January, 2, 0, 0, 0),
			min:  at(2024, time.January, 1, 10, 0, 0),
			want: at(2024, time.January, 2, 17, 30, 0),
		},
		{
			name: "late morning hour on another day stays am",
			tok:  normalTime{hour: 9, minute: -1, second: -1},
			date: at(2024, time.January, 2, 0, 0, 0),
			min:  at(2024, time.January, 1, 10, 0, 0),
			want: at(2024, time.January, 2, 9, 0, 0),
		},
		{
			name: "explicit am suppresses both heuristics",
			tok:  normalTime{hour: 5, minute: -1, second: -1, meridiem: meridiemAM},
			date: at(2024, time.January, 2, 0, 0, 0),
			min:  at(2024, time.January, 1, 10, 0, 0),
			want: at(2024, time.January, 2, 5, 0, 0),
		},
		{
			name: "explicit pm normalizes",
			tok:  normalTime{hour: 5, minute: 30, second: -1, meridiem: meridiemPM},
			date: at(2024, time.January, 1, 0, 0, 0),
			min:  at(2024, time.January, 1, 10, 0, 0),
			want: at(2024, time.January, 1, 17, 30, 0),
		},
		{
			name: "24-hour clock is literal",
			tok:  normalTime{hour: 17, minute: 30, second: 15, meridiem: meridiemTwentyFourHour},
			date: at(2024, time.January, 1, 0, 0, 0),
			min:  at(2024, time.January, 1, 10, 0, 0),
			want: at(2024, time.January, 1, 17, 30, 15),
		},
		{
			name: "hour twelve is never shifted",
			tok:  normalTime{hour: 12, minute: 15, second: -1},
			date: at(2024, time.January, 1, 0, 0, 0),
			min:  at(2024, time.January, 1, 13, 0, 0),
			want: at(2024, time.January, 1, 12, 15, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.resolveOn(tt.date, tt.min); !got.Equal(tt.want) {
				t.Errorf("resolveOn(%v, %v) = %v, want %v", tt.date, tt.min, got, tt.want)
			}
		})
	}
}

func TestSpecialTimeResolve(t *testing.T) {
	date := at(2024, time.January, 1, 0, 0, 0)
	min := at(2024, time.January, 1, 10, 0, 0)

	if got := (specialTime{kind: midday}).resolveOn(date, min); !got.Equal(at(2024, time.January, 1, 12, 0, 0)) {
		t.Errorf("noon = %v", got)
	}
	if got := (specialTime{kind: midnight}).resolveOn(date, min); !got.Equal(at(2024, time.January, 1, 0, 0, 0)) {
		t.Errorf("midnight = %v", got)
	}
}

func TestEmptyTimeResolvesToMidnight(t *testing.T) {
	date := at(2024, time.January, 2, 0, 0, 0)
	min := at(2024, time.January, 1, 10, 0, 0)
	if got := (emptyTime{}).resolveOn(date, min); !got.Equal(date) {
		t.Errorf("empty time = %v, want %v", got, date)
	}
}
