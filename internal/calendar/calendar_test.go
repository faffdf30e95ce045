package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},
		{1900, false},
		{2400, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestAddMonthsClampsDay(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"plain", date(2024, time.March, 15), 1, date(2024, time.April, 15)},
		{"jan 31 to feb", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"jan 31 to feb non-leap", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"year wrap", date(2024, time.November, 10), 3, date(2025, time.February, 10)},
		{"negative", date(2024, time.March, 31), -1, date(2024, time.February, 29)},
		{"negative year wrap", date(2024, time.January, 15), -2, date(2023, time.November, 15)},
		{"zero", date(2024, time.June, 1), 0, date(2024, time.June, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddMonths(tt.start, tt.months); !got.Equal(tt.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.start, tt.months, got, tt.want)
			}
		})
	}
}

// A whole month of fractional addition must agree with plain calendar month
// addition for any starting date.
func TestAddFractionalMonthsWholeMonth(t *testing.T) {
	starts := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.January, 31),
		date(2024, time.February, 29),
		date(2023, time.December, 31),
		date(2024, time.June, 15),
	}

	for _, start := range starts {
		got := AddFractionalMonths(start, 1.0)
		want := AddMonths(start, 1)
		if !got.Equal(want) {
			t.Errorf("AddFractionalMonths(%v, 1.0) = %v, want %v", start, got, want)
		}
	}
}

func TestAddFractionalMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months float64
		want   time.Time
	}{
		{
			// Half of February 2024 (29 days) rounds to 15 days.
			name:   "half month measures next month",
			start:  date(2024, time.January, 1),
			months: 0.5,
			want:   date(2024, time.January, 16),
		},
		{
			// 1.5 months from Jan 1: +1 month = Feb 1, then half of
			// March (31 days) rounds to 16 days.
			name:   "one and a half months",
			start:  date(2024, time.January, 1),
			months: 1.5,
			want:   date(2024, time.February, 17),
		},
		{
			// Negative fraction measures the month before.
			name:   "negative half month",
			start:  date(2024, time.March, 16),
			months: -0.5,
			want:   date(2024, time.March, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddFractionalMonths(tt.start, tt.months); !got.Equal(tt.want) {
				t.Errorf("AddFractionalMonths(%v, %v) = %v, want %v", tt.start, tt.months, got, tt.want)
			}
		})
	}
}

func TestAddFractionalYears(t *testing.T) {
	start := date(2024, time.January, 1)
	if got, want := AddFractionalYears(start, 1), date(2025, time.January, 1); !got.Equal(want) {
		t.Errorf("AddFractionalYears(+1) = %v, want %v", got, want)
	}
	// Half a year is six whole months.
	if got, want := AddFractionalYears(start, 0.5), date(2024, time.July, 1); !got.Equal(want) {
		t.Errorf("AddFractionalYears(+0.5) = %v, want %v", got, want)
	}
}

func TestAddFractionalDays(t *testing.T) {
	start := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.Local)
	want := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.Local)
	if got := AddFractionalDays(start, 1.5); !got.Equal(want) {
		t.Errorf("AddFractionalDays(1.5) = %v, want %v", got, want)
	}
}

func TestDateOf(t *testing.T) {
	in := time.Date(2024, time.May, 7, 15, 30, 45, 123, time.Local)
	want := time.Date(2024, time.May, 7, 0, 0, 0, 0, time.Local)
	if got := DateOf(in); !got.Equal(want) {
		t.Errorf("DateOf() = %v, want %v", got, want)
	}
}
