package calendar

import (
	"testing"
	"time"

	"github.com/benvon/smart-calendar/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthGrid_Properties(t *testing.T) {
	t.Parallel()

	refs := []time.Time{
		date(2024, time.January, 15),
		date(2024, time.February, 29), // leap year
		date(2023, time.February, 1),
		date(2024, time.June, 5),
		date(2024, time.September, 30), // month starting on Sunday
		date(2021, time.February, 10),  // 28 days starting on Monday
		date(2024, time.December, 31),
		date(2025, time.March, 1),
	}

	for _, ref := range refs {
		ref := ref
		t.Run(ref.Format(DateLayout), func(t *testing.T) {
			t.Parallel()

			days := MonthGrid(ref)
			if len(days)%7 != 0 {
				t.Fatalf("len(days) = %d, want multiple of 7", len(days))
			}
			if got := days[0].Date.Weekday(); got != time.Monday {
				t.Errorf("first weekday = %s, want Monday", got)
			}
			if got := days[len(days)-1].Date.Weekday(); got != time.Sunday {
				t.Errorf("last weekday = %s, want Sunday", got)
			}

			seen := make(map[int]int)
			for i, d := range days {
				inMonth := d.Date.Year() == ref.Year() && d.Date.Month() == ref.Month()
				if d.IsCurrentMonth != inMonth {
					t.Errorf("days[%d] %s IsCurrentMonth = %v, want %v", i, d.Date.Format(DateLayout), d.IsCurrentMonth, inMonth)
				}
				if inMonth {
					seen[d.Date.Day()]++
				}
				if i > 0 && !SameDay(days[i-1].Date.AddDate(0, 0, 1), d.Date) {
					t.Errorf("days[%d] %s does not follow %s", i, d.Date.Format(DateLayout), days[i-1].Date.Format(DateLayout))
				}
			}
			if len(seen) != DaysIn(ref) {
				t.Errorf("month days covered = %d, want %d", len(seen), DaysIn(ref))
			}
			for day, n := range seen {
				if n != 1 {
					t.Errorf("day %d appears %d times", day, n)
				}
			}
		})
	}
}

func TestMonthGrid_Padding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ref       time.Time
		wantLen   int
		wantFirst time.Time
		wantLast  time.Time
	}{
		{
			name:      "june 2024 starts on saturday",
			ref:       date(2024, time.June, 5),
			wantLen:   35,
			wantFirst: date(2024, time.May, 27),
			wantLast:  date(2024, time.June, 30),
		},
		{
			name:      "february 2021 needs no padding",
			ref:       date(2021, time.February, 1),
			wantLen:   28,
			wantFirst: date(2021, time.February, 1),
			wantLast:  date(2021, time.February, 28),
		},
		{
			name:      "january pads from previous december",
			ref:       date(2025, time.January, 10),
			wantLen:   35,
			wantFirst: date(2024, time.December, 30),
			wantLast:  date(2025, time.February, 2),
		},
		{
			name:      "december pads into next january",
			ref:       date(2024, time.December, 1),
			wantLen:   42,
			wantFirst: date(2024, time.November, 25),
			wantLast:  date(2025, time.January, 5),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			days := MonthGrid(tt.ref)
			if len(days) != tt.wantLen {
				t.Fatalf("len(days) = %d, want %d", len(days), tt.wantLen)
			}
			if !days[0].Date.Equal(tt.wantFirst) {
				t.Errorf("first = %s, want %s", days[0].Date.Format(DateLayout), tt.wantFirst.Format(DateLayout))
			}
			if !days[len(days)-1].Date.Equal(tt.wantLast) {
				t.Errorf("last = %s, want %s", days[len(days)-1].Date.Format(DateLayout), tt.wantLast.Format(DateLayout))
			}
		})
	}
}

func TestMonthGrid_StripsTimeOfDay(t *testing.T) {
	t.Parallel()
	ref := time.Date(2024, time.June, 5, 17, 45, 3, 12, time.UTC)
	for _, d := range MonthGrid(ref) {
		if !d.Date.Equal(StartOfDay(d.Date)) {
			t.Fatalf("day %s is not at midnight", d.Date)
		}
	}
}

func TestWeekGrid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ref         time.Time
		wantMonday  time.Time
		wantInMonth []bool
	}{
		{
			name:        "midweek",
			ref:         date(2024, time.June, 5),
			wantMonday:  date(2024, time.June, 3),
			wantInMonth: []bool{true, true, true, true, true, true, true},
		},
		{
			name:        "sunday belongs to the week before",
			ref:         date(2024, time.June, 9),
			wantMonday:  date(2024, time.June, 3),
			wantInMonth: []bool{true, true, true, true, true, true, true},
		},
		{
			name:        "monday",
			ref:         date(2024, time.June, 10),
			wantMonday:  date(2024, time.June, 10),
			wantInMonth: []bool{true, true, true, true, true, true, true},
		},
		{
			name:        "spans year boundary",
			ref:         date(2025, time.January, 1),
			wantMonday:  date(2024, time.December, 30),
			wantInMonth: []bool{false, false, true, true, true, true, true},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			days := WeekGrid(tt.ref)
			if len(days) != 7 {
				t.Fatalf("len(days) = %d, want 7", len(days))
			}
			for i, d := range days {
				want := tt.wantMonday.AddDate(0, 0, i)
				if !d.Date.Equal(want) {
					t.Errorf("days[%d] = %s, want %s", i, d.Date.Format(DateLayout), want.Format(DateLayout))
				}
				if d.IsCurrentMonth != tt.wantInMonth[i] {
					t.Errorf("days[%d].IsCurrentMonth = %v, want %v", i, d.IsCurrentMonth, tt.wantInMonth[i])
				}
			}
			if days[0].Date.Weekday() != time.Monday {
				t.Errorf("first weekday = %s, want Monday", days[0].Date.Weekday())
			}
		})
	}
}

func TestGrid_DispatchesOnMode(t *testing.T) {
	t.Parallel()
	ref := date(2024, time.June, 5)
	if got := len(Grid(ref, models.CalendarModeWeek)); got != 7 {
		t.Errorf("week grid len = %d, want 7", got)
	}
	if got := len(Grid(ref, models.CalendarModeMonth)); got != 35 {
		t.Errorf("month grid len = %d, want 35", got)
	}
	if got := len(Grid(ref, models.CalendarMode(""))); got != 35 {
		t.Errorf("fallback grid len = %d, want 35", got)
	}
}

func TestNavigate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ref    time.Time
		mode   models.CalendarMode
		offset int
		want   time.Time
	}{
		{"next month", date(2024, time.June, 5), models.CalendarModeMonth, 1, date(2024, time.July, 5)},
		{"previous month over year", date(2024, time.January, 5), models.CalendarModeMonth, -1, date(2023, time.December, 5)},
		{"next month over year", date(2024, time.December, 5), models.CalendarModeMonth, 1, date(2025, time.January, 5)},
		{"clamps to shorter month", date(2024, time.January, 31), models.CalendarModeMonth, 1, date(2024, time.February, 29)},
		{"next week", date(2024, time.June, 5), models.CalendarModeWeek, 1, date(2024, time.June, 12)},
		{"previous week over month", date(2024, time.June, 5), models.CalendarModeWeek, -1, date(2024, time.May, 29)},
		{"zero offset", date(2024, time.June, 5), models.CalendarModeMonth, 0, date(2024, time.June, 5)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Navigate(tt.ref, tt.mode, tt.offset)
			if !got.Equal(tt.want) {
				t.Errorf("Navigate() = %s, want %s", got.Format(DateLayout), tt.want.Format(DateLayout))
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()
	if m, err := ParseMode("week"); err != nil || m != models.CalendarModeWeek {
		t.Errorf("ParseMode(week) = %q, %v", m, err)
	}
	if _, err := ParseMode("year"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()
	if got := Title(date(2024, time.June, 5)); got != "June 2024" {
		t.Errorf("Title() = %q, want %q", got, "June 2024")
	}
}

func TestSameDay(t *testing.T) {
	t.Parallel()
	a := time.Date(2024, time.June, 5, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, time.June, 5, 0, 1, 0, 0, time.UTC)
	c := time.Date(2024, time.June, 6, 0, 0, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("expected same day")
	}
	if SameDay(a, c) {
		t.Error("expected different days")
	}
}
