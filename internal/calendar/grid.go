// Package calendar computes the day cells shown by the month and week views.
package calendar

import (
	"fmt"
	"time"

	"github.com/benvon/smart-calendar/internal/models"
)

// WeekdayHeaders are the column labels of every grid. Weeks start on Monday.
var WeekdayHeaders = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// MonthGrid returns the days of ref's month padded with days of the
// neighbouring months so that the result covers whole Monday-to-Sunday weeks.
func MonthGrid(ref time.Time) []models.Day {
	first := StartOfDay(time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()))
	daysInMonth := DaysIn(ref)

	leading := MondayIndex(first)
	total := leading + daysInMonth
	trailing := 0
	if rem := total % 7; rem != 0 {
		trailing = 7 - rem
	}

	days := make([]models.Day, 0, total+trailing)
	for i := leading; i > 0; i-- {
		days = append(days, models.Day{Date: first.AddDate(0, 0, -i)})
	}
	for i := 0; i < daysInMonth; i++ {
		days = append(days, models.Day{Date: first.AddDate(0, 0, i), IsCurrentMonth: true})
	}
	next := first.AddDate(0, 1, 0)
	for i := 0; i < trailing; i++ {
		days = append(days, models.Day{Date: next.AddDate(0, 0, i)})
	}
	return days
}

// WeekGrid returns the seven days, Monday through Sunday, of the week containing ref.
func WeekGrid(ref time.Time) []models.Day {
	start := StartOfWeek(ref)
	days := make([]models.Day, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, models.Day{
			Date:           d,
			IsCurrentMonth: d.Year() == ref.Year() && d.Month() == ref.Month(),
		})
	}
	return days
}

// Grid dispatches to MonthGrid or WeekGrid. Unknown modes fall back to the month view.
func Grid(ref time.Time, mode models.CalendarMode) []models.Day {
	if mode == models.CalendarModeWeek {
		return WeekGrid(ref)
	}
	return MonthGrid(ref)
}

// Navigate moves ref by offset months in month mode or offset weeks in week mode.
func Navigate(ref time.Time, mode models.CalendarMode, offset int) time.Time {
	if mode == models.CalendarModeWeek {
		return ref.AddDate(0, 0, 7*offset)
	}
	// AddDate normalizes overflow (Jan 31 + 1 month = Mar 2/3), so step from
	// the first of the month and clamp the day afterwards.
	first := time.Date(ref.Year(), ref.Month(), 1, ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), ref.Location())
	target := first.AddDate(0, offset, 0)
	day := ref.Day()
	if last := DaysIn(target); day > last {
		day = last
	}
	return target.AddDate(0, 0, day-1)
}

// ParseMode converts a user supplied mode name.
func ParseMode(s string) (models.CalendarMode, error) {
	switch models.CalendarMode(s) {
	case models.CalendarModeMonth, models.CalendarModeWeek:
		return models.CalendarMode(s), nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be 'month' or 'week')", s)
	}
}

// Title renders the header label, e.g. "June 2024".
func Title(ref time.Time) string {
	return ref.Format("January 2006")
}
