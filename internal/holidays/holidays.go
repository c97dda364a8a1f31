// Package holidays fetches public holidays and maps them onto calendar days.
package holidays

import (
	"context"
	"time"

	"github.com/benvon/smart-calendar/internal/models"
)

const dateLayout = "2006-01-02"

// Provider returns the public holidays of a year
type Provider interface {
	PublicHolidays(ctx context.Context, year int) ([]models.PublicHoliday, error)
}

// Global keeps only nationally observed holidays.
func Global(holidays []models.PublicHoliday) []models.PublicHoliday {
	result := make([]models.PublicHoliday, 0, len(holidays))
	for _, h := range holidays {
		if h.Global {
			result = append(result, h)
		}
	}
	return result
}

// Relevant returns the holidays falling on day, in input order. Holidays with
// an unparsable date are skipped.
func Relevant(holidays []models.PublicHoliday, day models.Day) []models.PublicHoliday {
	y, m, d := day.Date.Date()
	var result []models.PublicHoliday
	for _, h := range holidays {
		date, err := parseDate(h.Date)
		if err != nil {
			continue
		}
		hy, hm, hd := date.Date()
		if hy == y && hm == m && hd == d {
			result = append(result, h)
		}
	}
	return result
}

// parseDate reads the calendar date of a holiday, ignoring any time component.
func parseDate(s string) (time.Time, error) {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	return time.Parse(dateLayout, s)
}
