package session

import (
	"context"
	"time"

	"github.com/benvon/smart-calendar/internal/holidays"
	"github.com/benvon/smart-calendar/internal/logger"
	"github.com/benvon/smart-calendar/internal/models"
	"go.uber.org/zap"
)

// LoadHolidays fetches the global holidays of the displayed year. The request
// is tagged with that year; a response arriving after the user navigated to
// another year is discarded. Failures are logged and leave the list empty.
func (s *Session) LoadHolidays(ctx context.Context) error {
	if s.provider == nil {
		return nil
	}

	s.mu.Lock()
	year := s.holidaysYear
	if s.loadedYear == year {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.holidayTimeout)
	defer cancel()

	start := time.Now()
	list, err := s.provider.PublicHolidays(ctx, year)
	if err != nil {
		s.logger.Error("holiday_fetch_failed",
			zap.Int("year", year),
			zap.String("error", logger.SanitizeError(err)),
		)
		return err
	}
	global := holidays.Global(list)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.holidaysYear != year {
		s.logger.Info("holiday_response_discarded_stale",
			zap.Int("requested_year", year),
			zap.Int("displayed_year", s.holidaysYear),
		)
		return nil
	}
	s.holidays = global
	s.loadedYear = year
	s.logger.Info("holidays_loaded",
		zap.Int("year", year),
		zap.Int("count", len(global)),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// Holidays returns the global holidays of the displayed year
func (s *Session) Holidays() []models.PublicHoliday {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PublicHoliday(nil), s.holidays...)
}

// HolidaysOn returns the holidays falling on day
func (s *Session) HolidaysOn(day models.Day) []models.PublicHoliday {
	s.mu.Lock()
	defer s.mu.Unlock()
	return holidays.Relevant(s.holidays, day)
}

// HolidaysYear returns the year whose holidays the session shows
func (s *Session) HolidaysYear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.holidaysYear
}
