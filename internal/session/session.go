// Package session owns the state of one calendar session: the reference date,
// the view mode, the task store, the holidays of the displayed year and the
// filtered task view.
package session

import (
	"sync"
	"time"

	"github.com/benvon/smart-calendar/internal/calendar"
	"github.com/benvon/smart-calendar/internal/dnd"
	"github.com/benvon/smart-calendar/internal/filter"
	"github.com/benvon/smart-calendar/internal/holidays"
	"github.com/benvon/smart-calendar/internal/models"
	"github.com/benvon/smart-calendar/internal/tasks"
	"go.uber.org/zap"
)

// DefaultHolidayTimeout bounds a single holiday fetch
const DefaultHolidayTimeout = 15 * time.Second

// Session coordinates the grid, store, filter and resolver. All state changes
// go through its mutex; the holiday fetch runs outside of it.
type Session struct {
	mu sync.Mutex

	date     time.Time
	mode     models.CalendarMode
	days     []models.Day
	store    *tasks.Store
	resolver *dnd.Resolver

	provider     holidays.Provider
	holidays     []models.PublicHoliday
	holidaysYear int
	loadedYear   int

	filterValue string
	filtered    []models.Task
	debouncer   *filter.Debouncer[string]

	logger         *zap.Logger
	holidayTimeout time.Duration
}

// Option configures a Session
type Option func(*Session)

// WithDebounce sets the filter input quiescence window
func WithDebounce(d time.Duration) Option {
	return func(s *Session) {
		s.debouncer = filter.NewDebouncer(d, s.applyFilter)
	}
}

// WithLogger sets the session logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHolidayTimeout bounds each holiday fetch
func WithHolidayTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.holidayTimeout = d
		}
	}
}

// New creates a session showing the month of date. provider may be nil, in
// which case no holidays are shown.
func New(date time.Time, provider holidays.Provider, opts ...Option) *Session {
	s := &Session{
		date:           date,
		mode:           models.CalendarModeMonth,
		store:          tasks.NewStore(),
		provider:       provider,
		logger:         zap.NewNop(),
		holidayTimeout: DefaultHolidayTimeout,
	}
	s.resolver = dnd.NewResolver(s.store)
	s.debouncer = filter.NewDebouncer(filter.DefaultDebounce, s.applyFilter)
	for _, opt := range opts {
		opt(s)
	}
	s.holidaysYear = date.Year()
	s.days = calendar.Grid(s.date, s.mode)
	s.filtered = s.store.Snapshot()
	return s
}

// Close stops the pending filter recomputation, if any
func (s *Session) Close() {
	s.debouncer.Stop()
}

// View is a consistent snapshot of what the presentation layer renders
type View struct {
	Date        time.Time
	Mode        models.CalendarMode
	Title       string
	Days        []models.Day
	Tasks       []models.Task
	Holidays    []models.PublicHoliday
	FilterValue string
	Active      *models.Task
}

// View returns the current render state
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		Date:        s.date,
		Mode:        s.mode,
		Title:       calendar.Title(s.date),
		Days:        append([]models.Day(nil), s.days...),
		Tasks:       append([]models.Task(nil), s.filtered...),
		Holidays:    append([]models.PublicHoliday(nil), s.holidays...),
		FilterValue: s.filterValue,
		Active:      s.resolver.Active(),
	}
}

// Date returns the reference date
func (s *Session) Date() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

// Mode returns the view mode
func (s *Session) Mode() models.CalendarMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Days returns the grid of the current date and mode
func (s *Session) Days() []models.Day {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Day(nil), s.days...)
}

// SetDate moves the reference date and regenerates the grid. It reports
// whether the displayed year changed, in which case holidays must be reloaded.
func (s *Session) SetDate(date time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setDateLocked(date)
}

// Navigate moves by offset months or weeks depending on the mode.
func (s *Session) Navigate(offset int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setDateLocked(calendar.Navigate(s.date, s.mode, offset))
}

// SetMode switches between the month and week views
func (s *Session) SetMode(mode models.CalendarMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	s.days = calendar.Grid(s.date, s.mode)
}

func (s *Session) setDateLocked(date time.Time) bool {
	s.date = date
	s.days = calendar.Grid(s.date, s.mode)
	if date.Year() == s.holidaysYear {
		return false
	}
	s.holidaysYear = date.Year()
	s.holidays = nil
	s.loadedYear = 0
	return true
}
