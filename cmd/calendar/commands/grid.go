package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/benvon/smart-calendar/internal/calendar"
	"github.com/benvon/smart-calendar/internal/config"
	"github.com/benvon/smart-calendar/internal/holidays"
	"github.com/benvon/smart-calendar/internal/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// gridDay is one cell of the printed grid
type gridDay struct {
	Date           string   `json:"date" yaml:"date"`
	IsCurrentMonth bool     `json:"is_current_month" yaml:"is_current_month"`
	Holidays       []string `json:"holidays,omitempty" yaml:"holidays,omitempty"`
}

// gridOutput is the machine-readable grid
type gridOutput struct {
	Title    string    `json:"title" yaml:"title"`
	Mode     string    `json:"mode" yaml:"mode"`
	Weekdays []string  `json:"weekdays" yaml:"weekdays"`
	Days     []gridDay `json:"days" yaml:"days"`
}

// NewGridCmd creates the grid command
func NewGridCmd() *cobra.Command {
	var (
		date         string
		mode         string
		output       string
		withHolidays bool
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the month or week grid of a date",
		Long:  "Print the Monday-first grid containing --date (default today). Days outside the month are dimmed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ref := time.Now().In(cfg.Timezone)
			if date != "" {
				if ref, err = calendar.ParseDate(date, cfg.Timezone); err != nil {
					return fmt.Errorf("invalid --date %q: %w", date, err)
				}
			}
			calMode, err := calendar.ParseMode(mode)
			if err != nil {
				return err
			}

			var yearHolidays []models.PublicHoliday
			if withHolidays {
				provider := holidays.NewProvider(holidays.Options{
					BaseURL: cfg.HolidayAPIURL,
					Country: cfg.HolidayCountry,
					Timeout: cfg.HolidayTimeout,
				}, nil)
				list, err := provider.PublicHolidays(cmd.Context(), ref.Year())
				if err != nil {
					return fmt.Errorf("failed to fetch holidays: %w", err)
				}
				yearHolidays = holidays.Global(list)
			}

			out := buildGrid(ref, calMode, yearHolidays)
			return writeOutput(cmd.OutOrStdout(), output, out, func(w io.Writer) error {
				return renderGrid(w, out)
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Reference date (YYYY-MM-DD), default today")
	cmd.Flags().StringVar(&mode, "mode", string(models.CalendarModeMonth), "Grid mode: month or week")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&withHolidays, "holidays", false, "Mark global public holidays")

	return cmd
}

func buildGrid(ref time.Time, mode models.CalendarMode, yearHolidays []models.PublicHoliday) gridOutput {
	days := calendar.Grid(ref, mode)
	out := gridOutput{
		Title:    calendar.Title(ref),
		Mode:     string(mode),
		Weekdays: append([]string(nil), calendar.WeekdayHeaders...),
		Days:     make([]gridDay, 0, len(days)),
	}
	for _, day := range days {
		cell := gridDay{
			Date:           day.Date.Format(calendar.DateLayout),
			IsCurrentMonth: day.IsCurrentMonth,
		}
		for _, h := range holidays.Relevant(yearHolidays, day) {
			cell.Holidays = append(cell.Holidays, h.Name)
		}
		out.Days = append(out.Days, cell)
	}
	return out
}

// renderGrid prints one row per week. Holidays are bold and listed below the grid.
func renderGrid(w io.Writer, out gridOutput) error {
	faint := color.New(color.Faint)
	bold := color.New(color.Bold)

	if _, err := fmt.Fprintln(w, out.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Join(out.Weekdays, " ")); err != nil {
		return err
	}

	var notes []string
	for i, day := range out.Days {
		num := day.Date[8:]
		cell := fmt.Sprintf("%3s", strings.TrimPrefix(num, "0"))
		switch {
		case len(day.Holidays) > 0:
			cell = bold.Sprint(cell)
			notes = append(notes, fmt.Sprintf("%s  %s", day.Date, strings.Join(day.Holidays, ", ")))
		case !day.IsCurrentMonth:
			cell = faint.Sprint(cell)
		}

		sep := " "
		if i%7 == 6 {
			sep = "\n"
		}
		if _, err := fmt.Fprint(w, cell+sep); err != nil {
			return err
		}
	}

	for _, note := range notes {
		if _, err := fmt.Fprintln(w, note); err != nil {
			return err
		}
	}
	return nil
}
