package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/benvon/smart-calendar/internal/config"
	"github.com/benvon/smart-calendar/internal/holidays"
	"github.com/benvon/smart-calendar/internal/logger"
	"github.com/benvon/smart-calendar/internal/models"
	"github.com/benvon/smart-calendar/internal/redisclient"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewHolidaysCmd creates the holidays command
func NewHolidaysCmd() *cobra.Command {
	var (
		year    int
		country string
		output  string
		all     bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List the public holidays of a year",
		Long:  "List the global public holidays of --year. With REDIS_URL set, results are shared with the server's holiday cache.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if year == 0 {
				year = time.Now().In(cfg.Timezone).Year()
			}
			if year < 1 || year > 9999 {
				return fmt.Errorf("--year must be between 1 and 9999")
			}
			if country == "" {
				country = cfg.HolidayCountry
			}

			log := zap.NewNop()
			if verbose {
				if log, err = logger.NewDevelopmentLogger(true); err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				defer func() { _ = logger.Sync(log) }()
			}

			opts := holidays.Options{
				BaseURL:  cfg.HolidayAPIURL,
				Country:  country,
				CacheTTL: cfg.HolidayCacheTTL,
				Timeout:  cfg.HolidayTimeout,
			}
			if cfg.RedisURL != "" {
				client, err := redisclient.Connect(cmd.Context(), cfg.RedisURL)
				if err != nil {
					log.Warn("redis_unavailable_using_memory_cache", zap.Error(err))
				} else {
					defer func() { _ = client.Close() }()
					opts.Redis = client
				}
			}

			list, err := holidays.NewProvider(opts, log).PublicHolidays(cmd.Context(), year)
			if err != nil {
				return fmt.Errorf("failed to fetch holidays: %w", err)
			}
			if !all {
				list = holidays.Global(list)
			}
			if list == nil {
				list = []models.PublicHoliday{}
			}

			return writeOutput(cmd.OutOrStdout(), output, list, func(w io.Writer) error {
				return renderHolidays(w, list)
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to list, default the current year")
	cmd.Flags().StringVar(&country, "country", "", "Two letter country code, default HOLIDAY_COUNTRY")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&all, "all", false, "Include regional holidays")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log cache and fetch events to stderr")

	return cmd
}

func renderHolidays(w io.Writer, list []models.PublicHoliday) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No holidays found")
		return err
	}
	for _, h := range list {
		line := fmt.Sprintf("%s  %s", h.Date, h.Name)
		if h.LocalName != "" && h.LocalName != h.Name {
			line += fmt.Sprintf(" (%s)", h.LocalName)
		}
		if !h.Global {
			line += "  [regional]"
		}
		if _, err := fmt.Fprintln(w, strings.TrimSpace(line)); err != nil {
			return err
		}
	}
	return nil
}
