// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	FrontendURL     string
	EnableHSTS      bool
	ServerDebugMode bool
	LogDevelopment  bool
	RequestTimeout  time.Duration

	HolidayAPIURL   string
	HolidayCountry  string
	HolidayCacheTTL time.Duration
	HolidayTimeout  time.Duration

	FilterDebounce time.Duration
	Timezone       *time.Location

	RedisURL  string
	RateLimit string

	OTELEnabled  bool
	OTELEndpoint string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return load(os.Getenv)
}

// env reads one variable; an empty value means unset.
type env func(string) string

func load(lookup env) (*Config, error) {
	cfg := &Config{
		ServerPort:      lookup.get("SERVER_PORT", "8080"),
		FrontendURL:     lookup.get("FRONTEND_URL", "http://localhost:3000"),
		EnableHSTS:      lookup.getBool("ENABLE_HSTS", false),
		ServerDebugMode: lookup.getBool("SERVER_DEBUG_MODE", false),
		LogDevelopment:  lookup.getBool("LOG_DEVELOPMENT", false),
		HolidayAPIURL:   lookup.get("HOLIDAY_API_URL", "https://date.nager.at/api/v3/"),
		HolidayCountry:  strings.ToUpper(lookup.get("HOLIDAY_COUNTRY", "US")),
		RedisURL:        lookup.get("REDIS_URL", ""),
		RateLimit:       lookup.get("RATE_LIMIT", "20-S"),
		OTELEnabled:     lookup.getBool("OTEL_ENABLED", false),
		OTELEndpoint:    lookup.get("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	var err error
	if cfg.RequestTimeout, err = lookup.getDuration("REQUEST_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.HolidayCacheTTL, err = lookup.getDuration("HOLIDAY_CACHE_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.HolidayTimeout, err = lookup.getDuration("HOLIDAY_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.FilterDebounce, err = lookup.getDuration("FILTER_DEBOUNCE", 300*time.Millisecond); err != nil {
		return nil, err
	}

	tz := lookup.get("TIMEZONE", "Local")
	if cfg.Timezone, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("TIMEZONE %q: %w", tz, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if u, err := url.Parse(c.HolidayAPIURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("HOLIDAY_API_URL must be an absolute URL, got %q", c.HolidayAPIURL)
	}
	if len(c.HolidayCountry) != 2 {
		return fmt.Errorf("HOLIDAY_COUNTRY must be a two letter country code, got %q", c.HolidayCountry)
	}
	if c.FilterDebounce <= 0 {
		return fmt.Errorf("FILTER_DEBOUNCE must be positive")
	}
	if c.HolidayTimeout <= 0 || c.RequestTimeout <= 0 {
		return fmt.Errorf("HOLIDAY_TIMEOUT and REQUEST_TIMEOUT must be positive")
	}
	if c.OTELEnabled && c.OTELEndpoint == "" {
		return fmt.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT is required when OTEL_ENABLED is set")
	}
	return nil
}

func (e env) get(key, defaultValue string) string {
	if value := e(key); value != "" {
		return value
	}
	return defaultValue
}

func (e env) getBool(key string, defaultValue bool) bool {
	if value := e(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func (e env) getInt(key string, defaultValue int) int {
	if value := e(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getDuration accepts Go durations ("300ms") or a bare number of milliseconds.
func (e env) getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := e(key)
	if value == "" {
		return defaultValue, nil
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}
	if ms := e.getInt(key, -1); ms >= 0 {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return 0, fmt.Errorf("%s: invalid duration %q", key, value)
}
