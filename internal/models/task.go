package models

import (
	"time"
)

// Task represents a user-created item anchored to a calendar date
type Task struct {
	ID              string    `json:"id"`
	Text            string    `json:"text"`
	Date            time.Time `json:"date"`
	IsPublicHoliday bool      `json:"is_public_holiday"`
}

// Day represents one visible grid cell
type Day struct {
	Date           time.Time `json:"date"`
	IsCurrentMonth bool      `json:"is_current_month"`
}

// PublicHoliday is a holiday record as returned by the holiday provider
type PublicHoliday struct {
	Date        string   `json:"date"` // YYYY-MM-DD
	LocalName   string   `json:"localName,omitempty"`
	Name        string   `json:"name"`
	CountryCode string   `json:"countryCode,omitempty"`
	Global      bool     `json:"global"`
	Types       []string `json:"types,omitempty"`
}
