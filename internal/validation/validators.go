package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/benvon/smart-calendar/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Register custom validators for enums and wire formats
	if err := Validate.RegisterValidation("calendar_mode", validateCalendarMode); err != nil {
		panic(fmt.Sprintf("failed to register calendar_mode validator: %v", err))
	}
	if err := Validate.RegisterValidation("item_type", validateItemType); err != nil {
		panic(fmt.Sprintf("failed to register item_type validator: %v", err))
	}
	if err := Validate.RegisterValidation("ymd", validateYMD); err != nil {
		panic(fmt.Sprintf("failed to register ymd validator: %v", err))
	}
}

// validateCalendarMode validates that a string is a valid CalendarMode enum value
func validateCalendarMode(fl validator.FieldLevel) bool {
	return ValidateCalendarMode(fl.Field().String()) == nil
}

// validateItemType validates that a string is a valid ItemType enum value
func validateItemType(fl validator.FieldLevel) bool {
	return ValidateItemType(fl.Field().String()) == nil
}

// validateYMD validates a YYYY-MM-DD date string
func validateYMD(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// SanitizeText sanitizes text input by trimming whitespace and removing control characters
func SanitizeText(text string) string {
	// Trim whitespace
	text = strings.TrimSpace(text)

	// Remove control characters except newline and tab
	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return strings.TrimSpace(sanitized.String())
}

// ValidateCalendarMode validates a CalendarMode string value
func ValidateCalendarMode(value string) error {
	switch models.CalendarMode(value) {
	case models.CalendarModeMonth, models.CalendarModeWeek:
		return nil
	default:
		return fmt.Errorf("invalid mode: %s (must be 'month' or 'week')", value)
	}
}

// ValidateItemType validates an ItemType string value
func ValidateItemType(value string) error {
	switch models.ItemType(value) {
	case models.ItemTypeTask, models.ItemTypeDay:
		return nil
	default:
		return fmt.Errorf("invalid item type: %s (must be 'task' or 'day')", value)
	}
}
