package cli

import (
	"fmt"
	"strings"

	"worklog/internal/api"
	"worklog/internal/config"
	"worklog/internal/domain"
)

// App bundles the dependencies shared by all commands.
type App struct {
	api    api.API
	config *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
	}
}

// parseDateArg parses a YYYY-MM-DD argument, defaulting to today when empty.
func parseDateArg(value string) (domain.Date, error) {
	if strings.TrimSpace(value) == "" {
		return domain.Today(), nil
	}
	date, err := domain.ParseDate(value)
	if err != nil {
		return domain.Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return date, nil
}

// formatDateWithDay renders a date with its weekday, e.g. "2024-06-03 (Mon)".
func formatDateWithDay(date domain.Date) string {
	return date.Time().Format("2006-01-02 (Mon)")
}

// dashIfEmpty substitutes a dash for an empty description.
func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
