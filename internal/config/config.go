package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"worklog/internal/domain"
)

// Storage backend names.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the work-log application
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Policy      PolicyConfig      `yaml:"policy"`
	Application ApplicationConfig `yaml:"application"`
}

// StorageConfig holds persistence-related configuration
type StorageConfig struct {
	Backend        string `yaml:"backend" env:"WL_STORAGE_BACKEND"`
	Dir            string `yaml:"dir" env:"WL_DATA_DIR"`
	JSONFilename   string `yaml:"json_filename" env:"WL_JSON_FILENAME"`
	SQLiteFilename string `yaml:"sqlite_filename" env:"WL_SQLITE_FILENAME"`
}

// PolicyConfig holds the work-log policy constants
type PolicyConfig struct {
	StandardDayHours     float64 `yaml:"standard_day_hours" env:"WL_STANDARD_DAY_HOURS"`
	ProjectCodeMaxLength int     `yaml:"project_code_max_length" env:"WL_PROJECT_CODE_MAX"`
	DescriptionMaxLength int     `yaml:"description_max_length" env:"WL_DESCRIPTION_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `yaml:"verbose" env:"WL_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".worklog")

	return &Config{
		Storage: StorageConfig{
			Backend:        BackendJSON,
			Dir:            defaultDir,
			JSONFilename:   "work_logs.json",
			SQLiteFilename: "work_logs.db",
		},
		Policy: PolicyConfig{
			StandardDayHours:     7.75,
			ProjectCodeMaxLength: 64,
			DescriptionMaxLength: 500,
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// BlobPath returns the full path to the JSON blob file
func (c *Config) BlobPath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.JSONFilename)
}

// DatabasePath returns the full path to the SQLite database file
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.SQLiteFilename)
}

// StandardDay returns the standard workday length in quarter-hour units
func (c *Config) StandardDay() domain.Quarters {
	standardDay, err := domain.QuartersFromHours(c.Policy.StandardDayHours)
	if err != nil {
		standardDay, _ = domain.QuartersFromHours(7.75)
	}
	return standardDay
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("WL_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if dir := os.Getenv("WL_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("WL_JSON_FILENAME"); filename != "" {
		c.Storage.JSONFilename = filename
	}
	if filename := os.Getenv("WL_SQLITE_FILENAME"); filename != "" {
		c.Storage.SQLiteFilename = filename
	}

	// Policy configuration
	if hours := os.Getenv("WL_STANDARD_DAY_HOURS"); hours != "" {
		c.Policy.StandardDayHours = ParseFloatWithFallback(hours, c.Policy.StandardDayHours)
	}
	if max := os.Getenv("WL_PROJECT_CODE_MAX"); max != "" {
		c.Policy.ProjectCodeMaxLength = ParseIntWithFallback(max, c.Policy.ProjectCodeMaxLength)
	}
	if max := os.Getenv("WL_DESCRIPTION_MAX"); max != "" {
		c.Policy.DescriptionMaxLength = ParseIntWithFallback(max, c.Policy.DescriptionMaxLength)
	}

	// Application configuration
	if verbose := os.Getenv("WL_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Storage.Backend != BackendJSON && c.Storage.Backend != BackendSQLite {
		return fmt.Errorf("invalid storage backend %q (expected %q or %q)", c.Storage.Backend, BackendJSON, BackendSQLite)
	}
	if c.Storage.Dir == "" {
		return fmt.Errorf("storage dir must not be empty")
	}
	if !domain.IsQuarterHours(c.Policy.StandardDayHours) {
		return fmt.Errorf("standard day hours %v must be a positive multiple of 0.25", c.Policy.StandardDayHours)
	}
	if c.Policy.ProjectCodeMaxLength <= 0 {
		return fmt.Errorf("project code max length must be positive")
	}
	if c.Policy.DescriptionMaxLength <= 0 {
		return fmt.Errorf("description max length must be positive")
	}
	return nil
}

// ParseFloatWithFallback parses a float string with a fallback value
func ParseFloatWithFallback(s string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
