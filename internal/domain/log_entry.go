package domain

import (
	"time"

	"github.com/google/uuid"
)

// LogEntry represents one recorded unit of work in the domain model.
// This is a pure domain model without storage-specific concerns.
type LogEntry struct {
	ID          string
	CreatedAt   int64 // epoch milliseconds, assigned once at creation
	Date        Date
	ProjectCode string
	Description string
	Hours       Quarters
}

// NewLogEntry creates a new LogEntry with a fresh ID and creation timestamp.
func NewLogEntry(date Date, projectCode, description string, hours Quarters) LogEntry {
	return LogEntry{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UnixMilli(),
		Date:        date,
		ProjectCode: projectCode,
		Description: description,
		Hours:       hours,
	}
}

// IsValid checks if the entry has valid data.
func (e LogEntry) IsValid() bool {
	if e.ID == "" {
		return false
	}
	if e.Date.IsZero() {
		return false
	}
	if e.ProjectCode == "" {
		return false
	}
	return e.Hours > 0
}

// EntryInput holds the caller-supplied fields for creating a log entry.
// Identity and the creation timestamp are assigned by the store.
type EntryInput struct {
	Date        Date
	ProjectCode string
	Description string
	Hours       float64
}

// EntryPatch holds the fields to merge into an existing log entry.
// Nil fields are left unchanged; ID and CreatedAt are never touched.
type EntryPatch struct {
	Date        *Date
	ProjectCode *string
	Description *string
	Hours       *float64
}
