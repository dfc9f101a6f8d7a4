package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewLogEntry(t *testing.T) {
	t.Run("should assign a unique id and creation timestamp", func(t *testing.T) {
		date := Date{Year: 2024, Month: time.June, Day: 3}

		first := NewLogEntry(date, "ACME-42", "planning", 12)
		second := NewLogEntry(date, "ACME-42", "planning", 12)

		assert.NotEmpty(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
		assert.NotZero(t, first.CreatedAt)
		assert.True(t, first.IsValid())
	})
}

func TestLogEntry_IsValid(t *testing.T) {
	valid := LogEntry{
		ID:          "entry-1",
		CreatedAt:   10,
		Date:        Date{Year: 2024, Month: time.June, Day: 3},
		ProjectCode: "ACME-42",
		Hours:       12,
	}

	tests := []struct {
		name     string
		mutate   func(*LogEntry)
		expected bool
	}{
		{
			name:     "should accept a complete entry",
			mutate:   func(e *LogEntry) {},
			expected: true,
		},
		{
			name:     "should reject a missing id",
			mutate:   func(e *LogEntry) { e.ID = "" },
			expected: false,
		},
		{
			name:     "should reject a zero date",
			mutate:   func(e *LogEntry) { e.Date = Date{} },
			expected: false,
		},
		{
			name:     "should reject a missing project code",
			mutate:   func(e *LogEntry) { e.ProjectCode = "" },
			expected: false,
		},
		{
			name:     "should reject non-positive hours",
			mutate:   func(e *LogEntry) { e.Hours = 0 },
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := valid
			tt.mutate(&entry)

			assert.Equal(t, tt.expected, entry.IsValid())
		})
	}
}
