package domain

import (
	"fmt"

	"worklog/internal/repository"
)

// EntryMapper handles conversion between domain entries and persisted records.
type EntryMapper struct{}

// NewEntryMapper creates a new EntryMapper instance.
func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

// ToRecord converts a domain LogEntry to a persisted record.
func (m *EntryMapper) ToRecord(entry LogEntry) repository.Record {
	return repository.Record{
		ID:          entry.ID,
		Timestamp:   entry.CreatedAt,
		Date:        entry.Date.String(),
		ProjectCode: entry.ProjectCode,
		Description: entry.Description,
		Hours:       entry.Hours.Hours(),
	}
}

// FromRecord converts a persisted record to a domain LogEntry.
// Records with a malformed date or hours that are not a positive quarter
// multiple are rejected, not repaired.
func (m *EntryMapper) FromRecord(record repository.Record) (LogEntry, error) {
	if record.ID == "" {
		return LogEntry{}, fmt.Errorf("record has no id")
	}
	date, err := ParseDate(record.Date)
	if err != nil {
		return LogEntry{}, fmt.Errorf("record %s has malformed date %q: %w", record.ID, record.Date, err)
	}
	hours, err := QuartersFromHours(record.Hours)
	if err != nil {
		return LogEntry{}, fmt.Errorf("record %s has invalid hours: %w", record.ID, err)
	}
	return LogEntry{
		ID:          record.ID,
		CreatedAt:   record.Timestamp,
		Date:        date,
		ProjectCode: record.ProjectCode,
		Description: record.Description,
		Hours:       hours,
	}, nil
}

// ToRecordSlice converts a slice of domain entries to persisted records.
func (m *EntryMapper) ToRecordSlice(entries []LogEntry) []repository.Record {
	records := make([]repository.Record, len(entries))
	for i, entry := range entries {
		records[i] = m.ToRecord(entry)
	}
	return records
}

// FromRecordSlice converts persisted records to domain entries, dropping
// records that fail conversion. The dropped records are returned as errors
// so callers can surface a diagnostic.
func (m *EntryMapper) FromRecordSlice(records []repository.Record) ([]LogEntry, []error) {
	entries := make([]LogEntry, 0, len(records))
	var dropped []error
	for _, record := range records {
		entry, err := m.FromRecord(record)
		if err != nil {
			dropped = append(dropped, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, dropped
}
