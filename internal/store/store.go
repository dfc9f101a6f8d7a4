package store

import (
	"worklog/internal/domain"
	"worklog/internal/errors"
	"worklog/internal/validation"
)

// Store owns the ordered collection of log entries. It is the sole assigner
// of entry identity and creation timestamps. New entries are prepended, so
// the collection is newest-created-first by convention; all order-sensitive
// presentation is computed by the reporting layer, not by collection order.
//
// The store is single-threaded by design: every operation runs to completion
// before the next user action is processed, so no locking is needed.
type Store struct {
	entries   []*domain.LogEntry
	validator *validation.EntryValidator
	listeners []func()
}

// New creates an empty store.
func New(validator *validation.EntryValidator) *Store {
	return &Store{
		validator: validator,
	}
}

// OnChange registers a listener invoked after every successful mutation.
// The persistence collaborator subscribes here to observe the dirty signal.
func (s *Store) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}

// Load replaces the collection with previously persisted entries.
// It does not notify listeners: loading is not a mutation.
func (s *Store) Load(entries []domain.LogEntry) {
	s.entries = make([]*domain.LogEntry, len(entries))
	for i := range entries {
		entry := entries[i]
		s.entries[i] = &entry
	}
}

// Create validates the input, assigns a fresh ID and creation timestamp,
// and prepends the new entry to the collection.
func (s *Store) Create(input domain.EntryInput) (*domain.LogEntry, error) {
	if err := s.validator.ValidateInput(input); err != nil {
		return nil, errors.NewValidationError("invalid log entry", err)
	}

	hours, err := domain.QuartersFromHours(input.Hours)
	if err != nil {
		return nil, errors.NewValidationError("invalid log entry", err)
	}

	entry := domain.NewLogEntry(input.Date, input.ProjectCode, input.Description, hours)

	s.entries = append([]*domain.LogEntry{&entry}, s.entries...)
	s.notify()
	return &entry, nil
}

// Update merges the supplied fields into the entry with the given ID,
// leaving ID and CreatedAt untouched. A supplied hours value is re-validated
// before anything is changed; on failure the entry is left as it was.
func (s *Store) Update(id string, patch domain.EntryPatch) (*domain.LogEntry, error) {
	entry, ok := s.find(id)
	if !ok {
		return nil, errors.NewNotFoundError("log entry", id)
	}

	if err := s.validator.ValidatePatch(patch); err != nil {
		return nil, errors.NewValidationError("invalid log entry", err)
	}

	if patch.Hours != nil {
		hours, err := domain.QuartersFromHours(*patch.Hours)
		if err != nil {
			return nil, errors.NewValidationError("invalid log entry", err)
		}
		entry.Hours = hours
	}
	if patch.Date != nil {
		entry.Date = *patch.Date
	}
	if patch.ProjectCode != nil {
		entry.ProjectCode = *patch.ProjectCode
	}
	if patch.Description != nil {
		entry.Description = *patch.Description
	}

	s.notify()
	return entry, nil
}

// Delete removes the entry with the given ID. Deleting an absent ID is a
// no-op: the net effect, "entry is gone", already holds.
func (s *Store) Delete(id string) {
	for i, entry := range s.entries {
		if entry.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.notify()
			return
		}
	}
}

// Get returns the entry with the given ID, if present.
func (s *Store) Get(id string) (*domain.LogEntry, bool) {
	return s.find(id)
}

// List returns the current collection. The returned slice is a read-only
// view; callers must not mutate the entries in place.
func (s *Store) List() []*domain.LogEntry {
	return s.entries
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	return len(s.entries)
}

// Snapshot returns a value copy of all entries for serialization.
func (s *Store) Snapshot() []domain.LogEntry {
	snapshot := make([]domain.LogEntry, len(s.entries))
	for i, entry := range s.entries {
		snapshot[i] = *entry
	}
	return snapshot
}

func (s *Store) find(id string) (*domain.LogEntry, bool) {
	for _, entry := range s.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return nil, false
}
