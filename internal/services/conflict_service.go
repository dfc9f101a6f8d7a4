package services

import (
	"worklog/internal/domain"
	"worklog/internal/store"
)

// conflictServiceImpl implements the ConflictService interface
type conflictServiceImpl struct {
	store *store.Store
}

// NewConflictService creates a new ConflictService instance
func NewConflictService(s *store.Store) ConflictService {
	return &conflictServiceImpl{store: s}
}

// FindConflict scans all entries for an exact (date, projectCode) match.
// Match is exact equality; no fuzzy matching, no case folding. The entry
// with excludeID is skipped so an entry being edited never conflicts with
// itself.
func (c *conflictServiceImpl) FindConflict(date domain.Date, projectCode string, excludeID string) *domain.LogEntry {
	for _, entry := range c.store.List() {
		if excludeID != "" && entry.ID == excludeID {
			continue
		}
		if entry.Date == date && entry.ProjectCode == projectCode {
			return entry
		}
	}
	return nil
}
