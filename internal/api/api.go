package api

import (
	"context"

	"worklog/internal/domain"
	"worklog/internal/services"
)

// WeekReport bundles everything the review view needs for one week:
// entries grouped and totaled per day, the week total, and per-project
// totals ranked descending.
type WeekReport struct {
	Week     services.WeekDescriptor `json:"week"`
	Days     []services.DayGroup     `json:"days"`
	Total    domain.Quarters         `json:"total"`
	Projects []services.ProjectTotal `json:"projects"`
}

// API is the boundary the presentation layer calls into. Mutations persist
// through the configured repository; persistence failures never block or
// roll back the in-memory state.
type API interface {
	// ========== Lifecycle ==========

	// Init loads previously persisted entries into the store. Unreadable
	// or malformed stored data is treated as "no prior data", not fatal.
	Init(ctx context.Context) error

	// ========== Log Store Operations ==========

	// CreateEntry validates and records a new entry, and selects the week
	// containing its date.
	CreateEntry(ctx context.Context, input domain.EntryInput) (*domain.LogEntry, error)

	// UpdateEntry merges the supplied fields into an existing entry, and
	// selects the week containing its (possibly new) date.
	UpdateEntry(ctx context.Context, id string, patch domain.EntryPatch) (*domain.LogEntry, error)

	// DeleteEntry removes an entry. Deleting an absent ID is a no-op.
	DeleteEntry(ctx context.Context, id string) error

	// GetEntry returns a single entry by ID.
	GetEntry(id string) (*domain.LogEntry, error)

	// ListEntries returns the current collection, newest-created first.
	ListEntries() []*domain.LogEntry

	// ========== Composition Helpers ==========

	// FindConflict returns an existing entry covering (date, projectCode),
	// excluding excludeID, or nil. The caller decides whether to redirect
	// into editing that entry.
	FindConflict(date domain.Date, projectCode string, excludeID string) *domain.LogEntry

	// SuggestHours proposes a default hours value for a new entry on the
	// date, or false when the day is fully accounted for.
	SuggestHours(date domain.Date) (domain.Quarters, bool)

	// ProjectCodes returns the distinct project codes in use, sorted.
	ProjectCodes() []string

	// ========== Weekly Review ==========

	// WeekOf returns the Monday that starts the week containing the date.
	WeekOf(date domain.Date) domain.Date

	// ListWeeks returns the weeks that have entries, most recent first.
	ListWeeks() []services.WeekDescriptor

	// SelectedWeek returns the week the user is looking at, falling back
	// to the most recent week when none is selected or the selection no
	// longer exists. Returns false when there are no weeks at all.
	SelectedWeek() (domain.Date, bool)

	// SelectWeek makes the week starting at the given Monday the selected
	// week.
	SelectWeek(weekStart domain.Date)

	// WeekReport builds the full review view for the week starting at the
	// given Monday.
	WeekReport(weekStart domain.Date) *WeekReport
}
