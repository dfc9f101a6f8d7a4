package services

import (
	"worklog/internal/domain"
)

// WeekDescriptor describes one Monday-Sunday calendar week that has entries.
type WeekDescriptor struct {
	Start domain.Date `json:"start"` // the Monday that starts the week
	End   domain.Date `json:"end"`   // the Sunday that ends it
}

// DayGroup holds one day's entries within a week, sorted by creation time
// ascending, together with the exact daily total.
type DayGroup struct {
	Date    domain.Date        `json:"date"`
	Entries []*domain.LogEntry `json:"entries"`
	Total   domain.Quarters    `json:"total"`
}

// ProjectTotal holds the summed hours for one project code within a week.
type ProjectTotal struct {
	ProjectCode string          `json:"project_code"`
	Total       domain.Quarters `json:"total"`
}

// ConflictService detects existing entries covering a (date, projectCode)
// combination so the caller can redirect into edit mode instead of creating
// a silent duplicate. Uniqueness is a soft policy enforced here at the edge,
// not a structural constraint of the store.
type ConflictService interface {
	// FindConflict returns the first entry matching date and projectCode
	// exactly, excluding the entry with excludeID, or nil if none matches.
	FindConflict(date domain.Date, projectCode string, excludeID string) *domain.LogEntry
}

// SuggestService proposes a default hours value for a new entry so daily
// entries trend toward the standard workday length without overrunning it.
type SuggestService interface {
	// Suggest returns the remaining hours for the date and true, or false
	// when the day is already fully accounted for.
	Suggest(date domain.Date) (domain.Quarters, bool)

	// StandardDay returns the standard workday length in effect.
	StandardDay() domain.Quarters
}

// ReportService turns the flat entry collection into weekly review views.
type ReportService interface {
	// WeekOf returns the Monday that starts the week containing the date.
	WeekOf(date domain.Date) domain.Date

	// ListWeeks returns the distinct weeks present across all entries,
	// sorted descending by start date (most recent first).
	ListWeeks() []WeekDescriptor

	// SelectWeek returns the entries falling in the week starting at the
	// given Monday.
	SelectWeek(weekStart domain.Date) []*domain.LogEntry

	// GroupByDay groups a week's entries by date, days descending, entries
	// within a day ascending by creation time, with exact daily totals.
	GroupByDay(weekEntries []*domain.LogEntry) []DayGroup

	// WeeklyTotal returns the exact sum of hours across the week's entries.
	WeeklyTotal(weekEntries []*domain.LogEntry) domain.Quarters

	// ProjectSummary sums hours per project code, sorted descending by
	// total, ties kept in first-seen order.
	ProjectSummary(weekEntries []*domain.LogEntry) []ProjectTotal
}
