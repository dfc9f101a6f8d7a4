package services

import (
	"sort"

	"worklog/internal/domain"
	"worklog/internal/store"
)

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	store *store.Store
}

// NewReportService creates a new ReportService instance
func NewReportService(s *store.Store) ReportService {
	return &reportServiceImpl{store: s}
}

// WeekOf maps a date to the Monday that starts its Monday-Sunday week.
// Two dates map to the same Monday iff they fall in the same week.
func (r *reportServiceImpl) WeekOf(date domain.Date) domain.Date {
	// Go's weekday is Sunday=0; treat Sunday as 7 so weeks start on Monday.
	wd := int(date.Weekday())
	if wd == 0 {
		wd = 7
	}
	return date.AddDays(-(wd - 1))
}

// ListWeeks collects the distinct weeks present across all entries, each
// described by its Monday start and Sunday end, most recent week first.
func (r *reportServiceImpl) ListWeeks() []WeekDescriptor {
	seen := make(map[domain.Date]bool)
	var starts []domain.Date
	for _, entry := range r.store.List() {
		start := r.WeekOf(entry.Date)
		if !seen[start] {
			seen[start] = true
			starts = append(starts, start)
		}
	}

	sort.Slice(starts, func(i, j int) bool {
		return starts[j].Before(starts[i])
	})

	weeks := make([]WeekDescriptor, len(starts))
	for i, start := range starts {
		weeks[i] = WeekDescriptor{Start: start, End: start.AddDays(6)}
	}
	return weeks
}

// SelectWeek filters the entries whose date falls in the week starting at
// the given Monday.
func (r *reportServiceImpl) SelectWeek(weekStart domain.Date) []*domain.LogEntry {
	var selected []*domain.LogEntry
	for _, entry := range r.store.List() {
		if r.WeekOf(entry.Date) == weekStart {
			selected = append(selected, entry)
		}
	}
	return selected
}

// GroupByDay partitions a week's entries by date. Days are ordered most
// recent first; within a day entries are ordered by creation time ascending,
// so same-day entries keep the order they were logged in.
func (r *reportServiceImpl) GroupByDay(weekEntries []*domain.LogEntry) []DayGroup {
	byDate := make(map[domain.Date]*DayGroup)
	var dates []domain.Date
	for _, entry := range weekEntries {
		group, ok := byDate[entry.Date]
		if !ok {
			group = &DayGroup{Date: entry.Date}
			byDate[entry.Date] = group
			dates = append(dates, entry.Date)
		}
		group.Entries = append(group.Entries, entry)
		group.Total += entry.Hours
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[j].Before(dates[i])
	})

	groups := make([]DayGroup, len(dates))
	for i, date := range dates {
		group := byDate[date]
		sort.SliceStable(group.Entries, func(a, b int) bool {
			return group.Entries[a].CreatedAt < group.Entries[b].CreatedAt
		})
		groups[i] = *group
	}
	return groups
}

// WeeklyTotal sums hours across the whole week in exact quarter-hour units.
func (r *reportServiceImpl) WeeklyTotal(weekEntries []*domain.LogEntry) domain.Quarters {
	var total domain.Quarters
	for _, entry := range weekEntries {
		total += entry.Hours
	}
	return total
}

// ProjectSummary groups a week's entries by project code and sums hours per
// group, sorted descending by total. Ties keep first-seen project order.
func (r *reportServiceImpl) ProjectSummary(weekEntries []*domain.LogEntry) []ProjectTotal {
	totals := make(map[string]domain.Quarters)
	var codes []string
	for _, entry := range weekEntries {
		if _, ok := totals[entry.ProjectCode]; !ok {
			codes = append(codes, entry.ProjectCode)
		}
		totals[entry.ProjectCode] += entry.Hours
	}

	summary := make([]ProjectTotal, len(codes))
	for i, code := range codes {
		summary[i] = ProjectTotal{ProjectCode: code, Total: totals[code]}
	}
	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].Total > summary[j].Total
	})
	return summary
}
