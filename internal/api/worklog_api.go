package api

import (
	"context"
	"fmt"
	"os"
	"sort"

	"worklog/internal/domain"
	"worklog/internal/errors"
	"worklog/internal/logging"
	"worklog/internal/repository"
	"worklog/internal/services"
	"worklog/internal/store"
	"worklog/internal/validation"
)

// worklogAPIImpl implements the API interface
type worklogAPIImpl struct {
	store     *store.Store
	conflicts services.ConflictService
	suggestor services.SuggestService
	reports   services.ReportService
	repo      repository.Repository
	mapper    *domain.EntryMapper

	// selectedWeek is the Monday of the week the user is looking at.
	// Zero means no explicit selection yet.
	selectedWeek domain.Date

	// dirty is set by the store's change notification and cleared after a
	// successful write-through.
	dirty bool
}

// Options configures the API beyond its repository.
type Options struct {
	StandardDay          domain.Quarters
	ProjectCodeMaxLength int
	DescriptionMaxLength int
}

// New creates an API instance backed by the given persistence collaborator.
func New(repo repository.Repository) API {
	return NewWithOptions(repo, Options{})
}

// NewWithOptions creates an API instance with configured policy values.
// Zero option fields fall back to the defaults.
func NewWithOptions(repo repository.Repository, opts Options) API {
	validator := validation.NewEntryValidatorWithLimits(opts.ProjectCodeMaxLength, opts.DescriptionMaxLength)
	s := store.New(validator)

	var suggestor services.SuggestService
	if opts.StandardDay > 0 {
		suggestor = services.NewSuggestServiceWithStandardDay(s, opts.StandardDay)
	} else {
		suggestor = services.NewSuggestService(s)
	}

	a := &worklogAPIImpl{
		store:     s,
		conflicts: services.NewConflictService(s),
		suggestor: suggestor,
		reports:   services.NewReportService(s),
		repo:      repo,
		mapper:    domain.NewEntryMapper(),
	}
	s.OnChange(func() { a.dirty = true })
	return a
}

// ========== Lifecycle ==========

func (a *worklogAPIImpl) Init(ctx context.Context) error {
	records, err := a.repo.Load(ctx)
	if err != nil {
		// Unreadable stored data is recovered locally: start empty and
		// surface a diagnostic, never a blocking error.
		if errors.IsNonBlocking(err) {
			a.warn(err)
			records = nil
		} else {
			return err
		}
	}

	entries, dropped := a.mapper.FromRecordSlice(records)
	for _, dropErr := range dropped {
		logging.Debugf("skipping persisted record: %v\n", dropErr)
	}
	a.store.Load(entries)
	return nil
}

// ========== Log Store Operations ==========

func (a *worklogAPIImpl) CreateEntry(ctx context.Context, input domain.EntryInput) (*domain.LogEntry, error) {
	entry, err := a.store.Create(input)
	if err != nil {
		return nil, err
	}

	// Keep the user looking at the week they just touched.
	a.selectedWeek = a.reports.WeekOf(entry.Date)

	a.flush(ctx)
	return entry, nil
}

func (a *worklogAPIImpl) UpdateEntry(ctx context.Context, id string, patch domain.EntryPatch) (*domain.LogEntry, error) {
	entry, err := a.store.Update(id, patch)
	if err != nil {
		return nil, err
	}

	a.selectedWeek = a.reports.WeekOf(entry.Date)

	a.flush(ctx)
	return entry, nil
}

func (a *worklogAPIImpl) DeleteEntry(ctx context.Context, id string) error {
	a.store.Delete(id)
	a.flush(ctx)
	return nil
}

func (a *worklogAPIImpl) GetEntry(id string) (*domain.LogEntry, error) {
	entry, ok := a.store.Get(id)
	if !ok {
		return nil, errors.NewNotFoundError("log entry", id)
	}
	return entry, nil
}

func (a *worklogAPIImpl) ListEntries() []*domain.LogEntry {
	return a.store.List()
}

// ========== Composition Helpers ==========

func (a *worklogAPIImpl) FindConflict(date domain.Date, projectCode string, excludeID string) *domain.LogEntry {
	return a.conflicts.FindConflict(date, projectCode, excludeID)
}

func (a *worklogAPIImpl) SuggestHours(date domain.Date) (domain.Quarters, bool) {
	return a.suggestor.Suggest(date)
}

func (a *worklogAPIImpl) ProjectCodes() []string {
	seen := make(map[string]bool)
	var codes []string
	for _, entry := range a.store.List() {
		if !seen[entry.ProjectCode] {
			seen[entry.ProjectCode] = true
			codes = append(codes, entry.ProjectCode)
		}
	}
	sort.Strings(codes)
	return codes
}

// ========== Weekly Review ==========

func (a *worklogAPIImpl) WeekOf(date domain.Date) domain.Date {
	return a.reports.WeekOf(date)
}

func (a *worklogAPIImpl) ListWeeks() []services.WeekDescriptor {
	return a.reports.ListWeeks()
}

func (a *worklogAPIImpl) SelectedWeek() (domain.Date, bool) {
	weeks := a.reports.ListWeeks()
	if len(weeks) == 0 {
		return domain.Date{}, false
	}

	if !a.selectedWeek.IsZero() {
		for _, week := range weeks {
			if week.Start == a.selectedWeek {
				return a.selectedWeek, true
			}
		}
	}

	// No selection, or the selected week no longer exists: fall back to
	// the most recent week.
	a.selectedWeek = weeks[0].Start
	return a.selectedWeek, true
}

func (a *worklogAPIImpl) SelectWeek(weekStart domain.Date) {
	a.selectedWeek = weekStart
}

func (a *worklogAPIImpl) WeekReport(weekStart domain.Date) *WeekReport {
	entries := a.reports.SelectWeek(weekStart)
	return &WeekReport{
		Week:     services.WeekDescriptor{Start: weekStart, End: weekStart.AddDays(6)},
		Days:     a.reports.GroupByDay(entries),
		Total:    a.reports.WeeklyTotal(entries),
		Projects: a.reports.ProjectSummary(entries),
	}
}

// ========== Persistence Write-Through ==========

// flush writes the full current collection through to the repository when
// the store has unsaved changes. A failed write keeps the dirty flag set so
// the next mutation retries the whole snapshot; the in-memory state stays
// authoritative either way.
func (a *worklogAPIImpl) flush(ctx context.Context) {
	if !a.dirty {
		return
	}
	records := a.mapper.ToRecordSlice(a.store.Snapshot())
	if err := a.repo.Save(ctx, records); err != nil {
		a.warn(err)
		return
	}
	a.dirty = false
}

func (a *worklogAPIImpl) warn(err error) {
	fmt.Fprintf(os.Stderr, "Warning: %s\n", errors.GetUserMessage(err))
	logging.Debugf("storage error detail: %v\n", err)
}
