package services

import (
	"worklog/internal/domain"
	"worklog/internal/store"
)

// DefaultStandardDayHours is the standard contracted workday length used to
// suggest remaining hours for a day.
const DefaultStandardDayHours = 7.75

// suggestServiceImpl implements the SuggestService interface
type suggestServiceImpl struct {
	store       *store.Store
	standardDay domain.Quarters
}

// NewSuggestService creates a SuggestService with the default workday length.
func NewSuggestService(s *store.Store) SuggestService {
	standardDay, _ := domain.QuartersFromHours(DefaultStandardDayHours)
	return &suggestServiceImpl{store: s, standardDay: standardDay}
}

// NewSuggestServiceWithStandardDay creates a SuggestService with a configured
// workday length.
func NewSuggestServiceWithStandardDay(s *store.Store, standardDay domain.Quarters) SuggestService {
	return &suggestServiceImpl{store: s, standardDay: standardDay}
}

// Suggest sums hours over all entries for the date, regardless of project,
// and returns the remainder up to the standard day. A day at or over the
// standard length yields no suggestion: the hours field is left blank, never
// zero or negative. The value is advisory; the caller may override it.
func (s *suggestServiceImpl) Suggest(date domain.Date) (domain.Quarters, bool) {
	var total domain.Quarters
	for _, entry := range s.store.List() {
		if entry.Date == date {
			total += entry.Hours
		}
	}

	remaining := s.standardDay - total
	if remaining <= 0 {
		return 0, false
	}
	return remaining, true
}

// StandardDay returns the standard workday length in effect.
func (s *suggestServiceImpl) StandardDay() domain.Quarters {
	return s.standardDay
}
