package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog/internal/domain"
	"worklog/internal/store"
	"worklog/internal/validation"
)

func seededStore(entries []domain.LogEntry) *store.Store {
	s := store.New(validation.NewEntryValidator())
	s.Load(entries)
	return s
}

func day(d int) domain.Date {
	return domain.Date{Year: 2024, Month: time.June, Day: d}
}

func quarters(t *testing.T, hours float64) domain.Quarters {
	t.Helper()
	q, err := domain.QuartersFromHours(hours)
	require.NoError(t, err)
	return q
}

func TestSuggestService_Suggest(t *testing.T) {
	t.Run("should suggest the remainder of the standard day", func(t *testing.T) {
		s := seededStore([]domain.LogEntry{
			{ID: "a", CreatedAt: 10, Date: day(3), ProjectCode: "ACME-42", Hours: quarters(t, 3.0)},
		})
		suggestor := NewSuggestService(s)

		remaining, ok := suggestor.Suggest(day(3))

		require.True(t, ok)
		assert.Equal(t, 4.75, remaining.Hours())
	})

	t.Run("should sum across projects on the same day", func(t *testing.T) {
		s := seededStore([]domain.LogEntry{
			{ID: "a", CreatedAt: 10, Date: day(3), ProjectCode: "ACME-42", Hours: quarters(t, 2.0)},
			{ID: "b", CreatedAt: 20, Date: day(3), ProjectCode: "INT", Hours: quarters(t, 1.5)},
			{ID: "c", CreatedAt: 30, Date: day(4), ProjectCode: "ACME-42", Hours: quarters(t, 7.75)},
		})
		suggestor := NewSuggestService(s)

		remaining, ok := suggestor.Suggest(day(3))

		require.True(t, ok)
		assert.Equal(t, 4.25, remaining.Hours())
	})

	t.Run("should suggest the full standard day for an empty date", func(t *testing.T) {
		suggestor := NewSuggestService(seededStore(nil))

		remaining, ok := suggestor.Suggest(day(3))

		require.True(t, ok)
		assert.Equal(t, DefaultStandardDayHours, remaining.Hours())
	})

	t.Run("should give no suggestion for a fully logged day", func(t *testing.T) {
		s := seededStore([]domain.LogEntry{
			{ID: "a", CreatedAt: 10, Date: day(3), ProjectCode: "ACME-42", Hours: quarters(t, 7.75)},
		})
		suggestor := NewSuggestService(s)

		remaining, ok := suggestor.Suggest(day(3))

		assert.False(t, ok)
		assert.Equal(t, domain.Quarters(0), remaining)
	})

	t.Run("should give no suggestion for an overrun day", func(t *testing.T) {
		s := seededStore([]domain.LogEntry{
			{ID: "a", CreatedAt: 10, Date: day(3), ProjectCode: "ACME-42", Hours: quarters(t, 6.0)},
			{ID: "b", CreatedAt: 20, Date: day(3), ProjectCode: "INT", Hours: quarters(t, 3.0)},
		})
		suggestor := NewSuggestService(s)

		_, ok := suggestor.Suggest(day(3))

		assert.False(t, ok, "never suggest zero or negative hours")
	})

	t.Run("should honor a configured standard day", func(t *testing.T) {
		s := seededStore([]domain.LogEntry{
			{ID: "a", CreatedAt: 10, Date: day(3), ProjectCode: "ACME-42", Hours: quarters(t, 2.0)},
		})
		suggestor := NewSuggestServiceWithStandardDay(s, quarters(t, 8.0))

		remaining, ok := suggestor.Suggest(day(3))

		require.True(t, ok)
		assert.Equal(t, 6.0, remaining.Hours())
		assert.Equal(t, 8.0, suggestor.StandardDay().Hours())
	})
}
