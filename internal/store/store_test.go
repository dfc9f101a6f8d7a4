package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog/internal/domain"
	"worklog/internal/errors"
	"worklog/internal/validation"
)

func newTestStore() *Store {
	return New(validation.NewEntryValidator())
}

func testDate(day int) domain.Date {
	return domain.Date{Year: 2024, Month: time.June, Day: day}
}

func stringPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64   { return &f }
func datePtr(d domain.Date) *domain.Date { return &d }

func TestStore_Create(t *testing.T) {
	t.Run("should assign identity and prepend the new entry", func(t *testing.T) {
		s := newTestStore()

		first, err := s.Create(domain.EntryInput{Date: testDate(3), ProjectCode: "ACME-42", Description: "planning", Hours: 3.0})
		require.NoError(t, err)
		second, err := s.Create(domain.EntryInput{Date: testDate(4), ProjectCode: "INT", Hours: 1.25})
		require.NoError(t, err)

		assert.NotEmpty(t, first.ID)
		assert.NotEmpty(t, second.ID)
		assert.NotEqual(t, first.ID, second.ID)
		assert.NotZero(t, first.CreatedAt)

		entries := s.List()
		require.Len(t, entries, 2)
		assert.Equal(t, second.ID, entries[0].ID, "newest entry should come first")
		assert.Equal(t, first.ID, entries[1].ID)
	})

	t.Run("should reject invalid input and leave the store unchanged", func(t *testing.T) {
		tests := []struct {
			name  string
			input domain.EntryInput
		}{
			{
				name:  "missing project code",
				input: domain.EntryInput{Date: testDate(3), Hours: 1.0},
			},
			{
				name:  "zero hours",
				input: domain.EntryInput{Date: testDate(3), ProjectCode: "ACME-42"},
			},
			{
				name:  "negative hours",
				input: domain.EntryInput{Date: testDate(3), ProjectCode: "ACME-42", Hours: -1},
			},
			{
				name:  "hours off the quarter grid",
				input: domain.EntryInput{Date: testDate(3), ProjectCode: "ACME-42", Hours: 1.1},
			},
			{
				name:  "missing date",
				input: domain.EntryInput{ProjectCode: "ACME-42", Hours: 1.0},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := newTestStore()

				entry, err := s.Create(tt.input)

				assert.Nil(t, entry)
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Equal(t, 0, s.Len())
			})
		}
	})
}

func TestStore_Update(t *testing.T) {
	t.Run("should merge supplied fields and preserve identity", func(t *testing.T) {
		s := newTestStore()
		created, err := s.Create(domain.EntryInput{Date: testDate(3), ProjectCode: "ACME-42", Description: "planning", Hours: 3.0})
		require.NoError(t, err)

		updated, err := s.Update(created.ID, domain.EntryPatch{
			Hours:       floatPtr(4.5),
			Description: stringPtr("planning and review"),
		})

		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.Equal(t, testDate(3), updated.Date, "unsupplied fields should be untouched")
		assert.Equal(t, "ACME-42", updated.ProjectCode)
		assert.Equal(t, "planning and review", updated.Description)
		assert.Equal(t, 4.5, updated.Hours.Hours())
	})

	t.Run("should move an entry to another date", func(t *testing.T) {
		s := newTestStore()
		created, err := s.Create(domain.EntryInput{Date: testDate(3), ProjectCode: "ACME-42", Hours: 3.0})
		require.NoError(t, err)

		updated, err := s.Update(created.ID, domain.EntryPatch{Date: datePtr(testDate(5))})

		require.NoError(t, err)
		assert.Equal(t, testDate(5), updated.Date)
		assert.Equal(t, 3.0, updated.Hours.Hours())
	})

	t.Run("should return not found for an unknown id", func(t *testing.T) {
		s := newTestStore()

		entry, err := s.Update("missing", domain.EntryPatch{Hours: floatPtr(1.0)})

		assert.Nil(t, entry)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("should leave the entry unchanged when the patch is invalid", func(t *testing.T) {
		s := newTestStore()
		created, err := s.Create(domain.EntryInput{Date: testDate(3), ProjectCode: "ACME-42", Hours: 3.0})
		require.NoError(t, err)

		_, err = s.Update(created.ID, domain.EntryPatch{
			Hours:       floatPtr(-1),
			Description: stringPtr("should not stick"),
		})

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

		current, ok := s.Get(created.ID)
		require.True(t, ok)
		assert.Equal(t, 3.0, current.Hours.Hours())
		assert.Equal(t, "", current.Description)
	})
}

func TestStore_Delete(t *testing.T) {
	t.Run("should remove the entry with the given id", func(t *testing.T) {
		s := newTestStore()
		created, err := s.Create(domain.EntryInput{Date: testDate(3), ProjectCode: "ACME-42", Hours: 3.0})
		require.NoError(t, err)

		s.Delete(created.ID)

		_, ok := s.Get(created.ID)
		assert.False(t, ok)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("should treat deleting an absent id as a no-op", func(t *testing.T) {
		s := newTestStore()
		_, err := s.Create(domain.EntryInput{Date: testDate(3), ProjectCode: "ACME-42", Hours: 3.0})
		require.NoError(t, err)

		s.Delete("missing")
		s.Delete("missing")

		assert.Equal(t, 1, s.Len())
	})
}

func TestStore_Load(t *testing.T) {
	t.Run("should replace the collection without notifying listeners", func(t *testing.T) {
		s := newTestStore()
		changes := 0
		s.OnChange(func() { changes++ })

		s.Load([]domain.LogEntry{
			{ID: "a", CreatedAt: 10, Date: testDate(3), ProjectCode: "ACME-42", Hours: 4},
			{ID: "b", CreatedAt: 20, Date: testDate(4), ProjectCode: "INT", Hours: 2},
		})

		assert.Equal(t, 2, s.Len())
		assert.Equal(t, 0, changes, "loading persisted state is not a mutation")
	})
}

func TestStore_ChangeNotification(t *testing.T) {
	t.Run("should notify on every successful mutation", func(t *testing.T) {
		s := newTestStore()
		changes := 0
		s.OnChange(func() { changes++ })

		created, err := s.Create(domain.EntryInput{Date: testDate(3), ProjectCode: "ACME-42", Hours: 3.0})
		require.NoError(t, err)
		_, err = s.Update(created.ID, domain.EntryPatch{Hours: floatPtr(4.0)})
		require.NoError(t, err)
		s.Delete(created.ID)

		assert.Equal(t, 3, changes)
	})

	t.Run("should not notify on failed or no-op operations", func(t *testing.T) {
		s := newTestStore()
		changes := 0
		s.OnChange(func() { changes++ })

		_, _ = s.Create(domain.EntryInput{Date: testDate(3), Hours: 1.0})
		_, _ = s.Update("missing", domain.EntryPatch{Hours: floatPtr(1.0)})
		s.Delete("missing")

		assert.Equal(t, 0, changes)
	})
}

func TestStore_Snapshot(t *testing.T) {
	t.Run("should return value copies detached from the store", func(t *testing.T) {
		s := newTestStore()
		created, err := s.Create(domain.EntryInput{Date: testDate(3), ProjectCode: "ACME-42", Hours: 3.0})
		require.NoError(t, err)

		snapshot := s.Snapshot()
		require.Len(t, snapshot, 1)
		snapshot[0].ProjectCode = "MUTATED"

		current, ok := s.Get(created.ID)
		require.True(t, ok)
		assert.Equal(t, "ACME-42", current.ProjectCode)
	})
}
