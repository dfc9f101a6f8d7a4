package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog/internal/repository"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "work_logs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestRepository_RoundTrip(t *testing.T) {
	t.Run("should yield no records from a fresh database", func(t *testing.T) {
		repo := newTestRepository(t)

		records, err := repo.Load(context.Background())

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("should round-trip records and order them newest first", func(t *testing.T) {
		repo := newTestRepository(t)
		ctx := context.Background()
		saved := []repository.Record{
			{ID: "old", Timestamp: 10, Date: "2024-06-03", ProjectCode: "ACME-42", Description: "planning", Hours: 3.0},
			{ID: "new", Timestamp: 20, Date: "2024-06-04", ProjectCode: "INT", Hours: 0.25},
		}

		require.NoError(t, repo.Save(ctx, saved))
		records, err := repo.Load(ctx)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "new", records[0].ID)
		assert.Equal(t, "old", records[1].ID)
		assert.Equal(t, 0.25, records[0].Hours)
		assert.Equal(t, 3.0, records[1].Hours)
		assert.Equal(t, "planning", records[1].Description)
	})

	t.Run("should replace the previous snapshot in full", func(t *testing.T) {
		repo := newTestRepository(t)
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, []repository.Record{
			{ID: "a", Timestamp: 10, Date: "2024-06-03", ProjectCode: "ACME-42", Hours: 1.0},
			{ID: "b", Timestamp: 20, Date: "2024-06-04", ProjectCode: "INT", Hours: 2.0},
		}))
		require.NoError(t, repo.Save(ctx, []repository.Record{
			{ID: "b", Timestamp: 20, Date: "2024-06-04", ProjectCode: "INT", Hours: 2.5},
		}))

		records, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "b", records[0].ID)
		assert.Equal(t, 2.5, records[0].Hours)
	})

	t.Run("should persist an empty snapshot", func(t *testing.T) {
		repo := newTestRepository(t)
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, []repository.Record{
			{ID: "a", Timestamp: 10, Date: "2024-06-03", ProjectCode: "ACME-42", Hours: 1.0},
		}))
		require.NoError(t, repo.Save(ctx, nil))

		records, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("should keep quarter-hour precision exactly", func(t *testing.T) {
		repo := newTestRepository(t)
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, []repository.Record{
			{ID: "a", Timestamp: 10, Date: "2024-06-03", ProjectCode: "ACME-42", Hours: 7.75},
		}))

		records, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 7.75, records[0].Hours)
	})

	t.Run("should survive reopening the database", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "work_logs.db")
		ctx := context.Background()

		first, err := New(path)
		require.NoError(t, err)
		require.NoError(t, first.Save(ctx, []repository.Record{
			{ID: "a", Timestamp: 10, Date: "2024-06-03", ProjectCode: "ACME-42", Hours: 1.0},
		}))
		require.NoError(t, first.Close())

		second, err := New(path)
		require.NoError(t, err)
		defer second.Close()

		records, err := second.Load(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "a", records[0].ID)
	})
}
