package sqlite

import (
	"context"
	"database/sql"

	"worklog/internal/errors"
	"worklog/internal/repository"

	_ "modernc.org/sqlite"
)

// Hours are stored as integer quarter-hour units so the database never holds
// a value the domain would reject.
const schema = `
CREATE TABLE IF NOT EXISTS work_logs (
	id            TEXT PRIMARY KEY,
	created_at    INTEGER NOT NULL,
	entry_date    TEXT NOT NULL,
	project_code  TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	quarter_hours INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_work_logs_entry_date ON work_logs (entry_date);`

// Repository persists the log snapshot in a SQLite database.
type Repository struct {
	db   *sql.DB
	path string
}

// New opens (or creates) the database at the given path and bootstraps the
// schema.
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageReadError(dbPath, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.NewStorageReadError(dbPath, err)
	}

	return &Repository{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Load reads all persisted records, newest-created first to match the
// store's collection order.
func (r *Repository) Load(ctx context.Context) ([]repository.Record, error) {
	query := `
	SELECT id, created_at, entry_date, project_code, description, quarter_hours
	FROM work_logs
	ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewStorageReadError(r.path, err)
	}
	defer rows.Close()

	var records []repository.Record
	for rows.Next() {
		var record repository.Record
		var quarters int64
		if err := rows.Scan(&record.ID, &record.Timestamp, &record.Date, &record.ProjectCode, &record.Description, &quarters); err != nil {
			return nil, errors.NewStorageReadError(r.path, err)
		}
		record.Hours = float64(quarters) / 4
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStorageReadError(r.path, err)
	}
	return records, nil
}

// Save replaces the persisted snapshot in a single transaction.
func (r *Repository) Save(ctx context.Context, records []repository.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStorageWriteError(r.path, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM work_logs`); err != nil {
		return errors.NewStorageWriteError(r.path, err)
	}

	insert := `
	INSERT INTO work_logs (id, created_at, entry_date, project_code, description, quarter_hours)
	VALUES (?, ?, ?, ?, ?, ?)`
	for _, record := range records {
		quarters := int64(record.Hours * 4)
		if _, err := tx.ExecContext(ctx, insert, record.ID, record.Timestamp, record.Date, record.ProjectCode, record.Description, quarters); err != nil {
			return errors.NewStorageWriteError(r.path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStorageWriteError(r.path, err)
	}
	return nil
}
