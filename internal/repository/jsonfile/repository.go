package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"worklog/internal/errors"
	"worklog/internal/repository"
)

// Repository persists the log as a single JSON blob on disk: one array of
// records, rewritten in full after every mutation. This is the default
// backend.
type Repository struct {
	path string
}

// New creates a JSON file repository for the given path. The file is not
// touched until the first Save.
func New(path string) *Repository {
	return &Repository{path: path}
}

// Load reads all persisted records. A missing file means first run and
// yields no records. An unparsable file is backed up and reported as a
// storage read error; callers treat that as "no prior data", not as fatal.
func (r *Repository) Load(ctx context.Context) ([]repository.Record, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewStorageReadError(r.path, err)
	}

	var records []repository.Record
	if err := json.Unmarshal(data, &records); err != nil {
		// Keep the corrupt blob around for manual recovery.
		backupPath := r.path + ".corrupt"
		_ = os.Rename(r.path, backupPath)
		return nil, errors.NewStorageReadError(r.path, err).WithContext("backup", backupPath)
	}
	return records, nil
}

// Save atomically replaces the persisted snapshot: write to a temp file in
// the same directory, then rename over the blob.
func (r *Repository) Save(ctx context.Context, records []repository.Record) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return errors.NewStorageWriteError(r.path, err)
	}

	if records == nil {
		records = []repository.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.NewStorageWriteError(r.path, err)
	}

	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return errors.NewStorageWriteError(r.path, err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.NewStorageWriteError(r.path, err)
	}
	return nil
}

// Close is a no-op; the repository holds no open resources.
func (r *Repository) Close() error {
	return nil
}
