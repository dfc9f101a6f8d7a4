package config

import (
	"fmt"

	"worklog/internal/repository"
	"worklog/internal/repository/jsonfile"
	"worklog/internal/repository/sqlite"
)

// CreateRepository creates the persistence collaborator selected by the
// configuration.
func CreateRepository(config *Config) (repository.Repository, error) {
	switch config.Storage.Backend {
	case BackendJSON:
		return jsonfile.New(config.BlobPath()), nil
	case BackendSQLite:
		repo, err := sqlite.New(config.DatabasePath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.Storage.Backend)
	}
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (repository.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return repo, nil
}
