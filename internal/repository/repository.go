package repository

import "context"

// Record is the wire shape of one persisted log entry. It mirrors the
// serialized blob format: hours travel as a decimal number and the date as
// an ISO calendar date string (YYYY-MM-DD).
type Record struct {
	ID          string  `json:"id"`
	Timestamp   int64   `json:"timestamp"`
	Date        string  `json:"date"`
	ProjectCode string  `json:"projectCode"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
}

// Repository is the persistence collaborator. It supplies the previously
// serialized entries on start and writes the full current collection back
// after every store mutation. Implementations must never be load-bearing for
// correctness of the in-memory model: a failed Load means "no prior data" and
// a failed Save leaves the session state authoritative.
type Repository interface {
	// Load returns all persisted records, or nil when no prior data exists.
	Load(ctx context.Context) ([]Record, error)

	// Save replaces the persisted snapshot with the given records.
	Save(ctx context.Context, records []Record) error

	// Close releases any underlying resources.
	Close() error
}
