package driven

import (
	"context"
	"time"
)

// ScanRecord is the persisted outcome of scanning one URL.
type ScanRecord struct {
	// ID is the record identifier assigned by the store.
	ID int64

	// URL is the scanned location.
	URL string

	// Status is "ok" or "error".
	Status string

	// PagesStored is the number of vectors stored for this URL.
	PagesStored int

	// Error holds the failure reason when Status is "error".
	Error string

	// ScannedAt is when the scan of this URL completed.
	ScannedAt time.Time
}

// ScanStore persists per-URL scan outcomes.
type ScanStore interface {
	// Record appends a scan outcome.
	Record(ctx context.Context, rec ScanRecord) error

	// History returns the most recent scan records, newest first,
	// up to limit entries.
	History(ctx context.Context, limit int) ([]ScanRecord, error)

	// Close releases the underlying storage.
	Close() error
}
