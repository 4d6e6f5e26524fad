package driving

import "context"

// ScanReport summarises the outcome of a scan batch.
//
// A batch succeeds once every segment has been attempted, regardless of
// individual segment outcomes. Per-segment failures are collected into
// Reasons for the caller; they do not fail the batch.
type ScanReport struct {
	// Succeeded is false only for validation failures or when no URL
	// in the batch could be fetched.
	Succeeded bool `json:"succeeded"`

	// URLsScraped is the number of URLs fetched successfully.
	URLsScraped int `json:"urlsScraped"`

	// PagesStored is the number of document vectors stored.
	PagesStored int `json:"pagesStored"`

	// PagesSkipped is the number of segments dropped (empty content or
	// detected as near-duplicates).
	PagesSkipped int `json:"pagesSkipped"`

	// Reasons lists human-readable failure reasons.
	Reasons []string `json:"reasons,omitempty"`
}

// ScanService ingests documents from URLs into the vector store.
type ScanService interface {
	// Scan fetches, parses, embeds and stores each URL in the batch.
	// An empty URL list is rejected before any network I/O.
	Scan(ctx context.Context, urls []string) (*ScanReport, error)
}
