package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoURLs indicates a scan was requested with an empty URL list.
	ErrNoURLs = errors.New("no URLs provided for scanning")

	// ErrEmptyQuery indicates a search was requested with a blank query.
	ErrEmptyQuery = errors.New("empty search query")

	// ErrAllScrapesFailed indicates every URL in a batch failed to fetch.
	ErrAllScrapesFailed = errors.New("failed to scrape the provided URLs")

	// ErrRetrieveFailed indicates candidate retrieval from the vector
	// store failed during a search.
	ErrRetrieveFailed = errors.New("failed to retrieve documents for query")

	// ErrEmptyEmbedding indicates the embedding service returned no data.
	ErrEmptyEmbedding = errors.New("embedding response contains no data")

	// ErrInvalidDimension indicates a non-positive vector dimensionality.
	ErrInvalidDimension = errors.New("invalid vector dimension")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
