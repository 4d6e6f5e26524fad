package driven

import (
	"context"

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/domain"
)

// VectorStore manages a single named collection in an external vector
// database and provides upsert-with-dedup and nearest-neighbour query.
type VectorStore interface {
	// EnsureCollection checks that the collection exists and creates it
	// with the given vector dimension and cosine distance when absent.
	// Idempotent: safe to call before every save, including from
	// concurrent callers racing to create the collection.
	EnsureCollection(ctx context.Context, dimension int) error

	// Save upserts a document vector unless a stored neighbour is more
	// similar than the configured threshold, in which case the save is
	// skipped and Save returns nil. A failed dedup query is soft (the
	// save proceeds); a failed upsert is surfaced to the caller.
	Save(ctx context.Context, vector domain.DocumentVector) error

	// Query returns the nearest stored neighbours of the given vector,
	// mapping each result's payload back into document metadata.
	Query(ctx context.Context, vector []float32, topK int) ([]domain.DocumentVector, error)
}
