package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// Implementations wrap an external HTTP API and are treated as pure
// functions under test: the same model and text yield the same vector.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	// A non-success response or an empty payload is an error.
	Embed(ctx context.Context, text string) ([]float32, error)

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error
}
