package driving

import (
	"context"

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/domain"
)

// SearchService retrieves stored documents ranked by relevance to a query.
type SearchService interface {
	// Search embeds the query, retrieves candidate documents and returns
	// the topK most similar ones in descending score order. A topK of
	// zero or less uses the configured default.
	Search(ctx context.Context, query string, topK int) ([]domain.SearchResult, error)
}
