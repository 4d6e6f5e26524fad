package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/domain"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driven"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driving"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// DefaultTopK is the number of results returned when the caller does
// not ask for a specific count.
const DefaultTopK = 5

// candidateMultiplier widens the retrieval set before reranking, so the
// authoritative cosine scores decide the final order rather than the
// index's own ranking.
const candidateMultiplier = 4

// SearchService answers queries with the stored documents most similar
// to the query embedding.
type SearchService struct {
	embedder    driven.EmbeddingService
	vectorStore driven.VectorStore
	defaultTopK int
}

// NewSearchService creates a new retrieval orchestrator.
// A defaultTopK of zero or less falls back to DefaultTopK.
func NewSearchService(embedder driven.EmbeddingService, vectorStore driven.VectorStore, defaultTopK int) *SearchService {
	if defaultTopK <= 0 {
		defaultTopK = DefaultTopK
	}
	return &SearchService{
		embedder:    embedder,
		vectorStore: vectorStore,
		defaultTopK: defaultTopK,
	}
}

// Search embeds the query, retrieves candidates from the vector store,
// scores each one with cosine similarity against the query embedding
// and returns the topK best in descending score order. Ties keep their
// retrieval order.
func (s *SearchService) Search(ctx context.Context, query string, topK int) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}
	if topK <= 0 {
		topK = s.defaultTopK
	}

	logger.Section("Search")
	logger.Debug("Query: %q, topK: %d", query, topK)

	queryEmbedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	candidates, err := s.vectorStore.Query(ctx, queryEmbedding, topK*candidateMultiplier)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRetrieveFailed, err)
	}
	logger.Debug("Retrieved %d candidate(s)", len(candidates))

	results := make([]domain.SearchResult, 0, len(candidates))
	for _, candidate := range candidates {
		results = append(results, domain.SearchResult{
			ID:      candidate.Metadata.ID,
			Content: candidate.Metadata.Content,
			URL:     candidate.Metadata.URL,
			Title:   candidate.Metadata.Title,
			Score:   domain.CosineSimilarity(queryEmbedding, candidate.Embedding),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}
