// Package qdrant provides a VectorStore adapter backed by the Qdrant
// REST API. It manages a single named collection with cosine distance.
package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/domain"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driven"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Default configuration values.
const (
	DefaultTimeout = 15 * time.Second

	// DefaultSimilarityThreshold gates duplicate detection: a new vector
	// is skipped when any stored neighbour is at least this similar.
	DefaultSimilarityThreshold = 0.95

	// dedupCandidates is how many neighbours the duplicate check inspects.
	dedupCandidates = 10
)

// Config holds connection details for the Qdrant store.
type Config struct {
	// Endpoint is the Qdrant base URL, e.g. http://localhost:6333 (required).
	Endpoint string

	// APIKey authorises requests. Optional for local instances.
	APIKey string

	// Collection is the collection name (required).
	Collection string

	// SimilarityThreshold in [0,1] gates duplicate detection
	// (default: 0.95).
	SimilarityThreshold float64

	// Timeout is the per-request timeout (default: 15s).
	Timeout time.Duration
}

// Store is a REST client for one Qdrant collection.
type Store struct {
	client     *http.Client
	endpoint   string
	apiKey     string
	collection string
	threshold  float64
}

// NewStore creates a new Qdrant store.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("qdrant: endpoint is required")
	}
	if cfg.Collection == "" {
		return nil, fmt.Errorf("qdrant: collection name is required")
	}
	if cfg.SimilarityThreshold == 0 {
		cfg.SimilarityThreshold = DefaultSimilarityThreshold
	}
	if cfg.SimilarityThreshold < 0 || cfg.SimilarityThreshold > 1 {
		return nil, fmt.Errorf("qdrant: similarity threshold %v outside [0,1]", cfg.SimilarityThreshold)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Store{
		client:     &http.Client{Timeout: cfg.Timeout},
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		collection: cfg.Collection,
		threshold:  cfg.SimilarityThreshold,
	}, nil
}

// pointPayload is the metadata stored alongside each vector.
type pointPayload struct {
	URL        string `json:"url"`
	SourceType string `json:"sourceType"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	ScrapedAt  string `json:"scrapedAt"`
}

// queryPoint is one nearest-neighbour result.
type queryPoint struct {
	ID      string       `json:"id"`
	Vector  []float32    `json:"vector"`
	Payload pointPayload `json:"payload"`
}

// queryResponse is the nearest-neighbour search response.
type queryResponse struct {
	Result []queryPoint `json:"result"`
}

// EnsureCollection checks collection existence and creates it with the
// given dimension and cosine distance when absent. A concurrent "already
// exists" response from the create call is treated as success.
func (s *Store) EnsureCollection(ctx context.Context, dimension int) error {
	if dimension <= 0 {
		return domain.ErrInvalidDimension
	}

	collectionURL := fmt.Sprintf("%s/collections/%s", s.endpoint, s.collection)

	status, _, err := s.do(ctx, http.MethodGet, collectionURL, nil)
	if err != nil {
		return fmt.Errorf("probe collection: %w", err)
	}
	if status >= 200 && status < 300 {
		return nil
	}

	logger.Debug("Collection %q not found, creating with dimension %d", s.collection, dimension)

	body := map[string]any{
		"vectors": map[string]any{
			"size":     dimension,
			"distance": "Cosine",
		},
	}
	status, respBody, err := s.do(ctx, http.MethodPut, collectionURL, body)
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	if status >= 200 && status < 300 {
		return nil
	}
	// Another caller may have created it between probe and create.
	if status == http.StatusConflict || strings.Contains(string(respBody), "already exists") {
		return nil
	}
	return fmt.Errorf("create collection %q: status %d: %s", s.collection, status, respBody)
}

// Save upserts the vector unless a stored neighbour is more similar than
// the configured threshold. The dedup query is best-effort: when it
// fails (empty or unreachable collection) the save proceeds.
func (s *Store) Save(ctx context.Context, vector domain.DocumentVector) error {
	if err := s.EnsureCollection(ctx, len(vector.Embedding)); err != nil {
		return err
	}

	neighbours, err := s.Query(ctx, vector.Embedding, dedupCandidates)
	if err != nil {
		logger.Debug("Dedup query failed, proceeding with save: %v", err)
	}
	for _, neighbour := range neighbours {
		similarity := domain.CosineSimilarity(vector.Embedding, neighbour.Embedding)
		if similarity >= s.threshold {
			logger.Info("Skipping near-duplicate of %s (similarity %.4f)", neighbour.Metadata.URL, similarity)
			return nil
		}
	}

	point := map[string]any{
		"id":     pointID(vector.Metadata),
		"vector": vector.Embedding,
		"payload": pointPayload{
			URL:        vector.Metadata.URL,
			SourceType: vector.Metadata.SourceType.String(),
			Title:      vector.Metadata.Title,
			Content:    vector.Metadata.Content,
			ScrapedAt:  vector.Metadata.ScrapedAt.UTC().Format(time.RFC3339),
		},
	}
	body := map[string]any{"points": []any{point}}

	pointsURL := fmt.Sprintf("%s/collections/%s/points", s.endpoint, s.collection)
	status, respBody, err := s.do(ctx, http.MethodPut, pointsURL, body)
	if err != nil {
		return fmt.Errorf("upsert point: %w", err)
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("upsert point: status %d: %s", status, respBody)
	}

	logger.Debug("Stored vector for %s (%q)", vector.Metadata.URL, vector.Metadata.Title)
	return nil
}

// Query returns the nearest stored neighbours of the given vector.
func (s *Store) Query(ctx context.Context, vector []float32, topK int) ([]domain.DocumentVector, error) {
	if topK <= 0 {
		topK = dedupCandidates
	}

	body := map[string]any{
		"query":        vector,
		"limit":        topK,
		"with_payload": true,
		"with_vector":  true,
	}

	queryURL := fmt.Sprintf("%s/collections/%s/points/query", s.endpoint, s.collection)
	status, respBody, err := s.do(ctx, http.MethodPost, queryURL, body)
	if err != nil {
		return nil, fmt.Errorf("query points: %w", err)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("query points: status %d: %s", status, respBody)
	}

	var resp queryResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}

	vectors := make([]domain.DocumentVector, 0, len(resp.Result))
	for _, p := range resp.Result {
		// Unparseable timestamps fall back to the zero value rather
		// than failing the whole query.
		scrapedAt, _ := time.Parse(time.RFC3339, p.Payload.ScrapedAt)

		vectors = append(vectors, domain.DocumentVector{
			Embedding: p.Vector,
			Metadata: domain.DocumentMetadata{
				ID:         p.ID,
				URL:        p.Payload.URL,
				SourceType: domain.SourceType(p.Payload.SourceType),
				Title:      p.Payload.Title,
				Content:    p.Payload.Content,
				ScrapedAt:  scrapedAt,
			},
		})
	}
	return vectors, nil
}

// pointID derives a deterministic point identifier from the document's
// URL and content, so re-ingesting an unchanged page upserts the same
// point instead of accumulating copies.
func pointID(meta domain.DocumentMetadata) string {
	name := meta.URL + "\x00" + meta.Content
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// do issues one JSON request and returns the status code and body.
func (s *Store) do(ctx context.Context, method, url string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}
