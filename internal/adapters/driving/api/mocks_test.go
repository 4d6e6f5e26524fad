package api

import (
	"context"

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/domain"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driven"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driving"
)

// mockScanService is a mock implementation of driving.ScanService.
type mockScanService struct {
	report *driving.ScanReport
	err    error
	urls   []string
}

func (m *mockScanService) Scan(_ context.Context, urls []string) (*driving.ScanReport, error) {
	m.urls = urls
	return m.report, m.err
}

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.SearchResult
	err     error
	query   string
	topK    int
}

func (m *mockSearchService) Search(_ context.Context, query string, topK int) ([]domain.SearchResult, error) {
	m.query = query
	m.topK = topK
	return m.results, m.err
}

// mockScanStore is a mock implementation of driven.ScanStore.
type mockScanStore struct {
	records []driven.ScanRecord
	err     error
	limit   int
}

func (m *mockScanStore) Record(_ context.Context, _ driven.ScanRecord) error {
	return m.err
}

func (m *mockScanStore) History(_ context.Context, limit int) ([]driven.ScanRecord, error) {
	m.limit = limit
	return m.records, m.err
}

func (m *mockScanStore) Close() error { return nil }

// mockEmbedder is a mock implementation of driven.EmbeddingService.
type mockEmbedder struct {
	pingErr error
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return nil, nil
}

func (m *mockEmbedder) ModelName() string { return "mock-model" }

func (m *mockEmbedder) Ping(_ context.Context) error { return m.pingErr }
