package mcp

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
	topK    int
}

func (m *mockSearchService) Search(_ context.Context, _ string, topK int) ([]domain.SearchResult, error) {
	m.topK = topK
	return m.results, m.err
}

// mockScanStore is a mock implementation of driven.ScanStore.
type mockScanStore struct {
	records []driven.ScanRecord
	err     error
}

func (m *mockScanStore) Record(_ context.Context, _ driven.ScanRecord) error {
	return m.err
}

func (m *mockScanStore) History(_ context.Context, _ int) ([]driven.ScanRecord, error) {
	return m.records, m.err
}

func (m *mockScanStore) Close() error { return nil }
