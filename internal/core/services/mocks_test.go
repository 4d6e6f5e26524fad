package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/domain"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driven"
)

// mockScraper serves canned documents keyed by URL. URLs without an
// entry behave like failed fetches.
type mockScraper struct {
	docs map[string]domain.ScrapedDocument
}

func (m *mockScraper) Scrape(ctx context.Context, urls []string) []domain.ScrapedDocument {
	var out []domain.ScrapedDocument
	for _, url := range urls {
		if doc, ok := m.docs[url]; ok {
			out = append(out, doc)
		}
	}
	return out
}

func (m *mockScraper) ScrapeOne(_ context.Context, url string) (*domain.ScrapedDocument, error) {
	if doc, ok := m.docs[url]; ok {
		return &doc, nil
	}
	return nil, fmt.Errorf("fetch %s: unexpected status 404", url)
}

// mockParser passes HTML text through unchanged and serves canned PDF
// pages keyed by the PDF bytes.
type mockParser struct {
	pdfPages map[string][]string
	titles   map[string]string
}

func (m *mockParser) ParseHTML(_ context.Context, htmlContent string) (string, error) {
	return strings.TrimSpace(htmlContent), nil
}

func (m *mockParser) ParsePDFPages(_ context.Context, pdfBytes []byte) ([]string, error) {
	pages, ok := m.pdfPages[string(pdfBytes)]
	if !ok {
		return nil, fmt.Errorf("open pdf: malformed input")
	}
	return pages, nil
}

func (m *mockParser) ExtractTitle(htmlContent string) string {
	if title, ok := m.titles[htmlContent]; ok {
		return title
	}
	return "Untitled"
}

// mockEmbedder returns canned vectors keyed by text. Texts without an
// entry either fail or get a default vector, depending on failUnknown.
type mockEmbedder struct {
	vectors     map[string][]float32
	failUnknown bool
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if vec, ok := m.vectors[text]; ok {
		return vec, nil
	}
	if m.failUnknown {
		return nil, fmt.Errorf("embedding error (status 502)")
	}
	return []float32{1, 0, 0}, nil
}

func (m *mockEmbedder) ModelName() string { return "mock-embedding" }

func (m *mockEmbedder) Ping(context.Context) error { return nil }

// mockVectorStore records saves in memory and serves canned query
// candidates. Saves for URLs in failURLs return errors.
type mockVectorStore struct {
	mu         sync.Mutex
	saved      []domain.DocumentVector
	candidates []domain.DocumentVector
	failURLs   map[string]bool
	queryErr   error
}

func (m *mockVectorStore) EnsureCollection(_ context.Context, dimension int) error {
	if dimension <= 0 {
		return domain.ErrInvalidDimension
	}
	return nil
}

func (m *mockVectorStore) Save(_ context.Context, vector domain.DocumentVector) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failURLs[vector.Metadata.URL] {
		return fmt.Errorf("upsert point: status 500")
	}
	m.saved = append(m.saved, vector)
	return nil
}

func (m *mockVectorStore) Query(context.Context, []float32, int) ([]domain.DocumentVector, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.candidates, nil
}

func (m *mockVectorStore) savedVectors() []domain.DocumentVector {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.DocumentVector(nil), m.saved...)
}

// mockScanStore records scan outcomes in memory.
type mockScanStore struct {
	mu      sync.Mutex
	records []driven.ScanRecord
}

func (m *mockScanStore) Record(_ context.Context, rec driven.ScanRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

func (m *mockScanStore) History(_ context.Context, limit int) ([]driven.ScanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.records) {
		limit = len(m.records)
	}
	return append([]driven.ScanRecord(nil), m.records[:limit]...), nil
}

func (m *mockScanStore) Close() error { return nil }
