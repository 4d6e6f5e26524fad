// Package scraper fetches raw document content from URLs over HTTP.
package scraper

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/domain"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driven"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/logger"
)

// Ensure Scraper implements the interface.
var _ driven.Scraper = (*Scraper)(nil)

// Default configuration values.
const (
	// DefaultUserAgent mimics a desktop browser. Many sites reject
	// requests with obvious bot user agents.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

	// DefaultTimeout bounds a single fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxBodyBytes caps how much of a response body is read.
	DefaultMaxBodyBytes = 20 << 20 // 20 MiB

	// DefaultConcurrency bounds in-flight fetches per batch.
	DefaultConcurrency = 8

	// DefaultRequestsPerSecond throttles outgoing requests.
	DefaultRequestsPerSecond = 4
)

// pdfMediaType is the declared content type that classifies a PDF.
const pdfMediaType = "application/pdf"

// Config holds configuration for the HTTP scraper.
type Config struct {
	// UserAgent overrides the browser-like default.
	UserAgent string

	// Timeout bounds a single fetch (default: 30s).
	Timeout time.Duration

	// MaxBodyBytes caps the response body size (default: 20 MiB).
	MaxBodyBytes int64

	// Concurrency bounds in-flight fetches per batch (default: 8).
	Concurrency int

	// RequestsPerSecond throttles outgoing requests (default: 4).
	RequestsPerSecond float64
}

// Scraper fetches URLs with a browser-like user agent, bounded
// concurrency and proactive rate limiting.
type Scraper struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
	concurrency  int
	limiter      *rate.Limiter
}

// New creates a new HTTP scraper.
func New(cfg Config) *Scraper {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxBodyBytes == 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}

	return &Scraper{
		client:       &http.Client{Timeout: cfg.Timeout},
		userAgent:    cfg.UserAgent,
		maxBodyBytes: cfg.MaxBodyBytes,
		concurrency:  cfg.Concurrency,
		limiter:      rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Concurrency),
	}
}

// Scrape fetches every URL in the batch concurrently and returns the
// documents that succeeded. Failed URLs are logged and dropped.
func (s *Scraper) Scrape(ctx context.Context, urls []string) []domain.ScrapedDocument {
	results := make([]*domain.ScrapedDocument, len(urls))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.concurrency)

	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			doc, err := s.ScrapeOne(ctx, url)
			if err != nil {
				logger.Warn("Scrape failed for %s: %v", url, err)
				return
			}
			results[i] = doc
		}(i, url)
	}
	wg.Wait()

	docs := make([]domain.ScrapedDocument, 0, len(urls))
	for _, doc := range results {
		if doc != nil {
			docs = append(docs, *doc)
		}
	}
	return docs
}

// ScrapeOne fetches a single URL and classifies its content type.
func (s *Scraper) ScrapeOne(ctx context.Context, url string) (*domain.ScrapedDocument, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, err)
	}

	isPDF := isPDFContentType(resp.Header.Get("Content-Type"))

	doc := &domain.ScrapedDocument{
		URL:          url,
		ContentBytes: body,
		IsPDF:        isPDF,
		ScrapedAt:    time.Now().UTC(),
	}
	if !isPDF {
		doc.ContentText = string(body)
	}

	logger.Debug("Scraped %s (%d bytes, pdf=%t)", url, len(body), isPDF)
	return doc, nil
}

// isPDFContentType classifies a response by its declared Content-Type.
func isPDFContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		// Fall back to a substring check for sloppy servers.
		return strings.Contains(strings.ToLower(contentType), pdfMediaType)
	}
	return strings.EqualFold(mediaType, pdfMediaType)
}
