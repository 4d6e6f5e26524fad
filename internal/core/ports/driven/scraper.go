package driven

import (
	"context"

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/domain"
)

// Scraper fetches raw content from URLs over HTTP.
type Scraper interface {
	// Scrape fetches every URL in the batch and returns the documents
	// that succeeded. Individual fetch failures are dropped, not
	// surfaced; an empty result means every URL failed.
	Scrape(ctx context.Context, urls []string) []domain.ScrapedDocument

	// ScrapeOne fetches a single URL. A non-2xx response or network
	// failure is returned as an error.
	ScrapeOne(ctx context.Context, url string) (*domain.ScrapedDocument, error)
}
