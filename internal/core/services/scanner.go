package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/domain"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driven"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driving"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/logger"
)

// Ensure ScanOrchestrator implements the interface.
var _ driving.ScanService = (*ScanOrchestrator)(nil)

// DefaultSegmentConcurrency bounds in-flight segment pipelines.
const DefaultSegmentConcurrency = 8

// ScanOrchestrator drives the ingestion pipeline:
// fetch -> parse -> embed -> store, per URL and per page.
type ScanOrchestrator struct {
	scraper     driven.Scraper
	parser      driven.DocumentParser
	embedder    driven.EmbeddingService
	vectorStore driven.VectorStore
	scanStore   driven.ScanStore
	concurrency int
}

// NewScanOrchestrator creates a new ingestion orchestrator.
// The scanStore is optional; when nil, scan outcomes are not persisted.
func NewScanOrchestrator(
	scraper driven.Scraper,
	parser driven.DocumentParser,
	embedder driven.EmbeddingService,
	vectorStore driven.VectorStore,
	scanStore driven.ScanStore,
) *ScanOrchestrator {
	return &ScanOrchestrator{
		scraper:     scraper,
		parser:      parser,
		embedder:    embedder,
		vectorStore: vectorStore,
		scanStore:   scanStore,
		concurrency: DefaultSegmentConcurrency,
	}
}

// segment is one unit of parsed text queued for embedding and storage.
type segment struct {
	doc        domain.ScrapedDocument
	text       string
	title      string
	sourceType domain.SourceType
}

// segmentOutcome reports how one segment's pipeline ended.
type segmentOutcome struct {
	url     string
	stored  bool
	skipped bool
	err     error
}

// Scan fetches, parses, embeds and stores each URL in the batch.
//
// The batch is best-effort: a failed URL or segment is logged, reported
// in the returned reasons and skipped, without aborting its siblings.
// Scan fails outright only for an empty URL list or when no URL could
// be fetched at all.
func (o *ScanOrchestrator) Scan(ctx context.Context, urls []string) (*driving.ScanReport, error) {
	if len(urls) == 0 {
		return &driving.ScanReport{Reasons: []string{domain.ErrNoURLs.Error()}}, domain.ErrNoURLs
	}

	logger.Section("Scan")
	logger.Info("Scanning %d URL(s)", len(urls))

	docs := o.scraper.Scrape(ctx, urls)
	if len(docs) == 0 {
		report := &driving.ScanReport{Reasons: []string{domain.ErrAllScrapesFailed.Error()}}
		o.recordFailures(ctx, urls)
		return report, domain.ErrAllScrapesFailed
	}

	segments := o.collectSegments(ctx, docs)
	outcomes := o.processSegments(ctx, segments)

	report := &driving.ScanReport{
		Succeeded:   true,
		URLsScraped: len(docs),
	}
	perURL := make(map[string]*driven.ScanRecord, len(docs))
	for _, doc := range docs {
		perURL[doc.URL] = &driven.ScanRecord{URL: doc.URL, Status: "ok", ScannedAt: doc.ScrapedAt}
	}

	for _, out := range outcomes {
		rec := perURL[out.url]
		switch {
		case out.err != nil:
			report.Reasons = append(report.Reasons, out.err.Error())
			if rec != nil {
				rec.Status = "error"
				rec.Error = out.err.Error()
			}
		case out.stored:
			report.PagesStored++
			if rec != nil {
				rec.PagesStored++
			}
		case out.skipped:
			report.PagesSkipped++
		}
	}

	scraped := make(map[string]bool, len(docs))
	for _, doc := range docs {
		scraped[doc.URL] = true
	}
	for _, url := range urls {
		if !scraped[url] {
			report.Reasons = append(report.Reasons, fmt.Sprintf("failed to scrape %s", url))
		}
	}

	o.record(ctx, perURL, urls, scraped)

	logger.Info("Scan complete: %d URL(s) scraped, %d page(s) stored, %d skipped, %d failure(s)",
		report.URLsScraped, report.PagesStored, report.PagesSkipped, len(report.Reasons))
	return report, nil
}

// collectSegments parses every scraped document into text segments:
// one per HTML document, one per PDF page. Parse failures degrade to
// zero segments for that document and are logged, not fatal.
func (o *ScanOrchestrator) collectSegments(ctx context.Context, docs []domain.ScrapedDocument) []segment {
	var segments []segment

	for _, doc := range docs {
		if doc.IsPDF {
			pages, err := o.parser.ParsePDFPages(ctx, doc.ContentBytes)
			if err != nil {
				logger.Warn("Failed to parse PDF from %s: %v", doc.URL, err)
				continue
			}
			for i, page := range pages {
				segments = append(segments, segment{
					doc:        doc,
					text:       page,
					title:      fmt.Sprintf("Page %d", i+1),
					sourceType: domain.SourceTypePDF,
				})
			}
			continue
		}

		text, err := o.parser.ParseHTML(ctx, doc.ContentText)
		if err != nil {
			logger.Warn("Failed to parse HTML from %s: %v", doc.URL, err)
			continue
		}
		segments = append(segments, segment{
			doc:        doc,
			text:       text,
			title:      o.parser.ExtractTitle(doc.ContentText),
			sourceType: domain.SourceTypeHTML,
		})
	}

	return segments
}

// processSegments runs the embed-and-store pipeline for every segment
// concurrently, bounded by the orchestrator's concurrency limit. All
// segments are attempted; one failure never cancels a sibling.
func (o *ScanOrchestrator) processSegments(ctx context.Context, segments []segment) []segmentOutcome {
	outcomes := make([]segmentOutcome, len(segments))

	var wg sync.WaitGroup
	sem := make(chan struct{}, o.concurrency)

	for i, seg := range segments {
		wg.Add(1)
		go func(i int, seg segment) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			outcomes[i] = o.processSegment(ctx, seg)
		}(i, seg)
	}
	wg.Wait()

	return outcomes
}

// processSegment embeds one text segment and stores the resulting
// document vector.
func (o *ScanOrchestrator) processSegment(ctx context.Context, seg segment) segmentOutcome {
	out := segmentOutcome{url: seg.doc.URL}

	if strings.TrimSpace(seg.text) == "" {
		logger.Debug("Empty content from %s (%s), skipping", seg.doc.URL, seg.title)
		out.skipped = true
		return out
	}

	embedding, err := o.embedder.Embed(ctx, seg.text)
	if err != nil {
		logger.Warn("Failed to embed %s (%s): %v", seg.doc.URL, seg.title, err)
		out.err = fmt.Errorf("embed %s (%s): %w", seg.doc.URL, seg.title, err)
		return out
	}

	vector := domain.DocumentVector{
		Embedding: embedding,
		Metadata: domain.DocumentMetadata{
			URL:        seg.doc.URL,
			SourceType: seg.sourceType,
			Title:      seg.title,
			Content:    seg.text,
			ScrapedAt:  seg.doc.ScrapedAt,
		},
	}

	if err := o.vectorStore.Save(ctx, vector); err != nil {
		logger.Warn("Failed to store vector for %s (%s): %v", seg.doc.URL, seg.title, err)
		out.err = fmt.Errorf("store %s (%s): %w", seg.doc.URL, seg.title, err)
		return out
	}

	out.stored = true
	return out
}

// record persists per-URL outcomes when a scan store is configured.
func (o *ScanOrchestrator) record(ctx context.Context, perURL map[string]*driven.ScanRecord, urls []string, scraped map[string]bool) {
	if o.scanStore == nil {
		return
	}

	for _, rec := range perURL {
		if err := o.scanStore.Record(ctx, *rec); err != nil {
			logger.Warn("Failed to record scan of %s: %v", rec.URL, err)
		}
	}
	for _, url := range urls {
		if scraped[url] {
			continue
		}
		rec := driven.ScanRecord{URL: url, Status: "error", Error: "fetch failed", ScannedAt: time.Now().UTC()}
		if err := o.scanStore.Record(ctx, rec); err != nil {
			logger.Warn("Failed to record scan of %s: %v", url, err)
		}
	}
}

// recordFailures marks every URL in a fully failed batch.
func (o *ScanOrchestrator) recordFailures(ctx context.Context, urls []string) {
	if o.scanStore == nil {
		return
	}
	for _, url := range urls {
		rec := driven.ScanRecord{URL: url, Status: "error", Error: "fetch failed", ScannedAt: time.Now().UTC()}
		if err := o.scanStore.Record(ctx, rec); err != nil {
			logger.Warn("Failed to record scan of %s: %v", url, err)
		}
	}
}
