package driven

import "context"

// DocumentParser converts raw document content into plain-text pages.
//
// Parsers degrade gracefully: malformed input yields empty output rather
// than an error, and empty pages are filtered by the caller before they
// reach the embedding stage.
type DocumentParser interface {
	// ParseHTML extracts the visible text under the document body,
	// trimming whitespace per node and joining nodes with line breaks.
	// Markup, scripts and attributes are discarded.
	ParseHTML(ctx context.Context, htmlContent string) (string, error)

	// ParsePDFPages extracts text from each physical page of a PDF,
	// preserving page order. Each page becomes an independent segment.
	ParsePDFPages(ctx context.Context, pdfBytes []byte) ([]string, error)

	// ExtractTitle returns the text of the first case-insensitive
	// <title>...</title> occurrence, or "Untitled" when the tags are
	// absent or malformed.
	ExtractTitle(htmlContent string) string
}
