package domain

import "time"

// SourceType identifies the format a page was parsed from.
type SourceType string

const (
	// SourceTypeHTML marks pages parsed from HTML or plain text.
	SourceTypeHTML SourceType = "html"

	// SourceTypePDF marks pages extracted from a PDF document.
	SourceTypePDF SourceType = "pdf"
)

// String returns the wire representation of the source type.
func (t SourceType) String() string {
	return string(t)
}

// ScrapedDocument holds the raw result of fetching a single URL.
// It is transient: created once per successful fetch, consumed by the
// parser, and discarded afterwards.
type ScrapedDocument struct {
	// URL is the location the document was fetched from.
	URL string

	// ContentBytes is the full response body.
	ContentBytes []byte

	// ContentText is the decoded body text. Empty for binary content.
	ContentText string

	// IsPDF reports whether the response declared a PDF content type.
	IsPDF bool

	// ScrapedAt is when the fetch completed.
	ScrapedAt time.Time
}

// DocumentMetadata describes one stored page or segment.
type DocumentMetadata struct {
	// ID is the point identifier in the vector store.
	ID string

	// URL is the source location. Never empty for stored documents.
	URL string

	// SourceType is the format the page was parsed from.
	SourceType SourceType

	// Title is the extracted page title, "Untitled" when absent,
	// or "Page N" for PDF pages.
	Title string

	// Content is the parsed plain text of the page.
	Content string

	// ScrapedAt is when the source document was fetched.
	ScrapedAt time.Time
}

// DocumentVector pairs one embedding with its metadata.
// It is the unit of storage and retrieval; once stored it is never mutated.
type DocumentVector struct {
	// Embedding is the fixed-length vector for the page content.
	// Its length must equal the collection's configured dimensionality.
	Embedding []float32

	// Metadata carries the descriptive fields stored alongside the vector.
	Metadata DocumentMetadata
}

// SearchResult is a read-only projection of a retrieved document,
// scored against the query and ordered by Score descending.
type SearchResult struct {
	// ID is the stored point identifier.
	ID string `json:"id"`

	// Content is the stored page text.
	Content string `json:"content"`

	// URL is the source location of the page.
	URL string `json:"url"`

	// Title is the stored page title.
	Title string `json:"title"`

	// Score is the cosine similarity between the query embedding and
	// the stored embedding, in [-1, 1].
	Score float64 `json:"score"`
}
