// Package domain defines the core business entities for the RAG scanner.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ScrapedDocument: Raw bytes fetched from a URL
//   - DocumentMetadata: Descriptive fields for a stored page
//   - DocumentVector: An embedding plus its metadata, the unit of storage
//   - SearchResult: A scored retrieval hit returned to callers
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
package domain
