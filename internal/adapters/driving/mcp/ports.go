package mcp

import (
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driven"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driving"
)

// Ports aggregates all service interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scan ingests URLs into the vector store.
	Scan driving.ScanService

	// Search retrieves stored documents.
	Search driving.SearchService

	// History exposes past scan outcomes. Optional.
	History driven.ScanStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Scan == nil {
		return ErrMissingScanService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// History is optional; the resource degrades to an empty list.
	return nil
}
