// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants ingest URLs into the vector store and run
// retrieval queries against it as MCP tools.
package mcp

import "errors"

// ErrMissingScanService is returned when the scan service is not provided.
var ErrMissingScanService = errors.New("mcp: scan service is required")

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
