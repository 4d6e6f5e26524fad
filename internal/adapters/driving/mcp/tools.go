package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ScanInput is the input schema for the scan_urls tool.
type ScanInput struct {
	URLs []string `json:"urls" jsonschema:"the URLs to fetch, parse and store"`
}

// ScanOutput is the output schema for the scan_urls tool.
type ScanOutput struct {
	Succeeded    bool     `json:"succeeded"`
	URLsScraped  int      `json:"urls_scraped"`
	PagesStored  int      `json:"pages_stored"`
	PagesSkipped int      `json:"pages_skipped"`
	Reasons      []string `json:"reasons,omitempty"`
}

// SearchInput is the input schema for the rag_search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to find stored documents"`
	TopK  int    `json:"top_k,omitempty" jsonschema:"maximum number of results to return (default 5)"`
}

// SearchOutput is the output schema for the rag_search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	ID      string  `json:"id"`
	URL     string  `json:"url"`
	Title   string  `json:"title"`
	Score   float64 `json:"score"`
	Content string  `json:"content,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "scan_urls",
		Description: "Fetch web pages or PDFs from URLs and index them for retrieval",
	}, s.handleScan)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rag_search",
		Description: "Search previously indexed documents by semantic similarity",
	}, s.handleSearch)
}

// handleScan handles the scan_urls tool invocation.
func (s *Server) handleScan(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScanInput,
) (*mcp.CallToolResult, ScanOutput, error) {
	report, err := s.ports.Scan.Scan(ctx, input.URLs)
	if err != nil {
		return nil, ScanOutput{}, err
	}

	output := ScanOutput{
		Succeeded:    report.Succeeded,
		URLsScraped:  report.URLsScraped,
		PagesStored:  report.PagesStored,
		PagesSkipped: report.PagesSkipped,
		Reasons:      report.Reasons,
	}
	return nil, output, nil
}

// handleSearch handles the rag_search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Search.Search(ctx, input.Query, input.TopK)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = SearchResultOutput{
			ID:      results[i].ID,
			URL:     results[i].URL,
			Title:   results[i].Title,
			Score:   results[i].Score,
			Content: results[i].Content,
		}
	}

	return nil, output, nil
}
