package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for scanner resources.
	uriScheme = "ragscanner://"

	// historyResourceLimit caps the records returned by the history resource.
	historyResourceLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "scan-history",
		Description: "Recent URL scan outcomes, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleHistoryResource returns the most recent scan records.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	records, err := s.ports.History.History(ctx, historyResourceLimit)
	if err != nil {
		return nil, fmt.Errorf("listing scan history: %w", err)
	}

	type recordInfo struct {
		URL         string `json:"url"`
		Status      string `json:"status"`
		PagesStored int    `json:"pages_stored"`
		Error       string `json:"error,omitempty"`
		ScannedAt   string `json:"scanned_at"`
	}

	infos := make([]recordInfo, len(records))
	for i, rec := range records {
		infos[i] = recordInfo{
			URL:         rec.URL,
			Status:      rec.Status,
			PagesStored: rec.PagesStored,
			Error:       rec.Error,
			ScannedAt:   rec.ScannedAt.Format(time.RFC3339),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling scan history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
