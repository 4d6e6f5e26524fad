package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driven"
)

func historyRequest() *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uriScheme + "history"},
	}
}

func TestServer_handleHistoryResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns records as json", func(t *testing.T) {
		store := &mockScanStore{
			records: []driven.ScanRecord{
				{
					URL:         "https://example.com",
					Status:      "ok",
					PagesStored: 3,
					ScannedAt:   time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
				},
				{
					URL:    "https://example.com/broken",
					Status: "error",
					Error:  "fetch https://example.com/broken: status 404",
				},
			},
		}

		server := newTestServer(t, &Ports{
			Scan:    &mockScanService{},
			Search:  &mockSearchService{},
			History: store,
		})

		result, err := server.handleHistoryResource(ctx, historyRequest())
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)

		text := result.Contents[0].Text
		assert.Contains(t, text, `"https://example.com"`)
		assert.Contains(t, text, `"status": "ok"`)
		assert.Contains(t, text, "2026-08-30T12:00:00Z")
		assert.Contains(t, text, "status 404")
	})

	t.Run("no history store yields empty list", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Scan:   &mockScanService{},
			Search: &mockSearchService{},
		})

		result, err := server.handleHistoryResource(ctx, historyRequest())
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Scan:    &mockScanService{},
			Search:  &mockSearchService{},
			History: &mockScanStore{err: errors.New("db locked")},
		})

		_, err := server.handleHistoryResource(ctx, historyRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db locked")
	})
}
