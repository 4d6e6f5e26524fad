package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/domain"
)

// defaultHistoryLimit caps history responses when no limit is given.
const defaultHistoryLimit = 50

// scanRequest is the ingestion request body.
type scanRequest struct {
	URLs []string `json:"urls"`
}

// searchRequest is the search request body.
type searchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"topK"`
}

// searchResponse is the search response body.
type searchResponse struct {
	Results []domain.SearchResult `json:"results"`
	Count   int                   `json:"count"`
}

// historyEntry is one scan history record in the response.
type historyEntry struct {
	URL         string `json:"url"`
	Status      string `json:"status"`
	PagesStored int    `json:"pagesStored"`
	Error       string `json:"error,omitempty"`
	ScannedAt   string `json:"scannedAt"`
}

// errorResponse is the generic error body.
type errorResponse struct {
	Error string `json:"error"`
}

// handleScan ingests a batch of URLs and reports the outcome.
//
// The report itself carries the success flag and per-segment reasons;
// only validation failures and unexpected errors map to non-2xx codes.
func (s *Server) handleScan(c echo.Context) error {
	var req scanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	report, err := s.ports.Scan.Scan(c.Request().Context(), req.URLs)
	switch {
	case errors.Is(err, domain.ErrNoURLs):
		return c.JSON(http.StatusBadRequest, report)
	case err != nil && report != nil:
		// Batch-level failure, e.g. nothing could be fetched. The
		// report enumerates the reasons.
		return c.JSON(http.StatusOK, report)
	case err != nil:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, report)
}

// handleSearch returns the stored documents most relevant to a query.
func (s *Server) handleSearch(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	results, err := s.ports.Search.Search(c.Request().Context(), req.Query, req.TopK)
	switch {
	case errors.Is(err, domain.ErrEmptyQuery):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrRetrieveFailed):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	if results == nil {
		results = []domain.SearchResult{}
	}
	return c.JSON(http.StatusOK, searchResponse{Results: results, Count: len(results)})
}

// handleHistory returns recent scan outcomes, newest first.
func (s *Server) handleHistory(c echo.Context) error {
	if s.ports.History == nil {
		return c.JSON(http.StatusOK, []historyEntry{})
	}

	limit := defaultHistoryLimit
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid limit"})
	}

	records, err := s.ports.History.History(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	entries := make([]historyEntry, len(records))
	for i, rec := range records {
		entries[i] = historyEntry{
			URL:         rec.URL,
			Status:      rec.Status,
			PagesStored: rec.PagesStored,
			Error:       rec.Error,
			ScannedAt:   rec.ScannedAt.Format(time.RFC3339),
		}
	}
	return c.JSON(http.StatusOK, entries)
}

// handleHealth reports liveness, probing the embedding backend when
// one is wired.
func (s *Server) handleHealth(c echo.Context) error {
	if s.ports.Health != nil {
		if err := s.ports.Health.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
