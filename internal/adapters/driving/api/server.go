// Package api exposes the scanner over HTTP: an ingestion endpoint, a
// search endpoint, the scan history and a health probe.
//
// Authorization is delegated upstream: a bearer token on inbound
// requests is accepted and ignored so the server can sit behind a
// gateway that has already authenticated the caller.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driven"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driving"
)

// ErrMissingScanService is returned when the scan service is not provided.
var ErrMissingScanService = errors.New("api: scan service is required")

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("api: search service is required")

// Ports aggregates the services the HTTP server exposes.
type Ports struct {
	// Scan ingests URLs into the vector store.
	Scan driving.ScanService

	// Search retrieves stored documents.
	Search driving.SearchService

	// History exposes past scan outcomes. Optional.
	History driven.ScanStore

	// Health probes the embedding backend. Optional.
	Health driven.EmbeddingService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Scan == nil {
		return ErrMissingScanService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}

// Server is the inbound HTTP API server.
type Server struct {
	ports *Ports
	echo  *echo.Echo
}

// NewServer creates the HTTP server and registers its routes.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{ports: ports, echo: e}

	e.GET("/healthz", s.handleHealth)
	e.POST("/api/scan", s.handleScan)
	e.POST("/api/search", s.handleSearch)
	e.GET("/api/history", s.handleHistory)

	return s, nil
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves on addr until the context is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.echo.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	err := s.echo.Start(addr)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
