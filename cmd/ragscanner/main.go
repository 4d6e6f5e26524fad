// Command ragscanner is the entry point: it loads the configuration,
// wires the adapters to the core services and hands control to the CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/adapters/driven/embedding/openai"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/adapters/driven/scraper"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/adapters/driven/storage/sqlite"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/adapters/driven/vectorstore/qdrant"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/adapters/driving/cli"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/config"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driven"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/services"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/logger"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/parsers"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "RAGSCANNER_CONFIG"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(configPath())
	if err != nil {
		return err
	}

	embedder, err := openai.NewEmbeddingService(openai.Config{
		Endpoint: cfg.Embedding.Endpoint,
		APIKey:   cfg.Embedding.APIKey,
		Model:    cfg.Embedding.Model,
		Timeout:  cfg.EmbeddingTimeout(),
	})
	if err != nil {
		return fmt.Errorf("wiring embedding client: %w", err)
	}

	vectorStore, err := qdrant.NewStore(qdrant.Config{
		Endpoint:            cfg.Qdrant.Endpoint,
		APIKey:              cfg.Qdrant.APIKey,
		Collection:          cfg.Qdrant.Collection,
		SimilarityThreshold: cfg.Qdrant.SimilarityThreshold,
		Timeout:             cfg.QdrantTimeout(),
	})
	if err != nil {
		return fmt.Errorf("wiring vector store: %w", err)
	}

	fetcher := scraper.New(scraper.Config{
		UserAgent:         cfg.Scraper.UserAgent,
		Timeout:           cfg.ScraperTimeout(),
		Concurrency:       cfg.Scraper.Concurrency,
		RequestsPerSecond: cfg.Scraper.RequestsPerSecond,
	})

	// Scan history is best-effort: the pipeline works without it.
	scanStore, err := sqlite.NewStore(cfg.Storage.DataDir)
	if err != nil {
		logger.Warn("Scan history unavailable: %v", err)
		scanStore = nil
	}
	if scanStore != nil {
		defer scanStore.Close()
	}

	parser := parsers.New()

	scanSvc := services.NewScanOrchestrator(fetcher, parser, embedder, vectorStore, scanStoreOrNil(scanStore))
	searchSvc := services.NewSearchService(embedder, vectorStore, cfg.Search.TopK)

	cli.Configure(cli.Deps{
		Scan:     scanSvc,
		Search:   searchSvc,
		History:  scanStoreOrNil(scanStore),
		Embedder: embedder,
		Listen:   cfg.Server.Listen,
	})

	return cli.Execute(ctx)
}

// configPath resolves the config file location: the environment
// override first, then ~/.ragscanner/config.toml.
func configPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".ragscanner", "config.toml")
}

// scanStoreOrNil keeps a typed nil *sqlite.Store from becoming a
// non-nil driven.ScanStore interface value.
func scanStoreOrNil(s *sqlite.Store) driven.ScanStore {
	if s == nil {
		return nil
	}
	return s
}
