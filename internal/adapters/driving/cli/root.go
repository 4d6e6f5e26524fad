// Package cli wires the cobra command tree. Commands run against
// package-level services injected by the composition root via
// Configure before Execute is called.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driven"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driving"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	scanService      driving.ScanService
	searchService    driving.SearchService
	scanStore        driven.ScanStore
	embeddingService driven.EmbeddingService
	listenAddr       string

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ragscanner",
	Short: "Scan URLs into a vector store and search them",
	Long: `ragscanner ingests web pages and PDFs from URLs, embeds their text
and stores the vectors in Qdrant for retrieval-augmented generation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Deps carries the wired services the commands run against.
type Deps struct {
	Scan     driving.ScanService
	Search   driving.SearchService
	History  driven.ScanStore
	Embedder driven.EmbeddingService

	// Listen is the HTTP API listen address used by serve.
	Listen string
}

// Configure injects the wired services. Call once before Execute.
func Configure(d Deps) {
	scanService = d.Scan
	searchService = d.Search
	scanStore = d.History
	embeddingService = d.Embedder
	listenAddr = d.Listen
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
