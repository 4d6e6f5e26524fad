package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/adapters/driving/api"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/logger"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the HTTP API exposing the scan, search, history and health
endpoints. The server runs until interrupted.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (overrides the configured one)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	addr := listenAddr
	if serveListen != "" {
		addr = serveListen
	}
	if addr == "" {
		addr = ":8080"
	}

	server, err := api.NewServer(&api.Ports{
		Scan:    scanService,
		Search:  searchService,
		History: scanStore,
		Health:  embeddingService,
	})
	if err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}

	logger.Info("API server listening on %s", addr)
	return server.Run(cmd.Context(), addr)
}
