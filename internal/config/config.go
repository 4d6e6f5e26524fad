// Package config loads the application configuration from a TOML file
// with environment-variable overrides for secrets.
//
// Configuration is an explicitly constructed value handed to each
// component at wiring time; nothing reads it through process-wide state.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables that override file values. Secrets should be
// supplied this way rather than written into the config file.
const (
	EnvEmbeddingAPIKey = "RAGSCANNER_EMBEDDING_API_KEY"
	EnvQdrantAPIKey    = "RAGSCANNER_QDRANT_API_KEY"
)

// ServerConfig configures the inbound HTTP API.
type ServerConfig struct {
	// Listen is the address the API server binds to.
	Listen string `toml:"listen"`
}

// EmbeddingConfig configures the embedding service client.
type EmbeddingConfig struct {
	// Endpoint is the API base URL, e.g. https://api.openai.com/v1.
	Endpoint string `toml:"endpoint"`

	// APIKey authorises requests. Prefer the environment variable.
	APIKey string `toml:"api_key"`

	// Model is the embedding model identifier.
	Model string `toml:"model"`

	// TimeoutSecs is the request timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs"`
}

// QdrantConfig configures the vector store client.
type QdrantConfig struct {
	// Endpoint is the Qdrant base URL, e.g. http://localhost:6333.
	Endpoint string `toml:"endpoint"`

	// APIKey authorises requests. Prefer the environment variable.
	APIKey string `toml:"api_key"`

	// Collection is the collection name.
	Collection string `toml:"collection"`

	// SimilarityThreshold in [0,1] gates duplicate detection.
	SimilarityThreshold float64 `toml:"similarity_threshold"`

	// TimeoutSecs is the per-request timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs"`
}

// ScraperConfig configures the URL fetcher.
type ScraperConfig struct {
	// UserAgent overrides the browser-like default when non-empty.
	UserAgent string `toml:"user_agent"`

	// TimeoutSecs bounds a single fetch in seconds.
	TimeoutSecs int `toml:"timeout_secs"`

	// Concurrency bounds in-flight fetches per batch.
	Concurrency int `toml:"concurrency"`

	// RequestsPerSecond throttles outgoing requests.
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// SearchConfig configures retrieval.
type SearchConfig struct {
	// TopK is the default number of results per query.
	TopK int `toml:"top_k"`
}

// StorageConfig configures local persistence.
type StorageConfig struct {
	// DataDir holds the scan history database.
	// Empty means ~/.ragscanner/data.
	DataDir string `toml:"data_dir"`
}

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Embedding EmbeddingConfig `toml:"embedding"`
	Qdrant    QdrantConfig    `toml:"qdrant"`
	Scraper   ScraperConfig   `toml:"scraper"`
	Search    SearchConfig    `toml:"search"`
	Storage   StorageConfig   `toml:"storage"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Listen: ":8080"},
		Embedding: EmbeddingConfig{
			Endpoint:    "http://localhost:11434/v1",
			Model:       "nomic-embed-text",
			TimeoutSecs: 60,
		},
		Qdrant: QdrantConfig{
			Endpoint:            "http://localhost:6333",
			Collection:          "rag_documents",
			SimilarityThreshold: 0.95,
			TimeoutSecs:         15,
		},
		Scraper: ScraperConfig{
			TimeoutSecs:       30,
			Concurrency:       8,
			RequestsPerSecond: 4,
		},
		Search: SearchConfig{TopK: 5},
	}
}

// Load reads the configuration from path. A missing file yields the
// defaults; a present but malformed file is an error. Environment
// variables override file values for secrets.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks constraints a wired component would reject later.
func (c *Config) Validate() error {
	if c.Qdrant.SimilarityThreshold < 0 || c.Qdrant.SimilarityThreshold > 1 {
		return fmt.Errorf("config: similarity_threshold %v outside [0,1]", c.Qdrant.SimilarityThreshold)
	}
	if c.Embedding.Endpoint == "" {
		return fmt.Errorf("config: embedding endpoint is required")
	}
	if c.Qdrant.Endpoint == "" {
		return fmt.Errorf("config: qdrant endpoint is required")
	}
	if c.Qdrant.Collection == "" {
		return fmt.Errorf("config: qdrant collection is required")
	}
	return nil
}

// EmbeddingTimeout returns the embedding timeout as a duration.
func (c *Config) EmbeddingTimeout() time.Duration {
	return time.Duration(c.Embedding.TimeoutSecs) * time.Second
}

// QdrantTimeout returns the Qdrant timeout as a duration.
func (c *Config) QdrantTimeout() time.Duration {
	return time.Duration(c.Qdrant.TimeoutSecs) * time.Second
}

// ScraperTimeout returns the scraper timeout as a duration.
func (c *Config) ScraperTimeout() time.Duration {
	return time.Duration(c.Scraper.TimeoutSecs) * time.Second
}

func applyEnvOverrides(cfg *Config) {
	if key := os.Getenv(EnvEmbeddingAPIKey); key != "" {
		cfg.Embedding.APIKey = key
	}
	if key := os.Getenv(EnvQdrantAPIKey); key != "" {
		cfg.Qdrant.APIKey = key
	}
}
