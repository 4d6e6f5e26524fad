package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, "rag_documents", cfg.Qdrant.Collection)
	assert.Equal(t, 0.95, cfg.Qdrant.SimilarityThreshold)
	assert.Equal(t, 5, cfg.Search.TopK)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
listen = ":9090"

[embedding]
endpoint = "https://api.openai.com/v1"
model = "text-embedding-3-small"

[qdrant]
endpoint = "http://qdrant:6333"
collection = "docs"
similarity_threshold = 0.9

[search]
top_k = 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Embedding.Endpoint)
	assert.Equal(t, "text-embedding-3-small", cfg.Embedding.Model)
	assert.Equal(t, "docs", cfg.Qdrant.Collection)
	assert.Equal(t, 0.9, cfg.Qdrant.SimilarityThreshold)
	assert.Equal(t, 10, cfg.Search.TopK)

	// untouched sections keep their defaults
	assert.Equal(t, 8, cfg.Scraper.Concurrency)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nlisten ="), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestLoad_EnvOverridesAPIKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[embedding]
api_key = "file-key"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv(EnvEmbeddingAPIKey, "env-key")
	t.Setenv(EnvQdrantAPIKey, "qdrant-env-key")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Embedding.APIKey)
	assert.Equal(t, "qdrant-env-key", cfg.Qdrant.APIKey)
}

func TestValidate_ThresholdRange(t *testing.T) {
	cfg := Default()
	cfg.Qdrant.SimilarityThreshold = 1.5
	assert.ErrorContains(t, cfg.Validate(), "similarity_threshold")

	cfg.Qdrant.SimilarityThreshold = -0.1
	assert.ErrorContains(t, cfg.Validate(), "similarity_threshold")

	cfg.Qdrant.SimilarityThreshold = 0.95
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RequiredEndpoints(t *testing.T) {
	cfg := Default()
	cfg.Embedding.Endpoint = ""
	assert.ErrorContains(t, cfg.Validate(), "embedding endpoint")

	cfg = Default()
	cfg.Qdrant.Endpoint = ""
	assert.ErrorContains(t, cfg.Validate(), "qdrant endpoint")

	cfg = Default()
	cfg.Qdrant.Collection = ""
	assert.ErrorContains(t, cfg.Validate(), "collection")
}
