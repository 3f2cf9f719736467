// Package embeddings generates text embeddings for memory storage and
// retrieval. Two providers are available: the OpenAI embeddings API and
// a deterministic local provider for development and tests. Both are
// wrapped with an LRU cache keyed by input text.
package embeddings

import (
	"context"
	"fmt"

	"github.com/valet-assistant/valet/pkg/config"
)

// Dim is the embedding dimensionality stored in the memories table.
// Every provider must produce vectors of exactly this length.
const Dim = 1536

// MaxBatchSize caps a single EmbedBatch call.
const MaxBatchSize = 100

// Provider generates text embeddings.
type Provider interface {
	// Embed generates the embedding for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts (up to
	// MaxBatchSize), preserving input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding dimension.
	Dimensions() int

	// Name returns the provider name for logging.
	Name() string
}

// New creates the configured provider wrapped with an LRU cache.
func New(cfg *config.EmbeddingsConfig) (Provider, error) {
	var p Provider
	switch cfg.Provider {
	case config.EmbeddingsProviderOpenAI:
		p = NewOpenAI(OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.Model,
		})
	case config.EmbeddingsProviderLocal:
		p = NewLocal()
	default:
		return nil, fmt.Errorf("unsupported embeddings provider: %q", cfg.Provider)
	}
	return NewCached(p, cfg.CacheSize)
}
