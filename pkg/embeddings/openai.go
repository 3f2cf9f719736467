package embeddings

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	// openAITimeout bounds a single API call attempt.
	openAITimeout = 10 * time.Second

	// openAIAttempts is the total number of attempts per batch.
	openAIAttempts = 3
)

// OpenAIConfig parameterizes the OpenAI embeddings client.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // optional override for proxies and compatible servers
	Model   string
}

// OpenAIProvider generates embeddings through the OpenAI API.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAI creates an OpenAI-backed provider. Retries are handled by
// the provider's own schedule, so the SDK's built-in retry is disabled.
func NewOpenAI(cfg OpenAIConfig) *OpenAIProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = string(openai.EmbeddingModelTextEmbedding3Small)
	}
	return &OpenAIProvider{client: openai.NewClient(opts...), model: model}
}

// Name returns the provider name for logging.
func (p *OpenAIProvider) Name() string { return "openai" }

// Dimensions returns the embedding dimension.
func (p *OpenAIProvider) Dimensions() int { return Dim }

// Embed generates the embedding for a single text.
func (p *OpenAIProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := p.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch generates embeddings for multiple texts with exponential
// backoff between attempts (1s, 2s).
func (p *OpenAIProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts provided")
	}
	if len(texts) > MaxBatchSize {
		return nil, fmt.Errorf("batch size exceeds limit: %d > %d", len(texts), MaxBatchSize)
	}

	var vecs [][]float32
	var err error
	for attempt := 0; attempt < openAIAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<(attempt-1)) * time.Second
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
		vecs, err = p.callAPI(ctx, texts)
		if err == nil {
			return vecs, nil
		}
	}
	return nil, fmt.Errorf("failed to embed batch after %d attempts: %w", openAIAttempts, err)
}

func (p *OpenAIProvider) callAPI(ctx context.Context, texts []string) ([][]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, openAITimeout)
	defer cancel()

	resp, err := p.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input:      openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Model:      openai.EmbeddingModel(p.model),
		Dimensions: openai.Int(Dim),
	})
	if err != nil {
		return nil, fmt.Errorf("embeddings request: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embeddings response has %d vectors, want %d", len(resp.Data), len(texts))
	}

	// The API may return items out of order; place each by index.
	out := make([][]float32, len(texts))
	for _, item := range resp.Data {
		idx := int(item.Index)
		if idx < 0 || idx >= len(out) {
			return nil, fmt.Errorf("embeddings response index %d out of range", idx)
		}
		if len(item.Embedding) != Dim {
			return nil, fmt.Errorf("embedding has dimension %d, want %d", len(item.Embedding), Dim)
		}
		vec := make([]float32, Dim)
		for i, v := range item.Embedding {
			vec[i] = float32(v)
		}
		out[idx] = vec
	}
	return out, nil
}
