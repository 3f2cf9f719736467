package embeddings

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// LocalProvider produces deterministic embeddings without any external
// service. Texts are tokenized, each token is feature-hashed into a
// signed bucket, and the result is L2-normalized; texts sharing tokens
// get positive cosine similarity. Used in development and tests.
type LocalProvider struct{}

// NewLocal creates the deterministic local provider.
func NewLocal() *LocalProvider { return &LocalProvider{} }

// Name returns the provider name for logging.
func (p *LocalProvider) Name() string { return "local" }

// Dimensions returns the embedding dimension.
func (p *LocalProvider) Dimensions() int { return Dim }

// Embed generates the embedding for a single text.
func (p *LocalProvider) Embed(_ context.Context, text string) ([]float32, error) {
	return featureHash(text), nil
}

// EmbedBatch generates embeddings for multiple texts.
func (p *LocalProvider) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts provided")
	}
	if len(texts) > MaxBatchSize {
		return nil, fmt.Errorf("batch size exceeds limit: %d > %d", len(texts), MaxBatchSize)
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = featureHash(t)
	}
	return out, nil
}

// featureHash maps each token to a bucket and sign, accumulates, and
// L2-normalizes. Text with no tokens embeds to a fixed unit vector.
func featureHash(text string) []float32 {
	vec := make([]float32, Dim)
	for _, tok := range tokenize(text) {
		h := fnv.New64a()
		h.Write([]byte(tok))
		sum := h.Sum64()
		bucket := int(sum % Dim)
		sign := float32(1)
		if sum>>63 == 1 {
			sign = -1
		}
		vec[bucket] += sign
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		vec[0] = 1
		return vec
	}
	inv := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= inv
	}
	return vec
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
