package embeddings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cosine computes the dot product of two unit vectors.
func cosine(a, b []float32) float64 {
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}

func TestLocalProvider_Deterministic(t *testing.T) {
	p := NewLocal()
	ctx := context.Background()

	first, err := p.Embed(ctx, "remember my wifi password is hunter2")
	require.NoError(t, err)
	second, err := p.Embed(ctx, "remember my wifi password is hunter2")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, Dim)
	assert.Equal(t, Dim, p.Dimensions())
}

func TestLocalProvider_UnitNorm(t *testing.T) {
	p := NewLocal()

	for _, text := range []string{
		"short",
		"a much longer text with many distinct tokens in it",
		"",
		"!!! ...",
	} {
		vec, err := p.Embed(context.Background(), text)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, cosine(vec, vec), 1e-5, "norm for %q", text)
	}
}

func TestLocalProvider_SharedTokensScoreHigher(t *testing.T) {
	p := NewLocal()
	ctx := context.Background()

	doc, err := p.Embed(ctx, "the wifi password is hunter2")
	require.NoError(t, err)
	query, err := p.Embed(ctx, "wifi password")
	require.NoError(t, err)
	unrelated, err := p.Embed(ctx, "weekly marketing sync notes")
	require.NoError(t, err)

	assert.Greater(t, cosine(query, doc), cosine(query, unrelated))
	assert.Greater(t, cosine(query, doc), 0.3)
}

func TestLocalProvider_CaseInsensitiveTokens(t *testing.T) {
	p := NewLocal()
	ctx := context.Background()

	lower, err := p.Embed(ctx, "wifi password")
	require.NoError(t, err)
	mixed, err := p.Embed(ctx, "WiFi PASSWORD")
	require.NoError(t, err)

	assert.InDelta(t, 1.0, cosine(lower, mixed), 1e-5)
}

func TestLocalProvider_EmbedBatch(t *testing.T) {
	p := NewLocal()
	ctx := context.Background()

	texts := []string{"first text", "second text", "third text"}
	vecs, err := p.EmbedBatch(ctx, texts)
	require.NoError(t, err)
	require.Len(t, vecs, 3)

	for i, text := range texts {
		single, err := p.Embed(ctx, text)
		require.NoError(t, err)
		assert.Equal(t, single, vecs[i], "batch order for %q", text)
	}

	_, err = p.EmbedBatch(ctx, nil)
	assert.Error(t, err)

	tooMany := make([]string, MaxBatchSize+1)
	_, err = p.EmbedBatch(ctx, tooMany)
	assert.Error(t, err)
}
