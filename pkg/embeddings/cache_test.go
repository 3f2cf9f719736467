package embeddings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProvider records how many texts reached the inner provider.
type countingProvider struct {
	inner Provider
	calls int
	texts []string
	err   error
}

func (c *countingProvider) Name() string    { return "counting" }
func (c *countingProvider) Dimensions() int { return Dim }

func (c *countingProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	c.calls++
	c.texts = append(c.texts, text)
	if c.err != nil {
		return nil, c.err
	}
	return c.inner.Embed(ctx, text)
}

func (c *countingProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	c.calls++
	c.texts = append(c.texts, texts...)
	if c.err != nil {
		return nil, c.err
	}
	return c.inner.EmbedBatch(ctx, texts)
}

func TestCachedProvider_EmbedHitsCache(t *testing.T) {
	counting := &countingProvider{inner: NewLocal()}
	cached, err := NewCached(counting, 16)
	require.NoError(t, err)

	ctx := context.Background()
	first, err := cached.Embed(ctx, "hello world")
	require.NoError(t, err)
	second, err := cached.Embed(ctx, "hello world")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, counting.calls)
}

func TestCachedProvider_BatchOnlyFetchesUncached(t *testing.T) {
	counting := &countingProvider{inner: NewLocal()}
	cached, err := NewCached(counting, 16)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = cached.Embed(ctx, "already cached")
	require.NoError(t, err)
	counting.texts = nil

	vecs, err := cached.EmbedBatch(ctx, []string{"already cached", "fresh one", "another fresh"})
	require.NoError(t, err)
	require.Len(t, vecs, 3)

	assert.ElementsMatch(t, []string{"fresh one", "another fresh"}, counting.texts)

	// Second identical batch is served entirely from cache.
	counting.calls = 0
	_, err = cached.EmbedBatch(ctx, []string{"already cached", "fresh one", "another fresh"})
	require.NoError(t, err)
	assert.Equal(t, 0, counting.calls)
}

func TestCachedProvider_ErrorsNotCached(t *testing.T) {
	counting := &countingProvider{inner: NewLocal(), err: errors.New("provider down")}
	cached, err := NewCached(counting, 16)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = cached.Embed(ctx, "text")
	require.Error(t, err)

	counting.err = nil
	vec, err := cached.Embed(ctx, "text")
	require.NoError(t, err)
	assert.Len(t, vec, Dim)
	assert.Equal(t, 2, counting.calls)
}

func TestNewCached_InvalidSize(t *testing.T) {
	_, err := NewCached(NewLocal(), 0)
	assert.Error(t, err)
}
