package embeddings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type embeddingItem struct {
	Object    string    `json:"object"`
	Index     int       `json:"index"`
	Embedding []float64 `json:"embedding"`
}

type embeddingResponse struct {
	Object string          `json:"object"`
	Data   []embeddingItem `json:"data"`
	Model  string          `json:"model"`
	Usage  struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}

// unitVec builds a dim-length vector with a single 1.0 at position hot.
func unitVec(hot int) []float64 {
	v := make([]float64, Dim)
	v[hot] = 1.0
	return v
}

func writeEmbeddings(w http.ResponseWriter, items []embeddingItem) {
	resp := embeddingResponse{Object: "list", Model: "text-embedding-3-small", Data: items}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func TestOpenAIProvider_EmbedBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "text-embedding-3-small", body["model"])
		assert.Equal(t, float64(Dim), body["dimensions"])
		input, ok := body["input"].([]any)
		require.True(t, ok)
		assert.Equal(t, []any{"alpha", "beta"}, input)

		// Items returned out of order must be placed by index.
		writeEmbeddings(w, []embeddingItem{
			{Object: "embedding", Index: 1, Embedding: unitVec(1)},
			{Object: "embedding", Index: 0, Embedding: unitVec(0)},
		})
	}))
	defer srv.Close()

	p := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	vecs, err := p.EmbedBatch(context.Background(), []string{"alpha", "beta"})
	require.NoError(t, err)
	require.Len(t, vecs, 2)

	assert.InDelta(t, 1.0, float64(vecs[0][0]), 1e-6)
	assert.InDelta(t, 1.0, float64(vecs[1][1]), 1e-6)
	assert.Len(t, vecs[0], Dim)
}

func TestOpenAIProvider_RetriesThenSucceeds(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusInternalServerError)
			return
		}
		writeEmbeddings(w, []embeddingItem{
			{Object: "embedding", Index: 0, Embedding: unitVec(7)},
		})
	}))
	defer srv.Close()

	p := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	vecs, err := p.EmbedBatch(context.Background(), []string{"alpha"})
	require.NoError(t, err)
	require.Len(t, vecs, 1)
	assert.Equal(t, int32(2), requests.Load())
}

func TestOpenAIProvider_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	_, err := p.EmbedBatch(ctx, []string{"alpha"})
	require.Error(t, err)
}

func TestOpenAIProvider_InputValidation(t *testing.T) {
	p := NewOpenAI(OpenAIConfig{APIKey: "test-key"})

	_, err := p.EmbedBatch(context.Background(), nil)
	assert.Error(t, err)

	tooMany := make([]string, MaxBatchSize+1)
	_, err = p.EmbedBatch(context.Background(), tooMany)
	assert.Error(t, err)
}

func TestOpenAIProvider_RejectsWrongDimension(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEmbeddings(w, []embeddingItem{
			{Object: "embedding", Index: 0, Embedding: []float64{1, 2, 3}},
		})
	}))
	defer srv.Close()

	p := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	_, err := p.EmbedBatch(context.Background(), []string{"alpha"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension")
}
