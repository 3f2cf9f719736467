package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/pkg/models"
)

func TestCreateMemory(t *testing.T) {
	h := newAPIHarness(t)
	h.seedUser(t, "user-1", apiScopes)

	t.Run("create stores and embeds", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/memories", CreateMemoryRequest{
			Type:    "preference",
			Content: "Prefers green tea in the morning",
		}, "user-1")
		require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

		var result models.WriteMemoryResult
		decodeJSON(t, rec, &result)
		assert.True(t, result.Created)
		require.NotNil(t, result.Memory)
		assert.Equal(t, "Prefers green tea in the morning", result.Memory.Content)
		assert.Equal(t, "preference", string(result.Memory.Type))
		assert.Equal(t, "api", result.Memory.Source)
	})

	t.Run("duplicate content merges onto the existing row", func(t *testing.T) {
		first := h.authed(t, http.MethodPost, "/api/v1/memories", CreateMemoryRequest{
			Content: "Works from the Oslo office on Fridays",
		}, "user-1")
		require.Equal(t, http.StatusCreated, first.Code)
		var created models.WriteMemoryResult
		decodeJSON(t, first, &created)

		second := h.authed(t, http.MethodPost, "/api/v1/memories", CreateMemoryRequest{
			Content:  "Works from the Oslo office on Fridays",
			Metadata: map[string]any{"confirmed": true},
		}, "user-1")
		require.Equal(t, http.StatusOK, second.Code, "dedup reports the merge, not a creation")

		var merged models.WriteMemoryResult
		decodeJSON(t, second, &merged)
		assert.False(t, merged.Created)
		assert.Equal(t, created.Memory.ID, merged.Memory.ID)
	})

	t.Run("blank content is rejected", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/memories", CreateMemoryRequest{
			Content: "  ",
		}, "user-1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown type is a validation error", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/memories", CreateMemoryRequest{
			Type:    "gossip",
			Content: "Totally real fact",
		}, "user-1")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation_error", errorCode(t, rec))
	})
}

func TestListMemories(t *testing.T) {
	h := newAPIHarness(t)
	h.seedUser(t, "user-1", apiScopes)
	h.seedUser(t, "user-2", apiScopes)

	seed := []CreateMemoryRequest{
		{Type: "preference", Content: "Prefers green tea in the morning"},
		{Type: "preference", Content: "Dislikes early meetings"},
		{Type: "fact", Content: "Team standup is at 09:30"},
	}
	for _, req := range seed {
		rec := h.authed(t, http.MethodPost, "/api/v1/memories", req, "user-1")
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	t.Run("lists own memories", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/memories", nil, "user-1")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.MemoryListResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, 3, resp.TotalCount)
	})

	t.Run("type filter", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/memories?type=preference", nil, "user-1")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.MemoryListResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, 2, resp.TotalCount)
	})

	t.Run("substring filter is case-insensitive", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/memories?q=GREEN+TEA", nil, "user-1")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.MemoryListResponse
		decodeJSON(t, rec, &resp)
		require.Equal(t, 1, resp.TotalCount)
		assert.Contains(t, resp.Memories[0].Content, "green tea")
	})

	t.Run("other users see nothing", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/memories", nil, "user-2")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.MemoryListResponse
		decodeJSON(t, rec, &resp)
		assert.Zero(t, resp.TotalCount)
	})
}

func TestSearchMemories(t *testing.T) {
	h := newAPIHarness(t)
	h.seedUser(t, "user-1", apiScopes)

	rec := h.authed(t, http.MethodPost, "/api/v1/memories", CreateMemoryRequest{
		Type:    "preference",
		Content: "Prefers green tea in the morning",
	}, "user-1")
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("identical content is the top match", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/memories/search", SearchMemoriesRequest{
			Query: "Prefers green tea in the morning",
		}, "user-1")
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		var resp SearchMemoriesResponse
		decodeJSON(t, rec, &resp)
		require.Equal(t, 1, resp.Count)
		assert.Equal(t, "Prefers green tea in the morning", resp.Results[0].Content)
		assert.Greater(t, resp.Results[0].Score, 0.99)
	})

	t.Run("unrelated query finds nothing", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/memories/search", SearchMemoriesRequest{
			Query: "capital city of France",
		}, "user-1")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp SearchMemoriesResponse
		decodeJSON(t, rec, &resp)
		assert.Zero(t, resp.Count)
	})

	t.Run("type filter excludes the match", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/memories/search", SearchMemoriesRequest{
			Query: "Prefers green tea in the morning",
			Types: []string{"fact"},
		}, "user-1")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp SearchMemoriesResponse
		decodeJSON(t, rec, &resp)
		assert.Zero(t, resp.Count)
	})

	t.Run("blank query is rejected", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/memories/search", SearchMemoriesRequest{}, "user-1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateMemory(t *testing.T) {
	h := newAPIHarness(t)
	h.seedUser(t, "user-1", apiScopes)
	h.seedUser(t, "user-2", apiScopes)

	rec := h.authed(t, http.MethodPost, "/api/v1/memories", CreateMemoryRequest{
		Content: "Team standup is at 09:30",
	}, "user-1")
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.WriteMemoryResult
	decodeJSON(t, rec, &created)
	memoryID := created.Memory.ID

	t.Run("content change re-embeds", func(t *testing.T) {
		newContent := "Team standup moved to 10:00"
		rec := h.authed(t, http.MethodPatch, "/api/v1/memories/"+memoryID,
			models.UpdateMemoryRequest{Content: &newContent}, "user-1")
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		// The new content is now the similarity match, not the old one.
		search := h.authed(t, http.MethodPost, "/api/v1/memories/search", SearchMemoriesRequest{
			Query: "Team standup moved to 10:00",
		}, "user-1")
		require.Equal(t, http.StatusOK, search.Code)
		var results SearchMemoriesResponse
		decodeJSON(t, search, &results)
		require.Equal(t, 1, results.Count)
		assert.Equal(t, memoryID, results.Results[0].ID)
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		rec := h.authed(t, http.MethodPatch, "/api/v1/memories/"+memoryID,
			models.UpdateMemoryRequest{}, "user-1")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", errorCode(t, rec))
	})

	t.Run("foreign memory is not found", func(t *testing.T) {
		other := "different content"
		rec := h.authed(t, http.MethodPatch, "/api/v1/memories/"+memoryID,
			models.UpdateMemoryRequest{Content: &other}, "user-2")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteMemory(t *testing.T) {
	h := newAPIHarness(t)
	h.seedUser(t, "user-1", apiScopes)

	rec := h.authed(t, http.MethodPost, "/api/v1/memories", CreateMemoryRequest{
		Content: "Old parking spot is 42B",
	}, "user-1")
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.WriteMemoryResult
	decodeJSON(t, rec, &created)
	memoryID := created.Memory.ID

	t.Run("delete removes it from listings", func(t *testing.T) {
		rec := h.authed(t, http.MethodDelete, "/api/v1/memories/"+memoryID, nil, "user-1")
		require.Equal(t, http.StatusNoContent, rec.Code)

		list := h.authed(t, http.MethodGet, "/api/v1/memories", nil, "user-1")
		require.Equal(t, http.StatusOK, list.Code)
		var resp models.MemoryListResponse
		decodeJSON(t, list, &resp)
		assert.Zero(t, resp.TotalCount)
	})

	t.Run("deleting again is not found", func(t *testing.T) {
		rec := h.authed(t, http.MethodDelete, "/api/v1/memories/"+memoryID, nil, "user-1")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMemoryEvents(t *testing.T) {
	h := newAPIHarness(t)
	h.seedUser(t, "user-1", apiScopes)
	h.seedUser(t, "user-2", apiScopes)

	rec := h.authed(t, http.MethodPost, "/api/v1/memories", CreateMemoryRequest{
		Content: "Badge code is 9999",
	}, "user-1")
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.WriteMemoryResult
	decodeJSON(t, rec, &created)
	memoryID := created.Memory.ID

	// Merge a duplicate, then delete: the trail should read
	// created, updated, deleted in order.
	rec = h.authed(t, http.MethodPost, "/api/v1/memories", CreateMemoryRequest{
		Content: "Badge code is 9999",
	}, "user-1")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = h.authed(t, http.MethodDelete, "/api/v1/memories/"+memoryID, nil, "user-1")
	require.Equal(t, http.StatusNoContent, rec.Code)

	t.Run("trail survives deletion", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/memories/"+memoryID+"/events", nil, "user-1")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp MemoryEventsResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, memoryID, resp.MemoryID)
		require.Len(t, resp.Events, 3)
		assert.Equal(t, "created", string(resp.Events[0].EventType))
		assert.Equal(t, "updated", string(resp.Events[1].EventType))
		assert.Equal(t, "deleted", string(resp.Events[2].EventType))
	})

	t.Run("foreign memory is not found", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/memories/"+memoryID+"/events", nil, "user-2")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
