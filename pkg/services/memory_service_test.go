package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/memory"
	"github.com/valet-assistant/valet/ent/memoryevent"
	"github.com/valet-assistant/valet/pkg/embeddings"
	"github.com/valet-assistant/valet/pkg/models"
)

// offlineEmbedder simulates an unreachable embeddings provider.
type offlineEmbedder struct{}

func (offlineEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, errors.New("connection refused")
}

func (offlineEmbedder) EmbedBatch(context.Context, []string) ([][]float32, error) {
	return nil, errors.New("connection refused")
}

func (offlineEmbedder) Dimensions() int { return embeddings.Dim }
func (offlineEmbedder) Name() string    { return "offline" }

func memoryEventTypes(t *testing.T, service *MemoryService, memoryID string) []string {
	t.Helper()
	rows, err := service.client.MemoryEvent.Query().
		Where(memoryevent.MemoryIDEQ(memoryID)).
		Order(ent.Asc(memoryevent.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	types := make([]string, 0, len(rows))
	for _, row := range rows {
		types = append(types, string(row.EventType))
	}
	return types
}

func TestMemoryService_WriteMemory(t *testing.T) {
	client := newTestDB(t)
	service := NewMemoryService(client.Client, client.DB(), embeddings.NewLocal())
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestUser(t, client.Client, "user-2")

	t.Run("creates a new memory with an audit event", func(t *testing.T) {
		result, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:  "user-1",
			Type:    "preference",
			Content: "prefers meetings before noon",
			Source:  "agent",
			Metadata: map[string]any{
				"topic": "scheduling",
			},
		})
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, memory.TypePreference, result.Memory.Type)
		assert.Equal(t, "prefers meetings before noon", result.Memory.Content)
		assert.Equal(t, HashContent("prefers meetings before noon"), result.Memory.ContentHash)
		assert.Equal(t, "agent", result.Memory.Source)
		assert.False(t, result.Memory.IsDeleted)
		assert.Nil(t, result.Memory.ExpiresAt)

		assert.Equal(t, []string{"created"}, memoryEventTypes(t, service, result.Memory.ID))
	})

	t.Run("defaults type to fact", func(t *testing.T) {
		result, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:  "user-1",
			Content: "the office wifi password changed last week",
		})
		require.NoError(t, err)
		assert.Equal(t, memory.TypeFact, result.Memory.Type)
	})

	t.Run("redacts secrets before hashing", func(t *testing.T) {
		result, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:  "user-1",
			Content: "deploy key is sk-abcdefghij0123456789",
		})
		require.NoError(t, err)
		assert.Equal(t, "deploy key is [REDACTED KEY]", result.Memory.Content)
		assert.Equal(t, HashContent("deploy key is [REDACTED KEY]"), result.Memory.ContentHash)
	})

	t.Run("duplicate content merges onto the existing row", func(t *testing.T) {
		first, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:   "user-1",
			Content:  "works from the Hamburg office on fridays",
			Metadata: map[string]any{"confidence": "low", "origin": "chat"},
		})
		require.NoError(t, err)
		require.True(t, first.Created)

		second, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:   "user-1",
			Content:  "works from the Hamburg office on fridays",
			Metadata: map[string]any{"confidence": "high"},
			TTL:      24 * time.Hour,
		})
		require.NoError(t, err)
		assert.False(t, second.Created)
		assert.Equal(t, first.Memory.ID, second.Memory.ID)
		assert.Equal(t, "high", second.Memory.Metadata["confidence"])
		assert.Equal(t, "chat", second.Memory.Metadata["origin"])
		require.NotNil(t, second.Memory.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), *second.Memory.ExpiresAt, 5*time.Second)

		count, err := client.Memory.Query().
			Where(memory.UserIDEQ("user-1"), memory.ContentHashEQ(first.Memory.ContentHash)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		assert.Equal(t, []string{"created", "updated"}, memoryEventTypes(t, service, first.Memory.ID))
	})

	t.Run("same content for another user is a separate row", func(t *testing.T) {
		first, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:  "user-1",
			Content: "allergic to peanuts",
		})
		require.NoError(t, err)
		second, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:  "user-2",
			Content: "allergic to peanuts",
		})
		require.NoError(t, err)
		assert.True(t, second.Created)
		assert.NotEqual(t, first.Memory.ID, second.Memory.ID)
	})

	t.Run("soft delete frees the dedup slot", func(t *testing.T) {
		first, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:  "user-1",
			Content: "car is parked in garage level two",
		})
		require.NoError(t, err)
		require.NoError(t, service.DeleteMemory(ctx, "user-1", first.Memory.ID))

		second, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:  "user-1",
			Content: "car is parked in garage level two",
		})
		require.NoError(t, err)
		assert.True(t, second.Created)
		assert.NotEqual(t, first.Memory.ID, second.Memory.ID)
	})

	t.Run("surfaces embedding outage", func(t *testing.T) {
		offline := NewMemoryService(client.Client, client.DB(), offlineEmbedder{})
		_, err := offline.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:  "user-1",
			Content: "this write cannot be embedded",
		})
		assert.ErrorIs(t, err, ErrEmbeddingUnavailable)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:  "user-1",
			Type:    "rumor",
			Content: "some content",
		})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "type", validationErr.Field)
	})

	t.Run("requires content", func(t *testing.T) {
		_, err := service.WriteMemory(ctx, models.WriteMemoryRequest{UserID: "user-1"})
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestMemoryService_RetrieveMemories(t *testing.T) {
	client := newTestDB(t)
	service := NewMemoryService(client.Client, client.DB(), embeddings.NewLocal())
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestUser(t, client.Client, "user-2")

	seed := func(t *testing.T, userID, memType, content string, metadata map[string]any) *models.WriteMemoryResult {
		t.Helper()
		result, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:   userID,
			Type:     memType,
			Content:  content,
			Metadata: metadata,
		})
		require.NoError(t, err)
		return result
	}

	seed(t, "user-1", "preference", "favorite color is blue", nil)
	seed(t, "user-1", "fact", "lives in Berlin near the river", nil)
	seed(t, "user-1", "task", "send quarterly report to finance", map[string]any{"project": "atlas"})
	seed(t, "user-2", "preference", "favorite color is blue", nil)

	t.Run("exact content scores one and excludes other users", func(t *testing.T) {
		results, err := service.RetrieveMemories(ctx, models.RetrieveMemoryRequest{
			UserID: "user-1",
			Query:  "favorite color is blue",
		})
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "favorite color is blue", results[0].Content)
		assert.InDelta(t, 1.0, results[0].Score, 0.01)
		for _, result := range results {
			assert.Equal(t, "user-1", result.UserID)
		}
	})

	t.Run("scores come back highest first and above the floor", func(t *testing.T) {
		results, err := service.RetrieveMemories(ctx, models.RetrieveMemoryRequest{
			UserID:   "user-1",
			Query:    "what is the favorite color",
			MinScore: 0.05,
		})
		require.NoError(t, err)
		require.NotEmpty(t, results)
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
		}
		for _, result := range results {
			assert.GreaterOrEqual(t, result.Score, 0.05)
		}
		assert.Contains(t, results[0].Content, "favorite color")
	})

	t.Run("high floor drops dissimilar rows", func(t *testing.T) {
		results, err := service.RetrieveMemories(ctx, models.RetrieveMemoryRequest{
			UserID:   "user-1",
			Query:    "completely unrelated zebra telescope",
			MinScore: 0.95,
		})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("type filter narrows candidates", func(t *testing.T) {
		results, err := service.RetrieveMemories(ctx, models.RetrieveMemoryRequest{
			UserID:   "user-1",
			Query:    "favorite color is blue",
			Types:    []string{"fact", "task"},
			MinScore: 0.05,
		})
		require.NoError(t, err)
		for _, result := range results {
			assert.NotEqual(t, memory.TypePreference, result.Type)
		}
	})

	t.Run("metadata filter narrows candidates", func(t *testing.T) {
		results, err := service.RetrieveMemories(ctx, models.RetrieveMemoryRequest{
			UserID:         "user-1",
			Query:          "send quarterly report to finance",
			MetadataFilter: map[string]any{"project": "atlas"},
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "send quarterly report to finance", results[0].Content)

		none, err := service.RetrieveMemories(ctx, models.RetrieveMemoryRequest{
			UserID:         "user-1",
			Query:          "send quarterly report to finance",
			MetadataFilter: map[string]any{"project": "zephyr"},
		})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("expired rows are invisible", func(t *testing.T) {
		written := seed(t, "user-1", "note", "temporary meeting code 4921", nil)
		_, err := client.Memory.UpdateOneID(written.Memory.ID).
			SetExpiresAt(time.Now().Add(-time.Minute)).
			Save(ctx)
		require.NoError(t, err)

		results, err := service.RetrieveMemories(ctx, models.RetrieveMemoryRequest{
			UserID: "user-1",
			Query:  "temporary meeting code 4921",
		})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("each hit leaves a retrieval event", func(t *testing.T) {
		written := seed(t, "user-1", "fact", "team standup moved to 9:30", nil)
		results, err := service.RetrieveMemories(ctx, models.RetrieveMemoryRequest{
			UserID: "user-1",
			Query:  "team standup moved to 9:30",
		})
		require.NoError(t, err)
		require.NotEmpty(t, results)

		types := memoryEventTypes(t, service, written.Memory.ID)
		assert.Contains(t, types, "retrieved")
	})

	t.Run("negative floor disables the similarity cutoff", func(t *testing.T) {
		seed(t, "user-1", "fact", "Alex Molina", map[string]any{"key": "manager name"})

		results, err := service.RetrieveMemories(ctx, models.RetrieveMemoryRequest{
			UserID:         "user-1",
			Query:          "manager name",
			MinScore:       -1,
			MetadataFilter: map[string]any{"key": "manager name"},
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Alex Molina", results[0].Content)
	})

	t.Run("embedding outage degrades to empty", func(t *testing.T) {
		offline := NewMemoryService(client.Client, client.DB(), offlineEmbedder{})
		results, err := offline.RetrieveMemories(ctx, models.RetrieveMemoryRequest{
			UserID: "user-1",
			Query:  "favorite color is blue",
		})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("requires query", func(t *testing.T) {
		_, err := service.RetrieveMemories(ctx, models.RetrieveMemoryRequest{UserID: "user-1"})
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestMemoryService_UpdateMemory(t *testing.T) {
	client := newTestDB(t)
	service := NewMemoryService(client.Client, client.DB(), embeddings.NewLocal())
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestUser(t, client.Client, "user-2")

	t.Run("content change re-hashes and records an event", func(t *testing.T) {
		written, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:  "user-1",
			Content: "dentist appointment on tuesday",
		})
		require.NoError(t, err)

		newContent := "dentist appointment moved to thursday"
		updated, err := service.UpdateMemory(ctx, "user-1", written.Memory.ID, models.UpdateMemoryRequest{
			Content: &newContent,
		})
		require.NoError(t, err)
		assert.Equal(t, newContent, updated.Content)
		assert.Equal(t, HashContent(newContent), updated.ContentHash)
		assert.NotEqual(t, written.Memory.ContentHash, updated.ContentHash)

		assert.Equal(t, []string{"created", "updated"}, memoryEventTypes(t, service, written.Memory.ID))

		// The updated row must be findable under its new content.
		results, err := service.RetrieveMemories(ctx, models.RetrieveMemoryRequest{
			UserID: "user-1",
			Query:  newContent,
		})
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, written.Memory.ID, results[0].ID)
	})

	t.Run("metadata patch merges keys", func(t *testing.T) {
		written, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:   "user-1",
			Content:  "gym membership renews in march",
			Metadata: map[string]any{"source_chat": "billing", "checked": "no"},
		})
		require.NoError(t, err)

		updated, err := service.UpdateMemory(ctx, "user-1", written.Memory.ID, models.UpdateMemoryRequest{
			Metadata: map[string]any{"checked": "yes"},
		})
		require.NoError(t, err)
		assert.Equal(t, "yes", updated.Metadata["checked"])
		assert.Equal(t, "billing", updated.Metadata["source_chat"])
	})

	t.Run("type patch is validated", func(t *testing.T) {
		written, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:  "user-1",
			Content: "passport expires next year",
		})
		require.NoError(t, err)

		newType := "task"
		updated, err := service.UpdateMemory(ctx, "user-1", written.Memory.ID, models.UpdateMemoryRequest{
			Type: &newType,
		})
		require.NoError(t, err)
		assert.Equal(t, memory.TypeTask, updated.Type)

		badType := "rumor"
		_, err = service.UpdateMemory(ctx, "user-1", written.Memory.ID, models.UpdateMemoryRequest{
			Type: &badType,
		})
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("content collision with another live row", func(t *testing.T) {
		_, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:  "user-1",
			Content: "keeps spare keys with the neighbor",
		})
		require.NoError(t, err)
		other, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:  "user-1",
			Content: "spare keys location unknown",
		})
		require.NoError(t, err)

		collide := "keeps spare keys with the neighbor"
		_, err = service.UpdateMemory(ctx, "user-1", other.Memory.ID, models.UpdateMemoryRequest{
			Content: &collide,
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("foreign user cannot update", func(t *testing.T) {
		written, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:  "user-1",
			Content: "birthday is in october",
		})
		require.NoError(t, err)

		newContent := "birthday is in november"
		_, err = service.UpdateMemory(ctx, "user-2", written.Memory.ID, models.UpdateMemoryRequest{
			Content: &newContent,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryService_DeleteMemory(t *testing.T) {
	client := newTestDB(t)
	service := NewMemoryService(client.Client, client.DB(), embeddings.NewLocal())
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")

	written, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
		UserID:  "user-1",
		Content: "wifi guest network is on the whiteboard",
	})
	require.NoError(t, err)

	t.Run("soft delete hides the row", func(t *testing.T) {
		require.NoError(t, service.DeleteMemory(ctx, "user-1", written.Memory.ID))

		_, err := service.GetMemory(ctx, "user-1", written.Memory.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		results, err := service.RetrieveMemories(ctx, models.RetrieveMemoryRequest{
			UserID: "user-1",
			Query:  "wifi guest network is on the whiteboard",
		})
		require.NoError(t, err)
		assert.Empty(t, results)

		assert.Equal(t, []string{"created", "deleted"}, memoryEventTypes(t, service, written.Memory.ID))
	})

	t.Run("deleted rows remain listable for audit", func(t *testing.T) {
		listed, err := service.ListMemories(ctx, "user-1", models.MemoryFilters{IncludeDeleted: true})
		require.NoError(t, err)
		require.Len(t, listed.Memories, 1)
		assert.True(t, listed.Memories[0].IsDeleted)

		live, err := service.ListMemories(ctx, "user-1", models.MemoryFilters{})
		require.NoError(t, err)
		assert.Empty(t, live.Memories)
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		err := service.DeleteMemory(ctx, "user-1", written.Memory.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryService_ExpireMemories(t *testing.T) {
	client := newTestDB(t)
	service := NewMemoryService(client.Client, client.DB(), embeddings.NewLocal())
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")

	lapsed, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
		UserID:  "user-1",
		Content: "parking spot reserved until friday",
		TTL:     time.Hour,
	})
	require.NoError(t, err)
	_, err = client.Memory.UpdateOneID(lapsed.Memory.ID).
		SetExpiresAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	fresh, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
		UserID:  "user-1",
		Content: "badge renewal due next quarter",
		TTL:     time.Hour,
	})
	require.NoError(t, err)

	count, err := service.ExpireMemories(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	swept, err := client.Memory.Get(ctx, lapsed.Memory.ID)
	require.NoError(t, err)
	assert.True(t, swept.IsDeleted)
	assert.Contains(t, memoryEventTypes(t, service, lapsed.Memory.ID), "expired")

	kept, err := client.Memory.Get(ctx, fresh.Memory.ID)
	require.NoError(t, err)
	assert.False(t, kept.IsDeleted)

	again, err := service.ExpireMemories(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, again)
}

func TestMemoryService_PurgeDeleted(t *testing.T) {
	client := newTestDB(t)
	service := NewMemoryService(client.Client, client.DB(), embeddings.NewLocal())
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")

	old, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
		UserID:  "user-1",
		Content: "stale note about the old building",
	})
	require.NoError(t, err)
	require.NoError(t, service.DeleteMemory(ctx, "user-1", old.Memory.ID))
	_, err = client.Memory.UpdateOneID(old.Memory.ID).
		SetUpdatedAt(time.Now().Add(-10 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	recent, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
		UserID:  "user-1",
		Content: "recently deleted note",
	})
	require.NoError(t, err)
	require.NoError(t, service.DeleteMemory(ctx, "user-1", recent.Memory.ID))

	count, err := service.PurgeDeleted(ctx, 7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	exists, err := client.Memory.Query().Where(memory.IDEQ(old.Memory.ID)).Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	// Audit events go with the purged row.
	assert.Empty(t, memoryEventTypes(t, service, old.Memory.ID))

	kept, err := client.Memory.Query().Where(memory.IDEQ(recent.Memory.ID)).Exist(ctx)
	require.NoError(t, err)
	assert.True(t, kept)
}

func TestMemoryService_ListMemories(t *testing.T) {
	client := newTestDB(t)
	service := NewMemoryService(client.Client, client.DB(), embeddings.NewLocal())
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")

	contents := []struct {
		memType string
		content string
	}{
		{"fact", "first stored fact"},
		{"fact", "second stored fact"},
		{"preference", "prefers dark roast coffee"},
		{"task", "book travel for the offsite"},
	}
	for _, row := range contents {
		_, err := service.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:  "user-1",
			Type:    row.memType,
			Content: row.content,
		})
		require.NoError(t, err)
	}

	t.Run("type filter", func(t *testing.T) {
		listed, err := service.ListMemories(ctx, "user-1", models.MemoryFilters{Type: "fact"})
		require.NoError(t, err)
		assert.Equal(t, 2, listed.TotalCount)
		assert.Len(t, listed.Memories, 2)
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := service.ListMemories(ctx, "user-1", models.MemoryFilters{Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, 4, page.TotalCount)
		assert.Len(t, page.Memories, 3)

		rest, err := service.ListMemories(ctx, "user-1", models.MemoryFilters{Limit: 3, Offset: 3})
		require.NoError(t, err)
		assert.Len(t, rest.Memories, 1)
	})
}
