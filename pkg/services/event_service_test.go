package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valet-assistant/valet/pkg/models"
)

func TestEventService_CreateEvent(t *testing.T) {
	client := newTestDB(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")

	t.Run("appends a session event", func(t *testing.T) {
		evt, err := service.CreateEvent(ctx, models.CreateEventRequest{
			SessionID: "sess-1",
			Channel:   "session:sess-1",
			Payload:   map[string]any{"type": "turn.completed", "trace_id": "tr-1"},
		})
		require.NoError(t, err)
		assert.Equal(t, "session:sess-1", evt.Channel)
		assert.Equal(t, "turn.completed", evt.Payload["type"])
		assert.Positive(t, evt.ID)
	})

	t.Run("appends a global event without a session", func(t *testing.T) {
		evt, err := service.CreateEvent(ctx, models.CreateEventRequest{
			Channel: "global",
			Payload: map[string]any{"type": "policy.denied"},
		})
		require.NoError(t, err)
		assert.Empty(t, evt.SessionID)
	})

	t.Run("requires a channel", func(t *testing.T) {
		_, err := service.CreateEvent(ctx, models.CreateEventRequest{
			Payload: map[string]any{"type": "turn.completed"},
		})
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := newTestDB(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")

	ids := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		evt, err := service.CreateEvent(ctx, models.CreateEventRequest{
			SessionID: "sess-1",
			Channel:   "session:sess-1",
			Payload:   map[string]any{"seq": i},
		})
		require.NoError(t, err)
		ids = append(ids, evt.ID)
	}
	_, err := service.CreateEvent(ctx, models.CreateEventRequest{
		Channel: "global",
		Payload: map[string]any{"seq": 99},
	})
	require.NoError(t, err)

	t.Run("returns events after the cursor in order", func(t *testing.T) {
		resp, err := service.GetEventsSince(ctx, "session:sess-1", ids[1], 0)
		require.NoError(t, err)
		require.Len(t, resp.Events, 3)
		assert.Equal(t, ids[2], resp.Events[0].ID)
		assert.Equal(t, ids[4], resp.Events[2].ID)
		assert.Equal(t, ids[4], resp.LastID)
	})

	t.Run("cursor zero replays the whole channel", func(t *testing.T) {
		resp, err := service.GetEventsSince(ctx, "session:sess-1", 0, 0)
		require.NoError(t, err)
		assert.Len(t, resp.Events, 5)
	})

	t.Run("limit pages the replay", func(t *testing.T) {
		resp, err := service.GetEventsSince(ctx, "session:sess-1", 0, 2)
		require.NoError(t, err)
		require.Len(t, resp.Events, 2)
		assert.Equal(t, ids[1], resp.LastID)

		next, err := service.GetEventsSince(ctx, "session:sess-1", resp.LastID, 2)
		require.NoError(t, err)
		require.Len(t, next.Events, 2)
		assert.Equal(t, ids[2], next.Events[0].ID)
	})

	t.Run("empty channel keeps the cursor", func(t *testing.T) {
		resp, err := service.GetEventsSince(ctx, "session:sess-void", 7, 0)
		require.NoError(t, err)
		assert.Empty(t, resp.Events)
		assert.Equal(t, 7, resp.LastID)
	})
}

func TestEventService_Cleanup(t *testing.T) {
	client := newTestDB(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")
	createTestSession(t, client.Client, "user-1", "sess-2")

	seed := func(sessionID string, n int) {
		for i := 0; i < n; i++ {
			_, err := service.CreateEvent(ctx, models.CreateEventRequest{
				SessionID: sessionID,
				Channel:   "session:" + sessionID,
				Payload:   map[string]any{"seq": i},
			})
			require.NoError(t, err)
		}
	}
	seed("sess-1", 3)
	seed("sess-2", 2)

	t.Run("session cleanup removes only that session", func(t *testing.T) {
		count, err := service.CleanupSessionEvents(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		remaining, err := service.GetEventsSince(ctx, "session:sess-2", 0, 0)
		require.NoError(t, err)
		assert.Len(t, remaining.Events, 2)
	})

	t.Run("retention cleanup removes aged rows", func(t *testing.T) {
		_, err := client.DB().Exec(
			"UPDATE events SET created_at = $1 WHERE session_id = $2",
			time.Now().Add(-20*24*time.Hour), "sess-2",
		)
		require.NoError(t, err)

		count, err := service.CleanupOrphanedEvents(ctx, 14)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
