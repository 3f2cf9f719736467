package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/pkg/services"
	testdb "github.com/valet-assistant/valet/test/database"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(TurnCompletedPayload{
			Type:      EventTypeTurnCompleted,
			SessionID: "abc-123",
			Status:    "completed",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeTurnCompleted)
		assert.Contains(t, result, "abc-123")
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(PolicyDeniedPayload{
			Type:      EventTypePolicyDenied,
			SessionID: "abc-123",
			ToolName:  "send_email",
			ErrorCode: "POLICY_DENIED",
			Reason:    strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(PolicyDeniedPayload{
			Type:      EventTypePolicyDenied,
			SessionID: "sess-789",
			Reason:    strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypePolicyDenied)
		assert.Contains(t, result, "sess-789")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(TurnCompletedPayload{
			Type:      EventTypeTurnCompleted,
			SessionID: "abc-123",
			Status:    "completed",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, float64(42), m["db_event_id"])
		assert.Equal(t, EventTypeTurnCompleted, m["type"])
	})

	t.Run("keeps db_event_id in truncated envelope", func(t *testing.T) {
		payload, _ := json.Marshal(PolicyDeniedPayload{
			Type:      EventTypePolicyDenied,
			SessionID: "sess-1",
			Reason:    strings.Repeat("y", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 7)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, float64(7), m["db_event_id"])
		assert.Equal(t, true, m["truncated"])
		assert.Equal(t, "sess-1", m["session_id"])
		assert.NotContains(t, result, "yyyy")
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := injectDBEventIDAndTruncate([]byte("not json"), 1)
		require.Error(t, err)
	})
}

// TestEventPublisher_PersistAndCatchUp verifies the durable side of
// publishing: one row per event on the session channel, payload type
// stamped by the typed methods, and the id cursor working through
// EventService.GetEventsSince.
func TestEventPublisher_PersistAndCatchUp(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	publisher := NewEventPublisher(client.DB())
	eventService := services.NewEventService(client.Client)

	sessionID := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	// Callers never set Type themselves; the typed methods stamp it.
	require.NoError(t, publisher.PublishConfirmationCreated(ctx, ConfirmationCreatedPayload{
		SessionID:      sessionID,
		ConfirmationID: "conf-1",
		ToolName:       "send_email",
		RiskScore:      60,
		ReasonCode:     "EXTERNAL_COMMUNICATION",
		Timestamp:      now,
	}))
	require.NoError(t, publisher.PublishConfirmationResolved(ctx, ConfirmationResolvedPayload{
		SessionID:      sessionID,
		ConfirmationID: "conf-1",
		ToolName:       "send_email",
		Outcome:        "accepted",
		Timestamp:      now,
	}))
	require.NoError(t, publisher.PublishPolicyDenied(ctx, PolicyDeniedPayload{
		SessionID: sessionID,
		ToolName:  "delete_file",
		ErrorCode: "RATE_LIMITED",
		Reason:    "tool call rate limit exceeded",
		Timestamp: now,
	}))
	require.NoError(t, publisher.PublishTurnCompleted(ctx, TurnCompletedPayload{
		SessionID: sessionID,
		TraceID:   uuid.New().String(),
		Status:    "completed",
		ToolName:  "send_email",
		LatencyMs: 42,
		Timestamp: now,
	}))

	channel := SessionChannel(sessionID)
	resp, err := eventService.GetEventsSince(ctx, channel, 0, 50)
	require.NoError(t, err)
	require.Len(t, resp.Events, 4)

	wantTypes := []string{
		EventTypeConfirmationCreated,
		EventTypeConfirmationResolved,
		EventTypePolicyDenied,
		EventTypeTurnCompleted,
	}
	for i, evt := range resp.Events {
		assert.Equal(t, wantTypes[i], evt.Payload["type"])
		assert.Equal(t, sessionID, evt.SessionID)
		assert.Equal(t, channel, evt.Channel)
	}
	assert.Equal(t, resp.Events[3].ID, resp.LastID)

	// Resuming from the cursor replays nothing.
	empty, err := eventService.GetEventsSince(ctx, channel, resp.LastID, 50)
	require.NoError(t, err)
	assert.Empty(t, empty.Events)
	assert.Equal(t, resp.LastID, empty.LastID)

	// The global channel is NOTIFY-only — no durable rows.
	global, err := eventService.GetEventsSince(ctx, GlobalEventsChannel, 0, 50)
	require.NoError(t, err)
	assert.Empty(t, global.Events)
}

// TestEventPublisher_OversizedPayloadStoredWhole verifies that the
// NOTIFY size cap never loses data: the full payload is in the row even
// when the broadcast copy would have been truncated.
func TestEventPublisher_OversizedPayloadStoredWhole(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	publisher := NewEventPublisher(client.DB())
	eventService := services.NewEventService(client.Client)

	sessionID := uuid.New().String()
	longReason := strings.Repeat("z", 9000)

	require.NoError(t, publisher.PublishPolicyDenied(ctx, PolicyDeniedPayload{
		SessionID: sessionID,
		ToolName:  "delete_file",
		ErrorCode: "POLICY_DENIED",
		Reason:    longReason,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}))

	resp, err := eventService.GetEventsSince(ctx, SessionChannel(sessionID), 0, 10)
	require.NoError(t, err)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, longReason, resp.Events[0].Payload["reason"])
	assert.NotContains(t, resp.Events[0].Payload, "truncated")
}
