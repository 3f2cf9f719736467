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

	"github.com/valet-assistant/valet/pkg/database"
	"github.com/valet-assistant/valet/pkg/services"
	testdb "github.com/valet-assistant/valet/test/database"
	"github.com/valet-assistant/valet/test/util"
)

// notifyTestEnv wires a real publisher and listener against a real
// PostgreSQL database (testcontainers locally, service container in CI).
type notifyTestEnv struct {
	client       *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	listener     *NotifyListener
	sessionID    string
	channel      string // session:<sessionID>
}

func setupNotifyTest(t *testing.T) *notifyTestEnv {
	t.Helper()

	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// The listener needs the base connection string (no schema
	// search_path): LISTEN/NOTIFY is database-level, not schema-level,
	// so it hears the publisher's NOTIFY from the per-test schema.
	listener := NewNotifyListener(util.GetBaseConnectionString(t))
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })

	sessionID := uuid.New().String()
	return &notifyTestEnv{
		client:       client,
		publisher:    NewEventPublisher(client.DB()),
		eventService: services.NewEventService(client.Client),
		listener:     listener,
		sessionID:    sessionID,
		channel:      SessionChannel(sessionID),
	}
}

// waitForPayload blocks until a payload arrives or the timeout expires.
func waitForPayload(t *testing.T, ch <-chan []byte, timeout time.Duration) map[string]any {
	t.Helper()
	select {
	case raw := <-ch:
		var msg map[string]any
		require.NoError(t, json.Unmarshal(raw, &msg))
		return msg
	case <-time.After(timeout):
		t.Fatal("timed out waiting for NOTIFY payload")
		return nil
	}
}

func TestIntegration_PublishDeliversToSessionSubscriber(t *testing.T) {
	env := setupNotifyTest(t)
	ctx := context.Background()

	got := make(chan []byte, 8)
	require.NoError(t, env.listener.Subscribe(ctx, env.channel, func(_ string, payload []byte) {
		got <- payload
	}))

	require.NoError(t, env.publisher.PublishTurnCompleted(ctx, TurnCompletedPayload{
		SessionID: env.sessionID,
		TraceID:   uuid.New().String(),
		Status:    "completed",
		ToolName:  "get_weather_info",
		LatencyMs: 17,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}))

	msg := waitForPayload(t, got, 5*time.Second)
	assert.Equal(t, EventTypeTurnCompleted, msg["type"])
	assert.Equal(t, env.sessionID, msg["session_id"])
	assert.Equal(t, "completed", msg["status"])

	// The NOTIFY payload carries the row id so consumers can resume
	// catch-up from it.
	dbEventID, ok := msg["db_event_id"].(float64)
	require.True(t, ok, "db_event_id missing from NOTIFY payload")

	resp, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 10)
	require.NoError(t, err)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, resp.Events[0].ID, int(dbEventID))
}

func TestIntegration_GlobalChannelMirrorsAllSessions(t *testing.T) {
	env := setupNotifyTest(t)
	ctx := context.Background()

	got := make(chan []byte, 8)
	require.NoError(t, env.listener.Subscribe(ctx, GlobalEventsChannel, func(_ string, payload []byte) {
		got <- payload
	}))

	otherSession := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	require.NoError(t, env.publisher.PublishTurnCompleted(ctx, TurnCompletedPayload{
		SessionID: env.sessionID, Status: "completed", Timestamp: now,
	}))
	require.NoError(t, env.publisher.PublishPolicyDenied(ctx, PolicyDeniedPayload{
		SessionID: otherSession, ToolName: "delete_file", ErrorCode: "POLICY_DENIED", Timestamp: now,
	}))

	first := waitForPayload(t, got, 5*time.Second)
	second := waitForPayload(t, got, 5*time.Second)

	assert.Equal(t, EventTypeTurnCompleted, first["type"])
	assert.Equal(t, env.sessionID, first["session_id"])
	assert.Equal(t, EventTypePolicyDenied, second["type"])
	assert.Equal(t, otherSession, second["session_id"])

	// The mirror is transient: no db_event_id and no durable rows.
	assert.NotContains(t, first, "db_event_id")
	global, err := env.eventService.GetEventsSince(ctx, GlobalEventsChannel, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, global.Events)
}

func TestIntegration_TruncatedNotifyFallsBackToRow(t *testing.T) {
	env := setupNotifyTest(t)
	ctx := context.Background()

	got := make(chan []byte, 8)
	require.NoError(t, env.listener.Subscribe(ctx, env.channel, func(_ string, payload []byte) {
		got <- payload
	}))

	longReason := strings.Repeat("r", 9000)
	require.NoError(t, env.publisher.PublishPolicyDenied(ctx, PolicyDeniedPayload{
		SessionID: env.sessionID,
		ToolName:  "delete_file",
		ErrorCode: "POLICY_DENIED",
		Reason:    longReason,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}))

	// Oversized payloads arrive as a routing envelope.
	msg := waitForPayload(t, got, 5*time.Second)
	assert.Equal(t, EventTypePolicyDenied, msg["type"])
	assert.Equal(t, env.sessionID, msg["session_id"])
	assert.Equal(t, true, msg["truncated"])
	assert.NotContains(t, msg, "reason")

	dbEventID, ok := msg["db_event_id"].(float64)
	require.True(t, ok)

	// The envelope's id points at the row holding the full payload.
	resp, err := env.eventService.GetEventsSince(ctx, env.channel, int(dbEventID)-1, 10)
	require.NoError(t, err)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, longReason, resp.Events[0].Payload["reason"])
}

func TestIntegration_UnsubscribeStopsDelivery(t *testing.T) {
	env := setupNotifyTest(t)
	ctx := context.Background()

	sessionGot := make(chan []byte, 8)
	require.NoError(t, env.listener.Subscribe(ctx, env.channel, func(_ string, payload []byte) {
		sessionGot <- payload
	}))

	sentinelSession := uuid.New().String()
	sentinelGot := make(chan []byte, 8)
	require.NoError(t, env.listener.Subscribe(ctx, SessionChannel(sentinelSession), func(_ string, payload []byte) {
		sentinelGot <- payload
	}))

	require.NoError(t, env.listener.Unsubscribe(ctx, env.channel))

	now := time.Now().UTC().Format(time.RFC3339Nano)
	require.NoError(t, env.publisher.PublishTurnCompleted(ctx, TurnCompletedPayload{
		SessionID: env.sessionID, Status: "completed", Timestamp: now,
	}))
	require.NoError(t, env.publisher.PublishTurnCompleted(ctx, TurnCompletedPayload{
		SessionID: sentinelSession, Status: "completed", Timestamp: now,
	}))

	// Notifications on one connection arrive in commit order, so once
	// the sentinel lands the unsubscribed channel's would have too.
	waitForPayload(t, sentinelGot, 5*time.Second)
	assert.Empty(t, sessionGot)
}

func TestIntegration_MultipleHandlersPerChannel(t *testing.T) {
	env := setupNotifyTest(t)
	ctx := context.Background()

	first := make(chan []byte, 8)
	second := make(chan []byte, 8)
	require.NoError(t, env.listener.Subscribe(ctx, env.channel, func(_ string, payload []byte) {
		first <- payload
	}))
	require.NoError(t, env.listener.Subscribe(ctx, env.channel, func(_ string, payload []byte) {
		second <- payload
	}))

	require.NoError(t, env.publisher.PublishConfirmationCreated(ctx, ConfirmationCreatedPayload{
		SessionID:      env.sessionID,
		ConfirmationID: "conf-9",
		ToolName:       "send_email",
		RiskScore:      60,
		ReasonCode:     "EXTERNAL_COMMUNICATION",
		Timestamp:      time.Now().UTC().Format(time.RFC3339Nano),
	}))

	msg1 := waitForPayload(t, first, 5*time.Second)
	msg2 := waitForPayload(t, second, 5*time.Second)
	assert.Equal(t, "conf-9", msg1["confirmation_id"])
	assert.Equal(t, "conf-9", msg2["confirmation_id"])
}
