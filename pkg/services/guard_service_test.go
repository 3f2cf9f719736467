package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/pkg/config"
	"github.com/valet-assistant/valet/pkg/models"
)

// recordCalls writes n audit rows in one shot.
func recordCalls(t *testing.T, client *ent.Client, sessionID, toolName, status string, executed bool, n int) {
	t.Helper()
	service := NewToolCallService(client)
	for i := 0; i < n; i++ {
		_, err := service.RecordToolCall(context.Background(), models.RecordToolCallRequest{
			SessionID: sessionID,
			UserID:    "user-1",
			ToolName:  toolName,
			Status:    status,
			Executed:  executed,
		})
		require.NoError(t, err)
	}
}

func TestGuardService_CheckRateLimit(t *testing.T) {
	client := newTestDB(t)
	guards := NewGuardService(client.Client, &config.GuardsConfig{
		RateLimitPerMinute:     3,
		MaxConsecutiveFailures: 3,
	})
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")

	t.Run("under the limit passes", func(t *testing.T) {
		recordCalls(t, client.Client, "sess-1", "web_search", "success", true, 2)
		require.NoError(t, guards.CheckRateLimit(ctx, "sess-1", "web_search"))
	})

	t.Run("at the limit rejects", func(t *testing.T) {
		recordCalls(t, client.Client, "sess-1", "web_search", "success", true, 1)

		err := guards.CheckRateLimit(ctx, "sess-1", "web_search")
		require.Error(t, err)
		var violation *GuardViolation
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, GuardRateLimited, violation.Code)
	})

	t.Run("only executed rows count", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-2")
		recordCalls(t, client.Client, "sess-2", "web_search", "error", false, 10)
		require.NoError(t, guards.CheckRateLimit(ctx, "sess-2", "web_search"))
	})

	t.Run("other tools have their own window", func(t *testing.T) {
		require.NoError(t, guards.CheckRateLimit(ctx, "sess-1", "get_weather_info"))
	})

	t.Run("old calls age out", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-3")
		recordCalls(t, client.Client, "sess-3", "web_search", "success", true, 3)

		// Age every row past the window
		old := time.Now().Add(-2 * time.Minute)
		_, err := client.DB().ExecContext(ctx,
			`UPDATE tool_calls SET created_at = $1 WHERE session_id = $2`, old, "sess-3")
		require.NoError(t, err)

		require.NoError(t, guards.CheckRateLimit(ctx, "sess-3", "web_search"))
	})
}

func TestGuardService_CheckLoopBreaker(t *testing.T) {
	client := newTestDB(t)
	guards := NewGuardService(client.Client, &config.GuardsConfig{
		RateLimitPerMinute:     100,
		MaxConsecutiveFailures: 3,
	})
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")

	t.Run("trips after a full window of failures", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-1")
		recordCalls(t, client.Client, "sess-1", "run_automation", "error", true, 3)

		err := guards.CheckLoopBreaker(ctx, "sess-1", "run_automation")
		require.Error(t, err)
		var violation *GuardViolation
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, GuardLoopBroken, violation.Code)
	})

	t.Run("fewer failures than the window passes", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-2")
		recordCalls(t, client.Client, "sess-2", "run_automation", "error", true, 2)
		require.NoError(t, guards.CheckLoopBreaker(ctx, "sess-2", "run_automation"))
	})

	t.Run("a recent success resets the window", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-3")
		recordCalls(t, client.Client, "sess-3", "run_automation", "error", true, 2)
		recordCalls(t, client.Client, "sess-3", "run_automation", "success", true, 1)
		require.NoError(t, guards.CheckLoopBreaker(ctx, "sess-3", "run_automation"))
	})

	t.Run("non-executed failures do not count", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-4")
		recordCalls(t, client.Client, "sess-4", "run_automation", "error", false, 5)
		require.NoError(t, guards.CheckLoopBreaker(ctx, "sess-4", "run_automation"))
	})
}

func TestToolCallService_RecordToolCall(t *testing.T) {
	client := newTestDB(t)
	service := NewToolCallService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")

	call, err := service.RecordToolCall(ctx, models.RecordToolCallRequest{
		SessionID: "sess-1",
		UserID:    "user-1",
		ToolName:  "get_weather_info",
		Args:      map[string]any{"location": "Paris"},
		Result:    map[string]any{"message": "Sunny"},
		Status:    "success",
		Executed:  true,
		LatencyMs: 42,
		TraceID:   "trace-1",
	})
	require.NoError(t, err)
	assert.True(t, call.Executed)
	assert.Equal(t, int64(42), call.LatencyMs)

	t.Run("listed newest first", func(t *testing.T) {
		_, err := service.RecordToolCall(ctx, models.RecordToolCallRequest{
			SessionID: "sess-1",
			UserID:    "user-1",
			ToolName:  "web_search",
			Status:    "error",
			ErrorCode: "UNKNOWN_TOOL",
		})
		require.NoError(t, err)

		calls, err := service.ListBySession(ctx, "sess-1", 10)
		require.NoError(t, err)
		require.Len(t, calls, 2)
		assert.Equal(t, "web_search", calls[0].ToolName)
	})

	t.Run("missing status is rejected", func(t *testing.T) {
		_, err := service.RecordToolCall(ctx, models.RecordToolCallRequest{
			SessionID: "sess-1",
			UserID:    "user-1",
			ToolName:  "web_search",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
