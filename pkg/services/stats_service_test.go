package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/embeddings"
	"github.com/valet-assistant/valet/pkg/models"
)

func TestStatsService_GetSystemStats(t *testing.T) {
	client := newTestDB(t)
	service := NewStatsService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestUser(t, client.Client, "user-2")
	createTestSession(t, client.Client, "user-1", "sess-live")
	createTestSession(t, client.Client, "user-1", "sess-gone")

	sessions := NewSessionService(client.Client)
	require.NoError(t, sessions.RevokeSession(ctx, "user-1", "sess-gone"))

	messages := NewMessageService(client.Client)
	_, _, err := messages.SaveUserMessage(ctx, models.SaveUserMessageRequest{
		SessionID: "sess-live",
		UserID:    "user-1",
		Content:   "what is on my calendar",
	})
	require.NoError(t, err)

	createTestExecution(t, client.Client, "sess-live", "user-1", "get_calendar_events", toolexecution.StatusSucceeded)
	createTestExecution(t, client.Client, "sess-live", "user-1", "get_calendar_events", toolexecution.StatusSucceeded)
	createTestExecution(t, client.Client, "sess-live", "user-1", "delete_file", toolexecution.StatusAwaitingConfirmation)

	err = client.PolicyDecision.Create().
		SetID(uuid.New().String()).
		SetSessionID("sess-live").
		SetUserID("user-1").
		SetToolName("delete_file").
		SetDecision("ESCALATE").
		SetRiskScore(85).
		SetReasonCode("DESTRUCTIVE_ACTION").
		Exec(ctx)
	require.NoError(t, err)

	recordCalls(t, client.Client, "sess-live", "get_calendar_events", "success", true, 2)

	memories := NewMemoryService(client.Client, client.DB(), embeddings.NewLocal())
	_, err = memories.WriteMemory(ctx, models.WriteMemoryRequest{
		UserID:  "user-1",
		Content: "prefers morning meetings",
	})
	require.NoError(t, err)

	confirmations := NewConfirmationService(client.Client, 0)
	exec := createTestExecution(t, client.Client, "sess-live", "user-1", "delete_file", toolexecution.StatusAwaitingConfirmation)
	_, err = confirmations.CreateConfirmation(ctx, models.CreateConfirmationRequest{
		ToolExecutionID: exec.ID,
		SessionID:       "sess-live",
		UserID:          "user-1",
		ToolName:        "delete_file",
		DecisionType:    "ESCALATE",
		Prompt:          "Say the phrase to continue",
		RequiredPhrase:  "CONFIRM DELETE FILE",
		RiskScore:       85,
		ReasonCode:      "DESTRUCTIVE_ACTION",
	})
	require.NoError(t, err)

	stats, err := service.GetSystemStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Users)
	assert.Equal(t, 2, stats.Sessions)
	assert.Equal(t, 1, stats.ActiveSessions)
	assert.Equal(t, 1, stats.Messages)
	assert.Equal(t, 2, stats.ExecutionsByStatus["succeeded"])
	assert.Equal(t, 2, stats.ExecutionsByStatus["awaiting_confirmation"])
	assert.Equal(t, 1, stats.DecisionCounts["ESCALATE"])
	assert.Equal(t, 2, stats.ToolCallsByStatus["success"])
	assert.Equal(t, 1, stats.ActiveMemories)
	assert.Equal(t, 1, stats.PendingConfirmations)
}

func TestStatsService_GetSessionSummary(t *testing.T) {
	client := newTestDB(t)
	service := NewStatsService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")
	createTestSession(t, client.Client, "user-1", "sess-other")

	messages := NewMessageService(client.Client)
	saveUser := func(content string) {
		_, _, err := messages.SaveUserMessage(ctx, models.SaveUserMessageRequest{
			SessionID: "sess-1",
			UserID:    "user-1",
			Content:   content,
		})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	saveUser("check the weather")
	saveUser("my token is sk-abcdefghij0123456789 please remember it")
	saveUser(strings.Repeat("a very long message ", 20))

	createTestExecution(t, client.Client, "sess-1", "user-1", "get_weather_info", toolexecution.StatusSucceeded)
	createTestExecution(t, client.Client, "sess-other", "user-1", "get_weather_info", toolexecution.StatusSucceeded)
	recordCalls(t, client.Client, "sess-1", "get_weather_info", "success", true, 1)

	err := client.PolicyDecision.Create().
		SetID(uuid.New().String()).
		SetSessionID("sess-1").
		SetUserID("user-1").
		SetToolName("unknown_tool").
		SetDecision("DENY").
		SetRiskScore(100).
		SetReasonCode("UNKNOWN_TOOL").
		Exec(ctx)
	require.NoError(t, err)

	t.Run("summary rolls up one session", func(t *testing.T) {
		summary, err := service.GetSessionSummary(ctx, "sess-1")
		require.NoError(t, err)

		assert.Equal(t, "sess-1", summary.SessionID)
		assert.Equal(t, "user-1", summary.UserID)
		assert.Equal(t, "active", summary.State)
		assert.Equal(t, 3, summary.MessageCount)
		assert.Equal(t, 1, summary.ToolCallCount)
		assert.Equal(t, 1, summary.ExecutionsByStatus["succeeded"])
		assert.Equal(t, 1, summary.Denials)
		assert.Nil(t, summary.Pending)

		require.Len(t, summary.RecentMessages, 3)
		assert.Equal(t, "check the weather", summary.RecentMessages[0].Content)
	})

	t.Run("previews are redacted and truncated", func(t *testing.T) {
		summary, err := service.GetSessionSummary(ctx, "sess-1")
		require.NoError(t, err)

		secret := summary.RecentMessages[1].Content
		assert.NotContains(t, secret, "sk-abcdefghij0123456789")
		assert.Contains(t, secret, "[REDACTED KEY]")

		long := summary.RecentMessages[2].Content
		assert.True(t, strings.HasSuffix(long, "…"))
		assert.LessOrEqual(t, len([]rune(long)), previewMaxLen+1)
	})

	t.Run("revoked session reports its state", func(t *testing.T) {
		sessions := NewSessionService(client.Client)
		require.NoError(t, sessions.RevokeSession(ctx, "user-1", "sess-other"))

		summary, err := service.GetSessionSummary(ctx, "sess-other")
		require.NoError(t, err)
		assert.Equal(t, "revoked", summary.State)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := service.GetSessionSummary(ctx, "sess-missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
