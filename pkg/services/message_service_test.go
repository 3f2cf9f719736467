package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/pkg/models"
)

func TestMessageService_SaveUserMessage(t *testing.T) {
	client := newTestDB(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")

	t.Run("saves a user turn", func(t *testing.T) {
		msg, deduplicated, err := service.SaveUserMessage(ctx, models.SaveUserMessageRequest{
			SessionID:      "sess-1",
			UserID:         "user-1",
			Content:        "what's the weather in Paris",
			IdempotencyKey: "turn-1",
			TraceID:        "trace-1",
		})
		require.NoError(t, err)
		assert.False(t, deduplicated)
		assert.Equal(t, "user", string(msg.Role))
		assert.Equal(t, "what's the weather in Paris", msg.Content)
		require.NotNil(t, msg.IdempotencyKey)
		assert.Equal(t, "turn-1", *msg.IdempotencyKey)
	})

	t.Run("same key lands on the stored row", func(t *testing.T) {
		first, _, err := service.SaveUserMessage(ctx, models.SaveUserMessageRequest{
			SessionID:      "sess-1",
			UserID:         "user-1",
			Content:        "remind me to call mom",
			IdempotencyKey: "turn-2",
		})
		require.NoError(t, err)

		second, deduplicated, err := service.SaveUserMessage(ctx, models.SaveUserMessageRequest{
			SessionID:      "sess-1",
			UserID:         "user-1",
			Content:        "remind me to call mom",
			IdempotencyKey: "turn-2",
		})
		require.NoError(t, err)
		assert.True(t, deduplicated)
		assert.Equal(t, first.ID, second.ID)

		// No second row was written
		_, total, err := service.ListMessages(ctx, "sess-1", 100, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("same key in another session is independent", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-2")
		msg, deduplicated, err := service.SaveUserMessage(ctx, models.SaveUserMessageRequest{
			SessionID:      "sess-2",
			UserID:         "user-1",
			Content:        "different session",
			IdempotencyKey: "turn-2",
		})
		require.NoError(t, err)
		assert.False(t, deduplicated)
		assert.Equal(t, "sess-2", msg.SessionID)
	})

	t.Run("no key always inserts", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			_, deduplicated, err := service.SaveUserMessage(ctx, models.SaveUserMessageRequest{
				SessionID: "sess-1",
				UserID:    "user-1",
				Content:   "hello again",
			})
			require.NoError(t, err)
			assert.False(t, deduplicated)
		}
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, _, err := service.SaveUserMessage(ctx, models.SaveUserMessageRequest{
			SessionID: "sess-1",
			UserID:    "user-1",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestMessageService_SaveAssistantMessage(t *testing.T) {
	client := newTestDB(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")

	msg, err := service.SaveAssistantMessage(ctx, models.SaveAssistantMessageRequest{
		SessionID: "sess-1",
		UserID:    "user-1",
		Content:   "Sunny, 22C.",
		Modality:  models.ModalityVoice,
		TraceID:   "trace-1",
		Metadata:  map[string]any{"should_speak": true},
	})
	require.NoError(t, err)
	assert.Equal(t, "assistant", string(msg.Role))
	assert.Equal(t, "voice", string(msg.Modality))
	require.NotNil(t, msg.TraceID)
	assert.Equal(t, "trace-1", *msg.TraceID)
}

func TestMessageService_AssistantReplyForTrace(t *testing.T) {
	client := newTestDB(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")

	_, _, err := service.SaveUserMessage(ctx, models.SaveUserMessageRequest{
		SessionID: "sess-1",
		UserID:    "user-1",
		Content:   "hi",
		TraceID:   "trace-x",
	})
	require.NoError(t, err)

	t.Run("no reply yet", func(t *testing.T) {
		_, err := service.AssistantReplyForTrace(ctx, "sess-1", "trace-x")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("finds the correlated reply", func(t *testing.T) {
		reply, err := service.SaveAssistantMessage(ctx, models.SaveAssistantMessageRequest{
			SessionID: "sess-1",
			UserID:    "user-1",
			Content:   "Hello!",
			TraceID:   "trace-x",
		})
		require.NoError(t, err)

		got, err := service.AssistantReplyForTrace(ctx, "sess-1", "trace-x")
		require.NoError(t, err)
		assert.Equal(t, reply.ID, got.ID)
	})

	t.Run("empty trace never matches", func(t *testing.T) {
		_, err := service.AssistantReplyForTrace(ctx, "sess-1", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMessageService_RecentMessages(t *testing.T) {
	client := newTestDB(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")

	for i := 0; i < 15; i++ {
		_, _, err := service.SaveUserMessage(ctx, models.SaveUserMessageRequest{
			SessionID: "sess-1",
			UserID:    "user-1",
			Content:   fmt.Sprintf("message %02d", i),
		})
		require.NoError(t, err)
	}

	recent, err := service.RecentMessages(ctx, "sess-1", 10)
	require.NoError(t, err)
	require.Len(t, recent, 10)

	// Chronological order, covering the latest ten
	assert.Equal(t, "message 05", recent[0].Content)
	assert.Equal(t, "message 14", recent[9].Content)

	t.Run("window larger than the transcript", func(t *testing.T) {
		all, err := service.RecentMessages(ctx, "sess-1", 100)
		require.NoError(t, err)
		assert.Len(t, all, 15)
	})

	t.Run("zero window is empty", func(t *testing.T) {
		none, err := service.RecentMessages(ctx, "sess-1", 0)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestMessageService_ListMessages(t *testing.T) {
	client := newTestDB(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")

	for i := 0; i < 5; i++ {
		_, _, err := service.SaveUserMessage(ctx, models.SaveUserMessageRequest{
			SessionID: "sess-1",
			UserID:    "user-1",
			Content:   fmt.Sprintf("m%d", i),
		})
		require.NoError(t, err)
	}

	page, total, err := service.ListMessages(ctx, "sess-1", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "m2", page[0].Content)
	assert.Equal(t, "m3", page[1].Content)
}
