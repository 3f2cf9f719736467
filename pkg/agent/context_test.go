package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/agentmessage"
	"github.com/valet-assistant/valet/ent/session"
	"github.com/valet-assistant/valet/pkg/embeddings"
	"github.com/valet-assistant/valet/pkg/models"
	"github.com/valet-assistant/valet/pkg/services"
	testdb "github.com/valet-assistant/valet/test/database"
)

func historyMsg(role agentmessage.Role, content string) *ent.AgentMessage {
	return &ent.AgentMessage{Role: role, Content: content}
}

func TestTurnContextSerialize(t *testing.T) {
	t.Run("empty context is empty", func(t *testing.T) {
		assert.Empty(t, TurnContext{}.Serialize())
	})

	t.Run("history only", func(t *testing.T) {
		tc := TurnContext{History: []*ent.AgentMessage{
			historyMsg(agentmessage.RoleUser, "what's on my calendar"),
			historyMsg(agentmessage.RoleAssistant, "You have one meeting."),
		}}
		assert.Equal(t,
			"Recent conversation:\nuser: what's on my calendar\nassistant: You have one meeting.",
			tc.Serialize())
	})

	t.Run("memories only", func(t *testing.T) {
		tc := TurnContext{Memories: []*models.ScoredMemory{
			{Memory: &ent.Memory{Type: "preference", Content: "Prefers morning meetings"}, Score: 0.9},
		}}
		assert.Equal(t,
			"Relevant memories:\n- (preference) Prefers morning meetings",
			tc.Serialize())
	})

	t.Run("history and memories", func(t *testing.T) {
		tc := TurnContext{
			History: []*ent.AgentMessage{
				historyMsg(agentmessage.RoleUser, "hi"),
			},
			Memories: []*models.ScoredMemory{
				{Memory: &ent.Memory{Type: "fact", Content: "Works in Oslo"}, Score: 0.8},
			},
		}
		assert.Equal(t,
			"Recent conversation:\nuser: hi\n\nRelevant memories:\n- (fact) Works in Oslo",
			tc.Serialize())
	})

	t.Run("long history keeps the last three exchanges", func(t *testing.T) {
		var history []*ent.AgentMessage
		for i := 0; i < 10; i++ {
			history = append(history, historyMsg(agentmessage.RoleUser, fmt.Sprintf("msg-%d", i)))
		}
		out := TurnContext{History: history}.Serialize()
		assert.NotContains(t, out, "msg-3")
		assert.Contains(t, out, "msg-4")
		assert.Contains(t, out, "msg-9")
	})
}

// failingEmbedder simulates an unreachable embeddings backend.
type failingEmbedder struct{}

func (failingEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, errors.New("embeddings backend unreachable")
}
func (failingEmbedder) EmbedBatch(context.Context, []string) ([][]float32, error) {
	return nil, errors.New("embeddings backend unreachable")
}
func (failingEmbedder) Dimensions() int { return embeddings.Dim }
func (failingEmbedder) Name() string    { return "failing" }

func TestContextBuilderBuild(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	_, err := client.Client.User.Create().
		SetID("user-ctx").
		SetScopes(models.DefaultUserScopes).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Client.Session.Create().
		SetID("sess-ctx").
		SetUserID("user-ctx").
		SetModality(session.ModalityText).
		Save(ctx)
	require.NoError(t, err)

	messages := services.NewMessageService(client.Client)
	memories := services.NewMemoryService(client.Client, client.DB(), embeddings.NewLocal())
	rc := models.RequestContext{UserID: "user-ctx", SessionID: "sess-ctx", TraceID: "trace-ctx"}

	for i := 0; i < 12; i++ {
		_, _, err := messages.SaveUserMessage(ctx, models.SaveUserMessageRequest{
			SessionID: "sess-ctx",
			UserID:    "user-ctx",
			Content:   fmt.Sprintf("utterance %d", i),
		})
		require.NoError(t, err)
	}

	// Identical text embeds identically, so this memory scores 1.0
	// against the matching query.
	_, err = memories.WriteMemory(ctx, models.WriteMemoryRequest{
		UserID:  "user-ctx",
		Type:    "fact",
		Content: "the quarterly report is due friday",
	})
	require.NoError(t, err)

	t.Run("history is bounded and memories are retrieved", func(t *testing.T) {
		builder := NewContextBuilder(messages, memories)
		tc, err := builder.Build(ctx, rc, "the quarterly report is due friday")
		require.NoError(t, err)
		assert.Len(t, tc.History, 10)
		require.NotEmpty(t, tc.Memories)
		assert.Equal(t, "the quarterly report is due friday", tc.Memories[0].Content)

		serialized := tc.Serialize()
		assert.Contains(t, serialized, "Recent conversation:")
		assert.Contains(t, serialized, "- (fact) the quarterly report is due friday")
	})

	t.Run("memory retrieval failure degrades to empty", func(t *testing.T) {
		offline := services.NewMemoryService(client.Client, client.DB(), failingEmbedder{})
		builder := NewContextBuilder(messages, offline)
		tc, err := builder.Build(ctx, rc, "anything at all")
		require.NoError(t, err)
		assert.Len(t, tc.History, 10)
		assert.Empty(t, tc.Memories)
	})
}
