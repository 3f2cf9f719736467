package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/pkg/models"
	"github.com/valet-assistant/valet/pkg/services"
)

const (
	// contextHistoryLimit bounds how many recent messages feed the turn.
	contextHistoryLimit = 10
	// contextSerializedTurns is how many user/assistant exchanges the
	// serialized context string keeps for the parser.
	contextSerializedTurns = 3

	contextMemoryTopK     = 5
	contextMemoryMinScore = 0.65
)

// contextMemoryTypes lists the memory types worth surfacing during a
// turn. Documents and contacts are retrieval targets for explicit
// search, not ambient context.
var contextMemoryTypes = []string{"fact", "preference", "task", "summary", "note"}

// TurnContext is what the parser sees beyond the utterance itself:
// recent conversation plus semantically relevant memories.
type TurnContext struct {
	History  []*ent.AgentMessage
	Memories []*models.ScoredMemory
}

// ContextBuilder assembles TurnContexts from the message and memory
// stores.
type ContextBuilder struct {
	messages *services.MessageService
	memories *services.MemoryService
}

// NewContextBuilder creates a new ContextBuilder.
func NewContextBuilder(messages *services.MessageService, memories *services.MemoryService) *ContextBuilder {
	return &ContextBuilder{messages: messages, memories: memories}
}

// Build fetches the recent history and the top memories for the
// utterance. A history read failure fails the turn; memory retrieval
// failures (embedding provider down) degrade to an empty memory list so
// the assistant stays responsive.
func (b *ContextBuilder) Build(ctx context.Context, rc models.RequestContext, utterance string) (TurnContext, error) {
	history, err := b.messages.RecentMessages(ctx, rc.SessionID, contextHistoryLimit)
	if err != nil {
		return TurnContext{}, fmt.Errorf("failed to load conversation history: %w", err)
	}

	memories, err := b.memories.RetrieveMemories(ctx, models.RetrieveMemoryRequest{
		UserID:   rc.UserID,
		Query:    utterance,
		Types:    contextMemoryTypes,
		TopK:     contextMemoryTopK,
		MinScore: contextMemoryMinScore,
	})
	if err != nil {
		slog.Warn("Memory retrieval degraded to empty",
			"session_id", rc.SessionID, "trace_id", rc.TraceID, "error", err)
		memories = nil
	}

	return TurnContext{History: history, Memories: memories}, nil
}

// Serialize renders the context for the parser prompt: the last few
// exchanges plus the retrieved memories. Returns "" when there is
// nothing to say.
func (tc TurnContext) Serialize() string {
	var sb strings.Builder

	recent := tc.History
	if max := contextSerializedTurns * 2; len(recent) > max {
		recent = recent[len(recent)-max:]
	}
	if len(recent) > 0 {
		sb.WriteString("Recent conversation:\n")
		for _, m := range recent {
			fmt.Fprintf(&sb, "%s: %s\n", m.Role, m.Content)
		}
	}

	if len(tc.Memories) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Relevant memories:\n")
		for _, mem := range tc.Memories {
			fmt.Fprintf(&sb, "- (%s) %s\n", mem.Type, mem.Content)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
