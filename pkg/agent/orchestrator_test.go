package agent

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/agentmessage"
	"github.com/valet-assistant/valet/ent/session"
	"github.com/valet-assistant/valet/pkg/config"
	"github.com/valet-assistant/valet/pkg/database"
	"github.com/valet-assistant/valet/pkg/embeddings"
	"github.com/valet-assistant/valet/pkg/events"
	"github.com/valet-assistant/valet/pkg/models"
	"github.com/valet-assistant/valet/pkg/runtime"
	"github.com/valet-assistant/valet/pkg/services"
	"github.com/valet-assistant/valet/pkg/tools"
	testdb "github.com/valet-assistant/valet/test/database"
)

// scriptedParser returns canned intents keyed by utterance so turns are
// deterministic without a live parsing service. Unknown utterances map
// to the unknown intent, like a model that failed to classify.
type scriptedParser struct {
	intents     map[string]models.Intent
	err         error
	calls       int
	lastContext string
}

func (p *scriptedParser) ParseIntent(_ context.Context, utterance, contextStr string) (models.Intent, error) {
	p.calls++
	p.lastContext = contextStr
	if p.err != nil {
		return models.Intent{}, p.err
	}
	if intent, ok := p.intents[utterance]; ok {
		return intent, nil
	}
	return models.Intent{Name: models.IntentUnknown}, nil
}

// turnScopes covers every builtin the turn tests exercise.
var turnScopes = []string{
	"core",
	"tool.calendar.read",
	"tool.calendar.write",
	"tool.email.read",
	"tool.email.send",
	"tool.files.read",
	"tool.files.write",
	"tool.web.search",
	"tool.system.automation",
}

type turnHarness struct {
	client       *database.Client
	orch         *Orchestrator
	parser       *scriptedParser
	messages     *services.MessageService
	eventReader  *services.EventService
	workspaceDir string
}

// newTurnHarness wires a full orchestrator against an isolated database:
// real builtin tools, real runtime and policy, scripted parser.
func newTurnHarness(t *testing.T) *turnHarness {
	t.Helper()
	client := testdb.NewTestClient(t)

	memories := services.NewMemoryService(client.Client, client.DB(), embeddings.NewLocal())
	workspaceDir := t.TempDir()
	providers := tools.NewProviders(workspaceDir)
	providers.Memory = memories
	reg := tools.NewRegistry()
	require.NoError(t, tools.RegisterBuiltins(reg, providers))

	confirmations := services.NewConfirmationService(client.Client, time.Hour)
	sessions := services.NewSessionService(client.Client)
	executions := services.NewExecutionService(client.Client)
	messages := services.NewMessageService(client.Client)

	rt := runtime.New(runtime.Deps{
		Registry:      reg,
		Users:         services.NewUserService(client.Client),
		Sessions:      sessions,
		Executions:    executions,
		Confirmations: confirmations,
		Decisions:     services.NewPolicyDecisionService(client.Client),
		Guards: services.NewGuardService(client.Client, &config.GuardsConfig{
			RateLimitPerMinute:     50,
			MaxConsecutiveFailures: 5,
		}),
		Calls: services.NewToolCallService(client.Client),
	}, config.PolicyModeEnforce, 5*time.Second)

	parser := &scriptedParser{intents: map[string]models.Intent{}}
	h := &turnHarness{
		client:       client,
		parser:       parser,
		messages:     messages,
		eventReader:  services.NewEventService(client.Client),
		workspaceDir: workspaceDir,
	}
	h.orch = NewOrchestrator(Deps{
		DB:            client.DB(),
		Sessions:      sessions,
		Messages:      messages,
		Memories:      memories,
		Confirmations: confirmations,
		Executions:    executions,
		Runtime:       rt,
		Parser:        parser,
		Catalog:       DefaultCatalog(),
		Publisher:     events.NewEventPublisher(client.DB()),
	}, 0)
	return h
}

func (h *turnHarness) seedUser(t *testing.T, userID string, scopes []string) {
	t.Helper()
	_, err := h.client.Client.User.Create().
		SetID(userID).
		SetScopes(scopes).
		Save(context.Background())
	require.NoError(t, err)
}

func (h *turnHarness) seedSession(t *testing.T, userID, sessionID string, modality session.Modality) {
	t.Helper()
	_, err := h.client.Client.Session.Create().
		SetID(sessionID).
		SetUserID(userID).
		SetModality(modality).
		Save(context.Background())
	require.NoError(t, err)
}

func (h *turnHarness) turn(t *testing.T, userID, sessionID, content string) *models.TurnResponse {
	t.Helper()
	resp, err := h.orch.HandleUtterance(context.Background(), models.TurnRequest{
		SessionID: sessionID,
		UserID:    userID,
		Content:   content,
	})
	require.NoError(t, err)
	return resp
}

// sessionEvents returns the durable event payloads of one type, in
// publish order.
func (h *turnHarness) sessionEvents(t *testing.T, sessionID, eventType string) []map[string]any {
	t.Helper()
	resp, err := h.eventReader.GetEventsSince(context.Background(), events.SessionChannel(sessionID), 0, 100)
	require.NoError(t, err)
	var out []map[string]any
	for _, row := range resp.Events {
		if row.Payload["type"] == eventType {
			out = append(out, row.Payload)
		}
	}
	return out
}

func (h *turnHarness) messageByID(t *testing.T, id string) *ent.AgentMessage {
	t.Helper()
	msg, err := h.client.Client.AgentMessage.Get(context.Background(), id)
	require.NoError(t, err)
	return msg
}

func TestOrchestratorClarifications(t *testing.T) {
	h := newTurnHarness(t)
	h.seedUser(t, "user-1", turnScopes)
	h.seedSession(t, "user-1", "sess-1", session.ModalityText)

	t.Run("unknown intent asks for a rephrase", func(t *testing.T) {
		resp := h.turn(t, "user-1", "sess-1", "flurble the glompity")
		assert.Equal(t, "I'm not sure how to help with that. Could you rephrase?", resp.Text)
		assert.False(t, resp.ShouldSpeak)
		assert.False(t, resp.Deduplicated)
		assert.Nil(t, resp.Pending)
		assert.NotEmpty(t, resp.TraceID)

		// The reply is persisted under the same trace as the utterance.
		reply := h.messageByID(t, resp.MessageID)
		assert.Equal(t, agentmessage.RoleAssistant, reply.Role)
		require.NotNil(t, reply.TraceID)
		assert.Equal(t, resp.TraceID, *reply.TraceID)

		// The utterance itself reached the parser's context window.
		assert.Contains(t, h.parser.lastContext, "user: flurble the glompity")
	})

	t.Run("parser failure degrades to a rephrase", func(t *testing.T) {
		h.parser.err = errors.New("assistant service unavailable")
		defer func() { h.parser.err = nil }()
		resp := h.turn(t, "user-1", "sess-1", "please do the thing")
		assert.Equal(t, "I'm not sure how to help with that. Could you rephrase?", resp.Text)
	})

	t.Run("missing required slots force the slot question", func(t *testing.T) {
		h.parser.intents["email sam"] = models.Intent{
			Name:       "send_email",
			Slots:      map[string]any{"to": "sam@example.com"},
			Confidence: 0.9,
		}
		resp := h.turn(t, "user-1", "sess-1", "email sam")
		assert.Equal(t, "I need the following information to proceed: subject, content.", resp.Text)
	})

	t.Run("clarification without a question gets the default", func(t *testing.T) {
		h.parser.intents["hmm"] = models.Intent{
			Name:               "send_email",
			NeedsClarification: true,
			Confidence:         0.3,
		}
		resp := h.turn(t, "user-1", "sess-1", "hmm")
		assert.Equal(t, "Could you clarify that?", resp.Text)
	})

	// Clarification turns run no tool.
	count, err := h.client.Client.ToolCall.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOrchestratorSuccessTurn(t *testing.T) {
	h := newTurnHarness(t)
	h.seedUser(t, "user-1", turnScopes)
	h.seedSession(t, "user-1", "sess-1", session.ModalityText)
	h.parser.intents["what is the weather in Oslo"] = models.Intent{
		Name:       "get_weather_info",
		Slots:      map[string]any{"location": "Oslo"},
		Confidence: 0.95,
	}

	resp := h.turn(t, "user-1", "sess-1", "what is the weather in Oslo")

	assert.Contains(t, resp.Text, "Done. Current weather in Oslo")
	assert.False(t, resp.ShouldSpeak)
	assert.Nil(t, resp.Pending)
	require.Contains(t, resp.Metadata, "tool_result")

	// Both rows of the turn share the trace.
	reply := h.messageByID(t, resp.MessageID)
	require.NotNil(t, reply.TraceID)
	assert.Equal(t, resp.TraceID, *reply.TraceID)
	userRows, err := h.client.Client.AgentMessage.Query().
		Where(
			agentmessage.SessionIDEQ("sess-1"),
			agentmessage.RoleEQ(agentmessage.RoleUser),
			agentmessage.TraceID(resp.TraceID),
		).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, userRows, 1)
	assert.Equal(t, "what is the weather in Oslo", userRows[0].Content)

	completed := h.sessionEvents(t, "sess-1", events.EventTypeTurnCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, "completed", completed[0]["status"])
	assert.Equal(t, "get_weather_info", completed[0]["tool_name"])
	assert.Equal(t, resp.TraceID, completed[0]["trace_id"])
}

func TestOrchestratorModalityOverride(t *testing.T) {
	h := newTurnHarness(t)
	h.seedUser(t, "user-1", turnScopes)
	h.seedSession(t, "user-1", "sess-1", session.ModalityText)

	resp, err := h.orch.HandleUtterance(context.Background(), models.TurnRequest{
		SessionID: "sess-1",
		UserID:    "user-1",
		Content:   "say something",
		Modality:  models.ModalityVoice,
	})
	require.NoError(t, err)
	assert.True(t, resp.ShouldSpeak, "a voice request on a text session speaks the reply")
}

func TestOrchestratorDedup(t *testing.T) {
	h := newTurnHarness(t)
	h.seedUser(t, "user-1", turnScopes)
	h.seedSession(t, "user-1", "sess-1", session.ModalityText)
	h.parser.intents["weather in Oslo"] = models.Intent{
		Name:       "get_weather_info",
		Slots:      map[string]any{"location": "Oslo"},
		Confidence: 0.95,
	}

	submit := func() (*models.TurnResponse, error) {
		return h.orch.HandleUtterance(context.Background(), models.TurnRequest{
			SessionID:      "sess-1",
			UserID:         "user-1",
			Content:        "weather in Oslo",
			IdempotencyKey: "turn-key-1",
		})
	}

	first, err := submit()
	require.NoError(t, err)
	require.False(t, first.Deduplicated)
	assert.Equal(t, 1, h.parser.calls)

	second, err := submit()
	require.NoError(t, err)
	assert.True(t, second.Deduplicated)
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, first.TraceID, second.TraceID)
	assert.Equal(t, first.MessageID, second.MessageID)
	// The duplicate short-circuits before parsing or tool execution.
	assert.Equal(t, 1, h.parser.calls)
	calls, err := h.client.Client.ToolCall.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// One user row, one completed-turn event.
	userRows, err := h.client.Client.AgentMessage.Query().
		Where(agentmessage.RoleEQ(agentmessage.RoleUser)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, userRows)
	assert.Len(t, h.sessionEvents(t, "sess-1", events.EventTypeTurnCompleted), 1)
}

func TestOrchestratorInFlightDuplicate(t *testing.T) {
	h := newTurnHarness(t)
	h.seedUser(t, "user-1", turnScopes)
	h.seedSession(t, "user-1", "sess-1", session.ModalityText)

	// A stored user turn with no reply yet looks like a turn another
	// request is still processing.
	_, _, err := h.messages.SaveUserMessage(context.Background(), models.SaveUserMessageRequest{
		SessionID:      "sess-1",
		UserID:         "user-1",
		Content:        "weather in Oslo",
		IdempotencyKey: "busy-key",
		TraceID:        "trace-busy",
	})
	require.NoError(t, err)

	_, err = h.orch.HandleUtterance(context.Background(), models.TurnRequest{
		SessionID:      "sess-1",
		UserID:         "user-1",
		Content:        "weather in Oslo",
		IdempotencyKey: "busy-key",
	})
	assert.ErrorIs(t, err, ErrTurnInFlight)
	assert.Zero(t, h.parser.calls)
}

func TestOrchestratorStaleTurnRerun(t *testing.T) {
	h := newTurnHarness(t)
	h.seedUser(t, "user-1", turnScopes)
	h.seedSession(t, "user-1", "sess-1", session.ModalityText)
	h.parser.intents["weather in Oslo"] = models.Intent{
		Name:       "get_weather_info",
		Slots:      map[string]any{"location": "Oslo"},
		Confidence: 0.95,
	}

	// An orphaned user turn older than the turn deadline: the process
	// that accepted it died before replying.
	_, err := h.client.Client.AgentMessage.Create().
		SetID(uuid.New().String()).
		SetSessionID("sess-1").
		SetUserID("user-1").
		SetRole(agentmessage.RoleUser).
		SetContent("weather in Oslo").
		SetModality(agentmessage.ModalityText).
		SetStatus(agentmessage.StatusCompleted).
		SetIdempotencyKey("stale-key").
		SetTraceID("trace-stale").
		SetCreatedAt(time.Now().Add(-10 * time.Minute)).
		Save(context.Background())
	require.NoError(t, err)

	resp, err := h.orch.HandleUtterance(context.Background(), models.TurnRequest{
		SessionID:      "sess-1",
		UserID:         "user-1",
		Content:        "weather in Oslo",
		IdempotencyKey: "stale-key",
	})
	require.NoError(t, err)

	// The re-run keeps the stored trace so the reply correlates with
	// the original utterance.
	assert.Equal(t, "trace-stale", resp.TraceID)
	assert.False(t, resp.Deduplicated)
	assert.Contains(t, resp.Text, "Done. Current weather in Oslo")
	assert.Equal(t, 1, h.parser.calls)

	reply := h.messageByID(t, resp.MessageID)
	require.NotNil(t, reply.TraceID)
	assert.Equal(t, "trace-stale", *reply.TraceID)
}

func TestOrchestratorConfirmationAcceptFlow(t *testing.T) {
	h := newTurnHarness(t)
	h.seedUser(t, "user-1", turnScopes)
	h.seedSession(t, "user-1", "sess-v", session.ModalityVoice)
	h.parser.intents["send the report to sam"] = models.Intent{
		Name: "send_email",
		Slots: map[string]any{
			"to":      "sam@example.com",
			"subject": "Quarterly report",
			"content": "Numbers attached.",
		},
		Confidence: 0.93,
	}

	first := h.turn(t, "user-1", "sess-v", "send the report to sam")
	require.NotNil(t, first.Pending)
	assert.NotEmpty(t, first.Pending.ID)
	assert.Equal(t, "send_email", first.Pending.ToolName)
	assert.Empty(t, first.Pending.RequiredPhrase)
	assert.Equal(t, first.Pending.Prompt, first.Text)
	assert.True(t, first.ShouldSpeak)

	created := h.sessionEvents(t, "sess-v", events.EventTypeConfirmationCreated)
	require.Len(t, created, 1)
	assert.Equal(t, first.Pending.ID, created[0]["confirmation_id"])
	assert.Equal(t, models.ReasonExternalCommConfirm, created[0]["reason_code"])

	parserCalls := h.parser.calls
	second := h.turn(t, "user-1", "sess-v", "yes, send it")
	assert.Equal(t, "Done. Email sent successfully.", second.Text)
	assert.Nil(t, second.Pending)
	assert.True(t, second.ShouldSpeak)
	// The approval utterance answers the confirmation; it is not parsed
	// as a new command.
	assert.Equal(t, parserCalls, h.parser.calls)
	assert.NotEqual(t, first.TraceID, second.TraceID)

	resolved := h.sessionEvents(t, "sess-v", events.EventTypeConfirmationResolved)
	require.Len(t, resolved, 1)
	assert.Equal(t, "accepted", resolved[0]["outcome"])
	assert.Equal(t, first.Pending.ID, resolved[0]["confirmation_id"])

	completed := h.sessionEvents(t, "sess-v", events.EventTypeTurnCompleted)
	require.Len(t, completed, 2)
	assert.Equal(t, "needs_confirmation", completed[0]["status"])
	assert.Equal(t, "completed", completed[1]["status"])
}

func TestOrchestratorConfirmationPhraseFlow(t *testing.T) {
	h := newTurnHarness(t)
	h.seedUser(t, "user-1", turnScopes)
	h.seedSession(t, "user-1", "sess-1", session.ModalityText)
	h.parser.intents["delete the old report"] = models.Intent{
		Name:       "delete_file",
		Slots:      map[string]any{"path": "old-report.txt"},
		Confidence: 0.9,
	}
	target := filepath.Join(h.workspaceDir, "old-report.txt")
	require.NoError(t, os.WriteFile(target, []byte("stale"), 0o644))

	first := h.turn(t, "user-1", "sess-1", "delete the old report")
	require.NotNil(t, first.Pending)
	assert.Equal(t, "CONFIRM DELETE FILE", first.Pending.RequiredPhrase)

	// A plain yes does not meet the escalation phrase.
	second := h.turn(t, "user-1", "sess-1", "yes")
	assert.Equal(t, "Please say exactly: 'CONFIRM DELETE FILE' to confirm.", second.Text)
	require.NotNil(t, second.Pending)
	assert.Equal(t, first.Pending.ID, second.Pending.ID)
	_, err := os.Stat(target)
	require.NoError(t, err, "the file survives until the phrase is spoken")

	third := h.turn(t, "user-1", "sess-1", "CONFIRM DELETE FILE")
	assert.Equal(t, "Done. Deleted 'old-report.txt'.", third.Text)
	assert.Nil(t, third.Pending)
	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))

	resolved := h.sessionEvents(t, "sess-1", events.EventTypeConfirmationResolved)
	require.Len(t, resolved, 2)
	assert.Equal(t, "still_pending", resolved[0]["outcome"])
	assert.Equal(t, "accepted", resolved[1]["outcome"])
}

func TestOrchestratorDeniedTurn(t *testing.T) {
	h := newTurnHarness(t)
	h.seedUser(t, "user-least", models.DefaultUserScopes)
	h.seedSession(t, "user-least", "sess-1", session.ModalityText)
	h.parser.intents["what is on my calendar"] = models.Intent{
		Name:       "get_calendar_events",
		Slots:      map[string]any{"days": 7},
		Confidence: 0.9,
	}

	resp := h.turn(t, "user-least", "sess-1", "what is on my calendar")
	assert.Contains(t, resp.Text, "I cannot do that. ")
	assert.Contains(t, resp.Text, "tool.calendar.read")
	assert.Nil(t, resp.Pending)

	denied := h.sessionEvents(t, "sess-1", events.EventTypePolicyDenied)
	require.Len(t, denied, 1)
	assert.Equal(t, "get_calendar_events", denied[0]["tool_name"])
	assert.Equal(t, models.ErrCodeScopeMissing, denied[0]["error_code"])

	completed := h.sessionEvents(t, "sess-1", events.EventTypeTurnCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, "denied", completed[0]["status"])
}

func TestOrchestratorMemoryRoundtrip(t *testing.T) {
	h := newTurnHarness(t)
	h.seedUser(t, "user-1", turnScopes)
	h.seedSession(t, "user-1", "sess-1", session.ModalityText)
	h.parser.intents["remember my favorite tea"] = models.Intent{
		Name:       "remember_fact",
		Slots:      map[string]any{"key": "favorite tea", "value": "earl grey"},
		Confidence: 0.9,
	}
	h.parser.intents["what is my favorite tea"] = models.Intent{
		Name:       "recall_fact",
		Slots:      map[string]any{"key": "favorite tea"},
		Confidence: 0.9,
	}

	stored := h.turn(t, "user-1", "sess-1", "remember my favorite tea")
	assert.Equal(t, "Done. Remembered fact: 'favorite tea' set to 'earl grey'.", stored.Text)

	recalled := h.turn(t, "user-1", "sess-1", "what is my favorite tea")
	assert.Equal(t, "Done. The stored fact for 'favorite tea' is: 'earl grey'", recalled.Text)
}

func TestOrchestratorSessionGuards(t *testing.T) {
	h := newTurnHarness(t)
	h.seedUser(t, "user-1", turnScopes)
	h.seedUser(t, "user-2", turnScopes)
	h.seedSession(t, "user-1", "sess-1", session.ModalityText)

	_, err := h.client.Client.Session.Create().
		SetID("sess-revoked").
		SetUserID("user-1").
		SetModality(session.ModalityText).
		SetRevokedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)

	t.Run("unknown session", func(t *testing.T) {
		_, err := h.orch.HandleUtterance(context.Background(), models.TurnRequest{
			SessionID: "sess-nope", UserID: "user-1", Content: "hello",
		})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("revoked session", func(t *testing.T) {
		_, err := h.orch.HandleUtterance(context.Background(), models.TurnRequest{
			SessionID: "sess-revoked", UserID: "user-1", Content: "hello",
		})
		assert.ErrorIs(t, err, services.ErrSessionInactive)
	})

	t.Run("session owned by someone else", func(t *testing.T) {
		_, err := h.orch.HandleUtterance(context.Background(), models.TurnRequest{
			SessionID: "sess-1", UserID: "user-2", Content: "hello",
		})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestDeriveTurnKey(t *testing.T) {
	a := deriveTurnKey("sess-1", "hello")
	b := deriveTurnKey("sess-1", "hello")
	c := deriveTurnKey("sess-2", "hello")
	d := deriveTurnKey("sess-1", "goodbye")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
	assert.Len(t, a, 64)
}
