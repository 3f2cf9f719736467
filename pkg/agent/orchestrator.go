// Package agent turns user utterances into tool executions: it parses
// the utterance against the intent catalog, plans at most one tool
// step, runs it through the tool runtime and replies in a
// voice-friendly sentence. One orchestrator turn is the unit of
// idempotency and serialization — a session processes one turn at a
// time, and a retried utterance lands on the stored outcome.
package agent

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/pkg/database"
	"github.com/valet-assistant/valet/pkg/events"
	"github.com/valet-assistant/valet/pkg/models"
	"github.com/valet-assistant/valet/pkg/runtime"
	"github.com/valet-assistant/valet/pkg/services"
)

// defaultTurnTimeout bounds one whole turn, advisory lock included.
const defaultTurnTimeout = 300 * time.Second

// Turn outcome labels carried on turn.completed events.
const (
	turnStatusCompleted     = "completed"
	turnStatusClarification = "clarification"
	turnStatusNeedsConfirm  = "needs_confirmation"
	turnStatusDenied        = "denied"
	turnStatusError         = "error"
)

// ErrTurnInFlight is returned when a retried idempotency key belongs to
// a turn that is still being processed. The API maps it to 409.
var ErrTurnInFlight = errors.New("a turn with this idempotency key is still in flight")

// Deps are the collaborators the orchestrator drives. All of them are
// required; DB is the pool used for the per-session advisory lock.
type Deps struct {
	DB            *sql.DB
	Sessions      *services.SessionService
	Messages      *services.MessageService
	Memories      *services.MemoryService
	Confirmations *services.ConfirmationService
	Executions    *services.ExecutionService
	Runtime       *runtime.Runtime
	Parser        Parser
	Catalog       *Catalog
	Publisher     *events.EventPublisher
}

// Orchestrator handles user utterances end to end.
type Orchestrator struct {
	deps        Deps
	contexts    *ContextBuilder
	turnTimeout time.Duration
}

// NewOrchestrator creates an Orchestrator. turnTimeout bounds each turn
// (0 means the 300s default); it doubles as the window in which a
// duplicate submission without a stored reply counts as in flight.
func NewOrchestrator(deps Deps, turnTimeout time.Duration) *Orchestrator {
	if turnTimeout <= 0 {
		turnTimeout = defaultTurnTimeout
	}
	return &Orchestrator{
		deps:        deps,
		contexts:    NewContextBuilder(deps.Messages, deps.Memories),
		turnTimeout: turnTimeout,
	}
}

// turnState carries the identity and accounting of one in-progress turn.
type turnState struct {
	rc       models.RequestContext
	modality string
	turnKey  string
	started  time.Time
	lastTool string
	logger   *slog.Logger
}

// HandleUtterance runs one user utterance through the full turn:
// persist, resolve any pending confirmation, parse, plan, execute,
// summarize, persist the reply and publish the turn event. The session
// advisory lock serializes turns; an idempotency-key duplicate returns
// the stored reply without running anything.
func (o *Orchestrator) HandleUtterance(ctx context.Context, req models.TurnRequest) (*models.TurnResponse, error) {
	started := time.Now()

	sess, err := o.deps.Sessions.GetActiveSession(ctx, req.UserID, req.SessionID)
	if err != nil {
		return nil, err
	}
	modality := req.Modality
	if modality == "" {
		modality = string(sess.Modality)
	}

	ctx, cancel := context.WithTimeout(ctx, o.turnTimeout)
	defer cancel()

	// One turn per session at a time, across processes.
	release, err := database.AcquireSessionLock(ctx, o.deps.DB, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize turn: %w", err)
	}
	defer release()

	if err := o.deps.Sessions.TouchActivity(ctx, req.SessionID); err != nil {
		slog.Warn("Failed to touch session activity", "session_id", req.SessionID, "error", err)
	}

	traceID := uuid.New().String()
	turnKey := req.IdempotencyKey
	if turnKey == "" {
		turnKey = deriveTurnKey(req.SessionID, req.Content)
	}

	userMsg, deduplicated, err := o.deps.Messages.SaveUserMessage(ctx, models.SaveUserMessageRequest{
		SessionID:      req.SessionID,
		UserID:         req.UserID,
		Content:        req.Content,
		Modality:       modality,
		IdempotencyKey: turnKey,
		TraceID:        traceID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist user message: %w", err)
	}

	if deduplicated {
		storedTrace := ""
		if userMsg.TraceID != nil {
			storedTrace = *userMsg.TraceID
		}
		if storedTrace != "" {
			reply, rerr := o.deps.Messages.AssistantReplyForTrace(ctx, req.SessionID, storedTrace)
			if rerr == nil {
				return &models.TurnResponse{
					SessionID:    req.SessionID,
					MessageID:    reply.ID,
					TraceID:      storedTrace,
					Text:         reply.Content,
					ShouldSpeak:  modality == models.ModalityVoice,
					Deduplicated: true,
					Metadata:     reply.Metadata,
				}, nil
			}
			if !errors.Is(rerr, services.ErrNotFound) {
				return nil, rerr
			}
			// No reply yet. A young original is still being processed; an
			// old one died mid-turn and is safe to re-run under its trace.
			if time.Since(userMsg.CreatedAt) < o.turnTimeout {
				return nil, ErrTurnInFlight
			}
			traceID = storedTrace
		}
	}

	rc := models.RequestContext{
		UserID:    req.UserID,
		SessionID: req.SessionID,
		TraceID:   traceID,
		Modality:  modality,
	}
	turn := &turnState{
		rc:       rc,
		modality: modality,
		turnKey:  turnKey,
		started:  started,
		logger: slog.With(
			"session_id", req.SessionID,
			"user_id", req.UserID,
			"trace_id", traceID,
		),
	}
	if deduplicated {
		turn.logger.Info("Re-running abandoned turn", "idempotency_key", turnKey)
	}

	// An unresolved confirmation intercepts the turn: the utterance is
	// its answer, not a new command.
	pending, err := o.deps.Confirmations.PendingForSession(ctx, req.SessionID)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return nil, err
	}
	if err == nil {
		return o.resolvePending(ctx, turn, pending, req.Content)
	}

	return o.runPlan(ctx, turn, req.Content)
}

// resolvePending applies the utterance to the session's pending
// confirmation and, on acceptance, resumes the parked execution under
// its original idempotency key.
func (o *Orchestrator) resolvePending(ctx context.Context, t *turnState, pending *ent.Confirmation, utterance string) (*models.TurnResponse, error) {
	t.logger.Info("Resolving pending confirmation",
		"confirmation_id", pending.ID, "tool", pending.ToolName)

	resolution, err := o.deps.Confirmations.ResolveConfirmation(ctx, t.rc.UserID, t.rc.SessionID, pending.ID, utterance)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve confirmation: %w", err)
	}
	o.publishConfirmationResolved(ctx, t, resolution)

	switch resolution.Outcome {
	case services.ResolutionAccepted:
		exec, err := o.deps.Executions.GetExecution(ctx, pending.ToolExecutionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load execution behind confirmation: %w", err)
		}
		t.lastTool = exec.ToolName
		result := o.deps.Runtime.Execute(ctx, t.rc, runtime.Request{
			Tool:           exec.ToolName,
			Args:           resolution.Confirmation.Args,
			IdempotencyKey: exec.IdempotencyKey,
		})
		return o.finishTurn(ctx, t, summarizeResult(result), result, nil, statusFromResult(result))

	case services.ResolutionStillPending:
		t.lastTool = pending.ToolName
		return o.finishTurn(ctx, t, resolution.Message, nil, pendingView(resolution.Confirmation), turnStatusNeedsConfirm)

	default:
		t.lastTool = pending.ToolName
		return o.finishTurn(ctx, t, "Confirmation failed: "+resolution.Message, nil, nil, turnStatusError)
	}
}

// runPlan is the ordinary turn: context, intent, plan, execution.
func (o *Orchestrator) runPlan(ctx context.Context, t *turnState, utterance string) (*models.TurnResponse, error) {
	tc, err := o.contexts.Build(ctx, t.rc, utterance)
	if err != nil {
		return nil, err
	}

	intent, err := o.deps.Parser.ParseIntent(ctx, utterance, tc.Serialize())
	if err != nil {
		t.logger.Error("Intent parsing failed", "error", err)
		intent = models.Intent{Name: models.IntentUnknown, Confidence: 0}
	}
	intent = ValidateSlots(intent, o.deps.Catalog)
	t.logger.Info("Intent parsed",
		"intent", intent.Name,
		"confidence", intent.Confidence,
		"needs_clarification", intent.NeedsClarification)

	plan := BuildPlan(intent, o.deps.Catalog)
	if plan.RequiresUserInput {
		text := plan.ClarifyingQuestion
		if text == "" {
			text = "Could you clarify that?"
		}
		return o.finishTurn(ctx, t, text, nil, nil, turnStatusClarification)
	}

	var result *models.ToolResult
	for i, step := range plan.Steps {
		result = o.deps.Runtime.Execute(ctx, t.rc, runtime.Request{
			Tool:           step.ToolName,
			Args:           step.Args,
			IdempotencyKey: fmt.Sprintf("%s:step:%d", t.turnKey, i),
			IntentSummary:  step.IntentSummary,
		})
		t.lastTool = step.ToolName
		if result.Status != models.ResultSuccess {
			break
		}
	}

	if result == nil {
		return o.finishTurn(ctx, t, "I didn't do anything.", nil, nil, turnStatusCompleted)
	}

	var pending *models.PendingConfirmation
	if result.Status == models.ResultNeedsConfirmation {
		if conf, cerr := o.deps.Confirmations.PendingForSession(ctx, t.rc.SessionID); cerr == nil && conf.ID == result.ConfirmationID {
			pending = pendingView(conf)
			o.publishConfirmationCreated(ctx, t, conf)
		} else {
			pending = &models.PendingConfirmation{
				ID:       result.ConfirmationID,
				ToolName: t.lastTool,
				Prompt:   result.Prompt,
			}
		}
	}

	return o.finishTurn(ctx, t, summarizeResult(result), result, pending, statusFromResult(result))
}

// finishTurn persists the assistant reply under the turn's trace,
// publishes the turn events and assembles the response.
func (o *Orchestrator) finishTurn(ctx context.Context, t *turnState, text string, result *models.ToolResult, pending *models.PendingConfirmation, status string) (*models.TurnResponse, error) {
	var metadata map[string]any
	if result != nil {
		metadata = map[string]any{"tool_result": result}
	}

	msg, err := o.deps.Messages.SaveAssistantMessage(ctx, models.SaveAssistantMessageRequest{
		SessionID: t.rc.SessionID,
		UserID:    t.rc.UserID,
		Content:   text,
		Modality:  t.modality,
		TraceID:   t.rc.TraceID,
		Metadata:  metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist assistant message: %w", err)
	}

	o.publishTurnCompleted(ctx, t, status)
	if result != nil && result.Status == models.ResultDenied {
		o.publishPolicyDenied(ctx, t, result)
	}

	return &models.TurnResponse{
		SessionID:   t.rc.SessionID,
		MessageID:   msg.ID,
		TraceID:     t.rc.TraceID,
		Text:        text,
		ShouldSpeak: t.modality == models.ModalityVoice,
		Metadata:    metadata,
		Pending:     pending,
	}, nil
}

// Event publishing is best-effort: a failed publish never fails the
// turn the user already got an answer for.

func (o *Orchestrator) publishTurnCompleted(ctx context.Context, t *turnState, status string) {
	err := o.deps.Publisher.PublishTurnCompleted(ctx, events.TurnCompletedPayload{
		SessionID: t.rc.SessionID,
		TraceID:   t.rc.TraceID,
		Status:    status,
		ToolName:  t.lastTool,
		LatencyMs: time.Since(t.started).Milliseconds(),
		Timestamp: eventTimestamp(),
	})
	if err != nil {
		t.logger.Warn("Failed to publish turn.completed", "error", err)
	}
}

func (o *Orchestrator) publishConfirmationCreated(ctx context.Context, t *turnState, conf *ent.Confirmation) {
	err := o.deps.Publisher.PublishConfirmationCreated(ctx, events.ConfirmationCreatedPayload{
		SessionID:      t.rc.SessionID,
		ConfirmationID: conf.ID,
		ToolName:       conf.ToolName,
		RiskScore:      conf.RiskScore,
		ReasonCode:     conf.ReasonCode,
		Timestamp:      eventTimestamp(),
	})
	if err != nil {
		t.logger.Warn("Failed to publish confirmation.created", "error", err)
	}
}

func (o *Orchestrator) publishConfirmationResolved(ctx context.Context, t *turnState, resolution *services.Resolution) {
	err := o.deps.Publisher.PublishConfirmationResolved(ctx, events.ConfirmationResolvedPayload{
		SessionID:      t.rc.SessionID,
		ConfirmationID: resolution.Confirmation.ID,
		ToolName:       resolution.Confirmation.ToolName,
		Outcome:        string(resolution.Outcome),
		Timestamp:      eventTimestamp(),
	})
	if err != nil {
		t.logger.Warn("Failed to publish confirmation.resolved", "error", err)
	}
}

func (o *Orchestrator) publishPolicyDenied(ctx context.Context, t *turnState, result *models.ToolResult) {
	err := o.deps.Publisher.PublishPolicyDenied(ctx, events.PolicyDeniedPayload{
		SessionID: t.rc.SessionID,
		ToolName:  t.lastTool,
		ErrorCode: result.ErrorCode,
		Reason:    result.Error,
		Timestamp: eventTimestamp(),
	})
	if err != nil {
		t.logger.Warn("Failed to publish policy.denied", "error", err)
	}
}

// deriveTurnKey computes the implicit idempotency key for an utterance
// submitted without one: the same words in the same session map onto
// the same turn.
func deriveTurnKey(sessionID, content string) string {
	sum := sha256.Sum256([]byte(sessionID + ":" + content))
	return hex.EncodeToString(sum[:])
}

func statusFromResult(result *models.ToolResult) string {
	switch result.Status {
	case models.ResultSuccess:
		return turnStatusCompleted
	case models.ResultNeedsConfirmation:
		return turnStatusNeedsConfirm
	case models.ResultDenied:
		return turnStatusDenied
	default:
		return turnStatusError
	}
}

// pendingView is the user-facing projection of a confirmation row.
func pendingView(conf *ent.Confirmation) *models.PendingConfirmation {
	view := &models.PendingConfirmation{
		ID:        conf.ID,
		ToolName:  conf.ToolName,
		Prompt:    conf.Prompt,
		ExpiresAt: conf.ExpiresAt,
	}
	if conf.RequiredPhrase != nil {
		view.RequiredPhrase = *conf.RequiredPhrase
	}
	return view
}

func eventTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
