package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/confirmation"
	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/models"
)

// defaultConfirmationTTL bounds how long a pending confirmation stays
// answerable.
const defaultConfirmationTTL = 5 * time.Minute

// ResolutionOutcome classifies how one resolution attempt ended.
type ResolutionOutcome string

const (
	// ResolutionAccepted means the user approved; the linked execution moved
	// to CONFIRMED and can resume.
	ResolutionAccepted ResolutionOutcome = "accepted"
	// ResolutionStillPending means the required phrase was not matched; the
	// confirmation stays answerable.
	ResolutionStillPending ResolutionOutcome = "still_pending"
	// ResolutionFailed means the confirmation can no longer be accepted.
	ResolutionFailed ResolutionOutcome = "failed"
)

// Resolution is the outcome of one confirmation resolution attempt.
// Message carries the re-prompt for still-pending outcomes and the failure
// reason otherwise.
type Resolution struct {
	Outcome      ResolutionOutcome
	Message      string
	Confirmation *ent.Confirmation
}

// ConfirmationService manages the approval gates in front of risky tool
// executions. At most one PENDING confirmation exists per session.
type ConfirmationService struct {
	client *ent.Client
	ttl    time.Duration
}

// NewConfirmationService creates a new ConfirmationService. ttl bounds how
// long created confirmations stay answerable.
func NewConfirmationService(client *ent.Client, ttl time.Duration) *ConfirmationService {
	if ttl <= 0 {
		ttl = defaultConfirmationTTL
	}
	return &ConfirmationService{client: client, ttl: ttl}
}

// CreateConfirmation inserts a new PENDING confirmation for an execution,
// cancelling any other pending confirmation in the session first. A prior
// pending row gating the same execution is cancelled without touching the
// execution, so re-confirmation attempts keep it AWAITING_CONFIRMATION.
func (s *ConfirmationService) CreateConfirmation(_ context.Context, req models.CreateConfirmationRequest) (*ent.Confirmation, error) {
	if req.ToolExecutionID == "" {
		return nil, NewValidationError("tool_execution_id", "required")
	}
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.ToolName == "" {
		return nil, NewValidationError("tool_name", "required")
	}
	if req.Prompt == "" {
		return nil, NewValidationError("prompt", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	pending, err := tx.Confirmation.Query().
		Where(
			confirmation.SessionIDEQ(req.SessionID),
			confirmation.StatusEQ(confirmation.StatusPending),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending confirmations: %w", err)
	}
	for _, prior := range pending {
		err = tx.Confirmation.UpdateOneID(prior.ID).
			SetStatus(confirmation.StatusCancelled).
			SetResolvedAt(now).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to cancel prior confirmation: %w", err)
		}
		if prior.ToolExecutionID == req.ToolExecutionID {
			continue
		}
		_, err = tx.ToolExecution.Update().
			Where(
				toolexecution.IDEQ(prior.ToolExecutionID),
				toolexecution.StatusEQ(toolexecution.StatusAwaitingConfirmation),
			).
			SetStatus(toolexecution.StatusCancelled).
			SetFinishedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to cancel superseded execution: %w", err)
		}
	}

	builder := tx.Confirmation.Create().
		SetID(uuid.New().String()).
		SetToolExecutionID(req.ToolExecutionID).
		SetSessionID(req.SessionID).
		SetUserID(req.UserID).
		SetToolName(req.ToolName).
		SetDecisionType(req.DecisionType).
		SetStatus(confirmation.StatusPending).
		SetPrompt(req.Prompt).
		SetRiskScore(req.RiskScore).
		SetReasonCode(req.ReasonCode).
		SetExpiresAt(now.Add(s.ttl))
	if req.Args != nil {
		builder.SetArgs(req.Args)
	}
	if req.RequiredPhrase != "" {
		builder.SetRequiredPhrase(req.RequiredPhrase)
	}
	if req.TraceID != "" {
		builder.SetTraceID(req.TraceID)
	}

	conf, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create confirmation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit confirmation: %w", err)
	}
	return conf, nil
}

// PendingForSession returns the session's live PENDING confirmation, newest
// first. Returns ErrNotFound when nothing is pending.
func (s *ConfirmationService) PendingForSession(ctx context.Context, sessionID string) (*ent.Confirmation, error) {
	conf, err := s.client.Confirmation.Query().
		Where(
			confirmation.SessionIDEQ(sessionID),
			confirmation.StatusEQ(confirmation.StatusPending),
		).
		Order(ent.Desc(confirmation.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pending confirmation: %w", err)
	}
	return conf, nil
}

// ResolveConfirmation applies one user utterance to a pending confirmation.
// An expired confirmation is transitioned to EXPIRED (and its execution
// along with it) as part of the attempt. When a required phrase is set, the
// utterance must contain it (case-insensitive) to accept; any utterance
// accepts otherwise.
func (s *ConfirmationService) ResolveConfirmation(_ context.Context, userID, sessionID, confirmationID, utterance string) (*Resolution, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conf, err := s.client.Confirmation.Query().
		Where(
			confirmation.IDEQ(confirmationID),
			confirmation.UserIDEQ(userID),
			confirmation.SessionIDEQ(sessionID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get confirmation: %w", err)
	}

	if conf.Status != confirmation.StatusPending {
		return &Resolution{
			Outcome:      ResolutionFailed,
			Message:      fmt.Sprintf("already_%s", conf.Status),
			Confirmation: conf,
		}, nil
	}

	now := time.Now()
	if now.After(conf.ExpiresAt) {
		expired, err := s.expire(ctx, conf, now)
		if err != nil {
			return nil, err
		}
		return &Resolution{
			Outcome:      ResolutionFailed,
			Message:      "Confirmation expired",
			Confirmation: expired,
		}, nil
	}

	if conf.RequiredPhrase != nil && *conf.RequiredPhrase != "" {
		phrase := strings.ToLower(*conf.RequiredPhrase)
		if !strings.Contains(strings.ToLower(utterance), phrase) {
			return &Resolution{
				Outcome:      ResolutionStillPending,
				Message:      fmt.Sprintf("Please say exactly: '%s' to confirm.", *conf.RequiredPhrase),
				Confirmation: conf,
			}, nil
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	count, err := tx.Confirmation.Update().
		Where(
			confirmation.IDEQ(conf.ID),
			confirmation.StatusEQ(confirmation.StatusPending),
		).
		SetStatus(confirmation.StatusAccepted).
		SetResolvedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to accept confirmation: %w", err)
	}
	if count == 0 {
		// Another resolver got here first; report the current state.
		current, err := s.client.Confirmation.Get(ctx, conf.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload confirmation: %w", err)
		}
		return &Resolution{
			Outcome:      ResolutionFailed,
			Message:      fmt.Sprintf("already_%s", current.Status),
			Confirmation: current,
		}, nil
	}

	// Move the gated execution forward. A zero count means something else
	// already advanced it; the runtime's reservation path sorts that out.
	_, err = tx.ToolExecution.Update().
		Where(
			toolexecution.IDEQ(conf.ToolExecutionID),
			toolexecution.StatusEQ(toolexecution.StatusAwaitingConfirmation),
		).
		SetStatus(toolexecution.StatusConfirmed).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit resolution: %w", err)
	}

	accepted, err := s.client.Confirmation.Get(ctx, conf.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload confirmation: %w", err)
	}
	return &Resolution{Outcome: ResolutionAccepted, Confirmation: accepted}, nil
}

// ConsumeAccepted claims the one-shot approval an ACCEPTED confirmation
// grants: the newest unexpired row whose (tool_name, args) matches is
// marked CONSUMED and returned. ErrNotFound when nothing matches.
func (s *ConfirmationService) ConsumeAccepted(_ context.Context, userID, sessionID, toolName string, args map[string]any) (*ent.Confirmation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	candidates, err := s.client.Confirmation.Query().
		Where(
			confirmation.UserIDEQ(userID),
			confirmation.SessionIDEQ(sessionID),
			confirmation.ToolNameEQ(toolName),
			confirmation.StatusEQ(confirmation.StatusAccepted),
			confirmation.ExpiresAtGT(now),
		).
		Order(ent.Desc(confirmation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query accepted confirmations: %w", err)
	}

	for _, conf := range candidates {
		if !argsEqual(conf.Args, args) {
			continue
		}
		count, err := s.client.Confirmation.Update().
			Where(
				confirmation.IDEQ(conf.ID),
				confirmation.StatusEQ(confirmation.StatusAccepted),
			).
			SetStatus(confirmation.StatusConsumed).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to consume confirmation: %w", err)
		}
		if count == 0 {
			// Lost the one-shot race; keep scanning.
			continue
		}
		consumed, err := s.client.Confirmation.Get(ctx, conf.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload confirmation: %w", err)
		}
		return consumed, nil
	}

	return nil, ErrNotFound
}

// CancelConfirmation cancels a pending confirmation on explicit user
// request, cancelling the gated execution with it.
func (s *ConfirmationService) CancelConfirmation(_ context.Context, userID, sessionID, confirmationID string) (*ent.Confirmation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conf, err := s.client.Confirmation.Query().
		Where(
			confirmation.IDEQ(confirmationID),
			confirmation.UserIDEQ(userID),
			confirmation.SessionIDEQ(sessionID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get confirmation: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	count, err := tx.Confirmation.Update().
		Where(
			confirmation.IDEQ(conf.ID),
			confirmation.StatusEQ(confirmation.StatusPending),
		).
		SetStatus(confirmation.StatusCancelled).
		SetResolvedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel confirmation: %w", err)
	}
	if count == 0 {
		return nil, ErrConcurrentModification
	}

	_, err = tx.ToolExecution.Update().
		Where(
			toolexecution.IDEQ(conf.ToolExecutionID),
			toolexecution.StatusEQ(toolexecution.StatusAwaitingConfirmation),
		).
		SetStatus(toolexecution.StatusCancelled).
		SetFinishedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	cancelled, err := s.client.Confirmation.Get(ctx, conf.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload confirmation: %w", err)
	}
	return cancelled, nil
}

// ExpirePending sweeps confirmations whose TTL has lapsed, expiring their
// gated executions with them. Returns how many confirmations were expired.
func (s *ConfirmationService) ExpirePending(_ context.Context, now time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	lapsed, err := tx.Confirmation.Query().
		Where(
			confirmation.StatusEQ(confirmation.StatusPending),
			confirmation.ExpiresAtLTE(now),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query lapsed confirmations: %w", err)
	}
	if len(lapsed) == 0 {
		return 0, tx.Commit()
	}

	ids := make([]string, 0, len(lapsed))
	execIDs := make([]string, 0, len(lapsed))
	for _, conf := range lapsed {
		ids = append(ids, conf.ID)
		execIDs = append(execIDs, conf.ToolExecutionID)
	}

	count, err := tx.Confirmation.Update().
		Where(
			confirmation.IDIn(ids...),
			confirmation.StatusEQ(confirmation.StatusPending),
		).
		SetStatus(confirmation.StatusExpired).
		SetResolvedAt(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire confirmations: %w", err)
	}

	_, err = tx.ToolExecution.Update().
		Where(
			toolexecution.IDIn(execIDs...),
			toolexecution.StatusEQ(toolexecution.StatusAwaitingConfirmation),
		).
		SetStatus(toolexecution.StatusExpired).
		SetFinishedAt(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire executions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit expiry sweep: %w", err)
	}
	return count, nil
}

// expire transitions one lapsed confirmation and its execution to EXPIRED.
func (s *ConfirmationService) expire(ctx context.Context, conf *ent.Confirmation, now time.Time) (*ent.Confirmation, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Confirmation.Update().
		Where(
			confirmation.IDEQ(conf.ID),
			confirmation.StatusEQ(confirmation.StatusPending),
		).
		SetStatus(confirmation.StatusExpired).
		SetResolvedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to expire confirmation: %w", err)
	}

	_, err = tx.ToolExecution.Update().
		Where(
			toolexecution.IDEQ(conf.ToolExecutionID),
			toolexecution.StatusEQ(toolexecution.StatusAwaitingConfirmation),
		).
		SetStatus(toolexecution.StatusExpired).
		SetFinishedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to expire execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expiry: %w", err)
	}

	expired, err := s.client.Confirmation.Get(ctx, conf.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload confirmation: %w", err)
	}
	return expired, nil
}

// argsEqual compares two argument maps by canonical JSON encoding. Both
// sides have round-tripped through JSON so numeric types agree.
func argsEqual(a, b map[string]any) bool {
	if a == nil {
		a = map[string]any{}
	}
	if b == nil {
		b = map[string]any{}
	}
	aj, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bj, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(aj, bj)
}
