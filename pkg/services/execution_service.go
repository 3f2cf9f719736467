package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/models"
)

// maxStoredErrorLen caps error text persisted on execution rows.
const maxStoredErrorLen = 256

// ExecutionService owns tool execution rows and their status transitions.
// Every transition is compare-and-set: the update is conditioned on the
// expected current status, and a zero row count means another writer got
// there first (or the row is already terminal).
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// ExecutionUpdate carries the optional fields written alongside a status
// transition.
type ExecutionUpdate struct {
	Result      map[string]any
	Error       string
	ErrorCode   string
	SetStarted  bool
	SetFinished bool
}

// ReserveExecution claims the (user, idempotency key) slot for a tool
// invocation. existing=true means a prior attempt already holds the slot
// and its row is returned instead of inserting a new one.
func (s *ExecutionService) ReserveExecution(_ context.Context, req models.ReserveExecutionRequest) (*ent.ToolExecution, bool, error) {
	if req.SessionID == "" {
		return nil, false, NewValidationError("session_id", "required")
	}
	if req.UserID == "" {
		return nil, false, NewValidationError("user_id", "required")
	}
	if req.ToolName == "" {
		return nil, false, NewValidationError("tool_name", "required")
	}
	if req.IdempotencyKey == "" {
		return nil, false, NewValidationError("idempotency_key", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.ToolExecution.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetUserID(req.UserID).
		SetToolName(req.ToolName).
		SetIdempotencyKey(req.IdempotencyKey).
		SetStatus(toolexecution.StatusRequested)
	if req.Input != nil {
		builder.SetInput(req.Input)
	}
	if req.TraceID != "" {
		builder.SetTraceID(req.TraceID)
	}

	exec, err := builder.Save(ctx)
	if err != nil {
		// A key collision means a prior attempt holds the slot.
		if ent.IsConstraintError(err) {
			existing, lookupErr := s.client.ToolExecution.Query().
				Where(
					toolexecution.UserIDEQ(req.UserID),
					toolexecution.IdempotencyKeyEQ(req.IdempotencyKey),
				).
				Only(ctx)
			if lookupErr != nil {
				return nil, false, fmt.Errorf("failed to load reserved execution: %w", lookupErr)
			}
			return existing, true, nil
		}
		return nil, false, fmt.Errorf("failed to reserve execution: %w", err)
	}

	return exec, false, nil
}

// Transition moves an execution from exactly one expected status to the
// next, applying the update fields in the same statement. A lost race
// returns ErrConcurrentModification and writes nothing.
func (s *ExecutionService) Transition(_ context.Context, executionID string, from, to toolexecution.Status, update ExecutionUpdate) (*ent.ToolExecution, error) {
	return s.transition(executionID, []toolexecution.Status{from}, to, update)
}

// TransitionFromAny moves an execution to the target status from any of the
// allowed source statuses.
func (s *ExecutionService) TransitionFromAny(_ context.Context, executionID string, from []toolexecution.Status, to toolexecution.Status, update ExecutionUpdate) (*ent.ToolExecution, error) {
	return s.transition(executionID, from, to, update)
}

func (s *ExecutionService) transition(executionID string, from []toolexecution.Status, to toolexecution.Status, update ExecutionUpdate) (*ent.ToolExecution, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.ToolExecution.Update().
		Where(
			toolexecution.IDEQ(executionID),
			toolexecution.StatusIn(from...),
		).
		SetStatus(to)
	if update.Result != nil {
		builder.SetResult(update.Result)
	}
	if update.Error != "" {
		builder.SetError(truncateError(update.Error))
	}
	if update.ErrorCode != "" {
		builder.SetErrorCode(update.ErrorCode)
	}
	if update.SetStarted {
		builder.SetStartedAt(time.Now())
	}
	if update.SetFinished {
		builder.SetFinishedAt(time.Now())
	}

	count, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition execution to %s: %w", to, err)
	}
	if count == 0 {
		exists, err := s.client.ToolExecution.Query().
			Where(toolexecution.IDEQ(executionID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check execution: %w", err)
		}
		if !exists {
			return nil, ErrNotFound
		}
		return nil, ErrConcurrentModification
	}

	exec, err := s.client.ToolExecution.Get(ctx, executionID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload execution: %w", err)
	}
	return exec, nil
}

// GetExecution retrieves an execution by ID
func (s *ExecutionService) GetExecution(ctx context.Context, executionID string) (*ent.ToolExecution, error) {
	exec, err := s.client.ToolExecution.Get(ctx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	return exec, nil
}

// GetByIdempotencyKey retrieves the execution holding a reservation slot
func (s *ExecutionService) GetByIdempotencyKey(ctx context.Context, userID, key string) (*ent.ToolExecution, error) {
	exec, err := s.client.ToolExecution.Query().
		Where(
			toolexecution.UserIDEQ(userID),
			toolexecution.IdempotencyKeyEQ(key),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution by key: %w", err)
	}
	return exec, nil
}

// ListBySession returns a session's executions oldest first
func (s *ExecutionService) ListBySession(ctx context.Context, sessionID string) ([]*ent.ToolExecution, error) {
	executions, err := s.client.ToolExecution.Query().
		Where(toolexecution.SessionIDEQ(sessionID)).
		Order(ent.Asc(toolexecution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	return executions, nil
}

// FailStaleRunning force-fails executions stuck in RUNNING longer than
// olderThan. Covers crashes between starting a handler and persisting its
// outcome. Returns how many rows were failed.
func (s *ExecutionService) FailStaleRunning(_ context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.ToolExecution.Update().
		Where(
			toolexecution.StatusEQ(toolexecution.StatusRunning),
			toolexecution.StartedAtLT(cutoff),
		).
		SetStatus(toolexecution.StatusFailed).
		SetError("tool execution exceeded its deadline").
		SetErrorCode("DEADLINE_EXCEEDED").
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fail stale executions: %w", err)
	}
	return count, nil
}

// IsTerminalStatus reports whether a status absorbs all further transitions.
func IsTerminalStatus(status toolexecution.Status) bool {
	switch status {
	case toolexecution.StatusSucceeded,
		toolexecution.StatusFailed,
		toolexecution.StatusCancelled,
		toolexecution.StatusExpired,
		toolexecution.StatusPolicyDenied:
		return true
	default:
		return false
	}
}

// truncateError caps stored error text at maxStoredErrorLen characters.
func truncateError(msg string) string {
	runes := []rune(msg)
	if len(runes) > maxStoredErrorLen {
		return string(runes[:maxStoredErrorLen])
	}
	return msg
}
