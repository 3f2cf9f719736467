package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/toolcall"
	"github.com/valet-assistant/valet/pkg/models"
)

// ToolCallService records the audit trail of runtime attempts, including
// ones that never reached a handler.
type ToolCallService struct {
	client *ent.Client
}

// NewToolCallService creates a new ToolCallService
func NewToolCallService(client *ent.Client) *ToolCallService {
	return &ToolCallService{client: client}
}

// RecordToolCall persists one audit row. Audit failures must not mask the
// execution outcome, so callers log and continue on error.
func (s *ToolCallService) RecordToolCall(_ context.Context, req models.RecordToolCallRequest) (*ent.ToolCall, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.ToolName == "" {
		return nil, NewValidationError("tool_name", "required")
	}
	if req.Status == "" {
		return nil, NewValidationError("status", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.ToolCall.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetUserID(req.UserID).
		SetToolName(req.ToolName).
		SetStatus(toolcall.Status(req.Status)).
		SetExecuted(req.Executed).
		SetLatencyMs(req.LatencyMs)
	if req.Args != nil {
		builder.SetArgs(req.Args)
	}
	if req.Result != nil {
		builder.SetResult(req.Result)
	}
	if req.ErrorCode != "" {
		builder.SetErrorCode(req.ErrorCode)
	}
	if req.ExecutionID != "" {
		builder.SetToolExecutionID(req.ExecutionID)
	}
	if req.TraceID != "" {
		builder.SetTraceID(req.TraceID)
	}

	call, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record tool call: %w", err)
	}
	return call, nil
}

// ListBySession returns a session's audit rows newest first
func (s *ToolCallService) ListBySession(ctx context.Context, sessionID string, limit int) ([]*ent.ToolCall, error) {
	if limit <= 0 {
		limit = 50
	}
	calls, err := s.client.ToolCall.Query().
		Where(toolcall.SessionIDEQ(sessionID)).
		Order(ent.Desc(toolcall.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tool calls: %w", err)
	}
	return calls, nil
}
