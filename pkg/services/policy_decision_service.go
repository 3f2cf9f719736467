package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/policydecision"
	"github.com/valet-assistant/valet/pkg/models"
)

// PolicyDecisionService records policy evaluations. Decisions are pure
// audit trail: rows are written on the execution path but only ever read
// back by dashboards and history views.
type PolicyDecisionService struct {
	client *ent.Client
}

// NewPolicyDecisionService creates a new PolicyDecisionService
func NewPolicyDecisionService(client *ent.Client) *PolicyDecisionService {
	return &PolicyDecisionService{client: client}
}

// RecordDecision persists one evaluation outcome.
func (s *PolicyDecisionService) RecordDecision(_ context.Context, req models.RecordPolicyDecisionRequest) (*ent.PolicyDecision, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.ToolName == "" {
		return nil, NewValidationError("tool_name", "required")
	}
	if req.Decision == "" {
		return nil, NewValidationError("decision", "required")
	}
	if req.ReasonCode == "" {
		return nil, NewValidationError("reason_code", "required")
	}
	mode := req.Mode
	if mode == "" {
		mode = string(policydecision.ModeEnforce)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.PolicyDecision.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetUserID(req.UserID).
		SetToolName(req.ToolName).
		SetDecision(req.Decision).
		SetRiskScore(req.RiskScore).
		SetReasonCode(req.ReasonCode).
		SetMode(policydecision.Mode(mode))
	if req.IntentSummary != "" {
		builder.SetIntentSummary(req.IntentSummary)
	}
	if req.ToolExecutionID != "" {
		builder.SetToolExecutionID(req.ToolExecutionID)
	}

	decision, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record policy decision: %w", err)
	}
	return decision, nil
}

// ListBySession returns a session's decisions newest first
func (s *PolicyDecisionService) ListBySession(ctx context.Context, sessionID string, limit int) ([]*ent.PolicyDecision, error) {
	if limit <= 0 {
		limit = 50
	}
	decisions, err := s.client.PolicyDecision.Query().
		Where(policydecision.SessionIDEQ(sessionID)).
		Order(ent.Desc(policydecision.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list policy decisions: %w", err)
	}
	return decisions, nil
}
