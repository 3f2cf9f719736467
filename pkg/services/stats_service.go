package services

import (
	"context"
	"fmt"
	"time"

	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/agentmessage"
	"github.com/valet-assistant/valet/ent/confirmation"
	"github.com/valet-assistant/valet/ent/memory"
	"github.com/valet-assistant/valet/ent/policydecision"
	"github.com/valet-assistant/valet/ent/session"
	"github.com/valet-assistant/valet/ent/toolcall"
	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/models"
	"github.com/valet-assistant/valet/pkg/redact"
)

const previewMaxLen = 120

// StatsService produces operator-facing rollups for the admin endpoints.
// Read-only: it never writes.
type StatsService struct {
	client *ent.Client
}

// NewStatsService creates a new StatsService
func NewStatsService(client *ent.Client) *StatsService {
	return &StatsService{client: client}
}

// GetSystemStats returns whole-deployment counters
func (s *StatsService) GetSystemStats(ctx context.Context) (*models.SystemStats, error) {
	now := time.Now()
	stats := &models.SystemStats{}

	var err error
	if stats.Users, err = s.client.User.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if stats.Sessions, err = s.client.Session.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}
	stats.ActiveSessions, err = s.client.Session.Query().
		Where(
			session.RevokedAtIsNil(),
			session.Or(session.ExpiresAtIsNil(), session.ExpiresAtGT(now)),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active sessions: %w", err)
	}
	if stats.Messages, err = s.client.AgentMessage.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	var execRows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err = s.client.ToolExecution.Query().
		GroupBy(toolexecution.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &execRows)
	if err != nil {
		return nil, fmt.Errorf("failed to group executions: %w", err)
	}
	stats.ExecutionsByStatus = make(map[string]int, len(execRows))
	for _, row := range execRows {
		stats.ExecutionsByStatus[row.Status] = row.Count
	}

	var decisionRows []struct {
		Decision string `json:"decision"`
		Count    int    `json:"count"`
	}
	err = s.client.PolicyDecision.Query().
		GroupBy(policydecision.FieldDecision).
		Aggregate(ent.Count()).
		Scan(ctx, &decisionRows)
	if err != nil {
		return nil, fmt.Errorf("failed to group policy decisions: %w", err)
	}
	stats.DecisionCounts = make(map[string]int, len(decisionRows))
	for _, row := range decisionRows {
		stats.DecisionCounts[row.Decision] = row.Count
	}

	var callRows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err = s.client.ToolCall.Query().
		GroupBy(toolcall.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &callRows)
	if err != nil {
		return nil, fmt.Errorf("failed to group tool calls: %w", err)
	}
	stats.ToolCallsByStatus = make(map[string]int, len(callRows))
	for _, row := range callRows {
		stats.ToolCallsByStatus[row.Status] = row.Count
	}

	stats.ActiveMemories, err = s.client.Memory.Query().
		Where(
			memory.IsDeletedEQ(false),
			memory.Or(memory.ExpiresAtIsNil(), memory.ExpiresAtGT(now)),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count memories: %w", err)
	}
	stats.PendingConfirmations, err = s.client.Confirmation.Query().
		Where(
			confirmation.StatusEQ(confirmation.StatusPending),
			confirmation.ExpiresAtGT(now),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending confirmations: %w", err)
	}

	return stats, nil
}

// GetSessionSummary returns counters and a redacted conversation tail for
// one session.
func (s *StatsService) GetSessionSummary(ctx context.Context, sessionID string) (*models.SessionSummary, error) {
	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	now := time.Now()
	summary := &models.SessionSummary{
		SessionID:      sess.ID,
		UserID:         sess.UserID,
		State:          sessionState(sess, now),
		Modality:       string(sess.Modality),
		CreatedAt:      sess.StartedAt,
		LastActivityAt: sess.LastActivityAt,
	}

	summary.MessageCount, err = s.client.AgentMessage.Query().
		Where(agentmessage.SessionIDEQ(sessionID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}
	summary.ToolCallCount, err = s.client.ToolCall.Query().
		Where(toolcall.SessionIDEQ(sessionID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tool calls: %w", err)
	}

	var execRows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err = s.client.ToolExecution.Query().
		Where(toolexecution.SessionIDEQ(sessionID)).
		GroupBy(toolexecution.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &execRows)
	if err != nil {
		return nil, fmt.Errorf("failed to group executions: %w", err)
	}
	summary.ExecutionsByStatus = make(map[string]int, len(execRows))
	for _, row := range execRows {
		summary.ExecutionsByStatus[row.Status] = row.Count
	}

	summary.Denials, err = s.client.PolicyDecision.Query().
		Where(
			policydecision.SessionIDEQ(sessionID),
			policydecision.DecisionEQ("DENY"),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count denials: %w", err)
	}

	pending, err := s.client.Confirmation.Query().
		Where(
			confirmation.SessionIDEQ(sessionID),
			confirmation.StatusEQ(confirmation.StatusPending),
			confirmation.ExpiresAtGT(now),
		).
		Order(ent.Desc(confirmation.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get pending confirmation: %w", err)
	}
	if pending != nil {
		summary.Pending = PendingConfirmationView(pending)
	}

	tail, err := s.client.AgentMessage.Query().
		Where(agentmessage.SessionIDEQ(sessionID)).
		Order(ent.Desc(agentmessage.FieldCreatedAt), ent.Desc(agentmessage.FieldID)).
		Limit(5).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent messages: %w", err)
	}
	summary.RecentMessages = make([]models.MessagePreview, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		msg := tail[i]
		summary.RecentMessages = append(summary.RecentMessages, models.MessagePreview{
			Role:      string(msg.Role),
			Content:   truncatePreview(redact.Text(msg.Content)),
			CreatedAt: msg.CreatedAt,
		})
	}

	return summary, nil
}

func sessionState(sess *ent.Session, now time.Time) string {
	if sess.RevokedAt != nil {
		return "revoked"
	}
	if sess.ExpiresAt != nil && !now.Before(*sess.ExpiresAt) {
		return "expired"
	}
	return "active"
}

func truncatePreview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewMaxLen {
		return s
	}
	return string(runes[:previewMaxLen]) + "…"
}
