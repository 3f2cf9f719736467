package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/agentmessage"
	"github.com/valet-assistant/valet/pkg/models"
)

// MessageService persists conversation messages
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// SaveUserMessage persists one user turn. When the idempotency key matches
// an already-stored user message in the session, the stored row is returned
// with deduplicated=true instead of inserting a second one.
func (s *MessageService) SaveUserMessage(_ context.Context, req models.SaveUserMessageRequest) (*ent.AgentMessage, bool, error) {
	// Validate input
	if req.SessionID == "" {
		return nil, false, NewValidationError("session_id", "required")
	}
	if req.UserID == "" {
		return nil, false, NewValidationError("user_id", "required")
	}
	if req.Content == "" {
		return nil, false, NewValidationError("content", "required")
	}
	modality := req.Modality
	if modality == "" {
		modality = models.ModalityText
	}

	// Use background context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.AgentMessage.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetUserID(req.UserID).
		SetRole(agentmessage.RoleUser).
		SetContent(req.Content).
		SetModality(agentmessage.Modality(modality)).
		SetStatus(agentmessage.StatusCompleted)
	if req.IdempotencyKey != "" {
		builder.SetIdempotencyKey(req.IdempotencyKey)
	}
	if req.TraceID != "" {
		builder.SetTraceID(req.TraceID)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		// A key collision lands on the already-stored turn.
		if ent.IsConstraintError(err) && req.IdempotencyKey != "" {
			existing, lookupErr := s.client.AgentMessage.Query().
				Where(
					agentmessage.SessionIDEQ(req.SessionID),
					agentmessage.IdempotencyKeyEQ(req.IdempotencyKey),
					agentmessage.RoleEQ(agentmessage.RoleUser),
				).
				Only(ctx)
			if lookupErr != nil {
				return nil, false, fmt.Errorf("failed to load deduplicated message: %w", lookupErr)
			}
			return existing, true, nil
		}
		return nil, false, fmt.Errorf("failed to save user message: %w", err)
	}

	return msg, false, nil
}

// SaveAssistantMessage persists the assistant reply for a turn. The trace id
// correlates it with the user message that triggered it.
func (s *MessageService) SaveAssistantMessage(_ context.Context, req models.SaveAssistantMessageRequest) (*ent.AgentMessage, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}
	modality := req.Modality
	if modality == "" {
		modality = models.ModalityText
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.AgentMessage.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetUserID(req.UserID).
		SetRole(agentmessage.RoleAssistant).
		SetContent(req.Content).
		SetModality(agentmessage.Modality(modality)).
		SetStatus(agentmessage.StatusCompleted)
	if req.TraceID != "" {
		builder.SetTraceID(req.TraceID)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save assistant message: %w", err)
	}

	return msg, nil
}

// RecentMessages returns the last n messages of a session in chronological
// order (oldest first).
func (s *MessageService) RecentMessages(ctx context.Context, sessionID string, n int) ([]*ent.AgentMessage, error) {
	if n <= 0 {
		return nil, nil
	}

	messages, err := s.client.AgentMessage.Query().
		Where(agentmessage.SessionIDEQ(sessionID)).
		Order(ent.Desc(agentmessage.FieldCreatedAt), ent.Desc(agentmessage.FieldID)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent messages: %w", err)
	}

	// Reverse into chronological order
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// ListMessages returns a page of a session's transcript in order, plus the
// total message count.
func (s *MessageService) ListMessages(ctx context.Context, sessionID string, limit, offset int) ([]*ent.AgentMessage, int, error) {
	query := s.client.AgentMessage.Query().
		Where(agentmessage.SessionIDEQ(sessionID))

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	messages, err := query.
		Order(ent.Asc(agentmessage.FieldCreatedAt), ent.Asc(agentmessage.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, totalCount, nil
}

// AssistantReplyForTrace finds the assistant message correlated with a trace
// id, newest first. Returns ErrNotFound when the turn has no reply yet.
func (s *MessageService) AssistantReplyForTrace(ctx context.Context, sessionID, traceID string) (*ent.AgentMessage, error) {
	if traceID == "" {
		return nil, ErrNotFound
	}

	msg, err := s.client.AgentMessage.Query().
		Where(
			agentmessage.SessionIDEQ(sessionID),
			agentmessage.TraceIDEQ(traceID),
			agentmessage.RoleEQ(agentmessage.RoleAssistant),
		).
		Order(ent.Desc(agentmessage.FieldCreatedAt), ent.Desc(agentmessage.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get assistant reply: %w", err)
	}

	return msg, nil
}
