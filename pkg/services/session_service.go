package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/agentmessage"
	"github.com/valet-assistant/valet/ent/confirmation"
	"github.com/valet-assistant/valet/ent/policydecision"
	"github.com/valet-assistant/valet/ent/session"
	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/models"
)

// SessionService manages conversation session lifecycle
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// SessionActive reports whether a session can still serve requests:
// not revoked and not past its expiry.
func SessionActive(sess *ent.Session, now time.Time) bool {
	if sess.RevokedAt != nil {
		return false
	}
	if sess.ExpiresAt != nil && !now.Before(*sess.ExpiresAt) {
		return false
	}
	return true
}

// CreateSession opens a new session for a user
func (s *SessionService) CreateSession(_ context.Context, userID string, req models.CreateSessionRequest) (*ent.Session, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	modality := req.Modality
	if modality == "" {
		modality = models.ModalityText
	}
	if modality != models.ModalityText && modality != models.ModalityVoice {
		return nil, NewValidationError("modality", "must be text or voice")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Session.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetModality(session.Modality(modality)).
		SetStartedAt(time.Now()).
		SetLastActivityAt(time.Now())

	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	sess, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to create session: %w", ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, nil
}

// GetSession retrieves a session by ID
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// GetOwnedSession retrieves a session scoped to its owner. A session
// belonging to a different user is reported as not found.
func (s *SessionService) GetOwnedSession(ctx context.Context, userID, sessionID string) (*ent.Session, error) {
	sess, err := s.client.Session.Query().
		Where(session.IDEQ(sessionID), session.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// GetActiveSession retrieves an owned session and rejects revoked or
// expired ones with ErrSessionInactive.
func (s *SessionService) GetActiveSession(ctx context.Context, userID, sessionID string) (*ent.Session, error) {
	sess, err := s.GetOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !SessionActive(sess, time.Now()) {
		return nil, ErrSessionInactive
	}
	return sess, nil
}

// TouchActivity bumps a session's last activity timestamp
func (s *SessionService) TouchActivity(_ context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Session.UpdateOneID(sessionID).
		SetLastActivityAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to touch session activity: %w", err)
	}
	return nil
}

// RevokeSession revokes an owned session and cancels any pending
// confirmation (and its awaiting execution) in the same transaction.
func (s *SessionService) RevokeSession(_ context.Context, userID, sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	count, err := tx.Session.Update().
		Where(
			session.IDEQ(sessionID),
			session.UserIDEQ(userID),
			session.RevokedAtIsNil(),
		).
		SetRevokedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	if count == 0 {
		// Distinguish a missing session from an already-revoked one.
		exists, err := tx.Session.Query().
			Where(session.IDEQ(sessionID), session.UserIDEQ(userID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check session: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return tx.Commit()
	}

	pending, err := tx.Confirmation.Query().
		Where(
			confirmation.SessionIDEQ(sessionID),
			confirmation.StatusEQ(confirmation.StatusPending),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query pending confirmations: %w", err)
	}
	for _, conf := range pending {
		err = tx.Confirmation.UpdateOneID(conf.ID).
			SetStatus(confirmation.StatusCancelled).
			SetResolvedAt(time.Now()).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to cancel confirmation: %w", err)
		}
		_, err = tx.ToolExecution.Update().
			Where(
				toolexecution.IDEQ(conf.ToolExecutionID),
				toolexecution.StatusEQ(toolexecution.StatusAwaitingConfirmation),
			).
			SetStatus(toolexecution.StatusCancelled).
			SetFinishedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to cancel awaiting execution: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit revoke: %w", err)
	}
	return nil
}

// ListSessions lists a user's sessions, newest activity first
func (s *SessionService) ListSessions(ctx context.Context, userID string, filters models.SessionFilters) (*models.SessionListResponse, error) {
	query := s.client.Session.Query().
		Where(session.UserIDEQ(userID))

	if filters.Active {
		now := time.Now()
		query = query.Where(
			session.RevokedAtIsNil(),
			session.Or(
				session.ExpiresAtIsNil(),
				session.ExpiresAtGT(now),
			),
		)
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(session.FieldLastActivityAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// GetSessionHistory returns the full transcript view of one owned
// session: messages in order plus the execution and decision audit trail
// and any live pending confirmation.
func (s *SessionService) GetSessionHistory(ctx context.Context, userID, sessionID string) (*models.SessionHistoryResponse, error) {
	sess, err := s.GetOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	messages, err := s.client.AgentMessage.Query().
		Where(agentmessage.SessionIDEQ(sessionID)).
		Order(ent.Asc(agentmessage.FieldCreatedAt), ent.Asc(agentmessage.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	executions, err := s.client.ToolExecution.Query().
		Where(toolexecution.SessionIDEQ(sessionID)).
		Order(ent.Asc(toolexecution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get executions: %w", err)
	}

	decisions, err := s.client.PolicyDecision.Query().
		Where(policydecision.SessionIDEQ(sessionID)).
		Order(ent.Asc(policydecision.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get policy decisions: %w", err)
	}

	now := time.Now()
	pendingRows, err := s.client.Confirmation.Query().
		Where(
			confirmation.SessionIDEQ(sessionID),
			confirmation.StatusEQ(confirmation.StatusPending),
			confirmation.ExpiresAtGT(now),
		).
		Order(ent.Desc(confirmation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending confirmations: %w", err)
	}

	pending := make([]*models.PendingConfirmation, 0, len(pendingRows))
	for _, conf := range pendingRows {
		pending = append(pending, PendingConfirmationView(conf))
	}

	return &models.SessionHistoryResponse{
		Session:         sess,
		Messages:        messages,
		Executions:      executions,
		PolicyDecisions: decisions,
		Pending:         pending,
	}, nil
}

// ExpireIdleSessions stamps an expiry on sessions with no activity for
// longer than ttl. Returns how many sessions were expired.
func (s *SessionService) ExpireIdleSessions(_ context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, nil
	}
	cutoff := time.Now().Add(-ttl)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Session.Update().
		Where(
			session.RevokedAtIsNil(),
			session.ExpiresAtIsNil(),
			session.LastActivityAtLT(cutoff),
		).
		SetExpiresAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire idle sessions: %w", err)
	}
	return count, nil
}

// PendingConfirmationView converts a confirmation row to its
// user-facing shape.
func PendingConfirmationView(conf *ent.Confirmation) *models.PendingConfirmation {
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
