package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher appends ops-feed rows and broadcasts them via NOTIFY.
// The row insert and the pg_notify run in one transaction, so listeners
// only ever see committed events. Every publish also sends a transient
// copy to the global channel; that copy is NOTIFY-only and carries the
// same payload.
//
// Each public method accepts one typed payload struct — see payloads.go.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher. db is the pool from
// database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// PublishTurnCompleted publishes a turn.completed event for a session.
func (p *EventPublisher) PublishTurnCompleted(ctx context.Context, payload TurnCompletedPayload) error {
	payload.Type = EventTypeTurnCompleted
	return p.publish(ctx, payload.SessionID, payload)
}

// PublishConfirmationCreated publishes a confirmation.created event.
func (p *EventPublisher) PublishConfirmationCreated(ctx context.Context, payload ConfirmationCreatedPayload) error {
	payload.Type = EventTypeConfirmationCreated
	return p.publish(ctx, payload.SessionID, payload)
}

// PublishConfirmationResolved publishes a confirmation.resolved event.
func (p *EventPublisher) PublishConfirmationResolved(ctx context.Context, payload ConfirmationResolvedPayload) error {
	payload.Type = EventTypeConfirmationResolved
	return p.publish(ctx, payload.SessionID, payload)
}

// PublishPolicyDenied publishes a policy.denied event.
func (p *EventPublisher) PublishPolicyDenied(ctx context.Context, payload PolicyDeniedPayload) error {
	payload.Type = EventTypePolicyDenied
	return p.publish(ctx, payload.SessionID, payload)
}

// publish persists the payload on the session channel and mirrors a
// transient copy to the global channel. The mirror is best-effort; the
// durable publish decides the returned error.
func (p *EventPublisher) publish(ctx context.Context, sessionID string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	if err := p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), payloadJSON); err != nil {
		return err
	}

	if err := p.notifyOnly(ctx, GlobalEventsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to mirror event to global channel",
			"session_id", sessionID, "error", err)
	}
	return nil
}

// persistAndNotify inserts one events row and broadcasts it via NOTIFY
// in a single transaction (pg_notify is transactional — held until
// COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, sessionID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (session_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		sessionID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled payload via NOTIFY without
// persisting it.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload so
// listeners can resume catch-up from it, then applies the NOTIFY size
// cap.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload unchanged when it fits under
// PostgreSQL's 8000-byte NOTIFY limit, otherwise a minimal envelope
// with only the routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload keeps just enough for the listener to identify
// the event and fetch the full row from the events table.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		SessionID string `json:"session_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":       routing.Type,
		"session_id": routing.SessionID,
		"truncated":  true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
