package services

import (
	"context"
	"fmt"
	"time"

	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/event"
	"github.com/valet-assistant/valet/pkg/models"
)

const defaultEventPageSize = 100

// EventService reads and prunes the append-only event feed. Live
// publishing happens in pkg/events, which inserts feed rows and NOTIFYs
// in one transaction; this service covers everything after that insert:
// catch-up reads for reconnecting clients and retention cleanup.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// CreateEvent appends a feed row without notifying live listeners
func (s *EventService) CreateEvent(_ context.Context, req models.CreateEventRequest) (*ent.Event, error) {
	if req.Channel == "" {
		return nil, NewValidationError("channel", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Event.Create().
		SetChannel(req.Channel).
		SetPayload(req.Payload)
	if req.SessionID != "" {
		builder.SetSessionID(req.SessionID)
	}

	evt, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return evt, nil
}

// GetEventsSince retrieves up to limit events on a channel with an ID
// greater than sinceID, oldest first. Reconnecting clients use this to
// replay what they missed before resubscribing.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) (*models.EventsResponse, error) {
	if limit <= 0 {
		limit = defaultEventPageSize
	}

	events, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	lastID := sinceID
	if len(events) > 0 {
		lastID = events[len(events)-1].ID
	}
	return &models.EventsResponse{Events: events, LastID: lastID}, nil
}

// CleanupSessionEvents removes all events for a session
func (s *EventService) CleanupSessionEvents(_ context.Context, sessionID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.SessionIDEQ(sessionID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup session events: %w", err)
	}

	return count, nil
}

// CleanupOrphanedEvents removes events older than the retention window
func (s *EventService) CleanupOrphanedEvents(_ context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup orphaned events: %w", err)
	}

	return count, nil
}
