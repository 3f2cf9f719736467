package models

import "github.com/valet-assistant/valet/ent"

// CreateEventRequest contains data for appending an event row.
type CreateEventRequest struct {
	SessionID string         `json:"session_id,omitempty"`
	Channel   string         `json:"channel"`
	Payload   map[string]any `json:"payload"`
}

// EventsResponse contains the events after a given ID, oldest first.
// LastID is the cursor for the next catch-up read.
type EventsResponse struct {
	Events []*ent.Event `json:"events"`
	LastID int          `json:"last_id"`
}
