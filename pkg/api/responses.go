package api

import (
	"time"

	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/pkg/models"
)

// CreateSessionResponse is the body of a successful session creation.
type CreateSessionResponse struct {
	SessionID string    `json:"session_id"`
	Modality  string    `json:"modality"`
	StartedAt time.Time `json:"started_at"`
}

// MessageResponse is the turn endpoint's reply. TraceID correlates the
// reply with the persisted message and audit rows; RequestID with the
// HTTP exchange.
type MessageResponse struct {
	AssistantText string                      `json:"assistant_text"`
	SessionID     string                      `json:"session_id"`
	MessageID     string                      `json:"message_id"`
	ShouldSpeak   bool                        `json:"should_speak"`
	Deduplicated  bool                        `json:"deduplicated,omitempty"`
	Pending       *models.PendingConfirmation `json:"pending_confirmation,omitempty"`
	RequestID     string                      `json:"request_id"`
	TraceID       string                      `json:"trace_id"`
}

// CreateMemoryRequest is the body for storing a memory over the API.
type CreateMemoryRequest struct {
	Type     string         `json:"type"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// SearchMemoriesRequest is the body for similarity search.
type SearchMemoriesRequest struct {
	Query    string   `json:"query"`
	Types    []string `json:"types,omitempty"`
	TopK     int      `json:"top_k,omitempty"`
	MinScore float64  `json:"min_score,omitempty"`
}

// SearchMemoriesResponse carries scored results, best match first.
type SearchMemoriesResponse struct {
	Results []*models.ScoredMemory `json:"results"`
	Count   int                    `json:"count"`
}

// MemoryEventsResponse is one memory's audit trail, oldest first.
type MemoryEventsResponse struct {
	MemoryID string             `json:"memory_id"`
	Events   []*ent.MemoryEvent `json:"events"`
}

// ToolCatalogResponse lists the registered tool specs.
type ToolCatalogResponse struct {
	Tools []models.ToolSpec `json:"tools"`
	Count int               `json:"count"`
}
