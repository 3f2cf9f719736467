package models

import (
	"time"

	"github.com/valet-assistant/valet/ent"
)

// Modality values accepted on sessions and messages. Voice turns get the
// same pipeline as text turns; the only difference is the should_speak hint
// on the response.
const (
	ModalityText  = "text"
	ModalityVoice = "voice"
)

// CreateSessionRequest contains fields for opening a new assistant session
type CreateSessionRequest struct {
	Modality string         `json:"modality,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// SessionFilters contains filtering options for listing sessions
type SessionFilters struct {
	Active bool `json:"active,omitempty"`
	Limit  int  `json:"limit,omitempty"`
	Offset int  `json:"offset,omitempty"`
}

// SessionResponse wraps a Session with optional loaded edges
type SessionResponse struct {
	*ent.Session
}

// SessionListResponse contains paginated session list
type SessionListResponse struct {
	Sessions   []*ent.Session `json:"sessions"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

// SessionHistoryResponse is the full transcript view of one session:
// messages in order plus the audit trail accumulated while serving them.
type SessionHistoryResponse struct {
	Session         *ent.Session           `json:"session"`
	Messages        []*ent.AgentMessage    `json:"messages"`
	Executions      []*ent.ToolExecution   `json:"executions"`
	PolicyDecisions []*ent.PolicyDecision  `json:"policy_decisions"`
	Pending         []*PendingConfirmation `json:"pending_confirmations"`
}

// MessagePreview is a redacted glimpse of a message used in admin summaries.
type MessagePreview struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
