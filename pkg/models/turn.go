package models

import "time"

// RequestContext identifies who a piece of work runs on behalf of. It is
// threaded from the API layer through the orchestrator into the tool
// runtime so every persisted row carries the same attribution.
type RequestContext struct {
	UserID    string
	SessionID string
	TraceID   string
	Modality  string
}

// TurnRequest is one user utterance submitted to a session.
type TurnRequest struct {
	SessionID      string
	UserID         string
	Content        string
	Modality       string
	IdempotencyKey string
}

// PendingConfirmation is the user-facing view of a confirmation that is
// blocking an action.
type PendingConfirmation struct {
	ID             string    `json:"id"`
	ToolName       string    `json:"tool_name"`
	Prompt         string    `json:"prompt"`
	RequiredPhrase string    `json:"required_phrase,omitempty"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// TurnResponse is the assistant's reply to one utterance. Deduplicated is
// set when the utterance matched an already-processed message and the
// stored reply was returned instead of running the turn again.
type TurnResponse struct {
	SessionID    string               `json:"session_id"`
	MessageID    string               `json:"message_id"`
	TraceID      string               `json:"trace_id"`
	Text         string               `json:"text"`
	ShouldSpeak  bool                 `json:"should_speak"`
	Deduplicated bool                 `json:"deduplicated,omitempty"`
	Metadata     map[string]any       `json:"metadata,omitempty"`
	Pending      *PendingConfirmation `json:"pending_confirmation,omitempty"`
}

// PostMessageRequest is the API body for submitting an utterance.
type PostMessageRequest struct {
	Content  string `json:"content"`
	Modality string `json:"modality,omitempty"`
}
