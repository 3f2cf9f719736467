package models

// SaveUserMessageRequest contains fields for persisting one user turn.
// When IdempotencyKey is set, a retried submission maps onto the
// original row instead of inserting a second one.
type SaveUserMessageRequest struct {
	SessionID      string
	UserID         string
	Content        string
	Modality       string
	IdempotencyKey string
	TraceID        string
}

// SaveAssistantMessageRequest contains fields for persisting one
// assistant reply. TraceID correlates the reply with the user turn that
// produced it.
type SaveAssistantMessageRequest struct {
	SessionID string
	UserID    string
	Content   string
	Modality  string
	TraceID   string
	Metadata  map[string]any
}
