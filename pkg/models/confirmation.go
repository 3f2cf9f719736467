package models

// CreateConfirmationRequest gates one tool execution behind explicit user
// approval. Args carry the redacted snapshot the user is approving.
type CreateConfirmationRequest struct {
	ToolExecutionID string
	SessionID       string
	UserID          string
	ToolName        string
	Args            map[string]any
	DecisionType    string
	Prompt          string
	RequiredPhrase  string
	RiskScore       int
	ReasonCode      string
	TraceID         string
}
