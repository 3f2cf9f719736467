package models

// ReserveExecutionRequest claims the (user, idempotency key) slot for one
// logical tool invocation.
type ReserveExecutionRequest struct {
	SessionID      string
	UserID         string
	ToolName       string
	Input          map[string]any
	IdempotencyKey string
	TraceID        string
}

// RecordToolCallRequest is one audit row for a runtime attempt. Executed
// marks rows whose handler actually ran; guard windows count only those.
type RecordToolCallRequest struct {
	SessionID   string
	UserID      string
	ToolName    string
	Args        map[string]any
	Result      map[string]any
	Status      string
	ErrorCode   string
	Executed    bool
	LatencyMs   int64
	ExecutionID string
	TraceID     string
}
