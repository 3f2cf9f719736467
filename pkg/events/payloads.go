package events

// TurnCompletedPayload is the payload for turn.completed events.
// Status mirrors the turn outcome the user saw: completed,
// clarification, needs_confirmation, denied or error.
type TurnCompletedPayload struct {
	Type      string `json:"type"` // always EventTypeTurnCompleted
	SessionID string `json:"session_id"`
	TraceID   string `json:"trace_id,omitempty"`
	Status    string `json:"status"`
	ToolName  string `json:"tool_name,omitempty"` // last tool the turn ran, if any
	LatencyMs int64  `json:"latency_ms,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// ConfirmationCreatedPayload is the payload for confirmation.created
// events. Published when a policy decision parks an execution behind a
// pending confirmation.
type ConfirmationCreatedPayload struct {
	Type           string `json:"type"` // always EventTypeConfirmationCreated
	SessionID      string `json:"session_id"`
	ConfirmationID string `json:"confirmation_id"`
	ToolName       string `json:"tool_name"`
	RiskScore      int    `json:"risk_score"`
	ReasonCode     string `json:"reason_code"`
	Timestamp      string `json:"timestamp"` // RFC3339Nano
}

// ConfirmationResolvedPayload is the payload for confirmation.resolved
// events. Outcome is the resolution outcome: accepted, still_pending or
// failed.
type ConfirmationResolvedPayload struct {
	Type           string `json:"type"` // always EventTypeConfirmationResolved
	SessionID      string `json:"session_id"`
	ConfirmationID string `json:"confirmation_id"`
	ToolName       string `json:"tool_name"`
	Outcome        string `json:"outcome"`
	Timestamp      string `json:"timestamp"` // RFC3339Nano
}

// PolicyDeniedPayload is the payload for policy.denied events. Covers
// both rule denials (POLICY_DENIED, SCOPE_MISSING, UNKNOWN_TOOL) and
// guard rejections (RATE_LIMITED, LOOP_BROKEN).
type PolicyDeniedPayload struct {
	Type      string `json:"type"` // always EventTypePolicyDenied
	SessionID string `json:"session_id"`
	ToolName  string `json:"tool_name"`
	ErrorCode string `json:"error_code"`
	Reason    string `json:"reason,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}
