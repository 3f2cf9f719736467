package models

// ToolCategory groups tools by the surface they touch.
type ToolCategory string

const (
	CategoryCalendar ToolCategory = "calendar"
	CategoryEmail    ToolCategory = "email"
	CategoryFiles    ToolCategory = "files"
	CategoryTasks    ToolCategory = "tasks"
	CategorySystem   ToolCategory = "system"
	CategoryWeb      ToolCategory = "web"
	CategoryMemory   ToolCategory = "memory"
	CategoryOther    ToolCategory = "other"
)

// ActionType is the kind of operation a tool performs.
type ActionType string

const (
	ActionRead    ActionType = "read"
	ActionWrite   ActionType = "write"
	ActionExecute ActionType = "execute"
	ActionDelete  ActionType = "delete"
)

// Sensitivity is the tool's base risk band.
type Sensitivity string

const (
	SensitivityLow    Sensitivity = "low"
	SensitivityMedium Sensitivity = "medium"
	SensitivityHigh   Sensitivity = "high"
)

// OperationScope describes how many entities a single invocation touches.
type OperationScope string

const (
	ScopeSingle OperationScope = "single"
	ScopeBatch  OperationScope = "batch"
	ScopeAll    OperationScope = "all"
)

// ToolSpec is the static declaration of a tool: identity, the risk
// metadata the policy engine reads, and the JSON Schema its arguments
// must satisfy. Specs are immutable after registration.
type ToolSpec struct {
	Name                  string         `json:"name"`
	Description           string         `json:"description"`
	Category              ToolCategory   `json:"category"`
	Action                ActionType     `json:"action_type"`
	Sensitivity           Sensitivity    `json:"sensitivity"`
	Scope                 OperationScope `json:"scope"`
	SideEffects           bool           `json:"side_effects"`
	ExternalCommunication bool           `json:"external_communication"`
	Destructive           bool           `json:"destructive"`
	RequiredScope         string         `json:"required_scope"`
	TargetEntity          string         `json:"target_entity,omitempty"`
	Params                map[string]any `json:"params"`
}

// ToolResultStatus is the outcome class of a tool invocation.
type ToolResultStatus string

const (
	ResultSuccess           ToolResultStatus = "success"
	ResultError             ToolResultStatus = "error"
	ResultDenied            ToolResultStatus = "denied"
	ResultNeedsConfirmation ToolResultStatus = "needs_confirmation"
)

// Error codes attached to non-success tool results. These are stable
// identifiers surfaced in audit rows and API responses; the human-readable
// message lives next to them.
const (
	ErrCodeUnknownTool      = "UNKNOWN_TOOL"
	ErrCodeScopeMissing     = "SCOPE_MISSING"
	ErrCodeValidation       = "VALIDATION"
	ErrCodeInFlight         = "IN_FLIGHT"
	ErrCodePolicyDenied     = "POLICY_DENIED"
	ErrCodeRateLimited      = "RATE_LIMITED"
	ErrCodeLoopBroken       = "LOOP_BROKEN"
	ErrCodeHandlerError     = "HANDLER_ERROR"
	ErrCodeDeadlineExceeded = "DEADLINE_EXCEEDED"
	ErrCodeCancelled        = "CANCELLED"
)

// ToolResult is what a tool invocation hands back to the caller. It is
// always non-nil: failures are encoded in Status/ErrorCode, never as a Go
// error. Data has been through redaction by the time callers see it.
type ToolResult struct {
	Status            ToolResultStatus `json:"status"`
	Data              map[string]any   `json:"data,omitempty"`
	Error             string           `json:"error,omitempty"`
	ErrorCode         string           `json:"error_code,omitempty"`
	ExecutionID       string           `json:"execution_id,omitempty"`
	PolicyDecisionID  string           `json:"policy_decision_id,omitempty"`
	ConfirmationID    string           `json:"pending_confirmation_id,omitempty"`
	Prompt            string           `json:"confirmation_prompt,omitempty"`
	LatencyMs         int64            `json:"latency_ms,omitempty"`
	RedactionsApplied []string         `json:"redactions_applied,omitempty"`
	Cached            bool             `json:"cached,omitempty"`
}

// OK reports whether the invocation produced a successful result.
func (r *ToolResult) OK() bool {
	return r != nil && r.Status == ResultSuccess
}
