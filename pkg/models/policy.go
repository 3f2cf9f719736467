package models

import "time"

// Decision is the verdict of a policy evaluation.
type Decision string

const (
	DecisionAllow            Decision = "ALLOW"
	DecisionAllowWithConfirm Decision = "ALLOW_WITH_CONFIRMATION"
	DecisionEscalate         Decision = "ESCALATE"
	DecisionDeny             Decision = "DENY"
)

// Interactive reports whether the decision requires a user confirmation
// before the tool may run.
func (d Decision) Interactive() bool {
	return d == DecisionAllowWithConfirm || d == DecisionEscalate
}

// Reason codes recorded on policy decisions. One code per evaluation;
// the last rule that fired wins.
const (
	ReasonUnknownTool           = "UNKNOWN_TOOL"
	ReasonLowRiskRead           = "LOW_RISK_READ"
	ReasonStandardAllow         = "STANDARD_ALLOW"
	ReasonExternalCommConfirm   = "EXTERNAL_COMM_CONFIRM"
	ReasonDestructiveAction     = "DESTRUCTIVE_ACTION"
	ReasonBatchOperationConfirm = "BATCH_OPERATION_CONFIRM"
	ReasonSystemExecEscalation  = "SYSTEM_EXEC_ESCALATION"
	ReasonUserConfirmed         = "USER_CONFIRMED"
)

// PolicyCheck is the input snapshot for one policy evaluation. Spec is
// nil when the tool is unknown. ArgsPreview must already be redacted;
// Now is injected so evaluations stay replayable.
type PolicyCheck struct {
	ToolName      string         `json:"tool_name"`
	Spec          *ToolSpec      `json:"-"`
	IntentSummary string         `json:"intent_summary,omitempty"`
	ArgsPreview   map[string]any `json:"args_preview,omitempty"`
	Now           time.Time      `json:"-"`
}

// Evaluation is the outcome of one policy check. Risk is clamped to
// [0,100]. Prompt and RequiredPhrase are only set for interactive
// decisions; ExpiresAt bounds how long a resulting confirmation stays
// valid and is only set for interactive decisions.
type Evaluation struct {
	Decision       Decision   `json:"decision"`
	Risk           int        `json:"risk"`
	ReasonCode     string     `json:"reason_code"`
	Prompt         string     `json:"prompt,omitempty"`
	RequiredPhrase string     `json:"required_phrase,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

// RecordPolicyDecisionRequest persists one evaluation to the decision
// audit trail. Mode records whether the decision was enforced or only
// observed.
type RecordPolicyDecisionRequest struct {
	SessionID       string
	UserID          string
	ToolName        string
	Decision        string
	RiskScore       int
	ReasonCode      string
	IntentSummary   string
	Mode            string
	ToolExecutionID string
}
