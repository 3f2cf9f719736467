package models

// Intent is the structured reading of one user utterance. Slots hold the
// extracted parameters keyed by slot name; Confidence is the parser's own
// estimate in [0,1].
type Intent struct {
	Name               string         `json:"name"`
	Slots              map[string]any `json:"slots"`
	Confidence         float64        `json:"confidence"`
	NeedsClarification bool           `json:"needs_clarification"`
	ClarifyingQuestion string         `json:"clarifying_question,omitempty"`
}

// IntentUnknown is the catch-all intent name for utterances the parser
// could not map to the catalog.
const IntentUnknown = "unknown"

// CatalogEntry declares one recognizable intent: what it means, which
// slots must be filled before planning, and the tool that serves it.
type CatalogEntry struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	RequiredSlots []string `json:"required_slots,omitempty"`
	OptionalSlots []string `json:"optional_slots,omitempty"`
	ToolName      string   `json:"tool_name"`
}

// PlanStep is one tool invocation derived from an intent.
type PlanStep struct {
	ToolName      string         `json:"tool_name"`
	Args          map[string]any `json:"args"`
	IntentSummary string         `json:"intent_summary"`
}

// Plan is the executable reading of an intent. Either Steps is non-empty,
// or RequiresUserInput is set with a question to relay verbatim.
type Plan struct {
	Steps              []PlanStep `json:"steps"`
	RequiresUserInput  bool       `json:"requires_user_input"`
	ClarifyingQuestion string     `json:"clarifying_question,omitempty"`
}
