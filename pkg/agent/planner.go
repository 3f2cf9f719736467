package agent

import (
	"fmt"
	"strconv"

	"github.com/valet-assistant/valet/pkg/models"
	"github.com/valet-assistant/valet/pkg/redact"
)

// BuildPlan turns a validated intent into an executable plan. Pure: no
// I/O, no clock. At most one step comes out; multi-step plans are a
// runtime concern the planner does not produce.
func BuildPlan(intent models.Intent, catalog *Catalog) models.Plan {
	if intent.NeedsClarification {
		return models.Plan{
			RequiresUserInput:  true,
			ClarifyingQuestion: intent.ClarifyingQuestion,
		}
	}

	entry, ok := catalog.Lookup(intent.Name)
	if intent.Name == models.IntentUnknown || !ok {
		return models.Plan{
			RequiresUserInput:  true,
			ClarifyingQuestion: "I'm not sure how to help with that. Could you rephrase?",
		}
	}

	if entry.ToolName == "" {
		return models.Plan{
			RequiresUserInput:  true,
			ClarifyingQuestion: "I don't have a tool for that yet.",
		}
	}

	args := coerceIntSlots(intent.Slots, entry.IntSlots)

	// The summary ends up in policy decision rows, so it is built from
	// the redacted view of the slots.
	preview, _ := redact.Map(args)
	summary := fmt.Sprintf("User wants to %s with params: %v", entry.Description, preview)

	return models.Plan{
		Steps: []models.PlanStep{{
			ToolName:      entry.ToolName,
			Args:          args,
			IntentSummary: summary,
		}},
	}
}

// coerceIntSlots copies the slots, converting the named slots from
// string to int where they parse. Transcribed speech yields "7" where
// the tool schema wants 7; anything unparseable is left alone for
// argument validation to report.
func coerceIntSlots(slots map[string]any, intSlots []string) map[string]any {
	args := make(map[string]any, len(slots))
	for k, v := range slots {
		args[k] = v
	}
	for _, slot := range intSlots {
		s, ok := args[slot].(string)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(s); err == nil {
			args[slot] = n
		}
	}
	return args
}
