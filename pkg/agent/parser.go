package agent

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/valet-assistant/valet/pkg/models"
)

// Parser maps one user utterance onto the intent catalog. contextStr is
// the serialized conversation context the model uses to resolve
// references ("tomorrow", "send it to her").
type Parser interface {
	ParseIntent(ctx context.Context, utterance, contextStr string) (models.Intent, error)
}

// DecodeIntent turns the model's raw output into an Intent. Models
// occasionally wrap the JSON in prose or emit trailing commas, so a
// failed strict parse goes through jsonrepair once; if that also fails
// the utterance is classified unknown with zero confidence rather than
// failing the turn.
func DecodeIntent(raw string) models.Intent {
	var intent models.Intent
	if err := json.Unmarshal([]byte(raw), &intent); err == nil {
		return intent
	}

	repaired, err := jsonrepair.JSONRepair(raw)
	if err == nil {
		if err := json.Unmarshal([]byte(repaired), &intent); err == nil {
			return intent
		}
	}

	slog.Warn("Unparseable intent output", "raw_len", len(raw))
	return models.Intent{Name: models.IntentUnknown, Confidence: 0}
}

// ValidateSlots normalizes a parsed intent against the catalog: names
// outside the catalog collapse to unknown, confidence is clamped to
// [0,1], and required slots the model left empty force a clarification
// the model failed to flag itself.
func ValidateSlots(intent models.Intent, catalog *Catalog) models.Intent {
	if intent.Confidence < 0 {
		intent.Confidence = 0
	}
	if intent.Confidence > 1 {
		intent.Confidence = 1
	}

	entry, ok := catalog.Lookup(intent.Name)
	if !ok {
		intent.Name = models.IntentUnknown
		return intent
	}
	if intent.Name == models.IntentUnknown {
		return intent
	}

	var missing []string
	for _, slot := range entry.RequiredSlots {
		v, present := intent.Slots[slot]
		if !present || slotEmpty(v) {
			missing = append(missing, slot)
		}
	}

	if len(missing) > 0 && !intent.NeedsClarification {
		intent.NeedsClarification = true
		intent.ClarifyingQuestion = "I need the following information to proceed: " +
			strings.Join(missing, ", ") + "."
	}
	return intent
}

// slotEmpty reports whether a slot value counts as missing. Zero
// numbers, empty strings and empty containers all do — a model that
// fills "days": 0 has not actually extracted anything usable.
func slotEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	case int:
		return val == 0
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}
