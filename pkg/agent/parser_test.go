package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valet-assistant/valet/pkg/models"
)

func TestDecodeIntent(t *testing.T) {
	t.Run("well-formed output decodes directly", func(t *testing.T) {
		raw := `{"name":"web_search","slots":{"query":"golang generics"},"confidence":0.92}`
		intent := DecodeIntent(raw)
		assert.Equal(t, "web_search", intent.Name)
		assert.Equal(t, "golang generics", intent.Slots["query"])
		assert.InDelta(t, 0.92, intent.Confidence, 0.001)
		assert.False(t, intent.NeedsClarification)
	})

	t.Run("sloppy output is repaired", func(t *testing.T) {
		// Unquoted keys and a trailing comma, the two classic model slips.
		raw := `{name: "get_weather_info", slots: {location: "Paris"}, confidence: 0.8,}`
		intent := DecodeIntent(raw)
		assert.Equal(t, "get_weather_info", intent.Name)
		assert.Equal(t, "Paris", intent.Slots["location"])
		assert.InDelta(t, 0.8, intent.Confidence, 0.001)
	})

	t.Run("clarification fields survive decoding", func(t *testing.T) {
		raw := `{"name":"send_email","slots":{},"confidence":0.4,"needs_clarification":true,"clarifying_question":"Who should receive it?"}`
		intent := DecodeIntent(raw)
		assert.Equal(t, "send_email", intent.Name)
		assert.True(t, intent.NeedsClarification)
		assert.Equal(t, "Who should receive it?", intent.ClarifyingQuestion)
	})

	t.Run("unrepairable output falls back to unknown", func(t *testing.T) {
		intent := DecodeIntent("I could not determine what the user wants.")
		assert.Equal(t, models.IntentUnknown, intent.Name)
		assert.Zero(t, intent.Confidence)
	})

	t.Run("empty output falls back to unknown", func(t *testing.T) {
		intent := DecodeIntent("")
		assert.Equal(t, models.IntentUnknown, intent.Name)
		assert.Zero(t, intent.Confidence)
	})
}

func TestValidateSlots(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("confidence is clamped to the unit interval", func(t *testing.T) {
		low := ValidateSlots(models.Intent{Name: models.IntentUnknown, Confidence: -0.3}, catalog)
		assert.Zero(t, low.Confidence)

		high := ValidateSlots(models.Intent{
			Name:       "web_search",
			Slots:      map[string]any{"query": "news"},
			Confidence: 1.7,
		}, catalog)
		assert.Equal(t, 1.0, high.Confidence)
	})

	t.Run("names outside the catalog collapse to unknown", func(t *testing.T) {
		intent := ValidateSlots(models.Intent{Name: "order_pizza", Confidence: 0.9}, catalog)
		assert.Equal(t, models.IntentUnknown, intent.Name)
	})

	t.Run("missing required slots force a clarification", func(t *testing.T) {
		intent := ValidateSlots(models.Intent{
			Name:       "send_email",
			Slots:      map[string]any{"to": "sam@example.com"},
			Confidence: 0.9,
		}, catalog)
		assert.True(t, intent.NeedsClarification)
		assert.Equal(t, "I need the following information to proceed: subject, content.", intent.ClarifyingQuestion)
	})

	t.Run("empty slot values count as missing", func(t *testing.T) {
		intent := ValidateSlots(models.Intent{
			Name:       "web_search",
			Slots:      map[string]any{"query": ""},
			Confidence: 0.9,
		}, catalog)
		assert.True(t, intent.NeedsClarification)
		assert.Equal(t, "I need the following information to proceed: query.", intent.ClarifyingQuestion)
	})

	t.Run("model-flagged clarification keeps its own question", func(t *testing.T) {
		intent := ValidateSlots(models.Intent{
			Name:               "send_email",
			Slots:              map[string]any{},
			Confidence:         0.5,
			NeedsClarification: true,
			ClarifyingQuestion: "Who is this email for?",
		}, catalog)
		assert.True(t, intent.NeedsClarification)
		assert.Equal(t, "Who is this email for?", intent.ClarifyingQuestion)
	})

	t.Run("complete intent passes through untouched", func(t *testing.T) {
		intent := ValidateSlots(models.Intent{
			Name: "create_calendar_event",
			Slots: map[string]any{
				"subject":        "Dentist",
				"start_time_str": "2026-09-01 10:00",
				"end_time_str":   "2026-09-01 10:30",
			},
			Confidence: 0.95,
		}, catalog)
		assert.False(t, intent.NeedsClarification)
		assert.Empty(t, intent.ClarifyingQuestion)
	})

	t.Run("optional slots never trigger clarification", func(t *testing.T) {
		intent := ValidateSlots(models.Intent{
			Name:       "get_weather_info",
			Slots:      map[string]any{"location": "Oslo"},
			Confidence: 0.9,
		}, catalog)
		assert.False(t, intent.NeedsClarification)
	})
}

func TestSlotEmpty(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"string", "seven", false},
		{"false", false, true},
		{"true", true, false},
		{"zero float", float64(0), true},
		{"float", 3.5, false},
		{"zero int", 0, true},
		{"int", 7, false},
		{"empty slice", []any{}, true},
		{"slice", []any{"a"}, false},
		{"empty map", map[string]any{}, true},
		{"map", map[string]any{"k": "v"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slotEmpty(tc.value))
		})
	}
}
