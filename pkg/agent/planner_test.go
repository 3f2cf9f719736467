package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/pkg/models"
)

func TestBuildPlan(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("clarification passes through verbatim", func(t *testing.T) {
		plan := BuildPlan(models.Intent{
			Name:               "send_email",
			NeedsClarification: true,
			ClarifyingQuestion: "Who should receive it?",
		}, catalog)
		assert.True(t, plan.RequiresUserInput)
		assert.Equal(t, "Who should receive it?", plan.ClarifyingQuestion)
		assert.Empty(t, plan.Steps)
	})

	t.Run("unknown intent asks for a rephrase", func(t *testing.T) {
		plan := BuildPlan(models.Intent{Name: models.IntentUnknown}, catalog)
		assert.True(t, plan.RequiresUserInput)
		assert.Equal(t, "I'm not sure how to help with that. Could you rephrase?", plan.ClarifyingQuestion)
	})

	t.Run("uncataloged name asks for a rephrase", func(t *testing.T) {
		plan := BuildPlan(models.Intent{Name: "order_pizza", Confidence: 0.9}, catalog)
		assert.True(t, plan.RequiresUserInput)
		assert.Equal(t, "I'm not sure how to help with that. Could you rephrase?", plan.ClarifyingQuestion)
	})

	t.Run("entry without a tool says so", func(t *testing.T) {
		toolless := NewCatalog(CatalogEntry{CatalogEntry: models.CatalogEntry{
			Name:        "tell_joke",
			Description: "Tell a joke.",
		}})
		plan := BuildPlan(models.Intent{Name: "tell_joke", Confidence: 0.9}, toolless)
		assert.True(t, plan.RequiresUserInput)
		assert.Equal(t, "I don't have a tool for that yet.", plan.ClarifyingQuestion)
	})

	t.Run("single step carries the tool and args", func(t *testing.T) {
		plan := BuildPlan(models.Intent{
			Name:       "web_search",
			Slots:      map[string]any{"query": "weather in Oslo"},
			Confidence: 0.9,
		}, catalog)
		require.Len(t, plan.Steps, 1)
		assert.False(t, plan.RequiresUserInput)
		assert.Equal(t, "web_search", plan.Steps[0].ToolName)
		assert.Equal(t, "weather in Oslo", plan.Steps[0].Args["query"])
		assert.Contains(t, plan.Steps[0].IntentSummary, "Search the web.")
	})

	t.Run("integer slots are coerced from transcription strings", func(t *testing.T) {
		slots := map[string]any{"days": "7"}
		plan := BuildPlan(models.Intent{
			Name:       "get_calendar_events",
			Slots:      slots,
			Confidence: 0.9,
		}, catalog)
		require.Len(t, plan.Steps, 1)
		assert.Equal(t, 7, plan.Steps[0].Args["days"])
		// The intent's own slot map stays untouched.
		assert.Equal(t, "7", slots["days"])
	})

	t.Run("unparseable integer slots are left alone", func(t *testing.T) {
		plan := BuildPlan(models.Intent{
			Name:       "get_calendar_events",
			Slots:      map[string]any{"days": "a few"},
			Confidence: 0.9,
		}, catalog)
		require.Len(t, plan.Steps, 1)
		assert.Equal(t, "a few", plan.Steps[0].Args["days"])
	})

	t.Run("summary is built from the redacted slot view", func(t *testing.T) {
		secretive := NewCatalog(CatalogEntry{CatalogEntry: models.CatalogEntry{
			Name:          "store_credential",
			Description:   "Store a credential.",
			RequiredSlots: []string{"service", "api_key"},
			ToolName:      "store_credential",
		}})
		plan := BuildPlan(models.Intent{
			Name: "store_credential",
			Slots: map[string]any{
				"service": "github",
				"api_key": "ghp_superSecretValue123",
			},
			Confidence: 0.9,
		}, secretive)
		require.Len(t, plan.Steps, 1)
		assert.NotContains(t, plan.Steps[0].IntentSummary, "ghp_superSecretValue123")
		// The step args themselves stay raw for the runtime to redact at
		// the persistence boundary.
		assert.Equal(t, "ghp_superSecretValue123", plan.Steps[0].Args["api_key"])
	})
}
