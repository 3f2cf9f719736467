package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/pkg/models"
)

func TestNewCatalog(t *testing.T) {
	c := NewCatalog(
		CatalogEntry{CatalogEntry: models.CatalogEntry{Name: "b", Description: "First."}},
		CatalogEntry{CatalogEntry: models.CatalogEntry{Name: "a", Description: "Second."}},
		CatalogEntry{CatalogEntry: models.CatalogEntry{Name: "b", Description: "Duplicate."}},
	)

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].Name)
	assert.Equal(t, "a", entries[1].Name)
	// First declaration wins on duplicates.
	assert.Equal(t, "First.", entries[0].Description)

	_, ok := c.Lookup("a")
	assert.True(t, ok)
	_, ok = c.Lookup("z")
	assert.False(t, ok)
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	entries := c.Entries()
	require.Len(t, entries, 13)

	unknown, ok := c.Lookup(models.IntentUnknown)
	require.True(t, ok)
	assert.Empty(t, unknown.ToolName)

	for _, e := range entries {
		if e.Name == models.IntentUnknown {
			continue
		}
		assert.NotEmpty(t, e.Description, "entry %s needs a description for the parser prompt", e.Name)
		assert.Equal(t, e.Name, e.ToolName, "intent %s should map onto the tool of the same name", e.Name)
		for _, slot := range e.IntSlots {
			assert.Contains(t, append(e.RequiredSlots, e.OptionalSlots...), slot,
				"int slot %s of %s must be a declared slot", slot, e.Name)
		}
	}
}

func TestCatalogPromptList(t *testing.T) {
	list := DefaultCatalog().PromptList()

	assert.Contains(t, list, "- web_search: Search the web. Required slots: [query]")
	assert.Contains(t, list, "- create_calendar_event: Schedule a meeting or event. Required slots: [subject, start_time_str, end_time_str]")
	assert.Contains(t, list, "- get_system_info: Get system information. Required slots: []")
	assert.NotContains(t, list, "- unknown")
	assert.False(t, strings.HasSuffix(list, "\n"))

	// One line per recognizable intent.
	assert.Len(t, strings.Split(list, "\n"), 12)
}

func TestCatalogPromptListStable(t *testing.T) {
	first := DefaultCatalog().PromptList()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, DefaultCatalog().PromptList())
	}
}
