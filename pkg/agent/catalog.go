package agent

import (
	"fmt"
	"strings"

	"github.com/valet-assistant/valet/pkg/models"
)

// CatalogEntry is one recognizable intent plus the planner's coercion
// hints. IntSlots names the slots the planner converts from string to
// integer before validation — voice transcription tends to produce
// "7" where the tool schema wants 7.
type CatalogEntry struct {
	models.CatalogEntry
	IntSlots []string
}

// Catalog is the closed set of intents the parser may return. Entries
// keep their declaration order so the parser prompt is stable across
// runs.
type Catalog struct {
	entries map[string]CatalogEntry
	order   []string
}

// NewCatalog builds a catalog from entries, preserving order.
func NewCatalog(entries ...CatalogEntry) *Catalog {
	c := &Catalog{entries: make(map[string]CatalogEntry, len(entries))}
	for _, e := range entries {
		if _, exists := c.entries[e.Name]; exists {
			continue
		}
		c.entries[e.Name] = e
		c.order = append(c.order, e.Name)
	}
	return c
}

// Lookup returns the entry for an intent name.
func (c *Catalog) Lookup(name string) (CatalogEntry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Entries returns all entries in declaration order.
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.entries[name])
	}
	return out
}

// PromptList renders the catalog as the KNOWN INTENTS block of the
// parser prompt, one line per intent. The unknown catch-all is omitted;
// the parser falls back to it rather than choosing it.
func (c *Catalog) PromptList() string {
	var b strings.Builder
	for _, name := range c.order {
		if name == models.IntentUnknown {
			continue
		}
		e := c.entries[name]
		fmt.Fprintf(&b, "- %s: %s Required slots: [%s]\n",
			e.Name, e.Description, strings.Join(e.RequiredSlots, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

// DefaultCatalog returns the intents the assistant understands, mapped
// onto the builtin tools. Every ToolName matches a registered tool
// spec; required slots mirror the tool's required schema properties so
// forced clarification fires before validation ever would.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		CatalogEntry{CatalogEntry: models.CatalogEntry{
			Name: models.IntentUnknown,
		}},
		CatalogEntry{CatalogEntry: models.CatalogEntry{
			Name:          "create_calendar_event",
			Description:   "Schedule a meeting or event.",
			RequiredSlots: []string{"subject", "start_time_str", "end_time_str"},
			ToolName:      "create_calendar_event",
		}},
		CatalogEntry{
			CatalogEntry: models.CatalogEntry{
				Name:          "get_calendar_events",
				Description:   "Check calendar schedule.",
				RequiredSlots: []string{"days"},
				ToolName:      "get_calendar_events",
			},
			IntSlots: []string{"days"},
		},
		CatalogEntry{
			CatalogEntry: models.CatalogEntry{
				Name:          "get_weather_info",
				Description:   "Get weather forecast.",
				RequiredSlots: []string{"location"},
				OptionalSlots: []string{"num_days"},
				ToolName:      "get_weather_info",
			},
			IntSlots: []string{"num_days"},
		},
		CatalogEntry{CatalogEntry: models.CatalogEntry{
			Name:          "list_files",
			Description:   "List files in a directory.",
			RequiredSlots: []string{"directory_path"},
			ToolName:      "list_files",
		}},
		CatalogEntry{CatalogEntry: models.CatalogEntry{
			Name:          "delete_file",
			Description:   "Delete a file.",
			RequiredSlots: []string{"path"},
			ToolName:      "delete_file",
		}},
		CatalogEntry{
			CatalogEntry: models.CatalogEntry{
				Name:          "read_emails",
				Description:   "Read recent emails.",
				OptionalSlots: []string{"max_emails"},
				ToolName:      "read_emails",
			},
			IntSlots: []string{"max_emails"},
		},
		CatalogEntry{CatalogEntry: models.CatalogEntry{
			Name:          "send_email",
			Description:   "Send an email.",
			RequiredSlots: []string{"to", "subject", "content"},
			ToolName:      "send_email",
		}},
		CatalogEntry{CatalogEntry: models.CatalogEntry{
			Name:        "get_system_info",
			Description: "Get system information.",
			ToolName:    "get_system_info",
		}},
		CatalogEntry{CatalogEntry: models.CatalogEntry{
			Name:          "web_search",
			Description:   "Search the web.",
			RequiredSlots: []string{"query"},
			ToolName:      "web_search",
		}},
		CatalogEntry{CatalogEntry: models.CatalogEntry{
			Name:          "remember_fact",
			Description:   "Remember a fact.",
			RequiredSlots: []string{"key", "value"},
			ToolName:      "remember_fact",
		}},
		CatalogEntry{CatalogEntry: models.CatalogEntry{
			Name:          "recall_fact",
			Description:   "Recall a stored fact.",
			RequiredSlots: []string{"key"},
			ToolName:      "recall_fact",
		}},
		CatalogEntry{CatalogEntry: models.CatalogEntry{
			Name:          "run_automation",
			Description:   "Run a named automation.",
			RequiredSlots: []string{"name"},
			ToolName:      "run_automation",
		}},
	)
}
