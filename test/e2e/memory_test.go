package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/ent/memory"
	"github.com/valet-assistant/valet/ent/memoryevent"
	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/api"
	"github.com/valet-assistant/valet/pkg/models"
)

// Writing the same content twice dedups onto one row, and the audit
// trail records both the creation and the merge.
func TestE2E_MemoryWriteDedup(t *testing.T) {
	app := NewTestApp(t)
	body := api.CreateMemoryRequest{Type: "preference", Content: "Prefers oat milk in coffee"}

	var first models.WriteMemoryResult
	app.call(t, http.MethodPost, "/api/v1/memories", body, http.StatusCreated, &first)
	assert.True(t, first.Created)
	require.NotNil(t, first.Memory)

	var second models.WriteMemoryResult
	app.call(t, http.MethodPost, "/api/v1/memories", body, http.StatusOK, &second)
	assert.False(t, second.Created)
	assert.Equal(t, first.Memory.ID, second.Memory.ID)

	count, err := app.DB.Client.Memory.Query().
		Where(
			memory.UserIDEQ(app.UserID),
			memory.IsDeletedEQ(false),
		).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var trail api.MemoryEventsResponse
	app.call(t, http.MethodGet, "/api/v1/memories/"+first.Memory.ID+"/events", nil, http.StatusOK, &trail)
	require.Len(t, trail.Events, 2)
	assert.Equal(t, memoryevent.EventTypeCreated, trail.Events[0].EventType)
	assert.Equal(t, memoryevent.EventTypeUpdated, trail.Events[1].EventType)
	require.NotNil(t, trail.Events[1].Reason)
	assert.Equal(t, "duplicate content", *trail.Events[1].Reason)
}

// Facts stored in one turn come back in a later one, via the pgvector
// store underneath both tools.
func TestE2E_RememberRecallAcrossTurns(t *testing.T) {
	app := NewTestApp(t)
	app.Assistant.Handle("remember", models.Intent{
		Name:       "remember_fact",
		Slots:      map[string]any{"key": "favorite tea", "value": "earl grey"},
		Confidence: 0.92,
	})
	app.Assistant.Handle("recall", models.Intent{
		Name:       "recall_fact",
		Slots:      map[string]any{"key": "favorite tea"},
		Confidence: 0.9,
	})

	sessionID := app.CreateSession(t, models.ModalityText)

	stored := app.Say(t, sessionID, "remember that my favorite tea is earl grey")
	assert.Equal(t, "Done. Remembered fact: 'favorite tea' set to 'earl grey'.", stored.AssistantText)

	recalled := app.Say(t, sessionID, "recall my favorite tea")
	assert.Equal(t, "Done. The stored fact for 'favorite tea' is: 'earl grey'", recalled.AssistantText)

	execs := app.QueryExecutions(t, sessionID)
	require.Len(t, execs, 2)
	for _, exec := range execs {
		assert.Equal(t, toolexecution.StatusSucceeded, exec.Status)
	}

	// The fact is an ordinary memory row: agent-sourced, keyed in
	// metadata, visible over the API.
	rows, err := app.DB.Client.Memory.Query().
		Where(memory.UserIDEQ(app.UserID)).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "earl grey", rows[0].Content)
	assert.Equal(t, "agent", rows[0].Source)
	assert.Equal(t, "favorite tea", rows[0].Metadata["key"])

	var trail api.MemoryEventsResponse
	app.call(t, http.MethodGet, "/api/v1/memories/"+rows[0].ID+"/events", nil, http.StatusOK, &trail)
	types := make([]memoryevent.EventType, 0, len(trail.Events))
	for _, evt := range trail.Events {
		types = append(types, evt.EventType)
	}
	assert.Contains(t, types, memoryevent.EventTypeCreated)
	assert.Contains(t, types, memoryevent.EventTypeRetrieved)
}
