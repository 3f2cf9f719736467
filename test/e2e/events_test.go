package e2e

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/pkg/events"
	"github.com/valet-assistant/valet/pkg/models"
)

// The ops feed arrives twice: live over NOTIFY and durably as rows the
// admin endpoint replays by cursor. Both views must agree.
func TestE2E_EventFeedAndCatchup(t *testing.T) {
	app := NewTestApp(t)
	app.Assistant.Handle("calendar", models.Intent{
		Name:       "get_calendar_events",
		Slots:      map[string]any{"days": 1},
		Confidence: 0.93,
	})

	sessionID := app.CreateSession(t, models.ModalityText)
	sink := app.CollectSessionEvents(t, sessionID)

	app.Say(t, sessionID, "What's on my calendar tomorrow?")
	app.Say(t, sessionID, "blorp")

	completed := sink.WaitForN(t, events.EventTypeTurnCompleted, 2)
	assert.Equal(t, "completed", completed[0]["status"])
	assert.Equal(t, "clarification", completed[1]["status"])

	// Live payloads carry the durable row's id, in insert order.
	firstID, ok := completed[0]["db_event_id"].(float64)
	require.True(t, ok, "live payload without db_event_id: %v", completed[0])
	secondID, ok := completed[1]["db_event_id"].(float64)
	require.True(t, ok)
	assert.Greater(t, secondID, firstID)

	_, adminKey := app.NewSuperuser(t)

	// Full replay: cursor zero returns the whole channel, oldest first.
	var feed models.EventsResponse
	resp := app.request(t, http.MethodGet, "/api/v1/admin/events?session_id="+sessionID, adminKey, nil, nil)
	decodeBody(t, resp, http.StatusOK, &feed)
	require.Len(t, feed.Events, 2)
	assert.Equal(t, int(firstID), feed.Events[0].ID)
	assert.Equal(t, events.EventTypeTurnCompleted, feed.Events[0].Payload["type"])
	assert.Equal(t, sessionID, feed.Events[0].SessionID)
	assert.Equal(t, feed.Events[1].ID, feed.LastID)

	// Catch-up: a client that saw the first event replays only the rest.
	var rest models.EventsResponse
	resp = app.request(t, http.MethodGet,
		fmt.Sprintf("/api/v1/admin/events?session_id=%s&after_id=%d", sessionID, feed.Events[0].ID),
		adminKey, nil, nil)
	decodeBody(t, resp, http.StatusOK, &rest)
	require.Len(t, rest.Events, 1)
	assert.Equal(t, int(secondID), rest.Events[0].ID)

	// Ordinary users cannot read the admin feed.
	resp = app.request(t, http.MethodGet, "/api/v1/admin/events?session_id="+sessionID, app.APIKey, nil, nil)
	decodeBody(t, resp, http.StatusForbidden, nil)
}

// Listeners on other sessions' channels hear nothing.
func TestE2E_EventChannelIsolation(t *testing.T) {
	app := NewTestApp(t)
	app.Assistant.Handle("weather", models.Intent{
		Name:       "get_weather_info",
		Slots:      map[string]any{"location": "Oslo"},
		Confidence: 0.9,
	})

	active := app.CreateSession(t, models.ModalityText)
	idle := app.CreateSession(t, models.ModalityText)

	activeSink := app.CollectSessionEvents(t, active)
	idleSink := app.CollectSessionEvents(t, idle)

	app.Say(t, active, "weather in Oslo")

	evt := activeSink.WaitFor(t, events.EventTypeTurnCompleted)
	assert.Equal(t, active, evt["session_id"])
	assert.Empty(t, idleSink.Types(), "the idle session's channel stays silent")
}
