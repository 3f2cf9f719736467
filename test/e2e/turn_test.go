package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/events"
	"github.com/valet-assistant/valet/pkg/models"
)

// Calendar read happy path: the seeded calendar has a "Team Sync"
// tomorrow, so asking about tomorrow's schedule must surface it through
// the whole stack — HTTP, parser, policy, runtime, audit and the event
// feed.
func TestE2E_CalendarReadHappyPath(t *testing.T) {
	app := NewTestApp(t)
	app.Assistant.Handle("calendar", models.Intent{
		Name:       "get_calendar_events",
		Slots:      map[string]any{"days": 1},
		Confidence: 0.93,
	})

	sessionID := app.CreateSession(t, models.ModalityText)
	sink := app.CollectSessionEvents(t, sessionID)

	reply := app.Say(t, sessionID, "What's on my calendar tomorrow?")
	assert.Contains(t, reply.AssistantText, "Sync")
	assert.Contains(t, reply.AssistantText, "Done.")
	assert.False(t, reply.ShouldSpeak)
	assert.Nil(t, reply.Pending)
	assert.NotEmpty(t, reply.TraceID)

	execs := app.QueryExecutions(t, sessionID)
	require.Len(t, execs, 1)
	assert.Equal(t, "get_calendar_events", execs[0].ToolName)
	assert.Equal(t, toolexecution.StatusSucceeded, execs[0].Status)

	calls := app.QueryToolCalls(t, sessionID, "get_calendar_events")
	require.Len(t, calls, 1)
	assert.True(t, calls[0].Executed)

	evt := sink.WaitFor(t, events.EventTypeTurnCompleted)
	assert.Equal(t, "completed", evt["status"])
	assert.Equal(t, "get_calendar_events", evt["tool_name"])
	assert.Greater(t, evt["db_event_id"], float64(0))

	// The transcript endpoint shows both sides of the exchange.
	var history models.SessionHistoryResponse
	app.call(t, http.MethodGet, "/api/v1/sessions/"+sessionID+"/history", nil, http.StatusOK, &history)
	require.Len(t, history.Messages, 2)
	assert.Equal(t, "What's on my calendar tomorrow?", history.Messages[0].Content)
	assert.Equal(t, reply.AssistantText, history.Messages[1].Content)
	assert.Empty(t, history.Pending)
}

// A user without the calendar scope gets a policy denial, not data.
func TestE2E_ScopeDenied(t *testing.T) {
	app := NewTestApp(t)
	app.Assistant.Handle("calendar", models.Intent{
		Name:       "get_calendar_events",
		Slots:      map[string]any{"days": 1},
		Confidence: 0.9,
	})

	_, narrowKey := app.NewUser(t, "core")
	sessionID := app.CreateSessionAs(t, narrowKey, models.ModalityText)
	sink := app.CollectSessionEvents(t, sessionID)

	status, reply := app.PostMessageAs(t, narrowKey, sessionID, "What's on my calendar tomorrow?", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, reply.AssistantText, "I cannot do that.")

	execs := app.QueryExecutions(t, sessionID)
	require.Len(t, execs, 1)
	assert.Equal(t, toolexecution.StatusPolicyDenied, execs[0].Status)

	// Nothing executed, but the attempt is in the audit log.
	calls := app.QueryToolCalls(t, sessionID, "get_calendar_events")
	require.Len(t, calls, 1)
	assert.False(t, calls[0].Executed)
	require.NotNil(t, calls[0].ErrorCode)
	assert.Equal(t, models.ErrCodeScopeMissing, *calls[0].ErrorCode)

	evt := sink.WaitFor(t, events.EventTypePolicyDenied)
	assert.Equal(t, models.ErrCodeScopeMissing, evt["error_code"])
	assert.Equal(t, "get_calendar_events", evt["tool_name"])
}

// An utterance the parser can't place gets a rephrase request and runs
// nothing.
func TestE2E_UnrecognizedUtterance(t *testing.T) {
	app := NewTestApp(t)

	sessionID := app.CreateSession(t, models.ModalityText)
	reply := app.Say(t, sessionID, "flibber the wozzle")
	assert.Equal(t, "I'm not sure how to help with that. Could you rephrase?", reply.AssistantText)

	assert.Empty(t, app.QueryExecutions(t, sessionID))
	assert.Equal(t, []string{"flibber the wozzle"}, app.Assistant.Utterances())
}

// A recognized intent missing a required slot asks for it instead of
// guessing.
func TestE2E_MissingSlotClarification(t *testing.T) {
	app := NewTestApp(t)
	app.Assistant.Handle("weather", models.Intent{
		Name:       "get_weather_info",
		Slots:      map[string]any{},
		Confidence: 0.8,
	})

	sessionID := app.CreateSession(t, models.ModalityText)
	reply := app.Say(t, sessionID, "what's the weather like")
	assert.Equal(t, "I need the following information to proceed: location.", reply.AssistantText)
	assert.Empty(t, app.QueryExecutions(t, sessionID))
}

// Voice sessions mark replies for speech synthesis.
func TestE2E_VoiceModality(t *testing.T) {
	app := NewTestApp(t)
	app.Assistant.Handle("weather", models.Intent{
		Name:       "get_weather_info",
		Slots:      map[string]any{"location": "Oslo"},
		Confidence: 0.9,
	})

	sessionID := app.CreateSession(t, models.ModalityVoice)
	reply := app.Say(t, sessionID, "weather in Oslo please")
	assert.True(t, reply.ShouldSpeak)
	assert.Contains(t, reply.AssistantText, "Current weather in Oslo")
}
