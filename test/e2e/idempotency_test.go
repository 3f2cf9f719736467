package e2e

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/api"
	"github.com/valet-assistant/valet/pkg/models"
	testdb "github.com/valet-assistant/valet/test/database"
)

// Retrying a turn under the same Idempotency-Key returns the stored
// reply without running anything again.
func TestE2E_IdempotentRetry(t *testing.T) {
	app := NewTestApp(t)
	app.Assistant.Handle("weather", models.Intent{
		Name:       "get_weather_info",
		Slots:      map[string]any{"location": "Oslo"},
		Confidence: 0.9,
	})

	sessionID := app.CreateSession(t, models.ModalityText)

	first := app.SayWithKey(t, sessionID, "weather in Oslo", "turn-key-7")
	assert.Contains(t, first.AssistantText, "Done. Current weather in Oslo")
	assert.False(t, first.Deduplicated)

	second := app.SayWithKey(t, sessionID, "weather in Oslo", "turn-key-7")
	assert.True(t, second.Deduplicated)
	assert.Equal(t, first.AssistantText, second.AssistantText)
	assert.Equal(t, first.MessageID, second.MessageID)
	assert.Equal(t, first.TraceID, second.TraceID)

	// One parse, one user message, one execution: the retry touched
	// nothing.
	assert.Len(t, app.Assistant.Utterances(), 1)
	assert.Equal(t, 1, app.CountUserMessages(t, sessionID))
	execs := app.QueryExecutions(t, sessionID)
	require.Len(t, execs, 1)
	assert.Equal(t, toolexecution.StatusSucceeded, execs[0].Status)
}

// Without an explicit key the turn key derives from the content, so
// repeating the identical utterance dedups the same way.
func TestE2E_ContentDerivedDedup(t *testing.T) {
	app := NewTestApp(t)
	app.Assistant.Handle("weather", models.Intent{
		Name:       "get_weather_info",
		Slots:      map[string]any{"location": "Oslo"},
		Confidence: 0.9,
	})

	sessionID := app.CreateSession(t, models.ModalityText)

	first := app.Say(t, sessionID, "weather in Oslo")
	second := app.Say(t, sessionID, "weather in Oslo")
	assert.True(t, second.Deduplicated)
	assert.Equal(t, first.AssistantText, second.AssistantText)
	assert.Equal(t, 1, app.CountUserMessages(t, sessionID))

	// Different content is a fresh turn.
	third := app.Say(t, sessionID, "weather in Oslo today please")
	assert.False(t, third.Deduplicated)
	assert.Equal(t, 2, app.CountUserMessages(t, sessionID))
}

// Two replicas on one database race the same key: the session advisory
// lock serializes them, so one runs the turn and the other returns the
// stored reply. Neither caller sees an error.
func TestE2E_IdempotentRetryAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	assist := NewScriptedAssistant()
	assist.Handle("weather", models.Intent{
		Name:       "get_weather_info",
		Slots:      map[string]any{"location": "Oslo"},
		Confidence: 0.9,
	})

	app1 := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithAssistant(assist))
	app2 := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithAssistant(assist))

	sessionID := app1.CreateSession(t, models.ModalityText)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		statuses []int
		replies  []api.MessageResponse
	)
	post := func(app *TestApp) {
		defer wg.Done()
		status, reply := app.PostMessageAs(t, app1.APIKey, sessionID, "weather in Oslo", "replica-key-1")
		mu.Lock()
		statuses = append(statuses, status)
		replies = append(replies, reply)
		mu.Unlock()
	}
	wg.Add(2)
	go post(app1)
	go post(app2)
	wg.Wait()

	require.Len(t, replies, 2)
	assert.Equal(t, []int{http.StatusOK, http.StatusOK}, statuses)
	assert.Equal(t, replies[0].AssistantText, replies[1].AssistantText)
	assert.Contains(t, replies[0].AssistantText, "Done. Current weather in Oslo")

	dedups := 0
	for _, r := range replies {
		if r.Deduplicated {
			dedups++
		}
	}
	assert.Equal(t, 1, dedups, "exactly one side replays the stored reply")

	assert.Len(t, assist.Utterances(), 1)
	assert.Equal(t, 1, app1.CountUserMessages(t, sessionID))
	execs := app1.QueryExecutions(t, sessionID)
	require.Len(t, execs, 1)
	assert.Equal(t, toolexecution.StatusSucceeded, execs[0].Status)
}
