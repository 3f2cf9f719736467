package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/pkg/events"
	"github.com/valet-assistant/valet/pkg/models"
)

func TestAdminStats(t *testing.T) {
	h := newAPIHarness(t)
	h.seedSuperuser(t, "admin-1")
	h.seedUser(t, "user-1", apiScopes)
	h.parser.intents["what is the weather in Oslo"] = models.Intent{
		Name:       "get_weather_info",
		Slots:      map[string]any{"location": "Oslo"},
		Confidence: 0.95,
	}

	sessionID := h.createSession(t, "user-1", models.CreateSessionRequest{})
	rec := h.authed(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/message",
		models.PostMessageRequest{Content: "what is the weather in Oslo"}, "user-1")
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	rec = h.authed(t, http.MethodGet, "/api/v1/admin/stats", nil, "admin-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.SystemStats
	decodeJSON(t, rec, &stats)
	assert.Equal(t, 2, stats.Users)
	assert.Equal(t, 1, stats.Sessions)
	assert.Equal(t, 1, stats.ActiveSessions)
	assert.Equal(t, 2, stats.Messages, "user turn plus assistant reply")
	assert.Equal(t, 1, stats.ExecutionsByStatus["completed"])
	assert.Equal(t, 1, stats.DecisionCounts[string(models.DecisionAllow)])
	assert.Zero(t, stats.PendingConfirmations)
}

func TestAdminSessionSummary(t *testing.T) {
	h := newAPIHarness(t)
	h.seedSuperuser(t, "admin-1")
	h.seedUser(t, "user-1", apiScopes)
	h.parser.intents["what is the weather in Oslo"] = models.Intent{
		Name:       "get_weather_info",
		Slots:      map[string]any{"location": "Oslo"},
		Confidence: 0.95,
	}

	sessionID := h.createSession(t, "user-1", models.CreateSessionRequest{})
	rec := h.authed(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/message",
		models.PostMessageRequest{Content: "what is the weather in Oslo"}, "user-1")
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("summary covers any user's session", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/admin/sessions/"+sessionID+"/summary", nil, "admin-1")
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		var summary models.SessionSummary
		decodeJSON(t, rec, &summary)
		assert.Equal(t, sessionID, summary.SessionID)
		assert.Equal(t, "user-1", summary.UserID)
		assert.Equal(t, "active", summary.State)
		assert.Equal(t, 2, summary.MessageCount)
		assert.Equal(t, 1, summary.ExecutionsByStatus["completed"])
		require.Len(t, summary.RecentMessages, 2)
		assert.Equal(t, "user", summary.RecentMessages[0].Role)
		assert.Equal(t, "assistant", summary.RecentMessages[1].Role)
	})

	t.Run("unknown session is not found", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/admin/sessions/no-such/summary", nil, "admin-1")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminEvents(t *testing.T) {
	h := newAPIHarness(t)
	h.seedSuperuser(t, "admin-1")
	h.seedUser(t, "user-1", apiScopes)
	h.parser.intents["what is the weather in Oslo"] = models.Intent{
		Name:       "get_weather_info",
		Slots:      map[string]any{"location": "Oslo"},
		Confidence: 0.95,
	}

	sessionID := h.createSession(t, "user-1", models.CreateSessionRequest{})
	rec := h.authed(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/message",
		models.PostMessageRequest{Content: "what is the weather in Oslo"}, "user-1")
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("replays the session feed", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/admin/events?session_id="+sessionID, nil, "admin-1")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.EventsResponse
		decodeJSON(t, rec, &resp)
		require.NotEmpty(t, resp.Events)
		assert.Positive(t, resp.LastID)

		types := make([]string, 0, len(resp.Events))
		for _, evt := range resp.Events {
			types = append(types, fmt.Sprint(evt.Payload["type"]))
		}
		assert.Contains(t, types, events.EventTypeTurnCompleted)
	})

	t.Run("cursor resumes past what was seen", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/admin/events?session_id="+sessionID, nil, "admin-1")
		require.Equal(t, http.StatusOK, rec.Code)
		var first models.EventsResponse
		decodeJSON(t, rec, &first)

		rec = h.authed(t, http.MethodGet,
			fmt.Sprintf("/api/v1/admin/events?session_id=%s&after_id=%d", sessionID, first.LastID), nil, "admin-1")
		require.Equal(t, http.StatusOK, rec.Code)
		var second models.EventsResponse
		decodeJSON(t, rec, &second)
		assert.Empty(t, second.Events)
		assert.Equal(t, first.LastID, second.LastID)
	})

	t.Run("session_id is required", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/admin/events", nil, "admin-1")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", errorCode(t, rec))
	})
}
