package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/pkg/models"
)

// createSession is a shorthand for tests that just need a session to
// talk in.
func (h *apiHarness) createSession(t *testing.T, userID string, req models.CreateSessionRequest) string {
	t.Helper()
	rec := h.authed(t, http.MethodPost, "/api/v1/sessions", req, userID)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	var resp CreateSessionResponse
	decodeJSON(t, rec, &resp)
	return resp.SessionID
}

func TestPostMessage(t *testing.T) {
	h := newAPIHarness(t)
	h.seedUser(t, "user-1", apiScopes)
	h.parser.intents["what is the weather in Oslo"] = models.Intent{
		Name:       "get_weather_info",
		Slots:      map[string]any{"location": "Oslo"},
		Confidence: 0.95,
	}
	sessionID := h.createSession(t, "user-1", models.CreateSessionRequest{})

	t.Run("turn runs and replies", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/message",
			models.PostMessageRequest{Content: "what is the weather in Oslo"}, "user-1")
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		var resp MessageResponse
		decodeJSON(t, rec, &resp)
		assert.Contains(t, resp.AssistantText, "Done. Current weather in Oslo")
		assert.Equal(t, sessionID, resp.SessionID)
		assert.NotEmpty(t, resp.MessageID)
		assert.NotEmpty(t, resp.TraceID)
		assert.NotEmpty(t, resp.RequestID)
		assert.False(t, resp.ShouldSpeak)
		assert.False(t, resp.Deduplicated)
		assert.Nil(t, resp.Pending)
	})

	t.Run("voice override speaks the reply", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/message",
			models.PostMessageRequest{Content: "say something", Modality: models.ModalityVoice}, "user-1")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp MessageResponse
		decodeJSON(t, rec, &resp)
		assert.True(t, resp.ShouldSpeak)
	})

	t.Run("blank content is rejected", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/message",
			models.PostMessageRequest{Content: "   "}, "user-1")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", errorCode(t, rec))
	})

	t.Run("invalid modality is rejected", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/message",
			models.PostMessageRequest{Content: "hello", Modality: "morse"}, "user-1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing body is rejected", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/message", nil, "user-1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown session is not found", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/sessions/no-such/message",
			models.PostMessageRequest{Content: "hello"}, "user-1")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", errorCode(t, rec))
	})

	t.Run("foreign session is not found", func(t *testing.T) {
		h.seedUser(t, "user-2", apiScopes)
		rec := h.authed(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/message",
			models.PostMessageRequest{Content: "hello"}, "user-2")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("revoked session is gone", func(t *testing.T) {
		revoked := h.createSession(t, "user-1", models.CreateSessionRequest{})
		rec := h.authed(t, http.MethodDelete, "/api/v1/sessions/"+revoked, nil, "user-1")
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = h.authed(t, http.MethodPost, "/api/v1/sessions/"+revoked+"/message",
			models.PostMessageRequest{Content: "hello"}, "user-1")
		require.Equal(t, http.StatusGone, rec.Code)
		assert.Equal(t, "session_inactive", errorCode(t, rec))
	})
}

func TestPostMessageIdempotency(t *testing.T) {
	h := newAPIHarness(t)
	h.seedUser(t, "user-1", apiScopes)
	h.parser.intents["weather in Oslo"] = models.Intent{
		Name:       "get_weather_info",
		Slots:      map[string]any{"location": "Oslo"},
		Confidence: 0.95,
	}
	sessionID := h.createSession(t, "user-1", models.CreateSessionRequest{})

	submit := func() MessageResponse {
		rec := h.request(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/message",
			models.PostMessageRequest{Content: "weather in Oslo"}, map[string]string{
				"X-User-ID":       "user-1",
				"Idempotency-Key": "turn-key-http",
			})
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
		var resp MessageResponse
		decodeJSON(t, rec, &resp)
		return resp
	}

	first := submit()
	require.False(t, first.Deduplicated)

	second := submit()
	assert.True(t, second.Deduplicated)
	assert.Equal(t, first.AssistantText, second.AssistantText)
	assert.Equal(t, first.MessageID, second.MessageID)
	assert.Equal(t, first.TraceID, second.TraceID)
}

func TestPostMessageConfirmationFlow(t *testing.T) {
	h := newAPIHarness(t)
	h.seedUser(t, "user-1", apiScopes)
	h.parser.intents["send the report to sam"] = models.Intent{
		Name: "send_email",
		Slots: map[string]any{
			"to":      "sam@example.com",
			"subject": "Quarterly report",
			"content": "Numbers attached.",
		},
		Confidence: 0.93,
	}
	sessionID := h.createSession(t, "user-1", models.CreateSessionRequest{Modality: models.ModalityVoice})

	post := func(content string) MessageResponse {
		rec := h.authed(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/message",
			models.PostMessageRequest{Content: content}, "user-1")
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
		var resp MessageResponse
		decodeJSON(t, rec, &resp)
		return resp
	}

	first := post("send the report to sam")
	require.NotNil(t, first.Pending)
	assert.Equal(t, "send_email", first.Pending.ToolName)
	assert.Equal(t, first.Pending.Prompt, first.AssistantText)
	assert.NotEmpty(t, first.Pending.ID)
	assert.False(t, first.Pending.ExpiresAt.IsZero())

	second := post("yes, send it")
	assert.Equal(t, "Done. Email sent successfully.", second.AssistantText)
	assert.Nil(t, second.Pending)
}
