package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/pkg/models"
)

func TestCreateSession(t *testing.T) {
	h := newAPIHarness(t)
	h.seedUser(t, "user-1", apiScopes)

	t.Run("empty body defaults to text", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/sessions", nil, "user-1")
		require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

		var resp CreateSessionResponse
		decodeJSON(t, rec, &resp)
		assert.NotEmpty(t, resp.SessionID)
		assert.Equal(t, models.ModalityText, resp.Modality)
		assert.False(t, resp.StartedAt.IsZero())
	})

	t.Run("voice modality is honored", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/sessions",
			models.CreateSessionRequest{Modality: models.ModalityVoice}, "user-1")
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp CreateSessionResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, models.ModalityVoice, resp.Modality)
	})

	t.Run("invalid modality is a validation error", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/sessions",
			models.CreateSessionRequest{Modality: "telepathy"}, "user-1")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation_error", errorCode(t, rec))
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		rec := h.authed(t, http.MethodPost, "/api/v1/sessions", []byte(`{"modality":`), "user-1")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", errorCode(t, rec))
	})
}

func TestListSessions(t *testing.T) {
	h := newAPIHarness(t)
	h.seedUser(t, "user-1", apiScopes)
	h.seedUser(t, "user-2", apiScopes)

	var ids []string
	for i := 0; i < 3; i++ {
		rec := h.authed(t, http.MethodPost, "/api/v1/sessions", nil, "user-1")
		require.Equal(t, http.StatusCreated, rec.Code)
		var resp CreateSessionResponse
		decodeJSON(t, rec, &resp)
		ids = append(ids, resp.SessionID)
	}

	t.Run("lists own sessions", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/sessions", nil, "user-1")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.SessionListResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Sessions, 3)
	})

	t.Run("pagination", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/sessions?limit=2&offset=2", nil, "user-1")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.SessionListResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Sessions, 1)
	})

	t.Run("other users see nothing", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/sessions", nil, "user-2")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.SessionListResponse
		decodeJSON(t, rec, &resp)
		assert.Zero(t, resp.TotalCount)
	})

	t.Run("active filter drops revoked sessions", func(t *testing.T) {
		rec := h.authed(t, http.MethodDelete, "/api/v1/sessions/"+ids[0], nil, "user-1")
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = h.authed(t, http.MethodGet, "/api/v1/sessions?active=true", nil, "user-1")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.SessionListResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, 2, resp.TotalCount)
		for _, sess := range resp.Sessions {
			assert.NotEqual(t, ids[0], sess.ID)
		}
	})

	t.Run("bad active value is rejected", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/sessions?active=maybe", nil, "user-1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSessionHistory(t *testing.T) {
	h := newAPIHarness(t)
	h.seedUser(t, "user-1", apiScopes)
	h.seedUser(t, "user-2", apiScopes)
	h.parser.intents["what is the weather in Oslo"] = models.Intent{
		Name:       "get_weather_info",
		Slots:      map[string]any{"location": "Oslo"},
		Confidence: 0.95,
	}

	rec := h.authed(t, http.MethodPost, "/api/v1/sessions", nil, "user-1")
	require.Equal(t, http.StatusCreated, rec.Code)
	var created CreateSessionResponse
	decodeJSON(t, rec, &created)

	rec = h.authed(t, http.MethodPost, "/api/v1/sessions/"+created.SessionID+"/message",
		models.PostMessageRequest{Content: "what is the weather in Oslo"}, "user-1")
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	t.Run("owner sees the transcript", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/sessions/"+created.SessionID+"/history", nil, "user-1")
		require.Equal(t, http.StatusOK, rec.Code)

		var history models.SessionHistoryResponse
		decodeJSON(t, rec, &history)
		require.NotNil(t, history.Session)
		assert.Equal(t, created.SessionID, history.Session.ID)
		require.Len(t, history.Messages, 2, "user turn plus assistant reply")
		assert.Equal(t, "what is the weather in Oslo", history.Messages[0].Content)
		assert.Len(t, history.Executions, 1)
	})

	t.Run("foreign session is not found", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/sessions/"+created.SessionID+"/history", nil, "user-2")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", errorCode(t, rec))
	})

	t.Run("unknown session is not found", func(t *testing.T) {
		rec := h.authed(t, http.MethodGet, "/api/v1/sessions/no-such/history", nil, "user-1")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRevokeSession(t *testing.T) {
	h := newAPIHarness(t)
	h.seedUser(t, "user-1", apiScopes)
	h.seedUser(t, "user-2", apiScopes)

	rec := h.authed(t, http.MethodPost, "/api/v1/sessions", nil, "user-1")
	require.Equal(t, http.StatusCreated, rec.Code)
	var created CreateSessionResponse
	decodeJSON(t, rec, &created)

	t.Run("owner revokes", func(t *testing.T) {
		rec := h.authed(t, http.MethodDelete, "/api/v1/sessions/"+created.SessionID, nil, "user-1")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("revoking again is a no-op", func(t *testing.T) {
		rec := h.authed(t, http.MethodDelete, "/api/v1/sessions/"+created.SessionID, nil, "user-1")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("foreign session is not found", func(t *testing.T) {
		rec := h.authed(t, http.MethodDelete, "/api/v1/sessions/"+created.SessionID, nil, "user-2")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown session is not found", func(t *testing.T) {
		rec := h.authed(t, http.MethodDelete, "/api/v1/sessions/no-such", nil, "user-1")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
