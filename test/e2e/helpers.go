package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/agentmessage"
	"github.com/valet-assistant/valet/ent/confirmation"
	"github.com/valet-assistant/valet/ent/toolcall"
	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/api"
	"github.com/valet-assistant/valet/pkg/events"
	"github.com/valet-assistant/valet/pkg/models"
)

// ────────────────────────────────────────────────────────────
// HTTP client helpers
// ────────────────────────────────────────────────────────────

// request performs one HTTP call against the app with the given API key.
// body nil means no body; otherwise it is JSON-encoded.
func (app *TestApp) request(t *testing.T, method, path, apiKey string, body any, headers map[string]string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-API-Key", apiKey)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// call performs a request as the default user and decodes the response
// into out (skipped when out is nil).
func (app *TestApp) call(t *testing.T, method, path string, body any, expectedStatus int, out any) {
	t.Helper()
	resp := app.request(t, method, path, app.APIKey, body, nil)
	decodeBody(t, resp, expectedStatus, out)
}

// decodeBody drains and closes a response, requiring the status and
// decoding the JSON body into out when out is non-nil.
func decodeBody(t *testing.T, resp *http.Response, expectedStatus int, out any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode, "unexpected status, body: %s", raw)
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out), "undecodable body: %s", raw)
	}
}

// CreateSession opens a session over the API and returns its id.
func (app *TestApp) CreateSession(t *testing.T, modality string) string {
	t.Helper()
	return app.CreateSessionAs(t, app.APIKey, modality)
}

// CreateSessionAs opens a session under an arbitrary API key.
func (app *TestApp) CreateSessionAs(t *testing.T, apiKey, modality string) string {
	t.Helper()
	resp := app.request(t, http.MethodPost, "/api/v1/sessions", apiKey, models.CreateSessionRequest{Modality: modality}, nil)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created api.CreateSessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	return created.SessionID
}

// Say submits one utterance and returns the turn response. The turn
// endpoint answers 200 even for denials and clarifications; transport
// failures are a different test's business.
func (app *TestApp) Say(t *testing.T, sessionID, content string) api.MessageResponse {
	t.Helper()
	return app.SayWithKey(t, sessionID, content, "")
}

// SayWithKey submits one utterance under an explicit Idempotency-Key.
func (app *TestApp) SayWithKey(t *testing.T, sessionID, content, idempotencyKey string) api.MessageResponse {
	t.Helper()
	status, reply := app.PostMessageAs(t, app.APIKey, sessionID, content, idempotencyKey)
	require.Equal(t, http.StatusOK, status, "turn %q did not complete: %+v", content, reply)
	return reply
}

// PostMessageAs submits an utterance as an arbitrary API key and
// returns the HTTP status with the (possibly zero) decoded reply.
// Multi-replica tests drive several apps under one identity with it.
func (app *TestApp) PostMessageAs(t *testing.T, apiKey, sessionID, content, idempotencyKey string) (int, api.MessageResponse) {
	t.Helper()
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers["Idempotency-Key"] = idempotencyKey
	}
	resp := app.request(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/message",
		apiKey, models.PostMessageRequest{Content: content}, headers)
	defer func() { _ = resp.Body.Close() }()

	var reply api.MessageResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&reply))
	}
	return resp.StatusCode, reply
}

// ────────────────────────────────────────────────────────────
// DB query helpers
// ────────────────────────────────────────────────────────────

// QueryExecutions returns the session's tool executions, oldest first.
func (app *TestApp) QueryExecutions(t *testing.T, sessionID string) []*ent.ToolExecution {
	t.Helper()
	execs, err := app.DB.Client.ToolExecution.Query().
		Where(toolexecution.SessionIDEQ(sessionID)).
		Order(ent.Asc(toolexecution.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return execs
}

// QueryToolCalls returns the session's audit rows for one tool, oldest
// first.
func (app *TestApp) QueryToolCalls(t *testing.T, sessionID, toolName string) []*ent.ToolCall {
	t.Helper()
	rows, err := app.DB.Client.ToolCall.Query().
		Where(
			toolcall.SessionIDEQ(sessionID),
			toolcall.ToolNameEQ(toolName),
		).
		Order(ent.Asc(toolcall.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// CountUserMessages counts the session's persisted user-role messages.
func (app *TestApp) CountUserMessages(t *testing.T, sessionID string) int {
	t.Helper()
	n, err := app.DB.Client.AgentMessage.Query().
		Where(
			agentmessage.SessionIDEQ(sessionID),
			agentmessage.RoleEQ(agentmessage.RoleUser),
		).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

// QueryConfirmations returns the session's confirmations, oldest first.
func (app *TestApp) QueryConfirmations(t *testing.T, sessionID string) []*ent.Confirmation {
	t.Helper()
	rows, err := app.DB.Client.Confirmation.Query().
		Where(confirmation.SessionIDEQ(sessionID)).
		Order(ent.Asc(confirmation.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// ────────────────────────────────────────────────────────────
// NOTIFY event collection
// ────────────────────────────────────────────────────────────

// EventSink accumulates the NOTIFY payloads delivered on one session
// channel.
type EventSink struct {
	mu     sync.Mutex
	events []map[string]any
}

// CollectSessionEvents subscribes the app's listener to the session's
// channel and collects everything published from now on.
func (app *TestApp) CollectSessionEvents(t *testing.T, sessionID string) *EventSink {
	t.Helper()
	sink := &EventSink{}
	channel := events.SessionChannel(sessionID)
	err := app.Listener.Subscribe(context.Background(), channel, func(_ string, payload []byte) {
		var decoded map[string]any
		if json.Unmarshal(payload, &decoded) != nil {
			return
		}
		sink.mu.Lock()
		sink.events = append(sink.events, decoded)
		sink.mu.Unlock()
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Listener.Unsubscribe(context.Background(), channel) })
	return sink
}

// Types returns the "type" field of every collected event, in arrival
// order.
func (s *EventSink) Types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, e := range s.events {
		if typ, ok := e["type"].(string); ok {
			out = append(out, typ)
		}
	}
	return out
}

// WaitFor blocks until an event of the given type arrives and returns
// it. NOTIFY delivery is asynchronous relative to the HTTP response, so
// assertions on the feed always go through here.
func (s *EventSink) WaitFor(t *testing.T, eventType string) map[string]any {
	t.Helper()
	return s.WaitForN(t, eventType, 1)[0]
}

// WaitForN blocks until at least n events of the given type arrived and
// returns them in arrival order.
func (s *EventSink) WaitForN(t *testing.T, eventType string, n int) []map[string]any {
	t.Helper()
	var found []map[string]any
	require.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		found = found[:0]
		for _, e := range s.events {
			if e["type"] == eventType {
				found = append(found, e)
			}
		}
		return len(found) >= n
	}, 10*time.Second, 20*time.Millisecond, "fewer than %d %s events arrived", n, eventType)
	return found
}
