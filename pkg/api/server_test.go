package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/pkg/agent"
	"github.com/valet-assistant/valet/pkg/config"
	"github.com/valet-assistant/valet/pkg/database"
	"github.com/valet-assistant/valet/pkg/embeddings"
	"github.com/valet-assistant/valet/pkg/events"
	"github.com/valet-assistant/valet/pkg/models"
	"github.com/valet-assistant/valet/pkg/runtime"
	"github.com/valet-assistant/valet/pkg/services"
	"github.com/valet-assistant/valet/pkg/tools"
	testdb "github.com/valet-assistant/valet/test/database"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// scriptedParser returns canned intents keyed by utterance so the turn
// endpoint is deterministic without a live parsing service.
type scriptedParser struct {
	intents map[string]models.Intent
}

func (p *scriptedParser) ParseIntent(_ context.Context, utterance, _ string) (models.Intent, error) {
	if intent, ok := p.intents[utterance]; ok {
		return intent, nil
	}
	return models.Intent{Name: models.IntentUnknown}, nil
}

// apiScopes covers every builtin the HTTP tests exercise.
var apiScopes = []string{
	"core",
	"tool.calendar.read",
	"tool.email.send",
	"tool.web.search",
}

type apiHarness struct {
	client *database.Client
	cfg    *config.Config
	server *Server
	parser *scriptedParser
}

// newAPIHarness wires the full HTTP server over an isolated database:
// real services, runtime and builtin tools, local embeddings, scripted
// parser. Admin debug endpoints are on; individual tests turn them off.
func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()
	client := testdb.NewTestClient(t)

	memories := services.NewMemoryService(client.Client, client.DB(), embeddings.NewLocal())
	providers := tools.NewProviders(t.TempDir())
	providers.Memory = memories
	reg := tools.NewRegistry()
	require.NoError(t, tools.RegisterBuiltins(reg, providers))

	users := services.NewUserService(client.Client)
	sessions := services.NewSessionService(client.Client)
	executions := services.NewExecutionService(client.Client)
	confirmations := services.NewConfirmationService(client.Client, time.Hour)

	rt := runtime.New(runtime.Deps{
		Registry:      reg,
		Users:         users,
		Sessions:      sessions,
		Executions:    executions,
		Confirmations: confirmations,
		Decisions:     services.NewPolicyDecisionService(client.Client),
		Guards: services.NewGuardService(client.Client, &config.GuardsConfig{
			RateLimitPerMinute:     50,
			MaxConsecutiveFailures: 5,
		}),
		Calls: services.NewToolCallService(client.Client),
	}, config.PolicyModeEnforce, 5*time.Second)

	parser := &scriptedParser{intents: map[string]models.Intent{}}
	orch := agent.NewOrchestrator(agent.Deps{
		DB:            client.DB(),
		Sessions:      sessions,
		Messages:      services.NewMessageService(client.Client),
		Memories:      memories,
		Confirmations: confirmations,
		Executions:    executions,
		Runtime:       rt,
		Parser:        parser,
		Catalog:       agent.DefaultCatalog(),
		Publisher:     events.NewEventPublisher(client.DB()),
	}, 0)

	cfg := config.Default()
	cfg.AdminDebugEnabled = true

	srv := NewServer(cfg, Deps{
		DB:           client,
		Users:        users,
		Sessions:     sessions,
		Memories:     memories,
		Events:       services.NewEventService(client.Client),
		Stats:        services.NewStatsService(client.Client),
		Registry:     reg,
		Orchestrator: orch,
	})
	return &apiHarness{client: client, cfg: cfg, server: srv, parser: parser}
}

func (h *apiHarness) seedUser(t *testing.T, userID string, scopes []string) *ent.User {
	t.Helper()
	u, err := h.client.Client.User.Create().
		SetID(userID).
		SetScopes(scopes).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func (h *apiHarness) seedUserWithKey(t *testing.T, userID string, scopes []string, apiKey string) *ent.User {
	t.Helper()
	u, err := h.client.Client.User.Create().
		SetID(userID).
		SetScopes(scopes).
		SetAPIKeyHash(services.HashAPIKey(apiKey)).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func (h *apiHarness) seedSuperuser(t *testing.T, userID string) *ent.User {
	t.Helper()
	u, err := h.client.Client.User.Create().
		SetID(userID).
		SetScopes(apiScopes).
		SetIsSuperuser(true).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

// request drives one request through the engine in process. A []byte
// body is sent raw; anything else non-nil is marshaled to JSON.
func (h *apiHarness) request(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.server.Handler().ServeHTTP(rec, req)
	return rec
}

// authed is request with the development identity header set.
func (h *apiHarness) authed(t *testing.T, method, path string, body any, userID string) *httptest.ResponseRecorder {
	t.Helper()
	return h.request(t, method, path, body, map[string]string{"X-User-ID": userID})
}

// requestOn drives a request through a server built with a different
// config than the harness default (production mode, admin off).
func requestOn(t *testing.T, srv *Server, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}

// errorCode extracts the code from the uniform error envelope.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error errorBody `json:"error"`
	}
	decodeJSON(t, rec, &body)
	return body.Error.Code
}

func TestHealthz(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.request(t, http.MethodGet, "/healthz", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	decodeJSON(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])
}

func TestReadyz(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.request(t, http.MethodGet, "/readyz", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var body map[string]any
	decodeJSON(t, rec, &body)
	assert.Equal(t, "ready", body["status"])
}

func TestRequestIDEcho(t *testing.T) {
	h := newAPIHarness(t)

	t.Run("caller-supplied id is echoed", func(t *testing.T) {
		rec := h.request(t, http.MethodGet, "/healthz", nil, map[string]string{
			"X-Request-ID": "req-test-1",
		})
		assert.Equal(t, "req-test-1", rec.Header().Get("X-Request-ID"))
	})

	t.Run("missing id is assigned", func(t *testing.T) {
		rec := h.request(t, http.MethodGet, "/healthz", nil, nil)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("error envelope carries the id", func(t *testing.T) {
		rec := h.request(t, http.MethodGet, "/api/v1/tools", nil, map[string]string{
			"X-Request-ID": "req-test-2",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		var body struct {
			Error errorBody `json:"error"`
		}
		decodeJSON(t, rec, &body)
		assert.Equal(t, "req-test-2", body.Error.RequestID)
	})
}

func TestSecurityHeaders(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.request(t, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestToolCatalog(t *testing.T) {
	h := newAPIHarness(t)
	h.seedUser(t, "user-1", apiScopes)

	rec := h.authed(t, http.MethodGet, "/api/v1/tools", nil, "user-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ToolCatalogResponse
	decodeJSON(t, rec, &resp)
	require.NotEmpty(t, resp.Tools)
	assert.Equal(t, len(resp.Tools), resp.Count)

	byName := make(map[string]models.ToolSpec, len(resp.Tools))
	for _, spec := range resp.Tools {
		byName[spec.Name] = spec
	}
	sendEmail, ok := byName["send_email"]
	require.True(t, ok, "catalog lists send_email")
	assert.True(t, sendEmail.ExternalCommunication)
	assert.Equal(t, "tool.email.send", sendEmail.RequiredScope)
	assert.NotEmpty(t, sendEmail.Params)
}
