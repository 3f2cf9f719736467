// Package e2e exercises the assistant over real HTTP against a real
// PostgreSQL database: gin server, orchestrator, gRPC intent parser
// (scripted in-process backend), tool runtime with policy and guards,
// pgvector memory store and the NOTIFY event feed all run together.
package e2e

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/pkg/agent"
	"github.com/valet-assistant/valet/pkg/api"
	"github.com/valet-assistant/valet/pkg/cleanup"
	"github.com/valet-assistant/valet/pkg/config"
	"github.com/valet-assistant/valet/pkg/database"
	"github.com/valet-assistant/valet/pkg/embeddings"
	"github.com/valet-assistant/valet/pkg/events"
	"github.com/valet-assistant/valet/pkg/runtime"
	"github.com/valet-assistant/valet/pkg/services"
	"github.com/valet-assistant/valet/pkg/tools"
	testdb "github.com/valet-assistant/valet/test/database"
	"github.com/valet-assistant/valet/test/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// allScopes grants every builtin tool; individual tests seed narrower
// users when they want a scope denial.
var allScopes = []string{
	"core",
	"tool.calendar.read",
	"tool.calendar.write",
	"tool.email.read",
	"tool.email.send",
	"tool.files.read",
	"tool.files.write",
	"tool.web.search",
	"tool.system.automation",
}

// TestApp is one fully wired assistant process plus the handles tests
// poke at directly: the database client, the services, the scripted
// parser backend and the listening HTTP server's base URL.
type TestApp struct {
	Cfg     *config.Config
	DB      *database.Client
	BaseURL string

	// Default authenticated identity, seeded with allScopes.
	UserID string
	APIKey string

	// WorkspaceDir is the file tools' root; tests plant files here.
	WorkspaceDir string

	Users         *services.UserService
	Sessions      *services.SessionService
	Messages      *services.MessageService
	Memories      *services.MemoryService
	Confirmations *services.ConfirmationService
	Executions    *services.ExecutionService
	EventStore    *services.EventService

	Providers    *tools.Providers
	Registry     *tools.Registry
	Runtime      *runtime.Runtime
	Orchestrator *agent.Orchestrator
	Assistant    *ScriptedAssistant
	Publisher    *events.EventPublisher
	Listener     *events.NotifyListener
}

type testAppConfig struct {
	cfg      *config.Config
	dbClient *database.Client
	assist   *ScriptedAssistant
	cleaner  bool
}

// TestAppOption customizes TestApp creation.
type TestAppOption func(*testAppConfig)

// WithConfig replaces the default test configuration.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(tc *testAppConfig) { tc.cfg = cfg }
}

// WithDBClient reuses an existing database client instead of creating a
// per-test schema. Multi-replica tests pass clients from a SharedTestDB
// so two apps see the same rows.
func WithDBClient(client *database.Client) TestAppOption {
	return func(tc *testAppConfig) { tc.dbClient = client }
}

// WithAssistant shares a scripted parser backend between apps.
func WithAssistant(assist *ScriptedAssistant) TestAppOption {
	return func(tc *testAppConfig) { tc.assist = assist }
}

// WithCleanupLoop starts the retention sweep loop. Off by default; the
// expiry tests turn it on with a short interval.
func WithCleanupLoop() TestAppOption {
	return func(tc *testAppConfig) { tc.cleaner = true }
}

// NewTestApp boots the whole assistant the way cmd/valet does —
// database, embeddings, services, tools, runtime, parser, events,
// orchestrator, HTTP server — substituting only the parser backend
// (scripted gRPC stub), the embedding provider (local) and the
// listening port (ephemeral). Everything is shut down via t.Cleanup in
// reverse creation order.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()
	ctx := context.Background()

	tc := &testAppConfig{}
	for _, opt := range opts {
		opt(tc)
	}

	cfg := tc.cfg
	if cfg == nil {
		cfg = config.Default()
		cfg.AdminDebugEnabled = true
	}
	if cfg.WorkspaceDir == "" || cfg.WorkspaceDir == "./workspace" {
		cfg.WorkspaceDir = t.TempDir()
	}

	dbClient := tc.dbClient
	if dbClient == nil {
		dbClient = testdb.NewTestClient(t)
	}

	users := services.NewUserService(dbClient.Client)
	sessions := services.NewSessionService(dbClient.Client)
	messages := services.NewMessageService(dbClient.Client)
	executions := services.NewExecutionService(dbClient.Client)
	confirmations := services.NewConfirmationService(dbClient.Client, cfg.Policy.ConfirmationTTL)
	decisions := services.NewPolicyDecisionService(dbClient.Client)
	calls := services.NewToolCallService(dbClient.Client)
	memories := services.NewMemoryService(dbClient.Client, dbClient.DB(), embeddings.NewLocal())
	eventStore := services.NewEventService(dbClient.Client)
	stats := services.NewStatsService(dbClient.Client)

	providers := tools.NewProviders(cfg.WorkspaceDir)
	providers.Memory = memories
	registry := tools.NewRegistry()
	require.NoError(t, tools.RegisterBuiltins(registry, providers))

	rt := runtime.New(runtime.Deps{
		Registry:      registry,
		Users:         users,
		Sessions:      sessions,
		Executions:    executions,
		Confirmations: confirmations,
		Decisions:     decisions,
		Guards:        services.NewGuardService(dbClient.Client, cfg.Guards),
		Calls:         calls,
	}, cfg.Policy.Mode, cfg.Timeouts.Tool)

	catalog := agent.DefaultCatalog()
	assist := tc.assist
	if assist == nil {
		assist = NewScriptedAssistant()
	}
	parserAddr := startAssistant(t, assist)
	parser, err := agent.NewGRPCParser(parserAddr, catalog)
	require.NoError(t, err)
	t.Cleanup(func() { _ = parser.Close() })

	publisher := events.NewEventPublisher(dbClient.DB())
	listener := events.NewNotifyListener(util.GetBaseConnectionString(t))
	require.NoError(t, listener.Start(ctx))

	orchestrator := agent.NewOrchestrator(agent.Deps{
		DB:            dbClient.DB(),
		Sessions:      sessions,
		Messages:      messages,
		Memories:      memories,
		Confirmations: confirmations,
		Executions:    executions,
		Runtime:       rt,
		Parser:        parser,
		Catalog:       catalog,
		Publisher:     publisher,
	}, cfg.Timeouts.Turn)

	var cleaner *cleanup.Service
	if tc.cleaner {
		cleaner = cleanup.NewService(cfg.Retention, confirmations, sessions, memories, executions, eventStore)
		cleaner.Start(ctx)
	}

	server := api.NewServer(cfg, api.Deps{
		DB:           dbClient,
		Users:        users,
		Sessions:     sessions,
		Memories:     memories,
		Events:       eventStore,
		Stats:        stats,
		Registry:     registry,
		Orchestrator: orchestrator,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = server.StartWithListener(ln) }()

	app := &TestApp{
		Cfg:           cfg,
		DB:            dbClient,
		BaseURL:       "http://" + ln.Addr().String(),
		WorkspaceDir:  cfg.WorkspaceDir,
		Users:         users,
		Sessions:      sessions,
		Messages:      messages,
		Memories:      memories,
		Confirmations: confirmations,
		Executions:    executions,
		EventStore:    eventStore,
		Providers:     providers,
		Registry:      registry,
		Runtime:       rt,
		Orchestrator:  orchestrator,
		Assistant:     assist,
		Publisher:     publisher,
		Listener:      listener,
	}
	app.UserID, app.APIKey = app.NewUser(t, allScopes...)

	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		if cleaner != nil {
			cleaner.Stop()
		}
		listener.Stop(context.Background())
		// DB cleanup is handled by testdb.NewTestClient / SharedTestDB.
	})

	return app
}

// NewUser seeds a user with an API key and the given scopes, returning
// the user id and the plaintext key.
func (app *TestApp) NewUser(t *testing.T, scopes ...string) (string, string) {
	t.Helper()
	id := "user-" + uuid.New().String()[:8]
	key := "e2e-key-" + uuid.New().String()
	err := app.DB.Client.User.Create().
		SetID(id).
		SetScopes(scopes).
		SetAPIKeyHash(services.HashAPIKey(key)).
		Exec(context.Background())
	require.NoError(t, err)
	return id, key
}

// NewSuperuser seeds a superuser for the admin endpoints.
func (app *TestApp) NewSuperuser(t *testing.T) (string, string) {
	t.Helper()
	id := "admin-" + uuid.New().String()[:8]
	key := "e2e-admin-key-" + uuid.New().String()
	err := app.DB.Client.User.Create().
		SetID(id).
		SetScopes(allScopes).
		SetIsSuperuser(true).
		SetAPIKeyHash(services.HashAPIKey(key)).
		Exec(context.Background())
	require.NoError(t, err)
	return id, key
}
