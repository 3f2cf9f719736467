// Valet agent server — serves the HTTP API, runs the turn orchestrator
// and the background retention sweeps.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

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
	"github.com/valet-assistant/valet/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// setupLogging installs the process-wide slog handler: JSON in
// production, text everywhere else.
func setupLogging(cfg *config.Config) {
	var handler slog.Handler
	if cfg.Environment == config.EnvironmentProduction {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	} else {
		handler = slog.NewTextHandler(os.Stderr, nil)
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	// Parse command-line flags
	envFile := flag.String("env-file",
		getEnv("ENV_FILE", ".env"),
		"Path to environment file")
	flag.Parse()

	// Load .env before reading any configuration
	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envFile, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envFile)
	}

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg)

	slog.Info("Starting valet",
		"version", version.Full(),
		"environment", cfg.Environment,
		"http_addr", cfg.HTTPAddr,
		"policy_mode", cfg.Policy.Mode)

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Embedding provider and domain services
	embedder, err := embeddings.New(cfg.Embeddings)
	if err != nil {
		slog.Error("Failed to initialize embedding provider", "error", err)
		os.Exit(1)
	}
	slog.Info("Embedding provider initialized", "provider", embedder.Name())

	users := services.NewUserService(dbClient.Client)
	sessions := services.NewSessionService(dbClient.Client)
	messages := services.NewMessageService(dbClient.Client)
	executions := services.NewExecutionService(dbClient.Client)
	confirmations := services.NewConfirmationService(dbClient.Client, cfg.Policy.ConfirmationTTL)
	memories := services.NewMemoryService(dbClient.Client, dbClient.DB(), embedder)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Tool registry: local builtins only, every handler in-process
	providers := tools.NewProviders(cfg.WorkspaceDir)
	providers.Memory = memories
	registry := tools.NewRegistry()
	if err := tools.RegisterBuiltins(registry, providers); err != nil {
		slog.Error("Failed to register builtin tools", "error", err)
		os.Exit(1)
	}
	slog.Info("Tool registry initialized",
		"tools", len(registry.Names()),
		"workspace_dir", cfg.WorkspaceDir)

	// 5. Policy runtime
	rt := runtime.New(runtime.Deps{
		Registry:      registry,
		Users:         users,
		Sessions:      sessions,
		Executions:    executions,
		Confirmations: confirmations,
		Decisions:     services.NewPolicyDecisionService(dbClient.Client),
		Guards:        services.NewGuardService(dbClient.Client, cfg.Guards),
		Calls:         services.NewToolCallService(dbClient.Client),
	}, cfg.Policy.Mode, cfg.Timeouts.Tool)

	// 6. Intent parser
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on first RPC call
	catalog := agent.DefaultCatalog()
	parser, err := agent.NewGRPCParser(cfg.LLMServiceAddr, catalog)
	if err != nil {
		slog.Error("Failed to initialize intent parser", "addr", cfg.LLMServiceAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := parser.Close(); err != nil {
			slog.Error("Error closing intent parser", "error", err)
		}
	}()
	slog.Info("Intent parser initialized", "addr", cfg.LLMServiceAddr)

	// 7. Event publishing and the ops feed listener
	publisher := events.NewEventPublisher(dbClient.DB())
	listener := events.NewNotifyListener(dbConfig.URL)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)

	err = listener.Subscribe(ctx, events.GlobalEventsChannel, func(channel string, payload []byte) {
		slog.Debug("Event published", "channel", channel, "payload", string(payload))
	})
	if err != nil {
		slog.Error("Failed to subscribe to events channel", "error", err)
		os.Exit(1)
	}
	slog.Info("Event infrastructure initialized")

	// 8. Turn orchestrator
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

	// 9. Background retention sweeps
	cleaner := cleanup.NewService(cfg.Retention, confirmations, sessions, memories, executions, eventService)
	cleaner.Start(ctx)

	// 10. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, api.Deps{
		DB:           dbClient,
		Users:        users,
		Sessions:     sessions,
		Memories:     memories,
		Events:       eventService,
		Stats:        services.NewStatsService(dbClient.Client),
		Registry:     registry,
		Orchestrator: orchestrator,
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Valet started successfully",
		"admin_debug", cfg.AdminDebugEnabled,
		"confirmation_ttl", cfg.Policy.ConfirmationTTL)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: stop accepting requests first, let in-flight
	// turns drain, then stop the sweeps.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 10*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	cleaner.Stop()

	slog.Info("Shutdown complete")
}
