// Package api is the HTTP surface of the assistant: session lifecycle,
// the turn endpoint, the memory CRUD/search API, the tool catalog and
// the admin debug endpoints. Handlers stay thin — they validate params,
// call one service and map errors; everything stateful lives below.
package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/valet-assistant/valet/pkg/agent"
	"github.com/valet-assistant/valet/pkg/config"
	"github.com/valet-assistant/valet/pkg/database"
	"github.com/valet-assistant/valet/pkg/services"
	"github.com/valet-assistant/valet/pkg/tools"
)

// Deps are the collaborators the server exposes over HTTP.
type Deps struct {
	DB           *database.Client
	Users        *services.UserService
	Sessions     *services.SessionService
	Memories     *services.MemoryService
	Events       *services.EventService
	Stats        *services.StatsService
	Registry     *tools.Registry
	Orchestrator *agent.Orchestrator
}

// Server wires the gin engine over the service layer.
type Server struct {
	cfg  *config.Config
	deps Deps

	engine *gin.Engine
	http   *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(cfg *config.Config, deps Deps) *Server {
	if cfg.Environment == config.EnvironmentProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{cfg: cfg, deps: deps}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(),
		securityHeaders(),
		cors.New(corsConfig()),
	)

	// Liveness and readiness are unauthenticated: probes have no API key.
	engine.GET("/healthz", s.healthzHandler)
	engine.GET("/readyz", s.readyzHandler)

	v1 := engine.Group("/api/v1", s.authenticate())
	{
		v1.POST("/sessions", s.createSessionHandler)
		v1.GET("/sessions", s.listSessionsHandler)
		v1.GET("/sessions/:id/history", s.sessionHistoryHandler)
		v1.DELETE("/sessions/:id", s.revokeSessionHandler)
		v1.POST("/sessions/:id/message", s.postMessageHandler)

		v1.GET("/tools", s.listToolsHandler)

		v1.GET("/memories", s.listMemoriesHandler)
		v1.POST("/memories", s.createMemoryHandler)
		v1.POST("/memories/search", s.searchMemoriesHandler)
		v1.PATCH("/memories/:id", s.updateMemoryHandler)
		v1.DELETE("/memories/:id", s.deleteMemoryHandler)
		v1.GET("/memories/:id/events", s.memoryEventsHandler)

		admin := v1.Group("/admin", s.requireAdmin())
		{
			admin.GET("/stats", s.adminStatsHandler)
			admin.GET("/sessions/:id/summary", s.adminSessionSummaryHandler)
			admin.GET("/events", s.adminEventsHandler)
		}
	}

	s.engine = engine
	return s
}

// Handler exposes the engine for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start begins serving on addr. It blocks until the listener fails or
// Shutdown is called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// StartWithListener serves on an already-bound listener. Tests use it
// to serve on an ephemeral port they picked themselves.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.http = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.Serve(ln)
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// corsConfig allows browser frontends on other origins to call the API.
// The API key travels in a header, not a cookie, so credentials stay off.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = []string{
		"Origin", "Content-Type", "Accept",
		"X-API-Key", "X-User-ID", "X-Request-ID", "Idempotency-Key",
	}
	cfg.ExposeHeaders = []string{"X-Request-ID"}
	return cfg
}
