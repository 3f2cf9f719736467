// Package cleanup runs the background retention sweeps: lapsed
// confirmations, idle sessions, expired and purged memories, stale
// executions and old event rows.
package cleanup

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/valet-assistant/valet/pkg/config"
	"github.com/valet-assistant/valet/pkg/services"
)

// staleExecutionGrace is how long a RUNNING execution may sit past any
// plausible tool deadline before the sweep fails it. Failing it frees
// the idempotency key so a retry of the turn can run.
const staleExecutionGrace = 10 * time.Minute

// Service periodically enforces retention and unwedges stuck state:
//   - PENDING confirmations past expires_at become EXPIRED, and their
//     parked executions with them
//   - sessions idle past the TTL are revoked
//   - memories past their TTL are expired, soft-deleted ones purged
//   - RUNNING executions stuck past the deadline grace are failed
//   - event rows past retention are removed
//
// Every sweep is idempotent and safe to run from multiple replicas.
type Service struct {
	cfg           *config.RetentionConfig
	confirmations *services.ConfirmationService
	sessions      *services.SessionService
	memories      *services.MemoryService
	executions    *services.ExecutionService
	events        *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	confirmations *services.ConfirmationService,
	sessions *services.SessionService,
	memories *services.MemoryService,
	executions *services.ExecutionService,
	events *services.EventService,
) *Service {
	return &Service{
		cfg:           cfg,
		confirmations: confirmations,
		sessions:      sessions,
		memories:      memories,
		executions:    executions,
		events:        events,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"interval", s.cfg.CleanupInterval,
		"session_ttl", s.cfg.SessionTTL,
		"event_retention_days", s.cfg.EventRetentionDays)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	timer := time.NewTimer(s.interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			s.RunAll(ctx)
			timer.Reset(s.interval())
		}
	}
}

// interval returns the sweep period with jitter so replicas on the same
// schedule do not contend on the same rows.
func (s *Service) interval() time.Duration {
	base := s.cfg.CleanupInterval
	jitter := base / 10
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// RunAll executes every sweep once. Each sweep logs and swallows its own
// errors: retention must never take the service down.
func (s *Service) RunAll(ctx context.Context) {
	s.expireConfirmations(ctx)
	s.expireIdleSessions(ctx)
	s.expireMemories(ctx)
	s.purgeDeletedMemories(ctx)
	s.failStaleExecutions(ctx)
	s.cleanupEvents(ctx)
}

func (s *Service) expireConfirmations(ctx context.Context) {
	count, err := s.confirmations.ExpirePending(ctx, time.Now())
	if err != nil {
		slog.Error("Retention: confirmation expiry failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: expired lapsed confirmations", "count", count)
	}
}

func (s *Service) expireIdleSessions(ctx context.Context) {
	if s.cfg.SessionTTL <= 0 {
		return
	}
	count, err := s.sessions.ExpireIdleSessions(ctx, s.cfg.SessionTTL)
	if err != nil {
		slog.Error("Retention: session expiry failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: expired idle sessions", "count", count)
	}
}

func (s *Service) expireMemories(ctx context.Context) {
	count, err := s.memories.ExpireMemories(ctx, time.Now())
	if err != nil {
		slog.Error("Retention: memory expiry failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: expired memories", "count", count)
	}
}

func (s *Service) purgeDeletedMemories(ctx context.Context) {
	retention := time.Duration(s.cfg.EventRetentionDays) * 24 * time.Hour
	count, err := s.memories.PurgeDeleted(ctx, retention)
	if err != nil {
		slog.Error("Retention: memory purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged soft-deleted memories", "count", count)
	}
}

func (s *Service) failStaleExecutions(ctx context.Context) {
	count, err := s.executions.FailStaleRunning(ctx, staleExecutionGrace)
	if err != nil {
		slog.Error("Retention: stale execution sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Warn("Retention: failed stale running executions", "count", count)
	}
}

func (s *Service) cleanupEvents(ctx context.Context) {
	count, err := s.events.CleanupOrphanedEvents(ctx, s.cfg.EventRetentionDays)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed old events", "count", count)
	}
}
