package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/confirmation"
	"github.com/valet-assistant/valet/ent/memoryevent"
	"github.com/valet-assistant/valet/ent/session"
	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/config"
	"github.com/valet-assistant/valet/pkg/database"
	"github.com/valet-assistant/valet/pkg/embeddings"
	"github.com/valet-assistant/valet/pkg/models"
	"github.com/valet-assistant/valet/pkg/services"
	testdb "github.com/valet-assistant/valet/test/database"
)

type sweepHarness struct {
	client *database.Client
	svc    *Service
	cfg    *config.RetentionConfig
}

func newSweepHarness(t *testing.T) *sweepHarness {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := &config.RetentionConfig{
		SessionTTL:         time.Hour,
		CleanupInterval:    time.Minute,
		EventRetentionDays: 14,
	}
	svc := NewService(cfg,
		services.NewConfirmationService(client.Client, time.Hour),
		services.NewSessionService(client.Client),
		services.NewMemoryService(client.Client, client.DB(), embeddings.NewLocal()),
		services.NewExecutionService(client.Client),
		services.NewEventService(client.Client),
	)
	return &sweepHarness{client: client, svc: svc, cfg: cfg}
}

func (h *sweepHarness) seedIdentity(t *testing.T, userID, sessionID string) {
	t.Helper()
	ctx := context.Background()
	_, err := h.client.Client.User.Create().
		SetID(userID).
		SetScopes(models.DefaultUserScopes).
		Save(ctx)
	require.NoError(t, err)
	_, err = h.client.Client.Session.Create().
		SetID(sessionID).
		SetUserID(userID).
		SetModality(session.ModalityText).
		Save(ctx)
	require.NoError(t, err)
}

// seedGatedExecution creates an awaiting-confirmation execution and its
// pending confirmation expiring at the given time.
func (h *sweepHarness) seedGatedExecution(t *testing.T, userID, sessionID string, expiresAt time.Time) (execID, confID string) {
	t.Helper()
	ctx := context.Background()
	execID = uuid.New().String()
	_, err := h.client.Client.ToolExecution.Create().
		SetID(execID).
		SetSessionID(sessionID).
		SetUserID(userID).
		SetToolName("send_email").
		SetStatus(toolexecution.StatusAwaitingConfirmation).
		SetIdempotencyKey(uuid.New().String()).
		Save(ctx)
	require.NoError(t, err)

	confID = uuid.New().String()
	_, err = h.client.Client.Confirmation.Create().
		SetID(confID).
		SetToolExecutionID(execID).
		SetSessionID(sessionID).
		SetUserID(userID).
		SetToolName("send_email").
		SetDecisionType("allow_with_confirm").
		SetPrompt("Please confirm.").
		SetRiskScore(60).
		SetReasonCode("EXTERNAL_COMM_CONFIRM").
		SetExpiresAt(expiresAt).
		Save(ctx)
	require.NoError(t, err)
	return execID, confID
}

func TestServiceRunAll(t *testing.T) {
	h := newSweepHarness(t)
	h.seedIdentity(t, "user-1", "sess-1")
	ctx := context.Background()

	// Confirmations: one lapsed, one still valid.
	lapsedExec, lapsedConf := h.seedGatedExecution(t, "user-1", "sess-1", time.Now().Add(-time.Minute))
	freshExec, freshConf := h.seedGatedExecution(t, "user-1", "sess-1", time.Now().Add(time.Hour))

	// Sessions: one idle past the TTL, one recently active.
	_, err := h.client.Client.Session.Create().
		SetID("sess-idle").
		SetUserID("user-1").
		SetModality(session.ModalityText).
		SetLastActivityAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// Memories: one past its TTL, one soft-deleted long ago, one live.
	memories := services.NewMemoryService(h.client.Client, h.client.DB(), embeddings.NewLocal())
	writeMemory := func(content string) *ent.Memory {
		res, err := memories.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID: "user-1", Type: "fact", Content: content,
		})
		require.NoError(t, err)
		return res.Memory
	}
	lapsedMem := writeMemory("expires soon")
	purgedMem := writeMemory("long deleted")
	liveMem := writeMemory("still relevant")
	require.NoError(t, h.client.Client.Memory.UpdateOneID(lapsedMem.ID).
		SetExpiresAt(time.Now().Add(-time.Minute)).Exec(ctx))
	require.NoError(t, h.client.Client.Memory.UpdateOneID(purgedMem.ID).
		SetIsDeleted(true).
		SetUpdatedAt(time.Now().Add(-30*24*time.Hour)).Exec(ctx))

	// Executions: one stuck running past the grace, one recently started.
	stuck, err := h.client.Client.ToolExecution.Create().
		SetID(uuid.New().String()).
		SetSessionID("sess-1").
		SetUserID("user-1").
		SetToolName("web_search").
		SetStatus(toolexecution.StatusRunning).
		SetIdempotencyKey(uuid.New().String()).
		SetStartedAt(time.Now().Add(-20 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)
	running, err := h.client.Client.ToolExecution.Create().
		SetID(uuid.New().String()).
		SetSessionID("sess-1").
		SetUserID("user-1").
		SetToolName("web_search").
		SetStatus(toolexecution.StatusRunning).
		SetIdempotencyKey(uuid.New().String()).
		SetStartedAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	// Events: one past retention, one fresh.
	oldEvent, err := h.client.Client.Event.Create().
		SetSessionID("sess-1").
		SetChannel("session:sess-1").
		SetPayload(map[string]any{"type": "turn.completed"}).
		SetCreatedAt(time.Now().Add(-30 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	freshEvent, err := h.client.Client.Event.Create().
		SetSessionID("sess-1").
		SetChannel("session:sess-1").
		SetPayload(map[string]any{"type": "turn.completed"}).
		Save(ctx)
	require.NoError(t, err)

	h.svc.RunAll(ctx)

	t.Run("lapsed confirmation and its execution expire", func(t *testing.T) {
		conf, err := h.client.Client.Confirmation.Get(ctx, lapsedConf)
		require.NoError(t, err)
		assert.Equal(t, confirmation.StatusExpired, conf.Status)
		exec, err := h.client.Client.ToolExecution.Get(ctx, lapsedExec)
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusExpired, exec.Status)

		fresh, err := h.client.Client.Confirmation.Get(ctx, freshConf)
		require.NoError(t, err)
		assert.Equal(t, confirmation.StatusPending, fresh.Status)
		exec, err = h.client.Client.ToolExecution.Get(ctx, freshExec)
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusAwaitingConfirmation, exec.Status)
	})

	t.Run("idle session expires, active one survives", func(t *testing.T) {
		idle, err := h.client.Client.Session.Get(ctx, "sess-idle")
		require.NoError(t, err)
		require.NotNil(t, idle.ExpiresAt)
		assert.False(t, services.SessionActive(idle, time.Now()))

		active, err := h.client.Client.Session.Get(ctx, "sess-1")
		require.NoError(t, err)
		assert.True(t, services.SessionActive(active, time.Now()))
	})

	t.Run("lapsed memory expires with an audit event", func(t *testing.T) {
		mem, err := h.client.Client.Memory.Get(ctx, lapsedMem.ID)
		require.NoError(t, err)
		assert.True(t, mem.IsDeleted)

		count, err := h.client.Client.MemoryEvent.Query().
			Where(
				memoryevent.MemoryIDEQ(lapsedMem.ID),
				memoryevent.EventTypeEQ(memoryevent.EventTypeExpired),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("old soft-deleted memory is purged, live one kept", func(t *testing.T) {
		_, err := h.client.Client.Memory.Get(ctx, purgedMem.ID)
		assert.True(t, ent.IsNotFound(err))
		_, err = h.client.Client.Memory.Get(ctx, liveMem.ID)
		assert.NoError(t, err)
	})

	t.Run("stuck execution fails with a deadline code", func(t *testing.T) {
		exec, err := h.client.Client.ToolExecution.Get(ctx, stuck.ID)
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusFailed, exec.Status)
		require.NotNil(t, exec.ErrorCode)
		assert.Equal(t, "DEADLINE_EXCEEDED", *exec.ErrorCode)

		recent, err := h.client.Client.ToolExecution.Get(ctx, running.ID)
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusRunning, recent.Status)
	})

	t.Run("events past retention are removed", func(t *testing.T) {
		_, err := h.client.Client.Event.Get(ctx, oldEvent.ID)
		assert.True(t, ent.IsNotFound(err))
		_, err = h.client.Client.Event.Get(ctx, freshEvent.ID)
		assert.NoError(t, err)
	})
}

func TestServiceRunAllIsIdempotent(t *testing.T) {
	h := newSweepHarness(t)
	h.seedIdentity(t, "user-1", "sess-1")
	ctx := context.Background()

	_, confID := h.seedGatedExecution(t, "user-1", "sess-1", time.Now().Add(-time.Minute))

	h.svc.RunAll(ctx)
	h.svc.RunAll(ctx)

	conf, err := h.client.Client.Confirmation.Get(ctx, confID)
	require.NoError(t, err)
	assert.Equal(t, confirmation.StatusExpired, conf.Status)

	// The second sweep did not write a second audit trail for the same
	// memory or touch the already-expired rows.
	count, err := h.client.Client.Confirmation.Query().
		Where(confirmation.StatusEQ(confirmation.StatusExpired)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestServiceStartStop(t *testing.T) {
	h := newSweepHarness(t)
	h.seedIdentity(t, "user-1", "sess-1")
	_, confID := h.seedGatedExecution(t, "user-1", "sess-1", time.Now().Add(-time.Minute))

	h.svc.Start(context.Background())
	defer h.svc.Stop()

	// The loop sweeps once on startup, before the first tick.
	require.Eventually(t, func() bool {
		conf, err := h.client.Client.Confirmation.Get(context.Background(), confID)
		return err == nil && conf.Status == confirmation.StatusExpired
	}, 5*time.Second, 50*time.Millisecond)
}

func TestServiceStopWithoutStart(t *testing.T) {
	h := newSweepHarness(t)
	h.svc.Stop()
}

func TestServiceInterval(t *testing.T) {
	h := newSweepHarness(t)
	base := h.cfg.CleanupInterval
	jitter := base / 10
	for i := 0; i < 50; i++ {
		d := h.svc.interval()
		assert.GreaterOrEqual(t, d, base-jitter)
		assert.LessOrEqual(t, d, base+jitter)
	}
}

func TestServiceSkipsSessionExpiryWithoutTTL(t *testing.T) {
	h := newSweepHarness(t)
	h.cfg.SessionTTL = 0
	h.seedIdentity(t, "user-1", "sess-1")
	ctx := context.Background()

	_, err := h.client.Client.Session.Create().
		SetID("sess-old").
		SetUserID("user-1").
		SetModality(session.ModalityText).
		SetLastActivityAt(time.Now().Add(-100 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	h.svc.RunAll(ctx)

	old, err := h.client.Client.Session.Get(ctx, "sess-old")
	require.NoError(t, err)
	assert.Nil(t, old.ExpiresAt)
}
