package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/confirmation"
	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/models"
)

// createPendingConfirmation wires an AWAITING_CONFIRMATION execution and a
// PENDING confirmation gating it applied through the service.
func createPendingConfirmation(t *testing.T, client *ent.Client, service *ConfirmationService, sessionID, userID, toolName string, args map[string]any, phrase string) (*ent.Confirmation, *ent.ToolExecution) {
	t.Helper()
	exec := createTestExecution(t, client, sessionID, userID, toolName, toolexecution.StatusAwaitingConfirmation)
	conf, err := service.CreateConfirmation(context.Background(), models.CreateConfirmationRequest{
		ToolExecutionID: exec.ID,
		SessionID:       sessionID,
		UserID:          userID,
		ToolName:        toolName,
		Args:            args,
		DecisionType:    "ESCALATE",
		Prompt:          "Proceed?",
		RequiredPhrase:  phrase,
		RiskScore:       85,
		ReasonCode:      "DESTRUCTIVE_ACTION",
	})
	require.NoError(t, err)
	return conf, exec
}

func TestConfirmationService_CreateConfirmation(t *testing.T) {
	client := newTestDB(t)
	service := NewConfirmationService(client.Client, 5*time.Minute)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")

	t.Run("creates a pending confirmation with the configured ttl", func(t *testing.T) {
		conf, _ := createPendingConfirmation(t, client.Client, service, "sess-1", "user-1",
			"delete_file", map[string]any{"path": "old.txt"}, "CONFIRM DELETE FILE")

		assert.Equal(t, confirmation.StatusPending, conf.Status)
		require.NotNil(t, conf.RequiredPhrase)
		assert.Equal(t, "CONFIRM DELETE FILE", *conf.RequiredPhrase)
		assert.WithinDuration(t, time.Now().Add(5*time.Minute), conf.ExpiresAt, 10*time.Second)
	})

	t.Run("new confirmation cancels the prior pending one", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-2")

		first, firstExec := createPendingConfirmation(t, client.Client, service, "sess-2", "user-1",
			"delete_file", map[string]any{"path": "a.txt"}, "")
		second, _ := createPendingConfirmation(t, client.Client, service, "sess-2", "user-1",
			"send_email", map[string]any{"to": "bob@example.com"}, "")

		got, err := client.Confirmation.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, confirmation.StatusCancelled, got.Status)
		assert.NotNil(t, got.ResolvedAt)

		// The superseded execution is cancelled with its gate.
		gotExec, err := client.ToolExecution.Get(ctx, firstExec.ID)
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusCancelled, gotExec.Status)

		pending, err := service.PendingForSession(ctx, "sess-2")
		require.NoError(t, err)
		assert.Equal(t, second.ID, pending.ID)
	})

	t.Run("re-confirming the same execution keeps it awaiting", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-3")

		first, exec := createPendingConfirmation(t, client.Client, service, "sess-3", "user-1",
			"run_automation", map[string]any{"name": "backup"}, "CONFIRM SYSTEM EXECUTE")

		second, err := service.CreateConfirmation(ctx, models.CreateConfirmationRequest{
			ToolExecutionID: exec.ID,
			SessionID:       "sess-3",
			UserID:          "user-1",
			ToolName:        "run_automation",
			Args:            map[string]any{"name": "backup"},
			DecisionType:    "ESCALATE",
			Prompt:          "Proceed?",
			RequiredPhrase:  "CONFIRM SYSTEM EXECUTE",
			RiskScore:       100,
			ReasonCode:      "SYSTEM_EXEC_ESCALATION",
		})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)

		gotExec, err := client.ToolExecution.Get(ctx, exec.ID)
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusAwaitingConfirmation, gotExec.Status)
	})

	t.Run("requires a prompt", func(t *testing.T) {
		_, err := service.CreateConfirmation(ctx, models.CreateConfirmationRequest{
			ToolExecutionID: "exec-x",
			SessionID:       "sess-1",
			UserID:          "user-1",
			ToolName:        "delete_file",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestConfirmationService_ResolveConfirmation(t *testing.T) {
	client := newTestDB(t)
	service := NewConfirmationService(client.Client, 5*time.Minute)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestUser(t, client.Client, "user-2")

	t.Run("no phrase accepts any utterance", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-a")
		conf, exec := createPendingConfirmation(t, client.Client, service, "sess-a", "user-1",
			"send_email", map[string]any{"to": "bob@example.com"}, "")

		res, err := service.ResolveConfirmation(ctx, "user-1", "sess-a", conf.ID, "sure, go ahead")
		require.NoError(t, err)
		assert.Equal(t, ResolutionAccepted, res.Outcome)
		assert.Equal(t, confirmation.StatusAccepted, res.Confirmation.Status)
		assert.NotNil(t, res.Confirmation.ResolvedAt)

		gotExec, err := client.ToolExecution.Get(ctx, exec.ID)
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusConfirmed, gotExec.Status)
	})

	t.Run("phrase mismatch stays pending with a re-prompt", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-b")
		conf, _ := createPendingConfirmation(t, client.Client, service, "sess-b", "user-1",
			"delete_file", map[string]any{"path": "x.txt"}, "CONFIRM DELETE FILE")

		res, err := service.ResolveConfirmation(ctx, "user-1", "sess-b", conf.ID, "yes please")
		require.NoError(t, err)
		assert.Equal(t, ResolutionStillPending, res.Outcome)
		assert.Equal(t, "Please say exactly: 'CONFIRM DELETE FILE' to confirm.", res.Message)

		got, err := client.Confirmation.Get(ctx, conf.ID)
		require.NoError(t, err)
		assert.Equal(t, confirmation.StatusPending, got.Status)
	})

	t.Run("phrase match is case-insensitive and substring", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-c")
		conf, _ := createPendingConfirmation(t, client.Client, service, "sess-c", "user-1",
			"delete_file", map[string]any{"path": "x.txt"}, "CONFIRM DELETE FILE")

		res, err := service.ResolveConfirmation(ctx, "user-1", "sess-c", conf.ID,
			"ok then, confirm delete file now")
		require.NoError(t, err)
		assert.Equal(t, ResolutionAccepted, res.Outcome)
	})

	t.Run("already resolved reports current state", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-d")
		conf, _ := createPendingConfirmation(t, client.Client, service, "sess-d", "user-1",
			"send_email", nil, "")

		_, err := service.ResolveConfirmation(ctx, "user-1", "sess-d", conf.ID, "yes")
		require.NoError(t, err)

		res, err := service.ResolveConfirmation(ctx, "user-1", "sess-d", conf.ID, "yes")
		require.NoError(t, err)
		assert.Equal(t, ResolutionFailed, res.Outcome)
		assert.Equal(t, "already_accepted", res.Message)
	})

	t.Run("expired confirmation is transitioned on the attempt", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-e")
		conf, exec := createPendingConfirmation(t, client.Client, service, "sess-e", "user-1",
			"delete_file", nil, "")

		past := time.Now().Add(-time.Minute)
		require.NoError(t, client.Confirmation.UpdateOneID(conf.ID).SetExpiresAt(past).Exec(ctx))

		res, err := service.ResolveConfirmation(ctx, "user-1", "sess-e", conf.ID, "yes")
		require.NoError(t, err)
		assert.Equal(t, ResolutionFailed, res.Outcome)
		assert.Equal(t, "Confirmation expired", res.Message)
		assert.Equal(t, confirmation.StatusExpired, res.Confirmation.Status)

		gotExec, err := client.ToolExecution.Get(ctx, exec.ID)
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusExpired, gotExec.Status)
	})

	t.Run("foreign user reads as not found", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-f")
		conf, _ := createPendingConfirmation(t, client.Client, service, "sess-f", "user-1",
			"delete_file", nil, "")

		_, err := service.ResolveConfirmation(ctx, "user-2", "sess-f", conf.ID, "yes")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestConfirmationService_ConsumeAccepted(t *testing.T) {
	client := newTestDB(t)
	service := NewConfirmationService(client.Client, 5*time.Minute)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")

	args := map[string]any{"path": "report.txt"}

	accept := func(t *testing.T, sessionID string) *ent.Confirmation {
		conf, _ := createPendingConfirmation(t, client.Client, service, sessionID, "user-1",
			"delete_file", args, "")
		res, err := service.ResolveConfirmation(ctx, "user-1", sessionID, conf.ID, "yes")
		require.NoError(t, err)
		require.Equal(t, ResolutionAccepted, res.Outcome)
		return res.Confirmation
	}

	t.Run("consumes once and only once", func(t *testing.T) {
		accepted := accept(t, "sess-1")

		consumed, err := service.ConsumeAccepted(ctx, "user-1", "sess-1", "delete_file", args)
		require.NoError(t, err)
		assert.Equal(t, accepted.ID, consumed.ID)
		assert.Equal(t, confirmation.StatusConsumed, consumed.Status)

		_, err = service.ConsumeAccepted(ctx, "user-1", "sess-1", "delete_file", args)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("argument mismatch does not consume", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-2")
		accept(t, "sess-2")

		_, err := service.ConsumeAccepted(ctx, "user-1", "sess-2", "delete_file",
			map[string]any{"path": "other.txt"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("expired approval does not consume", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-3")
		accepted := accept(t, "sess-3")

		past := time.Now().Add(-time.Minute)
		require.NoError(t, client.Confirmation.UpdateOneID(accepted.ID).SetExpiresAt(past).Exec(ctx))

		_, err := service.ConsumeAccepted(ctx, "user-1", "sess-3", "delete_file", args)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("nil and empty args compare equal", func(t *testing.T) {
		createTestSession(t, client.Client, "user-1", "sess-4")
		conf, _ := createPendingConfirmation(t, client.Client, service, "sess-4", "user-1",
			"get_system_info", nil, "")
		_, err := service.ResolveConfirmation(ctx, "user-1", "sess-4", conf.ID, "yes")
		require.NoError(t, err)

		consumed, err := service.ConsumeAccepted(ctx, "user-1", "sess-4", "get_system_info", map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, conf.ID, consumed.ID)
	})
}

func TestConfirmationService_CancelConfirmation(t *testing.T) {
	client := newTestDB(t)
	service := NewConfirmationService(client.Client, 5*time.Minute)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")

	conf, exec := createPendingConfirmation(t, client.Client, service, "sess-1", "user-1",
		"delete_file", nil, "")

	cancelled, err := service.CancelConfirmation(ctx, "user-1", "sess-1", conf.ID)
	require.NoError(t, err)
	assert.Equal(t, confirmation.StatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.ResolvedAt)

	gotExec, err := client.ToolExecution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, toolexecution.StatusCancelled, gotExec.Status)

	t.Run("second cancel loses the race", func(t *testing.T) {
		_, err := service.CancelConfirmation(ctx, "user-1", "sess-1", conf.ID)
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("missing confirmation is not found", func(t *testing.T) {
		_, err := service.CancelConfirmation(ctx, "user-1", "sess-1", "no-such-conf")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestConfirmationService_ExpirePending(t *testing.T) {
	client := newTestDB(t)
	service := NewConfirmationService(client.Client, 5*time.Minute)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")
	createTestSession(t, client.Client, "user-1", "sess-2")

	lapsed, lapsedExec := createPendingConfirmation(t, client.Client, service, "sess-1", "user-1",
		"delete_file", nil, "")
	require.NoError(t, client.Confirmation.UpdateOneID(lapsed.ID).
		SetExpiresAt(time.Now().Add(-time.Minute)).Exec(ctx))

	live, _ := createPendingConfirmation(t, client.Client, service, "sess-2", "user-1",
		"send_email", nil, "")

	count, err := service.ExpirePending(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := client.Confirmation.Get(ctx, lapsed.ID)
	require.NoError(t, err)
	assert.Equal(t, confirmation.StatusExpired, got.Status)

	gotExec, err := client.ToolExecution.Get(ctx, lapsedExec.ID)
	require.NoError(t, err)
	assert.Equal(t, toolexecution.StatusExpired, gotExec.Status)

	got, err = client.Confirmation.Get(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, confirmation.StatusPending, got.Status)

	t.Run("empty sweep", func(t *testing.T) {
		count, err := service.ExpirePending(ctx, time.Now())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
