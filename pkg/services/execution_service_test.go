package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/models"
)

func TestExecutionService_ReserveExecution(t *testing.T) {
	client := newTestDB(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")

	t.Run("fresh reservation", func(t *testing.T) {
		exec, existing, err := service.ReserveExecution(ctx, models.ReserveExecutionRequest{
			SessionID:      "sess-1",
			UserID:         "user-1",
			ToolName:       "get_weather_info",
			Input:          map[string]any{"location": "Paris"},
			IdempotencyKey: "turn-1:step:0",
		})
		require.NoError(t, err)
		assert.False(t, existing)
		assert.Equal(t, toolexecution.StatusRequested, exec.Status)
		assert.Equal(t, "Paris", exec.Input["location"])
	})

	t.Run("same key returns the prior row", func(t *testing.T) {
		first, _, err := service.ReserveExecution(ctx, models.ReserveExecutionRequest{
			SessionID:      "sess-1",
			UserID:         "user-1",
			ToolName:       "web_search",
			IdempotencyKey: "turn-2:step:0",
		})
		require.NoError(t, err)

		second, existing, err := service.ReserveExecution(ctx, models.ReserveExecutionRequest{
			SessionID:      "sess-1",
			UserID:         "user-1",
			ToolName:       "web_search",
			IdempotencyKey: "turn-2:step:0",
		})
		require.NoError(t, err)
		assert.True(t, existing)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("same key under another user is a fresh slot", func(t *testing.T) {
		createTestUser(t, client.Client, "user-2")
		createTestSession(t, client.Client, "user-2", "sess-2")

		_, existing, err := service.ReserveExecution(ctx, models.ReserveExecutionRequest{
			SessionID:      "sess-2",
			UserID:         "user-2",
			ToolName:       "web_search",
			IdempotencyKey: "turn-2:step:0",
		})
		require.NoError(t, err)
		assert.False(t, existing)
	})

	t.Run("requires a key", func(t *testing.T) {
		_, _, err := service.ReserveExecution(ctx, models.ReserveExecutionRequest{
			SessionID: "sess-1",
			UserID:    "user-1",
			ToolName:  "web_search",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestExecutionService_Transition(t *testing.T) {
	client := newTestDB(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")

	t.Run("requested to running stamps started_at", func(t *testing.T) {
		exec := createTestExecution(t, client.Client, "sess-1", "user-1", "web_search", toolexecution.StatusRequested)

		got, err := service.Transition(ctx, exec.ID,
			toolexecution.StatusRequested, toolexecution.StatusRunning,
			ExecutionUpdate{SetStarted: true})
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusRunning, got.Status)
		assert.NotNil(t, got.StartedAt)
		assert.Nil(t, got.FinishedAt)
	})

	t.Run("running to succeeded stores the result", func(t *testing.T) {
		exec := createTestExecution(t, client.Client, "sess-1", "user-1", "web_search", toolexecution.StatusRunning)

		got, err := service.Transition(ctx, exec.ID,
			toolexecution.StatusRunning, toolexecution.StatusSucceeded,
			ExecutionUpdate{
				Result:      map[string]any{"message": "done"},
				SetFinished: true,
			})
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusSucceeded, got.Status)
		assert.Equal(t, "done", got.Result["message"])
		assert.NotNil(t, got.FinishedAt)
	})

	t.Run("losing the race surfaces concurrent modification", func(t *testing.T) {
		exec := createTestExecution(t, client.Client, "sess-1", "user-1", "web_search", toolexecution.StatusRequested)

		_, err := service.Transition(ctx, exec.ID,
			toolexecution.StatusRequested, toolexecution.StatusRunning, ExecutionUpdate{})
		require.NoError(t, err)

		_, err = service.Transition(ctx, exec.ID,
			toolexecution.StatusRequested, toolexecution.StatusRunning, ExecutionUpdate{})
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("terminal states absorb", func(t *testing.T) {
		exec := createTestExecution(t, client.Client, "sess-1", "user-1", "web_search", toolexecution.StatusSucceeded)

		_, err := service.Transition(ctx, exec.ID,
			toolexecution.StatusRunning, toolexecution.StatusFailed, ExecutionUpdate{})
		assert.ErrorIs(t, err, ErrConcurrentModification)

		got, err := service.GetExecution(ctx, exec.ID)
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusSucceeded, got.Status)
	})

	t.Run("error text is truncated", func(t *testing.T) {
		exec := createTestExecution(t, client.Client, "sess-1", "user-1", "web_search", toolexecution.StatusRunning)

		long := strings.Repeat("x", 1000)
		got, err := service.Transition(ctx, exec.ID,
			toolexecution.StatusRunning, toolexecution.StatusFailed,
			ExecutionUpdate{Error: long, ErrorCode: "TOOL_ERROR", SetFinished: true})
		require.NoError(t, err)
		require.NotNil(t, got.Error)
		assert.Len(t, *got.Error, 256)
		require.NotNil(t, got.ErrorCode)
		assert.Equal(t, "TOOL_ERROR", *got.ErrorCode)
	})

	t.Run("missing execution is not found", func(t *testing.T) {
		_, err := service.Transition(ctx, "no-such-exec",
			toolexecution.StatusRequested, toolexecution.StatusRunning, ExecutionUpdate{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExecutionService_TransitionFromAny(t *testing.T) {
	client := newTestDB(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")

	// A confirmed execution resumes into RUNNING through the same path a
	// fresh REQUESTED one takes.
	for _, status := range []toolexecution.Status{
		toolexecution.StatusRequested,
		toolexecution.StatusConfirmed,
	} {
		exec := createTestExecution(t, client.Client, "sess-1", "user-1", "delete_file", status)

		got, err := service.TransitionFromAny(ctx, exec.ID,
			[]toolexecution.Status{toolexecution.StatusRequested, toolexecution.StatusConfirmed},
			toolexecution.StatusRunning,
			ExecutionUpdate{SetStarted: true})
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusRunning, got.Status)
	}

	exec := createTestExecution(t, client.Client, "sess-1", "user-1", "delete_file", toolexecution.StatusAwaitingConfirmation)
	_, err := service.TransitionFromAny(ctx, exec.ID,
		[]toolexecution.Status{toolexecution.StatusRequested, toolexecution.StatusConfirmed},
		toolexecution.StatusRunning, ExecutionUpdate{})
	assert.ErrorIs(t, err, ErrConcurrentModification)
}

func TestExecutionService_FailStaleRunning(t *testing.T) {
	client := newTestDB(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	createTestUser(t, client.Client, "user-1")
	createTestSession(t, client.Client, "user-1", "sess-1")

	stale := createTestExecution(t, client.Client, "sess-1", "user-1", "web_search", toolexecution.StatusRunning)
	require.NoError(t, client.ToolExecution.UpdateOneID(stale.ID).
		SetStartedAt(time.Now().Add(-10*time.Minute)).Exec(ctx))

	fresh := createTestExecution(t, client.Client, "sess-1", "user-1", "web_search", toolexecution.StatusRunning)
	require.NoError(t, client.ToolExecution.UpdateOneID(fresh.ID).
		SetStartedAt(time.Now()).Exec(ctx))

	count, err := service.FailStaleRunning(ctx, 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := service.GetExecution(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, toolexecution.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorCode)
	assert.Equal(t, "DEADLINE_EXCEEDED", *got.ErrorCode)

	got, err = service.GetExecution(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, toolexecution.StatusRunning, got.Status)
}

func TestIsTerminalStatus(t *testing.T) {
	terminal := []toolexecution.Status{
		toolexecution.StatusSucceeded,
		toolexecution.StatusFailed,
		toolexecution.StatusCancelled,
		toolexecution.StatusExpired,
		toolexecution.StatusPolicyDenied,
	}
	for _, status := range terminal {
		assert.True(t, IsTerminalStatus(status), "%s should be terminal", status)
	}

	live := []toolexecution.Status{
		toolexecution.StatusRequested,
		toolexecution.StatusAwaitingConfirmation,
		toolexecution.StatusConfirmed,
		toolexecution.StatusRunning,
	}
	for _, status := range live {
		assert.False(t, IsTerminalStatus(status), "%s should not be terminal", status)
	}
}
