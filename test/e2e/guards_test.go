package e2e

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/ent/toolcall"
	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/events"
	"github.com/valet-assistant/valet/pkg/models"
)

// Eleven calls into a ten-per-minute limit: ten run, the eleventh is
// rejected, and the rejection's own audit row does not count toward the
// window.
func TestE2E_RateLimitGuard(t *testing.T) {
	app := NewTestApp(t)
	app.Assistant.Handle("system check", models.Intent{
		Name:       "get_system_info",
		Slots:      map[string]any{},
		Confidence: 0.95,
	})

	sessionID := app.CreateSession(t, models.ModalityText)
	sink := app.CollectSessionEvents(t, sessionID)

	limit := app.Cfg.Guards.RateLimitPerMinute
	require.Equal(t, 10, limit)

	for i := 1; i <= limit; i++ {
		reply := app.Say(t, sessionID, fmt.Sprintf("system check number %d", i))
		assert.True(t, strings.HasPrefix(reply.AssistantText, "Done."), "call %d: %q", i, reply.AssistantText)
	}

	denied := app.Say(t, sessionID, "system check one more time")
	assert.Contains(t, denied.AssistantText, "I cannot do that.")
	assert.Contains(t, denied.AssistantText, "limit 10")

	calls := app.QueryToolCalls(t, sessionID, "get_system_info")
	require.Len(t, calls, limit+1)
	executed := 0
	for _, call := range calls {
		if call.Executed {
			executed++
		}
	}
	assert.Equal(t, limit, executed, "the rejection row never counts as an executed call")

	last := calls[len(calls)-1]
	assert.False(t, last.Executed)
	assert.Equal(t, toolcall.StatusError, last.Status)
	require.NotNil(t, last.ErrorCode)
	assert.Equal(t, models.ErrCodeRateLimited, *last.ErrorCode)

	execs := app.QueryExecutions(t, sessionID)
	require.Len(t, execs, limit+1)
	assert.Equal(t, toolexecution.StatusPolicyDenied, execs[len(execs)-1].Status)

	evt := sink.WaitFor(t, events.EventTypePolicyDenied)
	assert.Equal(t, models.ErrCodeRateLimited, evt["error_code"])
	assert.Equal(t, "get_system_info", evt["tool_name"])
}

// Three straight failures of the same tool trip the loop breaker; the
// next attempt is refused without running the handler.
func TestE2E_LoopBreakerGuard(t *testing.T) {
	app := NewTestApp(t)
	app.Assistant.Handle("list", models.Intent{
		Name:       "list_files",
		Slots:      map[string]any{"directory_path": "no-such-dir"},
		Confidence: 0.9,
	})

	sessionID := app.CreateSession(t, models.ModalityText)

	maxFailures := app.Cfg.Guards.MaxConsecutiveFailures
	require.Equal(t, 3, maxFailures)

	for i := 1; i <= maxFailures; i++ {
		reply := app.Say(t, sessionID, fmt.Sprintf("list that directory, attempt %d", i))
		assert.Contains(t, reply.AssistantText, "Something went wrong.", "attempt %d", i)
		assert.Contains(t, reply.AssistantText, "not found")
	}

	broken := app.Say(t, sessionID, "try listing it once more")
	assert.Contains(t, broken.AssistantText, "I cannot do that.")
	assert.Contains(t, broken.AssistantText, "not retrying automatically")

	calls := app.QueryToolCalls(t, sessionID, "list_files")
	require.Len(t, calls, maxFailures+1)
	last := calls[len(calls)-1]
	assert.False(t, last.Executed)
	require.NotNil(t, last.ErrorCode)
	assert.Equal(t, models.ErrCodeLoopBroken, *last.ErrorCode)

	// An executed success resets the consecutive-failure window and the
	// tool runs (and fails on its own terms) again.
	err := app.DB.Client.ToolCall.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetUserID(app.UserID).
		SetToolName("list_files").
		SetStatus(toolcall.StatusSuccess).
		SetExecuted(true).
		Exec(context.Background())
	require.NoError(t, err)

	after := app.Say(t, sessionID, "and once again now")
	assert.Contains(t, after.AssistantText, "Something went wrong.")
}
