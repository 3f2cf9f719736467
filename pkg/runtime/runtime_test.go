package runtime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/confirmation"
	"github.com/valet-assistant/valet/ent/policydecision"
	"github.com/valet-assistant/valet/ent/session"
	"github.com/valet-assistant/valet/ent/toolcall"
	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/config"
	"github.com/valet-assistant/valet/pkg/database"
	"github.com/valet-assistant/valet/pkg/models"
	"github.com/valet-assistant/valet/pkg/services"
	"github.com/valet-assistant/valet/pkg/tools"
	testdb "github.com/valet-assistant/valet/test/database"
)

// harness wires a Runtime against an isolated database with a registry
// of synthetic tools. handlerCalls counts invocations per tool so tests
// can assert a handler ran exactly once (or never).
type harness struct {
	client        *database.Client
	rt            *Runtime
	confirmations *services.ConfirmationService
	handlerCalls  map[string]int
	lastRawArgs   map[string]any
}

func newHarness(t *testing.T, mode config.PolicyMode) *harness {
	t.Helper()
	client := testdb.NewTestClient(t)

	h := &harness{
		client:       client,
		handlerCalls: map[string]int{},
	}

	reg := tools.NewRegistry()
	register := func(spec models.ToolSpec, fn func(ctx context.Context, args map[string]any) (map[string]any, error)) {
		handler := tools.HandlerFunc(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			h.handlerCalls[spec.Name]++
			h.lastRawArgs = args
			return fn(ctx, args)
		})
		require.NoError(t, reg.Register(spec, handler))
	}

	register(models.ToolSpec{
		Name:          "probe_status",
		Description:   "Reports service status.",
		Category:      models.CategorySystem,
		Action:        models.ActionRead,
		Sensitivity:   models.SensitivityLow,
		Scope:         models.ScopeSingle,
		RequiredScope: "core",
	}, func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return map[string]any{"message": "all systems nominal"}, nil
	})

	register(models.ToolSpec{
		Name:                  "send_update",
		Description:           "Sends a status update to an external recipient.",
		Category:              models.CategoryEmail,
		Action:                models.ActionWrite,
		Sensitivity:           models.SensitivityMedium,
		Scope:                 models.ScopeSingle,
		SideEffects:           true,
		ExternalCommunication: true,
		RequiredScope:         "core",
		TargetEntity:          "message",
	}, func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return map[string]any{"message": "update delivered"}, nil
	})

	register(models.ToolSpec{
		Name:          "purge_records",
		Description:   "Deletes stale records.",
		Category:      models.CategoryFiles,
		Action:        models.ActionDelete,
		Sensitivity:   models.SensitivityHigh,
		Scope:         models.ScopeSingle,
		SideEffects:   true,
		Destructive:   true,
		RequiredScope: "core",
		TargetEntity:  "record",
	}, func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return map[string]any{"message": "records purged"}, nil
	})

	register(models.ToolSpec{
		Name:          "flaky_probe",
		Description:   "Talks to an unreliable upstream.",
		Category:      models.CategoryWeb,
		Action:        models.ActionRead,
		Sensitivity:   models.SensitivityLow,
		Scope:         models.ScopeSingle,
		RequiredScope: "core",
	}, func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return nil, errors.New("upstream unreachable")
	})

	register(models.ToolSpec{
		Name:          "slow_probe",
		Description:   "Blocks until the deadline fires.",
		Category:      models.CategoryWeb,
		Action:        models.ActionRead,
		Sensitivity:   models.SensitivityLow,
		Scope:         models.ScopeSingle,
		RequiredScope: "core",
	}, func(ctx context.Context, args map[string]any) (map[string]any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	register(models.ToolSpec{
		Name:          "restricted_probe",
		Description:   "Requires an admin scope.",
		Category:      models.CategorySystem,
		Action:        models.ActionRead,
		Sensitivity:   models.SensitivityLow,
		Scope:         models.ScopeSingle,
		RequiredScope: "tool.admin.write",
	}, func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return map[string]any{"message": "ok"}, nil
	})

	register(models.ToolSpec{
		Name:          "strict_probe",
		Description:   "Validates its arguments strictly.",
		Category:      models.CategorySystem,
		Action:        models.ActionRead,
		Sensitivity:   models.SensitivityLow,
		Scope:         models.ScopeSingle,
		RequiredScope: "core",
		Params: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"target": map[string]any{"type": "string"},
			},
			"required": []any{"target"},
		},
	}, func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return map[string]any{"message": "ok"}, nil
	})

	register(models.ToolSpec{
		Name:          "secret_echo",
		Description:   "Returns credentials that must never leave unredacted.",
		Category:      models.CategorySystem,
		Action:        models.ActionRead,
		Sensitivity:   models.SensitivityLow,
		Scope:         models.ScopeSingle,
		RequiredScope: "core",
	}, func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return map[string]any{"api_key": "sk-test-1234567890abcdef", "note": "rotated"}, nil
	})

	confirmations := services.NewConfirmationService(client.Client, time.Hour)
	h.confirmations = confirmations
	h.rt = New(Deps{
		Registry:      reg,
		Users:         services.NewUserService(client.Client),
		Sessions:      services.NewSessionService(client.Client),
		Executions:    services.NewExecutionService(client.Client),
		Confirmations: confirmations,
		Decisions:     services.NewPolicyDecisionService(client.Client),
		Guards: services.NewGuardService(client.Client, &config.GuardsConfig{
			RateLimitPerMinute:     3,
			MaxConsecutiveFailures: 2,
		}),
		Calls: services.NewToolCallService(client.Client),
	}, mode, 250*time.Millisecond)
	return h
}

func seedIdentity(t *testing.T, client *ent.Client, userID, sessionID string) {
	t.Helper()
	_, err := client.User.Create().
		SetID(userID).
		SetScopes(models.DefaultUserScopes).
		Save(context.Background())
	require.NoError(t, err)
	_, err = client.Session.Create().
		SetID(sessionID).
		SetUserID(userID).
		SetModality(session.ModalityText).
		Save(context.Background())
	require.NoError(t, err)
}

func (h *harness) lastCall(t *testing.T, sessionID, toolName string) *ent.ToolCall {
	t.Helper()
	row, err := h.client.Client.ToolCall.Query().
		Where(toolcall.SessionIDEQ(sessionID), toolcall.ToolNameEQ(toolName)).
		Order(ent.Desc(toolcall.FieldCreatedAt)).
		First(context.Background())
	require.NoError(t, err)
	return row
}

func (h *harness) execByID(t *testing.T, id string) *ent.ToolExecution {
	t.Helper()
	row, err := h.client.Client.ToolExecution.Get(context.Background(), id)
	require.NoError(t, err)
	return row
}

func TestRuntime_Gatekeeping(t *testing.T) {
	h := newHarness(t, config.PolicyModeEnforce)
	seedIdentity(t, h.client.Client, "user-1", "sess-1")
	rc := models.RequestContext{UserID: "user-1", SessionID: "sess-1", TraceID: "trace-1"}
	ctx := context.Background()

	t.Run("unknown tool is denied and audited", func(t *testing.T) {
		res := h.rt.Execute(ctx, rc, Request{Tool: "open_airlock", IdempotencyKey: "k-unknown"})
		assert.Equal(t, models.ResultDenied, res.Status)
		assert.Equal(t, models.ErrCodeUnknownTool, res.ErrorCode)
		assert.Contains(t, res.Error, "open_airlock")

		row := h.lastCall(t, "sess-1", "open_airlock")
		assert.Equal(t, toolcall.StatusError, row.Status)
		assert.Equal(t, models.ErrCodeUnknownTool, *row.ErrorCode)
		assert.False(t, row.Executed)

		count, err := h.client.Client.ToolExecution.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count, "no execution row is reserved for an unknown tool")
	})

	t.Run("missing scope is denied before validation", func(t *testing.T) {
		res := h.rt.Execute(ctx, rc, Request{Tool: "restricted_probe", IdempotencyKey: "k-scope"})
		assert.Equal(t, models.ResultDenied, res.Status)
		assert.Equal(t, models.ErrCodeScopeMissing, res.ErrorCode)
		assert.Contains(t, res.Error, "tool.admin.write")
		assert.Zero(t, h.handlerCalls["restricted_probe"])

		row := h.lastCall(t, "sess-1", "restricted_probe")
		assert.Equal(t, models.ErrCodeScopeMissing, *row.ErrorCode)
		assert.False(t, row.Executed)
	})

	t.Run("session scope override widens access", func(t *testing.T) {
		_, err := h.client.Client.Session.Create().
			SetID("sess-admin").
			SetUserID("user-1").
			SetModality(session.ModalityText).
			SetScopesOverride([]string{"core", "tool.admin.write"}).
			Save(ctx)
		require.NoError(t, err)

		res := h.rt.Execute(ctx, models.RequestContext{UserID: "user-1", SessionID: "sess-admin"},
			Request{Tool: "restricted_probe", IdempotencyKey: "k-scope-ok"})
		assert.Equal(t, models.ResultSuccess, res.Status)
	})

	t.Run("validation failure leaves no execution row", func(t *testing.T) {
		res := h.rt.Execute(ctx, rc, Request{
			Tool:           "strict_probe",
			Args:           map[string]any{"target": 7},
			IdempotencyKey: "k-invalid",
		})
		assert.Equal(t, models.ResultError, res.Status)
		assert.Equal(t, models.ErrCodeValidation, res.ErrorCode)
		assert.Contains(t, res.Error, "strict_probe")
		assert.Zero(t, h.handlerCalls["strict_probe"])

		count, err := h.client.Client.ToolExecution.Query().
			Where(toolexecution.IdempotencyKeyEQ("k-invalid")).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)

		row := h.lastCall(t, "sess-1", "strict_probe")
		assert.Equal(t, models.ErrCodeValidation, *row.ErrorCode)
	})
}

func TestRuntime_SuccessAndReplay(t *testing.T) {
	h := newHarness(t, config.PolicyModeEnforce)
	seedIdentity(t, h.client.Client, "user-1", "sess-1")
	rc := models.RequestContext{UserID: "user-1", SessionID: "sess-1", TraceID: "trace-1"}
	ctx := context.Background()

	first := h.rt.Execute(ctx, rc, Request{Tool: "probe_status", IdempotencyKey: "turn-1:step:0"})
	require.Equal(t, models.ResultSuccess, first.Status)
	assert.Equal(t, "all systems nominal", first.Data["message"])
	assert.NotEmpty(t, first.ExecutionID)
	assert.NotEmpty(t, first.PolicyDecisionID)
	assert.False(t, first.Cached)
	assert.Equal(t, 1, h.handlerCalls["probe_status"])

	exec := h.execByID(t, first.ExecutionID)
	assert.Equal(t, toolexecution.StatusSucceeded, exec.Status)
	assert.Equal(t, "all systems nominal", exec.Result["message"])
	assert.NotNil(t, exec.StartedAt)
	assert.NotNil(t, exec.FinishedAt)

	decision, err := h.client.Client.PolicyDecision.Get(ctx, first.PolicyDecisionID)
	require.NoError(t, err)
	assert.Equal(t, string(models.DecisionAllow), decision.Decision)
	assert.Equal(t, models.ReasonLowRiskRead, decision.ReasonCode)
	assert.Equal(t, policydecision.ModeEnforce, decision.Mode)
	require.NotNil(t, decision.ToolExecutionID)
	assert.Equal(t, first.ExecutionID, *decision.ToolExecutionID)

	call := h.lastCall(t, "sess-1", "probe_status")
	assert.Equal(t, toolcall.StatusSuccess, call.Status)
	assert.True(t, call.Executed)

	t.Run("same key replays the cached outcome", func(t *testing.T) {
		second := h.rt.Execute(ctx, rc, Request{Tool: "probe_status", IdempotencyKey: "turn-1:step:0"})
		assert.Equal(t, models.ResultSuccess, second.Status)
		assert.True(t, second.Cached)
		assert.Equal(t, first.ExecutionID, second.ExecutionID)
		assert.Equal(t, "all systems nominal", second.Data["message"])
		assert.Equal(t, 1, h.handlerCalls["probe_status"], "the handler must not run again")

		count, err := h.client.Client.ToolExecution.Query().
			Where(toolexecution.IdempotencyKeyEQ("turn-1:step:0")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("in-flight rows reject concurrent retries", func(t *testing.T) {
		for _, status := range []toolexecution.Status{toolexecution.StatusRequested, toolexecution.StatusRunning} {
			key := "k-inflight-" + string(status)
			_, err := h.client.Client.ToolExecution.Create().
				SetID("exec-" + string(status)).
				SetSessionID("sess-1").
				SetUserID("user-1").
				SetToolName("probe_status").
				SetIdempotencyKey(key).
				SetStatus(status).
				Save(ctx)
			require.NoError(t, err)

			res := h.rt.Execute(ctx, rc, Request{Tool: "probe_status", IdempotencyKey: key})
			assert.Equal(t, models.ResultError, res.Status)
			assert.Equal(t, models.ErrCodeInFlight, res.ErrorCode)
		}
	})
}

func TestRuntime_ConfirmationFlow(t *testing.T) {
	h := newHarness(t, config.PolicyModeEnforce)
	seedIdentity(t, h.client.Client, "user-1", "sess-1")
	rc := models.RequestContext{UserID: "user-1", SessionID: "sess-1", TraceID: "trace-1"}
	ctx := context.Background()
	args := map[string]any{"recipient": "ops@example.com", "body": "deploy finished"}

	res := h.rt.Execute(ctx, rc, Request{
		Tool:           "send_update",
		Args:           args,
		IdempotencyKey: "turn-2:step:0",
		IntentSummary:  "notify ops about the deploy",
	})
	require.Equal(t, models.ResultNeedsConfirmation, res.Status)
	assert.Contains(t, res.Prompt, "communicate externally using send_update")
	assert.NotEmpty(t, res.ConfirmationID)
	assert.Zero(t, h.handlerCalls["send_update"])

	exec := h.execByID(t, res.ExecutionID)
	assert.Equal(t, toolexecution.StatusAwaitingConfirmation, exec.Status)

	conf, err := h.client.Client.Confirmation.Get(ctx, res.ConfirmationID)
	require.NoError(t, err)
	assert.Equal(t, confirmation.StatusPending, conf.Status)
	assert.Equal(t, string(models.DecisionAllowWithConfirm), conf.DecisionType)
	assert.GreaterOrEqual(t, conf.RiskScore, 60)

	call := h.lastCall(t, "sess-1", "send_update")
	assert.Equal(t, toolcall.StatusNeedsConfirmation, call.Status)
	assert.False(t, call.Executed)

	t.Run("retry while pending re-prompts with the same confirmation", func(t *testing.T) {
		again := h.rt.Execute(ctx, rc, Request{Tool: "send_update", Args: args, IdempotencyKey: "turn-2:step:0"})
		assert.Equal(t, models.ResultNeedsConfirmation, again.Status)
		assert.Equal(t, res.ConfirmationID, again.ConfirmationID)
		assert.Equal(t, res.ExecutionID, again.ExecutionID)

		count, err := h.client.Client.Confirmation.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("acceptance resumes the execution once", func(t *testing.T) {
		resolution, err := h.confirmations.ResolveConfirmation(ctx, "user-1", "sess-1", res.ConfirmationID, "yes")
		require.NoError(t, err)
		require.Equal(t, services.ResolutionAccepted, resolution.Outcome)

		resumed := h.rt.Execute(ctx, rc, Request{Tool: "send_update", Args: args, IdempotencyKey: "turn-2:step:0"})
		assert.Equal(t, models.ResultSuccess, resumed.Status)
		assert.Equal(t, "update delivered", resumed.Data["message"])
		assert.Equal(t, 1, h.handlerCalls["send_update"])

		exec := h.execByID(t, res.ExecutionID)
		assert.Equal(t, toolexecution.StatusSucceeded, exec.Status)

		conf, err := h.client.Client.Confirmation.Get(ctx, res.ConfirmationID)
		require.NoError(t, err)
		assert.Equal(t, confirmation.StatusConsumed, conf.Status)

		// The consumed approval authorizes the run; no second policy pass.
		decisions, err := h.client.Client.PolicyDecision.Query().
			Where(policydecision.ToolNameEQ("send_update")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, decisions)
	})

	t.Run("replay after completion hits the cache", func(t *testing.T) {
		cached := h.rt.Execute(ctx, rc, Request{Tool: "send_update", Args: args, IdempotencyKey: "turn-2:step:0"})
		assert.Equal(t, models.ResultSuccess, cached.Status)
		assert.True(t, cached.Cached)
		assert.Equal(t, 1, h.handlerCalls["send_update"])
	})
}

func TestRuntime_EscalationRequiresPhrase(t *testing.T) {
	h := newHarness(t, config.PolicyModeEnforce)
	seedIdentity(t, h.client.Client, "user-1", "sess-1")
	rc := models.RequestContext{UserID: "user-1", SessionID: "sess-1"}
	ctx := context.Background()
	args := map[string]any{"older_than_days": "90"}

	res := h.rt.Execute(ctx, rc, Request{Tool: "purge_records", Args: args, IdempotencyKey: "turn-3:step:0"})
	require.Equal(t, models.ResultNeedsConfirmation, res.Status)
	assert.Contains(t, res.Prompt, "destructive and irreversible")

	conf, err := h.client.Client.Confirmation.Get(ctx, res.ConfirmationID)
	require.NoError(t, err)
	require.NotNil(t, conf.RequiredPhrase)
	assert.Equal(t, "CONFIRM DELETE RECORD", *conf.RequiredPhrase)
	assert.GreaterOrEqual(t, conf.RiskScore, 85)

	t.Run("plain assent is not enough", func(t *testing.T) {
		resolution, err := h.confirmations.ResolveConfirmation(ctx, "user-1", "sess-1", res.ConfirmationID, "yes purge them")
		require.NoError(t, err)
		assert.Equal(t, services.ResolutionStillPending, resolution.Outcome)
		assert.Equal(t, "Please say exactly: 'CONFIRM DELETE RECORD' to confirm.", resolution.Message)

		exec := h.execByID(t, res.ExecutionID)
		assert.Equal(t, toolexecution.StatusAwaitingConfirmation, exec.Status)
	})

	t.Run("the phrase anywhere in the utterance accepts", func(t *testing.T) {
		resolution, err := h.confirmations.ResolveConfirmation(ctx, "user-1", "sess-1", res.ConfirmationID, "ok confirm delete record please")
		require.NoError(t, err)
		require.Equal(t, services.ResolutionAccepted, resolution.Outcome)

		resumed := h.rt.Execute(ctx, rc, Request{Tool: "purge_records", Args: args, IdempotencyKey: "turn-3:step:0"})
		assert.Equal(t, models.ResultSuccess, resumed.Status)
		assert.Equal(t, 1, h.handlerCalls["purge_records"])
	})
}

func TestRuntime_AuditMode(t *testing.T) {
	h := newHarness(t, config.PolicyModeAudit)
	seedIdentity(t, h.client.Client, "user-1", "sess-1")
	rc := models.RequestContext{UserID: "user-1", SessionID: "sess-1"}
	ctx := context.Background()

	res := h.rt.Execute(ctx, rc, Request{
		Tool:           "send_update",
		Args:           map[string]any{"recipient": "ops@example.com", "body": "hello"},
		IdempotencyKey: "turn-4:step:0",
	})
	assert.Equal(t, models.ResultSuccess, res.Status, "audit mode records the decision but does not gate")
	assert.Equal(t, 1, h.handlerCalls["send_update"])

	decision, err := h.client.Client.PolicyDecision.Get(ctx, res.PolicyDecisionID)
	require.NoError(t, err)
	assert.Equal(t, string(models.DecisionAllowWithConfirm), decision.Decision)
	assert.Equal(t, policydecision.ModeAudit, decision.Mode)

	count, err := h.client.Client.Confirmation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "no confirmation is created in audit mode")
}

func TestRuntime_Guards(t *testing.T) {
	h := newHarness(t, config.PolicyModeEnforce)
	seedIdentity(t, h.client.Client, "user-1", "sess-1")
	rc := models.RequestContext{UserID: "user-1", SessionID: "sess-1"}
	ctx := context.Background()

	t.Run("rate limit trips after the configured count", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			res := h.rt.Execute(ctx, rc, Request{Tool: "probe_status", IdempotencyKey: "rate-" + string(rune('a'+i))})
			require.Equal(t, models.ResultSuccess, res.Status)
		}

		res := h.rt.Execute(ctx, rc, Request{Tool: "probe_status", IdempotencyKey: "rate-overflow"})
		assert.Equal(t, models.ResultDenied, res.Status)
		assert.Equal(t, models.ErrCodeRateLimited, res.ErrorCode)
		assert.Equal(t, 3, h.handlerCalls["probe_status"])

		exec := h.execByID(t, res.ExecutionID)
		assert.Equal(t, toolexecution.StatusPolicyDenied, exec.Status)
		require.NotNil(t, exec.ErrorCode)
		assert.Equal(t, models.ErrCodeRateLimited, *exec.ErrorCode)

		// The rejection row never counts toward future windows.
		call := h.lastCall(t, "sess-1", "probe_status")
		assert.Equal(t, toolcall.StatusError, call.Status)
		assert.False(t, call.Executed)
	})

	t.Run("loop breaker trips after consecutive failures", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			res := h.rt.Execute(ctx, rc, Request{Tool: "flaky_probe", IdempotencyKey: "loop-" + string(rune('a'+i))})
			require.Equal(t, models.ResultError, res.Status)
			require.Equal(t, models.ErrCodeHandlerError, res.ErrorCode)
		}

		res := h.rt.Execute(ctx, rc, Request{Tool: "flaky_probe", IdempotencyKey: "loop-overflow"})
		assert.Equal(t, models.ResultDenied, res.Status)
		assert.Equal(t, models.ErrCodeLoopBroken, res.ErrorCode)
		assert.Equal(t, 2, h.handlerCalls["flaky_probe"])
	})
}

func TestRuntime_HandlerFailures(t *testing.T) {
	h := newHarness(t, config.PolicyModeEnforce)
	seedIdentity(t, h.client.Client, "user-1", "sess-1")
	rc := models.RequestContext{UserID: "user-1", SessionID: "sess-1"}
	ctx := context.Background()

	t.Run("handler error lands in FAILED", func(t *testing.T) {
		res := h.rt.Execute(ctx, rc, Request{Tool: "flaky_probe", IdempotencyKey: "k-flaky"})
		assert.Equal(t, models.ResultError, res.Status)
		assert.Equal(t, models.ErrCodeHandlerError, res.ErrorCode)
		assert.Equal(t, "upstream unreachable", res.Error)

		exec := h.execByID(t, res.ExecutionID)
		assert.Equal(t, toolexecution.StatusFailed, exec.Status)
		require.NotNil(t, exec.Error)
		assert.Equal(t, "upstream unreachable", *exec.Error)
		assert.NotNil(t, exec.FinishedAt)

		call := h.lastCall(t, "sess-1", "flaky_probe")
		assert.True(t, call.Executed, "the handler ran, so the attempt counts")
	})

	t.Run("deadline maps to DEADLINE_EXCEEDED", func(t *testing.T) {
		res := h.rt.Execute(ctx, rc, Request{Tool: "slow_probe", IdempotencyKey: "k-slow"})
		assert.Equal(t, models.ResultError, res.Status)
		assert.Equal(t, models.ErrCodeDeadlineExceeded, res.ErrorCode)

		exec := h.execByID(t, res.ExecutionID)
		assert.Equal(t, toolexecution.StatusFailed, exec.Status)
		require.NotNil(t, exec.ErrorCode)
		assert.Equal(t, models.ErrCodeDeadlineExceeded, *exec.ErrorCode)
	})
}

func TestRuntime_Redaction(t *testing.T) {
	h := newHarness(t, config.PolicyModeEnforce)
	seedIdentity(t, h.client.Client, "user-1", "sess-1")
	rc := models.RequestContext{UserID: "user-1", SessionID: "sess-1"}
	ctx := context.Background()

	res := h.rt.Execute(ctx, rc, Request{
		Tool:           "secret_echo",
		Args:           map[string]any{"password": "hunter2", "note": "weekly rotation"},
		IdempotencyKey: "turn-5:step:0",
	})
	require.Equal(t, models.ResultSuccess, res.Status)

	// The handler sees raw arguments; everything persisted or returned is
	// redacted.
	assert.Equal(t, "hunter2", h.lastRawArgs["password"])
	assert.Equal(t, "[REDACTED]", res.Data["api_key"])
	assert.Equal(t, "rotated", res.Data["note"])
	assert.ElementsMatch(t, []string{"password", "api_key"}, res.RedactionsApplied)

	exec := h.execByID(t, res.ExecutionID)
	assert.Equal(t, "[REDACTED]", exec.Input["password"])
	assert.Equal(t, "weekly rotation", exec.Input["note"])
	assert.Equal(t, "[REDACTED]", exec.Result["api_key"])

	call := h.lastCall(t, "sess-1", "secret_echo")
	assert.Equal(t, "[REDACTED]", call.Args["password"])
	assert.Equal(t, "[REDACTED]", call.Result["api_key"])
}
