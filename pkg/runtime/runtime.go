// Package runtime is the single mandatory path for tool execution:
// registry lookup, scope check, argument validation, idempotency
// reservation, confirmation consumption, policy, guards, the handler
// itself, redaction and persistence. Nothing else in the codebase
// invokes a tool handler.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/toolexecution"
	"github.com/valet-assistant/valet/pkg/config"
	"github.com/valet-assistant/valet/pkg/models"
	"github.com/valet-assistant/valet/pkg/policy"
	"github.com/valet-assistant/valet/pkg/redact"
	"github.com/valet-assistant/valet/pkg/services"
	"github.com/valet-assistant/valet/pkg/tools"
)

// defaultToolTimeout bounds a single handler invocation.
const defaultToolTimeout = 30 * time.Second

// ToolCall audit statuses.
const (
	callSuccess           = "success"
	callError             = "error"
	callNeedsConfirmation = "needs_confirmation"
)

// Deps are the collaborators the runtime drives. All of them are
// required.
type Deps struct {
	Registry      *tools.Registry
	Users         *services.UserService
	Sessions      *services.SessionService
	Executions    *services.ExecutionService
	Confirmations *services.ConfirmationService
	Decisions     *services.PolicyDecisionService
	Guards        *services.GuardService
	Calls         *services.ToolCallService
}

// Runtime executes tools on behalf of users.
type Runtime struct {
	deps        Deps
	mode        config.PolicyMode
	toolTimeout time.Duration
}

// New creates a Runtime. mode selects between enforcing policy
// decisions and merely recording them; toolTimeout bounds each handler
// invocation (0 means the 30s default).
func New(deps Deps, mode config.PolicyMode, toolTimeout time.Duration) *Runtime {
	if !mode.IsValid() {
		mode = config.PolicyModeEnforce
	}
	if toolTimeout <= 0 {
		toolTimeout = defaultToolTimeout
	}
	return &Runtime{deps: deps, mode: mode, toolTimeout: toolTimeout}
}

// Request is one tool invocation. IdempotencyKey scopes retries: two
// requests with the same (user, key) share one execution row and at
// most one handler run. IntentSummary is recorded on the policy
// decision for audit context.
type Request struct {
	Tool           string
	Args           map[string]any
	IdempotencyKey string
	IntentSummary  string
}

// Execute runs one tool invocation through the full path. The result is
// always non-nil; failures are encoded in Status and ErrorCode, never
// as a Go error.
func (r *Runtime) Execute(ctx context.Context, rc models.RequestContext, req Request) *models.ToolResult {
	started := time.Now()
	logger := slog.With(
		"tool", req.Tool,
		"session_id", rc.SessionID,
		"user_id", rc.UserID,
		"trace_id", rc.TraceID,
	)

	redactedArgs, argRedactions := redact.Map(req.Args)

	// Registry lookup.
	tool, ok := r.deps.Registry.Get(req.Tool)
	if !ok {
		r.audit(ctx, rc, auditRow{
			Tool: req.Tool, Args: redactedArgs,
			Status: callError, ErrorCode: models.ErrCodeUnknownTool,
			Latency: sinceMs(started),
		})
		return &models.ToolResult{
			Status:    models.ResultDenied,
			Error:     fmt.Sprintf("unknown tool %q", req.Tool),
			ErrorCode: models.ErrCodeUnknownTool,
			LatencyMs: sinceMs(started),
		}
	}

	// Scope check against the session's effective scopes.
	scopes, err := r.effectiveScopes(ctx, rc)
	if err != nil {
		logger.Error("Failed to resolve effective scopes", "error", err)
		return r.internalFailure(ctx, rc, req.Tool, "", redactedArgs, started, "could not resolve scopes")
	}
	if !models.HasScope(scopes, tool.Spec.RequiredScope) {
		r.audit(ctx, rc, auditRow{
			Tool: req.Tool, Args: redactedArgs,
			Status: callError, ErrorCode: models.ErrCodeScopeMissing,
			Latency: sinceMs(started),
		})
		return &models.ToolResult{
			Status:    models.ResultDenied,
			Error:     fmt.Sprintf("missing required scope %q", tool.Spec.RequiredScope),
			ErrorCode: models.ErrCodeScopeMissing,
			LatencyMs: sinceMs(started),
		}
	}

	// Argument validation. No execution row exists yet, so validation
	// failures are audited through the call log alone.
	if err := tool.ValidateArgs(req.Args); err != nil {
		r.audit(ctx, rc, auditRow{
			Tool: req.Tool, Args: redactedArgs,
			Status: callError, ErrorCode: models.ErrCodeValidation,
			Latency: sinceMs(started),
		})
		return &models.ToolResult{
			Status:    models.ResultError,
			Error:     err.Error(),
			ErrorCode: models.ErrCodeValidation,
			LatencyMs: sinceMs(started),
		}
	}

	// Idempotency reservation. A retry lands on the prior attempt's row
	// and follows its state instead of running again.
	exec, existing, err := r.deps.Executions.ReserveExecution(ctx, models.ReserveExecutionRequest{
		SessionID:      rc.SessionID,
		UserID:         rc.UserID,
		ToolName:       req.Tool,
		Input:          redactedArgs,
		IdempotencyKey: req.IdempotencyKey,
		TraceID:        rc.TraceID,
	})
	if err != nil {
		logger.Error("Failed to reserve execution", "error", err)
		return r.internalFailure(ctx, rc, req.Tool, "", redactedArgs, started, "could not reserve execution")
	}
	if existing {
		if services.IsTerminalStatus(exec.Status) {
			return cachedResult(exec, sinceMs(started))
		}
		if exec.Status == toolexecution.StatusRequested || exec.Status == toolexecution.StatusRunning {
			return &models.ToolResult{
				Status:      models.ResultError,
				Error:       "an identical request is already in flight",
				ErrorCode:   models.ErrCodeInFlight,
				ExecutionID: exec.ID,
				LatencyMs:   sinceMs(started),
			}
		}
		// AWAITING_CONFIRMATION or CONFIRMED: fall through to the
		// confirmation check below.
	}

	// A previously accepted confirmation for this exact (tool, args)
	// grants a one-shot run and is consumed here.
	consumed, err := r.deps.Confirmations.ConsumeAccepted(ctx, rc.UserID, rc.SessionID, req.Tool, redactedArgs)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		logger.Error("Failed to check reserved confirmations", "error", err)
		return r.internalFailure(ctx, rc, req.Tool, exec.ID, redactedArgs, started, "could not check confirmations")
	}

	decisionID := ""
	if consumed == nil {
		switch exec.Status {
		case toolexecution.StatusAwaitingConfirmation:
			// The gate is still pending; hand the prompt back instead of
			// re-running policy.
			pending, perr := r.deps.Confirmations.PendingForSession(ctx, rc.SessionID)
			if perr == nil && pending.ToolExecutionID == exec.ID {
				return &models.ToolResult{
					Status:         models.ResultNeedsConfirmation,
					ExecutionID:    exec.ID,
					ConfirmationID: pending.ID,
					Prompt:         pending.Prompt,
					LatencyMs:      sinceMs(started),
				}
			}
			return &models.ToolResult{
				Status:      models.ResultError,
				Error:       "an identical request is already awaiting confirmation",
				ErrorCode:   models.ErrCodeInFlight,
				ExecutionID: exec.ID,
				LatencyMs:   sinceMs(started),
			}
		case toolexecution.StatusConfirmed:
			// Confirmed, but the acceptance lapsed before the run resumed.
			r.failQuietly(ctx, exec.ID, toolexecution.StatusConfirmed, toolexecution.StatusCancelled,
				"confirmation expired before the action could resume", models.ErrCodeCancelled, logger)
			r.audit(ctx, rc, auditRow{
				Tool: req.Tool, Args: redactedArgs, ExecutionID: exec.ID,
				Status: callError, ErrorCode: models.ErrCodeCancelled,
				Latency: sinceMs(started),
			})
			return &models.ToolResult{
				Status:      models.ResultError,
				Error:       "confirmation expired before the action could resume",
				ErrorCode:   models.ErrCodeCancelled,
				ExecutionID: exec.ID,
				LatencyMs:   sinceMs(started),
			}
		}

		// Policy evaluation on the redacted argument preview. Every
		// evaluation is persisted, whichever way it goes.
		eval := policy.Evaluate(models.PolicyCheck{
			ToolName:      req.Tool,
			Spec:          &tool.Spec,
			IntentSummary: req.IntentSummary,
			ArgsPreview:   redactedArgs,
			Now:           time.Now(),
		})
		decision, err := r.deps.Decisions.RecordDecision(ctx, models.RecordPolicyDecisionRequest{
			SessionID:       rc.SessionID,
			UserID:          rc.UserID,
			ToolName:        req.Tool,
			Decision:        string(eval.Decision),
			RiskScore:       eval.Risk,
			ReasonCode:      eval.ReasonCode,
			IntentSummary:   req.IntentSummary,
			Mode:            string(r.mode),
			ToolExecutionID: exec.ID,
		})
		if err != nil {
			logger.Error("Failed to record policy decision", "error", err)
			return r.internalFailure(ctx, rc, req.Tool, exec.ID, redactedArgs, started, "could not record policy decision")
		}
		decisionID = decision.ID

		if r.mode == config.PolicyModeAudit && eval.Decision != models.DecisionAllow {
			logger.Info("Policy decision observed without enforcement",
				"decision", eval.Decision, "reason", eval.ReasonCode, "risk", eval.Risk)
		} else {
			switch {
			case eval.Decision == models.DecisionDeny:
				r.failQuietly(ctx, exec.ID, toolexecution.StatusRequested, toolexecution.StatusPolicyDenied,
					fmt.Sprintf("denied by policy (%s)", eval.ReasonCode), models.ErrCodePolicyDenied, logger)
				r.audit(ctx, rc, auditRow{
					Tool: req.Tool, Args: redactedArgs, ExecutionID: exec.ID,
					Status: callError, ErrorCode: models.ErrCodePolicyDenied,
					Latency: sinceMs(started),
				})
				return &models.ToolResult{
					Status:           models.ResultDenied,
					Error:            fmt.Sprintf("denied by policy (%s)", eval.ReasonCode),
					ErrorCode:        models.ErrCodePolicyDenied,
					ExecutionID:      exec.ID,
					PolicyDecisionID: decisionID,
					LatencyMs:        sinceMs(started),
				}

			case eval.Decision.Interactive():
				if _, err := r.deps.Executions.Transition(ctx, exec.ID,
					toolexecution.StatusRequested, toolexecution.StatusAwaitingConfirmation,
					services.ExecutionUpdate{}); err != nil {
					logger.Error("Failed to park execution for confirmation", "error", err)
					return r.internalFailure(ctx, rc, req.Tool, exec.ID, redactedArgs, started, "could not park execution")
				}
				conf, err := r.deps.Confirmations.CreateConfirmation(ctx, models.CreateConfirmationRequest{
					ToolExecutionID: exec.ID,
					SessionID:       rc.SessionID,
					UserID:          rc.UserID,
					ToolName:        req.Tool,
					Args:            redactedArgs,
					DecisionType:    string(eval.Decision),
					Prompt:          eval.Prompt,
					RequiredPhrase:  eval.RequiredPhrase,
					RiskScore:       eval.Risk,
					ReasonCode:      eval.ReasonCode,
					TraceID:         rc.TraceID,
				})
				if err != nil {
					logger.Error("Failed to create confirmation", "error", err)
					return r.internalFailure(ctx, rc, req.Tool, exec.ID, redactedArgs, started, "could not create confirmation")
				}
				r.audit(ctx, rc, auditRow{
					Tool: req.Tool, Args: redactedArgs, ExecutionID: exec.ID,
					Status:  callNeedsConfirmation,
					Latency: sinceMs(started),
				})
				return &models.ToolResult{
					Status:           models.ResultNeedsConfirmation,
					ExecutionID:      exec.ID,
					PolicyDecisionID: decisionID,
					ConfirmationID:   conf.ID,
					Prompt:           eval.Prompt,
					LatencyMs:        sinceMs(started),
				}
			}
		}

		// Guards run only on the plain-allow path; a user confirmation
		// already vouches for the consumed path.
		if gerr := r.deps.Guards.CheckRateLimit(ctx, rc.SessionID, req.Tool); gerr != nil {
			if res := r.guardReject(ctx, rc, req.Tool, exec.ID, decisionID, redactedArgs, started, gerr, logger); res != nil {
				return res
			}
		}
		if gerr := r.deps.Guards.CheckLoopBreaker(ctx, rc.SessionID, req.Tool); gerr != nil {
			if res := r.guardReject(ctx, rc, req.Tool, exec.ID, decisionID, redactedArgs, started, gerr, logger); res != nil {
				return res
			}
		}
	}

	// Move the row to RUNNING and invoke the handler outside any
	// transaction.
	from := []toolexecution.Status{toolexecution.StatusRequested}
	if consumed != nil {
		from = append(from, toolexecution.StatusConfirmed, toolexecution.StatusAwaitingConfirmation)
	}
	if _, err := r.deps.Executions.TransitionFromAny(ctx, exec.ID, from, toolexecution.StatusRunning,
		services.ExecutionUpdate{SetStarted: true}); err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			return &models.ToolResult{
				Status:      models.ResultError,
				Error:       "an identical request is already in flight",
				ErrorCode:   models.ErrCodeInFlight,
				ExecutionID: exec.ID,
				LatencyMs:   sinceMs(started),
			}
		}
		logger.Error("Failed to start execution", "error", err)
		return r.internalFailure(ctx, rc, req.Tool, exec.ID, redactedArgs, started, "could not start execution")
	}

	handlerCtx, cancel := context.WithTimeout(ctx, r.toolTimeout)
	handlerCtx = tools.WithInvocation(handlerCtx, tools.Invocation{
		UserID:    rc.UserID,
		SessionID: rc.SessionID,
		TraceID:   rc.TraceID,
	})
	result, handlerErr := tool.Handler.Handle(handlerCtx, req.Args)
	cancel()
	latency := sinceMs(started)

	if handlerErr != nil {
		code := models.ErrCodeHandlerError
		switch {
		case errors.Is(handlerErr, context.DeadlineExceeded):
			code = models.ErrCodeDeadlineExceeded
		case errors.Is(handlerErr, context.Canceled):
			code = models.ErrCodeCancelled
		}
		r.failQuietly(ctx, exec.ID, toolexecution.StatusRunning, toolexecution.StatusFailed,
			handlerErr.Error(), code, logger)
		r.audit(ctx, rc, auditRow{
			Tool: req.Tool, Args: redactedArgs, ExecutionID: exec.ID,
			Status: callError, ErrorCode: code,
			Executed: true, Latency: latency,
		})
		return &models.ToolResult{
			Status:            models.ResultError,
			Error:             handlerErr.Error(),
			ErrorCode:         code,
			ExecutionID:       exec.ID,
			PolicyDecisionID:  decisionID,
			LatencyMs:         latency,
			RedactionsApplied: argRedactions,
		}
	}

	redactedResult, resultRedactions := redact.Map(result)

	if _, err := r.deps.Executions.Transition(ctx, exec.ID,
		toolexecution.StatusRunning, toolexecution.StatusSucceeded,
		services.ExecutionUpdate{Result: redactedResult, SetFinished: true}); err != nil {
		logger.Warn("Failed to persist execution success", "error", err)
	}
	r.audit(ctx, rc, auditRow{
		Tool: req.Tool, Args: redactedArgs, Result: redactedResult, ExecutionID: exec.ID,
		Status: callSuccess, Executed: true, Latency: latency,
	})

	return &models.ToolResult{
		Status:            models.ResultSuccess,
		Data:              redactedResult,
		ExecutionID:       exec.ID,
		PolicyDecisionID:  decisionID,
		LatencyMs:         latency,
		RedactionsApplied: mergeRedactions(argRedactions, resultRedactions),
	}
}

// effectiveScopes resolves the scopes in force for the request: the
// session's override when set, else the user's scopes.
func (r *Runtime) effectiveScopes(ctx context.Context, rc models.RequestContext) ([]string, error) {
	user, err := r.deps.Users.GetUser(ctx, rc.UserID)
	if err != nil {
		return nil, err
	}
	sess, err := r.deps.Sessions.GetSession(ctx, rc.SessionID)
	if err != nil {
		return nil, err
	}
	return models.EffectiveScopes(user.Scopes, sess.ScopesOverride), nil
}

// guardReject maps a guard violation to a denied result. Non-violation
// errors from a guard are availability problems, not rejections, and
// let the call proceed.
func (r *Runtime) guardReject(ctx context.Context, rc models.RequestContext, toolName, execID, decisionID string, args map[string]any, started time.Time, gerr error, logger *slog.Logger) *models.ToolResult {
	var violation *services.GuardViolation
	if !errors.As(gerr, &violation) {
		logger.Warn("Guard check failed; allowing the call", "error", gerr)
		return nil
	}

	r.failQuietly(ctx, execID, toolexecution.StatusRequested, toolexecution.StatusPolicyDenied,
		violation.Message, violation.Code, logger)
	r.audit(ctx, rc, auditRow{
		Tool: toolName, Args: args, ExecutionID: execID,
		Status: callError, ErrorCode: violation.Code,
		Latency: sinceMs(started),
	})
	return &models.ToolResult{
		Status:           models.ResultDenied,
		Error:            violation.Message,
		ErrorCode:        violation.Code,
		ExecutionID:      execID,
		PolicyDecisionID: decisionID,
		LatencyMs:        sinceMs(started),
	}
}

// failQuietly moves an execution to a terminal failure state, logging
// rather than propagating persistence problems: the caller's result
// already carries the outcome.
func (r *Runtime) failQuietly(ctx context.Context, execID string, from, to toolexecution.Status, message, code string, logger *slog.Logger) {
	_, err := r.deps.Executions.Transition(ctx, execID, from, to, services.ExecutionUpdate{
		Error:       message,
		ErrorCode:   code,
		SetFinished: true,
	})
	if err != nil {
		logger.Warn("Failed to persist execution state", "target_status", to, "error", err)
	}
}

// internalFailure reports an infrastructure problem as an error result
// with a sanitized message.
func (r *Runtime) internalFailure(ctx context.Context, rc models.RequestContext, toolName, execID string, args map[string]any, started time.Time, message string) *models.ToolResult {
	r.audit(ctx, rc, auditRow{
		Tool: toolName, Args: args, ExecutionID: execID,
		Status:  callError,
		Latency: sinceMs(started),
	})
	return &models.ToolResult{
		Status:      models.ResultError,
		Error:       "internal error: " + message,
		ExecutionID: execID,
		LatencyMs:   sinceMs(started),
	}
}

// auditRow is one call-log entry.
type auditRow struct {
	Tool        string
	Args        map[string]any
	Result      map[string]any
	ExecutionID string
	Status      string
	ErrorCode   string
	Executed    bool
	Latency     int64
}

// audit writes one call-log row. Audit failures are logged and
// swallowed so they never mask the execution outcome.
func (r *Runtime) audit(ctx context.Context, rc models.RequestContext, row auditRow) {
	_, err := r.deps.Calls.RecordToolCall(ctx, models.RecordToolCallRequest{
		SessionID:   rc.SessionID,
		UserID:      rc.UserID,
		ToolName:    row.Tool,
		Args:        row.Args,
		Result:      row.Result,
		Status:      row.Status,
		ErrorCode:   row.ErrorCode,
		Executed:    row.Executed,
		LatencyMs:   row.Latency,
		ExecutionID: row.ExecutionID,
		TraceID:     rc.TraceID,
	})
	if err != nil {
		slog.Warn("Failed to record tool call",
			"tool", row.Tool, "session_id", rc.SessionID, "error", err)
	}
}

// cachedResult rebuilds a ToolResult from a terminal execution row so
// idempotent retries observe the original outcome.
func cachedResult(exec *ent.ToolExecution, latency int64) *models.ToolResult {
	res := &models.ToolResult{
		ExecutionID: exec.ID,
		LatencyMs:   latency,
		Cached:      true,
	}
	switch exec.Status {
	case toolexecution.StatusSucceeded:
		res.Status = models.ResultSuccess
		res.Data = exec.Result
	case toolexecution.StatusPolicyDenied:
		res.Status = models.ResultDenied
		res.Error = strOrEmpty(exec.Error)
		res.ErrorCode = strOrEmpty(exec.ErrorCode)
	case toolexecution.StatusFailed:
		res.Status = models.ResultError
		res.Error = strOrEmpty(exec.Error)
		res.ErrorCode = strOrEmpty(exec.ErrorCode)
	case toolexecution.StatusCancelled:
		res.Status = models.ResultError
		res.Error = firstNonEmpty(strOrEmpty(exec.Error), "the action was cancelled")
		res.ErrorCode = firstNonEmpty(strOrEmpty(exec.ErrorCode), models.ErrCodeCancelled)
	case toolexecution.StatusExpired:
		res.Status = models.ResultError
		res.Error = firstNonEmpty(strOrEmpty(exec.Error), "the confirmation expired before the action ran")
		res.ErrorCode = firstNonEmpty(strOrEmpty(exec.ErrorCode), models.ErrCodeCancelled)
	}
	return res
}

func mergeRedactions(a, b []string) []string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	seen := make(map[string]struct{}, len(a)+len(b))
	merged := make([]string, 0, len(a)+len(b))
	for _, path := range a {
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		merged = append(merged, path)
	}
	for _, path := range b {
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		merged = append(merged, path)
	}
	return merged
}

func sinceMs(started time.Time) int64 {
	ms := time.Since(started).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
