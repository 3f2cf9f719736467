// Package policy classifies tool invocations before they run. Evaluate
// is pure and rules-based: no I/O, no model calls, clock injected
// through the check. Identical inputs produce identical outputs, so
// decisions can be replayed from their persisted rows.
package policy

import (
	"fmt"
	"strings"
	"time"

	"github.com/valet-assistant/valet/pkg/models"
)

// interactiveTTL bounds how long a proposed action stays confirmable.
const interactiveTTL = time.Hour

const (
	promptDestructive = "This action is destructive and irreversible. Please explicitly confirm."
	promptSystemExec  = "The assistant is requesting system command execution. This is highly sensitive."
	phraseSystemExec  = "CONFIRM SYSTEM EXECUTE"
)

// Evaluate applies the policy rules to one tool invocation. Rules fire
// in a fixed order; a later rule overrides the decision of an earlier
// one but never lowers the risk it raised.
func Evaluate(check models.PolicyCheck) models.Evaluation {
	spec := check.Spec
	if spec == nil {
		return models.Evaluation{
			Decision:   models.DecisionDeny,
			Risk:       100,
			ReasonCode: models.ReasonUnknownTool,
		}
	}

	eval := models.Evaluation{
		Decision:   models.DecisionAllow,
		ReasonCode: models.ReasonStandardAllow,
	}

	batch := spec.Scope == models.ScopeBatch || spec.Scope == models.ScopeAll
	readOnly := spec.Action == models.ActionRead && !spec.SideEffects
	destructive := spec.Destructive || spec.Action == models.ActionDelete
	systemExec := spec.Category == models.CategorySystem && spec.Action == models.ActionExecute

	switch spec.Sensitivity {
	case models.SensitivityLow:
		eval.Risk += 10
	case models.SensitivityMedium:
		eval.Risk += 40
	case models.SensitivityHigh:
		eval.Risk += 70
	}
	if batch {
		eval.Risk += 20
	}

	if readOnly && spec.Sensitivity == models.SensitivityLow {
		if eval.Risk > 10 {
			eval.Risk = 10
		}
		eval.Decision = models.DecisionAllow
		eval.ReasonCode = models.ReasonLowRiskRead
	}

	if spec.ExternalCommunication {
		eval.Decision = models.DecisionAllowWithConfirm
		if eval.Risk < 60 {
			eval.Risk = 60
		}
		eval.ReasonCode = models.ReasonExternalCommConfirm
		eval.Prompt = fmt.Sprintf(
			"The assistant wants to communicate externally using %s. Please review who will receive this message.",
			check.ToolName,
		)
	}

	if destructive {
		eval.Decision = models.DecisionEscalate
		if eval.Risk < 85 {
			eval.Risk = 85
		}
		eval.ReasonCode = models.ReasonDestructiveAction
		eval.Prompt = promptDestructive
		eval.RequiredPhrase = confirmationPhrase(spec.Action, spec.TargetEntity)
	}

	if batch && eval.Decision == models.DecisionAllow && eval.Risk > 30 {
		eval.Decision = models.DecisionAllowWithConfirm
		eval.ReasonCode = models.ReasonBatchOperationConfirm
		eval.Prompt = fmt.Sprintf("This operation affects %s entries. Please confirm.", spec.Scope)
	}

	if systemExec {
		eval.Decision = models.DecisionEscalate
		eval.Risk = 100
		eval.ReasonCode = models.ReasonSystemExecEscalation
		eval.Prompt = promptSystemExec
		eval.RequiredPhrase = phraseSystemExec
	}

	if eval.Risk < 0 {
		eval.Risk = 0
	}
	if eval.Risk > 100 {
		eval.Risk = 100
	}
	if eval.Decision != models.DecisionEscalate {
		eval.RequiredPhrase = ""
	}
	if eval.Decision.Interactive() {
		if eval.Prompt == "" {
			eval.Prompt = fmt.Sprintf("Policy requires confirmation for %s.", check.ToolName)
		}
		expiry := check.Now.Add(interactiveTTL)
		eval.ExpiresAt = &expiry
	}
	return eval
}

// confirmationPhrase builds the spoken escalation phrase, e.g.
// "CONFIRM DELETE FILE". Entity underscores become spaces so the
// phrase stays utterable.
func confirmationPhrase(action models.ActionType, entity string) string {
	noun := strings.ReplaceAll(strings.TrimSpace(entity), "_", " ")
	return strings.ToUpper(fmt.Sprintf("CONFIRM %s %s", string(action), noun))
}
