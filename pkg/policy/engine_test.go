package policy

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valet-assistant/valet/pkg/models"
)

func spec(mutate func(*models.ToolSpec)) *models.ToolSpec {
	s := &models.ToolSpec{
		Name:         "example_tool",
		Category:     models.CategoryOther,
		Action:       models.ActionRead,
		Sensitivity:  models.SensitivityLow,
		Scope:        models.ScopeSingle,
		TargetEntity: "item",
	}
	if mutate != nil {
		mutate(s)
	}
	return s
}

func TestEvaluate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	inHour := now.Add(time.Hour)

	cases := []struct {
		name  string
		check models.PolicyCheck
		want  models.Evaluation
	}{
		{
			name:  "unknown tool is denied outright",
			check: models.PolicyCheck{ToolName: "mystery_tool", Now: now},
			want: models.Evaluation{
				Decision:   models.DecisionDeny,
				Risk:       100,
				ReasonCode: models.ReasonUnknownTool,
			},
		},
		{
			name: "low-sensitivity read stays low risk even for batch scope",
			check: models.PolicyCheck{
				ToolName: "get_calendar_events",
				Spec: spec(func(s *models.ToolSpec) {
					s.Name = "get_calendar_events"
					s.Category = models.CategoryCalendar
					s.Scope = models.ScopeBatch
					s.TargetEntity = "calendar_event"
				}),
				Now: now,
			},
			want: models.Evaluation{
				Decision:   models.DecisionAllow,
				Risk:       10,
				ReasonCode: models.ReasonLowRiskRead,
			},
		},
		{
			name: "medium single write passes without interaction",
			check: models.PolicyCheck{
				ToolName: "create_calendar_event",
				Spec: spec(func(s *models.ToolSpec) {
					s.Name = "create_calendar_event"
					s.Category = models.CategoryCalendar
					s.Action = models.ActionWrite
					s.Sensitivity = models.SensitivityMedium
					s.SideEffects = true
					s.TargetEntity = "calendar_event"
				}),
				Now: now,
			},
			want: models.Evaluation{
				Decision:   models.DecisionAllow,
				Risk:       40,
				ReasonCode: models.ReasonStandardAllow,
			},
		},
		{
			name: "medium batch read needs a batch confirmation",
			check: models.PolicyCheck{
				ToolName: "read_emails",
				Spec: spec(func(s *models.ToolSpec) {
					s.Name = "read_emails"
					s.Category = models.CategoryEmail
					s.Sensitivity = models.SensitivityMedium
					s.Scope = models.ScopeBatch
					s.TargetEntity = "email"
				}),
				Now: now,
			},
			want: models.Evaluation{
				Decision:   models.DecisionAllowWithConfirm,
				Risk:       60,
				ReasonCode: models.ReasonBatchOperationConfirm,
				Prompt:     "This operation affects batch entries. Please confirm.",
				ExpiresAt:  &inHour,
			},
		},
		{
			name: "external communication always confirms",
			check: models.PolicyCheck{
				ToolName: "send_email",
				Spec: spec(func(s *models.ToolSpec) {
					s.Name = "send_email"
					s.Category = models.CategoryEmail
					s.Action = models.ActionWrite
					s.Sensitivity = models.SensitivityHigh
					s.SideEffects = true
					s.ExternalCommunication = true
					s.TargetEntity = "email"
				}),
				Now: now,
			},
			want: models.Evaluation{
				Decision:   models.DecisionAllowWithConfirm,
				Risk:       70,
				ReasonCode: models.ReasonExternalCommConfirm,
				Prompt:     "The assistant wants to communicate externally using send_email. Please review who will receive this message.",
				ExpiresAt:  &inHour,
			},
		},
		{
			name: "external low read floors the risk at sixty",
			check: models.PolicyCheck{
				ToolName: "web_search",
				Spec: spec(func(s *models.ToolSpec) {
					s.Name = "web_search"
					s.Category = models.CategoryWeb
					s.ExternalCommunication = true
					s.TargetEntity = "web_query"
				}),
				Now: now,
			},
			want: models.Evaluation{
				Decision:   models.DecisionAllowWithConfirm,
				Risk:       60,
				ReasonCode: models.ReasonExternalCommConfirm,
				Prompt:     "The assistant wants to communicate externally using web_search. Please review who will receive this message.",
				ExpiresAt:  &inHour,
			},
		},
		{
			name: "destructive delete escalates with a spoken phrase",
			check: models.PolicyCheck{
				ToolName: "delete_file",
				Spec: spec(func(s *models.ToolSpec) {
					s.Name = "delete_file"
					s.Category = models.CategoryFiles
					s.Action = models.ActionDelete
					s.Sensitivity = models.SensitivityHigh
					s.SideEffects = true
					s.Destructive = true
					s.TargetEntity = "file"
				}),
				Now: now,
			},
			want: models.Evaluation{
				Decision:       models.DecisionEscalate,
				Risk:           85,
				ReasonCode:     models.ReasonDestructiveAction,
				Prompt:         "This action is destructive and irreversible. Please explicitly confirm.",
				RequiredPhrase: "CONFIRM DELETE FILE",
				ExpiresAt:      &inHour,
			},
		},
		{
			name: "destructive batch keeps the higher accumulated risk",
			check: models.PolicyCheck{
				ToolName: "purge_archive",
				Spec: spec(func(s *models.ToolSpec) {
					s.Name = "purge_archive"
					s.Action = models.ActionDelete
					s.Sensitivity = models.SensitivityHigh
					s.Scope = models.ScopeAll
					s.Destructive = true
					s.TargetEntity = "archive_entry"
				}),
				Now: now,
			},
			want: models.Evaluation{
				Decision:       models.DecisionEscalate,
				Risk:           90,
				ReasonCode:     models.ReasonDestructiveAction,
				Prompt:         "This action is destructive and irreversible. Please explicitly confirm.",
				RequiredPhrase: "CONFIRM DELETE ARCHIVE ENTRY",
				ExpiresAt:      &inHour,
			},
		},
		{
			name: "system execution pins risk at one hundred",
			check: models.PolicyCheck{
				ToolName: "run_automation",
				Spec: spec(func(s *models.ToolSpec) {
					s.Name = "run_automation"
					s.Category = models.CategorySystem
					s.Action = models.ActionExecute
					s.Sensitivity = models.SensitivityHigh
					s.SideEffects = true
					s.TargetEntity = "automation"
				}),
				Now: now,
			},
			want: models.Evaluation{
				Decision:       models.DecisionEscalate,
				Risk:           100,
				ReasonCode:     models.ReasonSystemExecEscalation,
				Prompt:         "The assistant is requesting system command execution. This is highly sensitive.",
				RequiredPhrase: "CONFIRM SYSTEM EXECUTE",
				ExpiresAt:      &inHour,
			},
		},
		{
			name: "memory write stays an ordinary allow",
			check: models.PolicyCheck{
				ToolName: "remember_fact",
				Spec: spec(func(s *models.ToolSpec) {
					s.Name = "remember_fact"
					s.Category = models.CategoryMemory
					s.Action = models.ActionWrite
					s.SideEffects = true
					s.TargetEntity = "fact"
				}),
				Now: now,
			},
			want: models.Evaluation{
				Decision:   models.DecisionAllow,
				Risk:       10,
				ReasonCode: models.ReasonStandardAllow,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.check)
			assert.Equal(t, tc.want, got)

			if got.Decision.Interactive() {
				assert.NotEmpty(t, got.Prompt)
				require.NotNil(t, got.ExpiresAt)
				assert.Equal(t, inHour, *got.ExpiresAt)
			} else {
				assert.Empty(t, got.Prompt)
				assert.Nil(t, got.ExpiresAt)
			}
			if got.Decision != models.DecisionEscalate {
				assert.Empty(t, got.RequiredPhrase)
			}
		})
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	check := models.PolicyCheck{
		ToolName: "delete_file",
		Spec: spec(func(s *models.ToolSpec) {
			s.Name = "delete_file"
			s.Category = models.CategoryFiles
			s.Action = models.ActionDelete
			s.Sensitivity = models.SensitivityHigh
			s.Destructive = true
			s.TargetEntity = "file"
		}),
		IntentSummary: "delete the report file",
		ArgsPreview:   map[string]any{"path": "report.txt"},
		Now:           time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	first, err := json.Marshal(Evaluate(check))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(Evaluate(check))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestEvaluate_RiskClamp(t *testing.T) {
	// Sensitivity outside the known set contributes nothing; the result
	// still lands inside [0,100].
	got := Evaluate(models.PolicyCheck{
		ToolName: "odd_tool",
		Spec: spec(func(s *models.ToolSpec) {
			s.Sensitivity = models.Sensitivity("critical")
		}),
		Now: time.Now(),
	})
	assert.GreaterOrEqual(t, got.Risk, 0)
	assert.LessOrEqual(t, got.Risk, 100)
	assert.Equal(t, models.DecisionAllow, got.Decision)
}
