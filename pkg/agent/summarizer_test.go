package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valet-assistant/valet/pkg/models"
)

func TestSummarizeResult(t *testing.T) {
	cases := []struct {
		name   string
		result *models.ToolResult
		want   string
	}{
		{
			name: "success with message",
			result: &models.ToolResult{
				Status: models.ResultSuccess,
				Data:   map[string]any{"message": "Email sent successfully."},
			},
			want: "Done. Email sent successfully.",
		},
		{
			name:   "success without message",
			result: &models.ToolResult{Status: models.ResultSuccess, Data: map[string]any{"count": 3}},
			want:   "Done.",
		},
		{
			name: "success with non-string message",
			result: &models.ToolResult{
				Status: models.ResultSuccess,
				Data:   map[string]any{"message": 42},
			},
			want: "Done.",
		},
		{
			name: "confirmation with prompt",
			result: &models.ToolResult{
				Status: models.ResultNeedsConfirmation,
				Prompt: "This will delete the file. Proceed?",
			},
			want: "This will delete the file. Proceed?",
		},
		{
			name:   "confirmation without prompt",
			result: &models.ToolResult{Status: models.ResultNeedsConfirmation},
			want:   "This action requires approval. Please say the confirmation phrase.",
		},
		{
			name: "denied with reason",
			result: &models.ToolResult{
				Status: models.ResultDenied,
				Error:  "scope tool.email.send is not granted",
			},
			want: "I cannot do that. scope tool.email.send is not granted",
		},
		{
			name:   "denied without reason",
			result: &models.ToolResult{Status: models.ResultDenied},
			want:   "I cannot do that. Policy denied action.",
		},
		{
			name: "error",
			result: &models.ToolResult{
				Status: models.ResultError,
				Error:  "upstream unreachable",
			},
			want: "Something went wrong. upstream unreachable",
		},
		{
			name:   "unrecognized status",
			result: &models.ToolResult{Status: "queued"},
			want:   "Command completed.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, summarizeResult(tc.result))
		})
	}
}
