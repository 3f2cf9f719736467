package agent

import "github.com/valet-assistant/valet/pkg/models"

// summarizeResult converts a tool result into a voice-friendly reply.
// Success leans on the tool's own "message" field when it set one.
func summarizeResult(result *models.ToolResult) string {
	switch result.Status {
	case models.ResultSuccess:
		if msg, ok := result.Data["message"].(string); ok && msg != "" {
			return "Done. " + msg
		}
		return "Done."

	case models.ResultNeedsConfirmation:
		if result.Prompt != "" {
			return result.Prompt
		}
		return "This action requires approval. Please say the confirmation phrase."

	case models.ResultDenied:
		if result.Error != "" {
			return "I cannot do that. " + result.Error
		}
		return "I cannot do that. Policy denied action."

	case models.ResultError:
		return "Something went wrong. " + result.Error
	}

	return "Command completed."
}
