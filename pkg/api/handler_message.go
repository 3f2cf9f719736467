package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/valet-assistant/valet/pkg/models"
)

// postMessageHandler handles POST /api/v1/sessions/:id/message — the
// turn endpoint. One call is one utterance; the reply comes back
// synchronously. A stable Idempotency-Key header makes retries safe:
// the same key returns the same reply without re-running the turn.
func (s *Server) postMessageHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		abortError(c, http.StatusBadRequest, "bad_request", "session id is required")
		return
	}

	var req models.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		abortError(c, http.StatusBadRequest, "bad_request", "content is required")
		return
	}
	if req.Modality != "" && req.Modality != models.ModalityText && req.Modality != models.ModalityVoice {
		abortError(c, http.StatusBadRequest, "bad_request", "invalid modality: must be text or voice")
		return
	}

	turn, err := s.deps.Orchestrator.HandleUtterance(c.Request.Context(), models.TurnRequest{
		SessionID:      sessionID,
		UserID:         currentUser(c).ID,
		Content:        req.Content,
		Modality:       req.Modality,
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		AssistantText: turn.Text,
		SessionID:     turn.SessionID,
		MessageID:     turn.MessageID,
		ShouldSpeak:   turn.ShouldSpeak,
		Deduplicated:  turn.Deduplicated,
		Pending:       turn.Pending,
		RequestID:     RequestID(c),
		TraceID:       turn.TraceID,
	})
}
