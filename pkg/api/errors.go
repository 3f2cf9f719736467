package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/valet-assistant/valet/pkg/agent"
	"github.com/valet-assistant/valet/pkg/services"
)

// errorBody is the uniform error envelope: {"error": {code, message,
// request_id}}. Messages are static or service-sanitized — they never
// carry payload contents.
type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// abortError writes the error envelope and stops the handler chain.
func abortError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": errorBody{
		Code:      code,
		Message:   message,
		RequestID: RequestID(c),
	}})
}

// respondServiceError maps a service-layer error to its HTTP shape.
// Unrecognized errors become an opaque 500; the request id is the
// operator's handle into the logs.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		abortError(c, http.StatusBadRequest, "validation_error", validErr.Error())
	case errors.Is(err, services.ErrNotFound):
		abortError(c, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, services.ErrAlreadyExists):
		abortError(c, http.StatusConflict, "already_exists", "resource already exists")
	case errors.Is(err, services.ErrInvalidInput):
		abortError(c, http.StatusBadRequest, "invalid_input", "invalid input")
	case errors.Is(err, services.ErrSessionInactive):
		abortError(c, http.StatusGone, "session_inactive", "session is expired or revoked")
	case errors.Is(err, agent.ErrTurnInFlight):
		abortError(c, http.StatusConflict, "turn_in_flight", "a turn with this idempotency key is still in flight")
	case errors.Is(err, services.ErrEmbeddingUnavailable):
		abortError(c, http.StatusServiceUnavailable, "embedding_unavailable", "embedding provider unavailable, try again later")
	case errors.Is(err, context.DeadlineExceeded):
		abortError(c, http.StatusRequestTimeout, "deadline_exceeded", "the turn did not complete in time")
	default:
		slog.Error("Unexpected service error",
			"error", err,
			"request_id", RequestID(c),
			"path", c.FullPath())
		abortError(c, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
