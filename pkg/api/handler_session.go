package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/valet-assistant/valet/pkg/models"
)

// createSessionHandler handles POST /api/v1/sessions.
func (s *Server) createSessionHandler(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		abortError(c, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	sess, err := s.deps.Sessions.CreateSession(c.Request.Context(), currentUser(c).ID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateSessionResponse{
		SessionID: sess.ID,
		Modality:  string(sess.Modality),
		StartedAt: sess.StartedAt,
	})
}

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *gin.Context) {
	filters := models.SessionFilters{}
	if v := c.Query("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			abortError(c, http.StatusBadRequest, "bad_request", "invalid active: must be a boolean")
			return
		}
		filters.Active = active
	}
	filters.Limit = intQuery(c, "limit", 0)
	filters.Offset = intQuery(c, "offset", 0)

	result, err := s.deps.Sessions.ListSessions(c.Request.Context(), currentUser(c).ID, filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// sessionHistoryHandler handles GET /api/v1/sessions/:id/history. Tool
// inputs and results in the trail were redacted before persistence.
func (s *Server) sessionHistoryHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		abortError(c, http.StatusBadRequest, "bad_request", "session id is required")
		return
	}

	history, err := s.deps.Sessions.GetSessionHistory(c.Request.Context(), currentUser(c).ID, sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// revokeSessionHandler handles DELETE /api/v1/sessions/:id. Revocation
// cancels the session's pending confirmations with it.
func (s *Server) revokeSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		abortError(c, http.StatusBadRequest, "bad_request", "session id is required")
		return
	}

	if err := s.deps.Sessions.RevokeSession(c.Request.Context(), currentUser(c).ID, sessionID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// intQuery parses an optional non-negative integer query param,
// falling back on absent or unparsable values.
func intQuery(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
