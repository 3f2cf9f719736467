package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/valet-assistant/valet/pkg/events"
)

// adminStatsHandler handles GET /api/v1/admin/stats.
func (s *Server) adminStatsHandler(c *gin.Context) {
	stats, err := s.deps.Stats.GetSystemStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// adminSessionSummaryHandler handles GET /api/v1/admin/sessions/:id/summary.
// Admins see any session, not just their own; previews are redacted.
func (s *Server) adminSessionSummaryHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		abortError(c, http.StatusBadRequest, "bad_request", "session id is required")
		return
	}

	summary, err := s.deps.Stats.GetSessionSummary(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// adminEventsHandler handles GET /api/v1/admin/events — catch-up reads
// of one session's ops feed, cursored by the bigserial event id.
func (s *Server) adminEventsHandler(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		abortError(c, http.StatusBadRequest, "bad_request", "session_id is required")
		return
	}
	afterID := intQuery(c, "after_id", 0)
	limit := intQuery(c, "limit", 0)

	result, err := s.deps.Events.GetEventsSince(c.Request.Context(), events.SessionChannel(sessionID), afterID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
