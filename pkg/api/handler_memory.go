package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/valet-assistant/valet/pkg/models"
)

// memorySource marks rows written through the HTTP API, as opposed to
// the remember_fact tool or turn summarization.
const memorySource = "api"

// listMemoriesHandler handles GET /api/v1/memories.
func (s *Server) listMemoriesHandler(c *gin.Context) {
	filters := models.MemoryFilters{
		Type:   c.Query("type"),
		Query:  c.Query("q"),
		Limit:  intQuery(c, "limit", 0),
		Offset: intQuery(c, "offset", 0),
	}

	result, err := s.deps.Memories.ListMemories(c.Request.Context(), currentUser(c).ID, filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// createMemoryHandler handles POST /api/v1/memories.
func (s *Server) createMemoryHandler(c *gin.Context) {
	var req CreateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		abortError(c, http.StatusBadRequest, "bad_request", "content is required")
		return
	}

	result, err := s.deps.Memories.WriteMemory(c.Request.Context(), models.WriteMemoryRequest{
		UserID:   currentUser(c).ID,
		Type:     req.Type,
		Content:  req.Content,
		Source:   memorySource,
		Metadata: req.Metadata,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status := http.StatusCreated
	if !result.Created {
		// The content deduplicated onto an existing row.
		status = http.StatusOK
	}
	c.JSON(status, result)
}

// searchMemoriesHandler handles POST /api/v1/memories/search —
// similarity search over the caller's memories.
func (s *Server) searchMemoriesHandler(c *gin.Context) {
	var req SearchMemoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		abortError(c, http.StatusBadRequest, "bad_request", "query is required")
		return
	}

	results, err := s.deps.Memories.RetrieveMemories(c.Request.Context(), models.RetrieveMemoryRequest{
		UserID:   currentUser(c).ID,
		Query:    req.Query,
		Types:    req.Types,
		TopK:     req.TopK,
		MinScore: req.MinScore,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchMemoriesResponse{
		Results: results,
		Count:   len(results),
	})
}

// updateMemoryHandler handles PATCH /api/v1/memories/:id. A content
// change re-embeds the memory.
func (s *Server) updateMemoryHandler(c *gin.Context) {
	memoryID := c.Param("id")
	if memoryID == "" {
		abortError(c, http.StatusBadRequest, "bad_request", "memory id is required")
		return
	}

	var req models.UpdateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if req.Content == nil && req.Type == nil && len(req.Metadata) == 0 {
		abortError(c, http.StatusBadRequest, "bad_request", "nothing to update")
		return
	}

	mem, err := s.deps.Memories.UpdateMemory(c.Request.Context(), currentUser(c).ID, memoryID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, mem)
}

// deleteMemoryHandler handles DELETE /api/v1/memories/:id (soft delete).
func (s *Server) deleteMemoryHandler(c *gin.Context) {
	memoryID := c.Param("id")
	if memoryID == "" {
		abortError(c, http.StatusBadRequest, "bad_request", "memory id is required")
		return
	}

	if err := s.deps.Memories.DeleteMemory(c.Request.Context(), currentUser(c).ID, memoryID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// memoryEventsHandler handles GET /api/v1/memories/:id/events — the
// append-only audit trail of one memory.
func (s *Server) memoryEventsHandler(c *gin.Context) {
	memoryID := c.Param("id")
	if memoryID == "" {
		abortError(c, http.StatusBadRequest, "bad_request", "memory id is required")
		return
	}

	evts, err := s.deps.Memories.ListEvents(c.Request.Context(), currentUser(c).ID, memoryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MemoryEventsResponse{
		MemoryID: memoryID,
		Events:   evts,
	})
}
