package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listToolsHandler handles GET /api/v1/tools: the registered tool specs,
// risk metadata and argument schemas included. Handlers never leave the
// process.
func (s *Server) listToolsHandler(c *gin.Context) {
	specs := s.deps.Registry.Specs()
	c.JSON(http.StatusOK, ToolCatalogResponse{
		Tools: specs,
		Count: len(specs),
	})
}
