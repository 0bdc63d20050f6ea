package api

import (
	"github.com/gin-gonic/gin"

	"upload-ai-api/internal/server"
)

// ListPrompts handles GET /prompts.
func (a *API) ListPrompts(c *gin.Context) {
	prompts, err := a.pipeline.ListPrompts(c.Request.Context())
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, prompts)
}
