package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health. The service is healthy when the record store
// answers a ping.
func (a *API) Health(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if a.health != nil {
		if err := a.health.PingContext(c.Request.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}
	c.JSON(code, gin.H{"status": status})
}
