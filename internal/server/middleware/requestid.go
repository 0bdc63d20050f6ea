package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"upload-ai-api/internal/logger"
)

// RequestID injects a unique X-Request-Id header into every request/response
// and stores the id on the request context for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-Id", id)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
