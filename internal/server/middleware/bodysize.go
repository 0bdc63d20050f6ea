package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"upload-ai-api/internal/util"
)

const defaultMaxBodySize = 26 * 1024 * 1024

// BodySizeLimit returns middleware that restricts the request body to the
// given size string (e.g. "25MB", "512KB"). Reads beyond the limit fail with
// an *http.MaxBytesError, which surfaces as 413 in the upload handler.
func BodySizeLimit(maxSize string) gin.HandlerFunc {
	size := util.ParseSize(maxSize, defaultMaxBodySize)
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, size)
		c.Next()
	}
}
