package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"upload-ai-api/internal/apperrors"
	"upload-ai-api/internal/server"
	"upload-ai-api/internal/server/middleware"
)

type completionRequest struct {
	VideoID     string   `json:"videoId" validate:"required"`
	Template    string   `json:"template" validate:"required"`
	Temperature *float64 `json:"temperature" validate:"omitempty,gte=0,lte=1"`
	Stream      bool     `json:"stream"`
}

// GenerateCompletion handles POST /ai/complete in both response modes.
// Buffered mode returns the whole completion as JSON; streaming mode relays
// raw text chunks as they arrive, flushing after each one.
func (a *API) GenerateCompletion(c *gin.Context) {
	var req completionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("request body must be valid JSON").WithCause(err))
		return
	}
	if err := a.validate.Struct(&req); err != nil {
		server.RespondWithError(c, validationError(err))
		return
	}

	if req.Stream {
		a.streamCompletion(c, req)
		return
	}

	resp, err := a.pipeline.Complete(c.Request.Context(), req.VideoID, req.Template, req.Temperature)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondOK(c, gin.H{
		"result": resp.Content,
		"model":  resp.Model,
		"usage":  resp.Usage,
	})
}

// streamCompletion relays the collaborator's chunks in arrival order. The
// raw response bypasses the JSON formatting layer, so cross-origin headers
// are stamped directly before the first flush.
func (a *API) streamCompletion(c *gin.Context, req completionRequest) {
	ch, err := a.pipeline.CompleteStream(c.Request.Context(), req.VideoID, req.Template, req.Temperature)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	h := c.Writer.Header()
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("Cache-Control", "no-cache")
	middleware.SetCORSHeaders(h, c.GetHeader("Origin"), &a.cors)
	if h.Get("Access-Control-Allow-Origin") == "" {
		h.Set("Access-Control-Allow-Origin", "*")
	}
	c.Status(http.StatusOK)

	for chunk := range ch {
		if chunk.Err != nil {
			// Headers are already on the wire; all that is left is to stop
			// relaying and log the cause.
			a.log.WithError(chunk.Err).Error("completion stream aborted", map[string]interface{}{
				"video_id": req.VideoID,
			})
			return
		}
		if chunk.Done {
			return
		}
		if chunk.Content == "" {
			continue
		}
		if _, err := c.Writer.WriteString(chunk.Content); err != nil {
			return
		}
		c.Writer.Flush()
	}
}

// validationError flattens validator field errors into an AppError with
// per-field details.
func validationError(err error) *apperrors.AppError {
	appErr := apperrors.Validation("request validation failed")
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			appErr = appErr.WithDetail(fe.Field(), fe.Tag())
		}
	}
	return appErr
}
