// Package api exposes the pipeline over HTTP: upload, transcription,
// completion, and the read-only prompt templates.
package api

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"upload-ai-api/internal/llm"
	"upload-ai-api/internal/logger"
	"upload-ai-api/internal/server/middleware"
	"upload-ai-api/internal/store"
)

// Pipeline is the orchestration surface the handlers need.
type Pipeline interface {
	Ingest(ctx context.Context, filename string, file io.Reader) (*store.Video, error)
	Transcribe(ctx context.Context, videoID, prompt string) (string, error)
	Complete(ctx context.Context, videoID, template string, temperature *float64) (*llm.CompletionResponse, error)
	CompleteStream(ctx context.Context, videoID, template string, temperature *float64) (<-chan llm.StreamChunk, error)
	ListPrompts(ctx context.Context) ([]store.Prompt, error)
}

// HealthChecker reports backing-store health for the /health endpoint.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// API holds the HTTP handlers and their dependencies.
type API struct {
	pipeline Pipeline
	health   HealthChecker
	cors     middleware.CORSConfig
	validate *validator.Validate
	log      *logger.Logger
}

// New creates the API handler set. The CORS config is needed beyond the
// middleware because streaming completion writes headers on the raw response.
func New(p Pipeline, health HealthChecker, cors middleware.CORSConfig, log *logger.Logger) *API {
	return &API{
		pipeline: p,
		health:   health,
		cors:     cors,
		validate: validator.New(),
		log:      log.WithComponent("api"),
	}
}

// RegisterRoutes mounts all endpoints on the engine.
func (a *API) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/health", a.Health)
	engine.GET("/prompts", a.ListPrompts)
	engine.POST("/videos", a.UploadVideo)
	engine.POST("/videos/:videoId/transcription", a.CreateTranscription)
	engine.POST("/ai/complete", a.GenerateCompletion)
}
