// Command api runs the upload-ai HTTP service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"upload-ai-api/internal/api"
	"upload-ai-api/internal/config"
	"upload-ai-api/internal/llm"
	llmopenai "upload-ai-api/internal/llm/openai"
	"upload-ai-api/internal/logger"
	"upload-ai-api/internal/pipeline"
	"upload-ai-api/internal/server"
	"upload-ai-api/internal/storage"
	_ "upload-ai-api/internal/storage/local"
	_ "upload-ai-api/internal/storage/s3"
	"upload-ai-api/internal/store"
	"upload-ai-api/internal/transcription"
	sttopenai "upload-ai-api/internal/transcription/openai"
)

const serviceName = "upload-ai-api"

func main() {
	var cfg config.Config
	if err := config.Load(&cfg); err != nil {
		logger.NewDefault(serviceName).Fatal("Failed to load configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log := logger.New(&cfg.Log, serviceName)
	logger.SetGlobalLogger(log)

	if err := run(&cfg, log); err != nil {
		log.Fatal("Service failed", map[string]interface{}{"error": err.Error()})
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.SeedPrompts(ctx, db); err != nil {
		return err
	}

	blobs, err := storage.New(cfg.Storage, log)
	if err != nil {
		return err
	}

	var stt transcription.Provider = sttopenai.NewProvider(sttopenai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.TranscriptionModel,
	})
	var chat llm.Provider = llmopenai.NewProvider(llmopenai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.CompletionModel,
	})

	videos := store.NewVideoRepository(db)
	prompts := store.NewPromptRepository(db)
	svc := pipeline.NewService(videos, prompts, blobs, stt, chat, log)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	api.New(svc, db, cfg.Server.CORS, log).RegisterRoutes(srv.GinEngine())

	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	return srv.Stop(context.Background())
}
