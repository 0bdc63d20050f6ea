// Package pipeline orchestrates the upload → transcribe → complete pipeline
// over the record store, artifact storage, and the AI collaborators.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"upload-ai-api/internal/apperrors"
	"upload-ai-api/internal/llm"
	"upload-ai-api/internal/logger"
	"upload-ai-api/internal/storage"
	"upload-ai-api/internal/store"
	"upload-ai-api/internal/transcription"
)

const (
	// AcceptedExtension is the only upload extension ingestion accepts.
	// Validation is by filename extension only; no content sniffing.
	AcceptedExtension = ".mp3"

	// PlaceholderToken is the literal substring in completion templates that
	// gets substituted with the stored transcription. The substitution is a
	// raw text replace: any other occurrence of the token text in the
	// template collides with it. Known limitation, kept as-is.
	PlaceholderToken = "{transcription}"

	// DefaultTemperature is used when a completion request omits temperature.
	DefaultTemperature = 0.5

	// transcriptionLanguage pins the expected audio language.
	transcriptionLanguage = "pt"
)

// VideoStore is the persistence surface the pipeline needs for records.
type VideoStore interface {
	Create(ctx context.Context, video *store.Video) error
	FindByID(ctx context.Context, id string) (*store.Video, error)
	UpdateTranscription(ctx context.Context, id, transcription string) error
}

// PromptStore lists the static prompt templates.
type PromptStore interface {
	List(ctx context.Context) ([]store.Prompt, error)
}

// Service wires the pipeline stages together. Stages are invoked
// independently, one per client request; the service holds no cross-request
// state and does not serialize concurrent calls for the same record.
type Service struct {
	videos  VideoStore
	prompts PromptStore
	blobs   storage.Storage
	stt     transcription.Provider
	chat    llm.Provider
	log     *logger.Logger
}

// NewService creates the pipeline service.
func NewService(videos VideoStore, prompts PromptStore, blobs storage.Storage, stt transcription.Provider, chat llm.Provider, log *logger.Logger) *Service {
	return &Service{
		videos:  videos,
		prompts: prompts,
		blobs:   blobs,
		stt:     stt,
		chat:    chat,
		log:     log.WithComponent("pipeline"),
	}
}

// Ingest validates and stores one uploaded audio file and creates its
// pipeline record. The file content is streamed to storage as it arrives.
// The stored name is "{originalBaseName}-{uuid}{ext}" so concurrent uploads
// of identically named files never collide.
func (s *Service) Ingest(ctx context.Context, filename string, file io.Reader) (*store.Video, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != AcceptedExtension {
		return nil, apperrors.UnsupportedType(ext, AcceptedExtension)
	}

	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	storedName := fmt.Sprintf("%s-%s%s", base, uuid.NewString(), ext)

	if err := s.blobs.Upload(ctx, storedName, file); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("store upload: %w", err))
	}

	video := &store.Video{Name: filename, Path: storedName}
	if err := s.videos.Create(ctx, video); err != nil {
		return nil, err
	}

	s.log.Info("file ingested", map[string]interface{}{
		"video_id": video.ID, "name": video.Name, "path": video.Path,
	})
	return video, nil
}

// Transcribe streams the stored audio artifact to the speech-to-text
// collaborator and persists the returned text on the record. The prompt is
// forwarded verbatim as a priming hint; language and temperature are pinned.
// On collaborator failure nothing is persisted. Calling twice for the same
// record issues two collaborator calls and keeps the most recent result
// (last-write-wins, an observed behavior rather than a guarantee).
func (s *Service) Transcribe(ctx context.Context, videoID, prompt string) (string, error) {
	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return "", err
	}

	audio, err := s.blobs.Download(ctx, video.Path)
	if err != nil {
		return "", apperrors.TranscriptionFailed(fmt.Errorf("read artifact: %w", err))
	}
	defer audio.Close()

	resp, err := s.stt.Transcribe(ctx, transcription.Request{
		Audio:       audio,
		Filename:    video.Path,
		Language:    transcriptionLanguage,
		Prompt:      prompt,
		Temperature: 0,
	})
	if err != nil {
		s.log.WithError(err).Error("transcription collaborator failed", map[string]interface{}{
			"video_id": videoID, "provider": s.stt.Name(),
		})
		return "", apperrors.TranscriptionFailed(err)
	}

	if err := s.videos.UpdateTranscription(ctx, videoID, resp.Text); err != nil {
		return "", err
	}

	s.log.Info("transcription stored", map[string]interface{}{
		"video_id": videoID, "chars": len(resp.Text),
	})
	return resp.Text, nil
}

// Complete builds the final prompt from the template and the stored
// transcription and returns the buffered completion. The transcription must
// exist; its absence fails before any collaborator call. The completion
// output is never persisted.
func (s *Service) Complete(ctx context.Context, videoID, template string, temperature *float64) (*llm.CompletionResponse, error) {
	req, err := s.buildCompletionRequest(ctx, videoID, template, temperature)
	if err != nil {
		return nil, err
	}

	resp, err := s.chat.Complete(ctx, *req)
	if err != nil {
		s.log.WithError(err).Error("completion collaborator failed", map[string]interface{}{
			"video_id": videoID, "provider": s.chat.Name(),
		})
		return nil, apperrors.CompletionFailed(err)
	}
	return resp, nil
}

// CompleteStream is Complete in streaming mode: the collaborator's token
// stream is returned for incremental relay, in arrival order.
func (s *Service) CompleteStream(ctx context.Context, videoID, template string, temperature *float64) (<-chan llm.StreamChunk, error) {
	req, err := s.buildCompletionRequest(ctx, videoID, template, temperature)
	if err != nil {
		return nil, err
	}

	ch, err := s.chat.Stream(ctx, *req)
	if err != nil {
		s.log.WithError(err).Error("completion collaborator failed", map[string]interface{}{
			"video_id": videoID, "provider": s.chat.Name(),
		})
		return nil, apperrors.CompletionFailed(err)
	}
	return ch, nil
}

// ListPrompts returns the static prompt templates.
func (s *Service) ListPrompts(ctx context.Context) ([]store.Prompt, error) {
	return s.prompts.List(ctx)
}

func (s *Service) buildCompletionRequest(ctx context.Context, videoID, template string, temperature *float64) (*llm.CompletionRequest, error) {
	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video.Transcription == nil {
		return nil, apperrors.TranscriptNotReady(videoID)
	}

	temp := DefaultTemperature
	if temperature != nil {
		temp = *temperature
	}

	prompt := strings.ReplaceAll(template, PlaceholderToken, *video.Transcription)

	return &llm.CompletionRequest{
		Temperature: float32(temp),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
	}, nil
}
