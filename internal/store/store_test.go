package store

import (
	"context"
	"path/filepath"
	"testing"

	"upload-ai-api/internal/apperrors"
	"upload-ai-api/internal/logger"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	cfg := Config{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "test.db"), LogLevel: "silent"}
	db, err := Open(cfg, logger.NewDefault("test"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestVideoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns an id and round-trips", func(t *testing.T) {
		repo := NewVideoRepository(openTestDB(t))

		video := &Video{Name: "audio.mp3", Path: "audio-x.mp3"}
		if err := repo.Create(ctx, video); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if video.ID == "" {
			t.Fatal("expected an assigned id")
		}

		got, err := repo.FindByID(ctx, video.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if got.Name != "audio.mp3" || got.Path != "audio-x.mp3" {
			t.Errorf("unexpected record: %+v", got)
		}
		if got.Transcription != nil {
			t.Errorf("expected transcription absent, got %q", *got.Transcription)
		}
	})

	t.Run("find unknown id yields NotFound", func(t *testing.T) {
		repo := NewVideoRepository(openTestDB(t))

		_, err := repo.FindByID(ctx, "does-not-exist")
		appErr, ok := apperrors.AsAppError(err)
		if !ok || appErr.Code != apperrors.ErrCodeNotFound {
			t.Fatalf("expected NOT_FOUND, got %v", err)
		}
	})

	t.Run("update transcription persists and overwrites", func(t *testing.T) {
		repo := NewVideoRepository(openTestDB(t))

		video := &Video{Name: "audio.mp3", Path: "audio-x.mp3"}
		if err := repo.Create(ctx, video); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if err := repo.UpdateTranscription(ctx, video.ID, "first"); err != nil {
			t.Fatalf("UpdateTranscription failed: %v", err)
		}
		if err := repo.UpdateTranscription(ctx, video.ID, "second"); err != nil {
			t.Fatalf("UpdateTranscription failed: %v", err)
		}

		got, err := repo.FindByID(ctx, video.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if got.Transcription == nil || *got.Transcription != "second" {
			t.Errorf("expected last write to win, got %v", got.Transcription)
		}
	})

	t.Run("update on unknown id yields NotFound", func(t *testing.T) {
		repo := NewVideoRepository(openTestDB(t))

		err := repo.UpdateTranscription(ctx, "does-not-exist", "text")
		appErr, ok := apperrors.AsAppError(err)
		if !ok || appErr.Code != apperrors.ErrCodeNotFound {
			t.Fatalf("expected NOT_FOUND, got %v", err)
		}
	})
}

func TestSeedPrompts(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	if err := SeedPrompts(ctx, db); err != nil {
		t.Fatalf("SeedPrompts failed: %v", err)
	}

	repo := NewPromptRepository(db)
	prompts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(prompts) != 2 {
		t.Fatalf("expected 2 seeded prompts, got %d", len(prompts))
	}
	for _, p := range prompts {
		if p.ID == "" {
			t.Error("expected seeded prompt to carry an id")
		}
	}

	// Seeding again must not duplicate rows.
	if err := SeedPrompts(ctx, db); err != nil {
		t.Fatalf("second SeedPrompts failed: %v", err)
	}
	prompts, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(prompts) != 2 {
		t.Errorf("expected seeding to be idempotent, got %d rows", len(prompts))
	}
}

func TestPingContext(t *testing.T) {
	db := openTestDB(t)
	if err := db.PingContext(context.Background()); err != nil {
		t.Fatalf("PingContext failed: %v", err)
	}
}
