package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"upload-ai-api/internal/apperrors"
)

// VideoRepository persists and reads pipeline records.
type VideoRepository struct {
	db *DB
}

// NewVideoRepository creates a VideoRepository backed by db.
func NewVideoRepository(db *DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create inserts a new pipeline record. The ID is assigned on insert when empty.
func (r *VideoRepository) Create(ctx context.Context, video *Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

// FindByID resolves a pipeline record or returns a NotFound error.
func (r *VideoRepository) FindByID(ctx context.Context, id string) (*Video, error) {
	var video Video
	err := r.db.WithContext(ctx).First(&video, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("video", id)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return &video, nil
}

// UpdateTranscription sets the transcription text on a record. The write is a
// single atomic UPDATE; concurrent writers race last-write-wins.
func (r *VideoRepository) UpdateTranscription(ctx context.Context, id, transcription string) error {
	res := r.db.WithContext(ctx).Model(&Video{}).Where("id = ?", id).Update("transcription", transcription)
	if res.Error != nil {
		return apperrors.DatabaseError(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("video", id)
	}
	return nil
}

// PromptRepository reads the static prompt templates.
type PromptRepository struct {
	db *DB
}

// NewPromptRepository creates a PromptRepository backed by db.
func NewPromptRepository(db *DB) *PromptRepository {
	return &PromptRepository{db: db}
}

// List returns all prompt templates.
func (r *PromptRepository) List(ctx context.Context) ([]Prompt, error) {
	var prompts []Prompt
	if err := r.db.WithContext(ctx).Find(&prompts).Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return prompts, nil
}
