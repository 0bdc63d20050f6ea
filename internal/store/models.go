package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video is the pipeline record tracking one uploaded audio artifact through
// ingestion, transcription, and completion.
type Video struct {
	// ID is assigned once at creation and is the sole external handle for
	// all subsequent stage calls.
	ID string `gorm:"primaryKey" json:"id"`
	// Name is the original filename supplied by the uploader; cosmetic only.
	Name string `gorm:"not null" json:"name"`
	// Path is the storage location of the persisted audio artifact. Set once
	// at ingestion, never mutated afterward.
	Path string `gorm:"not null" json:"path"`
	// Transcription is absent until the transcription stage succeeds.
	Transcription *string `json:"transcription,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BeforeCreate assigns a fresh UUID when none was provided.
func (v *Video) BeforeCreate(_ *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// Prompt is a read-only reusable completion template. The template text
// contains the placeholder token that gets substituted with a transcription.
type Prompt struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Template string `gorm:"not null" json:"template"`
}

// BeforeCreate assigns a fresh UUID when none was provided.
func (p *Prompt) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
