// Package config loads service configuration from config.yml, .env files,
// and UPLOADAI_* environment variables.
package config

import (
	"fmt"

	"upload-ai-api/internal/logger"
	"upload-ai-api/internal/server"
	"upload-ai-api/internal/storage"
	"upload-ai-api/internal/store"
)

// OpenAIConfig configures the speech-to-text and completion collaborators.
type OpenAIConfig struct {
	// APIKey authenticates against the OpenAI API. Required.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// BaseURL overrides the API endpoint, e.g. for an OpenAI-compatible proxy.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// TranscriptionModel is the speech-to-text model. Defaults to whisper-1.
	TranscriptionModel string `yaml:"transcription_model" mapstructure:"transcription_model"`
	// CompletionModel is the chat model. Defaults to gpt-3.5-turbo-16k.
	CompletionModel string `yaml:"completion_model" mapstructure:"completion_model"`
}

// Validate checks the OpenAI configuration.
func (c *OpenAIConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai.api_key is required")
	}
	return nil
}

// Config is the full service configuration.
type Config struct {
	Server   server.Config  `yaml:"server" mapstructure:"server"`
	Database store.Config   `yaml:"database" mapstructure:"database"`
	Storage  storage.Config `yaml:"storage" mapstructure:"storage"`
	OpenAI   OpenAIConfig   `yaml:"openai" mapstructure:"openai"`
	Log      logger.Config  `yaml:"log" mapstructure:"log"`
}

// ApplyDefaults applies defaults section by section.
func (c *Config) ApplyDefaults() {
	c.Server.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.Storage.ApplyDefaults()
	c.Log.ApplyDefaults()
}

// Validate validates all sections.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	return c.OpenAI.Validate()
}
