// Package openai implements the transcription provider using the OpenAI
// Whisper API.
package openai

import (
	"context"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"

	"upload-ai-api/internal/transcription"
)

// ProviderName is the registered name for the OpenAI Whisper provider.
const ProviderName = "openai-whisper"

const defaultModel = goopenai.Whisper1

// Config holds configuration for the OpenAI transcription provider.
type Config struct {
	// APIKey authenticates against the OpenAI API.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// BaseURL overrides the API endpoint, e.g. for an OpenAI-compatible proxy.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Model is the transcription model. Defaults to whisper-1.
	Model string `yaml:"model" mapstructure:"model"`
}

// Provider implements transcription.Provider using the OpenAI audio API.
type Provider struct {
	client *goopenai.Client
	model  string
}

// NewProvider creates a new OpenAI transcription provider.
func NewProvider(cfg Config) *Provider {
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Provider{
		client: goopenai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// Transcribe streams the audio to the Whisper API and returns the text.
func (p *Provider) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Response, error) {
	audioReq := goopenai.AudioRequest{
		Model:       p.model,
		Reader:      req.Audio,
		FilePath:    req.Filename,
		Language:    req.Language,
		Prompt:      req.Prompt,
		Temperature: req.Temperature,
		Format:      goopenai.AudioResponseFormatJSON,
	}

	resp, err := p.client.CreateTranscription(ctx, audioReq)
	if err != nil {
		return nil, fmt.Errorf("openai transcription: %w", err)
	}

	return &transcription.Response{Text: resp.Text}, nil
}

// compile-time check
var _ transcription.Provider = (*Provider)(nil)
