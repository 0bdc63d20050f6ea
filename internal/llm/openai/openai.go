// Package openai implements the completion provider using the OpenAI chat API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"io"

	goopenai "github.com/sashabaranov/go-openai"

	"upload-ai-api/internal/llm"
)

// ProviderName is the registered name for the OpenAI completion provider.
const ProviderName = "openai-chat"

const defaultModel = goopenai.GPT3Dot5Turbo16K

// Config holds configuration for the OpenAI completion provider.
type Config struct {
	// APIKey authenticates against the OpenAI API.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// BaseURL overrides the API endpoint, e.g. for an OpenAI-compatible proxy.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Model is the chat model. Defaults to gpt-3.5-turbo-16k.
	Model string `yaml:"model" mapstructure:"model"`
}

// Provider implements llm.Provider using the OpenAI chat completion API.
type Provider struct {
	client *goopenai.Client
	model  string
}

// NewProvider creates a new OpenAI completion provider.
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

// Complete sends a completion request and returns the full response.
func (p *Provider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	resp, err := p.client.CreateChatCompletion(ctx, p.buildChatRequest(req, false))
	if err != nil {
		return nil, fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai completion: response carried no choices")
	}

	return &llm.CompletionResponse{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
		Usage: llm.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// Stream sends a completion request and relays the token stream on a channel.
func (p *Provider) Stream(ctx context.Context, req llm.CompletionRequest) (<-chan llm.StreamChunk, error) {
	stream, err := p.client.CreateChatCompletionStream(ctx, p.buildChatRequest(req, true))
	if err != nil {
		return nil, fmt.Errorf("openai completion stream: %w", err)
	}

	ch := make(chan llm.StreamChunk)
	go func() {
		defer close(ch)
		defer stream.Close()

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				select {
				case ch <- llm.StreamChunk{Done: true}:
				case <-ctx.Done():
				}
				return
			}
			if err != nil {
				select {
				case ch <- llm.StreamChunk{Err: err}:
				case <-ctx.Done():
				}
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}

			chunk := llm.StreamChunk{Content: resp.Choices[0].Delta.Content}
			select {
			case ch <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

func (p *Provider) buildChatRequest(req llm.CompletionRequest, stream bool) goopenai.ChatCompletionRequest {
	model := req.Model
	if model == "" {
		model = p.model
	}

	messages := make([]goopenai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = goopenai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	return goopenai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stream:      stream,
	}
}

// compile-time check
var _ llm.Provider = (*Provider)(nil)
