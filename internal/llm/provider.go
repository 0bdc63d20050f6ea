// Package llm defines the text-completion capability interface and common
// types for interacting with completion backends.
package llm

import "context"

// Provider is the interface that completion backends must implement.
type Provider interface {
	// Name returns the backend identifier.
	Name() string

	// Complete sends a completion request and returns the full response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// Stream sends a completion request and returns a channel of streamed
	// chunks in arrival order. The channel is closed when the stream ends or
	// an error occurs; a chunk with Err set is the last one delivered.
	Stream(ctx context.Context, req CompletionRequest) (<-chan StreamChunk, error)
}
