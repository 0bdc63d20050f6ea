// Package transcription defines the speech-to-text capability interface and
// common types for interacting with transcription backends.
package transcription

import "context"

// Provider is the interface that speech-to-text backends must implement.
type Provider interface {
	// Name returns the backend identifier.
	Name() string

	// Transcribe sends audio for transcription and returns the result.
	Transcribe(ctx context.Context, req Request) (*Response, error)
}
