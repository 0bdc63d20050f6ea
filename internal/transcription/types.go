package transcription

import "io"

// Request holds parameters for a transcription call.
type Request struct {
	// Audio is the audio content, consumed as a stream.
	Audio io.Reader `json:"-"`
	// Filename is the artifact name, used by backends that infer the
	// container format from the extension.
	Filename string `json:"filename"`
	// Language is the expected language of the audio (e.g. "pt").
	Language string `json:"language,omitempty"`
	// Prompt is a free-text priming hint forwarded verbatim to the backend.
	Prompt string `json:"prompt,omitempty"`
	// Temperature controls decoding randomness. The pipeline pins this to 0.
	Temperature float32 `json:"temperature,omitempty"`
}

// Response holds the result of a transcription call.
type Response struct {
	// Text is the full transcription text.
	Text string `json:"text"`
}
