package llm

// Message represents a single chat message.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// RoleUser is the chat role for caller-authored messages.
const RoleUser = "user"

// CompletionRequest is the universal input for completion backends.
type CompletionRequest struct {
	// Model overrides the provider's default model.
	Model string `json:"model,omitempty"`
	// Messages is the conversation history.
	Messages []Message `json:"messages"`
	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float32 `json:"temperature,omitempty"`
	// MaxTokens limits the response length. 0 means provider default.
	MaxTokens int `json:"max_tokens,omitempty"`
}

// CompletionResponse is the universal output from completion backends.
type CompletionResponse struct {
	// Content is the generated text.
	Content string `json:"content"`
	// Model is the model that produced the response.
	Model string `json:"model"`
	// Usage reports token consumption.
	Usage Usage `json:"usage"`
}

// StreamChunk is a single piece of a streamed response.
type StreamChunk struct {
	// Content is the text fragment.
	Content string `json:"content"`
	// Done indicates this is the final chunk.
	Done bool `json:"done"`
	// Err is set when a streaming error occurs.
	Err error `json:"-"`
}

// Usage reports token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
