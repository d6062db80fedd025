package infrastructure

import (
	"context"
	"errors"
)

// ErrEmptyCompletion is returned when the model service answers without any choice.
var ErrEmptyCompletion = errors.New("model returned no completion choices")

// CompletionRequest is one system-framed, single user-turn exchange.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}

// ChatClient defines the model service every role talks to.
type ChatClient interface {
	// Complete sends the request and returns the raw reply text.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// AIConfig holds configuration for the model service binding.
type AIConfig struct {
	APIKey  string `json:"-"`
	Model   string `json:"model"`
	BaseURL string `json:"base_url,omitempty"`
}
