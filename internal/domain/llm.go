package domain

import "context"

// GenerationOptions holds per-call generation settings.
type GenerationOptions struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// LanguageModelResponse is the outcome of one language-model call. A call
// either succeeds with Content or fails with ErrorMessage.
type LanguageModelResponse struct {
	Success      bool
	Content      string
	ErrorMessage string
}

// LanguageModelProvider sends one prompt to a language model.
type LanguageModelProvider interface {
	// SendMessage returns an error only for transport-level failures; a model
	// that answers with a failure yields Success=false.
	SendMessage(ctx context.Context, prompt, systemInstructions string, opts GenerationOptions) (LanguageModelResponse, error)
}
