package modelrunner

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// LanguageModelProvider adapts DRMAPIClient to domain.LanguageModelProvider.
type LanguageModelProvider struct {
	client       DRMAPIClient
	defaultModel string
}

// NewLanguageModelProvider creates a new adapter. defaultModel is used when the
// request does not name a model.
func NewLanguageModelProvider(client DRMAPIClient, defaultModel string) LanguageModelProvider {
	return LanguageModelProvider{client: client, defaultModel: defaultModel}
}

// SendMessage implements domain.LanguageModelProvider. Non-2xx answers and
// empty completions are unsuccessful responses; transport failures are errors.
func (p LanguageModelProvider) SendMessage(ctx context.Context, prompt string, systemInstructions string, opts domain.GenerationOptions) (domain.LanguageModelResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	req := ChatRequest{
		Model:    opts.Model,
		Messages: make([]ChatMessage, 0, 2),
	}
	if req.Model == "" {
		req.Model = p.defaultModel
	}
	if opts.MaxTokens > 0 {
		req.MaxTokens = &opts.MaxTokens
	}
	temperature := opts.Temperature
	req.Temperature = &temperature

	if systemInstructions != "" {
		req.Messages = append(req.Messages, ChatMessage{Role: "system", Content: systemInstructions})
	}
	req.Messages = append(req.Messages, ChatMessage{Role: "user", Content: prompt})

	resp, err := p.client.Chat(spanCtx, req)
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LanguageModelResponse{
			Success:      false,
			ErrorMessage: fmt.Sprintf("model runner returned %d: %s", apiErr.StatusCode, apiErr.Message()),
		}, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.LanguageModelResponse{}, err
	}

	if len(resp.Choices) == 0 {
		return domain.LanguageModelResponse{
			Success:      false,
			ErrorMessage: "no choices in response",
		}, nil
	}

	return domain.LanguageModelResponse{
		Success: true,
		Content: resp.Choices[0].Message.Content,
	}, nil
}

// InitLanguageModelProvider registers the model runner as the domain.LanguageModelProvider
// unless another provider is selected.
type InitLanguageModelProvider struct {
	HttpClient *http.Client `resolve:""`
	Provider   string       `config:"LLM_PROVIDER" default:"modelrunner"`
	LLMHost    string       `config:"LLM_MODEL_HOST" default:"http://localhost:12434/engines"`
	Model      string       `config:"LLM_MODEL" default:"ai/gpt-oss"`
}

// Initialize registers the LanguageModelProvider.
func (i InitLanguageModelProvider) Initialize(ctx context.Context) (context.Context, error) {
	if i.Provider != "modelrunner" {
		return ctx, nil
	}
	depend.Register[domain.LanguageModelProvider](NewLanguageModelProvider(
		NewDRMAPIClient(i.LLMHost, "", i.HttpClient),
		i.Model,
	))
	return ctx, nil
}
