// Package anthropic adapts the Anthropic Messages API to the
// domain.LanguageModelProvider port.
package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// MessagesClient is the subset of the Anthropic SDK used by the provider. It is
// satisfied by *sdk.MessageService.
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// LanguageModelProvider implements domain.LanguageModelProvider with Claude models.
type LanguageModelProvider struct {
	messages     MessagesClient
	defaultModel string
}

// NewLanguageModelProvider creates a new provider.
func NewLanguageModelProvider(messages MessagesClient, defaultModel string) LanguageModelProvider {
	return LanguageModelProvider{messages: messages, defaultModel: defaultModel}
}

// SendMessage issues a single-turn Messages request. API errors reported by
// Anthropic are unsuccessful responses; anything else is returned as an error.
func (p LanguageModelProvider) SendMessage(ctx context.Context, prompt string, systemInstructions string, opts domain.GenerationOptions) (domain.LanguageModelResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	model := opts.Model
	if model == "" {
		model = p.defaultModel
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(model),
		MaxTokens: int64(opts.MaxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
		Temperature: sdk.Float(opts.Temperature),
	}
	if systemInstructions != "" {
		params.System = []sdk.TextBlockParam{{Text: systemInstructions}}
	}

	msg, err := p.messages.New(spanCtx, params)
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		message := apiErrorMessage(apiErr)
		telemetry.RecordErrorAndStatus(span, errors.New(message))
		return domain.LanguageModelResponse{Success: false, ErrorMessage: message}, nil
	}
	if err != nil {
		err = fmt.Errorf("anthropic messages.new: %w", err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LanguageModelResponse{}, err
	}
	if msg == nil {
		return domain.LanguageModelResponse{Success: false, ErrorMessage: "anthropic returned an empty message"}, nil
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	telemetry.RecordErrorAndStatus(span, nil)
	return domain.LanguageModelResponse{Success: true, Content: sb.String()}, nil
}

// apiErrorMessage renders an API error without touching its request and
// response, which are absent on errors built outside the SDK transport.
func apiErrorMessage(apiErr *sdk.Error) string {
	var payload struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if raw := apiErr.RawJSON(); raw != "" && json.Unmarshal([]byte(raw), &payload) == nil && payload.Error.Message != "" {
		return fmt.Sprintf("anthropic returned %d: %s", apiErr.StatusCode, payload.Error.Message)
	}
	return fmt.Sprintf("anthropic returned %d", apiErr.StatusCode)
}

// InitLanguageModelProvider registers the Anthropic provider as the
// domain.LanguageModelProvider when LLM_PROVIDER is "anthropic".
type InitLanguageModelProvider struct {
	Provider string `config:"LLM_PROVIDER" default:"modelrunner"`
	APIKey   string `config:"ANTHROPIC_API_KEY" default:"-"`
	Model    string `config:"ANTHROPIC_MODEL" default:"claude-sonnet-4-5"`
}

// Initialize registers the LanguageModelProvider.
func (i InitLanguageModelProvider) Initialize(ctx context.Context) (context.Context, error) {
	if i.Provider != "anthropic" {
		return ctx, nil
	}
	if i.APIKey == "" || i.APIKey == "-" {
		return ctx, domain.NewConfigurationErr("ANTHROPIC_API_KEY is required when LLM_PROVIDER is anthropic")
	}
	client := sdk.NewClient(option.WithAPIKey(i.APIKey))
	depend.Register[domain.LanguageModelProvider](NewLanguageModelProvider(&client.Messages, i.Model))
	return ctx, nil
}
