package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
)

func toError(err error) ErrorResp {
	var (
		validationErr *domain.ValidationErr
		missingErr    *domain.MissingParameterErr
		notFoundErr   *domain.NotFoundErr
		downstreamErr *domain.DownstreamErr
	)
	errResp := ErrorResp{}
	switch {
	case errors.As(err, &validationErr), errors.As(err, &missingErr):
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = err.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = err.Error()
	case errors.As(err, &downstreamErr):
		errResp.Error.Code = DOWNSTREAMFAILED
		errResp.Error.Message = downstreamErr.Error()
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func badRequest(message string) ErrorResp {
	return ErrorResp{Error: Error{Code: BADREQUEST, Message: message}}
}

func toAgent(cfg domain.AgentConfiguration) Agent {
	tools := cfg.EnabledTools
	if tools == nil {
		tools = []string{}
	}
	return Agent{
		Name:        cfg.Name,
		Description: cfg.Description,
		Tools:       tools,
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Streaming:   cfg.StreamingEnabled,
	}
}

func toTool(def domain.ToolDefinition) Tool {
	t := Tool{
		Name:        def.Name,
		Description: def.Description,
		Hint:        def.ComposeHint(),
		Input:       make(map[string]ToolField, len(def.Input.Fields)),
	}
	for name, f := range def.Input.Fields {
		t.Input[name] = ToolField{
			Type:        f.Type,
			Description: f.Description,
			Required:    f.Required,
		}
	}
	return t
}

func toChunk(c domain.AgentStreamChunk) Chunk {
	return Chunk{
		Kind:     c.Kind(),
		Content:  c.Content(),
		Terminal: c.Terminal(),
		Metadata: c.Metadata(),
	}
}

func toHistory(in []HistoryMessage) []domain.ConversationMessage {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.ConversationMessage, 0, len(in))
	for _, m := range in {
		out = append(out, domain.ConversationMessage{
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}
	return out
}
