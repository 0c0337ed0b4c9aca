package usecases

import (
	"context"
	"fmt"
	"iter"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	reasoningChunkPrefix    = "Analyzing request: "
	toolUseChunkPrefix      = "Using tool: "
	completeChunkMessage    = "Agent execution completed successfully"
	unsuccessfulLLMFallback = "The language model returned an unsuccessful response"
)

// executeAgentParams holds the optional parameters of an agent execution.
type executeAgentParams struct {
	toolContext domain.ToolExecutionContext
}

// ExecuteAgentOption defines a function type for specifying options when executing an agent.
type ExecuteAgentOption func(*executeAgentParams)

// WithToolExecutionContext sets the context handed to the tools invoked during the execution.
func WithToolExecutionContext(tctx domain.ToolExecutionContext) ExecuteAgentOption {
	return func(p *executeAgentParams) {
		p.toolContext = tctx
	}
}

// AgentRuntime creates and executes agents.
type AgentRuntime interface {
	// CreateAgent assembles a runnable agent. It performs no I/O.
	CreateAgent(cfg domain.AgentConfiguration, tools []domain.Tool) (domain.Agent, error)

	// ExecuteAgent returns the lazy chunk stream of one agent execution. Nothing
	// runs until the sequence is ranged over. A completed stream always ends with
	// exactly one terminal chunk; a canceled one ends without any.
	ExecuteAgent(ctx context.Context, agent domain.Agent, userMessage string, history []domain.ConversationMessage, opts ...ExecuteAgentOption) iter.Seq[domain.AgentStreamChunk]
}

// AgentRuntimeImpl is the implementation of the AgentRuntime.
type AgentRuntimeImpl struct {
	llm         domain.LanguageModelProvider
	logger      *log.Logger
	pacingDelay time.Duration
}

// NewAgentRuntimeImpl creates a new instance of AgentRuntimeImpl.
func NewAgentRuntimeImpl(llm domain.LanguageModelProvider, logger *log.Logger, pacingDelay time.Duration) AgentRuntimeImpl {
	return AgentRuntimeImpl{
		llm:         llm,
		logger:      logger,
		pacingDelay: pacingDelay,
	}
}

// CreateAgent validates cfg and binds the enabled tools, in configuration order.
func (r AgentRuntimeImpl) CreateAgent(cfg domain.AgentConfiguration, tools []domain.Tool) (domain.Agent, error) {
	if err := cfg.Validate(); err != nil {
		return domain.Agent{}, domain.NewConfigurationErr(fmt.Sprintf("invalid agent configuration: %s", err.Error()))
	}

	available := make(map[string]domain.Tool, len(tools))
	for _, tool := range tools {
		if tool == nil {
			continue
		}
		available[tool.Definition().Name] = tool
	}

	bound := make([]domain.Tool, 0, len(cfg.EnabledTools))
	for _, name := range cfg.EnabledTools {
		tool, ok := available[name]
		if !ok {
			return domain.Agent{}, domain.NewConfigurationErr(
				fmt.Sprintf("agent '%s' enables tool '%s' which is not registered", cfg.Name, name),
			)
		}
		bound = append(bound, tool)
	}

	return domain.NewAgent(cfg, bound), nil
}

// ExecuteAgent runs the agent pipeline: reasoning, tool phase, generation and completion.
func (r AgentRuntimeImpl) ExecuteAgent(ctx context.Context, agent domain.Agent, userMessage string, history []domain.ConversationMessage, opts ...ExecuteAgentOption) iter.Seq[domain.AgentStreamChunk] {
	params := executeAgentParams{}
	for _, opt := range opts {
		opt(&params)
	}
	history = append([]domain.ConversationMessage(nil), history...)

	return func(yield func(domain.AgentStreamChunk) bool) {
		spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
			attribute.String("agent", agent.Name()),
		))
		defer span.End()

		// emit hands a chunk to the consumer unless the execution was canceled.
		emit := func(chunk domain.AgentStreamChunk) bool {
			if spanCtx.Err() != nil {
				return false
			}
			return yield(chunk)
		}

		if !emit(domain.NewReasoningChunk(reasoningChunkPrefix + userMessage)) {
			return
		}

		if tools := agent.Tools(); len(tools) > 0 {
			// Static first-tool selection.
			tool := tools[0]
			toolName := tool.Definition().Name
			if !emit(domain.NewToolUseChunk(toolUseChunkPrefix+toolName, toolName)) {
				return
			}
			if !r.pace(spanCtx) {
				return
			}
			result := domain.ExecuteTool(spanCtx, tool, params.toolContext)
			RecordToolExecution(spanCtx, toolName, result)
			if !emit(domain.NewToolResultChunk(toolName, result)) {
				return
			}
		}

		if !r.pace(spanCtx) {
			return
		}

		prompt := BuildAgentPrompt(history, userMessage)
		start := time.Now()
		resp, err := r.llm.SendMessage(spanCtx, prompt, agent.Instructions(), domain.GenerationOptions{
			Model:       agent.Model(),
			MaxTokens:   agent.MaxTokens(),
			Temperature: agent.Temperature(),
		})
		RecordLLMRequestDuration(spanCtx, agent.Model(), time.Since(start), err == nil && resp.Success)

		if spanCtx.Err() != nil {
			telemetry.RecordErrorAndStatus(span, spanCtx.Err())
			return
		}
		if err != nil {
			telemetry.RecordErrorAndStatus(span, err)
			r.logger.Printf("AgentRuntime: language model call failed for agent %s: %v", agent.Name(), err)
			emit(domain.NewErrorChunk(err.Error()))
			return
		}
		if !resp.Success {
			message := strings.TrimSpace(resp.ErrorMessage)
			if message == "" {
				message = unsuccessfulLLMFallback
			}
			telemetry.RecordErrorAndStatus(span, fmt.Errorf("language model failure: %s", message))
			emit(domain.NewErrorChunk(message))
			return
		}

		if !emit(domain.NewResponseChunk(resp.Content)) {
			return
		}
		telemetry.RecordErrorAndStatus(span, nil)
		emit(domain.NewCompleteChunk(completeChunkMessage))
	}
}

// pace waits for the configured pacing delay. It returns false when ctx is
// canceled first.
func (r AgentRuntimeImpl) pace(ctx context.Context) bool {
	if r.pacingDelay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(r.pacingDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// BuildAgentPrompt renders the trailing history entries as "<Role>: <Content>"
// lines, in the given order, followed by the user message.
func BuildAgentPrompt(history []domain.ConversationMessage, userMessage string) string {
	start := max(0, len(history)-domain.MaxHistoryMessages)
	lines := make([]string, 0, len(history)-start+1)
	for _, msg := range history[start:] {
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Role.Label(), msg.Content))
	}
	lines = append(lines, "User: "+userMessage)
	return strings.Join(lines, "\n")
}

// InitAgentRuntime is the initializer for the AgentRuntime.
type InitAgentRuntime struct {
	LLM         domain.LanguageModelProvider `resolve:""`
	Logger      *log.Logger                  `resolve:""`
	PacingDelay time.Duration                `config:"AGENT_STREAM_PACING_DELAY" default:"0s"`
}

// Initialize registers the AgentRuntime in the dependency container.
func (i InitAgentRuntime) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AgentRuntime](NewAgentRuntimeImpl(i.LLM, i.Logger, i.PacingDelay))
	return ctx, nil
}
