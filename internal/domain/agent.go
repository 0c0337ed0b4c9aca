package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// AgentConfiguration is the declarative description of an agent.
type AgentConfiguration struct {
	Name             string   `yaml:"name" json:"name"`
	Description      string   `yaml:"description" json:"description,omitempty"`
	Instructions     string   `yaml:"instructions" json:"instructions"`
	EnabledTools     []string `yaml:"tools" json:"tools"`
	Model            string   `yaml:"model" json:"model,omitempty"`
	MaxTokens        int      `yaml:"max_tokens" json:"max_tokens"`
	Temperature      float64  `yaml:"temperature" json:"temperature"`
	StreamingEnabled bool     `yaml:"streaming" json:"streaming"`
}

// Validate checks the configuration scalars and the enabled tool list.
func (c AgentConfiguration) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationErr("agent name cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return NewValidationErr("max tokens must be greater than 0")
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return NewValidationErr("temperature must be between 0.0 and 1.0")
	}

	seen := make(map[string]struct{}, len(c.EnabledTools))
	for _, name := range c.EnabledTools {
		if strings.TrimSpace(name) == "" {
			return NewValidationErr("enabled tool names cannot be empty")
		}
		if _, dup := seen[name]; dup {
			return NewValidationErr(fmt.Sprintf("tool '%s' is enabled more than once", name))
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Agent is a runnable agent assembled from a configuration and its tools.
// It is immutable once created.
type Agent struct {
	name             string
	instructions     string
	model            string
	maxTokens        int
	temperature      float64
	streamingEnabled bool
	tools            []Tool
}

// NewAgent assembles an agent. Callers are expected to have validated cfg and
// resolved tools in the order of cfg.EnabledTools.
func NewAgent(cfg AgentConfiguration, tools []Tool) Agent {
	return Agent{
		name:             cfg.Name,
		instructions:     cfg.Instructions,
		model:            cfg.Model,
		maxTokens:        cfg.MaxTokens,
		temperature:      cfg.Temperature,
		streamingEnabled: cfg.StreamingEnabled,
		tools:            append([]Tool(nil), tools...),
	}
}

// Name returns the agent name.
func (a Agent) Name() string { return a.name }

// Instructions returns the system instructions.
func (a Agent) Instructions() string { return a.instructions }

// Model returns the configured model, empty for the provider default.
func (a Agent) Model() string { return a.model }

// MaxTokens returns the generation token limit.
func (a Agent) MaxTokens() int { return a.maxTokens }

// Temperature returns the sampling temperature.
func (a Agent) Temperature() float64 { return a.temperature }

// StreamingEnabled reports whether the agent streams its response.
func (a Agent) StreamingEnabled() bool { return a.streamingEnabled }

// Tools returns a copy of the enabled tools in configuration order.
func (a Agent) Tools() []Tool {
	return append([]Tool(nil), a.tools...)
}

// WithModel returns a copy of the agent using model.
func (a Agent) WithModel(model string) Agent {
	a.model = model
	a.tools = append([]Tool(nil), a.tools...)
	return a
}

// MessageRole tags the author of a conversation message.
type MessageRole string

const (
	MessageRole_User           MessageRole = "user"
	MessageRole_Assistant      MessageRole = "assistant"
	MessageRole_ToolInvocation MessageRole = "tool_invocation"
	MessageRole_ToolResult     MessageRole = "tool_result"
)

// Label returns the human label used when rendering the role into a prompt.
func (r MessageRole) Label() string {
	switch r {
	case MessageRole_User:
		return "User"
	case MessageRole_Assistant:
		return "Assistant"
	case MessageRole_ToolInvocation:
		return "Tool Call"
	case MessageRole_ToolResult:
		return "Tool Result"
	default:
		return "Unknown"
	}
}

// ConversationMessage is one entry of a conversation history. The history is
// owned by the caller; the runtime only reads it.
type ConversationMessage struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// AgentCatalog provides the declared agent configurations.
type AgentCatalog interface {
	// ListAgentConfigurations returns every configuration sorted by name.
	ListAgentConfigurations(ctx context.Context) ([]AgentConfiguration, error)

	// GetAgentConfiguration returns the configuration with the given name.
	GetAgentConfiguration(ctx context.Context, name string) (AgentConfiguration, bool, error)
}
