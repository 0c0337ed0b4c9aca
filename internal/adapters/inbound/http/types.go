package http

import (
	"time"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
)

// ErrorCode is the machine readable code of an ErrorResp.
type ErrorCode string

const (
	BADREQUEST       ErrorCode = "BAD_REQUEST"
	NOTFOUND         ErrorCode = "NOT_FOUND"
	DOWNSTREAMFAILED ErrorCode = "DOWNSTREAM_FAILED"
	INTERNALERROR    ErrorCode = "INTERNAL_ERROR"
)

// Error is the body of an ErrorResp.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp is returned by every endpoint on failure.
type ErrorResp struct {
	Error Error `json:"error"`
}

// Agent is the public view of an agent configuration.
type Agent struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tools       []string `json:"tools"`
	Model       string   `json:"model,omitempty"`
	MaxTokens   int      `json:"max_tokens"`
	Temperature float64  `json:"temperature"`
	Streaming   bool     `json:"streaming"`
}

// AgentListResp is the body of GET /api/v1/agents.
type AgentListResp struct {
	Agents []Agent `json:"agents"`
}

// HistoryMessage is one prior conversation entry sent by the caller.
type HistoryMessage struct {
	Role      domain.MessageRole `json:"role"`
	Content   string             `json:"content"`
	Timestamp time.Time          `json:"timestamp"`
}

// ExecuteAgentReq is the body of POST /api/v1/agents/{name}/executions.
type ExecuteAgentReq struct {
	Message    string           `json:"message"`
	History    []HistoryMessage `json:"history,omitempty"`
	Parameters map[string]any   `json:"parameters,omitempty"`
	// Stream overrides the agent's streaming setting when present.
	Stream *bool `json:"stream,omitempty"`
}

// Chunk is the wire form of one agent stream chunk.
type Chunk struct {
	Kind     domain.AgentStreamChunkKind `json:"kind"`
	Content  string                      `json:"content"`
	Terminal bool                        `json:"terminal"`
	Metadata map[string]any              `json:"metadata,omitempty"`
}

// ExecuteAgentResp is the collected result of a non streaming execution.
type ExecuteAgentResp struct {
	Agent   string               `json:"agent"`
	Outcome domain.StreamOutcome `json:"outcome"`
	Chunks  []Chunk              `json:"chunks"`
}

// ToolField describes one tool input field.
type ToolField struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
}

// Tool is the public view of a tool definition.
type Tool struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Hint        string               `json:"hint"`
	Input       map[string]ToolField `json:"input"`
}

// ToolListResp is the body of GET /api/v1/tools.
type ToolListResp struct {
	Tools []Tool `json:"tools"`
}

// ExecuteToolReq is the body of POST /api/v1/tools/{name}/executions.
type ExecuteToolReq struct {
	Parameters map[string]any `json:"parameters"`
}

// AutoImplementationResp is the body of GET /api/v1/tickets/{id}/auto-implementation.
type AutoImplementationResp struct {
	Enabled bool `json:"enabled"`
}
