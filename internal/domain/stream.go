package domain

import (
	"iter"
	"maps"
)

// AgentStreamChunkKind identifies the variant of an AgentStreamChunk.
type AgentStreamChunkKind string

const (
	AgentStreamChunkKind_Reasoning  AgentStreamChunkKind = "reasoning"
	AgentStreamChunkKind_ToolUse    AgentStreamChunkKind = "tool_use"
	AgentStreamChunkKind_ToolResult AgentStreamChunkKind = "tool_result"
	AgentStreamChunkKind_Response   AgentStreamChunkKind = "response"
	AgentStreamChunkKind_Error      AgentStreamChunkKind = "error"
	AgentStreamChunkKind_Complete   AgentStreamChunkKind = "complete"
)

// Metadata keys attached to stream chunks.
const (
	ChunkMetadata_ToolName  = "tool_name"
	ChunkMetadata_Success   = "success"
	ChunkMetadata_ErrorKind = "error_kind"
)

// AgentStreamChunk is one element of an agent execution stream. The set of
// implementations is closed: ReasoningChunk, ToolUseChunk, ToolResultChunk,
// ResponseChunk, ErrorChunk and CompleteChunk. Only ErrorChunk and
// CompleteChunk are terminal.
type AgentStreamChunk interface {
	Kind() AgentStreamChunkKind
	Content() string
	Terminal() bool
	Metadata() map[string]any
	sealed()
}

type chunkBase struct {
	content  string
	metadata map[string]any
}

func (c chunkBase) Content() string { return c.content }

// Metadata returns a copy of the chunk metadata, nil when there is none.
func (c chunkBase) Metadata() map[string]any {
	if len(c.metadata) == 0 {
		return nil
	}
	return maps.Clone(c.metadata)
}

func (chunkBase) sealed() {}

// ReasoningChunk echoes what the agent is about to do.
type ReasoningChunk struct{ chunkBase }

func (ReasoningChunk) Kind() AgentStreamChunkKind { return AgentStreamChunkKind_Reasoning }
func (ReasoningChunk) Terminal() bool             { return false }

// ToolUseChunk announces a tool invocation.
type ToolUseChunk struct{ chunkBase }

func (ToolUseChunk) Kind() AgentStreamChunkKind { return AgentStreamChunkKind_ToolUse }
func (ToolUseChunk) Terminal() bool             { return false }

// ToolName returns the invoked tool name.
func (c ToolUseChunk) ToolName() string {
	name, _ := c.metadata[ChunkMetadata_ToolName].(string)
	return name
}

// ToolResultChunk reports the outcome of a tool invocation.
type ToolResultChunk struct{ chunkBase }

func (ToolResultChunk) Kind() AgentStreamChunkKind { return AgentStreamChunkKind_ToolResult }
func (ToolResultChunk) Terminal() bool             { return false }

// ToolName returns the invoked tool name.
func (c ToolResultChunk) ToolName() string {
	name, _ := c.metadata[ChunkMetadata_ToolName].(string)
	return name
}

// Success reports whether the tool succeeded.
func (c ToolResultChunk) Success() bool {
	ok, _ := c.metadata[ChunkMetadata_Success].(bool)
	return ok
}

// ResponseChunk carries the generated model response.
type ResponseChunk struct{ chunkBase }

func (ResponseChunk) Kind() AgentStreamChunkKind { return AgentStreamChunkKind_Response }
func (ResponseChunk) Terminal() bool             { return false }

// ErrorChunk ends a stream early.
type ErrorChunk struct{ chunkBase }

func (ErrorChunk) Kind() AgentStreamChunkKind { return AgentStreamChunkKind_Error }
func (ErrorChunk) Terminal() bool             { return true }

// CompleteChunk ends a stream normally.
type CompleteChunk struct{ chunkBase }

func (CompleteChunk) Kind() AgentStreamChunkKind { return AgentStreamChunkKind_Complete }
func (CompleteChunk) Terminal() bool             { return true }

// NewReasoningChunk creates a ReasoningChunk.
func NewReasoningChunk(content string) ReasoningChunk {
	return ReasoningChunk{chunkBase{content: content}}
}

// NewToolUseChunk creates a ToolUseChunk for toolName.
func NewToolUseChunk(content, toolName string) ToolUseChunk {
	return ToolUseChunk{chunkBase{
		content:  content,
		metadata: map[string]any{ChunkMetadata_ToolName: toolName},
	}}
}

// NewToolResultChunk creates a ToolResultChunk from a tool result.
func NewToolResultChunk(toolName string, result ToolResult) ToolResultChunk {
	metadata := map[string]any{
		ChunkMetadata_ToolName: toolName,
		ChunkMetadata_Success:  result.Success,
	}
	if !result.Success {
		metadata[ChunkMetadata_ErrorKind] = string(result.ErrorKind)
	}
	return ToolResultChunk{chunkBase{content: result.Text(), metadata: metadata}}
}

// NewResponseChunk creates a ResponseChunk.
func NewResponseChunk(content string) ResponseChunk {
	return ResponseChunk{chunkBase{content: content}}
}

// NewErrorChunk creates a terminal ErrorChunk.
func NewErrorChunk(message string) ErrorChunk {
	return ErrorChunk{chunkBase{content: message}}
}

// NewCompleteChunk creates a terminal CompleteChunk.
func NewCompleteChunk(message string) CompleteChunk {
	return CompleteChunk{chunkBase{content: message}}
}

// StreamOutcome describes how an agent stream ended.
type StreamOutcome string

const (
	StreamOutcome_Complete StreamOutcome = "complete"
	StreamOutcome_Error    StreamOutcome = "error"
	// StreamOutcome_Aborted means the stream ended without a terminal chunk,
	// which only happens when the caller canceled the execution.
	StreamOutcome_Aborted StreamOutcome = "aborted"
)

// OutcomeOf classifies the last chunk of a finished stream.
func OutcomeOf(last AgentStreamChunk) StreamOutcome {
	switch last.(type) {
	case CompleteChunk:
		return StreamOutcome_Complete
	case ErrorChunk:
		return StreamOutcome_Error
	default:
		return StreamOutcome_Aborted
	}
}

// CollectChunks drains a stream and reports its outcome.
func CollectChunks(stream iter.Seq[AgentStreamChunk]) ([]AgentStreamChunk, StreamOutcome) {
	var chunks []AgentStreamChunk
	for chunk := range stream {
		chunks = append(chunks, chunk)
	}
	if len(chunks) == 0 {
		return chunks, StreamOutcome_Aborted
	}
	return chunks, OutcomeOf(chunks[len(chunks)-1])
}
