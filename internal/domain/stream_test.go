package domain

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgentStreamChunk_Variants(t *testing.T) {
	tests := map[string]struct {
		chunk        AgentStreamChunk
		wantKind     AgentStreamChunkKind
		wantTerminal bool
		wantMetadata map[string]any
	}{
		"reasoning": {
			chunk:    NewReasoningChunk("Analyzing request: hi"),
			wantKind: AgentStreamChunkKind_Reasoning,
		},
		"tool-use": {
			chunk:        NewToolUseChunk("Using tool: glob_search", "glob_search"),
			wantKind:     AgentStreamChunkKind_ToolUse,
			wantMetadata: map[string]any{ChunkMetadata_ToolName: "glob_search"},
		},
		"tool-result-success": {
			chunk:    NewToolResultChunk("glob_search", NewToolSuccess("a.go")),
			wantKind: AgentStreamChunkKind_ToolResult,
			wantMetadata: map[string]any{
				ChunkMetadata_ToolName: "glob_search",
				ChunkMetadata_Success:  true,
			},
		},
		"tool-result-failure": {
			chunk:    NewToolResultChunk("glob_search", NewToolFailure(ToolErrorKind_NotFound, "missing")),
			wantKind: AgentStreamChunkKind_ToolResult,
			wantMetadata: map[string]any{
				ChunkMetadata_ToolName:  "glob_search",
				ChunkMetadata_Success:   false,
				ChunkMetadata_ErrorKind: "not_found",
			},
		},
		"response": {
			chunk:    NewResponseChunk("answer"),
			wantKind: AgentStreamChunkKind_Response,
		},
		"error": {
			chunk:        NewErrorChunk("failed"),
			wantKind:     AgentStreamChunkKind_Error,
			wantTerminal: true,
		},
		"complete": {
			chunk:        NewCompleteChunk("done"),
			wantKind:     AgentStreamChunkKind_Complete,
			wantTerminal: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.chunk.Kind())
			assert.Equal(t, tt.wantTerminal, tt.chunk.Terminal())
			assert.Equal(t, tt.wantMetadata, tt.chunk.Metadata())
		})
	}
}

func TestToolResultChunk_Accessors(t *testing.T) {
	chunk := NewToolResultChunk("get_ticket", NewToolFailure(ToolErrorKind_NotFound, "ticket ABC-1 not found"))
	assert.Equal(t, "get_ticket", chunk.ToolName())
	assert.False(t, chunk.Success())
	assert.Equal(t, "ticket ABC-1 not found", chunk.Content())

	md := chunk.Metadata()
	md[ChunkMetadata_ToolName] = "mutated"
	assert.Equal(t, "get_ticket", chunk.ToolName())
}

func TestCollectChunks(t *testing.T) {
	tests := map[string]struct {
		chunks      []AgentStreamChunk
		wantOutcome StreamOutcome
	}{
		"complete": {
			chunks:      []AgentStreamChunk{NewReasoningChunk("r"), NewResponseChunk("x"), NewCompleteChunk("done")},
			wantOutcome: StreamOutcome_Complete,
		},
		"error": {
			chunks:      []AgentStreamChunk{NewReasoningChunk("r"), NewErrorChunk("boom")},
			wantOutcome: StreamOutcome_Error,
		},
		"aborted": {
			chunks:      []AgentStreamChunk{NewReasoningChunk("r")},
			wantOutcome: StreamOutcome_Aborted,
		},
		"empty": {
			chunks:      nil,
			wantOutcome: StreamOutcome_Aborted,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var stream iter.Seq[AgentStreamChunk] = slices.Values(tt.chunks)
			got, outcome := CollectChunks(stream)
			assert.Equal(t, tt.chunks, got)
			assert.Equal(t, tt.wantOutcome, outcome)
		})
	}
}
