package usecases

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = log.New(io.Discard, "", 0)

func newMockTool(t *testing.T, name string) *domain.MockTool {
	tool := domain.NewMockTool(t)
	tool.EXPECT().
		Definition().
		Return(domain.ToolDefinition{Name: name, Description: name}).
		Maybe()
	return tool
}

func testAgentConfig(tools ...string) domain.AgentConfiguration {
	return domain.AgentConfiguration{
		Name:         "code-explorer",
		Instructions: "You explore code bases.",
		EnabledTools: tools,
		Model:        "ai/gpt-oss",
		MaxTokens:    800,
		Temperature:  0.3,
	}
}

type chunkView struct {
	Kind     domain.AgentStreamChunkKind
	Content  string
	Terminal bool
}

func viewChunks(chunks []domain.AgentStreamChunk) []chunkView {
	views := make([]chunkView, 0, len(chunks))
	for _, c := range chunks {
		views = append(views, chunkView{Kind: c.Kind(), Content: c.Content(), Terminal: c.Terminal()})
	}
	return views
}

func TestAgentRuntimeImpl_CreateAgent(t *testing.T) {
	tests := map[string]struct {
		cfg         domain.AgentConfiguration
		toolNames   []string
		wantTools   []string
		expectedErr error
	}{
		"binds-tools-in-configuration-order": {
			cfg:       testAgentConfig("get_ticket", "glob_search"),
			toolNames: []string{"glob_search", "get_ticket", "code_search"},
			wantTools: []string{"get_ticket", "glob_search"},
		},
		"no-tools-is-legal": {
			cfg:       testAgentConfig(),
			toolNames: nil,
			wantTools: []string{},
		},
		"unregistered-tool": {
			cfg:       testAgentConfig("glob_search", "deploy"),
			toolNames: []string{"glob_search"},
			expectedErr: domain.NewConfigurationErr(
				"agent 'code-explorer' enables tool 'deploy' which is not registered",
			),
		},
		"invalid-temperature": {
			cfg: func() domain.AgentConfiguration {
				cfg := testAgentConfig()
				cfg.Temperature = 1.5
				return cfg
			}(),
			expectedErr: domain.NewConfigurationErr(
				"invalid agent configuration: temperature must be between 0.0 and 1.0",
			),
		},
		"empty-name": {
			cfg: func() domain.AgentConfiguration {
				cfg := testAgentConfig()
				cfg.Name = ""
				return cfg
			}(),
			expectedErr: domain.NewConfigurationErr(
				"invalid agent configuration: agent name cannot be empty",
			),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tools := make([]domain.Tool, 0, len(tt.toolNames))
			for _, n := range tt.toolNames {
				tools = append(tools, newMockTool(t, n))
			}

			runtime := NewAgentRuntimeImpl(domain.NewMockLanguageModelProvider(t), discardLogger, 0)
			agent, err := runtime.CreateAgent(tt.cfg, tools)
			assert.Equal(t, tt.expectedErr, err)
			if tt.expectedErr != nil {
				return
			}

			got := []string{}
			for _, tool := range agent.Tools() {
				got = append(got, tool.Definition().Name)
			}
			assert.Equal(t, tt.wantTools, got)
			assert.Equal(t, tt.cfg.Name, agent.Name())
			assert.Equal(t, tt.cfg.MaxTokens, agent.MaxTokens())
			assert.Equal(t, tt.cfg.Temperature, agent.Temperature())
		})
	}
}

func TestAgentRuntimeImpl_ExecuteAgent(t *testing.T) {
	tenantID := uuid.MustParse("6f1b8f7e-8a0b-4c1e-9d7e-1f2a3b4c5d6e")
	tctx := domain.NewToolExecutionContext(tenantID, "/workspaces/tenant", map[string]any{"pattern": "**/*.go"})
	history := []domain.ConversationMessage{
		{Role: domain.MessageRole_User, Content: "hi"},
		{Role: domain.MessageRole_Assistant, Content: "hello"},
	}
	expectedPrompt := "User: hi\nAssistant: hello\nUser: find the main package"
	expectedOpts := domain.GenerationOptions{Model: "ai/gpt-oss", MaxTokens: 800, Temperature: 0.3}

	tests := map[string]struct {
		enabledTools []string
		setupMocks   func(llm *domain.MockLanguageModelProvider, tools map[string]*domain.MockTool)
		wantChunks   []chunkView
		wantOutcome  domain.StreamOutcome
	}{
		"success-with-tool": {
			enabledTools: []string{"glob_search", "code_search"},
			setupMocks: func(llm *domain.MockLanguageModelProvider, tools map[string]*domain.MockTool) {
				tools["glob_search"].EXPECT().ValidateInput(tctx).Return(nil).Once()
				tools["glob_search"].EXPECT().
					ExecuteTool(mock.Anything, tctx).
					Return("cmd/main.go", nil).
					Once()
				llm.EXPECT().
					SendMessage(mock.Anything, expectedPrompt, "You explore code bases.", expectedOpts).
					Return(domain.LanguageModelResponse{Success: true, Content: "main is in cmd/main.go"}, nil).
					Once()
			},
			wantChunks: []chunkView{
				{Kind: domain.AgentStreamChunkKind_Reasoning, Content: "Analyzing request: find the main package"},
				{Kind: domain.AgentStreamChunkKind_ToolUse, Content: "Using tool: glob_search"},
				{Kind: domain.AgentStreamChunkKind_ToolResult, Content: "cmd/main.go"},
				{Kind: domain.AgentStreamChunkKind_Response, Content: "main is in cmd/main.go"},
				{Kind: domain.AgentStreamChunkKind_Complete, Content: "Agent execution completed successfully", Terminal: true},
			},
			wantOutcome: domain.StreamOutcome_Complete,
		},
		"success-without-tools": {
			setupMocks: func(llm *domain.MockLanguageModelProvider, _ map[string]*domain.MockTool) {
				llm.EXPECT().
					SendMessage(mock.Anything, expectedPrompt, mock.Anything, expectedOpts).
					Return(domain.LanguageModelResponse{Success: true, Content: "answer"}, nil).
					Once()
			},
			wantChunks: []chunkView{
				{Kind: domain.AgentStreamChunkKind_Reasoning, Content: "Analyzing request: find the main package"},
				{Kind: domain.AgentStreamChunkKind_Response, Content: "answer"},
				{Kind: domain.AgentStreamChunkKind_Complete, Content: "Agent execution completed successfully", Terminal: true},
			},
			wantOutcome: domain.StreamOutcome_Complete,
		},
		"tool-failure-is-not-terminal": {
			enabledTools: []string{"glob_search"},
			setupMocks: func(llm *domain.MockLanguageModelProvider, tools map[string]*domain.MockTool) {
				tools["glob_search"].EXPECT().
					ValidateInput(tctx).
					Return(domain.NewMissingParameterErr("pattern"))
				llm.EXPECT().
					SendMessage(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(domain.LanguageModelResponse{Success: true, Content: "answer"}, nil)
			},
			wantChunks: []chunkView{
				{Kind: domain.AgentStreamChunkKind_Reasoning, Content: "Analyzing request: find the main package"},
				{Kind: domain.AgentStreamChunkKind_ToolUse, Content: "Using tool: glob_search"},
				{Kind: domain.AgentStreamChunkKind_ToolResult, Content: "missing required parameter 'pattern'"},
				{Kind: domain.AgentStreamChunkKind_Response, Content: "answer"},
				{Kind: domain.AgentStreamChunkKind_Complete, Content: "Agent execution completed successfully", Terminal: true},
			},
			wantOutcome: domain.StreamOutcome_Complete,
		},
		"provider-error": {
			setupMocks: func(llm *domain.MockLanguageModelProvider, _ map[string]*domain.MockTool) {
				llm.EXPECT().
					SendMessage(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(domain.LanguageModelResponse{}, errors.New("dial tcp: connection refused"))
			},
			wantChunks: []chunkView{
				{Kind: domain.AgentStreamChunkKind_Reasoning, Content: "Analyzing request: find the main package"},
				{Kind: domain.AgentStreamChunkKind_Error, Content: "dial tcp: connection refused", Terminal: true},
			},
			wantOutcome: domain.StreamOutcome_Error,
		},
		"provider-unsuccessful": {
			setupMocks: func(llm *domain.MockLanguageModelProvider, _ map[string]*domain.MockTool) {
				llm.EXPECT().
					SendMessage(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(domain.LanguageModelResponse{Success: false, ErrorMessage: "model overloaded"}, nil)
			},
			wantChunks: []chunkView{
				{Kind: domain.AgentStreamChunkKind_Reasoning, Content: "Analyzing request: find the main package"},
				{Kind: domain.AgentStreamChunkKind_Error, Content: "model overloaded", Terminal: true},
			},
			wantOutcome: domain.StreamOutcome_Error,
		},
		"provider-unsuccessful-without-message": {
			setupMocks: func(llm *domain.MockLanguageModelProvider, _ map[string]*domain.MockTool) {
				llm.EXPECT().
					SendMessage(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(domain.LanguageModelResponse{Success: false}, nil)
			},
			wantChunks: []chunkView{
				{Kind: domain.AgentStreamChunkKind_Reasoning, Content: "Analyzing request: find the main package"},
				{Kind: domain.AgentStreamChunkKind_Error, Content: "The language model returned an unsuccessful response", Terminal: true},
			},
			wantOutcome: domain.StreamOutcome_Error,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			llm := domain.NewMockLanguageModelProvider(t)
			toolMocks := map[string]*domain.MockTool{}
			tools := []domain.Tool{}
			for _, n := range tt.enabledTools {
				toolMocks[n] = newMockTool(t, n)
				tools = append(tools, toolMocks[n])
			}
			tt.setupMocks(llm, toolMocks)

			runtime := NewAgentRuntimeImpl(llm, discardLogger, 0)
			agent, err := runtime.CreateAgent(testAgentConfig(tt.enabledTools...), tools)
			require.NoError(t, err)

			stream := runtime.ExecuteAgent(context.Background(), agent, "find the main package", history, WithToolExecutionContext(tctx))
			chunks, outcome := domain.CollectChunks(stream)

			assert.Equal(t, tt.wantChunks, viewChunks(chunks))
			assert.Equal(t, tt.wantOutcome, outcome)

			terminals := 0
			for _, c := range chunks {
				if c.Terminal() {
					terminals++
				}
			}
			assert.Equal(t, 1, terminals)
			assert.True(t, chunks[len(chunks)-1].Terminal())
		})
	}
}

func TestAgentRuntimeImpl_ExecuteAgent_IsLazy(t *testing.T) {
	llm := domain.NewMockLanguageModelProvider(t)
	runtime := NewAgentRuntimeImpl(llm, discardLogger, 0)
	agent, err := runtime.CreateAgent(testAgentConfig(), nil)
	require.NoError(t, err)

	// No expectations on llm: building the sequence must not call it.
	_ = runtime.ExecuteAgent(context.Background(), agent, "hello", nil)
}

func TestAgentRuntimeImpl_ExecuteAgent_Cancellation(t *testing.T) {
	tests := map[string]struct {
		enabledTools []string
		pacingDelay  time.Duration
		run          func(t *testing.T, runtime AgentRuntimeImpl, agent domain.Agent, llm *domain.MockLanguageModelProvider) []domain.AgentStreamChunk
		wantKinds    []domain.AgentStreamChunkKind
	}{
		"canceled-before-start": {
			run: func(t *testing.T, runtime AgentRuntimeImpl, agent domain.Agent, _ *domain.MockLanguageModelProvider) []domain.AgentStreamChunk {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				chunks, _ := domain.CollectChunks(runtime.ExecuteAgent(ctx, agent, "hello", nil))
				return chunks
			},
			wantKinds: nil,
		},
		"canceled-during-tool-phase": {
			enabledTools: []string{"glob_search"},
			pacingDelay:  time.Hour,
			run: func(t *testing.T, runtime AgentRuntimeImpl, agent domain.Agent, _ *domain.MockLanguageModelProvider) []domain.AgentStreamChunk {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				var chunks []domain.AgentStreamChunk
				for chunk := range runtime.ExecuteAgent(ctx, agent, "hello", nil) {
					chunks = append(chunks, chunk)
					if chunk.Kind() == domain.AgentStreamChunkKind_ToolUse {
						cancel()
					}
				}
				return chunks
			},
			wantKinds: []domain.AgentStreamChunkKind{
				domain.AgentStreamChunkKind_Reasoning,
				domain.AgentStreamChunkKind_ToolUse,
			},
		},
		"canceled-during-generation": {
			run: func(t *testing.T, runtime AgentRuntimeImpl, agent domain.Agent, llm *domain.MockLanguageModelProvider) []domain.AgentStreamChunk {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				llm.EXPECT().
					SendMessage(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, _, _ string, _ domain.GenerationOptions) (domain.LanguageModelResponse, error) {
						cancel()
						return domain.LanguageModelResponse{}, ctx.Err()
					})
				chunks, _ := domain.CollectChunks(runtime.ExecuteAgent(ctx, agent, "hello", nil))
				return chunks
			},
			wantKinds: []domain.AgentStreamChunkKind{
				domain.AgentStreamChunkKind_Reasoning,
			},
		},
		"consumer-stops-early": {
			run: func(t *testing.T, runtime AgentRuntimeImpl, agent domain.Agent, _ *domain.MockLanguageModelProvider) []domain.AgentStreamChunk {
				var chunks []domain.AgentStreamChunk
				for chunk := range runtime.ExecuteAgent(context.Background(), agent, "hello", nil) {
					chunks = append(chunks, chunk)
					break
				}
				return chunks
			},
			wantKinds: []domain.AgentStreamChunkKind{
				domain.AgentStreamChunkKind_Reasoning,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			llm := domain.NewMockLanguageModelProvider(t)
			tools := []domain.Tool{}
			for _, n := range tt.enabledTools {
				tools = append(tools, newMockTool(t, n))
			}
			runtime := NewAgentRuntimeImpl(llm, discardLogger, tt.pacingDelay)
			agent, err := runtime.CreateAgent(testAgentConfig(tt.enabledTools...), tools)
			require.NoError(t, err)

			chunks := tt.run(t, runtime, agent, llm)

			var kinds []domain.AgentStreamChunkKind
			for _, c := range chunks {
				kinds = append(kinds, c.Kind())
				assert.False(t, c.Terminal())
			}
			assert.Equal(t, tt.wantKinds, kinds)
		})
	}
}

func TestBuildAgentPrompt(t *testing.T) {
	t.Run("keeps-last-messages", func(t *testing.T) {
		var history []domain.ConversationMessage
		for i := range 12 {
			history = append(history, domain.ConversationMessage{
				Role:    domain.MessageRole_User,
				Content: fmt.Sprintf("m%d", i),
			})
		}

		prompt := BuildAgentPrompt(history, "latest")
		assert.Equal(t,
			"User: m2\nUser: m3\nUser: m4\nUser: m5\nUser: m6\nUser: m7\nUser: m8\nUser: m9\nUser: m10\nUser: m11\nUser: latest",
			prompt,
		)
	})

	t.Run("renders-role-labels", func(t *testing.T) {
		history := []domain.ConversationMessage{
			{Role: domain.MessageRole_ToolInvocation, Content: "glob_search **/*.go"},
			{Role: domain.MessageRole_ToolResult, Content: "main.go"},
		}
		assert.Equal(t,
			"Tool Call: glob_search **/*.go\nTool Result: main.go\nUser: next",
			BuildAgentPrompt(history, "next"),
		)
	})

	t.Run("no-history", func(t *testing.T) {
		assert.Equal(t, "User: hi", BuildAgentPrompt(nil, "hi"))
	})
}

func TestInitAgentRuntime_Initialize(t *testing.T) {
	i := InitAgentRuntime{
		LLM:    domain.NewMockLanguageModelProvider(t),
		Logger: discardLogger,
	}

	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	r, err := depend.Resolve[AgentRuntime]()
	require.NoError(t, err)
	assert.NotNil(t, r)
}
