package usecases

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRunAgentImpl_Execute(t *testing.T) {
	tenantID := uuid.MustParse("0b7c4a52-3f0e-4d8e-9a61-5c2d7e8f9a10")
	workspacesRoot := t.TempDir()
	tenantRoot := filepath.Join(workspacesRoot, tenantID.String())

	explorer := domain.AgentConfiguration{
		Name:             "code-explorer",
		Instructions:     "Explore code.",
		EnabledTools:     []string{"glob_search"},
		Model:            "ai/gpt-oss",
		MaxTokens:        500,
		Temperature:      0.2,
		StreamingEnabled: true,
	}

	type mocks struct {
		catalog      *domain.MockAgentCatalog
		registry     *domain.MockToolRegistry
		tenantConfig *MockTenantConfigurationService
		llm          *domain.MockLanguageModelProvider
	}

	tests := map[string]struct {
		req           RunAgentRequest
		setupMocks    func(t *testing.T, m mocks)
		expectedErr   error
		wantStreaming bool
		wantKinds     []domain.AgentStreamChunkKind
	}{
		"success": {
			req: RunAgentRequest{
				TenantID:   tenantID,
				AgentName:  "code-explorer",
				Message:    "where is main?",
				Parameters: map[string]any{"pattern": "**/main.go"},
			},
			setupMocks: func(t *testing.T, m mocks) {
				tool := newMockTool(t, "glob_search")
				expectedTctx := domain.NewToolExecutionContext(tenantID, tenantRoot, map[string]any{"pattern": "**/main.go"})
				tool.EXPECT().ValidateInput(expectedTctx).Return(nil)
				tool.EXPECT().ExecuteTool(mock.Anything, expectedTctx).Return("cmd/main.go", nil)

				m.catalog.EXPECT().GetAgentConfiguration(mock.Anything, "code-explorer").Return(explorer, true, nil)
				m.registry.EXPECT().Resolve([]string{"glob_search"}).Return([]domain.Tool{tool}, nil)
				m.tenantConfig.EXPECT().GetConfiguration(mock.Anything, tenantID).Return(domain.TenantConfiguration{}, false, nil)
				m.llm.EXPECT().
					SendMessage(mock.Anything, "User: where is main?", "Explore code.", domain.GenerationOptions{
						Model:       "ai/gpt-oss",
						MaxTokens:   500,
						Temperature: 0.2,
					}).
					Return(domain.LanguageModelResponse{Success: true, Content: "cmd/main.go"}, nil)
			},
			wantStreaming: true,
			wantKinds: []domain.AgentStreamChunkKind{
				domain.AgentStreamChunkKind_Reasoning,
				domain.AgentStreamChunkKind_ToolUse,
				domain.AgentStreamChunkKind_ToolResult,
				domain.AgentStreamChunkKind_Response,
				domain.AgentStreamChunkKind_Complete,
			},
		},
		"tenant-model-override": {
			req: RunAgentRequest{TenantID: tenantID, AgentName: "writer", Message: "hello"},
			setupMocks: func(t *testing.T, m mocks) {
				m.catalog.EXPECT().GetAgentConfiguration(mock.Anything, "writer").Return(domain.AgentConfiguration{
					Name:      "writer",
					Model:     "ai/gpt-oss",
					MaxTokens: 100,
				}, true, nil)
				m.registry.EXPECT().Resolve([]string(nil)).Return([]domain.Tool{}, nil)
				m.tenantConfig.EXPECT().GetConfiguration(mock.Anything, tenantID).Return(domain.TenantConfiguration{
					TenantID: tenantID,
					Model:    "ai/qwen3",
				}, true, nil)
				m.llm.EXPECT().
					SendMessage(mock.Anything, mock.Anything, mock.Anything, domain.GenerationOptions{Model: "ai/qwen3", MaxTokens: 100}).
					Return(domain.LanguageModelResponse{Success: true, Content: "hi"}, nil)
			},
			wantKinds: []domain.AgentStreamChunkKind{
				domain.AgentStreamChunkKind_Reasoning,
				domain.AgentStreamChunkKind_Response,
				domain.AgentStreamChunkKind_Complete,
			},
		},
		"tenant-config-error-is-not-fatal": {
			req: RunAgentRequest{TenantID: tenantID, AgentName: "writer", Message: "hello"},
			setupMocks: func(t *testing.T, m mocks) {
				m.catalog.EXPECT().GetAgentConfiguration(mock.Anything, "writer").Return(domain.AgentConfiguration{
					Name:      "writer",
					MaxTokens: 100,
				}, true, nil)
				m.registry.EXPECT().Resolve([]string(nil)).Return([]domain.Tool{}, nil)
				m.tenantConfig.EXPECT().GetConfiguration(mock.Anything, tenantID).Return(domain.TenantConfiguration{}, false, errors.New("db down"))
				m.llm.EXPECT().
					SendMessage(mock.Anything, mock.Anything, mock.Anything, domain.GenerationOptions{MaxTokens: 100}).
					Return(domain.LanguageModelResponse{Success: false, ErrorMessage: "busy"}, nil)
			},
			wantKinds: []domain.AgentStreamChunkKind{
				domain.AgentStreamChunkKind_Reasoning,
				domain.AgentStreamChunkKind_Error,
			},
		},
		"missing-tenant": {
			req:         RunAgentRequest{AgentName: "writer", Message: "hello"},
			expectedErr: domain.NewValidationErr("tenant id is required"),
		},
		"empty-message": {
			req:         RunAgentRequest{TenantID: tenantID, AgentName: "writer", Message: "   "},
			expectedErr: domain.NewValidationErr("message cannot be empty"),
		},
		"unknown-agent": {
			req: RunAgentRequest{TenantID: tenantID, AgentName: "ghost", Message: "hello"},
			setupMocks: func(t *testing.T, m mocks) {
				m.catalog.EXPECT().GetAgentConfiguration(mock.Anything, "ghost").Return(domain.AgentConfiguration{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr("agent 'ghost' not found"),
		},
		"catalog-error": {
			req: RunAgentRequest{TenantID: tenantID, AgentName: "writer", Message: "hello"},
			setupMocks: func(t *testing.T, m mocks) {
				m.catalog.EXPECT().GetAgentConfiguration(mock.Anything, "writer").Return(domain.AgentConfiguration{}, false, errors.New("catalog unavailable"))
			},
			expectedErr: errors.New("catalog unavailable"),
		},
		"unregistered-tool": {
			req: RunAgentRequest{TenantID: tenantID, AgentName: "code-explorer", Message: "hello"},
			setupMocks: func(t *testing.T, m mocks) {
				m.catalog.EXPECT().GetAgentConfiguration(mock.Anything, "code-explorer").Return(explorer, true, nil)
				m.registry.EXPECT().Resolve([]string{"glob_search"}).Return(nil, domain.NewConfigurationErr("tool 'glob_search' is not registered"))
			},
			expectedErr: domain.NewConfigurationErr("tool 'glob_search' is not registered"),
		},
		"invalid-agent-configuration": {
			req: RunAgentRequest{TenantID: tenantID, AgentName: "broken", Message: "hello"},
			setupMocks: func(t *testing.T, m mocks) {
				m.catalog.EXPECT().GetAgentConfiguration(mock.Anything, "broken").Return(domain.AgentConfiguration{Name: "broken"}, true, nil)
				m.registry.EXPECT().Resolve([]string(nil)).Return([]domain.Tool{}, nil)
			},
			expectedErr: domain.NewConfigurationErr("invalid agent configuration: max tokens must be greater than 0"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := mocks{
				catalog:      domain.NewMockAgentCatalog(t),
				registry:     domain.NewMockToolRegistry(t),
				tenantConfig: NewMockTenantConfigurationService(t),
				llm:          domain.NewMockLanguageModelProvider(t),
			}
			if tt.setupMocks != nil {
				tt.setupMocks(t, m)
			}

			runtime := NewAgentRuntimeImpl(m.llm, discardLogger, 0)
			ra := NewRunAgentImpl(m.catalog, m.registry, runtime, m.tenantConfig, discardLogger, workspacesRoot)

			execution, err := ra.Execute(context.Background(), tt.req)
			assert.Equal(t, tt.expectedErr, err)
			if tt.expectedErr != nil {
				return
			}

			assert.Equal(t, tt.req.AgentName, execution.AgentName)
			assert.Equal(t, tt.wantStreaming, execution.Streaming)

			chunks, _ := domain.CollectChunks(execution.Chunks)
			var kinds []domain.AgentStreamChunkKind
			for _, c := range chunks {
				kinds = append(kinds, c.Kind())
			}
			assert.Equal(t, tt.wantKinds, kinds)
		})
	}
}

func TestRunAgentImpl_Execute_MissingWorkspacesRoot(t *testing.T) {
	tenantID := uuid.New()
	catalog := domain.NewMockAgentCatalog(t)
	registry := domain.NewMockToolRegistry(t)
	tenantConfig := NewMockTenantConfigurationService(t)

	catalog.EXPECT().GetAgentConfiguration(mock.Anything, "writer").Return(domain.AgentConfiguration{Name: "writer", MaxTokens: 10}, true, nil)
	registry.EXPECT().Resolve([]string(nil)).Return([]domain.Tool{}, nil)
	tenantConfig.EXPECT().GetConfiguration(mock.Anything, tenantID).Return(domain.TenantConfiguration{}, false, nil)

	runtime := NewAgentRuntimeImpl(domain.NewMockLanguageModelProvider(t), discardLogger, 0)
	ra := NewRunAgentImpl(catalog, registry, runtime, tenantConfig, discardLogger, "")

	_, err := ra.Execute(context.Background(), RunAgentRequest{TenantID: tenantID, AgentName: "writer", Message: "hello"})
	assert.Equal(t, domain.NewConfigurationErr("workspaces root is not configured"), err)
}

func TestInitRunAgent_Initialize(t *testing.T) {
	i := InitRunAgent{
		Catalog:        domain.NewMockAgentCatalog(t),
		Registry:       domain.NewMockToolRegistry(t),
		Runtime:        NewAgentRuntimeImpl(domain.NewMockLanguageModelProvider(t), discardLogger, 0),
		TenantConfig:   NewMockTenantConfigurationService(t),
		Logger:         discardLogger,
		WorkspacesRoot: t.TempDir(),
	}

	ctx, err := i.Initialize(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ctx)

	r, err := depend.Resolve[RunAgent]()
	assert.NoError(t, err)
	assert.NotNil(t, r)
}
