package mcp

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/usecases"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	fixtureTenantID = uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	discardLogger   = log.New(io.Discard, "", 0)

	globDefinition = domain.ToolDefinition{
		Name:        "glob_search",
		Description: "Find files by glob pattern",
		Input: domain.ToolInput{
			Type: "object",
			Fields: map[string]domain.ToolField{
				"pattern":   {Type: "string", Description: "Glob pattern", Required: true},
				"directory": {Type: "string", Description: "Directory to search"},
			},
		},
	}
)

// connect starts srv on an in-memory transport and returns a client session.
func connect(t *testing.T, srv *mcp.Server) *mcp.ClientSession {
	t.Helper()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		_ = srv.Run(ctx, serverTransport)
	}()

	cli := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "1.0.0"}, nil)
	session, err := cli.Connect(context.Background(), clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestToolServer_NewServer_ListTools(t *testing.T) {
	listTools := usecases.NewMockListTools(t)
	listTools.EXPECT().Query(mock.Anything).Return([]domain.ToolDefinition{globDefinition}, nil)

	s := ToolServer{Logger: discardLogger, ListToolsUseCase: listTools}
	srv, err := s.NewServer(context.Background(), fixtureTenantID)
	require.NoError(t, err)

	session := connect(t, srv)

	res := session.InitializeResult()
	require.NotNil(t, res)
	require.NotNil(t, res.ServerInfo)
	assert.Equal(t, "agentruntime", res.ServerInfo.Name)

	tools, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, tools.Tools, 1)
	assert.Equal(t, "glob_search", tools.Tools[0].Name)
	assert.Equal(t, "Find files by glob pattern\nFollow the tool schema and description.", tools.Tools[0].Description)
}

func TestToolServer_NewServer_ListToolsError(t *testing.T) {
	listTools := usecases.NewMockListTools(t)
	listTools.EXPECT().Query(mock.Anything).Return(nil, errors.New("registry unavailable"))

	s := ToolServer{Logger: discardLogger, ListToolsUseCase: listTools}
	_, err := s.NewServer(context.Background(), fixtureTenantID)
	assert.EqualError(t, err, "failed to list tools: registry unavailable")
}

func TestToolServer_CallTool(t *testing.T) {
	tests := map[string]struct {
		arguments       map[string]any
		setupMocks      func(*usecases.MockExecuteTool)
		expectedText    string
		expectedIsError bool
	}{
		"success": {
			arguments: map[string]any{"pattern": "**/*.go"},
			setupMocks: func(m *usecases.MockExecuteTool) {
				m.EXPECT().
					Execute(mock.Anything, fixtureTenantID, "glob_search", map[string]any{"pattern": "**/*.go"}).
					Return(domain.NewToolSuccess("cmd/agentruntime/main.go"), nil)
			},
			expectedText: "cmd/agentruntime/main.go",
		},
		"tool-failure": {
			arguments: map[string]any{},
			setupMocks: func(m *usecases.MockExecuteTool) {
				m.EXPECT().
					Execute(mock.Anything, fixtureTenantID, "glob_search", map[string]any{}).
					Return(domain.NewToolFailure(domain.ToolErrorKind_ParameterMissing, "missing required parameter 'pattern'"), nil)
			},
			expectedText:    domain.NewToolFailure(domain.ToolErrorKind_ParameterMissing, "missing required parameter 'pattern'").Text(),
			expectedIsError: true,
		},
		"use-case-error": {
			arguments: map[string]any{"pattern": "*"},
			setupMocks: func(m *usecases.MockExecuteTool) {
				m.EXPECT().
					Execute(mock.Anything, fixtureTenantID, "glob_search", map[string]any{"pattern": "*"}).
					Return(domain.ToolResult{}, domain.NewConfigurationErr("workspaces root is not configured"))
			},
			expectedText:    "workspaces root is not configured",
			expectedIsError: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			listTools := usecases.NewMockListTools(t)
			listTools.EXPECT().Query(mock.Anything).Return([]domain.ToolDefinition{globDefinition}, nil)
			executeTool := usecases.NewMockExecuteTool(t)
			tt.setupMocks(executeTool)

			s := ToolServer{Logger: discardLogger, ListToolsUseCase: listTools, ExecuteToolUseCase: executeTool}
			srv, err := s.NewServer(context.Background(), fixtureTenantID)
			require.NoError(t, err)
			session := connect(t, srv)

			res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
				Name:      "glob_search",
				Arguments: tt.arguments,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedIsError, res.IsError)
			require.Len(t, res.Content, 1)
			text, ok := res.Content[0].(*mcp.TextContent)
			require.True(t, ok)
			assert.Equal(t, tt.expectedText, text.Text)
		})
	}
}

func TestInputSchema(t *testing.T) {
	got := inputSchema(domain.ToolInput{
		Type: "object",
		Fields: map[string]domain.ToolField{
			"ticket_key": {Type: "string", Description: "Ticket key", Required: true},
			"comment":    {Description: "Comment body", Required: true},
			"limit":      {Type: "integer"},
		},
	})

	assert.Equal(t, map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ticket_key": map[string]any{"type": "string", "description": "Ticket key"},
			"comment":    map[string]any{"type": "string", "description": "Comment body"},
			"limit":      map[string]any{"type": "integer"},
		},
		"required": []string{"comment", "ticket_key"},
	}, got)

	assert.Equal(t, map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}, inputSchema(domain.ToolInput{}))
}

func TestToolServer_Handler_RejectsMissingTenant(t *testing.T) {
	tests := map[string]struct {
		header string
	}{
		"missing-header": {},
		"invalid-header": {header: "acme"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := ToolServer{Logger: discardLogger}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(TenantHeader, tt.header)
			}
			w := httptest.NewRecorder()

			s.Handler().ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "a valid X-Tenant-ID header is required")
		})
	}
}
