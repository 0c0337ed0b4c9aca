// Package mcp exposes the tool registry as a Model Context Protocol server.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/usecases"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// TenantHeader carries the id of the tenant the MCP session acts for.
	TenantHeader = "X-Tenant-ID"

	serverName    = "agentruntime"
	serverVersion = "1.0.0"
)

// ToolServer serves every registered tool over MCP. Each session gets its own
// server bound to the tenant of the request that opened it.
type ToolServer struct {
	Port               int                  `config:"MCP_PORT" default:"8090"`
	Logger             *log.Logger          `resolve:""`
	ListToolsUseCase   usecases.ListTools   `resolve:""`
	ExecuteToolUseCase usecases.ExecuteTool `resolve:""`
}

// NewServer builds an MCP server whose tools run in the workspace of tenantID.
func (s ToolServer) NewServer(ctx context.Context, tenantID uuid.UUID) (*mcp.Server, error) {
	defs, err := s.ListToolsUseCase.Query(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	for _, def := range defs {
		srv.AddTool(&mcp.Tool{
			Name:        def.Name,
			Description: toolDescription(def),
			InputSchema: inputSchema(def.Input),
		}, s.callTool(tenantID, def.Name))
	}
	return srv, nil
}

func (s ToolServer) callTool(tenantID uuid.UUID, name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := map[string]any{}
		if req.Params != nil && len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
				return errorResult(fmt.Sprintf("invalid arguments: %v", err)), nil
			}
		}

		result, err := s.ExecuteToolUseCase.Execute(ctx, tenantID, name, params)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: result.Text()}},
			IsError: !result.Success,
		}, nil
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
		IsError: true,
	}
}

func toolDescription(def domain.ToolDefinition) string {
	return strings.TrimSpace(def.Description) + "\n" + def.ComposeHint()
}

// inputSchema converts a tool input description into a JSON Schema object.
func inputSchema(in domain.ToolInput) map[string]any {
	properties := make(map[string]any, len(in.Fields))
	for name, f := range in.Fields {
		typ := f.Type
		if typ == "" {
			typ = "string"
		}
		prop := map[string]any{"type": typ}
		if f.Description != "" {
			prop["description"] = f.Description
		}
		properties[name] = prop
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if required := in.RequiredFields(); len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Handler returns the SSE handler. A session is opened by a GET carrying the
// tenant header; messages are then POSTed to the session endpoint.
func (s ToolServer) Handler() http.Handler {
	sse := mcp.NewSSEHandler(func(r *http.Request) *mcp.Server {
		tenantID, err := uuid.Parse(r.Header.Get(TenantHeader))
		if err != nil {
			return nil
		}
		srv, err := s.NewServer(r.Context(), tenantID)
		if err != nil {
			s.Logger.Printf("ToolServer: failed to create server for tenant %s: %v", tenantID, err)
			return nil
		}
		return srv
	}, nil)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			if _, err := uuid.Parse(r.Header.Get(TenantHeader)); err != nil {
				s.Logger.Printf("ToolServer: rejected session without a valid %s header", TenantHeader)
				http.Error(w, fmt.Sprintf("a valid %s header is required", TenantHeader), http.StatusBadRequest)
				return
			}
		}
		sse.ServeHTTP(w, r)
	})
	return telemetry.Middleware("agentruntime-mcp")(h)
}

// Run starts the MCP server.
func (s ToolServer) Run(ctx context.Context) error {
	hs := &http.Server{
		Handler:           s.Handler(),
		Addr:              fmt.Sprintf(":%d", s.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("ToolServer: Listening on port %d", s.Port)
		errCh <- hs.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := hs.Shutdown(shutdownCtx)
		if err != nil {
			s.Logger.Printf("ToolServer: error during shutdown: %v", err)
		} else {
			s.Logger.Println("ToolServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady reports whether the server accepts connections. SSE endpoints hold
// the response open, so a TCP dial stands in for an HTTP probe.
func (s ToolServer) IsReady(ctx context.Context) error {
	d := net.Dialer{Timeout: time.Second}
	conn, err := d.DialContext(ctx, "tcp", fmt.Sprintf("localhost:%d", s.Port))
	if err != nil {
		return err
	}
	return conn.Close()
}
