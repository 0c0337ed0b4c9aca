package toolbox

import (
	"context"
	"fmt"
	"sort"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/toolbox/tools"
	"github.com/cleitonmarx/symbiont/depend"
)

// ToolRegistry holds the tools available to agents, keyed by name.
type ToolRegistry struct {
	tools map[string]domain.Tool
}

// NewToolRegistry creates a tool registry. Tools registered later replace
// earlier ones with the same name.
func NewToolRegistry(tools ...domain.Tool) ToolRegistry {
	toolMap := make(map[string]domain.Tool, len(tools))
	for _, tool := range tools {
		toolMap[tool.Definition().Name] = tool
	}
	return ToolRegistry{tools: toolMap}
}

// Get returns the tool registered under name.
func (r ToolRegistry) Get(name string) (domain.Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all tool definitions sorted by name.
func (r ToolRegistry) List() []domain.ToolDefinition {
	res := make([]domain.ToolDefinition, 0, len(r.tools))
	for _, tool := range r.tools {
		res = append(res, tool.Definition())
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}

// Resolve returns the tools for names, in the given order.
func (r ToolRegistry) Resolve(names []string) ([]domain.Tool, error) {
	res := make([]domain.Tool, 0, len(names))
	for _, name := range names {
		tool, ok := r.tools[name]
		if !ok {
			return nil, domain.NewConfigurationErr(fmt.Sprintf("tool '%s' is not registered", name))
		}
		res = append(res, tool)
	}
	return res, nil
}

// InitToolRegistry builds the tool registry and registers it as domain.ToolRegistry.
type InitToolRegistry struct {
	TicketTracker domain.TicketTracker `resolve:""`
}

// Initialize registers the tool registry.
func (i InitToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	registry := NewToolRegistry(
		tools.NewGlobSearchTool(),
		tools.NewCodeSearchTool(),
		tools.NewDependencyMapTool(),
		tools.NewGetTicketTool(i.TicketTracker),
		tools.NewAddTicketCommentTool(i.TicketTracker),
		tools.NewTransitionTicketTool(i.TicketTracker),
	)
	depend.Register[domain.ToolRegistry](registry)
	return ctx, nil
}
