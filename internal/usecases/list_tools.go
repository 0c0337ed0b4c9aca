package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListTools defines the interface for the ListTools use case.
type ListTools interface {
	Query(ctx context.Context) ([]domain.ToolDefinition, error)
}

// ListToolsImpl is the implementation of the ListTools use case.
type ListToolsImpl struct {
	registry domain.ToolRegistry
}

// NewListToolsImpl creates a new instance of ListToolsImpl.
func NewListToolsImpl(registry domain.ToolRegistry) ListToolsImpl {
	return ListToolsImpl{registry: registry}
}

// Query returns the registered tool definitions sorted by name.
func (lt ListToolsImpl) Query(_ context.Context) ([]domain.ToolDefinition, error) {
	return lt.registry.List(), nil
}

// InitListTools is the initializer for the ListTools use case.
type InitListTools struct {
	Registry domain.ToolRegistry `resolve:""`
}

// Initialize registers the ListTools use case in the dependency container.
func (i InitListTools) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTools](NewListToolsImpl(i.Registry))
	return ctx, nil
}
