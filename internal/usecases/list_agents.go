package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListAgents defines the interface for the ListAgents use case.
type ListAgents interface {
	Query(ctx context.Context) ([]domain.AgentConfiguration, error)
}

// ListAgentsImpl is the implementation of the ListAgents use case.
type ListAgentsImpl struct {
	catalog domain.AgentCatalog
}

// NewListAgentsImpl creates a new instance of ListAgentsImpl.
func NewListAgentsImpl(catalog domain.AgentCatalog) ListAgentsImpl {
	return ListAgentsImpl{catalog: catalog}
}

// Query returns the declared agent configurations.
func (la ListAgentsImpl) Query(ctx context.Context) ([]domain.AgentConfiguration, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	agents, err := la.catalog.ListAgentConfigurations(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return agents, nil
}

// InitListAgents is the initializer for the ListAgents use case.
type InitListAgents struct {
	Catalog domain.AgentCatalog `resolve:""`
}

// Initialize registers the ListAgents use case in the dependency container.
func (i InitListAgents) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListAgents](NewListAgentsImpl(i.Catalog))
	return ctx, nil
}
