package usecases

import (
	"context"
	"fmt"
	"iter"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// RunAgentRequest holds the input of one agent run.
type RunAgentRequest struct {
	TenantID   uuid.UUID
	AgentName  string
	Message    string
	History    []domain.ConversationMessage
	Parameters map[string]any
}

// AgentExecution is a started, not yet consumed, agent run.
type AgentExecution struct {
	AgentName string
	Streaming bool
	Chunks    iter.Seq[domain.AgentStreamChunk]
}

// RunAgent defines the interface for the RunAgent use case.
type RunAgent interface {
	// Execute prepares the named agent for the tenant and returns its chunk stream.
	Execute(ctx context.Context, req RunAgentRequest) (AgentExecution, error)
}

// RunAgentImpl is the implementation of the RunAgent use case.
type RunAgentImpl struct {
	catalog        domain.AgentCatalog
	registry       domain.ToolRegistry
	runtime        AgentRuntime
	tenantConfig   TenantConfigurationService
	logger         *log.Logger
	workspacesRoot string
}

// NewRunAgentImpl creates a new instance of RunAgentImpl.
func NewRunAgentImpl(
	catalog domain.AgentCatalog,
	registry domain.ToolRegistry,
	runtime AgentRuntime,
	tenantConfig TenantConfigurationService,
	logger *log.Logger,
	workspacesRoot string,
) RunAgentImpl {
	return RunAgentImpl{
		catalog:        catalog,
		registry:       registry,
		runtime:        runtime,
		tenantConfig:   tenantConfig,
		logger:         logger,
		workspacesRoot: workspacesRoot,
	}
}

// Execute loads the agent configuration, binds its tools and starts the execution.
func (ra RunAgentImpl) Execute(ctx context.Context, req RunAgentRequest) (AgentExecution, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithTenant(req.TenantID))
	defer span.End()

	if req.TenantID == uuid.Nil {
		err := domain.NewValidationErr("tenant id is required")
		telemetry.RecordErrorAndStatus(span, err)
		return AgentExecution{}, err
	}
	if strings.TrimSpace(req.Message) == "" {
		err := domain.NewValidationErr("message cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return AgentExecution{}, err
	}

	cfg, found, err := ra.catalog.GetAgentConfiguration(spanCtx, req.AgentName)
	if telemetry.RecordErrorAndStatus(span, err) {
		return AgentExecution{}, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("agent '%s' not found", req.AgentName))
		telemetry.RecordErrorAndStatus(span, err)
		return AgentExecution{}, err
	}

	tools, err := ra.registry.Resolve(cfg.EnabledTools)
	if telemetry.RecordErrorAndStatus(span, err) {
		return AgentExecution{}, err
	}

	agent, err := ra.runtime.CreateAgent(cfg, tools)
	if telemetry.RecordErrorAndStatus(span, err) {
		return AgentExecution{}, err
	}

	tenantCfg, found, err := ra.tenantConfig.GetConfiguration(spanCtx, req.TenantID)
	if err != nil {
		ra.logger.Printf("RunAgent: failed to load configuration of tenant %s: %v", req.TenantID, err)
	} else if found && tenantCfg.Model != "" {
		agent = agent.WithModel(tenantCfg.Model)
	}

	root, err := tenantWorkspaceRoot(ra.workspacesRoot, req.TenantID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return AgentExecution{}, err
	}
	tctx := domain.NewToolExecutionContext(req.TenantID, root, req.Parameters)

	// ctx rather than spanCtx: the stream outlives this span.
	chunks := ra.runtime.ExecuteAgent(ctx, agent, req.Message, req.History, WithToolExecutionContext(tctx))

	return AgentExecution{
		AgentName: agent.Name(),
		Streaming: agent.StreamingEnabled(),
		Chunks:    recordOutcome(ctx, agent.Name(), chunks),
	}, nil
}

// recordOutcome passes chunks through and records the stream outcome once the
// consumer is done with it.
func recordOutcome(ctx context.Context, agentName string, chunks iter.Seq[domain.AgentStreamChunk]) iter.Seq[domain.AgentStreamChunk] {
	return func(yield func(domain.AgentStreamChunk) bool) {
		var last domain.AgentStreamChunk
		defer func() {
			RecordAgentExecution(ctx, agentName, domain.OutcomeOf(last))
		}()
		for chunk := range chunks {
			last = chunk
			if !yield(chunk) {
				return
			}
		}
	}
}

// InitRunAgent is the initializer for the RunAgent use case.
type InitRunAgent struct {
	Catalog        domain.AgentCatalog        `resolve:""`
	Registry       domain.ToolRegistry        `resolve:""`
	Runtime        AgentRuntime               `resolve:""`
	TenantConfig   TenantConfigurationService `resolve:""`
	Logger         *log.Logger                `resolve:""`
	WorkspacesRoot string                     `config:"WORKSPACES_ROOT" default:"/var/lib/agentruntime/workspaces"`
}

// Initialize registers the RunAgent use case in the dependency container.
func (i InitRunAgent) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RunAgent](NewRunAgentImpl(
		i.Catalog,
		i.Registry,
		i.Runtime,
		i.TenantConfig,
		i.Logger,
		i.WorkspacesRoot,
	))
	return ctx, nil
}
