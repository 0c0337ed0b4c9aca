package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// ExecuteTool defines the interface for the ExecuteTool use case.
type ExecuteTool interface {
	// Execute invokes a registered tool in the tenant workspace. Tool failures are
	// reported in the ToolResult; the error is reserved for unknown tools and
	// invalid requests.
	Execute(ctx context.Context, tenantID uuid.UUID, toolName string, parameters map[string]any) (domain.ToolResult, error)
}

// ExecuteToolImpl is the implementation of the ExecuteTool use case.
type ExecuteToolImpl struct {
	registry       domain.ToolRegistry
	workspacesRoot string
}

// NewExecuteToolImpl creates a new instance of ExecuteToolImpl.
func NewExecuteToolImpl(registry domain.ToolRegistry, workspacesRoot string) ExecuteToolImpl {
	return ExecuteToolImpl{
		registry:       registry,
		workspacesRoot: workspacesRoot,
	}
}

// Execute runs the named tool.
func (et ExecuteToolImpl) Execute(ctx context.Context, tenantID uuid.UUID, toolName string, parameters map[string]any) (domain.ToolResult, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithTenant(tenantID))
	defer span.End()

	if tenantID == uuid.Nil {
		err := domain.NewValidationErr("tenant id is required")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ToolResult{}, err
	}

	tool, ok := et.registry.Get(toolName)
	if !ok {
		err := domain.NewNotFoundErr(fmt.Sprintf("tool '%s' not found", toolName))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ToolResult{}, err
	}

	root, err := tenantWorkspaceRoot(et.workspacesRoot, tenantID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ToolResult{}, err
	}

	result := domain.ExecuteTool(spanCtx, tool, domain.NewToolExecutionContext(tenantID, root, parameters))
	RecordToolExecution(spanCtx, toolName, result)
	return result, nil
}

// InitExecuteTool is the initializer for the ExecuteTool use case.
type InitExecuteTool struct {
	Registry       domain.ToolRegistry `resolve:""`
	WorkspacesRoot string              `config:"WORKSPACES_ROOT" default:"/var/lib/agentruntime/workspaces"`
}

// Initialize registers the ExecuteTool use case in the dependency container.
func (i InitExecuteTool) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ExecuteTool](NewExecuteToolImpl(i.Registry, i.WorkspacesRoot))
	return ctx, nil
}
