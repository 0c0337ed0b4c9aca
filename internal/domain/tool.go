package domain

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// ToolDefinition describes one tool that can be used by an agent.
type ToolDefinition struct {
	Name        string
	Description string
	Input       ToolInput
	Hints       ToolHints
}

// ComposeHint composes the tool hints into a single string for prompting.
func (d ToolDefinition) ComposeHint() string {
	parts := make([]string, 0, 3)
	if useWhen := strings.TrimSpace(d.Hints.UseWhen); useWhen != "" {
		parts = append(parts, "Use: "+useWhen)
	}
	if avoidWhen := strings.TrimSpace(d.Hints.AvoidWhen); avoidWhen != "" {
		parts = append(parts, "Avoid: "+avoidWhen)
	}
	if argRules := strings.TrimSpace(d.Hints.ArgRules); argRules != "" {
		parts = append(parts, "Args: "+argRules)
	}

	if len(parts) == 0 {
		return "Follow the tool schema and description."
	}
	return strings.Join(parts, " ")
}

// ToolHints holds compact guidance shown to the model next to the description.
type ToolHints struct {
	UseWhen   string
	AvoidWhen string
	ArgRules  string
}

// ToolField represents one tool input field.
type ToolField struct {
	Type        string
	Description string
	Required    bool
}

// ToolInput describes the tool input shape.
type ToolInput struct {
	Type   string
	Fields map[string]ToolField
}

// RequiredFields returns the names of the required input fields, sorted.
func (i ToolInput) RequiredFields() []string {
	var required []string
	for name, field := range i.Fields {
		if field.Required {
			required = append(required, name)
		}
	}
	slices.Sort(required)
	return required
}

// Tool represents one capability invokable by an agent.
//
// Implementations must be stateless: every per-call value lives in the
// ToolExecutionContext. ValidateInput must not touch the filesystem or the network.
type Tool interface {
	Definition() ToolDefinition
	ValidateInput(tctx ToolExecutionContext) error
	ExecuteTool(ctx context.Context, tctx ToolExecutionContext) (string, error)
}

// ToolErrorKind classifies a failed tool invocation.
type ToolErrorKind string

const (
	ToolErrorKind_None               ToolErrorKind = ""
	ToolErrorKind_ParameterMissing   ToolErrorKind = "parameter_missing"
	ToolErrorKind_ParameterMalformed ToolErrorKind = "parameter_malformed"
	ToolErrorKind_NotFound           ToolErrorKind = "not_found"
	ToolErrorKind_DownstreamFailed   ToolErrorKind = "downstream_failed"
	ToolErrorKind_Canceled           ToolErrorKind = "canceled"
)

// ToolResult is the outcome of one tool invocation.
type ToolResult struct {
	Success      bool          `json:"success"`
	Output       string        `json:"output,omitempty"`
	ErrorKind    ToolErrorKind `json:"error_kind,omitempty"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

// NewToolSuccess creates a successful ToolResult with bounded output.
func NewToolSuccess(output string) ToolResult {
	return ToolResult{
		Success: true,
		Output:  TruncateOutput(output),
	}
}

// NewToolFailure creates a failed ToolResult.
func NewToolFailure(kind ToolErrorKind, message string) ToolResult {
	if kind == ToolErrorKind_None {
		kind = ToolErrorKind_DownstreamFailed
	}
	if strings.TrimSpace(message) == "" {
		message = "tool execution failed"
	}
	return ToolResult{
		Success:      false,
		ErrorKind:    kind,
		ErrorMessage: message,
	}
}

// Text returns the human-readable message of the result.
func (r ToolResult) Text() string {
	if r.Success {
		return r.Output
	}
	return r.ErrorMessage
}

// ExecuteTool runs the two-phase tool protocol: input validation first, then
// execution. It never returns an error; every failure is folded into the ToolResult.
func ExecuteTool(ctx context.Context, tool Tool, tctx ToolExecutionContext) (result ToolResult) {
	if tool == nil {
		return NewToolFailure(ToolErrorKind_NotFound, "tool is not available")
	}
	name := tool.Definition().Name

	defer func() {
		if r := recover(); r != nil {
			result = NewToolFailure(ToolErrorKind_DownstreamFailed, fmt.Sprintf("tool '%s' failed unexpectedly: %v", name, r))
		}
	}()

	if err := tool.ValidateInput(tctx); err != nil {
		return NewToolFailure(ClassifyToolError(err), err.Error())
	}

	if err := ctx.Err(); err != nil {
		return NewToolFailure(ToolErrorKind_Canceled, fmt.Sprintf("tool '%s' canceled: %v", name, err))
	}

	output, err := tool.ExecuteTool(ctx, tctx)
	if err != nil {
		return NewToolFailure(ClassifyToolError(err), err.Error())
	}
	return NewToolSuccess(output)
}

// ClassifyToolError maps a tool error to its ToolErrorKind.
func ClassifyToolError(err error) ToolErrorKind {
	var (
		missingErr    *MissingParameterErr
		validationErr *ValidationErr
		notFoundErr   *NotFoundErr
	)
	switch {
	case err == nil:
		return ToolErrorKind_None
	case errors.As(err, &missingErr):
		return ToolErrorKind_ParameterMissing
	case errors.As(err, &validationErr):
		return ToolErrorKind_ParameterMalformed
	case errors.As(err, &notFoundErr):
		return ToolErrorKind_NotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ToolErrorKind_Canceled
	default:
		return ToolErrorKind_DownstreamFailed
	}
}

// ToolRegistry resolves registered tools by name.
type ToolRegistry interface {
	Get(name string) (Tool, bool)
	List() []ToolDefinition
	Resolve(names []string) ([]Tool, error)
}

// NewToolExecutionContext creates a context for one tool invocation.
func NewToolExecutionContext(tenantID uuid.UUID, workspaceRoot string, parameters map[string]any) ToolExecutionContext {
	params := make(map[string]any, len(parameters))
	for k, v := range parameters {
		params[k] = v
	}
	return ToolExecutionContext{
		TenantID:      tenantID,
		WorkspaceRoot: workspaceRoot,
		Parameters:    params,
	}
}
