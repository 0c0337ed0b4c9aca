package tools

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
)

// GlobSearchTool lists workspace files matching a glob pattern.
type GlobSearchTool struct{}

// NewGlobSearchTool creates a new instance of GlobSearchTool.
func NewGlobSearchTool() GlobSearchTool {
	return GlobSearchTool{}
}

// Definition returns the tool definition for GlobSearchTool.
func (GlobSearchTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "glob_search",
		Description: "Find files in the workspace whose path matches a glob pattern. Supports ** for any number of directories (e.g. **/*.go). Results are workspace-relative paths sorted alphabetically.",
		Input: domain.ToolInput{
			Type: "object",
			Fields: map[string]domain.ToolField{
				"pattern": {
					Type:        "string",
					Description: "Glob pattern relative to the search directory, e.g. **/*.cs or src/*.ts.",
					Required:    true,
				},
				"directory": {
					Type:        "string",
					Description: "Optional directory relative to the workspace root. Defaults to the workspace root.",
					Required:    false,
				},
			},
		},
		Hints: domain.ToolHints{
			UseWhen:   "locating files by name or extension.",
			AvoidWhen: "searching file contents; use code_search.",
			ArgRules:  "pattern is required; directory must stay inside the workspace.",
		},
	}
}

// ValidateInput checks the tool parameters.
func (GlobSearchTool) ValidateInput(tctx domain.ToolExecutionContext) error {
	pattern, err := tctx.String("pattern")
	if err != nil {
		return err
	}
	if !doublestar.ValidatePattern(pattern) {
		return domain.NewValidationErr(fmt.Sprintf("invalid glob pattern '%s'", pattern))
	}
	if _, err := tctx.OptionalString("directory", ""); err != nil {
		return err
	}
	return nil
}

// ExecuteTool runs the glob search.
func (GlobSearchTool) ExecuteTool(ctx context.Context, tctx domain.ToolExecutionContext) (string, error) {
	pattern, err := tctx.String("pattern")
	if err != nil {
		return "", err
	}
	dir, err := resolveDirectory(tctx)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	matches, err := globWorkspace(tctx.WorkspaceRoot, dir, strings.TrimLeft(pattern, "/"))
	if err != nil {
		return "", domain.NewDownstreamErr("glob search failed", err)
	}

	prefix := workspaceRelative(tctx.WorkspaceRoot, dir)
	results := make([]string, 0, len(matches))
	for _, m := range matches {
		if prefix == "." {
			results = append(results, m)
			continue
		}
		results = append(results, path.Join(prefix, m))
	}
	slices.Sort(results)

	if len(results) == 0 {
		return fmt.Sprintf("No files found matching pattern '%s'", pattern), nil
	}
	return renderTruncatedList(results, domain.MaxGlobResults, "files"), nil
}

// renderTruncatedList joins lines, keeping at most limit entries and appending a
// summary line with the true total when entries were dropped.
func renderTruncatedList(lines []string, limit int, noun string) string {
	total := len(lines)
	if total <= limit {
		return strings.Join(lines, "\n")
	}
	var sb strings.Builder
	sb.WriteString(strings.Join(lines[:limit], "\n"))
	fmt.Fprintf(&sb, "\n... and %d more %s (total: %d)", total-limit, noun, total)
	return sb.String()
}
