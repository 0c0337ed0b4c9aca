package tools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobSearchTool(t *testing.T) {
	files := map[string]string{
		"src/Program.cs":          "class Program {}",
		"src/Services/Billing.cs": "class Billing {}",
		"tests/BillingTests.cs":   "class BillingTests {}",
		"README.md":               "# readme",
		"src/app.config":          "<config/>",
	}

	tests := map[string]struct {
		params     map[string]any
		wantResult domain.ToolResult
	}{
		"matches-sorted-relative-paths": {
			params: map[string]any{"pattern": "**/*.cs"},
			wantResult: domain.NewToolSuccess(strings.Join([]string{
				"src/Program.cs",
				"src/Services/Billing.cs",
				"tests/BillingTests.cs",
			}, "\n")),
		},
		"scoped-to-directory": {
			params:     map[string]any{"pattern": "**/*.cs", "directory": "src/Services"},
			wantResult: domain.NewToolSuccess("src/Services/Billing.cs"),
		},
		"no-matches": {
			params:     map[string]any{"pattern": "**/*.java"},
			wantResult: domain.NewToolSuccess("No files found matching pattern '**/*.java'"),
		},
		"missing-pattern": {
			params: map[string]any{},
			wantResult: domain.NewToolFailure(
				domain.ToolErrorKind_ParameterMissing,
				"missing required parameter 'pattern'",
			),
		},
		"invalid-pattern": {
			params: map[string]any{"pattern": "src/[a-"},
			wantResult: domain.NewToolFailure(
				domain.ToolErrorKind_ParameterMalformed,
				"invalid glob pattern 'src/[a-'",
			),
		},
		"directory-not-found": {
			params: map[string]any{"pattern": "*.cs", "directory": "lib"},
			wantResult: domain.NewToolFailure(
				domain.ToolErrorKind_NotFound,
				"directory 'lib' does not exist",
			),
		},
		"directory-is-a-file": {
			params: map[string]any{"pattern": "*.cs", "directory": "README.md"},
			wantResult: domain.NewToolFailure(
				domain.ToolErrorKind_NotFound,
				"'README.md' is not a directory",
			),
		},
		"directory-escapes-workspace": {
			params: map[string]any{"pattern": "*", "directory": "../"},
			wantResult: domain.NewToolFailure(
				domain.ToolErrorKind_ParameterMalformed,
				"path '../' escapes the workspace",
			),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := writeWorkspace(t, files)
			got := domain.ExecuteTool(t.Context(), NewGlobSearchTool(), newToolContext(root, tt.params))
			assert.Equal(t, tt.wantResult, got)
		})
	}
}

func TestGlobSearchTool_Truncation(t *testing.T) {
	files := make(map[string]string)
	total := domain.MaxGlobResults + 7
	for i := range total {
		files[fmt.Sprintf("pkg/file_%03d.go", i)] = "package pkg"
	}
	root := writeWorkspace(t, files)

	got := domain.ExecuteTool(t.Context(), NewGlobSearchTool(), newToolContext(root, map[string]any{"pattern": "**/*.go"}))
	require.True(t, got.Success)

	lines := strings.Split(got.Output, "\n")
	require.Len(t, lines, domain.MaxGlobResults+1)
	assert.Equal(t, "pkg/file_000.go", lines[0])
	assert.Equal(t, fmt.Sprintf("pkg/file_%03d.go", domain.MaxGlobResults-1), lines[domain.MaxGlobResults-1])
	assert.Equal(t, fmt.Sprintf("... and 7 more files (total: %d)", total), lines[domain.MaxGlobResults])
}

func TestGlobSearchTool_SymlinksStayInWorkspace(t *testing.T) {
	root := writeEscapingWorkspace(t, map[string]string{
		"notes.txt":      "notes",
		"docs/guide.txt": "guide",
	})
	require.NoError(t, os.Symlink("notes.txt", filepath.Join(root, "alias.txt")))

	tests := map[string]struct {
		params     map[string]any
		wantResult domain.ToolResult
	}{
		"outside-links-are-dropped": {
			params:     map[string]any{"pattern": "**/*.txt"},
			wantResult: domain.NewToolSuccess("alias.txt\ndocs/guide.txt\nnotes.txt"),
		},
		"linked-directory-in-pattern": {
			params:     map[string]any{"pattern": "leak/*.txt"},
			wantResult: domain.NewToolSuccess("No files found matching pattern 'leak/*.txt'"),
		},
		"linked-directory-as-directory": {
			params: map[string]any{"pattern": "*.txt", "directory": "leak"},
			wantResult: domain.NewToolFailure(
				domain.ToolErrorKind_ParameterMalformed,
				"path 'leak' escapes the workspace",
			),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := domain.ExecuteTool(t.Context(), NewGlobSearchTool(), newToolContext(root, tt.params))
			assert.Equal(t, tt.wantResult, got)
		})
	}
}
