package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// writeWorkspace creates files (relative path -> content) under a fresh temp dir.
func writeWorkspace(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return root
}

func newToolContext(root string, params map[string]any) domain.ToolExecutionContext {
	return domain.NewToolExecutionContext(uuid.MustParse("7d1c2f8e-2a34-4a7e-9f3e-0d5b2f0c9a11"), root, params)
}

// writeEscapingWorkspace builds a workspace holding files plus two symlinks that
// point outside of it: "leak" to a sibling directory and "link.txt" to a file in it.
// The outside directory holds secret.txt and a go.mod.
func writeEscapingWorkspace(t *testing.T, files map[string]string) string {
	t.Helper()
	root := writeWorkspace(t, files)

	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret.txt"), []byte("TOP-SECRET-TOKEN=abc\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(outside, "go.mod"), []byte("module example.com/outside\n"), 0o644))

	if err := os.Symlink(outside, filepath.Join(root, "leak")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(outside, "secret.txt"), filepath.Join(root, "link.txt")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "go.mod"), filepath.Join(root, "go.mod")))
	return root
}
