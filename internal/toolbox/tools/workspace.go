package tools

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
)

// ResolveWorkspacePath resolves a caller-supplied path against the workspace root
// and rejects any path that lands outside of it. An empty path resolves to the root.
func ResolveWorkspacePath(root, relative string) (string, error) {
	if strings.TrimSpace(root) == "" {
		return "", domain.NewConfigurationErr("workspace root is not configured")
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve workspace root: %w", err)
	}

	relative = strings.TrimSpace(relative)
	// absolute inputs are interpreted relative to the workspace
	relative = strings.TrimLeft(filepath.ToSlash(relative), "/")

	candidate := filepath.Join(absRoot, filepath.FromSlash(relative))
	if err := ensureWithin(absRoot, candidate, relative); err != nil {
		return "", err
	}

	// Follow symlinks for existing targets so a link cannot point outside the workspace.
	resolved, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		return "", fmt.Errorf("failed to resolve path '%s': %w", relative, err)
	}
	resolvedRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		resolvedRoot = absRoot
	}
	if err := ensureWithin(resolvedRoot, resolved, relative); err != nil {
		return "", err
	}
	return candidate, nil
}

// ensureWithin fails when target is not root or a descendant of root.
func ensureWithin(root, target, original string) error {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return domain.NewValidationErr(fmt.Sprintf("path '%s' escapes the workspace", original))
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return domain.NewValidationErr(fmt.Sprintf("path '%s' escapes the workspace", original))
	}
	return nil
}

// workspaceGuard checks walked entries against the workspace after following
// symlinks. doublestar only avoids traversing linked directories; links to files
// and links named in the pattern prefix still need this check.
type workspaceGuard struct {
	root string
}

func newWorkspaceGuard(root string) workspaceGuard {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}
	if resolved, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = resolved
	}
	return workspaceGuard{root: absRoot}
}

// contains reports whether name, relative to dir, resolves inside the workspace.
// Broken links are treated as outside.
func (g workspaceGuard) contains(dir, name string) bool {
	resolved, err := filepath.EvalSymlinks(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		return false
	}
	return ensureWithin(g.root, resolved, name) == nil
}

// globWorkspace lists the files under dir matching pattern without leaving the workspace.
func globWorkspace(root, dir, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly(), doublestar.WithNoFollow())
	if err != nil {
		return nil, err
	}
	guard := newWorkspaceGuard(root)
	return slices.DeleteFunc(matches, func(m string) bool {
		return !guard.contains(dir, m)
	}), nil
}

// workspaceRelative renders path relative to root with forward slashes.
func workspaceRelative(root, path string) string {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}
	rel, err := filepath.Rel(absRoot, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// resolveDirectory resolves the optional directory parameter and checks that it
// exists and is a directory.
func resolveDirectory(tctx domain.ToolExecutionContext) (string, error) {
	dirParam, err := tctx.OptionalString("directory", "")
	if err != nil {
		return "", err
	}
	dir, err := ResolveWorkspacePath(tctx.WorkspaceRoot, dirParam)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.NewNotFoundErr(fmt.Sprintf("directory '%s' does not exist", displayDir(dirParam)))
		}
		return "", domain.NewDownstreamErr(fmt.Sprintf("failed to access directory '%s'", displayDir(dirParam)), err)
	}
	if !info.IsDir() {
		return "", domain.NewNotFoundErr(fmt.Sprintf("'%s' is not a directory", displayDir(dirParam)))
	}
	return dir, nil
}

func displayDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
