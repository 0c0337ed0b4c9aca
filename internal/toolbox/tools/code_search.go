package tools

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
)

const (
	defaultIncludePattern = "**/*"
	maxMatchLineLength    = 240
	binarySniffLength     = 8000
)

// CodeSearchTool searches workspace file contents with a regular expression.
type CodeSearchTool struct{}

// NewCodeSearchTool creates a new instance of CodeSearchTool.
func NewCodeSearchTool() CodeSearchTool {
	return CodeSearchTool{}
}

// Definition returns the tool definition for CodeSearchTool.
func (CodeSearchTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "code_search",
		Description: "Search file contents in the workspace with a regular expression. Returns matching lines as path:line: text.",
		Input: domain.ToolInput{
			Type: "object",
			Fields: map[string]domain.ToolField{
				"query": {
					Type:        "string",
					Description: "Regular expression (RE2 syntax) to search for.",
					Required:    true,
				},
				"directory": {
					Type:        "string",
					Description: "Optional directory relative to the workspace root.",
					Required:    false,
				},
				"include": {
					Type:        "string",
					Description: "Optional glob restricting which files are searched, e.g. **/*.go. Defaults to every file.",
					Required:    false,
				},
			},
		},
		Hints: domain.ToolHints{
			UseWhen:   "looking for symbols, strings or usages inside files.",
			AvoidWhen: "only file names matter; use glob_search.",
			ArgRules:  "query must be a valid regular expression.",
		},
	}
}

// ValidateInput checks the tool parameters.
func (CodeSearchTool) ValidateInput(tctx domain.ToolExecutionContext) error {
	query, err := tctx.String("query")
	if err != nil {
		return err
	}
	if _, err := regexp.Compile(query); err != nil {
		return domain.NewValidationErr(fmt.Sprintf("invalid regular expression '%s': %v", query, err))
	}
	include, err := tctx.OptionalString("include", defaultIncludePattern)
	if err != nil {
		return err
	}
	if !doublestar.ValidatePattern(include) {
		return domain.NewValidationErr(fmt.Sprintf("invalid include pattern '%s'", include))
	}
	if _, err := tctx.OptionalString("directory", ""); err != nil {
		return err
	}
	return nil
}

// ExecuteTool runs the content search.
func (CodeSearchTool) ExecuteTool(ctx context.Context, tctx domain.ToolExecutionContext) (string, error) {
	query, err := tctx.String("query")
	if err != nil {
		return "", err
	}
	re, err := regexp.Compile(query)
	if err != nil {
		return "", domain.NewValidationErr(fmt.Sprintf("invalid regular expression '%s': %v", query, err))
	}
	include, err := tctx.OptionalString("include", defaultIncludePattern)
	if err != nil {
		return "", err
	}
	dir, err := resolveDirectory(tctx)
	if err != nil {
		return "", err
	}

	fsys := os.DirFS(dir)
	files, err := globWorkspace(tctx.WorkspaceRoot, dir, include)
	if err != nil {
		return "", domain.NewDownstreamErr("failed to list files", err)
	}
	slices.Sort(files)

	prefix := workspaceRelative(tctx.WorkspaceRoot, dir)
	var (
		lines []string
		total int
	)
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		display := file
		if prefix != "." {
			display = path.Join(prefix, file)
		}
		matches, err := searchFile(fsys, file, re)
		if err != nil {
			// unreadable files are skipped
			continue
		}
		for _, m := range matches {
			total++
			if len(lines) < domain.MaxSearchResults {
				lines = append(lines, fmt.Sprintf("%s:%d: %s", display, m.line, m.text))
			}
		}
	}

	if total == 0 {
		return fmt.Sprintf("No matches found for '%s'", query), nil
	}
	if total <= domain.MaxSearchResults {
		return strings.Join(lines, "\n"), nil
	}
	return strings.Join(lines, "\n") + fmt.Sprintf("\n... and %d more matches (total: %d)", total-domain.MaxSearchResults, total), nil
}

type lineMatch struct {
	line int
	text string
}

// searchFile returns the matching lines of a text file. Binary and oversized
// files yield no matches.
func searchFile(fsys fs.FS, name string, re *regexp.Regexp) ([]lineMatch, error) {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return nil, err
	}
	if info.Size() > domain.MaxSearchFileBytes {
		return nil, nil
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	if bytes.IndexByte(data[:min(len(data), binarySniffLength)], 0) >= 0 {
		return nil, nil
	}

	var matches []lineMatch
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), domain.MaxSearchFileBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if !re.MatchString(text) {
			continue
		}
		text = strings.TrimSpace(text)
		if len(text) > maxMatchLineLength {
			text = strings.ToValidUTF8(text[:maxMatchLineLength], "") + "..."
		}
		matches = append(matches, lineMatch{line: lineNo, text: text})
	}
	return matches, scanner.Err()
}
