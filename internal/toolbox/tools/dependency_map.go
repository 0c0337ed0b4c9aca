package tools

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"golang.org/x/mod/modfile"
)

const manifestPattern = "**/{go.mod,package.json,*.csproj}"

// DependencyMapTool renders the declared dependencies of every project manifest
// found under a workspace directory.
type DependencyMapTool struct{}

// NewDependencyMapTool creates a new instance of DependencyMapTool.
func NewDependencyMapTool() DependencyMapTool {
	return DependencyMapTool{}
}

// Definition returns the tool definition for DependencyMapTool.
func (DependencyMapTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "dependency_map",
		Description: "Map the projects of the workspace and their direct dependencies by reading go.mod, package.json and .csproj manifests.",
		Input: domain.ToolInput{
			Type: "object",
			Fields: map[string]domain.ToolField{
				"directory": {
					Type:        "string",
					Description: "Optional directory relative to the workspace root.",
					Required:    false,
				},
			},
		},
		Hints: domain.ToolHints{
			UseWhen:  "understanding how the codebase is organized or which libraries it depends on.",
			ArgRules: "directory is optional.",
		},
	}
}

// ValidateInput checks the tool parameters.
func (DependencyMapTool) ValidateInput(tctx domain.ToolExecutionContext) error {
	_, err := tctx.OptionalString("directory", "")
	return err
}

// ExecuteTool builds the dependency map.
func (DependencyMapTool) ExecuteTool(ctx context.Context, tctx domain.ToolExecutionContext) (string, error) {
	dir, err := resolveDirectory(tctx)
	if err != nil {
		return "", err
	}

	fsys := os.DirFS(dir)
	manifests, err := globWorkspace(tctx.WorkspaceRoot, dir, manifestPattern)
	if err != nil {
		return "", domain.NewDownstreamErr("failed to list manifests", err)
	}
	manifests = slices.DeleteFunc(manifests, func(p string) bool {
		return strings.Contains("/"+p, "/node_modules/") || strings.Contains("/"+p, "/vendor/")
	})
	slices.Sort(manifests)

	prefix := workspaceRelative(tctx.WorkspaceRoot, dir)
	if len(manifests) == 0 {
		return fmt.Sprintf("No dependency manifests found in '%s'", prefix), nil
	}

	var sb strings.Builder
	for i, manifest := range manifests {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		display := manifest
		if prefix != "." {
			display = path.Join(prefix, manifest)
		}
		project, err := readManifest(fsys, manifest)
		if i > 0 {
			sb.WriteString("\n")
		}
		if err != nil {
			fmt.Fprintf(&sb, "%s (unreadable: %v)\n", display, err)
			continue
		}
		fmt.Fprintf(&sb, "%s (%s %s)\n", display, project.kind, project.name)
		if len(project.dependencies) == 0 {
			sb.WriteString("  (no dependencies)\n")
		}
		for _, dep := range project.dependencies {
			fmt.Fprintf(&sb, "  - %s\n", dep)
		}
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

type projectManifest struct {
	kind         string
	name         string
	dependencies []string
}

func readManifest(fsys fs.FS, name string) (projectManifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return projectManifest{}, err
	}
	switch {
	case path.Base(name) == "go.mod":
		return parseGoMod(name, data)
	case path.Base(name) == "package.json":
		return parsePackageJSON(name, data)
	default:
		return parseCsproj(name, data)
	}
}

func parseGoMod(name string, data []byte) (projectManifest, error) {
	f, err := modfile.ParseLax(name, data, nil)
	if err != nil {
		return projectManifest{}, err
	}
	m := projectManifest{kind: "go module", name: path.Dir(name)}
	if f.Module != nil {
		m.name = f.Module.Mod.Path
	}
	for _, req := range f.Require {
		if req.Indirect {
			continue
		}
		m.dependencies = append(m.dependencies, req.Mod.Path+" "+req.Mod.Version)
	}
	return m, nil
}

func parsePackageJSON(name string, data []byte) (projectManifest, error) {
	var pkg struct {
		Name            string            `json:"name"`
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return projectManifest{}, err
	}
	m := projectManifest{kind: "npm package", name: pkg.Name}
	if m.name == "" {
		m.name = path.Dir(name)
	}
	for _, dep := range sortedKeys(pkg.Dependencies) {
		m.dependencies = append(m.dependencies, dep+" "+pkg.Dependencies[dep])
	}
	for _, dep := range sortedKeys(pkg.DevDependencies) {
		m.dependencies = append(m.dependencies, dep+" "+pkg.DevDependencies[dep]+" (dev)")
	}
	return m, nil
}

func parseCsproj(name string, data []byte) (projectManifest, error) {
	var project struct {
		ItemGroups []struct {
			ProjectReferences []struct {
				Include string `xml:"Include,attr"`
			} `xml:"ProjectReference"`
			PackageReferences []struct {
				Include        string `xml:"Include,attr"`
				Version        string `xml:"Version,attr"`
				VersionElement string `xml:"Version"`
			} `xml:"PackageReference"`
		} `xml:"ItemGroup"`
	}
	if err := xml.Unmarshal(data, &project); err != nil {
		return projectManifest{}, err
	}
	m := projectManifest{
		kind: ".NET project",
		name: strings.TrimSuffix(path.Base(name), ".csproj"),
	}
	for _, group := range project.ItemGroups {
		for _, ref := range group.ProjectReferences {
			m.dependencies = append(m.dependencies, "project: "+strings.ReplaceAll(ref.Include, `\`, "/"))
		}
		for _, ref := range group.PackageReferences {
			version := ref.Version
			if version == "" {
				version = strings.TrimSpace(ref.VersionElement)
			}
			m.dependencies = append(m.dependencies, strings.TrimSpace("package: "+ref.Include+" "+version))
		}
	}
	return m, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
