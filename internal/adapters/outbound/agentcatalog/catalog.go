// Package agentcatalog loads agent configurations from a YAML document.
package agentcatalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.yaml.in/yaml/v3"
)

//go:embed agents.yml
var defaultCatalog []byte

type catalogDocument struct {
	Agents []domain.AgentConfiguration `yaml:"agents"`
}

// YAMLCatalog is an in-memory domain.AgentCatalog decoded from YAML.
// It is read-only after construction.
type YAMLCatalog struct {
	agents []domain.AgentConfiguration
	byName map[string]int
}

// Load decodes and validates a catalog. Unknown fields are rejected so a
// misspelled key does not silently fall back to a zero value.
func Load(r io.Reader) (YAMLCatalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc catalogDocument
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return YAMLCatalog{}, domain.NewConfigurationErr(fmt.Sprintf("failed to decode agent catalog: %v", err))
	}

	c := YAMLCatalog{byName: make(map[string]int, len(doc.Agents))}
	for _, cfg := range doc.Agents {
		cfg.Name = strings.TrimSpace(cfg.Name)
		cfg.Instructions = strings.TrimSpace(cfg.Instructions)
		if err := cfg.Validate(); err != nil {
			return YAMLCatalog{}, domain.NewConfigurationErr(fmt.Sprintf("invalid agent '%s' in catalog: %v", cfg.Name, err))
		}
		if _, dup := c.byName[cfg.Name]; dup {
			return YAMLCatalog{}, domain.NewConfigurationErr(fmt.Sprintf("agent '%s' is declared more than once", cfg.Name))
		}
		c.agents = append(c.agents, cfg)
		c.byName[cfg.Name] = -1
	}

	slices.SortFunc(c.agents, func(a, b domain.AgentConfiguration) int {
		return strings.Compare(a.Name, b.Name)
	})
	for i, cfg := range c.agents {
		c.byName[cfg.Name] = i
	}
	return c, nil
}

// LoadFile loads the catalog at path.
func LoadFile(path string) (YAMLCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return YAMLCatalog{}, domain.NewConfigurationErr(fmt.Sprintf("failed to open agent catalog: %v", err))
	}
	defer f.Close() //nolint:errcheck
	return Load(f)
}

// LoadDefault loads the catalog embedded in the binary.
func LoadDefault() (YAMLCatalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// ListAgentConfigurations implements domain.AgentCatalog.
func (c YAMLCatalog) ListAgentConfigurations(ctx context.Context) ([]domain.AgentConfiguration, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	out := make([]domain.AgentConfiguration, len(c.agents))
	for i, cfg := range c.agents {
		cfg.EnabledTools = slices.Clone(cfg.EnabledTools)
		out[i] = cfg
	}
	return out, nil
}

// GetAgentConfiguration implements domain.AgentCatalog.
func (c YAMLCatalog) GetAgentConfiguration(ctx context.Context, name string) (domain.AgentConfiguration, bool, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	i, ok := c.byName[name]
	if !ok {
		return domain.AgentConfiguration{}, false, nil
	}
	cfg := c.agents[i]
	cfg.EnabledTools = slices.Clone(cfg.EnabledTools)
	return cfg, true, nil
}

// InitAgentCatalog registers the YAML catalog as the domain.AgentCatalog.
// AGENT_CATALOG_PATH set to "-" selects the embedded catalog.
type InitAgentCatalog struct {
	Path string `config:"AGENT_CATALOG_PATH" default:"-"`
}

// Initialize loads the catalog and registers it in the dependency container.
func (i InitAgentCatalog) Initialize(ctx context.Context) (context.Context, error) {
	var (
		catalog YAMLCatalog
		err     error
	)
	if i.Path == "" || i.Path == "-" {
		catalog, err = LoadDefault()
	} else {
		catalog, err = LoadFile(i.Path)
	}
	if err != nil {
		return ctx, err
	}

	depend.Register[domain.AgentCatalog](catalog)
	return ctx, nil
}
