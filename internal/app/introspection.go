package app

import (
	"context"
	"log"
	"os"
	"slices"
	"strings"

	rest "github.com/cleitonmarx/symbiont-ai-agentruntime/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector publishes the startup wiring as a Mermaid graph for
// the /introspect endpoint.
type MermaidGraphIntrospector struct{}

// Introspect registers the graph under rest.DependencyGraphName.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), rest.DependencyGraphName)
	return nil
}

// ReportLoggerIntrospector logs which configuration keys fell back to their
// defaults, so a missing secret is visible at startup.
type ReportLoggerIntrospector struct {
	Logger *log.Logger
}

// Introspect logs the configuration summary of the report.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		logger = log.New(os.Stdout, "", log.LstdFlags|log.Lmsgprefix)
	}

	var defaulted []string
	for _, c := range r.Configs {
		if c.UsedDefault {
			defaulted = append(defaulted, c.Key)
		}
	}
	slices.Sort(defaulted)
	defaulted = slices.Compact(defaulted)

	logger.Printf("ReportLoggerIntrospector: %d configuration keys read, %d using defaults", len(r.Configs), len(defaulted))
	if len(defaulted) > 0 {
		logger.Printf("ReportLoggerIntrospector: defaults in use: %s", strings.Join(defaulted, ", "))
	}
	return nil
}
