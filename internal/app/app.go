package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/adapters/outbound/agentcatalog"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/adapters/outbound/anthropic"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/adapters/outbound/jira"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/toolbox"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/usecases"
)

// NewAgentRuntimeApp creates and returns a new instance of the agent runtime application.
func NewAgentRuntimeApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitTenantRepository{},
			&agentcatalog.InitAgentCatalog{},
			&jira.InitTicketTracker{},
			// Only the provider selected by LLM_PROVIDER registers itself.
			&modelrunner.InitLanguageModelProvider{},
			&anthropic.InitLanguageModelProvider{},

			&toolbox.InitToolRegistry{},
			&usecases.InitAgentRuntime{},
			&usecases.InitTenantConfigurationService{},
			&usecases.InitRunAgent{},
			&usecases.InitExecuteTool{},
			&usecases.InitListAgents{},
			&usecases.InitListTools{},
		).
		Host(
			&http.AgentRuntimeServer{},
			&mcp.ToolServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
