// Package http exposes the agent runtime over a JSON and Server-Sent Events API.
package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/usecases"
	"github.com/rs/cors"
)

// TenantHeader carries the id of the tenant a request acts for.
const TenantHeader = "X-Tenant-ID"

// AgentRuntimeServer is the REST API server of the agent runtime.
type AgentRuntimeServer struct {
	Port                  int                                 `config:"HTTP_PORT" default:"8080"`
	Logger                *log.Logger                         `resolve:""`
	ListAgentsUseCase     usecases.ListAgents                 `resolve:""`
	RunAgentUseCase       usecases.RunAgent                   `resolve:""`
	ListToolsUseCase      usecases.ListTools                  `resolve:""`
	ExecuteToolUseCase    usecases.ExecuteTool                `resolve:""`
	TenantConfigurationUC usecases.TenantConfigurationService `resolve:""`
}

// Handler builds the routed, instrumented handler of the API.
func (api AgentRuntimeServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", api.Healthz)
	mux.HandleFunc("GET /introspect", DependencyGraph)

	mux.HandleFunc("GET /api/v1/agents", api.ListAgents)
	mux.HandleFunc("POST /api/v1/agents/{name}/executions", api.ExecuteAgent)
	mux.HandleFunc("GET /api/v1/tools", api.ListTools)
	mux.HandleFunc("POST /api/v1/tools/{name}/executions", api.ExecuteTool)
	mux.HandleFunc("GET /api/v1/tenants/{id}/configuration", api.GetTenantConfiguration)
	mux.HandleFunc("GET /api/v1/tickets/{id}/auto-implementation", api.GetAutoImplementation)

	h := telemetry.Middleware("agentruntime-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", TenantHeader},
	}).Handler(h)
}

// Run starts the HTTP server.
func (api AgentRuntimeServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("AgentRuntimeServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("AgentRuntimeServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("AgentRuntimeServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the server is ready by performing a health check.
func (api AgentRuntimeServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Healthz reports liveness.
func (api AgentRuntimeServer) Healthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
