package http

import (
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
)

func (api AgentRuntimeServer) GetTenantConfiguration(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := uuidFromPath(w, r, "id")
	if !ok {
		return
	}

	cfg, found, err := api.TenantConfigurationUC.GetConfiguration(r.Context(), tenantID)
	if err != nil {
		respondError(w, toError(err))
		return
	}
	if !found {
		respondError(w, toError(domain.NewNotFoundErr(fmt.Sprintf("tenant '%s' has no configuration", tenantID))))
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

func (api AgentRuntimeServer) GetAutoImplementation(w http.ResponseWriter, r *http.Request) {
	ticketID, ok := uuidFromPath(w, r, "id")
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, AutoImplementationResp{
		Enabled: api.TenantConfigurationUC.GetAutoImplementationEnabled(r.Context(), ticketID),
	})
}
