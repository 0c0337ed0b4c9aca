package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

func (api AgentRuntimeServer) ListTools(w http.ResponseWriter, r *http.Request) {
	defs, err := api.ListToolsUseCase.Query(r.Context())
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := ToolListResp{Tools: []Tool{}}
	for _, d := range defs {
		resp.Tools = append(resp.Tools, toTool(d))
	}
	respondJSON(w, http.StatusOK, resp)
}

// ExecuteTool invokes a tool directly. A failed tool run is still a 200: the
// failure is described by the returned ToolResult.
func (api AgentRuntimeServer) ExecuteTool(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantFromHeader(w, r)
	if !ok {
		return
	}

	req := ExecuteToolReq{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, badRequest("invalid request body"))
		return
	}

	result, err := api.ExecuteToolUseCase.Execute(r.Context(), tenantID, r.PathValue("name"), req.Parameters)
	if err != nil {
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, result)
}
