package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/usecases"
	"github.com/google/uuid"
)

func (api AgentRuntimeServer) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := api.ListAgentsUseCase.Query(r.Context())
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := AgentListResp{Agents: []Agent{}}
	for _, a := range agents {
		resp.Agents = append(resp.Agents, toAgent(a))
	}
	respondJSON(w, http.StatusOK, resp)
}

// ExecuteAgent runs an agent. Streaming agents answer with Server-Sent Events,
// one event per chunk; the others answer with the collected chunks.
func (api AgentRuntimeServer) ExecuteAgent(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantFromHeader(w, r)
	if !ok {
		return
	}

	req := ExecuteAgentReq{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest("invalid request body"))
		return
	}

	execution, err := api.RunAgentUseCase.Execute(r.Context(), usecases.RunAgentRequest{
		TenantID:   tenantID,
		AgentName:  r.PathValue("name"),
		Message:    req.Message,
		History:    toHistory(req.History),
		Parameters: req.Parameters,
	})
	if err != nil {
		respondError(w, toError(err))
		return
	}

	streaming := execution.Streaming
	if req.Stream != nil {
		streaming = *req.Stream
	}
	if !streaming {
		chunks, outcome := domain.CollectChunks(execution.Chunks)
		resp := ExecuteAgentResp{
			Agent:   execution.AgentName,
			Outcome: outcome,
			Chunks:  make([]Chunk, 0, len(chunks)),
		}
		for _, c := range chunks {
			resp.Chunks = append(resp.Chunks, toChunk(c))
		}
		respondJSON(w, http.StatusOK, resp)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, ErrorResp{Error: Error{Code: INTERNALERROR, Message: "streaming not supported"}})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for chunk := range execution.Chunks {
		if err := writeEvent(w, chunk); err != nil {
			// The client went away; breaking stops the agent.
			api.Logger.Printf("ExecuteAgent: error during streaming: %v", err)
			return
		}
		flusher.Flush()
	}
}

func writeEvent(w http.ResponseWriter, chunk domain.AgentStreamChunk) error {
	data, err := json.Marshal(toChunk(chunk))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\n", chunk.Kind()); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}

func tenantFromHeader(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.Header.Get(TenantHeader)
	if raw == "" {
		respondError(w, badRequest(fmt.Sprintf("%s header is required", TenantHeader)))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid %s header", TenantHeader)))
		return uuid.Nil, false
	}
	return id, true
}

func uuidFromPath(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid %s", name)))
		return uuid.Nil, false
	}
	return id, true
}
