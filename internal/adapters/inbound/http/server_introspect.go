package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
)

// DependencyGraphName is the container name of the Mermaid graph produced at startup.
const DependencyGraphName = "agentruntime-dependency-graph"

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	graphPage  = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

// DependencyGraph serves the wiring graph of the running process. With
// ?format=mermaid it returns the graph source, otherwise an HTML page that renders it.
func DependencyGraph(w http.ResponseWriter, r *http.Request) {
	graph, err := depend.ResolveNamed[string](DependencyGraphName)
	if err != nil {
		http.Error(w, "dependency graph is not available", http.StatusServiceUnavailable)
		return
	}

	if r.URL.Query().Get("format") == "mermaid" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(graph))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := struct {
		Title string
		Graph string
	}{
		Title: "Agent Runtime Wiring",
		Graph: graph,
	}
	if err := graphPage.Execute(w, page); err != nil {
		http.Error(w, "failed to render dependency graph", http.StatusInternalServerError)
	}
}
