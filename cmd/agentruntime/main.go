package main

import "github.com/cleitonmarx/symbiont-ai-agentruntime/internal/app"

func main() {
	err := app.NewAgentRuntimeApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
