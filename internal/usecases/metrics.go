package usecases

import (
	"context"
	"strconv"
	"time"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter              = otel.Meter("usecases")
	ToolExecutions     metric.Int64Counter
	AgentExecutions    metric.Int64Counter
	LLMRequestDuration metric.Float64Histogram
)

func init() {
	var err error
	ToolExecutions, err = meter.Int64Counter(
		"tool_executions_total",
		metric.WithDescription("Total tool invocations by tool and outcome"),
	)
	if err != nil {
		panic(err)
	}

	AgentExecutions, err = meter.Int64Counter(
		"agent_executions_total",
		metric.WithDescription("Total agent executions by agent and stream outcome"),
	)
	if err != nil {
		panic(err)
	}

	LLMRequestDuration, err = meter.Float64Histogram(
		"llm_request_duration_seconds",
		metric.WithDescription("Duration of language model calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordToolExecution records one tool invocation.
func RecordToolExecution(ctx context.Context, tool string, result domain.ToolResult) {
	ToolExecutions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("success", strconv.FormatBool(result.Success)),
	))
}

// RecordAgentExecution records how an agent stream ended.
func RecordAgentExecution(ctx context.Context, agent string, outcome domain.StreamOutcome) {
	AgentExecutions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("agent", agent),
		attribute.String("outcome", string(outcome)),
	))
}

// RecordLLMRequestDuration records the latency of a language model call.
func RecordLLMRequestDuration(ctx context.Context, model string, elapsed time.Duration, success bool) {
	LLMRequestDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("model", model),
		attribute.Bool("success", success),
	))
}
