package tools

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
)

// TransitionTicketTool moves a ticket through its workflow.
type TransitionTicketTool struct {
	tracker domain.TicketTracker
}

// NewTransitionTicketTool creates a new instance of TransitionTicketTool.
func NewTransitionTicketTool(tracker domain.TicketTracker) TransitionTicketTool {
	return TransitionTicketTool{tracker: tracker}
}

// Definition returns the tool definition for TransitionTicketTool.
func (TransitionTicketTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "transition_ticket",
		Description: "Apply a workflow transition (e.g. In Progress, Done) to a ticket.",
		Input: domain.ToolInput{
			Type: "object",
			Fields: map[string]domain.ToolField{
				"ticket_key": ticketKeyField,
				"transition_name": {
					Type:        "string",
					Description: "Name of the workflow transition, e.g. Done.",
					Required:    true,
				},
			},
		},
		Hints: domain.ToolHints{
			UseWhen:  "the user asks to move a ticket to another status.",
			ArgRules: "transition_name must match a transition available on the ticket.",
		},
	}
}

// ValidateInput checks the tool parameters.
func (TransitionTicketTool) ValidateInput(tctx domain.ToolExecutionContext) error {
	_, _, err := transitionParams(tctx)
	return err
}

// ExecuteTool applies the transition. The tracker client owns the timeout policy.
func (t TransitionTicketTool) ExecuteTool(ctx context.Context, tctx domain.ToolExecutionContext) (string, error) {
	key, transition, err := transitionParams(tctx)
	if err != nil {
		return "", err
	}
	if err := t.tracker.TransitionToStatus(ctx, key, transition); err != nil {
		return "", err
	}
	return fmt.Sprintf("Successfully transitioned %s to '%s'", key, transition), nil
}

func transitionParams(tctx domain.ToolExecutionContext) (string, string, error) {
	key, err := ticketKeyParam(tctx)
	if err != nil {
		return "", "", err
	}
	transition, err := tctx.String("transition_name")
	if err != nil {
		return "", "", err
	}
	if err := domain.ValidateTransitionName(transition); err != nil {
		return "", "", err
	}
	return key, transition, nil
}
