package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
)

// GetTicketTool fetches a ticket from the ticket-tracking system.
type GetTicketTool struct {
	tracker domain.TicketTracker
}

// NewGetTicketTool creates a new instance of GetTicketTool.
func NewGetTicketTool(tracker domain.TicketTracker) GetTicketTool {
	return GetTicketTool{tracker: tracker}
}

// Definition returns the tool definition for GetTicketTool.
func (GetTicketTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "get_ticket",
		Description: "Fetch a ticket by key and return its summary, status, assignee and description.",
		Input: domain.ToolInput{
			Type: "object",
			Fields: map[string]domain.ToolField{
				"ticket_key": ticketKeyField,
			},
		},
		Hints: domain.ToolHints{
			UseWhen:  "the request references a ticket key such as ABC-123.",
			ArgRules: "ticket_key must look like PROJECT-123.",
		},
	}
}

// ValidateInput checks the tool parameters.
func (GetTicketTool) ValidateInput(tctx domain.ToolExecutionContext) error {
	_, err := ticketKeyParam(tctx)
	return err
}

// ExecuteTool fetches and renders the ticket.
func (t GetTicketTool) ExecuteTool(ctx context.Context, tctx domain.ToolExecutionContext) (string, error) {
	key, err := ticketKeyParam(tctx)
	if err != nil {
		return "", err
	}
	ticket, err := t.tracker.GetTicket(ctx, key)
	if err != nil {
		return "", err
	}
	return renderTicket(ticket), nil
}

func renderTicket(ticket domain.Ticket) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", ticket.Key, ticket.Summary)
	fmt.Fprintf(&sb, "Status: %s\n", valueOrNone(ticket.Status))
	if ticket.Type != "" {
		fmt.Fprintf(&sb, "Type: %s\n", ticket.Type)
	}
	if ticket.Priority != "" {
		fmt.Fprintf(&sb, "Priority: %s\n", ticket.Priority)
	}
	fmt.Fprintf(&sb, "Assignee: %s\n", valueOrNone(ticket.Assignee))
	fmt.Fprintf(&sb, "Description:\n%s", valueOrNone(strings.TrimSpace(ticket.Description)))
	return sb.String()
}

func valueOrNone(v string) string {
	if v == "" {
		return "(none)"
	}
	return v
}

var ticketKeyField = domain.ToolField{
	Type:        "string",
	Description: "Ticket key, e.g. ABC-123.",
	Required:    true,
}

// ticketKeyParam reads and validates the ticket_key parameter.
func ticketKeyParam(tctx domain.ToolExecutionContext) (string, error) {
	key, err := tctx.String("ticket_key")
	if err != nil {
		return "", err
	}
	if err := domain.ValidateTicketKey(key); err != nil {
		return "", err
	}
	return key, nil
}
