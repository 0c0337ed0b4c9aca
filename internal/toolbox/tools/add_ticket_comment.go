package tools

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
)

// AddTicketCommentTool adds a comment to a ticket.
type AddTicketCommentTool struct {
	tracker domain.TicketTracker
}

// NewAddTicketCommentTool creates a new instance of AddTicketCommentTool.
func NewAddTicketCommentTool(tracker domain.TicketTracker) AddTicketCommentTool {
	return AddTicketCommentTool{tracker: tracker}
}

// Definition returns the tool definition for AddTicketCommentTool.
func (AddTicketCommentTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "add_ticket_comment",
		Description: "Add a comment to a ticket in the ticket-tracking system.",
		Input: domain.ToolInput{
			Type: "object",
			Fields: map[string]domain.ToolField{
				"ticket_key": ticketKeyField,
				"comment": {
					Type:        "string",
					Description: "Comment text. Plain text or the tracker's markup.",
					Required:    true,
				},
			},
		},
		Hints: domain.ToolHints{
			UseWhen:   "reporting progress or findings on a ticket.",
			AvoidWhen: "the user only asked a question.",
			ArgRules:  fmt.Sprintf("comment must be non-empty and at most %d characters.", domain.MaxCommentLength),
		},
	}
}

// ValidateInput checks the tool parameters.
func (AddTicketCommentTool) ValidateInput(tctx domain.ToolExecutionContext) error {
	_, _, err := commentParams(tctx)
	return err
}

// ExecuteTool posts the comment.
func (t AddTicketCommentTool) ExecuteTool(ctx context.Context, tctx domain.ToolExecutionContext) (string, error) {
	key, comment, err := commentParams(tctx)
	if err != nil {
		return "", err
	}
	if err := t.tracker.AddComment(ctx, key, comment); err != nil {
		return "", err
	}
	return fmt.Sprintf("Successfully added comment to %s", key), nil
}

func commentParams(tctx domain.ToolExecutionContext) (string, string, error) {
	key, err := ticketKeyParam(tctx)
	if err != nil {
		return "", "", err
	}
	comment, err := tctx.String("comment")
	if err != nil {
		return "", "", err
	}
	if utf8.RuneCountInString(comment) > domain.MaxCommentLength {
		return "", "", domain.NewValidationErr(fmt.Sprintf("comment must be at most %d characters", domain.MaxCommentLength))
	}
	return key, comment, nil
}
