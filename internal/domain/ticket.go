package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var ticketKeyPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]+-\d+$`)

// Ticket is a ticket as seen by the ticket-tracking system.
type Ticket struct {
	Key         string
	Summary     string
	Description string
	Status      string
	Assignee    string
	Type        string
	Priority    string
}

// TicketTracker is the ticket-tracking system client.
type TicketTracker interface {
	// GetTicket fetches a ticket by key. Returns NotFoundErr when it does not exist.
	GetTicket(ctx context.Context, key string) (Ticket, error)

	// AddComment adds a comment to a ticket.
	AddComment(ctx context.Context, key, text string) error

	// TransitionToStatus applies the named workflow transition to a ticket.
	TransitionToStatus(ctx context.Context, key, transitionName string) error
}

// ValidateTicketKey checks a ticket key such as ABC-123.
func ValidateTicketKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return NewMissingParameterErr("ticket_key")
	}
	if len(key) > MaxTicketKeyLength {
		return NewValidationErr(fmt.Sprintf("ticket key must be at most %d characters", MaxTicketKeyLength))
	}
	if !ticketKeyPattern.MatchString(key) {
		return NewValidationErr(fmt.Sprintf("invalid ticket key '%s': expected format PROJECT-123", key))
	}
	return nil
}

// ValidateTransitionName checks a workflow transition name.
func ValidateTransitionName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewMissingParameterErr("transition_name")
	}
	if len(name) > MaxTransitionNameLength {
		return NewValidationErr(fmt.Sprintf("transition name must be at most %d characters", MaxTransitionNameLength))
	}
	return nil
}
