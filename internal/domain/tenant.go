package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TenantConfiguration is a snapshot of a tenant's policy.
type TenantConfiguration struct {
	TenantID                  uuid.UUID `json:"tenant_id"`
	AutoContinueEnabled       bool      `json:"auto_continue_enabled"`
	AutoImplementationEnabled bool      `json:"auto_implementation_enabled"`
	MaxRetries                int       `json:"max_retries"`
	MaxTokens                 int       `json:"max_tokens"`
	Model                     string    `json:"model,omitempty"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// TenantRepository reads tenant policy from persistence.
type TenantRepository interface {
	// GetTenantConfiguration returns the configuration of a tenant.
	// The bool is false when the tenant has no configuration.
	GetTenantConfiguration(ctx context.Context, tenantID uuid.UUID) (TenantConfiguration, bool, error)

	// GetTicketTenantID returns the tenant owning a ticket.
	// The bool is false when the ticket does not exist.
	GetTicketTenantID(ctx context.Context, ticketID uuid.UUID) (uuid.UUID, bool, error)
}
