package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	tenantConfigurationFields = []string{
		"tenant_id",
		"auto_continue_enabled",
		"auto_implementation_enabled",
		"max_retries",
		"max_tokens",
		"model",
		"updated_at",
	}
)

// TenantRepository is a PostgreSQL implementation of domain.TenantRepository.
type TenantRepository struct {
	pqsql squirrel.StatementBuilderType
}

// NewTenantRepository creates a new instance of TenantRepository.
func NewTenantRepository(db *sql.DB) TenantRepository {
	return TenantRepository{
		pqsql: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
	}
}

// GetTenantConfiguration retrieves the configuration of a tenant.
func (tr TenantRepository) GetTenantConfiguration(ctx context.Context, tenantID uuid.UUID) (domain.TenantConfiguration, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("tenant_id", tenantID.String()),
	))
	defer span.End()

	var (
		cfg   domain.TenantConfiguration
		model sql.NullString
	)
	err := tr.pqsql.
		Select(tenantConfigurationFields...).
		From("tenant_configuration").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		QueryRowContext(spanCtx).
		Scan(
			&cfg.TenantID,
			&cfg.AutoContinueEnabled,
			&cfg.AutoImplementationEnabled,
			&cfg.MaxRetries,
			&cfg.MaxTokens,
			&model,
			&cfg.UpdatedAt,
		)
	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.TenantConfiguration{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.TenantConfiguration{}, false, fmt.Errorf("failed to get tenant configuration: %w", err)
	}

	cfg.Model = model.String
	return cfg, true, nil
}

// GetTicketTenantID retrieves the tenant owning a ticket.
func (tr TenantRepository) GetTicketTenantID(ctx context.Context, ticketID uuid.UUID) (uuid.UUID, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("ticket_id", ticketID.String()),
	))
	defer span.End()

	var tenantID uuid.UUID
	err := tr.pqsql.
		Select("tenant_id").
		From("ticket").
		Where(squirrel.Eq{"id": ticketID}).
		QueryRowContext(spanCtx).
		Scan(&tenantID)
	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return uuid.Nil, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return uuid.Nil, false, fmt.Errorf("failed to get ticket tenant: %w", err)
	}
	return tenantID, true, nil
}

// InitTenantRepository is a Symbiont initializer for TenantRepository.
type InitTenantRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the TenantRepository in the dependency container.
func (i InitTenantRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TenantRepository](NewTenantRepository(i.DB))
	return ctx, nil
}
