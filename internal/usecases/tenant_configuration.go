package usecases

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// DefaultTenantConfigurationTTL is how long a tenant configuration snapshot is cached.
const DefaultTenantConfigurationTTL = 5 * time.Minute

// TenantConfigurationService resolves tenant policy.
type TenantConfigurationService interface {
	// GetConfiguration returns the configuration of a tenant. The bool is false
	// when the tenant has none.
	GetConfiguration(ctx context.Context, tenantID uuid.UUID) (domain.TenantConfiguration, bool, error)

	// GetConfigurationForTicket returns the configuration of the tenant owning a ticket.
	GetConfigurationForTicket(ctx context.Context, ticketID uuid.UUID) (domain.TenantConfiguration, bool, error)

	// GetAutoImplementationEnabled reports whether auto-implementation is enabled
	// for a ticket. It is false whenever the configuration cannot be resolved.
	GetAutoImplementationEnabled(ctx context.Context, ticketID uuid.UUID) bool
}

// TenantConfigurationServiceImpl is a read-through cache over the TenantRepository.
// Only found configurations are cached, so a newly created tenant is visible on
// the next lookup.
type TenantConfigurationServiceImpl struct {
	repo   domain.TenantRepository
	logger *log.Logger
	cache  *expirable.LRU[uuid.UUID, domain.TenantConfiguration]
	group  *singleflight.Group
}

// NewTenantConfigurationServiceImpl creates a new instance of TenantConfigurationServiceImpl.
// A non-positive ttl falls back to DefaultTenantConfigurationTTL; a non-positive
// size leaves the cache unbounded.
func NewTenantConfigurationServiceImpl(repo domain.TenantRepository, logger *log.Logger, ttl time.Duration, size int) TenantConfigurationServiceImpl {
	if ttl <= 0 {
		ttl = DefaultTenantConfigurationTTL
	}
	return TenantConfigurationServiceImpl{
		repo:   repo,
		logger: logger,
		cache:  expirable.NewLRU[uuid.UUID, domain.TenantConfiguration](max(size, 0), nil, ttl),
		group:  &singleflight.Group{},
	}
}

type tenantLookup struct {
	config domain.TenantConfiguration
	found  bool
}

// GetConfiguration returns the cached snapshot or loads it from the repository.
func (s TenantConfigurationServiceImpl) GetConfiguration(ctx context.Context, tenantID uuid.UUID) (domain.TenantConfiguration, bool, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithTenant(tenantID))
	defer span.End()

	if cfg, ok := s.cache.Get(tenantID); ok {
		return cfg, true, nil
	}

	// The shared lookup outlives any single caller; each caller stops waiting on its own ctx.
	lookupCtx := context.WithoutCancel(spanCtx)
	ch := s.group.DoChan(tenantID.String(), func() (any, error) {
		cfg, found, err := s.repo.GetTenantConfiguration(lookupCtx, tenantID)
		if err != nil {
			return tenantLookup{}, err
		}
		if found {
			s.cache.Add(tenantID, cfg)
		}
		return tenantLookup{config: cfg, found: found}, nil
	})

	select {
	case <-spanCtx.Done():
		err := spanCtx.Err()
		telemetry.RecordErrorAndStatus(span, err)
		return domain.TenantConfiguration{}, false, err
	case res := <-ch:
		if telemetry.RecordErrorAndStatus(span, res.Err) {
			return domain.TenantConfiguration{}, false, res.Err
		}
		lookup := res.Val.(tenantLookup)
		return lookup.config, lookup.found, nil
	}
}

// GetConfigurationForTicket resolves the ticket's tenant, then its configuration.
func (s TenantConfigurationServiceImpl) GetConfigurationForTicket(ctx context.Context, ticketID uuid.UUID) (domain.TenantConfiguration, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	tenantID, found, err := s.repo.GetTicketTenantID(spanCtx, ticketID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.TenantConfiguration{}, false, err
	}
	if !found {
		return domain.TenantConfiguration{}, false, nil
	}
	return s.GetConfiguration(spanCtx, tenantID)
}

// GetAutoImplementationEnabled fails closed.
func (s TenantConfigurationServiceImpl) GetAutoImplementationEnabled(ctx context.Context, ticketID uuid.UUID) bool {
	cfg, found, err := s.GetConfigurationForTicket(ctx, ticketID)
	if err != nil {
		s.logger.Printf("TenantConfigurationService: failed to resolve configuration for ticket %s: %v", ticketID, err)
		return false
	}
	if !found {
		return false
	}
	return cfg.AutoImplementationEnabled
}

// InitTenantConfigurationService is the initializer for the TenantConfigurationService.
type InitTenantConfigurationService struct {
	Repo      domain.TenantRepository `resolve:""`
	Logger    *log.Logger             `resolve:""`
	CacheTTL  time.Duration           `config:"TENANT_CONFIG_CACHE_TTL" default:"5m"`
	CacheSize int                     `config:"TENANT_CONFIG_CACHE_SIZE" default:"1024"`
}

// Initialize registers the TenantConfigurationService in the dependency container.
func (i InitTenantConfigurationService) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TenantConfigurationService](NewTenantConfigurationServiceImpl(
		i.Repo,
		i.Logger,
		i.CacheTTL,
		i.CacheSize,
	))
	return ctx, nil
}
