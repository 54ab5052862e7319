package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	catalogService "tatkal/internal/domains/catalog/service"
	identityService "tatkal/internal/domains/identity/service"
)

// Bootstrap runs the startup writes the application depends on: the
// administrator record and the default train catalog. Both are idempotent,
// so restarting against a persistent store is safe.
type Bootstrap interface {
	Run(ctx context.Context) error
}

type bootstrapImpl struct {
	identity identityService.Identity
	catalog  catalogService.Catalog
}

func New(identity identityService.Identity, catalog catalogService.Catalog) Bootstrap {
	return &bootstrapImpl{
		identity: identity,
		catalog:  catalog,
	}
}

func (b *bootstrapImpl) Run(ctx context.Context) error {
	if err := b.identity.EnsureAdministrator(ctx); err != nil {
		return fmt.Errorf("ensuring administrator: %w", err)
	}

	if err := b.catalog.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("seeding train catalog: %w", err)
	}

	log.Info().Msg("Startup data asserted")

	return nil
}
