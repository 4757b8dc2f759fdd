//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"github.com/gigmatch/gigmatch/internal/config"
	"github.com/gigmatch/gigmatch/internal/domain/budget"
	"github.com/gigmatch/gigmatch/internal/domain/catalog"
	"github.com/gigmatch/gigmatch/internal/domain/proposal"
	"github.com/gigmatch/gigmatch/internal/domain/recommend"
	"github.com/gigmatch/gigmatch/internal/domain/talent"
	"github.com/gigmatch/gigmatch/pkg/marketplace"
)

// InitializeResources wires the marketplace client, catalog store, and
// domain services from configuration.
func InitializeResources(cfg config.Config) (*Resources, error) {
	wire.Build(
		provideMarketplaceConfig,
		marketplace.NewClient,
		provideCatalogStore,
		wire.Bind(new(recommend.JobSource), new(*catalog.Store)),
		wire.Bind(new(talent.Catalog), new(*catalog.Store)),
		wire.Bind(new(budget.JobSource), new(*catalog.Store)),
		wire.Bind(new(proposal.JobSource), new(*catalog.Store)),
		recommend.NewService,
		talent.NewService,
		budget.NewService,
		proposal.NewService,
		newResources,
	)
	return nil, nil
}
