package mcp

import (
	"github.com/gigmatch/gigmatch/internal/config"
	"github.com/gigmatch/gigmatch/internal/domain/budget"
	"github.com/gigmatch/gigmatch/internal/domain/catalog"
	"github.com/gigmatch/gigmatch/internal/domain/proposal"
	"github.com/gigmatch/gigmatch/internal/domain/recommend"
	"github.com/gigmatch/gigmatch/internal/domain/talent"
	"github.com/gigmatch/gigmatch/pkg/marketplace"
)

func provideMarketplaceConfig(cfg config.Config) marketplace.Config {
	return marketplace.Config{
		BaseURL:        cfg.Gateway.BaseURL,
		JobCanister:    cfg.Gateway.JobCanister,
		UserCanister:   cfg.Gateway.UserCanister,
		RatingCanister: cfg.Gateway.RatingCanister,
		FetchTimeout:   cfg.Gateway.FetchTimeout,
	}
}

func provideCatalogStore(cfg config.Config, client *marketplace.Client) (*catalog.Store, error) {
	return catalog.NewStore(client, catalog.WithTTL(cfg.CacheTTL))
}

func newResources(
	store *catalog.Store,
	recommendSvc recommend.Service,
	talentSvc talent.Service,
	budgetSvc budget.Service,
	proposalSvc proposal.Service,
) *Resources {
	return &Resources{
		Catalog:      store,
		RecommendSvc: recommendSvc,
		TalentSvc:    talentSvc,
		BudgetSvc:    budgetSvc,
		ProposalSvc:  proposalSvc,
	}
}
