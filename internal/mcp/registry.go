package mcp

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gigmatch/gigmatch/internal/domain/budget"
	"github.com/gigmatch/gigmatch/internal/domain/catalog"
	"github.com/gigmatch/gigmatch/internal/domain/proposal"
	"github.com/gigmatch/gigmatch/internal/domain/recommend"
	"github.com/gigmatch/gigmatch/internal/domain/talent"
	"github.com/gigmatch/gigmatch/internal/mcp/tools"
	"github.com/gigmatch/gigmatch/pkg/logging"
)

// ToolRegistry installs every tool into an MCP server
type ToolRegistry struct {
	logger *logging.Logger
}

// Resources bundles the services the tools depend on
type Resources struct {
	Catalog      *catalog.Store
	RecommendSvc recommend.Service
	TalentSvc    talent.Service
	BudgetSvc    budget.Service
	ProposalSvc  proposal.Service
}

func NewToolRegistry(logger *logging.Logger) *ToolRegistry {
	return &ToolRegistry{logger: logger}
}

func (r *ToolRegistry) RegisterAll(server *sdkmcp.Server, res Resources) error {
	if err := tools.RegisterCatalogTools(server, res.Catalog, r.logger); err != nil {
		return err
	}

	if err := tools.RegisterRecommendTool(server, res.RecommendSvc, r.logger); err != nil {
		return err
	}

	if err := tools.RegisterTalentTool(server, res.TalentSvc, r.logger); err != nil {
		return err
	}

	if err := tools.RegisterBudgetTool(server, res.BudgetSvc, r.logger); err != nil {
		return err
	}

	if err := tools.RegisterProposalTool(server, res.ProposalSvc, r.logger); err != nil {
		return err
	}

	return nil
}
