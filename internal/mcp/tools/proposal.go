package tools

import (
	"context"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gigmatch/gigmatch/internal/domain"
	"github.com/gigmatch/gigmatch/internal/domain/proposal"
	"github.com/gigmatch/gigmatch/pkg/logging"
)

// ProposalTemplateParams defines the arguments for the proposal_template tool
type ProposalTemplateParams struct {
	JobID   string            `json:"job_id" jsonschema:"Identifier of the job to write a proposal for"`
	Profile *proposal.Profile `json:"profile,omitempty" jsonschema:"Optional freelancer profile used to personalize the template"`
}

type proposalTemplateTool struct {
	service proposal.Service
	logger  *logging.Logger
}

// RegisterProposalTool registers the proposal_template tool
func RegisterProposalTool(server *sdkmcp.Server, service proposal.Service, logger *logging.Logger) error {
	if service == nil {
		return fmt.Errorf("proposal tool: service is required")
	}

	handler := proposalTemplateTool{service: service, logger: logger}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "proposal_template",
		Description: "Generate a personalized proposal template for a job posting",
	}, handler.handle)

	if logger != nil {
		logger.Info("proposal tool registered", "tool", "proposal_template")
	}
	return nil
}

func (t proposalTemplateTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *ProposalTemplateParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil {
		params = &ProposalTemplateParams{}
	}
	if params.JobID == "" {
		return errorResult("job_id is required")
	}

	if t.logger != nil {
		t.logger.Info("proposal_template request",
			"job_id", params.JobID,
			"has_profile", params.Profile != nil,
		)
	}

	tmpl, err := t.service.Compose(ctx, params.JobID, params.Profile)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("proposal_template: composition failed", "err", err, "job_id", params.JobID)
		}

		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return errorResult(err.Error())
		}
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			return errorResult(err.Error())
		}
		return nil, nil, err
	}

	if t.logger != nil {
		t.logger.Info("proposal_template completed", "job_id", params.JobID, "title", tmpl.Title)
	}

	msg := fmt.Sprintf("[proposal_template] %s (%d scope item(s))", tmpl.Title, len(tmpl.ScopeBreakdown))
	return textResult(msg), tmpl, nil
}
