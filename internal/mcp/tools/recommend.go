package tools

import (
	"context"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gigmatch/gigmatch/internal/domain"
	"github.com/gigmatch/gigmatch/internal/domain/recommend"
	"github.com/gigmatch/gigmatch/pkg/logging"
)

const (
	recommendDefaultTopN = 5
	recommendMaxTopN     = 20
)

// RecommendJobsParams defines the arguments for the recommend_jobs tool
type RecommendJobsParams struct {
	Skills []string `json:"skills" jsonschema:"Skills to match jobs against"`
	TopN   int      `json:"top_n,omitempty" jsonschema:"How many jobs to return (1-20, default 5)"`
}

// RecommendJobsResult is the structured response of recommend_jobs
type RecommendJobsResult struct {
	Jobs []recommend.ScoredJob `json:"jobs" jsonschema:"Jobs ranked by similarity, highest first"`
}

type recommendJobsTool struct {
	service recommend.Service
	logger  *logging.Logger
}

// RegisterRecommendTool registers the recommend_jobs tool
func RegisterRecommendTool(server *sdkmcp.Server, service recommend.Service, logger *logging.Logger) error {
	if service == nil {
		return fmt.Errorf("recommend tool: service is required")
	}

	handler := recommendJobsTool{service: service, logger: logger}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "recommend_jobs",
		Description: "Recommend job postings matching a freelancer's skill list",
	}, handler.handle)

	if logger != nil {
		logger.Info("recommend tool registered", "tool", "recommend_jobs")
	}
	return nil
}

func (t recommendJobsTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *RecommendJobsParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil {
		params = &RecommendJobsParams{}
	}

	topN := params.TopN
	if topN == 0 {
		topN = recommendDefaultTopN
	}
	if topN < 1 || topN > recommendMaxTopN {
		return errorResult(fmt.Sprintf("top_n must be between 1 and %d", recommendMaxTopN))
	}

	if t.logger != nil {
		t.logger.Info("recommend_jobs request",
			"skills", params.Skills,
			"top_n", topN,
		)
	}

	scored, err := t.service.BySkills(ctx, params.Skills, topN)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("recommend_jobs: ranking failed", "err", err)
		}
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			return errorResult(err.Error())
		}
		return nil, nil, err
	}

	if t.logger != nil {
		t.logger.Info("recommend_jobs completed", "results", len(scored))
	}

	msg := fmt.Sprintf("[recommend_jobs] Ranked %d job(s) against %d skill(s)", len(scored), len(params.Skills))
	for _, s := range scored {
		msg += fmt.Sprintf("\n• %s (score: %.4f)", s.Job.Name, s.Score)
	}

	return textResult(msg), RecommendJobsResult{Jobs: scored}, nil
}
