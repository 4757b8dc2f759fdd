package tools

import (
	"context"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gigmatch/gigmatch/internal/domain"
	"github.com/gigmatch/gigmatch/internal/domain/talent"
	"github.com/gigmatch/gigmatch/pkg/logging"
)

const (
	talentDefaultTopN = 3
	talentMaxTopN     = 10
)

// FindTalentParams defines the arguments for the find_talent tool.
// Exactly one of job_id and job_tags selects the query mode.
type FindTalentParams struct {
	JobID   string   `json:"job_id,omitempty" jsonschema:"Identifier of an existing job to staff"`
	JobTags []string `json:"job_tags,omitempty" jsonschema:"Free-form tags describing the work when no job exists yet"`
	TopN    int      `json:"top_n,omitempty" jsonschema:"How many candidates to return (1-10, default 3)"`
}

// FindTalentResult is the structured response of the job-id mode
type FindTalentResult struct {
	Candidates []talent.Candidate `json:"candidates" jsonschema:"Candidates ranked by composite score, highest first"`
}

type findTalentTool struct {
	service talent.Service
	logger  *logging.Logger
}

// RegisterTalentTool registers the find_talent tool
func RegisterTalentTool(server *sdkmcp.Server, service talent.Service, logger *logging.Logger) error {
	if service == nil {
		return fmt.Errorf("talent tool: service is required")
	}

	handler := findTalentTool{service: service, logger: logger}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "find_talent",
		Description: "Recommend freelancers for a job by skill similarity and rating, or filter candidates for a tag list",
	}, handler.handle)

	if logger != nil {
		logger.Info("talent tool registered", "tool", "find_talent")
	}
	return nil
}

func (t findTalentTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *FindTalentParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil {
		params = &FindTalentParams{}
	}

	if params.JobID != "" && len(params.JobTags) > 0 {
		return errorResult("provide either job_id or job_tags, not both")
	}
	if params.JobID == "" && len(params.JobTags) == 0 {
		return errorResult("either job_id or job_tags is required")
	}

	topN := params.TopN
	if topN == 0 {
		topN = talentDefaultTopN
	}
	if topN < 1 || topN > talentMaxTopN {
		return errorResult(fmt.Sprintf("top_n must be between 1 and %d", talentMaxTopN))
	}

	if len(params.JobTags) > 0 {
		return t.handleByTags(ctx, params.JobTags)
	}
	return t.handleByJobID(ctx, params.JobID, topN)
}

func (t findTalentTool) handleByJobID(ctx context.Context, jobID string, topN int) (*sdkmcp.CallToolResult, any, error) {
	if t.logger != nil {
		t.logger.Info("find_talent request", "job_id", jobID, "top_n", topN)
	}

	candidates, err := t.service.ByJobID(ctx, jobID, topN)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("find_talent: matching failed", "err", err, "job_id", jobID)
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
		t.logger.Info("find_talent completed", "job_id", jobID, "candidates", len(candidates))
		for _, c := range candidates {
			t.logger.Debug("find_talent candidate",
				"username", c.User.Username,
				"final", c.Scores.Final,
				"skill_match", c.Scores.SkillMatch,
				"avg_rating", c.Scores.AvgRating,
			)
		}
	}

	msg := fmt.Sprintf("[find_talent] Top %d candidate(s) for job %s", len(candidates), jobID)
	for _, c := range candidates {
		msg += fmt.Sprintf("\n• %s (final: %.4f, skill: %.4f, rating: %.2f)",
			c.User.Username, c.Scores.Final, c.Scores.SkillMatch, c.Scores.AvgRating)
	}

	return textResult(msg), FindTalentResult{Candidates: candidates}, nil
}

func (t findTalentTool) handleByTags(ctx context.Context, tags []string) (*sdkmcp.CallToolResult, any, error) {
	if t.logger != nil {
		t.logger.Info("find_talent request", "job_tags", tags)
	}

	search, err := t.service.ByTags(ctx, tags)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("find_talent: tag search failed", "err", err)
		}
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			return errorResult(err.Error())
		}
		return nil, nil, err
	}

	if t.logger != nil {
		t.logger.Info("find_talent completed", "job_tags", tags, "candidates", len(search.Candidates))
	}

	msg := fmt.Sprintf("[find_talent] %d completed-profile candidate(s) for: %s", len(search.Candidates), search.TargetJobSummary)
	return textResult(msg), search, nil
}
