package tools

import (
	"context"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gigmatch/gigmatch/internal/domain"
	"github.com/gigmatch/gigmatch/pkg/logging"
)

// CatalogSource supplies raw record snapshots for the listing tools
type CatalogSource interface {
	Jobs(ctx context.Context) ([]domain.Job, error)
	Users(ctx context.Context) ([]domain.User, error)
}

// ListJobsParams defines the arguments for the list_jobs tool
type ListJobsParams struct{}

// ListUsersParams defines the arguments for the list_users tool
type ListUsersParams struct{}

type listJobsTool struct {
	source CatalogSource
	logger *logging.Logger
}

type listUsersTool struct {
	source CatalogSource
	logger *logging.Logger
}

// RegisterCatalogTools registers the raw listing tools
func RegisterCatalogTools(server *sdkmcp.Server, source CatalogSource, logger *logging.Logger) error {
	if source == nil {
		return fmt.Errorf("catalog tools: source is required")
	}

	jobsHandler := listJobsTool{source: source, logger: logger}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_jobs",
		Description: "Fetch every job posting from the platform",
	}, jobsHandler.handle)

	usersHandler := listUsersTool{source: source, logger: logger}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_users",
		Description: "Fetch every user profile from the platform",
	}, usersHandler.handle)

	if logger != nil {
		logger.Info("catalog tools registered", "tools", []string{"list_jobs", "list_users"})
	}
	return nil
}

func (t listJobsTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *ListJobsParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req
	_ = params

	jobs, err := t.source.Jobs(ctx)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("list_jobs: fetch failed", "err", err)
		}
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			return errorResult(err.Error())
		}
		return nil, nil, err
	}

	if t.logger != nil {
		t.logger.Info("list_jobs completed", "jobs_count", len(jobs))
	}

	msg := fmt.Sprintf("[list_jobs] Retrieved %d job posting(s)", len(jobs))
	return textResult(msg), map[string]any{"jobs": jobs}, nil
}

func (t listUsersTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *ListUsersParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req
	_ = params

	users, err := t.source.Users(ctx)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("list_users: fetch failed", "err", err)
		}
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			return errorResult(err.Error())
		}
		return nil, nil, err
	}

	if t.logger != nil {
		t.logger.Info("list_users completed", "users_count", len(users))
	}

	msg := fmt.Sprintf("[list_users] Retrieved %d user(s)", len(users))
	return textResult(msg), map[string]any{"users": users}, nil
}
