package tools

import (
	"context"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gigmatch/gigmatch/internal/domain"
	"github.com/gigmatch/gigmatch/internal/domain/budget"
	"github.com/gigmatch/gigmatch/pkg/logging"
)

// BudgetAdviceParams defines the arguments for the budget_advice tool
type BudgetAdviceParams struct {
	Scope string   `json:"scope" jsonschema:"Short description of the work scope"`
	Tags  []string `json:"tags,omitempty" jsonschema:"Category tags used to select comparable jobs"`
	Slots *int     `json:"slots,omitempty" jsonschema:"Requested worker slots (minimum 1)"`
}

type budgetAdviceTool struct {
	service budget.Service
	logger  *logging.Logger
}

// RegisterBudgetTool registers the budget_advice tool
func RegisterBudgetTool(server *sdkmcp.Server, service budget.Service, logger *logging.Logger) error {
	if service == nil {
		return fmt.Errorf("budget tool: service is required")
	}

	handler := budgetAdviceTool{service: service, logger: logger}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "budget_advice",
		Description: "Suggest a realistic budget range for a scope of work from comparable jobs",
	}, handler.handle)

	if logger != nil {
		logger.Info("budget tool registered", "tool", "budget_advice")
	}
	return nil
}

func (t budgetAdviceTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *BudgetAdviceParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil {
		params = &BudgetAdviceParams{}
	}
	if params.Scope == "" {
		return errorResult("scope is required")
	}
	if params.Slots != nil && *params.Slots < 1 {
		return errorResult("slots must be at least 1")
	}

	if t.logger != nil {
		t.logger.Info("budget_advice request",
			"scope", params.Scope,
			"tags", params.Tags,
			"has_slots", params.Slots != nil,
		)
	}

	estimate, err := t.service.Advise(ctx, params.Scope, params.Tags, params.Slots)
	if err != nil {
		if errors.Is(err, budget.ErrNoComparableSalaries) {
			if t.logger != nil {
				t.logger.Warn("budget_advice: no comparable salaries", "tags", params.Tags)
			}
			payload := map[string]any{
				"advice": nil,
				"reason": budget.ReasonNoComparables,
			}
			return textResult("[budget_advice] " + budget.ReasonNoComparables), payload, nil
		}

		if t.logger != nil {
			t.logger.Error("budget_advice: estimation failed", "err", err)
		}
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			return errorResult(err.Error())
		}
		return nil, nil, err
	}

	if t.logger != nil {
		t.logger.Info("budget_advice completed",
			"median", estimate.Median,
			"low", estimate.Range.Low,
			"high", estimate.Range.High,
			"samples", estimate.Samples,
		)
	}

	msg := fmt.Sprintf("[budget_advice] Median %.2f, range %.2f-%.2f from %d sample(s)",
		estimate.Median, estimate.Range.Low, estimate.Range.High, estimate.Samples)
	return textResult(msg), estimate, nil
}
