package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/gigmatch/gigmatch/internal/domain"
	"github.com/gigmatch/gigmatch/internal/domain/budget"
	"github.com/gigmatch/gigmatch/internal/domain/proposal"
	"github.com/gigmatch/gigmatch/internal/domain/recommend"
	"github.com/gigmatch/gigmatch/internal/domain/talent"
)

type stubRecommend struct {
	scored []recommend.ScoredJob
	err    error
}

func (s stubRecommend) BySkills(_ context.Context, _ []string, _ int) ([]recommend.ScoredJob, error) {
	return s.scored, s.err
}

type stubTalent struct {
	candidates []talent.Candidate
	search     talent.TagSearch
	err        error
}

func (s stubTalent) ByJobID(_ context.Context, _ string, _ int) ([]talent.Candidate, error) {
	return s.candidates, s.err
}

func (s stubTalent) ByTags(_ context.Context, _ []string) (talent.TagSearch, error) {
	return s.search, s.err
}

type stubBudget struct {
	estimate budget.Estimate
	err      error
}

func (s stubBudget) Advise(_ context.Context, _ string, _ []string, _ *int) (budget.Estimate, error) {
	return s.estimate, s.err
}

type stubProposal struct {
	tmpl proposal.Proposal
	err  error
}

func (s stubProposal) Compose(_ context.Context, _ string, _ *proposal.Profile) (proposal.Proposal, error) {
	return s.tmpl, s.err
}

func errPayload(t *testing.T, payload any) string {
	t.Helper()
	m, ok := payload.(map[string]any)
	if !ok {
		t.Fatalf("payload type = %T, want map", payload)
	}
	msg, ok := m["error"].(string)
	if !ok {
		t.Fatalf("payload %v has no error message", m)
	}
	return msg
}

func TestRecommendRejectsOutOfRangeTopN(t *testing.T) {
	handler := recommendJobsTool{service: stubRecommend{}}

	_, payload, err := handler.handle(context.Background(), nil, &RecommendJobsParams{TopN: 21})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if got, want := errPayload(t, payload), "top_n must be between 1 and 20"; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestRecommendMapsFetchError(t *testing.T) {
	handler := recommendJobsTool{service: stubRecommend{
		err: &domain.FetchError{Resource: "jobs", Err: errors.New("gateway down")},
	}}

	_, payload, err := handler.handle(context.Background(), nil, &RecommendJobsParams{Skills: []string{"go"}})
	if err != nil {
		t.Fatalf("fetch errors should surface as payloads, got %v", err)
	}
	errPayload(t, payload)
}

func TestRecommendPropagatesUnexpectedError(t *testing.T) {
	handler := recommendJobsTool{service: stubRecommend{err: errors.New("corrupted state")}}

	_, _, err := handler.handle(context.Background(), nil, &RecommendJobsParams{Skills: []string{"go"}})
	if err == nil {
		t.Fatal("unexpected errors should propagate as protocol errors")
	}
}

func TestFindTalentRejectsBothModes(t *testing.T) {
	handler := findTalentTool{service: stubTalent{}}

	_, payload, err := handler.handle(context.Background(), nil, &FindTalentParams{
		JobID:   "j1",
		JobTags: []string{"go"},
	})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if got, want := errPayload(t, payload), "provide either job_id or job_tags, not both"; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestFindTalentRejectsNeitherMode(t *testing.T) {
	handler := findTalentTool{service: stubTalent{}}

	_, payload, err := handler.handle(context.Background(), nil, &FindTalentParams{})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if got, want := errPayload(t, payload), "either job_id or job_tags is required"; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestFindTalentMapsNotFound(t *testing.T) {
	handler := findTalentTool{service: stubTalent{err: domain.NewJobNotFound("j9")}}

	_, payload, err := handler.handle(context.Background(), nil, &FindTalentParams{JobID: "j9"})
	if err != nil {
		t.Fatalf("not-found should surface as a payload, got %v", err)
	}
	if got, want := errPayload(t, payload), "Job j9 not found"; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestBudgetRequiresScope(t *testing.T) {
	handler := budgetAdviceTool{service: stubBudget{}}

	_, payload, err := handler.handle(context.Background(), nil, &BudgetAdviceParams{})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if got, want := errPayload(t, payload), "scope is required"; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestBudgetNoComparablesReason(t *testing.T) {
	handler := budgetAdviceTool{service: stubBudget{err: budget.ErrNoComparableSalaries}}

	_, payload, err := handler.handle(context.Background(), nil, &BudgetAdviceParams{Scope: "work"})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}

	m, ok := payload.(map[string]any)
	if !ok {
		t.Fatalf("payload type = %T, want map", payload)
	}
	if m["advice"] != nil {
		t.Fatalf("advice = %v, want nil", m["advice"])
	}
	if m["reason"] != budget.ReasonNoComparables {
		t.Fatalf("reason = %v, want %q", m["reason"], budget.ReasonNoComparables)
	}
}

func TestProposalRequiresJobID(t *testing.T) {
	handler := proposalTemplateTool{service: stubProposal{}}

	_, payload, err := handler.handle(context.Background(), nil, &ProposalTemplateParams{})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if got, want := errPayload(t, payload), "job_id is required"; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}
