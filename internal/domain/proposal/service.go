// Package proposal assembles a deterministic proposal template from a
// job posting and an optional freelancer profile.
package proposal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gigmatch/gigmatch/internal/domain"
)

const maxScopeFragments = 6

// Profile is the optional freelancer profile used to personalize the template
type Profile struct {
	Name         string   `json:"name,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Proposal is the fixed-shape template result
type Proposal struct {
	Title          string   `json:"title"`
	Introduction   string   `json:"introduction"`
	Understanding  string   `json:"understanding"`
	ScopeBreakdown []string `json:"scope_breakdown"`
	Approach       []string `json:"approach"`
	Deliverables   []string `json:"deliverables"`
	Timeline       string   `json:"timeline"`
	BudgetHint     string   `json:"budget_hint"`
	WhyMe          string   `json:"why_me"`
	Tags           string   `json:"tags"`
}

// JobSource supplies the job snapshot to compose against
type JobSource interface {
	Jobs(ctx context.Context) ([]domain.Job, error)
}

type Service interface {
	Compose(ctx context.Context, jobID string, profile *Profile) (Proposal, error)
}

// NewService builds a proposal composition service
func NewService(source JobSource) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("proposal.Service: job source is required")
	}
	return &service{source: source}, nil
}

type service struct {
	source JobSource
}

// Compose looks up the job and fills the template. No scoring happens
// here; the output is a pure function of the job record and profile.
func (s *service) Compose(ctx context.Context, jobID string, profile *Profile) (Proposal, error) {
	jobs, err := s.source.Jobs(ctx)
	if err != nil {
		return Proposal{}, err
	}

	var job *domain.Job
	for i := range jobs {
		if jobs[i].ID == jobID {
			job = &jobs[i]
			break
		}
	}
	if job == nil {
		return Proposal{}, domain.NewJobNotFound(jobID)
	}

	if profile == nil {
		profile = &Profile{}
	}

	scope := job.Description
	if len(scope) > maxScopeFragments {
		scope = scope[:maxScopeFragments]
	}

	return Proposal{
		Title:          fmt.Sprintf("Proposal for %s", job.Name),
		Introduction:   introduction(job.Name, profile),
		Understanding:  "Key points from your brief:",
		ScopeBreakdown: scope,
		Approach: []string{
			"Clarify success metrics and constraints",
			"Design and plan the solution with milestones",
			"Implement iteratively with regular check-ins",
			"Testing and quality assurance",
			"Handover and documentation",
		},
		Deliverables: []string{
			"Clear milestone plan",
			"Working solution matching requirements",
			"Documentation and basic training",
		},
		Timeline:   "Estimated 1-4 weeks depending on final scope",
		BudgetHint: budgetHint(job.Salary),
		WhyMe:      whyMe(profile.Achievements),
		Tags:       strings.Join(job.TagNames(), ", "),
	}, nil
}

func introduction(jobName string, profile *Profile) string {
	greeting := "Hello"
	if profile.Name != "" {
		greeting += " " + profile.Name
	}

	experience := "relevant areas"
	if len(profile.Skills) > 0 {
		experience = strings.Join(profile.Skills, ", ")
	}

	return fmt.Sprintf("%s, I'd love to help with %s. I have experience in %s.", greeting, jobName, experience)
}

func budgetHint(salary *float64) string {
	if salary == nil {
		return "Budget to be discussed based on scope"
	}
	return fmt.Sprintf("Target budget around %s (adjustable)", strconv.FormatFloat(*salary, 'f', -1, 64))
}

func whyMe(achievements []string) string {
	if len(achievements) == 0 {
		return "I focus on clarity, reliability, and timely delivery."
	}
	return "Highlights: " + strings.Join(achievements, "; ")
}
