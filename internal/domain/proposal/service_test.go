package proposal

import (
	"context"
	"errors"
	"testing"

	"github.com/gigmatch/gigmatch/internal/domain"
)

type stubJobs struct {
	jobs []domain.Job
	err  error
}

func (s stubJobs) Jobs(_ context.Context) ([]domain.Job, error) {
	return s.jobs, s.err
}

func sampleJob() domain.Job {
	salary := 1500.0
	return domain.Job{
		ID:   "j1",
		Name: "Marketplace MVP",
		Description: []string{
			"Build the storefront",
			"Integrate payments",
			"Ship an admin panel",
		},
		Tags:   []domain.Tag{{CategoryName: "backend"}, {CategoryName: "react"}},
		Salary: &salary,
	}
}

func TestComposeFillsTemplate(t *testing.T) {
	svc, err := NewService(stubJobs{jobs: []domain.Job{sampleJob()}})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	tmpl, err := svc.Compose(context.Background(), "j1", &Profile{
		Name:         "Alex",
		Skills:       []string{"go", "react"},
		Achievements: []string{"Shipped an MVP in 6 weeks", "Maintained 99.9% uptime"},
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if got, want := tmpl.Title, "Proposal for Marketplace MVP"; got != want {
		t.Fatalf("title = %q, want %q", got, want)
	}
	if got, want := tmpl.Introduction, "Hello Alex, I'd love to help with Marketplace MVP. I have experience in go, react."; got != want {
		t.Fatalf("introduction = %q, want %q", got, want)
	}
	if got, want := tmpl.BudgetHint, "Target budget around 1500 (adjustable)"; got != want {
		t.Fatalf("budget hint = %q, want %q", got, want)
	}
	if got, want := tmpl.WhyMe, "Highlights: Shipped an MVP in 6 weeks; Maintained 99.9% uptime"; got != want {
		t.Fatalf("why me = %q, want %q", got, want)
	}
	if got, want := tmpl.Tags, "backend, react"; got != want {
		t.Fatalf("tags = %q, want %q", got, want)
	}
	if len(tmpl.ScopeBreakdown) != 3 {
		t.Fatalf("scope breakdown has %d items, want 3", len(tmpl.ScopeBreakdown))
	}
	if len(tmpl.Approach) != 5 || len(tmpl.Deliverables) != 3 {
		t.Fatalf("approach/deliverables = %d/%d, want 5/3", len(tmpl.Approach), len(tmpl.Deliverables))
	}
}

func TestComposeWithoutProfile(t *testing.T) {
	job := sampleJob()
	job.Salary = nil

	svc, err := NewService(stubJobs{jobs: []domain.Job{job}})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	tmpl, err := svc.Compose(context.Background(), "j1", nil)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if got, want := tmpl.Introduction, "Hello, I'd love to help with Marketplace MVP. I have experience in relevant areas."; got != want {
		t.Fatalf("introduction = %q, want %q", got, want)
	}
	if got, want := tmpl.BudgetHint, "Budget to be discussed based on scope"; got != want {
		t.Fatalf("budget hint = %q, want %q", got, want)
	}
	if got, want := tmpl.WhyMe, "I focus on clarity, reliability, and timely delivery."; got != want {
		t.Fatalf("why me = %q, want %q", got, want)
	}
}

func TestComposeCapsScopeFragments(t *testing.T) {
	job := sampleJob()
	job.Description = []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	svc, err := NewService(stubJobs{jobs: []domain.Job{job}})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	tmpl, err := svc.Compose(context.Background(), "j1", nil)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(tmpl.ScopeBreakdown) != 6 {
		t.Fatalf("scope breakdown has %d items, want cap of 6", len(tmpl.ScopeBreakdown))
	}
}

func TestComposeUnknownJob(t *testing.T) {
	svc, err := NewService(stubJobs{jobs: []domain.Job{sampleJob()}})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Compose(context.Background(), "missing", nil)
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v (%T), want *domain.NotFoundError", err, err)
	}
}

func TestComposePropagatesSourceError(t *testing.T) {
	svc, err := NewService(stubJobs{err: errors.New("gateway down")})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	if _, err := svc.Compose(context.Background(), "j1", nil); err == nil {
		t.Fatal("Compose should propagate the source error")
	}
}
