package talent

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/gigmatch/gigmatch/internal/domain"
)

type stubCatalog struct {
	jobs    []domain.Job
	users   []domain.User
	ratings []domain.Rating
	err     error
}

func (s stubCatalog) Jobs(_ context.Context) ([]domain.Job, error)       { return s.jobs, s.err }
func (s stubCatalog) Users(_ context.Context) ([]domain.User, error)     { return s.users, s.err }
func (s stubCatalog) Ratings(_ context.Context) ([]domain.Rating, error) { return s.ratings, s.err }

func TestNewServiceRequiresCatalog(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("NewService(nil) should fail")
	}
}

func TestByJobIDUnknownJob(t *testing.T) {
	svc, err := NewService(stubCatalog{jobs: []domain.Job{{ID: "j1", Name: "Backend"}}})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.ByJobID(context.Background(), "missing", 3)
	if err == nil {
		t.Fatal("ByJobID should fail for an unknown job id")
	}

	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error type = %T, want *domain.NotFoundError", err)
	}
	if got, want := err.Error(), "Job missing not found"; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestByJobIDUnratedUserScoresNeutralButDisplaysZero(t *testing.T) {
	svc, err := NewService(stubCatalog{
		jobs:  []domain.Job{{ID: "j1", Name: "Sculpture restoration"}},
		users: []domain.User{{ID: "u1", Username: "sam", Preference: []string{"python"}}},
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	candidates, err := svc.ByJobID(context.Background(), "j1", 3)
	if err != nil {
		t.Fatalf("ByJobID: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}

	c := candidates[0]
	if c.Scores.SkillMatch != 0 {
		t.Fatalf("skill match = %v, want 0 for disjoint vocabulary", c.Scores.SkillMatch)
	}
	// 0.6*0 + 0.4*(2.5/5) for the unrated neutral midpoint
	if math.Abs(c.Scores.Final-0.2) > 1e-9 {
		t.Fatalf("final = %v, want 0.2", c.Scores.Final)
	}
	if c.Scores.AvgRating != 0 {
		t.Fatalf("displayed avg rating = %v, want 0 for an unrated user", c.Scores.AvgRating)
	}
}

func TestByJobIDRanksRatedMatchingUserFirst(t *testing.T) {
	svc, err := NewService(stubCatalog{
		jobs: []domain.Job{{
			ID:   "j1",
			Name: "Python backend",
			Tags: []domain.Tag{{CategoryName: "python"}},
		}},
		users: []domain.User{
			{ID: "u1", Username: "nora", Preference: []string{"python", "backend"}},
			{ID: "u2", Username: "kit", Preference: []string{"illustration"}},
		},
		ratings: []domain.Rating{
			{UserID: "u1", Value: 4.0},
			{UserID: "u1", Value: 5.0},
		},
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	candidates, err := svc.ByJobID(context.Background(), "j1", 2)
	if err != nil {
		t.Fatalf("ByJobID: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(candidates))
	}
	if candidates[0].User.ID != "u1" {
		t.Fatalf("top candidate = %s, want u1", candidates[0].User.ID)
	}
	if got := candidates[0].Scores.AvgRating; math.Abs(got-4.5) > 1e-9 {
		t.Fatalf("avg rating = %v, want 4.5", got)
	}
	if candidates[0].Scores.Final <= candidates[1].Scores.Final {
		t.Fatalf("top final %v should exceed runner-up %v",
			candidates[0].Scores.Final, candidates[1].Scores.Final)
	}
}

func TestByJobIDTruncatesToTopN(t *testing.T) {
	users := []domain.User{
		{ID: "u1", Username: "a"},
		{ID: "u2", Username: "b"},
		{ID: "u3", Username: "c"},
	}

	svc, err := NewService(stubCatalog{
		jobs:  []domain.Job{{ID: "j1", Name: "Backend"}},
		users: users,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	candidates, err := svc.ByJobID(context.Background(), "j1", 2)
	if err != nil {
		t.Fatalf("ByJobID: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(candidates))
	}
}

func TestByTagsFiltersIncompleteProfiles(t *testing.T) {
	svc, err := NewService(stubCatalog{
		users: []domain.User{
			{ID: "u1", Username: "done", ProfileCompleted: true, Preference: []string{"react"}},
			{ID: "u2", Username: "wip", ProfileCompleted: false},
			{ID: "u3", Username: "also-done", ProfileCompleted: true},
		},
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	search, err := svc.ByTags(context.Background(), []string{"frontend", "react"})
	if err != nil {
		t.Fatalf("ByTags: %v", err)
	}

	if got, want := search.TargetJobSummary, "Virtual job requiring: frontend, react"; got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
	if len(search.Candidates) != 2 {
		t.Fatalf("got %d candidates, want 2 completed profiles", len(search.Candidates))
	}
	for _, c := range search.Candidates {
		if c.ID == "u2" {
			t.Fatal("incomplete profile u2 should be filtered out")
		}
	}
}

func TestByTagsPropagatesError(t *testing.T) {
	svc, err := NewService(stubCatalog{err: errors.New("gateway down")})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	if _, err := svc.ByTags(context.Background(), []string{"go"}); err == nil {
		t.Fatal("ByTags should propagate the catalog error")
	}
}
