// Package talent recommends freelancers for a job, blending lexical
// skill similarity with historical ratings.
package talent

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gigmatch/gigmatch/internal/domain"
	"github.com/gigmatch/gigmatch/internal/tfidf"
)

const (
	skillWeight  = 0.6
	ratingWeight = 0.4

	// neutral midpoint on the 0-5 scale for users with no ratings yet
	neutralRating = 2.5
	ratingScale   = 5.0
)

// Catalog supplies the record snapshots the matcher scores over
type Catalog interface {
	Jobs(ctx context.Context) ([]domain.Job, error)
	Users(ctx context.Context) ([]domain.User, error)
	Ratings(ctx context.Context) ([]domain.Rating, error)
}

// CandidateUser is the response-friendly view of a scored user
type CandidateUser struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Skills   []string `json:"skills"`
}

// CandidateScores carries the composite and component scores
type CandidateScores struct {
	Final      float64 `json:"final"`
	SkillMatch float64 `json:"skill_match"`
	AvgRating  float64 `json:"avg_rating"`
}

// Candidate pairs a user with their scores against the target job
type Candidate struct {
	User   CandidateUser   `json:"user"`
	Scores CandidateScores `json:"scores"`
}

// TagSearch is the result of the tag-driven mode: a virtual job summary
// and the completed-profile candidates, unranked, for downstream triage.
type TagSearch struct {
	TargetJobSummary string          `json:"target_job_summary"`
	Candidates       []CandidateUser `json:"candidates"`
}

type Service interface {
	ByJobID(ctx context.Context, jobID string, topN int) ([]Candidate, error)
	ByTags(ctx context.Context, tags []string) (TagSearch, error)
}

// NewService builds a talent matching service
func NewService(catalog Catalog) (Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("talent.Service: catalog is required")
	}
	return &service{catalog: catalog}, nil
}

type service struct {
	catalog Catalog
}

// ByJobID scores every user against the referenced job. The final score
// is 0.6 * skill similarity + 0.4 * normalized average rating; users
// without ratings score at the neutral midpoint rather than zero.
func (s *service) ByJobID(ctx context.Context, jobID string, topN int) ([]Candidate, error) {
	jobs, err := s.catalog.Jobs(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.catalog.Users(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err := s.catalog.Ratings(ctx)
	if err != nil {
		return nil, err
	}

	var target *domain.Job
	for i := range jobs {
		if jobs[i].ID == jobID {
			target = &jobs[i]
			break
		}
	}
	if target == nil {
		return nil, domain.NewJobNotFound(jobID)
	}

	avgRatings := averageRatings(ratings)

	jobTokens := tfidf.Tokenize(target.Document())
	userTokens := make([][]string, len(users))
	corpus := make([][]string, 0, len(users)+1)
	corpus = append(corpus, jobTokens)
	for i, u := range users {
		userTokens[i] = tfidf.Tokenize(u.PreferenceDocument())
		corpus = append(corpus, userTokens[i])
	}

	idf := tfidf.InverseDocFrequency(corpus)
	jobVec := tfidf.Weight(tfidf.TermFrequency(jobTokens), idf)

	candidates := make([]Candidate, 0, len(users))
	for i, u := range users {
		userVec := tfidf.Weight(tfidf.TermFrequency(userTokens[i]), idf)
		skillScore := tfidf.Cosine(jobVec, userVec)

		rating, rated := avgRatings[u.ID]
		scoringRating := rating
		if !rated {
			scoringRating = neutralRating
		}
		finalScore := skillWeight*skillScore + ratingWeight*(scoringRating/ratingScale)

		candidates = append(candidates, Candidate{
			User: CandidateUser{
				ID:       u.ID,
				Username: u.Username,
				Skills:   u.Preference,
			},
			Scores: CandidateScores{
				Final:      round4(finalScore),
				SkillMatch: round4(skillScore),
				// unrated users display 0 even though scoring
				// assumed the neutral midpoint
				AvgRating: round2(rating),
			},
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Scores.Final > candidates[j].Scores.Final
	})

	if topN > 0 && topN < len(candidates) {
		candidates = candidates[:topN]
	}
	return candidates, nil
}

// ByTags serves the no-job-id mode: it synthesizes a virtual job from
// the tag list and filters candidates to completed profiles. No scoring
// happens here; ranking is left to the caller.
func (s *service) ByTags(ctx context.Context, tags []string) (TagSearch, error) {
	users, err := s.catalog.Users(ctx)
	if err != nil {
		return TagSearch{}, err
	}

	candidates := make([]CandidateUser, 0, len(users))
	for _, u := range users {
		if !u.ProfileCompleted {
			continue
		}
		candidates = append(candidates, CandidateUser{
			ID:       u.ID,
			Username: u.Username,
			Skills:   u.Preference,
		})
	}

	return TagSearch{
		TargetJobSummary: fmt.Sprintf("Virtual job requiring: %s", strings.Join(tags, ", ")),
		Candidates:       candidates,
	}, nil
}

func averageRatings(ratings []domain.Rating) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range ratings {
		sums[r.UserID] += r.Value
		counts[r.UserID]++
	}

	avg := make(map[string]float64, len(sums))
	for id, sum := range sums {
		if counts[id] > 0 {
			avg[id] = sum / float64(counts[id])
		}
	}
	return avg
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

func round2(v float64) float64 {
	return math.Round(v*1e2) / 1e2
}
