// Package recommend ranks job postings against a freelancer's skills
// using TF-IDF weighted cosine similarity.
package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gigmatch/gigmatch/internal/domain"
	"github.com/gigmatch/gigmatch/internal/tfidf"
)

// JobSource supplies the job snapshot to rank against
type JobSource interface {
	Jobs(ctx context.Context) ([]domain.Job, error)
}

// ScoredJob pairs a job with its similarity score against the query
type ScoredJob struct {
	Job   domain.Job `json:"job"`
	Score float64    `json:"score"`
}

type Service interface {
	BySkills(ctx context.Context, skills []string, topN int) ([]ScoredJob, error)
}

// NewService builds a job recommendation service
func NewService(source JobSource) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("recommend.Service: job source is required")
	}
	return &service{source: source}, nil
}

type service struct {
	source JobSource
}

// BySkills scores every job by cosine similarity against the skill
// query and returns the top N, highest first. The IDF corpus includes a
// synthetic document built from the query itself, so rare skill terms
// keep a positive weight even when no job mentions them.
func (s *service) BySkills(ctx context.Context, skills []string, topN int) ([]ScoredJob, error) {
	jobs, err := s.source.Jobs(ctx)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return []ScoredJob{}, nil
	}

	jobTokens := make([][]string, len(jobs))
	corpus := make([][]string, 0, len(jobs)+1)
	for i, j := range jobs {
		jobTokens[i] = tfidf.Tokenize(j.Document())
		corpus = append(corpus, jobTokens[i])
	}

	queryTokens := tfidf.Tokenize(strings.Join(skills, " "))
	idf := tfidf.InverseDocFrequency(append(corpus, queryTokens))
	queryVec := tfidf.Weight(tfidf.TermFrequency(queryTokens), idf)

	scored := make([]ScoredJob, 0, len(jobs))
	for i, j := range jobs {
		jobVec := tfidf.Weight(tfidf.TermFrequency(jobTokens[i]), idf)
		scored = append(scored, ScoredJob{
			Job:   j,
			Score: round4(tfidf.Cosine(queryVec, jobVec)),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topN > 0 && topN < len(scored) {
		scored = scored[:topN]
	}
	return scored, nil
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
