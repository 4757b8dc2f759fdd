// Package budget estimates a realistic compensation range for a scope
// of work from comparable historical job postings.
package budget

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gigmatch/gigmatch/internal/domain"
	"github.com/gigmatch/gigmatch/internal/tfidf"
)

// ErrNoComparableSalaries is returned when the comparable job set has no
// positive salary samples. It is a normal, reportable outcome rather
// than a failure.
var ErrNoComparableSalaries = errors.New("no comparable salaries found")

// ReasonNoComparables is the caller-facing phrasing for the null-advice result
const ReasonNoComparables = "No comparable salaries found"

// scope keywords that push the estimate up or down
var (
	heavyKeywords = map[string]struct{}{
		"integration": {}, "optimization": {}, "scalable": {}, "realtime": {},
		"security": {}, "ml": {}, "ai": {}, "distributed": {},
	}
	lightKeywords = map[string]struct{}{
		"bugfix": {}, "minor": {}, "landing": {}, "static": {}, "copywriting": {},
	}
)

// Range is the recommended low/high compensation band
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Estimate is the budget advisory result
type Estimate struct {
	Median   float64  `json:"median"`
	Range    Range    `json:"range"`
	Samples  int      `json:"samples"`
	TagsUsed []string `json:"tags_used"`
	Notes    string   `json:"notes"`
}

// JobSource supplies the historical job snapshot
type JobSource interface {
	Jobs(ctx context.Context) ([]domain.Job, error)
}

type Service interface {
	Advise(ctx context.Context, scope string, tags []string, slots *int) (Estimate, error)
}

// NewService builds a budget advisory service
func NewService(source JobSource) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("budget.Service: job source is required")
	}
	return &service{source: source}, nil
}

type service struct {
	source JobSource
}

// Advise derives a median +/- 0.5*IQR band from comparable salaries and
// scales it by scope keywords and requested slot capacity. Given the
// same job snapshot and arguments the result is fully deterministic.
func (s *service) Advise(ctx context.Context, scope string, tags []string, slots *int) (Estimate, error) {
	jobs, err := s.source.Jobs(ctx)
	if err != nil {
		return Estimate{}, err
	}

	comps := comparables(jobs, tags)

	salaries := make([]float64, 0, len(comps))
	for _, j := range comps {
		if j.Salary != nil && *j.Salary > 0 {
			salaries = append(salaries, *j.Salary)
		}
	}
	if len(salaries) == 0 {
		return Estimate{}, ErrNoComparableSalaries
	}

	sort.Float64s(salaries)
	n := len(salaries)

	var median float64
	if n%2 == 1 {
		median = salaries[n/2]
	} else {
		median = 0.5 * (salaries[n/2-1] + salaries[n/2])
	}

	// positional quartiles, deliberately uninterpolated
	q1 := salaries[n/4]
	q3 := salaries[(3*n)/4]
	iqr := math.Max(q3-q1, 1.0)

	low := math.Max(0.0, median-0.5*iqr)
	high := median + 0.5*iqr

	factor := 1.0
	scopeTokens := tokenSet(tfidf.Tokenize(scope))
	if intersects(scopeTokens, heavyKeywords) {
		factor *= 1.2
	}
	if intersects(scopeTokens, lightKeywords) {
		factor *= 0.9
	}

	if slots != nil && *slots > 0 {
		factor *= slotFactor(comps, *slots)
	}

	return Estimate{
		Median:   round2(median),
		Range:    Range{Low: round2(low * factor), High: round2(high * factor)},
		Samples:  n,
		TagsUsed: tags,
		Notes:    "Heuristic estimate using median±0.5*IQR, adjusted by scope keywords and slots.",
	}, nil
}

// comparables filters jobs to those sharing at least one requested tag,
// case-insensitively, falling back to the full set when no tags were
// given or nothing overlaps.
func comparables(jobs []domain.Job, tags []string) []domain.Job {
	if len(tags) == 0 {
		return jobs
	}

	wanted := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		wanted[strings.ToLower(t)] = struct{}{}
	}

	comps := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		for _, name := range j.TagNames() {
			if _, ok := wanted[strings.ToLower(name)]; ok {
				comps = append(comps, j)
				break
			}
		}
	}

	if len(comps) == 0 {
		return jobs
	}
	return comps
}

// slotFactor scales the estimate by requested capacity relative to the
// average declared slot count, clamped to [0.5, 2.0] so capacity never
// dominates the price.
func slotFactor(comps []domain.Job, slots int) float64 {
	sum := 0
	count := 0
	for _, j := range comps {
		if j.Slots != nil {
			sum += *j.Slots
			count++
		}
	}
	if count == 0 {
		count = 1
	}

	avgSlots := math.Max(1.0, float64(sum)/float64(count))
	return clamp(float64(slots)/avgSlots, 0.5, 2.0)
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func intersects(a, b map[string]struct{}) bool {
	for t := range a {
		if _, ok := b[t]; ok {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round2(v float64) float64 {
	return math.Round(v*1e2) / 1e2
}
