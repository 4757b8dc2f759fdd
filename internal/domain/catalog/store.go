// Package catalog fronts the marketplace gateway with a short-TTL cache
// of normalized job, user, and rating snapshots.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gigmatch/gigmatch/internal/domain"
	"github.com/gigmatch/gigmatch/pkg/marketplace"
)

const defaultTTL = time.Minute

// ListClient describes the subset of the marketplace client used by the store.
type ListClient interface {
	ListJobs(ctx context.Context) ([]marketplace.JobRecord, error)
	ListUsers(ctx context.Context) ([]marketplace.UserRecord, error)
	ListRatings(ctx context.Context) ([]marketplace.RatingRecord, error)
}

type entry[T any] struct {
	payload   []T
	fetchedAt time.Time
}

// Store caches each resource for the configured TTL. Entries are
// replaced whole on a successful fetch; concurrent refreshes of the same
// stale resource may both fetch, and the last writer wins.
type Store struct {
	client ListClient
	ttl    time.Duration
	clock  func() time.Time

	mu      sync.Mutex
	jobs    entry[domain.Job]
	users   entry[domain.User]
	ratings entry[domain.Rating]
}

// Option configures Store
type Option func(*Store)

// WithTTL overrides the cache freshness window
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// NewStore builds a Store from options
func NewStore(client ListClient, opts ...Option) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("catalog: client is required")
	}

	s := &Store{
		client: client,
		ttl:    defaultTTL,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewStoreWithDeps creates a Store with direct dependencies (Wire-compatible)
func NewStoreWithDeps(client ListClient, ttl time.Duration) (*Store, error) {
	return NewStore(client, WithTTL(ttl))
}

// Jobs returns the cached job snapshot, refreshing it when stale
func (s *Store) Jobs(ctx context.Context) ([]domain.Job, error) {
	if cached, ok := freshPayload(s, &s.jobs); ok {
		return cached, nil
	}

	records, err := s.client.ListJobs(ctx)
	if err != nil {
		return nil, &domain.FetchError{Resource: "jobs", Err: err}
	}

	jobs := make([]domain.Job, 0, len(records))
	for _, r := range records {
		jobs = append(jobs, mapJob(r))
	}

	replacePayload(s, &s.jobs, jobs)
	return jobs, nil
}

// Users returns the cached user snapshot, refreshing it when stale
func (s *Store) Users(ctx context.Context) ([]domain.User, error) {
	if cached, ok := freshPayload(s, &s.users); ok {
		return cached, nil
	}

	records, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, &domain.FetchError{Resource: "users", Err: err}
	}

	users := make([]domain.User, 0, len(records))
	for _, r := range records {
		users = append(users, domain.User{
			ID:               r.ID,
			Username:         r.Username,
			Preference:       r.Preference,
			ProfileCompleted: r.IsProfileCompleted,
		})
	}

	replacePayload(s, &s.users, users)
	return users, nil
}

// Ratings returns the cached rating snapshot, refreshing it when stale
func (s *Store) Ratings(ctx context.Context) ([]domain.Rating, error) {
	if cached, ok := freshPayload(s, &s.ratings); ok {
		return cached, nil
	}

	records, err := s.client.ListRatings(ctx)
	if err != nil {
		return nil, &domain.FetchError{Resource: "ratings", Err: err}
	}

	ratings := make([]domain.Rating, 0, len(records))
	for _, r := range records {
		if r.UserID == "" || r.Rating == nil {
			continue
		}
		ratings = append(ratings, domain.Rating{
			UserID: r.UserID,
			Value:  *r.Rating,
		})
	}

	replacePayload(s, &s.ratings, ratings)
	return ratings, nil
}

func freshPayload[T any](s *Store, e *entry[T]) ([]T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.payload == nil {
		return nil, false
	}
	if s.clock().Sub(e.fetchedAt) >= s.ttl {
		return nil, false
	}
	return e.payload, true
}

func replacePayload[T any](s *Store, e *entry[T], payload []T) {
	s.mu.Lock()
	e.payload = payload
	e.fetchedAt = s.clock()
	s.mu.Unlock()
}

func mapJob(r marketplace.JobRecord) domain.Job {
	job := domain.Job{
		ID:          r.ID,
		Name:        r.JobName,
		Description: r.JobDescription,
		Salary:      r.JobSalary,
	}

	if job.ID == "" {
		job.ID = uuid.NewString()
	}

	if r.JobSlots != nil {
		slots := int(*r.JobSlots)
		job.Slots = &slots
	}

	job.Tags = make([]domain.Tag, 0, len(r.JobTags))
	for _, t := range r.JobTags {
		job.Tags = append(job.Tags, domain.Tag{CategoryName: t.JobCategoryName})
	}

	return job
}
