package domain

import "fmt"

// NotFoundError reports a referenced record that is absent from the
// fetched snapshot.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NewJobNotFound builds the canonical missing-job error
func NewJobNotFound(id string) *NotFoundError {
	return &NotFoundError{Resource: "Job", ID: id}
}

// FetchError reports that both fetch strategies failed for a resource.
// The wrapped error carries both underlying failure messages.
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
