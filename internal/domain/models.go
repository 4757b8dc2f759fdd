package domain

import "strings"

// Tag is a job category label
type Tag struct {
	CategoryName string `json:"jobCategoryName"`
}

// Job is a normalized job posting snapshot as fetched from the platform.
// Salary and Slots stay nil when the posting does not declare them.
type Job struct {
	ID          string   `json:"id"`
	Name        string   `json:"jobName"`
	Description []string `json:"jobDescription"`
	Tags        []Tag    `json:"jobTags"`
	Salary      *float64 `json:"jobSalary,omitempty"`
	Slots       *int     `json:"jobSlots,omitempty"`
}

// TagNames returns the job's category names in posting order
func (j Job) TagNames() []string {
	names := make([]string, 0, len(j.Tags))
	for _, t := range j.Tags {
		names = append(names, t.CategoryName)
	}
	return names
}

// Document assembles the job's text body for vectorization: name, tag
// names, then description fragments, joined by single spaces.
func (j Job) Document() string {
	parts := []string{
		j.Name,
		strings.Join(j.TagNames(), " "),
		strings.Join(j.Description, " "),
	}
	return strings.Join(parts, " ")
}

// User is a normalized platform user snapshot
type User struct {
	ID               string   `json:"id"`
	Username         string   `json:"username"`
	Preference       []string `json:"preference"`
	ProfileCompleted bool     `json:"isProfileCompleted"`
}

// PreferenceDocument assembles the user's skill preferences into a
// single text body for vectorization.
func (u User) PreferenceDocument() string {
	return strings.Join(u.Preference, " ")
}

// Rating is a single rating event for a user, on a 0-5 scale
type Rating struct {
	UserID string  `json:"user_id"`
	Value  float64 `json:"rating"`
}
