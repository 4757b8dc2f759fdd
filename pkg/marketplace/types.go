package marketplace

import (
	"net/http"
	"time"
)

// Config defines marketplace gateway client settings
type Config struct {
	BaseURL        string
	JobCanister    string
	UserCanister   string
	RatingCanister string
	HTTPClient     *http.Client
	FetchTimeout   time.Duration
}

// Client fetches job, user, and rating records through the platform gateway
type Client struct {
	baseURL        string
	jobCanister    string
	userCanister   string
	ratingCanister string
	httpClient     *http.Client
	timeout        time.Duration
}

// JobTag is a single category attached to a job posting
type JobTag struct {
	JobCategoryName string `json:"jobCategoryName"`
}

// JobRecord is the wire shape of a job posting. Salary and slots are
// pointers so that absent numeric fields stay absent instead of zero.
type JobRecord struct {
	ID             string   `json:"id"`
	JobName        string   `json:"jobName"`
	JobDescription []string `json:"jobDescription"`
	JobTags        []JobTag `json:"jobTags"`
	JobSalary      *float64 `json:"jobSalary"`
	JobSlots       *float64 `json:"jobSlots"`
}

// UserRecord is the wire shape of a platform user
type UserRecord struct {
	ID                 string   `json:"id"`
	Username           string   `json:"username"`
	Preference         []string `json:"preference"`
	IsProfileCompleted bool     `json:"isProfileCompleted"`
}

// RatingRecord is the wire shape of a single rating event
type RatingRecord struct {
	UserID string   `json:"user_id"`
	Rating *float64 `json:"rating"`
}
