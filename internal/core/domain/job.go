package domain

import "time"

// JobStatus tracks where a job application stands.
type JobStatus string

const (
	JobApplied   JobStatus = "Applied"
	JobInterview JobStatus = "Interview"
	JobOffer     JobStatus = "Offer"
	JobRejected  JobStatus = "Rejected"
	JobHired     JobStatus = "Hired"
)

// ValidJobStatus reports whether s is one of the enumerated states.
func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobApplied, JobInterview, JobOffer, JobRejected, JobHired:
		return true
	}
	return false
}

// Job is an entry in the private job-application tracker.
type Job struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	Status      JobStatus `json:"status"`
	AppliedDate time.Time `json:"applied_date"`
	Link        string    `json:"link,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	ResumeUsed  string    `json:"resume_used,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
