package models

import "time"

// Job represents a job posting created by a recruiter.
type Job struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Company         string    `json:"company" db:"company"`
	Location        string    `json:"location" db:"location"`
	Description     string    `json:"description" db:"description"`
	Skills          []string  `json:"skills" db:"skills"`
	UserID          int64     `json:"user_id" db:"user_id"`
	Salary          *string   `json:"salary,omitempty" db:"salary"`
	JobType         *string   `json:"job_type,omitempty" db:"job_type"`
	ExperienceLevel *string   `json:"experience_level,omitempty" db:"experience_level"`
	IsArchived      bool      `json:"is_archived" db:"is_archived"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// JobWithApplicants is an owner-side read: a job joined with its applicant count.
type JobWithApplicants struct {
	Job
	ApplicantCount int `json:"applicant_count"`
}

// JobApplication is one application by a user to a job. Multiple rows per
// (job, applicant) pair are allowed so re-application history is preserved.
type JobApplication struct {
	ID          int64             `json:"id" db:"id"`
	JobID       int64             `json:"job_id" db:"job_id"`
	ApplicantID int64             `json:"applicant_id" db:"applicant_id"`
	Status      ApplicationStatus `json:"status" db:"status"`
	Note        *string           `json:"note,omitempty" db:"note"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// AppliedJob is an applicant-side read: the application joined with its job row.
type AppliedJob struct {
	JobApplication
	Job Job `json:"job"`
}

// ApplicationWithApplicant is an owner-side read: the application joined with
// the applicant's public identity.
type ApplicationWithApplicant struct {
	JobApplication
	ApplicantName     string  `json:"applicant_name"`
	ApplicantUsername string  `json:"applicant_username"`
	ApplicantTitle    *string `json:"applicant_title,omitempty"`
}

// SavedJob bookmarks a job for a user. Unique per (user, job).
type SavedJob struct {
	ID        int64     `json:"id" db:"id"`
	JobID     int64     `json:"job_id" db:"job_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SavedJobWithJob is the saved bookmark joined with the job row.
type SavedJobWithJob struct {
	SavedJob
	Job Job `json:"job"`
}
