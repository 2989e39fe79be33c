package dto

// ApplyToJobRequest defines the structure for applying to a job.
type ApplyToJobRequest struct {
	ApplicantID int64   `json:"-"` // set by handler from auth context
	JobID       int64   `json:"job_id" validate:"required,gt=0"`
	Note        *string `json:"note,omitempty" validate:"omitempty,max=2000"`
}

// UpdateApplicationStatusRequest defines the structure for a status transition.
type UpdateApplicationStatusRequest struct {
	ID     int64  `json:"-" validate:"required"`
	Status string `json:"status" validate:"required,oneof=shortlisted interview hired rejected"`
}
