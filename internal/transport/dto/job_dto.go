package dto

// CreateJobRequest defines the client-suppliable fields for a new job posting.
type CreateJobRequest struct {
	UserID          int64    `json:"-"` // set by handler from auth context
	Title           string   `json:"title" validate:"required,max=150"`
	Company         string   `json:"company" validate:"required,max=100"`
	Location        string   `json:"location" validate:"required,max=100"`
	Description     string   `json:"description" validate:"required,max=10000"`
	Skills          []string `json:"skills" validate:"omitempty,dive,min=1,max=60"`
	Salary          *string  `json:"salary,omitempty" validate:"omitempty,max=60"`
	JobType         *string  `json:"job_type,omitempty" validate:"omitempty,max=40"`
	ExperienceLevel *string  `json:"experience_level,omitempty" validate:"omitempty,max=40"`
}

// UpdateJobRequest defines the structure for updating a job posting.
type UpdateJobRequest struct {
	ID              int64    `json:"-" validate:"required"`
	Title           *string  `json:"title,omitempty" validate:"omitempty,max=150"`
	Company         *string  `json:"company,omitempty" validate:"omitempty,max=100"`
	Location        *string  `json:"location,omitempty" validate:"omitempty,max=100"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=10000"`
	Skills          *[]string `json:"skills,omitempty" validate:"omitempty,dive,min=1,max=60"`
	Salary          *string  `json:"salary,omitempty" validate:"omitempty,max=60"`
	JobType         *string  `json:"job_type,omitempty" validate:"omitempty,max=40"`
	ExperienceLevel *string  `json:"experience_level,omitempty" validate:"omitempty,max=40"`
}

// SearchJobsRequest defines optional filters for the active-jobs search.
type SearchJobsRequest struct {
	Query           string  `form:"q" validate:"omitempty,max=150"`
	Location        *string `form:"location" validate:"omitempty,max=100"`
	JobType         *string `form:"job_type" validate:"omitempty,max=40"`
	ExperienceLevel *string `form:"experience_level" validate:"omitempty,max=40"`
	Skill           *string `form:"skill" validate:"omitempty,max=60"`
	Limit           int     `form:"limit,default=20" validate:"omitempty,gt=0,lte=100"`
	Offset          int     `form:"offset,default=0" validate:"omitempty,gte=0"`
}
