package dto

import "talenthub/internal/models"

// UpdateProfileRequest defines the structure for updating an existing profile.
// All fields are optional; only supplied fields are written.
type UpdateProfileRequest struct {
	ID              int64                  `json:"-" validate:"required"`
	Name            *string                `json:"name,omitempty" validate:"omitempty,max=100"`
	Title           *string                `json:"title,omitempty" validate:"omitempty,max=100"`
	Bio             *string                `json:"bio,omitempty" validate:"omitempty,max=2000"`
	MobileNumber    *string                `json:"mobile_number,omitempty" validate:"omitempty,max=30"`
	ProfileImageURL *string                `json:"profile_image_url,omitempty" validate:"omitempty,url"`
	DigitalCvURL    *string                `json:"digital_cv_url,omitempty" validate:"omitempty,url"`
	Company         *string                `json:"company,omitempty" validate:"omitempty,max=100"`
	Industry        *string                `json:"industry,omitempty" validate:"omitempty,max=100"`
	Skills          *[]string              `json:"skills,omitempty" validate:"omitempty,dive,min=1,max=60"`
	Experiences     *[]models.Experience   `json:"experiences,omitempty"`
	Education       *[]models.Education    `json:"education,omitempty"`
	Privacy         *models.PrivacySettings `json:"privacy_settings,omitempty"`
}

// SetTwoFactorRequest toggles the two-factor flag on a profile.
type SetTwoFactorRequest struct {
	Enabled bool `json:"enabled"`
}

// SetRoleRequest defines the admin-only role flag mutation.
type SetRoleRequest struct {
	IsRecruiter *bool `json:"is_recruiter,omitempty"`
	IsAdmin     *bool `json:"is_admin,omitempty"`
}
