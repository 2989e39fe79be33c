package models

import "time"

// Experience is one entry in a user's work history, stored as JSONB.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"` // empty means current position
	Description string `json:"description,omitempty"`
}

// Education is one entry in a user's education history, stored as JSONB.
type Education struct {
	School    string `json:"school"`
	Degree    string `json:"degree,omitempty"`
	Field     string `json:"field,omitempty"`
	StartYear int    `json:"start_year,omitempty"`
	EndYear   int    `json:"end_year,omitempty"`
}

// PrivacySettings controls who can see a user's profile and digital CV.
type PrivacySettings struct {
	ProfileVisibility ProfileVisibility `json:"profile_visibility" db:"profile_visibility"`
	CvVisibility      CvVisibility      `json:"digital_cv_visibility" db:"digital_cv_visibility"`
}

// User represents a member of the network.
type User struct {
	ID               int64           `json:"id" db:"id"`
	Username         string          `json:"username" db:"username"`
	PasswordHash     string          `json:"-" db:"password_hash"`
	Email            string          `json:"email" db:"email"`
	Name             string          `json:"name" db:"name"`
	Title            *string         `json:"title,omitempty" db:"title"`
	Bio              *string         `json:"bio,omitempty" db:"bio"`
	MobileNumber     *string         `json:"mobile_number,omitempty" db:"mobile_number"`
	ProfileImageURL  *string         `json:"profile_image_url,omitempty" db:"profile_image_url"`
	DigitalCvURL     *string         `json:"digital_cv_url,omitempty" db:"digital_cv_url"`
	IsRecruiter      bool            `json:"is_recruiter" db:"is_recruiter"`
	IsAdmin          bool            `json:"is_admin" db:"is_admin"`
	Company          *string         `json:"company,omitempty" db:"company"`
	Industry         *string         `json:"industry,omitempty" db:"industry"`
	TwoFactorEnabled bool            `json:"two_factor_enabled" db:"two_factor_enabled"`
	Privacy          PrivacySettings `json:"privacy_settings"`
	Skills           []string        `json:"skills" db:"skills"`
	Experiences      []Experience    `json:"experiences" db:"experiences"`
	Education        []Education     `json:"education" db:"education"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}
