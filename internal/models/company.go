package models

import "time"

// Company is an organization page owned by a user.
type Company struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	OwnerID     int64     `json:"owner_id" db:"owner_id"`
	Description *string   `json:"description,omitempty" db:"description"`
	Industry    *string   `json:"industry,omitempty" db:"industry"`
	Location    *string   `json:"location,omitempty" db:"location"`
	Size        *string   `json:"size,omitempty" db:"size"`
	Website     *string   `json:"website,omitempty" db:"website"`
	Email       *string   `json:"email,omitempty" db:"email"`
	LogoURL     *string   `json:"logo_url,omitempty" db:"logo_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
