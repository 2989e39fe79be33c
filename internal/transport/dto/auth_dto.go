package dto

import "talenthub/internal/models"

// RegisterRequest defines the client-suppliable fields for user creation.
// Server-assigned fields (id, timestamps, privacy defaults, skills, history,
// digital CV) are deliberately absent.
type RegisterRequest struct {
	Username    string  `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8,max=72"`
	Name        string  `json:"name" validate:"required,max=100"`
	IsRecruiter bool    `json:"is_recruiter"`
	Company     *string `json:"company,omitempty" validate:"omitempty,max=100"`
	Industry    *string `json:"industry,omitempty" validate:"omitempty,max=100"`
}

// LoginRequest defines the structure for logging in.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest defines the structure for a self-service password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
