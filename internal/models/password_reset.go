package models

import "time"

// PasswordResetRequest is an admin-reviewed request to reset a user's
// password. ProcessedAt, ProcessedBy and TemporaryPassword are only set on
// the transition out of pending.
type PasswordResetRequest struct {
	ID                int64       `json:"id" db:"id"`
	UserID            int64       `json:"user_id" db:"user_id"`
	Email             string      `json:"email" db:"email"`
	Status            ResetStatus `json:"status" db:"status"`
	AdminNotes        *string     `json:"admin_notes,omitempty" db:"admin_notes"`
	TemporaryPassword *string     `json:"temporary_password,omitempty" db:"temporary_password"`
	ProcessedAt       *time.Time  `json:"processed_at,omitempty" db:"processed_at"`
	ProcessedBy       *int64      `json:"processed_by,omitempty" db:"processed_by"`
	CreatedAt         time.Time   `json:"created_at" db:"created_at"`
}
