package dto

// CreateCommunityRequest defines the client-suppliable fields for a new
// community. member_count is server-assigned and starts at zero before the
// creator is enrolled.
type CreateCommunityRequest struct {
	CreatedBy   int64  `json:"-"` // set by handler from auth context
	Name        string `json:"name" validate:"required,min=2,max=80"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	IsPrivate   bool   `json:"is_private"`
	InviteOnly  bool   `json:"invite_only"`
}

// UpdateCommunityRequest defines the structure for updating a community.
type UpdateCommunityRequest struct {
	ID          int64   `json:"-" validate:"required"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=80"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	IsPrivate   *bool   `json:"is_private,omitempty"`
	InviteOnly  *bool   `json:"invite_only,omitempty"`
}

// InviteMemberRequest invites a user into an invite-only community.
type InviteMemberRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// SetMemberRoleRequest changes a member's role within a community.
type SetMemberRoleRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Role   string `json:"role" validate:"required,oneof=member moderator admin"`
}
