package models

import "time"

// Community is a user-created group. MemberCount is denormalized and always
// kept equal to the number of community_members rows inside the same
// transaction that changes membership.
type Community struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedBy   int64     `json:"created_by" db:"created_by"`
	MemberCount int       `json:"member_count" db:"member_count"`
	IsPrivate   bool      `json:"is_private" db:"is_private"`
	InviteOnly  bool      `json:"invite_only" db:"invite_only"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CommunityMember is a membership row. Unique per (user, community).
type CommunityMember struct {
	ID          int64         `json:"id" db:"id"`
	UserID      int64         `json:"user_id" db:"user_id"`
	CommunityID int64         `json:"community_id" db:"community_id"`
	Role        CommunityRole `json:"role" db:"role"`
	IsInvited   bool          `json:"is_invited" db:"is_invited"`
	JoinedAt    time.Time     `json:"joined_at" db:"joined_at"`
}

// CommunityMemberWithUser joins a membership row with the member's identity.
type CommunityMemberWithUser struct {
	CommunityMember
	Username string `json:"username"`
	Name     string `json:"name"`
}
