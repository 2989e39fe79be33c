package models

import "time"

// Typed projections for the admin surface. These are constructed by the
// storage layer so the admin panel never handles untyped rows.

// AdminUserView is a user row with activity counts.
type AdminUserView struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	IsRecruiter bool      `json:"is_recruiter"`
	IsAdmin     bool      `json:"is_admin"`
	PostCount   int       `json:"post_count"`
	JobCount    int       `json:"job_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdminJobView is a job row with its poster and applicant count.
type AdminJobView struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	PosterUsername string    `json:"poster_username"`
	IsArchived     bool      `json:"is_archived"`
	ApplicantCount int       `json:"applicant_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// AdminPostView is a post row with its author and engagement counts.
type AdminPostView struct {
	ID             int64     `json:"id"`
	AuthorUsername string    `json:"author_username"`
	Content        string    `json:"content"`
	IsAnonymous    bool      `json:"is_anonymous"`
	LikeCount      int       `json:"like_count"`
	CommentCount   int       `json:"comment_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// AdminCommunityView is a community row with its creator.
type AdminCommunityView struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	CreatorUsername string    `json:"creator_username"`
	MemberCount     int       `json:"member_count"`
	IsPrivate       bool      `json:"is_private"`
	CreatedAt       time.Time `json:"created_at"`
}
