package dto

// CreatePostRequest defines the client-suppliable fields for a new post.
type CreatePostRequest struct {
	UserID      int64   `json:"-"` // set by handler from auth context
	Content     string  `json:"content" validate:"required,max=5000"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	IsAnonymous bool    `json:"is_anonymous"`
	CommunityID *int64  `json:"community_id,omitempty" validate:"omitempty,gt=0"`
}

// CreateCommentRequest defines the structure for commenting on a post.
type CreateCommentRequest struct {
	UserID  int64  `json:"-"`
	PostID  int64  `json:"-" validate:"required,gt=0"`
	Content string `json:"content" validate:"required,max=2000"`
}

// ListFeedRequest defines pagination for feed reads.
type ListFeedRequest struct {
	ViewerID int64 `form:"-"`
	Limit    int   `form:"limit,default=20" validate:"omitempty,gt=0,lte=100"`
	Offset   int   `form:"offset,default=0" validate:"omitempty,gte=0"`
}
