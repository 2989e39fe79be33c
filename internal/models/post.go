package models

import "time"

// Post is a feed entry. A post with OriginalPostID set is a repost pointer:
// RepostedBy is then always set and OriginalPostID always references an
// original post (repost chains are flattened at creation time).
type Post struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	Content        string    `json:"content" db:"content"`
	ImageURL       *string   `json:"image_url,omitempty" db:"image_url"`
	IsAnonymous    bool      `json:"is_anonymous" db:"is_anonymous"`
	CommunityID    *int64    `json:"community_id,omitempty" db:"community_id"`
	OriginalPostID *int64    `json:"original_post_id,omitempty" db:"original_post_id"`
	RepostedBy     *int64    `json:"reposted_by,omitempty" db:"reposted_by"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// IsRepost reports whether the post is a repost pointer rather than an original.
func (p *Post) IsRepost() bool {
	return p.OriginalPostID != nil
}

// Like records a single user liking a single post. Unique per (user, post).
type Like struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	PostID    int64     `json:"post_id" db:"post_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Comment is a user's comment on a post.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	PostID    int64     `json:"post_id" db:"post_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Repost is the audit row written alongside a repost post-row.
type Repost struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	PostID    int64     `json:"post_id" db:"post_id"` // the original post
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PostWithMeta is a feed read: the post joined with its author and counters.
// AuthorName is blanked for anonymous posts before it leaves the storage layer.
type PostWithMeta struct {
	Post
	AuthorName    string `json:"author_name"`
	LikeCount     int    `json:"like_count"`
	CommentCount  int    `json:"comment_count"`
	RepostCount   int    `json:"repost_count"`
	LikedByViewer bool   `json:"liked_by_viewer"`
}

// CommentWithAuthor is a comment joined with the commenting user's name.
type CommentWithAuthor struct {
	Comment
	AuthorName string `json:"author_name"`
}
