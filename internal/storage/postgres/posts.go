// internal/storage/postgres/posts.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"talenthub/internal/models"
	"talenthub/internal/storage"
	"talenthub/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostRepo implements the storage.PostRepository interface using PostgreSQL.
type PostRepo struct {
	db   Querier
	pool *pgxpool.Pool
}

// NewPostRepo creates a new PostRepo.
func NewPostRepo(db *pgxpool.Pool) *PostRepo {
	return &PostRepo{db: db, pool: db}
}

// Compile-time check to ensure PostRepo implements PostRepository
var _ storage.PostRepository = (*PostRepo)(nil)

const postColumns = `id, user_id, content, image_url, is_anonymous, community_id,
	original_post_id, reposted_by, created_at`

func scanPost(row pgx.Row) (*models.Post, error) {
	var p models.Post
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Content,
		&p.ImageURL,
		&p.IsAnonymous,
		&p.CommunityID,
		&p.OriginalPostID,
		&p.RepostedBy,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create saves a new original post.
func (r *PostRepo) Create(ctx context.Context, req *dto.CreatePostRequest) (*models.Post, error) {
	query := `
		INSERT INTO posts (user_id, content, image_url, is_anonymous, community_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRow(ctx, query,
		req.UserID, req.Content, req.ImageURL, req.IsAnonymous, req.CommunityID))
	if err != nil {
		log.Printf("Error creating post: %v\n", err)
		return nil, fmt.Errorf("failed to create post: %w", mapWriteError(err))
	}
	return post, nil
}

// GetByID retrieves a specific post by id.
func (r *PostRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	post, err := scanPost(r.db.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning post by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// Delete removes a post. Likes, comments, repost audit rows and repost
// pointer posts cascade via foreign keys.
func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting post %d: %v\n", id, err)
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// postMetaQuery joins posts with author name and engagement counters.
// Anonymous posts get a blanked author name here so it never leaves storage.
const postMetaQuery = `
	SELECT p.id, p.user_id, p.content, p.image_url, p.is_anonymous, p.community_id,
	       p.original_post_id, p.reposted_by, p.created_at,
	       CASE WHEN p.is_anonymous THEN '' ELSE u.name END AS author_name,
	       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS like_count,
	       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count,
	       (SELECT COUNT(*) FROM reposts rp WHERE rp.post_id = p.id) AS repost_count,
	       EXISTS(SELECT 1 FROM likes l2 WHERE l2.post_id = p.id AND l2.user_id = $1) AS liked_by_viewer
	FROM posts p
	JOIN users u ON u.id = p.user_id`

func (r *PostRepo) queryPostsWithMeta(ctx context.Context, query string, args ...any) ([]models.PostWithMeta, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []models.PostWithMeta{}
	for rows.Next() {
		var p models.PostWithMeta
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Content, &p.ImageURL, &p.IsAnonymous, &p.CommunityID,
			&p.OriginalPostID, &p.RepostedBy, &p.CreatedAt,
			&p.AuthorName, &p.LikeCount, &p.CommentCount, &p.RepostCount, &p.LikedByViewer,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ListFeed returns the newest posts across the network.
func (r *PostRepo) ListFeed(ctx context.Context, viewerID int64, limit, offset int) ([]models.PostWithMeta, error) {
	query := postMetaQuery + ` ORDER BY p.created_at DESC LIMIT $2 OFFSET $3`
	return r.queryPostsWithMeta(ctx, query, viewerID, limit, offset)
}

// ListByUser returns a user's posts, newest first.
func (r *PostRepo) ListByUser(ctx context.Context, userID, viewerID int64) ([]models.PostWithMeta, error) {
	query := postMetaQuery + ` WHERE p.user_id = $2 ORDER BY p.created_at DESC`
	return r.queryPostsWithMeta(ctx, query, viewerID, userID)
}

// ListByCommunity returns a community's posts, newest first.
func (r *PostRepo) ListByCommunity(ctx context.Context, communityID, viewerID int64, limit, offset int) ([]models.PostWithMeta, error) {
	query := postMetaQuery + ` WHERE p.community_id = $2 ORDER BY p.created_at DESC LIMIT $3 OFFSET $4`
	return r.queryPostsWithMeta(ctx, query, viewerID, communityID, limit, offset)
}

// AddLike records a like. The UNIQUE (user_id, post_id) constraint makes a
// duplicate like surface as ErrConflict.
func (r *PostRepo) AddLike(ctx context.Context, userID, postID int64) error {
	_, err := r.db.Exec(ctx, `INSERT INTO likes (user_id, post_id) VALUES ($1, $2)`, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to add like: %w", mapWriteError(err))
	}
	return nil
}

// RemoveLike deletes a like.
func (r *PostRepo) RemoveLike(ctx context.Context, userID, postID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// AddComment saves a new comment.
func (r *PostRepo) AddComment(ctx context.Context, req *dto.CreateCommentRequest) (*models.Comment, error) {
	query := `
		INSERT INTO comments (user_id, post_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, post_id, content, created_at`

	var c models.Comment
	err := r.db.QueryRow(ctx, query, req.UserID, req.PostID, req.Content).
		Scan(&c.ID, &c.UserID, &c.PostID, &c.Content, &c.CreatedAt)
	if err != nil {
		log.Printf("Error creating comment on post %d: %v\n", req.PostID, err)
		return nil, fmt.Errorf("failed to create comment: %w", mapWriteError(err))
	}
	return &c, nil
}

// GetComment retrieves a comment by id.
func (r *PostRepo) GetComment(ctx context.Context, id int64) (*models.Comment, error) {
	var c models.Comment
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, post_id, content, created_at FROM comments WHERE id = $1`, id).
		Scan(&c.ID, &c.UserID, &c.PostID, &c.Content, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &c, nil
}

// DeleteComment removes a comment.
func (r *PostRepo) DeleteComment(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListComments returns a post's comments oldest first, with author names.
func (r *PostRepo) ListComments(ctx context.Context, postID int64) ([]models.CommentWithAuthor, error) {
	query := `
		SELECT c.id, c.user_id, c.post_id, c.content, c.created_at, u.name
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC`

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []models.CommentWithAuthor{}
	for rows.Next() {
		var c models.CommentWithAuthor
		if err := rows.Scan(&c.ID, &c.UserID, &c.PostID, &c.Content, &c.CreatedAt, &c.AuthorName); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// CreateRepost inserts the repost pointer post and the reposts audit row in a
// single transaction. The caller guarantees originalID references an original
// post (chains are flattened in the service layer).
func (r *PostRepo) CreateRepost(ctx context.Context, userID, originalID int64) (*models.Post, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO posts (user_id, content, is_anonymous, original_post_id, reposted_by)
		SELECT $1, p.content, FALSE, p.id, $1
		FROM posts p
		WHERE p.id = $2 AND p.original_post_id IS NULL
		RETURNING ` + postColumns

	post, err := scanPost(tx.QueryRow(ctx, query, userID, originalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error creating repost of post %d: %v\n", originalID, err)
		return nil, fmt.Errorf("failed to create repost: %w", mapWriteError(err))
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO reposts (user_id, post_id) VALUES ($1, $2)`, userID, originalID); err != nil {
		return nil, fmt.Errorf("failed to record repost: %w", mapWriteError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit repost: %w", err)
	}
	return post, nil
}
