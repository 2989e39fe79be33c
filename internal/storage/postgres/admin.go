// internal/storage/postgres/admin.go
package postgres

import (
	"context"
	"fmt"

	"talenthub/internal/models"
	"talenthub/internal/storage"
	"talenthub/internal/transport/dto"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminRepo builds the typed listings behind the admin panel. The listings are
// the only place with optional free-text filtering, so the queries are built
// with squirrel instead of hand-numbered placeholders.
type AdminRepo struct {
	db Querier
	sb sq.StatementBuilderType
}

// NewAdminRepo creates a new AdminRepo.
func NewAdminRepo(db *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Compile-time check to ensure AdminRepo implements AdminRepository
var _ storage.AdminRepository = (*AdminRepo)(nil)

// ListUsers returns users with their post and job counts.
func (r *AdminRepo) ListUsers(ctx context.Context, req *dto.ListRequest) ([]models.AdminUserView, error) {
	builder := r.sb.
		Select(
			"u.id", "u.username", "u.email", "u.name", "u.is_recruiter", "u.is_admin",
			"(SELECT COUNT(*) FROM posts p WHERE p.user_id = u.id)",
			"(SELECT COUNT(*) FROM jobs j WHERE j.user_id = u.id)",
			"u.created_at",
		).
		From("users u").
		OrderBy("u.created_at DESC").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset))

	if req.Query != "" {
		pattern := "%" + req.Query + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"u.username": pattern},
			sq.ILike{"u.email": pattern},
			sq.ILike{"u.name": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build admin user query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query admin users: %w", err)
	}
	defer rows.Close()

	views := []models.AdminUserView{}
	for rows.Next() {
		var v models.AdminUserView
		err := rows.Scan(&v.ID, &v.Username, &v.Email, &v.Name, &v.IsRecruiter, &v.IsAdmin,
			&v.PostCount, &v.JobCount, &v.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan admin user row: %w", err)
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// ListJobs returns jobs with their poster and applicant count.
func (r *AdminRepo) ListJobs(ctx context.Context, req *dto.ListRequest) ([]models.AdminJobView, error) {
	builder := r.sb.
		Select(
			"j.id", "j.title", "j.company", "u.username", "j.is_archived",
			"(SELECT COUNT(*) FROM job_applications a WHERE a.job_id = j.id)",
			"j.created_at",
		).
		From("jobs j").
		Join("users u ON u.id = j.user_id").
		OrderBy("j.created_at DESC").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset))

	if req.Query != "" {
		pattern := "%" + req.Query + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"j.title": pattern},
			sq.ILike{"j.company": pattern},
			sq.ILike{"u.username": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build admin job query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query admin jobs: %w", err)
	}
	defer rows.Close()

	views := []models.AdminJobView{}
	for rows.Next() {
		var v models.AdminJobView
		err := rows.Scan(&v.ID, &v.Title, &v.Company, &v.PosterUsername, &v.IsArchived,
			&v.ApplicantCount, &v.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan admin job row: %w", err)
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// ListPosts returns posts with their author and engagement counts. Anonymous
// posts keep their real author here; moderation needs it.
func (r *AdminRepo) ListPosts(ctx context.Context, req *dto.ListRequest) ([]models.AdminPostView, error) {
	builder := r.sb.
		Select(
			"p.id", "u.username", "p.content", "p.is_anonymous",
			"(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id)",
			"(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)",
			"p.created_at",
		).
		From("posts p").
		Join("users u ON u.id = p.user_id").
		OrderBy("p.created_at DESC").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset))

	if req.Query != "" {
		pattern := "%" + req.Query + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"p.content": pattern},
			sq.ILike{"u.username": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build admin post query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query admin posts: %w", err)
	}
	defer rows.Close()

	views := []models.AdminPostView{}
	for rows.Next() {
		var v models.AdminPostView
		err := rows.Scan(&v.ID, &v.AuthorUsername, &v.Content, &v.IsAnonymous,
			&v.LikeCount, &v.CommentCount, &v.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan admin post row: %w", err)
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// ListCommunities returns communities with their creator.
func (r *AdminRepo) ListCommunities(ctx context.Context, req *dto.ListRequest) ([]models.AdminCommunityView, error) {
	builder := r.sb.
		Select("c.id", "c.name", "u.username", "c.member_count", "c.is_private", "c.created_at").
		From("communities c").
		Join("users u ON u.id = c.created_by").
		OrderBy("c.created_at DESC").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset))

	if req.Query != "" {
		pattern := "%" + req.Query + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"c.name": pattern},
			sq.ILike{"u.username": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build admin community query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query admin communities: %w", err)
	}
	defer rows.Close()

	views := []models.AdminCommunityView{}
	for rows.Next() {
		var v models.AdminCommunityView
		err := rows.Scan(&v.ID, &v.Name, &v.CreatorUsername, &v.MemberCount, &v.IsPrivate, &v.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan admin community row: %w", err)
		}
		views = append(views, v)
	}
	return views, rows.Err()
}
