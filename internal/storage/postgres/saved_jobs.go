// internal/storage/postgres/saved_jobs.go
package postgres

import (
	"context"
	"fmt"
	"log"

	"talenthub/internal/models"
	"talenthub/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SavedJobRepo implements storage.SavedJobRepository using PostgreSQL.
type SavedJobRepo struct {
	db Querier
}

// NewSavedJobRepo creates a new SavedJobRepo.
func NewSavedJobRepo(db *pgxpool.Pool) *SavedJobRepo {
	return &SavedJobRepo{db: db}
}

// Compile-time check to ensure SavedJobRepo implements SavedJobRepository
var _ storage.SavedJobRepository = (*SavedJobRepo)(nil)

// Save bookmarks a job. The UNIQUE (user_id, job_id) constraint surfaces a
// duplicate save as ErrConflict so a second save can never create a row.
func (r *SavedJobRepo) Save(ctx context.Context, userID, jobID int64) (*models.SavedJob, error) {
	query := `
		INSERT INTO saved_jobs (user_id, job_id)
		VALUES ($1, $2)
		RETURNING id, job_id, user_id, created_at`

	var s models.SavedJob
	err := r.db.QueryRow(ctx, query, userID, jobID).
		Scan(&s.ID, &s.JobID, &s.UserID, &s.CreatedAt)
	if err != nil {
		log.Printf("Error saving job %d for user %d: %v\n", jobID, userID, err)
		return nil, fmt.Errorf("failed to save job: %w", mapWriteError(err))
	}
	return &s, nil
}

// Unsave removes a bookmark.
func (r *SavedJobRepo) Unsave(ctx context.Context, userID, jobID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return fmt.Errorf("failed to unsave job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListByUser returns a user's bookmarks joined with the job rows, newest first.
func (r *SavedJobRepo) ListByUser(ctx context.Context, userID int64) ([]models.SavedJobWithJob, error) {
	query := `
		SELECT s.id, s.job_id, s.user_id, s.created_at,
		       j.id, j.title, j.company, j.location, j.description, j.skills, j.user_id,
		       j.salary, j.job_type, j.experience_level, j.is_archived, j.created_at, j.updated_at
		FROM saved_jobs s
		JOIN jobs j ON j.id = s.job_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved jobs: %w", err)
	}
	defer rows.Close()

	saved := []models.SavedJobWithJob{}
	for rows.Next() {
		var s models.SavedJobWithJob
		err := rows.Scan(
			&s.ID, &s.JobID, &s.UserID, &s.CreatedAt,
			&s.Job.ID, &s.Job.Title, &s.Job.Company, &s.Job.Location, &s.Job.Description,
			&s.Job.Skills, &s.Job.UserID, &s.Job.Salary, &s.Job.JobType,
			&s.Job.ExperienceLevel, &s.Job.IsArchived, &s.Job.CreatedAt, &s.Job.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved job row: %w", err)
		}
		saved = append(saved, s)
	}
	return saved, rows.Err()
}
