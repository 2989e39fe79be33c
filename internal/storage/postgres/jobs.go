// internal/storage/postgres/jobs.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"talenthub/internal/models"
	"talenthub/internal/storage"
	"talenthub/internal/transport/dto"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

const jobColumns = `id, title, company, location, description, skills, user_id,
	salary, job_type, experience_level, is_archived, created_at, updated_at`

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(
		&j.ID,
		&j.Title,
		&j.Company,
		&j.Location,
		&j.Description,
		&j.Skills,
		&j.UserID,
		&j.Salary,
		&j.JobType,
		&j.ExperienceLevel,
		&j.IsArchived,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Create saves a new job posting.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}
	query := `
		INSERT INTO jobs (title, company, location, description, skills, user_id, salary, job_type, experience_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + jobColumns

	job, err := scanJob(r.db.QueryRow(ctx, query,
		req.Title, req.Company, req.Location, req.Description, skills,
		req.UserID, req.Salary, req.JobType, req.ExperienceLevel))
	if err != nil {
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", mapWriteError(err))
	}

	log.Printf("Job created successfully with ID: %d", job.ID)
	return job, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// Update applies the supplied job fields. Fields left nil are not touched.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{req.ID}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.Company != nil {
		addSet("company", *req.Company)
	}
	if req.Location != nil {
		addSet("location", *req.Location)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.Skills != nil {
		addSet("skills", *req.Skills)
	}
	if req.Salary != nil {
		addSet("salary", *req.Salary)
	}
	if req.JobType != nil {
		addSet("job_type", *req.JobType)
	}
	if req.ExperienceLevel != nil {
		addSet("experience_level", *req.ExperienceLevel)
	}

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), jobColumns)

	job, err := scanJob(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job %d: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// Delete removes a job. Applications and saved-job rows cascade.
func (r *JobRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting job %d: %v\n", id, err)
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// SetArchived flips the archived flag. The UPDATE is guarded on the current
// value so archiving an already-archived job reports no row changed.
func (r *JobRepo) SetArchived(ctx context.Context, id int64, archived bool) (*models.Job, error) {
	query := `
		UPDATE jobs SET is_archived = $2, updated_at = NOW()
		WHERE id = $1 AND is_archived = NOT $2
		RETURNING ` + jobColumns

	job, err := scanJob(r.db.QueryRow(ctx, query, id, archived))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error setting archived=%v on job %d: %v\n", archived, id, err)
		return nil, fmt.Errorf("failed to set archived flag: %w", err)
	}
	return job, nil
}

func (r *JobRepo) queryJobs(ctx context.Context, query string, args ...any) ([]models.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var j models.Job
		err := rows.Scan(
			&j.ID, &j.Title, &j.Company, &j.Location, &j.Description, &j.Skills,
			&j.UserID, &j.Salary, &j.JobType, &j.ExperienceLevel, &j.IsArchived,
			&j.CreatedAt, &j.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// ListActive returns non-archived jobs, newest first.
func (r *JobRepo) ListActive(ctx context.Context, limit, offset int) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE is_archived = FALSE
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryJobs(ctx, query, limit, offset)
}

// Search returns non-archived jobs matching the optional filters.
func (r *JobRepo) Search(ctx context.Context, req *dto.SearchJobsRequest) ([]models.Job, error) {
	builder := squirrel.Select(
		"id", "title", "company", "location", "description", "skills", "user_id",
		"salary", "job_type", "experience_level", "is_archived", "created_at", "updated_at",
	).
		From("jobs").
		Where("is_archived = FALSE").
		OrderBy("created_at DESC").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset)).
		PlaceholderFormat(squirrel.Dollar)

	if req.Query != "" {
		pattern := "%" + req.Query + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"company": pattern},
			squirrel.ILike{"description": pattern},
		})
	}
	if req.Location != nil {
		builder = builder.Where(squirrel.ILike{"location": "%" + *req.Location + "%"})
	}
	if req.JobType != nil {
		builder = builder.Where(squirrel.Eq{"job_type": *req.JobType})
	}
	if req.ExperienceLevel != nil {
		builder = builder.Where(squirrel.Eq{"experience_level": *req.ExperienceLevel})
	}
	if req.Skill != nil {
		builder = builder.Where("? = ANY(skills)", *req.Skill)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}
	return r.queryJobs(ctx, sql, args...)
}

// ListByOwnerWithApplicants returns all of an owner's jobs (archived
// included) with applicant counts.
func (r *JobRepo) ListByOwnerWithApplicants(ctx context.Context, ownerID int64) ([]models.JobWithApplicants, error) {
	query := `
		SELECT ` + jobColumns + `,
		       (SELECT COUNT(*) FROM job_applications a WHERE a.job_id = jobs.id) AS applicant_count
		FROM jobs
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs by owner: %w", err)
	}
	defer rows.Close()

	jobs := []models.JobWithApplicants{}
	for rows.Next() {
		var j models.JobWithApplicants
		err := rows.Scan(
			&j.ID, &j.Title, &j.Company, &j.Location, &j.Description, &j.Skills,
			&j.UserID, &j.Salary, &j.JobType, &j.ExperienceLevel, &j.IsArchived,
			&j.CreatedAt, &j.UpdatedAt, &j.ApplicantCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
