// internal/storage/postgres/job_applications.go
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

// JobApplicationRepo implements storage.JobApplicationRepository using PostgreSQL.
type JobApplicationRepo struct {
	db Querier
}

// NewJobApplicationRepo creates a new JobApplicationRepo.
func NewJobApplicationRepo(db *pgxpool.Pool) *JobApplicationRepo {
	return &JobApplicationRepo{db: db}
}

// Compile-time check to ensure JobApplicationRepo implements JobApplicationRepository
var _ storage.JobApplicationRepository = (*JobApplicationRepo)(nil)

const applicationColumns = `id, job_id, applicant_id, status, note, created_at, updated_at`

func scanApplication(row pgx.Row) (*models.JobApplication, error) {
	var a models.JobApplication
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.Note, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create saves a new application with the default "applied" status.
func (r *JobApplicationRepo) Create(ctx context.Context, req *dto.ApplyToJobRequest) (*models.JobApplication, error) {
	query := `
		INSERT INTO job_applications (job_id, applicant_id, note)
		VALUES ($1, $2, $3)
		RETURNING ` + applicationColumns

	app, err := scanApplication(r.db.QueryRow(ctx, query, req.JobID, req.ApplicantID, req.Note))
	if err != nil {
		log.Printf("Error creating application for job %d: %v\n", req.JobID, err)
		return nil, fmt.Errorf("failed to create application: %w", mapWriteError(err))
	}
	return app, nil
}

// GetByID retrieves a specific application.
func (r *JobApplicationRepo) GetByID(ctx context.Context, id int64) (*models.JobApplication, error) {
	app, err := scanApplication(r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM job_applications WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// ListByJob returns a job's applications with applicant identities, newest first.
func (r *JobApplicationRepo) ListByJob(ctx context.Context, jobID int64) ([]models.ApplicationWithApplicant, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.note, a.created_at, a.updated_at,
		       u.name, u.username, u.title
		FROM job_applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	apps := []models.ApplicationWithApplicant{}
	for rows.Next() {
		var a models.ApplicationWithApplicant
		err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.Note, &a.CreatedAt, &a.UpdatedAt,
			&a.ApplicantName, &a.ApplicantUsername, &a.ApplicantTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// ListByApplicant returns a user's applications joined with the job rows,
// newest first. Archived jobs are included so application history survives.
func (r *JobApplicationRepo) ListByApplicant(ctx context.Context, applicantID int64) ([]models.AppliedJob, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.note, a.created_at, a.updated_at,
		       j.id, j.title, j.company, j.location, j.description, j.skills, j.user_id,
		       j.salary, j.job_type, j.experience_level, j.is_archived, j.created_at, j.updated_at
		FROM job_applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied jobs: %w", err)
	}
	defer rows.Close()

	applied := []models.AppliedJob{}
	for rows.Next() {
		var a models.AppliedJob
		err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.Note, &a.CreatedAt, &a.UpdatedAt,
			&a.Job.ID, &a.Job.Title, &a.Job.Company, &a.Job.Location, &a.Job.Description,
			&a.Job.Skills, &a.Job.UserID, &a.Job.Salary, &a.Job.JobType,
			&a.Job.ExperienceLevel, &a.Job.IsArchived, &a.Job.CreatedAt, &a.Job.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan applied job row: %w", err)
		}
		applied = append(applied, a)
	}
	return applied, rows.Err()
}

// HasActiveApplication reports whether the applicant has a non-terminal
// application for the job.
func (r *JobApplicationRepo) HasActiveApplication(ctx context.Context, jobID, applicantID int64) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM job_applications
			WHERE job_id = $1 AND applicant_id = $2 AND status NOT IN ('hired', 'rejected')
		)`
	if err := r.db.QueryRow(ctx, query, jobID, applicantID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check active application: %w", err)
	}
	return exists, nil
}

// HasApplicationToOwner reports whether the applicant has ever applied to any
// job posted by ownerID.
func (r *JobApplicationRepo) HasApplicationToOwner(ctx context.Context, applicantID, ownerID int64) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM job_applications a
			JOIN jobs j ON j.id = a.job_id
			WHERE a.applicant_id = $1 AND j.user_id = $2
		)`
	if err := r.db.QueryRow(ctx, query, applicantID, ownerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check application to owner: %w", err)
	}
	return exists, nil
}

// UpdateStatus applies a transition guarded on the expected current status.
// Zero rows means the row is gone or its status moved concurrently; the
// caller distinguishes the two.
func (r *JobApplicationRepo) UpdateStatus(ctx context.Context, id int64, from, to models.ApplicationStatus) (*models.JobApplication, error) {
	query := `
		UPDATE job_applications SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + applicationColumns

	app, err := scanApplication(r.db.QueryRow(ctx, query, id, from, to))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application %d status %s -> %s: %v\n", id, from, to, err)
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return app, nil
}
