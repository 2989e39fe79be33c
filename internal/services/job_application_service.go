package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"talenthub/internal/models"
	"talenthub/internal/storage"
	"talenthub/internal/transport/dto"
)

type jobApplicationService struct {
	appRepo storage.JobApplicationRepository
	jobRepo storage.JobRepository
}

// NewJobApplicationService creates a new instance of JobApplicationService.
func NewJobApplicationService(appRepo storage.JobApplicationRepository, jobRepo storage.JobRepository) JobApplicationService {
	return &jobApplicationService{appRepo: appRepo, jobRepo: jobRepo}
}

// Apply files an application. A user cannot apply to their own job, to an
// archived job, or while a previous application is still in flight. Once an
// earlier application is hired or rejected a new one may be filed; the old
// rows stay as history.
func (s *jobApplicationService) Apply(ctx context.Context, actor models.Actor, req *dto.ApplyToJobRequest) (*models.JobApplication, error) {
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, MapRepoError(err, "fetching job for application")
	}
	if job.UserID == actor.ID {
		return nil, fmt.Errorf("%w: cannot apply to own job", ErrForbidden)
	}
	if job.IsArchived {
		return nil, fmt.Errorf("%w: job is archived", ErrConflict)
	}

	active, err := s.appRepo.HasActiveApplication(ctx, req.JobID, actor.ID)
	if err != nil {
		log.Printf("JobApplicationService: Error checking active application: %v", err)
		return nil, fmt.Errorf("internal error checking applications: %w", err)
	}
	if active {
		return nil, fmt.Errorf("%w: application already in progress", ErrConflict)
	}

	req.ApplicantID = actor.ID
	app, err := s.appRepo.Create(ctx, req)
	if err != nil {
		return nil, MapRepoError(err, "creating application")
	}
	return app, nil
}

// GetApplication is visible to the applicant, the job owner, and admins.
func (s *jobApplicationService) GetApplication(ctx context.Context, actor models.Actor, id int64) (*models.JobApplication, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, "getting application")
	}
	if err := s.authorize(ctx, actor, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListByJob is the owner-side pipeline view.
func (s *jobApplicationService) ListByJob(ctx context.Context, actor models.Actor, jobID int64) ([]models.ApplicationWithApplicant, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, MapRepoError(err, "fetching job for applications")
	}
	if !actor.CanMutate(job.UserID) {
		return nil, ErrForbidden
	}

	apps, err := s.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		log.Printf("JobApplicationService: Error listing applications for job %d: %v", jobID, err)
		return nil, fmt.Errorf("internal error listing applications: %w", err)
	}
	return apps, nil
}

func (s *jobApplicationService) ListMine(ctx context.Context, actor models.Actor) ([]models.AppliedJob, error) {
	applied, err := s.appRepo.ListByApplicant(ctx, actor.ID)
	if err != nil {
		log.Printf("JobApplicationService: Error listing applications for user %d: %v", actor.ID, err)
		return nil, fmt.Errorf("internal error listing applied jobs: %w", err)
	}
	return applied, nil
}

// UpdateStatus moves an application along the pipeline. Only the job owner or
// an admin may transition; the move is validated against the current status
// and applied with a conditional update, so a concurrent transition surfaces
// as a conflict rather than silently overwriting.
func (s *jobApplicationService) UpdateStatus(ctx context.Context, actor models.Actor, req *dto.UpdateApplicationStatusRequest) (*models.JobApplication, error) {
	app, err := s.appRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, MapRepoError(err, "fetching application for transition")
	}

	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, MapRepoError(err, "fetching job for transition")
	}
	if !actor.CanMutate(job.UserID) {
		return nil, ErrForbidden
	}

	to := models.ApplicationStatus(req.Status)
	if !isValidApplicationStatusTransition(app.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, app.Status, to)
	}

	updated, err := s.appRepo.UpdateStatus(ctx, req.ID, app.Status, to)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// The row exists; its status moved under us.
			return nil, fmt.Errorf("%w: application status changed concurrently", ErrConflict)
		}
		return nil, MapRepoError(err, "updating application status")
	}
	return updated, nil
}

func (s *jobApplicationService) authorize(ctx context.Context, actor models.Actor, app *models.JobApplication) error {
	if actor.IsAdmin || actor.ID == app.ApplicantID {
		return nil
	}
	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return MapRepoError(err, "fetching job for authorization")
	}
	if job.UserID != actor.ID {
		return ErrForbidden
	}
	return nil
}
