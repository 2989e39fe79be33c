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

type jobService struct {
	jobRepo      storage.JobRepository
	savedJobRepo storage.SavedJobRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobRepo storage.JobRepository, savedJobRepo storage.SavedJobRepository) JobService {
	return &jobService{jobRepo: jobRepo, savedJobRepo: savedJobRepo}
}

// CreateJob is restricted to recruiters and admins.
func (s *jobService) CreateJob(ctx context.Context, actor models.Actor, req *dto.CreateJobRequest) (*models.Job, error) {
	if !actor.IsRecruiter && !actor.IsAdmin {
		return nil, ErrForbidden
	}

	req.UserID = actor.ID
	job, err := s.jobRepo.Create(ctx, req)
	if err != nil {
		log.Printf("JobService: Error creating job: %v", err)
		return nil, MapRepoError(err, "creating job")
	}
	return job, nil
}

func (s *jobService) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, "getting job")
	}
	return job, nil
}

func (s *jobService) UpdateJob(ctx context.Context, actor models.Actor, req *dto.UpdateJobRequest) (*models.Job, error) {
	existing, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, MapRepoError(err, "fetching job for update")
	}
	if !actor.CanMutate(existing.UserID) {
		return nil, ErrForbidden
	}

	job, err := s.jobRepo.Update(ctx, req)
	if err != nil {
		return nil, MapRepoError(err, "updating job")
	}
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, actor models.Actor, id int64) error {
	existing, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return MapRepoError(err, "fetching job for delete")
	}
	if !actor.CanMutate(existing.UserID) {
		return ErrForbidden
	}
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return MapRepoError(err, "deleting job")
	}
	return nil
}

// SetArchived flips the archived flag. The repo UPDATE is conditional on the
// flag actually changing; an already-archived job archived again is a conflict.
func (s *jobService) SetArchived(ctx context.Context, actor models.Actor, id int64, archived bool) (*models.Job, error) {
	existing, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, "fetching job for archive")
	}
	if !actor.CanMutate(existing.UserID) {
		return nil, ErrForbidden
	}
	if existing.IsArchived == archived {
		return nil, fmt.Errorf("%w: job archive flag already %t", ErrConflict, archived)
	}

	job, err := s.jobRepo.SetArchived(ctx, id, archived)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Lost the race with a concurrent flip.
			return nil, fmt.Errorf("%w: job archive flag changed concurrently", ErrConflict)
		}
		return nil, MapRepoError(err, "archiving job")
	}
	return job, nil
}

func (s *jobService) ListActiveJobs(ctx context.Context, limit, offset int) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListActive(ctx, limit, offset)
	if err != nil {
		log.Printf("JobService: Error listing active jobs: %v", err)
		return nil, fmt.Errorf("internal error listing jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobService) SearchJobs(ctx context.Context, req *dto.SearchJobsRequest) ([]models.Job, error) {
	jobs, err := s.jobRepo.Search(ctx, req)
	if err != nil {
		log.Printf("JobService: Error searching jobs: %v", err)
		return nil, fmt.Errorf("internal error searching jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobService) ListMyJobs(ctx context.Context, actor models.Actor) ([]models.JobWithApplicants, error) {
	jobs, err := s.jobRepo.ListByOwnerWithApplicants(ctx, actor.ID)
	if err != nil {
		log.Printf("JobService: Error listing jobs for owner %d: %v", actor.ID, err)
		return nil, fmt.Errorf("internal error listing owner jobs: %w", err)
	}
	return jobs, nil
}

// SaveJob is idempotent: bookmarking an already-saved job succeeds.
func (s *jobService) SaveJob(ctx context.Context, actor models.Actor, jobID int64) error {
	_, err := s.savedJobRepo.Save(ctx, actor.ID, jobID)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil
		}
		return MapRepoError(err, "saving job")
	}
	return nil
}

func (s *jobService) UnsaveJob(ctx context.Context, actor models.Actor, jobID int64) error {
	err := s.savedJobRepo.Unsave(ctx, actor.ID, jobID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return MapRepoError(err, "unsaving job")
	}
	return nil
}

func (s *jobService) ListSavedJobs(ctx context.Context, actor models.Actor) ([]models.SavedJobWithJob, error) {
	saved, err := s.savedJobRepo.ListByUser(ctx, actor.ID)
	if err != nil {
		log.Printf("JobService: Error listing saved jobs for user %d: %v", actor.ID, err)
		return nil, fmt.Errorf("internal error listing saved jobs: %w", err)
	}
	return saved, nil
}
