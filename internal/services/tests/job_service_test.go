package services_test

import (
	"context"
	"errors"
	"testing"

	mock_storage "talenthub/internal/mocks"
	"talenthub/internal/models"
	"talenthub/internal/services"
	"talenthub/internal/storage"
	"talenthub/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobService(ctrl *gomock.Controller) (services.JobService, *mock_storage.MockJobRepository, *mock_storage.MockSavedJobRepository) {
	jobRepo := mock_storage.NewMockJobRepository(ctrl)
	savedRepo := mock_storage.NewMockSavedJobRepository(ctrl)
	svc := services.NewJobService(jobRepo, savedRepo)
	return svc, jobRepo, savedRepo
}

func TestJobService_CreateJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, jobRepo, _ := newJobService(ctrl)
	ctx := context.Background()

	req := &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Build things",
	}

	t.Run("Forbidden for non-recruiters", func(t *testing.T) {
		_, err := svc.CreateJob(ctx, models.Actor{ID: 5}, req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Recruiter may create", func(t *testing.T) {
		jobRepo.EXPECT().Create(gomock.Any(), req).
			DoAndReturn(func(_ context.Context, r *dto.CreateJobRequest) (*models.Job, error) {
				assert.Equal(t, int64(5), r.UserID)
				return &models.Job{ID: 1, Title: r.Title, UserID: r.UserID}, nil
			}).Times(1)

		job, err := svc.CreateJob(ctx, models.Actor{ID: 5, IsRecruiter: true}, req)
		require.NoError(t, err)
		assert.Equal(t, int64(1), job.ID)
		assert.Equal(t, int64(5), job.UserID)
	})

	t.Run("Admin may create", func(t *testing.T) {
		jobRepo.EXPECT().Create(gomock.Any(), req).Return(&models.Job{ID: 2}, nil).Times(1)
		_, err := svc.CreateJob(ctx, models.Actor{ID: 9, IsAdmin: true}, req)
		require.NoError(t, err)
	})
}

func TestJobService_SetArchived(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, jobRepo, _ := newJobService(ctrl)
	ctx := context.Background()

	owner := models.Actor{ID: 5, IsRecruiter: true}
	const jobID int64 = 11

	tests := []struct {
		name          string
		actor         models.Actor
		archived      bool
		mockSetup     func()
		expectedError error
		errorContains string
	}{
		{
			name:     "Success",
			actor:    owner,
			archived: true,
			mockSetup: func() {
				jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{ID: jobID, UserID: owner.ID, IsArchived: false}, nil).Times(1)
				jobRepo.EXPECT().SetArchived(gomock.Any(), jobID, true).Return(&models.Job{ID: jobID, UserID: owner.ID, IsArchived: true}, nil).Times(1)
			},
		},
		{
			name:     "Forbidden for non-owner",
			actor:    models.Actor{ID: 99},
			archived: true,
			mockSetup: func() {
				jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{ID: jobID, UserID: owner.ID}, nil).Times(1)
			},
			expectedError: services.ErrForbidden,
		},
		{
			name:     "Conflict - already archived",
			actor:    owner,
			archived: true,
			mockSetup: func() {
				jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{ID: jobID, UserID: owner.ID, IsArchived: true}, nil).Times(1)
			},
			expectedError: services.ErrConflict,
			errorContains: "already",
		},
		{
			name:     "Conflict - concurrent flip",
			actor:    owner,
			archived: true,
			mockSetup: func() {
				jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{ID: jobID, UserID: owner.ID, IsArchived: false}, nil).Times(1)
				jobRepo.EXPECT().SetArchived(gomock.Any(), jobID, true).Return(nil, storage.ErrNotFound).Times(1)
			},
			expectedError: services.ErrConflict,
			errorContains: "concurrently",
		},
		{
			name:     "Unarchive success",
			actor:    owner,
			archived: false,
			mockSetup: func() {
				jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{ID: jobID, UserID: owner.ID, IsArchived: true}, nil).Times(1)
				jobRepo.EXPECT().SetArchived(gomock.Any(), jobID, false).Return(&models.Job{ID: jobID, UserID: owner.ID, IsArchived: false}, nil).Times(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			job, err := svc.SetArchived(ctx, tt.actor, jobID, tt.archived)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.archived, job.IsArchived)
			}
		})
	}
}

func TestJobService_SaveJob_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, savedRepo := newJobService(ctrl)
	ctx := context.Background()

	actor := models.Actor{ID: 5}

	t.Run("First save succeeds", func(t *testing.T) {
		savedRepo.EXPECT().Save(gomock.Any(), actor.ID, int64(11)).Return(&models.SavedJob{ID: 1, UserID: actor.ID, JobID: 11}, nil).Times(1)
		require.NoError(t, svc.SaveJob(ctx, actor, 11))
	})

	t.Run("Duplicate save is a no-op", func(t *testing.T) {
		savedRepo.EXPECT().Save(gomock.Any(), actor.ID, int64(11)).Return(nil, storage.ErrConflict).Times(1)
		require.NoError(t, svc.SaveJob(ctx, actor, 11))
	})

	t.Run("Unknown job", func(t *testing.T) {
		savedRepo.EXPECT().Save(gomock.Any(), actor.ID, int64(404)).Return(nil, storage.ErrNotFound).Times(1)
		err := svc.SaveJob(ctx, actor, 404)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
	})

	t.Run("Unsave tolerates a missing bookmark", func(t *testing.T) {
		savedRepo.EXPECT().Unsave(gomock.Any(), actor.ID, int64(11)).Return(storage.ErrNotFound).Times(1)
		require.NoError(t, svc.UnsaveJob(ctx, actor, 11))
	})
}

func TestJobService_DeleteJob_Ownership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, jobRepo, _ := newJobService(ctrl)
	ctx := context.Background()

	const jobID int64 = 11

	t.Run("Forbidden for non-owner", func(t *testing.T) {
		jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{ID: jobID, UserID: 5}, nil).Times(1)
		err := svc.DeleteJob(ctx, models.Actor{ID: 6}, jobID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Owner may delete", func(t *testing.T) {
		jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{ID: jobID, UserID: 5}, nil).Times(1)
		jobRepo.EXPECT().Delete(gomock.Any(), jobID).Return(nil).Times(1)
		require.NoError(t, svc.DeleteJob(ctx, models.Actor{ID: 5}, jobID))
	})

	t.Run("Not found", func(t *testing.T) {
		jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(nil, storage.ErrNotFound).Times(1)
		err := svc.DeleteJob(ctx, models.Actor{ID: 5}, jobID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
	})
}
