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

func newApplicationService(ctrl *gomock.Controller) (services.JobApplicationService, *mock_storage.MockJobApplicationRepository, *mock_storage.MockJobRepository) {
	appRepo := mock_storage.NewMockJobApplicationRepository(ctrl)
	jobRepo := mock_storage.NewMockJobRepository(ctrl)
	svc := services.NewJobApplicationService(appRepo, jobRepo)
	return svc, appRepo, jobRepo
}

func TestJobApplicationService_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, appRepo, jobRepo := newApplicationService(ctrl)
	ctx := context.Background()

	const jobID int64 = 11
	const ownerID int64 = 5
	applicant := models.Actor{ID: 7}

	tests := []struct {
		name          string
		actor         models.Actor
		mockSetup     func(req *dto.ApplyToJobRequest)
		expectedError error
		errorContains string
	}{
		{
			name:  "Success",
			actor: applicant,
			mockSetup: func(req *dto.ApplyToJobRequest) {
				jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{ID: jobID, UserID: ownerID}, nil).Times(1)
				appRepo.EXPECT().HasActiveApplication(gomock.Any(), jobID, applicant.ID).Return(false, nil).Times(1)
				appRepo.EXPECT().Create(gomock.Any(), req).
					DoAndReturn(func(_ context.Context, r *dto.ApplyToJobRequest) (*models.JobApplication, error) {
						assert.Equal(t, applicant.ID, r.ApplicantID)
						return &models.JobApplication{ID: 1, JobID: jobID, ApplicantID: r.ApplicantID, Status: models.ApplicationStatusApplied}, nil
					}).Times(1)
			},
		},
		{
			name:  "Forbidden - own job",
			actor: models.Actor{ID: ownerID, IsRecruiter: true},
			mockSetup: func(req *dto.ApplyToJobRequest) {
				jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{ID: jobID, UserID: ownerID}, nil).Times(1)
			},
			expectedError: services.ErrForbidden,
			errorContains: "own job",
		},
		{
			name:  "Conflict - archived job",
			actor: applicant,
			mockSetup: func(req *dto.ApplyToJobRequest) {
				jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{ID: jobID, UserID: ownerID, IsArchived: true}, nil).Times(1)
			},
			expectedError: services.ErrConflict,
			errorContains: "archived",
		},
		{
			name:  "Conflict - application in progress",
			actor: applicant,
			mockSetup: func(req *dto.ApplyToJobRequest) {
				jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{ID: jobID, UserID: ownerID}, nil).Times(1)
				appRepo.EXPECT().HasActiveApplication(gomock.Any(), jobID, applicant.ID).Return(true, nil).Times(1)
			},
			expectedError: services.ErrConflict,
			errorContains: "in progress",
		},
		{
			name:  "Job not found",
			actor: applicant,
			mockSetup: func(req *dto.ApplyToJobRequest) {
				jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(nil, storage.ErrNotFound).Times(1)
			},
			expectedError: services.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &dto.ApplyToJobRequest{JobID: jobID}
			tt.mockSetup(req)

			app, err := svc.Apply(ctx, tt.actor, req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, models.ApplicationStatusApplied, app.Status)
			}
		})
	}
}

func TestJobApplicationService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, appRepo, jobRepo := newApplicationService(ctrl)
	ctx := context.Background()

	const appID int64 = 21
	const jobID int64 = 11
	owner := models.Actor{ID: 5, IsRecruiter: true}

	app := func(status models.ApplicationStatus) *models.JobApplication {
		return &models.JobApplication{ID: appID, JobID: jobID, ApplicantID: 7, Status: status}
	}

	tests := []struct {
		name          string
		actor         models.Actor
		from          models.ApplicationStatus
		to            string
		mockSetup     func(from models.ApplicationStatus, to models.ApplicationStatus)
		expectedError error
		errorContains string
	}{
		{
			name:  "Applied to shortlisted",
			actor: owner,
			from:  models.ApplicationStatusApplied,
			to:    "shortlisted",
			mockSetup: func(from, to models.ApplicationStatus) {
				appRepo.EXPECT().UpdateStatus(gomock.Any(), appID, from, to).Return(app(to), nil).Times(1)
			},
		},
		{
			name:  "Shortlisted to interview",
			actor: owner,
			from:  models.ApplicationStatusShortlisted,
			to:    "interview",
			mockSetup: func(from, to models.ApplicationStatus) {
				appRepo.EXPECT().UpdateStatus(gomock.Any(), appID, from, to).Return(app(to), nil).Times(1)
			},
		},
		{
			name:  "Interview to hired",
			actor: owner,
			from:  models.ApplicationStatusInterview,
			to:    "hired",
			mockSetup: func(from, to models.ApplicationStatus) {
				appRepo.EXPECT().UpdateStatus(gomock.Any(), appID, from, to).Return(app(to), nil).Times(1)
			},
		},
		{
			name:          "Invalid - applied straight to hired",
			actor:         owner,
			from:          models.ApplicationStatusApplied,
			to:            "hired",
			mockSetup:     func(from, to models.ApplicationStatus) {},
			expectedError: services.ErrInvalidTransition,
		},
		{
			name:          "Invalid - out of a terminal status",
			actor:         owner,
			from:          models.ApplicationStatusRejected,
			to:            "shortlisted",
			mockSetup:     func(from, to models.ApplicationStatus) {},
			expectedError: services.ErrInvalidTransition,
		},
		{
			name:  "Conflict - concurrent transition",
			actor: owner,
			from:  models.ApplicationStatusApplied,
			to:    "rejected",
			mockSetup: func(from, to models.ApplicationStatus) {
				appRepo.EXPECT().UpdateStatus(gomock.Any(), appID, from, to).Return(nil, storage.ErrNotFound).Times(1)
			},
			expectedError: services.ErrConflict,
			errorContains: "concurrently",
		},
		{
			name:          "Forbidden - not the job owner",
			actor:         models.Actor{ID: 99},
			from:          models.ApplicationStatusApplied,
			to:            "shortlisted",
			mockSetup:     func(from, to models.ApplicationStatus) {},
			expectedError: services.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appRepo.EXPECT().GetByID(gomock.Any(), appID).Return(app(tt.from), nil).Times(1)
			jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{ID: jobID, UserID: owner.ID}, nil).Times(1)
			tt.mockSetup(tt.from, models.ApplicationStatus(tt.to))

			updated, err := svc.UpdateStatus(ctx, tt.actor, &dto.UpdateApplicationStatusRequest{ID: appID, Status: tt.to})

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, models.ApplicationStatus(tt.to), updated.Status)
			}
		})
	}
}

func TestJobApplicationService_GetApplication_Authorization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, appRepo, jobRepo := newApplicationService(ctrl)
	ctx := context.Background()

	app := &models.JobApplication{ID: 21, JobID: 11, ApplicantID: 7, Status: models.ApplicationStatusApplied}

	t.Run("Applicant may read", func(t *testing.T) {
		appRepo.EXPECT().GetByID(gomock.Any(), app.ID).Return(app, nil).Times(1)
		got, err := svc.GetApplication(ctx, models.Actor{ID: 7}, app.ID)
		require.NoError(t, err)
		assert.Equal(t, app.ID, got.ID)
	})

	t.Run("Job owner may read", func(t *testing.T) {
		appRepo.EXPECT().GetByID(gomock.Any(), app.ID).Return(app, nil).Times(1)
		jobRepo.EXPECT().GetByID(gomock.Any(), app.JobID).Return(&models.Job{ID: 11, UserID: 5}, nil).Times(1)
		_, err := svc.GetApplication(ctx, models.Actor{ID: 5}, app.ID)
		require.NoError(t, err)
	})

	t.Run("Stranger is forbidden", func(t *testing.T) {
		appRepo.EXPECT().GetByID(gomock.Any(), app.ID).Return(app, nil).Times(1)
		jobRepo.EXPECT().GetByID(gomock.Any(), app.JobID).Return(&models.Job{ID: 11, UserID: 5}, nil).Times(1)
		_, err := svc.GetApplication(ctx, models.Actor{ID: 99}, app.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})
}
