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
	"golang.org/x/crypto/bcrypt"
)

func newResetService(ctrl *gomock.Controller) (services.PasswordResetService, *mock_storage.MockPasswordResetRepository, *mock_storage.MockUserRepository) {
	repo := mock_storage.NewMockPasswordResetRepository(ctrl)
	userRepo := mock_storage.NewMockUserRepository(ctrl)
	svc := services.NewPasswordResetService(repo, userRepo)
	return svc, repo, userRepo
}

func TestPasswordResetService_RequestReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, userRepo := newResetService(ctrl)
	ctx := context.Background()

	t.Run("Known email files a request", func(t *testing.T) {
		userRepo.EXPECT().GetByEmail(gomock.Any(), "known@example.com").
			Return(&models.User{ID: 7, Email: "known@example.com"}, nil).Times(1)
		repo.EXPECT().Create(gomock.Any(), int64(7), "known@example.com").
			Return(&models.PasswordResetRequest{ID: 1, UserID: 7, Email: "known@example.com", Status: models.ResetStatusPending}, nil).Times(1)

		require.NoError(t, svc.RequestReset(ctx, &dto.CreatePasswordResetRequest{Email: "known@example.com"}))
	})

	t.Run("Unknown email succeeds silently", func(t *testing.T) {
		userRepo.EXPECT().GetByEmail(gomock.Any(), "unknown@example.com").Return(nil, storage.ErrNotFound).Times(1)
		require.NoError(t, svc.RequestReset(ctx, &dto.CreatePasswordResetRequest{Email: "unknown@example.com"}))
	})

	t.Run("Repository error surfaces", func(t *testing.T) {
		repoErr := errors.New("db down")
		userRepo.EXPECT().GetByEmail(gomock.Any(), "known@example.com").Return(nil, repoErr).Times(1)
		err := svc.RequestReset(ctx, &dto.CreatePasswordResetRequest{Email: "known@example.com"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, repoErr))
	})
}

func TestPasswordResetService_Process(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newResetService(ctrl)
	ctx := context.Background()

	admin := models.Actor{ID: 99, IsAdmin: true}
	const resetID int64 = 1

	pending := func() *models.PasswordResetRequest {
		return &models.PasswordResetRequest{ID: resetID, UserID: 7, Email: "known@example.com", Status: models.ResetStatusPending}
	}

	t.Run("Forbidden for non-admins", func(t *testing.T) {
		_, err := svc.Process(ctx, models.Actor{ID: 7}, &dto.ProcessPasswordResetRequest{ID: resetID, Status: "approved"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Approve generates a usable temporary password", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), resetID).Return(pending(), nil).Times(1)
		repo.EXPECT().Process(gomock.Any(), resetID, models.ResetStatusApproved, admin.ID, gomock.Nil(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id int64, status models.ResetStatus, processedBy int64, notes, tempPassword, userPasswordHash *string) (*models.PasswordResetRequest, error) {
				require.NotNil(t, tempPassword)
				require.NotNil(t, userPasswordHash)
				assert.Len(t, *tempPassword, 16)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*userPasswordHash), []byte(*tempPassword)))
				return &models.PasswordResetRequest{
					ID:                id,
					UserID:            7,
					Status:            status,
					TemporaryPassword: tempPassword,
					ProcessedBy:       &processedBy,
				}, nil
			}).Times(1)

		processed, err := svc.Process(ctx, admin, &dto.ProcessPasswordResetRequest{ID: resetID, Status: "approved"})
		require.NoError(t, err)
		assert.Equal(t, models.ResetStatusApproved, processed.Status)
		assert.NotNil(t, processed.TemporaryPassword)
	})

	t.Run("Reject passes no credential material", func(t *testing.T) {
		notes := ptr("could not verify identity")
		repo.EXPECT().GetByID(gomock.Any(), resetID).Return(pending(), nil).Times(1)
		repo.EXPECT().Process(gomock.Any(), resetID, models.ResetStatusRejected, admin.ID, notes, gomock.Nil(), gomock.Nil()).
			Return(&models.PasswordResetRequest{ID: resetID, UserID: 7, Status: models.ResetStatusRejected, AdminNotes: notes}, nil).Times(1)

		processed, err := svc.Process(ctx, admin, &dto.ProcessPasswordResetRequest{ID: resetID, Status: "rejected", AdminNotes: notes})
		require.NoError(t, err)
		assert.Equal(t, models.ResetStatusRejected, processed.Status)
		assert.Nil(t, processed.TemporaryPassword)
	})

	t.Run("Invalid - request already resolved", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), resetID).
			Return(&models.PasswordResetRequest{ID: resetID, UserID: 7, Status: models.ResetStatusApproved}, nil).Times(1)

		_, err := svc.Process(ctx, admin, &dto.ProcessPasswordResetRequest{ID: resetID, Status: "rejected"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrInvalidTransition))
	})

	t.Run("Conflict - processed concurrently", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), resetID).Return(pending(), nil).Times(1)
		repo.EXPECT().Process(gomock.Any(), resetID, models.ResetStatusRejected, admin.ID, gomock.Nil(), gomock.Nil(), gomock.Nil()).
			Return(nil, storage.ErrNotFound).Times(1)

		_, err := svc.Process(ctx, admin, &dto.ProcessPasswordResetRequest{ID: resetID, Status: "rejected"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrConflict))
		assert.Contains(t, err.Error(), "already processed")
	})
}

func TestPasswordResetService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newResetService(ctrl)
	ctx := context.Background()

	t.Run("Forbidden for non-admins", func(t *testing.T) {
		_, err := svc.List(ctx, models.Actor{ID: 7}, true, 25, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Admin lists pending requests", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any(), true, 25, 0).
			Return([]models.PasswordResetRequest{{ID: 1, UserID: 7, Status: models.ResetStatusPending}}, nil).Times(1)

		resets, err := svc.List(ctx, models.Actor{ID: 99, IsAdmin: true}, true, 25, 0)
		require.NoError(t, err)
		assert.Len(t, resets, 1)
	})
}
