package services_test

import (
	"context"
	"errors"
	"testing"

	mock_storage "talenthub/internal/mocks"
	"talenthub/internal/models"
	"talenthub/internal/services"
	"talenthub/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func TestAdminService_SetRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminRepo := mock_storage.NewMockAdminRepository(ctrl)
	userRepo := mock_storage.NewMockUserRepository(ctrl)
	svc := services.NewAdminService(adminRepo, userRepo)
	ctx := context.Background()

	admin := models.Actor{ID: 99, IsAdmin: true}

	t.Run("Forbidden for non-admins", func(t *testing.T) {
		_, err := svc.SetRoles(ctx, models.Actor{ID: 7}, 8, &dto.SetRoleRequest{IsRecruiter: boolPtr(true)})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Grant recruiter flag", func(t *testing.T) {
		userRepo.EXPECT().SetRoles(gomock.Any(), int64(8), boolPtr(true), gomock.Nil()).
			Return(&models.User{ID: 8, IsRecruiter: true}, nil).Times(1)

		user, err := svc.SetRoles(ctx, admin, 8, &dto.SetRoleRequest{IsRecruiter: boolPtr(true)})
		require.NoError(t, err)
		assert.True(t, user.IsRecruiter)
	})

	t.Run("Conflict - cannot revoke own admin flag", func(t *testing.T) {
		_, err := svc.SetRoles(ctx, admin, admin.ID, &dto.SetRoleRequest{IsAdmin: boolPtr(false)})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrConflict))
	})

	t.Run("Another admin may revoke", func(t *testing.T) {
		userRepo.EXPECT().SetRoles(gomock.Any(), int64(50), gomock.Nil(), boolPtr(false)).
			Return(&models.User{ID: 50, IsAdmin: false}, nil).Times(1)

		user, err := svc.SetRoles(ctx, admin, 50, &dto.SetRoleRequest{IsAdmin: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, user.IsAdmin)
	})
}

func TestAdminService_Listings_AdminGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminRepo := mock_storage.NewMockAdminRepository(ctrl)
	userRepo := mock_storage.NewMockUserRepository(ctrl)
	svc := services.NewAdminService(adminRepo, userRepo)
	ctx := context.Background()

	req := &dto.ListRequest{Limit: 25}

	t.Run("Forbidden for plain users", func(t *testing.T) {
		_, err := svc.ListUsers(ctx, models.Actor{ID: 7}, req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Admin lists users", func(t *testing.T) {
		adminRepo.EXPECT().ListUsers(gomock.Any(), req).
			Return([]models.AdminUserView{{ID: 1, Username: "root", IsAdmin: true}}, nil).Times(1)

		views, err := svc.ListUsers(ctx, models.Actor{ID: 99, IsAdmin: true}, req)
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})
}
