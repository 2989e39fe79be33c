package services_test

import (
	"context"
	"errors"
	"testing"

	mock_storage "talenthub/internal/mocks"
	"talenthub/internal/models"
	"talenthub/internal/services"
	"talenthub/internal/storage"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityService_Join(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_storage.NewMockCommunityRepository(ctrl)
	svc := services.NewCommunityService(repo)
	ctx := context.Background()

	actor := models.Actor{ID: 7}
	const communityID int64 = 3

	t.Run("Success", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), communityID).Return(&models.Community{ID: communityID, CreatedBy: 1}, nil).Times(1)
		repo.EXPECT().AddMember(gomock.Any(), communityID, actor.ID, models.CommunityRoleMember, false).Return(nil).Times(1)
		require.NoError(t, svc.Join(ctx, actor, communityID))
	})

	t.Run("Forbidden - invite only", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), communityID).Return(&models.Community{ID: communityID, CreatedBy: 1, InviteOnly: true}, nil).Times(1)
		err := svc.Join(ctx, actor, communityID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
		assert.Contains(t, err.Error(), "invite-only")
	})

	t.Run("Conflict - already a member", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), communityID).Return(&models.Community{ID: communityID, CreatedBy: 1}, nil).Times(1)
		repo.EXPECT().AddMember(gomock.Any(), communityID, actor.ID, models.CommunityRoleMember, false).Return(storage.ErrConflict).Times(1)
		err := svc.Join(ctx, actor, communityID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrConflict))
	})
}

func TestCommunityService_Leave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_storage.NewMockCommunityRepository(ctrl)
	svc := services.NewCommunityService(repo)
	ctx := context.Background()

	const communityID int64 = 3
	const creatorID int64 = 1

	t.Run("Member may leave", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), communityID).Return(&models.Community{ID: communityID, CreatedBy: creatorID}, nil).Times(1)
		repo.EXPECT().RemoveMember(gomock.Any(), communityID, int64(7)).Return(nil).Times(1)
		require.NoError(t, svc.Leave(ctx, models.Actor{ID: 7}, communityID))
	})

	t.Run("Creator cannot leave", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), communityID).Return(&models.Community{ID: communityID, CreatedBy: creatorID}, nil).Times(1)
		err := svc.Leave(ctx, models.Actor{ID: creatorID}, communityID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrConflict))
		assert.Contains(t, err.Error(), "creator")
	})
}

func TestCommunityService_InviteMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_storage.NewMockCommunityRepository(ctrl)
	svc := services.NewCommunityService(repo)
	ctx := context.Background()

	const communityID int64 = 3
	const invitee int64 = 9

	t.Run("Moderator may invite", func(t *testing.T) {
		repo.EXPECT().GetMember(gomock.Any(), communityID, int64(7)).
			Return(&models.CommunityMember{UserID: 7, CommunityID: communityID, Role: models.CommunityRoleModerator}, nil).Times(1)
		repo.EXPECT().AddMember(gomock.Any(), communityID, invitee, models.CommunityRoleMember, true).Return(nil).Times(1)
		require.NoError(t, svc.InviteMember(ctx, models.Actor{ID: 7}, communityID, invitee))
	})

	t.Run("Plain member may not invite", func(t *testing.T) {
		repo.EXPECT().GetMember(gomock.Any(), communityID, int64(7)).
			Return(&models.CommunityMember{UserID: 7, CommunityID: communityID, Role: models.CommunityRoleMember}, nil).Times(1)
		err := svc.InviteMember(ctx, models.Actor{ID: 7}, communityID, invitee)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Non-member may not invite", func(t *testing.T) {
		repo.EXPECT().GetMember(gomock.Any(), communityID, int64(7)).Return(nil, storage.ErrNotFound).Times(1)
		err := svc.InviteMember(ctx, models.Actor{ID: 7}, communityID, invitee)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Site admin bypasses the role check", func(t *testing.T) {
		repo.EXPECT().AddMember(gomock.Any(), communityID, invitee, models.CommunityRoleMember, true).Return(nil).Times(1)
		require.NoError(t, svc.InviteMember(ctx, models.Actor{ID: 99, IsAdmin: true}, communityID, invitee))
	})
}

func TestCommunityService_SetMemberRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_storage.NewMockCommunityRepository(ctrl)
	svc := services.NewCommunityService(repo)
	ctx := context.Background()

	const communityID int64 = 3
	const creatorID int64 = 1

	t.Run("Creator's role is fixed", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), communityID).Return(&models.Community{ID: communityID, CreatedBy: creatorID}, nil).Times(1)
		err := svc.SetMemberRole(ctx, models.Actor{ID: 99, IsAdmin: true}, communityID, creatorID, models.CommunityRoleMember)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Community admin may promote", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), communityID).Return(&models.Community{ID: communityID, CreatedBy: creatorID}, nil).Times(1)
		repo.EXPECT().GetMember(gomock.Any(), communityID, creatorID).
			Return(&models.CommunityMember{UserID: creatorID, CommunityID: communityID, Role: models.CommunityRoleAdmin}, nil).Times(1)
		repo.EXPECT().SetMemberRole(gomock.Any(), communityID, int64(9), models.CommunityRoleModerator).Return(nil).Times(1)
		require.NoError(t, svc.SetMemberRole(ctx, models.Actor{ID: creatorID}, communityID, 9, models.CommunityRoleModerator))
	})

	t.Run("Moderator may not promote", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), communityID).Return(&models.Community{ID: communityID, CreatedBy: creatorID}, nil).Times(1)
		repo.EXPECT().GetMember(gomock.Any(), communityID, int64(7)).
			Return(&models.CommunityMember{UserID: 7, CommunityID: communityID, Role: models.CommunityRoleModerator}, nil).Times(1)
		err := svc.SetMemberRole(ctx, models.Actor{ID: 7}, communityID, 9, models.CommunityRoleModerator)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})
}

func TestCommunityService_RemoveMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_storage.NewMockCommunityRepository(ctrl)
	svc := services.NewCommunityService(repo)
	ctx := context.Background()

	const communityID int64 = 3
	const creatorID int64 = 1

	t.Run("Creator cannot be removed", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), communityID).Return(&models.Community{ID: communityID, CreatedBy: creatorID}, nil).Times(1)
		err := svc.RemoveMember(ctx, models.Actor{ID: 99, IsAdmin: true}, communityID, creatorID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Moderator may remove a member", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), communityID).Return(&models.Community{ID: communityID, CreatedBy: creatorID}, nil).Times(1)
		repo.EXPECT().GetMember(gomock.Any(), communityID, int64(7)).
			Return(&models.CommunityMember{UserID: 7, CommunityID: communityID, Role: models.CommunityRoleModerator}, nil).Times(1)
		repo.EXPECT().RemoveMember(gomock.Any(), communityID, int64(9)).Return(nil).Times(1)
		require.NoError(t, svc.RemoveMember(ctx, models.Actor{ID: 7}, communityID, 9))
	})
}

func TestCommunityService_ListMembers_PrivateGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_storage.NewMockCommunityRepository(ctrl)
	svc := services.NewCommunityService(repo)
	ctx := context.Background()

	const communityID int64 = 3
	private := &models.Community{ID: communityID, CreatedBy: 1, IsPrivate: true}
	members := []models.CommunityMemberWithUser{
		{CommunityMember: models.CommunityMember{UserID: 1, CommunityID: communityID, Role: models.CommunityRoleAdmin}, Username: "founder", Name: "Founder"},
	}

	t.Run("Member may list", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), communityID).Return(private, nil).Times(1)
		repo.EXPECT().GetMember(gomock.Any(), communityID, int64(7)).
			Return(&models.CommunityMember{UserID: 7, CommunityID: communityID, Role: models.CommunityRoleMember}, nil).Times(1)
		repo.EXPECT().ListMembers(gomock.Any(), communityID).Return(members, nil).Times(1)

		got, err := svc.ListMembers(ctx, models.Actor{ID: 7}, communityID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Non-member is forbidden", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), communityID).Return(private, nil).Times(1)
		repo.EXPECT().GetMember(gomock.Any(), communityID, int64(8)).Return(nil, storage.ErrNotFound).Times(1)

		_, err := svc.ListMembers(ctx, models.Actor{ID: 8}, communityID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})
}
