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

func newPostService(ctrl *gomock.Controller) (services.PostService, *mock_storage.MockPostRepository, *mock_storage.MockCommunityRepository) {
	postRepo := mock_storage.NewMockPostRepository(ctrl)
	communityRepo := mock_storage.NewMockCommunityRepository(ctrl)
	svc := services.NewPostService(postRepo, communityRepo)
	return svc, postRepo, communityRepo
}

func int64Ptr(v int64) *int64 { return &v }

func TestPostService_CreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, postRepo, communityRepo := newPostService(ctrl)
	ctx := context.Background()

	actor := models.Actor{ID: 7}

	t.Run("Plain post", func(t *testing.T) {
		req := &dto.CreatePostRequest{Content: "hello"}
		postRepo.EXPECT().Create(gomock.Any(), req).
			DoAndReturn(func(_ context.Context, r *dto.CreatePostRequest) (*models.Post, error) {
				assert.Equal(t, actor.ID, r.UserID)
				return &models.Post{ID: 1, UserID: r.UserID, Content: r.Content}, nil
			}).Times(1)

		post, err := svc.CreatePost(ctx, actor, req)
		require.NoError(t, err)
		assert.Equal(t, actor.ID, post.UserID)
	})

	t.Run("Community post requires membership", func(t *testing.T) {
		req := &dto.CreatePostRequest{Content: "hello", CommunityID: int64Ptr(3)}
		communityRepo.EXPECT().GetMember(gomock.Any(), int64(3), actor.ID).Return(nil, storage.ErrNotFound).Times(1)

		_, err := svc.CreatePost(ctx, actor, req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Member posts into a community", func(t *testing.T) {
		req := &dto.CreatePostRequest{Content: "hello", CommunityID: int64Ptr(3)}
		communityRepo.EXPECT().GetMember(gomock.Any(), int64(3), actor.ID).
			Return(&models.CommunityMember{UserID: actor.ID, CommunityID: 3, Role: models.CommunityRoleMember}, nil).Times(1)
		postRepo.EXPECT().Create(gomock.Any(), req).Return(&models.Post{ID: 2, UserID: actor.ID, CommunityID: req.CommunityID}, nil).Times(1)

		post, err := svc.CreatePost(ctx, actor, req)
		require.NoError(t, err)
		require.NotNil(t, post.CommunityID)
		assert.Equal(t, int64(3), *post.CommunityID)
	})
}

func TestPostService_LikePost_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, postRepo, _ := newPostService(ctrl)
	ctx := context.Background()

	actor := models.Actor{ID: 7}

	t.Run("First like succeeds", func(t *testing.T) {
		postRepo.EXPECT().AddLike(gomock.Any(), actor.ID, int64(1)).Return(nil).Times(1)
		require.NoError(t, svc.LikePost(ctx, actor, 1))
	})

	t.Run("Duplicate like is a no-op", func(t *testing.T) {
		postRepo.EXPECT().AddLike(gomock.Any(), actor.ID, int64(1)).Return(storage.ErrConflict).Times(1)
		require.NoError(t, svc.LikePost(ctx, actor, 1))
	})

	t.Run("Unlike tolerates a missing like", func(t *testing.T) {
		postRepo.EXPECT().RemoveLike(gomock.Any(), actor.ID, int64(1)).Return(storage.ErrNotFound).Times(1)
		require.NoError(t, svc.UnlikePost(ctx, actor, 1))
	})
}

func TestPostService_Repost_FlattensChains(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, postRepo, _ := newPostService(ctrl)
	ctx := context.Background()

	actor := models.Actor{ID: 7}

	t.Run("Repost of an original", func(t *testing.T) {
		postRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Post{ID: 1, UserID: 2, Content: "original"}, nil).Times(1)
		postRepo.EXPECT().CreateRepost(gomock.Any(), actor.ID, int64(1)).
			Return(&models.Post{ID: 10, UserID: actor.ID, OriginalPostID: int64Ptr(1), RepostedBy: &actor.ID}, nil).Times(1)

		repost, err := svc.Repost(ctx, actor, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), *repost.OriginalPostID)
	})

	t.Run("Repost of a repost points at the root", func(t *testing.T) {
		repostRow := &models.Post{ID: 10, UserID: 3, OriginalPostID: int64Ptr(1), RepostedBy: int64Ptr(3)}
		postRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(repostRow, nil).Times(1)
		postRepo.EXPECT().CreateRepost(gomock.Any(), actor.ID, int64(1)).
			Return(&models.Post{ID: 11, UserID: actor.ID, OriginalPostID: int64Ptr(1), RepostedBy: &actor.ID}, nil).Times(1)

		repost, err := svc.Repost(ctx, actor, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), *repost.OriginalPostID)
	})
}

func TestPostService_DeleteComment_Authorization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, postRepo, _ := newPostService(ctrl)
	ctx := context.Background()

	comment := &models.Comment{ID: 5, UserID: 7, PostID: 1, Content: "nice"}

	t.Run("Comment author may delete", func(t *testing.T) {
		postRepo.EXPECT().GetComment(gomock.Any(), comment.ID).Return(comment, nil).Times(1)
		postRepo.EXPECT().DeleteComment(gomock.Any(), comment.ID).Return(nil).Times(1)
		require.NoError(t, svc.DeleteComment(ctx, models.Actor{ID: 7}, comment.ID))
	})

	t.Run("Post author may delete", func(t *testing.T) {
		postRepo.EXPECT().GetComment(gomock.Any(), comment.ID).Return(comment, nil).Times(1)
		postRepo.EXPECT().GetByID(gomock.Any(), comment.PostID).Return(&models.Post{ID: 1, UserID: 2}, nil).Times(1)
		postRepo.EXPECT().DeleteComment(gomock.Any(), comment.ID).Return(nil).Times(1)
		require.NoError(t, svc.DeleteComment(ctx, models.Actor{ID: 2}, comment.ID))
	})

	t.Run("Stranger is forbidden", func(t *testing.T) {
		postRepo.EXPECT().GetComment(gomock.Any(), comment.ID).Return(comment, nil).Times(1)
		postRepo.EXPECT().GetByID(gomock.Any(), comment.PostID).Return(&models.Post{ID: 1, UserID: 2}, nil).Times(1)
		err := svc.DeleteComment(ctx, models.Actor{ID: 99}, comment.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})
}

func TestPostService_ListCommunityPosts_PrivateGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, postRepo, communityRepo := newPostService(ctrl)
	ctx := context.Background()

	private := &models.Community{ID: 3, CreatedBy: 1, IsPrivate: true}

	t.Run("Member may list", func(t *testing.T) {
		communityRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(private, nil).Times(1)
		communityRepo.EXPECT().GetMember(gomock.Any(), int64(3), int64(7)).
			Return(&models.CommunityMember{UserID: 7, CommunityID: 3, Role: models.CommunityRoleMember}, nil).Times(1)
		postRepo.EXPECT().ListByCommunity(gomock.Any(), int64(3), int64(7), 20, 0).
			Return([]models.PostWithMeta{{Post: models.Post{ID: 1, UserID: 2, CommunityID: int64Ptr(3)}}}, nil).Times(1)

		posts, err := svc.ListCommunityPosts(ctx, models.Actor{ID: 7}, 3, 20, 0)
		require.NoError(t, err)
		assert.Len(t, posts, 1)
	})

	t.Run("Non-member is forbidden", func(t *testing.T) {
		communityRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(private, nil).Times(1)
		communityRepo.EXPECT().GetMember(gomock.Any(), int64(3), int64(8)).Return(nil, storage.ErrNotFound).Times(1)

		_, err := svc.ListCommunityPosts(ctx, models.Actor{ID: 8}, 3, 20, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})
}
