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

type postService struct {
	postRepo      storage.PostRepository
	communityRepo storage.CommunityRepository
}

// NewPostService creates a new instance of PostService.
func NewPostService(postRepo storage.PostRepository, communityRepo storage.CommunityRepository) PostService {
	return &postService{postRepo: postRepo, communityRepo: communityRepo}
}

func (s *postService) CreatePost(ctx context.Context, actor models.Actor, req *dto.CreatePostRequest) (*models.Post, error) {
	if req.CommunityID != nil {
		// Posting into a community requires membership.
		_, err := s.communityRepo.GetMember(ctx, *req.CommunityID, actor.ID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, ErrForbidden
			}
			return nil, MapRepoError(err, "checking community membership")
		}
	}

	req.UserID = actor.ID
	post, err := s.postRepo.Create(ctx, req)
	if err != nil {
		log.Printf("PostService: Error creating post: %v", err)
		return nil, MapRepoError(err, "creating post")
	}
	return post, nil
}

func (s *postService) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, "getting post")
	}
	return post, nil
}

// DeletePost removes a post. Repost pointers referencing it go with it.
func (s *postService) DeletePost(ctx context.Context, actor models.Actor, id int64) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return MapRepoError(err, "fetching post for delete")
	}
	if !actor.CanMutate(post.UserID) {
		return ErrForbidden
	}
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return MapRepoError(err, "deleting post")
	}
	return nil
}

func (s *postService) ListFeed(ctx context.Context, req *dto.ListFeedRequest) ([]models.PostWithMeta, error) {
	posts, err := s.postRepo.ListFeed(ctx, req.ViewerID, req.Limit, req.Offset)
	if err != nil {
		log.Printf("PostService: Error listing feed: %v", err)
		return nil, fmt.Errorf("internal error listing feed: %w", err)
	}
	return posts, nil
}

func (s *postService) ListUserPosts(ctx context.Context, userID, viewerID int64) ([]models.PostWithMeta, error) {
	posts, err := s.postRepo.ListByUser(ctx, userID, viewerID)
	if err != nil {
		log.Printf("PostService: Error listing posts for user %d: %v", userID, err)
		return nil, fmt.Errorf("internal error listing user posts: %w", err)
	}
	return posts, nil
}

// ListCommunityPosts restricts private communities to their members.
func (s *postService) ListCommunityPosts(ctx context.Context, actor models.Actor, communityID int64, limit, offset int) ([]models.PostWithMeta, error) {
	community, err := s.communityRepo.GetByID(ctx, communityID)
	if err != nil {
		return nil, MapRepoError(err, "fetching community")
	}
	if community.IsPrivate && !actor.IsAdmin {
		_, err := s.communityRepo.GetMember(ctx, communityID, actor.ID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, ErrForbidden
			}
			return nil, MapRepoError(err, "checking community membership")
		}
	}

	posts, err := s.postRepo.ListByCommunity(ctx, communityID, actor.ID, limit, offset)
	if err != nil {
		log.Printf("PostService: Error listing posts for community %d: %v", communityID, err)
		return nil, fmt.Errorf("internal error listing community posts: %w", err)
	}
	return posts, nil
}

// LikePost is idempotent: liking an already-liked post succeeds without a
// second row.
func (s *postService) LikePost(ctx context.Context, actor models.Actor, postID int64) error {
	err := s.postRepo.AddLike(ctx, actor.ID, postID)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil
		}
		return MapRepoError(err, "liking post")
	}
	return nil
}

func (s *postService) UnlikePost(ctx context.Context, actor models.Actor, postID int64) error {
	err := s.postRepo.RemoveLike(ctx, actor.ID, postID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return MapRepoError(err, "unliking post")
	}
	return nil
}

func (s *postService) CommentOnPost(ctx context.Context, actor models.Actor, req *dto.CreateCommentRequest) (*models.Comment, error) {
	req.UserID = actor.ID
	comment, err := s.postRepo.AddComment(ctx, req)
	if err != nil {
		return nil, MapRepoError(err, "commenting on post")
	}
	return comment, nil
}

// DeleteComment allows the comment author, the post author, or an admin.
func (s *postService) DeleteComment(ctx context.Context, actor models.Actor, commentID int64) error {
	comment, err := s.postRepo.GetComment(ctx, commentID)
	if err != nil {
		return MapRepoError(err, "fetching comment for delete")
	}

	allowed := actor.CanMutate(comment.UserID)
	if !allowed {
		post, err := s.postRepo.GetByID(ctx, comment.PostID)
		if err != nil {
			return MapRepoError(err, "fetching post for comment delete")
		}
		allowed = post.UserID == actor.ID
	}
	if !allowed {
		return ErrForbidden
	}

	if err := s.postRepo.DeleteComment(ctx, commentID); err != nil {
		return MapRepoError(err, "deleting comment")
	}
	return nil
}

func (s *postService) ListComments(ctx context.Context, postID int64) ([]models.CommentWithAuthor, error) {
	comments, err := s.postRepo.ListComments(ctx, postID)
	if err != nil {
		log.Printf("PostService: Error listing comments for post %d: %v", postID, err)
		return nil, fmt.Errorf("internal error listing comments: %w", err)
	}
	return comments, nil
}

// Repost shares a post onto the actor's feed. Reposting a repost flattens to
// the root original so chains never form.
func (s *postService) Repost(ctx context.Context, actor models.Actor, postID int64) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, MapRepoError(err, "fetching post for repost")
	}

	originalID := post.ID
	if post.IsRepost() {
		originalID = *post.OriginalPostID
	}

	repost, err := s.postRepo.CreateRepost(ctx, actor.ID, originalID)
	if err != nil {
		return nil, MapRepoError(err, "creating repost")
	}
	return repost, nil
}
