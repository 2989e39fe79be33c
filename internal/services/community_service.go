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

type communityService struct {
	repo storage.CommunityRepository
}

// NewCommunityService creates a new instance of CommunityService.
func NewCommunityService(repo storage.CommunityRepository) CommunityService {
	return &communityService{repo: repo}
}

// Create makes a community and enrolls the creator as its admin; both happen
// in one repo transaction so member_count is never off by one.
func (s *communityService) Create(ctx context.Context, actor models.Actor, req *dto.CreateCommunityRequest) (*models.Community, error) {
	req.CreatedBy = actor.ID
	community, err := s.repo.Create(ctx, req)
	if err != nil {
		log.Printf("CommunityService: Error creating community: %v", err)
		return nil, MapRepoError(err, "creating community")
	}
	return community, nil
}

func (s *communityService) Get(ctx context.Context, id int64) (*models.Community, error) {
	community, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, "getting community")
	}
	return community, nil
}

func (s *communityService) Update(ctx context.Context, actor models.Actor, req *dto.UpdateCommunityRequest) (*models.Community, error) {
	if err := s.requireCommunityAdmin(ctx, actor, req.ID); err != nil {
		return nil, err
	}
	community, err := s.repo.Update(ctx, req)
	if err != nil {
		return nil, MapRepoError(err, "updating community")
	}
	return community, nil
}

func (s *communityService) Delete(ctx context.Context, actor models.Actor, id int64) error {
	community, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MapRepoError(err, "fetching community for delete")
	}
	if !actor.CanMutate(community.CreatedBy) {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return MapRepoError(err, "deleting community")
	}
	return nil
}

func (s *communityService) List(ctx context.Context, limit, offset int) ([]models.Community, error) {
	communities, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		log.Printf("CommunityService: Error listing communities: %v", err)
		return nil, fmt.Errorf("internal error listing communities: %w", err)
	}
	return communities, nil
}

// Join enrolls the actor as a member. Invite-only communities cannot be
// joined directly; membership there is granted through InviteMember.
func (s *communityService) Join(ctx context.Context, actor models.Actor, communityID int64) error {
	community, err := s.repo.GetByID(ctx, communityID)
	if err != nil {
		return MapRepoError(err, "fetching community for join")
	}
	if community.InviteOnly {
		return fmt.Errorf("%w: community is invite-only", ErrForbidden)
	}

	err = s.repo.AddMember(ctx, communityID, actor.ID, models.CommunityRoleMember, false)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return fmt.Errorf("%w: already a member", ErrConflict)
		}
		return MapRepoError(err, "joining community")
	}
	return nil
}

// Leave removes the actor's own membership. The creator cannot leave; they
// delete the community instead.
func (s *communityService) Leave(ctx context.Context, actor models.Actor, communityID int64) error {
	community, err := s.repo.GetByID(ctx, communityID)
	if err != nil {
		return MapRepoError(err, "fetching community for leave")
	}
	if community.CreatedBy == actor.ID {
		return fmt.Errorf("%w: creator cannot leave their community", ErrConflict)
	}

	if err := s.repo.RemoveMember(ctx, communityID, actor.ID); err != nil {
		return MapRepoError(err, "leaving community")
	}
	return nil
}

// InviteMember enrolls a user directly, flagged as invited. Requires a
// moderator or admin role in the community.
func (s *communityService) InviteMember(ctx context.Context, actor models.Actor, communityID, userID int64) error {
	if err := s.requireCommunityRole(ctx, actor, communityID, models.CommunityRoleModerator); err != nil {
		return err
	}

	err := s.repo.AddMember(ctx, communityID, userID, models.CommunityRoleMember, true)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return fmt.Errorf("%w: already a member", ErrConflict)
		}
		return MapRepoError(err, "inviting member")
	}
	return nil
}

// RemoveMember kicks a user out. Requires a moderator or admin role; the
// creator cannot be removed.
func (s *communityService) RemoveMember(ctx context.Context, actor models.Actor, communityID, userID int64) error {
	community, err := s.repo.GetByID(ctx, communityID)
	if err != nil {
		return MapRepoError(err, "fetching community for member removal")
	}
	if community.CreatedBy == userID {
		return fmt.Errorf("%w: cannot remove the community creator", ErrForbidden)
	}
	if err := s.requireCommunityRole(ctx, actor, communityID, models.CommunityRoleModerator); err != nil {
		return err
	}

	if err := s.repo.RemoveMember(ctx, communityID, userID); err != nil {
		return MapRepoError(err, "removing member")
	}
	return nil
}

// ListMembers restricts private communities to their members.
func (s *communityService) ListMembers(ctx context.Context, actor models.Actor, communityID int64) ([]models.CommunityMemberWithUser, error) {
	community, err := s.repo.GetByID(ctx, communityID)
	if err != nil {
		return nil, MapRepoError(err, "fetching community for members")
	}
	if community.IsPrivate && !actor.IsAdmin {
		_, err := s.repo.GetMember(ctx, communityID, actor.ID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, ErrForbidden
			}
			return nil, MapRepoError(err, "checking membership")
		}
	}

	members, err := s.repo.ListMembers(ctx, communityID)
	if err != nil {
		log.Printf("CommunityService: Error listing members for community %d: %v", communityID, err)
		return nil, fmt.Errorf("internal error listing members: %w", err)
	}
	return members, nil
}

// SetMemberRole changes a member's role. Community-admin only; the creator's
// admin role is fixed.
func (s *communityService) SetMemberRole(ctx context.Context, actor models.Actor, communityID, userID int64, role models.CommunityRole) error {
	community, err := s.repo.GetByID(ctx, communityID)
	if err != nil {
		return MapRepoError(err, "fetching community for role change")
	}
	if community.CreatedBy == userID {
		return fmt.Errorf("%w: cannot change the creator's role", ErrForbidden)
	}
	if err := s.requireCommunityAdmin(ctx, actor, communityID); err != nil {
		return err
	}

	if err := s.repo.SetMemberRole(ctx, communityID, userID, role); err != nil {
		return MapRepoError(err, "setting member role")
	}
	return nil
}

func (s *communityService) requireCommunityAdmin(ctx context.Context, actor models.Actor, communityID int64) error {
	return s.requireCommunityRole(ctx, actor, communityID, models.CommunityRoleAdmin)
}

// requireCommunityRole checks the actor holds at least the given role in the
// community. Site admins always pass.
func (s *communityService) requireCommunityRole(ctx context.Context, actor models.Actor, communityID int64, min models.CommunityRole) error {
	if actor.IsAdmin {
		return nil
	}
	member, err := s.repo.GetMember(ctx, communityID, actor.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrForbidden
		}
		return MapRepoError(err, "checking membership")
	}

	switch min {
	case models.CommunityRoleAdmin:
		if member.Role != models.CommunityRoleAdmin {
			return ErrForbidden
		}
	case models.CommunityRoleModerator:
		if member.Role != models.CommunityRoleAdmin && member.Role != models.CommunityRoleModerator {
			return ErrForbidden
		}
	}
	return nil
}
