package services

import (
	"context"
	"fmt"
	"log"

	"talenthub/internal/models"
	"talenthub/internal/storage"
	"talenthub/internal/transport/dto"
)

type adminService struct {
	adminRepo storage.AdminRepository
	userRepo  storage.UserRepository
}

// NewAdminService creates a new instance of AdminService.
func NewAdminService(adminRepo storage.AdminRepository, userRepo storage.UserRepository) AdminService {
	return &adminService{adminRepo: adminRepo, userRepo: userRepo}
}

func (s *adminService) ListUsers(ctx context.Context, actor models.Actor, req *dto.ListRequest) ([]models.AdminUserView, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}
	views, err := s.adminRepo.ListUsers(ctx, req)
	if err != nil {
		log.Printf("AdminService: Error listing users: %v", err)
		return nil, fmt.Errorf("internal error listing users: %w", err)
	}
	return views, nil
}

func (s *adminService) ListJobs(ctx context.Context, actor models.Actor, req *dto.ListRequest) ([]models.AdminJobView, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}
	views, err := s.adminRepo.ListJobs(ctx, req)
	if err != nil {
		log.Printf("AdminService: Error listing jobs: %v", err)
		return nil, fmt.Errorf("internal error listing jobs: %w", err)
	}
	return views, nil
}

func (s *adminService) ListPosts(ctx context.Context, actor models.Actor, req *dto.ListRequest) ([]models.AdminPostView, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}
	views, err := s.adminRepo.ListPosts(ctx, req)
	if err != nil {
		log.Printf("AdminService: Error listing posts: %v", err)
		return nil, fmt.Errorf("internal error listing posts: %w", err)
	}
	return views, nil
}

func (s *adminService) ListCommunities(ctx context.Context, actor models.Actor, req *dto.ListRequest) ([]models.AdminCommunityView, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}
	views, err := s.adminRepo.ListCommunities(ctx, req)
	if err != nil {
		log.Printf("AdminService: Error listing communities: %v", err)
		return nil, fmt.Errorf("internal error listing communities: %w", err)
	}
	return views, nil
}

// SetRoles flips the recruiter and admin flags on a user. An admin cannot
// strip their own admin flag; someone else has to.
func (s *adminService) SetRoles(ctx context.Context, actor models.Actor, userID int64, req *dto.SetRoleRequest) (*models.User, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}
	if userID == actor.ID && req.IsAdmin != nil && !*req.IsAdmin {
		return nil, fmt.Errorf("%w: cannot revoke own admin role", ErrConflict)
	}

	user, err := s.userRepo.SetRoles(ctx, userID, req.IsRecruiter, req.IsAdmin)
	if err != nil {
		return nil, MapRepoError(err, "setting roles")
	}
	return user, nil
}
