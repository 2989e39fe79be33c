package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"talenthub/internal/auth"
	"talenthub/internal/models"
	"talenthub/internal/storage"
	"talenthub/internal/transport/dto"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	repo           storage.UserRepository
	connectionRepo storage.ConnectionRepository
	appRepo        storage.JobApplicationRepository
	jwtSecret      string
	jwtExpiration  time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, connectionRepo storage.ConnectionRepository, appRepo storage.JobApplicationRepository, jwtSecret string, jwtExpiration time.Duration) UserService {
	return &userService{
		repo:           repo,
		connectionRepo: connectionRepo,
		appRepo:        appRepo,
		jwtSecret:      jwtSecret,
		jwtExpiration:  jwtExpiration,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("UserService: Error hashing password: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}

	user, err := s.repo.Create(ctx, req, string(hash))
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateUsername) || errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Printf("UserService: Error creating user: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		log.Printf("UserService: Error generating token for user %s: %v", user.Username, err)
		return nil, fmt.Errorf("failed to generate login token: %w", err)
	}
	return &dto.AuthResponse{Token: token, User: user}, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for %s: user not found", req.Username)
			return nil, ErrInvalidCredentials
		}
		log.Printf("Error fetching user %s during login: %v", req.Username, err)
		return nil, fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for %s: invalid password", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		log.Printf("Error generating JWT token for user %s: %v", user.Username, err)
		return nil, fmt.Errorf("failed to generate login token: %w", err)
	}
	return &dto.AuthResponse{Token: token, User: user}, nil
}

// GetProfile applies the profile and digital CV visibility rules before
// returning the user. The owner and site admins always get the full profile.
func (s *userService) GetProfile(ctx context.Context, viewer models.Actor, userID int64) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, MapRepoError(err, "getting profile")
	}

	if viewer.ID == userID || viewer.IsAdmin {
		return user, nil
	}

	visible, connected, err := s.profileVisible(ctx, viewer, user)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrForbidden
	}

	cvVisible, err := s.cvVisible(ctx, viewer, user, connected)
	if err != nil {
		return nil, err
	}
	if !cvVisible {
		user.DigitalCvURL = nil
	}
	if !connected {
		user.MobileNumber = nil
	}
	return user, nil
}

func (s *userService) profileVisible(ctx context.Context, viewer models.Actor, user *models.User) (visible, connected bool, err error) {
	connected, err = s.connectionRepo.AreConnected(ctx, viewer.ID, user.ID)
	if err != nil {
		return false, false, fmt.Errorf("internal error checking connection: %w", err)
	}

	switch user.Privacy.ProfileVisibility {
	case models.ProfileVisibilityAll:
		return true, connected, nil
	case models.ProfileVisibilityConnections:
		return connected, connected, nil
	case models.ProfileVisibilityRecruiters:
		return viewer.IsRecruiter || connected, connected, nil
	default:
		return false, connected, nil
	}
}

func (s *userService) cvVisible(ctx context.Context, viewer models.Actor, user *models.User, connected bool) (bool, error) {
	switch user.Privacy.CvVisibility {
	case models.CvVisibilityAll:
		return true, nil
	case models.CvVisibilityConnections:
		return connected, nil
	case models.CvVisibilityRecruiters:
		return viewer.IsRecruiter, nil
	case models.CvVisibilityApplied:
		// Visible only to posters of jobs the profile owner applied to.
		applied, err := s.appRepo.HasApplicationToOwner(ctx, user.ID, viewer.ID)
		if err != nil {
			return false, fmt.Errorf("internal error checking applications: %w", err)
		}
		return applied, nil
	default:
		return false, nil
	}
}

func (s *userService) UpdateProfile(ctx context.Context, actor models.Actor, req *dto.UpdateProfileRequest) (*models.User, error) {
	if !actor.CanMutate(req.ID) {
		return nil, ErrForbidden
	}
	user, err := s.repo.UpdateProfile(ctx, req)
	if err != nil {
		return nil, MapRepoError(err, "updating profile")
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, actor models.Actor, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.GetByID(ctx, actor.ID)
	if err != nil {
		return MapRepoError(err, "changing password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("UserService: Error hashing new password for user %d: %v", actor.ID, err)
		return fmt.Errorf("internal error changing password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, actor.ID, string(hash)); err != nil {
		return MapRepoError(err, "changing password")
	}
	return nil
}

func (s *userService) SetTwoFactor(ctx context.Context, actor models.Actor, enabled bool) error {
	if err := s.repo.SetTwoFactor(ctx, actor.ID, enabled); err != nil {
		return MapRepoError(err, "setting two-factor flag")
	}
	return nil
}

func (s *userService) Delete(ctx context.Context, actor models.Actor, userID int64) error {
	if !actor.CanMutate(userID) {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return MapRepoError(err, "deleting user")
	}
	return nil
}
