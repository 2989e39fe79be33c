package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"talenthub/internal/models"
	"talenthub/internal/storage"
	"talenthub/internal/transport/dto"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type passwordResetService struct {
	repo     storage.PasswordResetRepository
	userRepo storage.UserRepository
}

// NewPasswordResetService creates a new instance of PasswordResetService.
func NewPasswordResetService(repo storage.PasswordResetRepository, userRepo storage.UserRepository) PasswordResetService {
	return &passwordResetService{repo: repo, userRepo: userRepo}
}

// RequestReset files a reset request for admin review. The response is the
// same whether or not the email maps to an account, so the endpoint cannot be
// used to probe for registered addresses.
func (s *passwordResetService) RequestReset(ctx context.Context, req *dto.CreatePasswordResetRequest) error {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("PasswordResetService: reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("internal error creating reset request: %w", err)
	}

	if _, err := s.repo.Create(ctx, user.ID, user.Email); err != nil {
		log.Printf("PasswordResetService: Error creating reset request for user %d: %v", user.ID, err)
		return fmt.Errorf("internal error creating reset request: %w", err)
	}
	return nil
}

func (s *passwordResetService) List(ctx context.Context, actor models.Actor, onlyPending bool, limit, offset int) ([]models.PasswordResetRequest, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}
	resets, err := s.repo.List(ctx, onlyPending, limit, offset)
	if err != nil {
		log.Printf("PasswordResetService: Error listing reset requests: %v", err)
		return nil, fmt.Errorf("internal error listing reset requests: %w", err)
	}
	return resets, nil
}

// Process resolves a pending request. Approval generates a temporary password
// whose hash replaces the user's credential in the same transaction; the
// plaintext is stored on the request row for the admin to hand over.
func (s *passwordResetService) Process(ctx context.Context, actor models.Actor, req *dto.ProcessPasswordResetRequest) (*models.PasswordResetRequest, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}

	reset, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, MapRepoError(err, "fetching reset request")
	}

	to := models.ResetStatus(req.Status)
	if !isValidResetTransition(reset.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reset.Status, to)
	}

	var tempPassword, passwordHash *string
	if to == models.ResetStatusApproved {
		plain := generateTemporaryPassword()
		hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("PasswordResetService: Error hashing temporary password: %v", err)
			return nil, fmt.Errorf("internal error processing reset request: %w", err)
		}
		hashStr := string(hash)
		tempPassword = &plain
		passwordHash = &hashStr
	}

	processed, err := s.repo.Process(ctx, req.ID, to, actor.ID, req.AdminNotes, tempPassword, passwordHash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: reset request already processed", ErrConflict)
		}
		return nil, MapRepoError(err, "processing reset request")
	}
	return processed, nil
}

// generateTemporaryPassword derives a one-time credential from a random UUID.
func generateTemporaryPassword() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}
