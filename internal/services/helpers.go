package services

import (
	"errors"
	"fmt"
	"log"

	"talenthub/internal/models"
	"talenthub/internal/storage"
)

// isValidApplicationStatusTransition defines the allowed pipeline moves.
// hired and rejected are terminal.
func isValidApplicationStatusTransition(from, to models.ApplicationStatus) bool {
	switch from {
	case models.ApplicationStatusApplied:
		return to == models.ApplicationStatusShortlisted || to == models.ApplicationStatusRejected
	case models.ApplicationStatusShortlisted:
		return to == models.ApplicationStatusInterview || to == models.ApplicationStatusRejected
	case models.ApplicationStatusInterview:
		return to == models.ApplicationStatusHired || to == models.ApplicationStatusRejected
	default:
		return false
	}
}

// isValidResetTransition checks a password reset status move. Only pending
// requests can be resolved; approved and rejected are terminal.
func isValidResetTransition(from, to models.ResetStatus) bool {
	if from != models.ResetStatusPending {
		return false
	}
	return to == models.ResetStatusApproved || to == models.ResetStatusRejected
}

// isValidConnectionTransition checks a connection status move. Only pending
// requests can be answered.
func isValidConnectionTransition(from, to models.ConnectionStatus) bool {
	if from != models.ConnectionStatusPending {
		return false
	}
	return to == models.ConnectionStatusAccepted || to == models.ConnectionStatusRejected
}

// MapRepoError maps storage errors to service errors
func MapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateUsername) {
		return fmt.Errorf("%w: %s (duplicate username)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}
