package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"talenthub/internal/models"
	"talenthub/internal/storage"
)

type connectionService struct {
	repo storage.ConnectionRepository
}

// NewConnectionService creates a new instance of ConnectionService.
func NewConnectionService(repo storage.ConnectionRepository) ConnectionService {
	return &connectionService{repo: repo}
}

// Request sends a connection request. One non-rejected connection exists per
// user pair regardless of direction; the pair index backs this up if two
// requests race past the existence check.
func (s *connectionService) Request(ctx context.Context, actor models.Actor, receiverID int64) (*models.Connection, error) {
	if receiverID == actor.ID {
		return nil, fmt.Errorf("%w: cannot connect to yourself", ErrValidation)
	}

	existing, err := s.repo.GetBetween(ctx, actor.ID, receiverID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, MapRepoError(err, "checking existing connection")
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: connection already %s", ErrConflict, existing.Status)
	}

	conn, err := s.repo.Create(ctx, actor.ID, receiverID)
	if err != nil {
		return nil, MapRepoError(err, "creating connection request")
	}
	return conn, nil
}

// Respond accepts or rejects a pending request. Only the receiver may answer,
// and only while the request is pending.
func (s *connectionService) Respond(ctx context.Context, actor models.Actor, connectionID int64, accept bool) (*models.Connection, error) {
	conn, err := s.repo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, MapRepoError(err, "fetching connection")
	}
	if conn.ReceiverID != actor.ID {
		return nil, ErrForbidden
	}

	to := models.ConnectionStatusAccepted
	if !accept {
		to = models.ConnectionStatusRejected
	}
	if !isValidConnectionTransition(conn.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, conn.Status, to)
	}

	updated, err := s.repo.UpdateStatus(ctx, connectionID, conn.Status, to)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: connection status changed concurrently", ErrConflict)
		}
		return nil, MapRepoError(err, "updating connection status")
	}
	return updated, nil
}

// Disconnect deletes the connection. Either party may do it.
func (s *connectionService) Disconnect(ctx context.Context, actor models.Actor, connectionID int64) error {
	conn, err := s.repo.GetByID(ctx, connectionID)
	if err != nil {
		return MapRepoError(err, "fetching connection for delete")
	}
	if !conn.Involves(actor.ID) && !actor.IsAdmin {
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, connectionID); err != nil {
		return MapRepoError(err, "deleting connection")
	}
	return nil
}

func (s *connectionService) ListConnections(ctx context.Context, userID int64) ([]models.ConnectionWithUser, error) {
	conns, err := s.repo.ListAccepted(ctx, userID)
	if err != nil {
		log.Printf("ConnectionService: Error listing connections for user %d: %v", userID, err)
		return nil, fmt.Errorf("internal error listing connections: %w", err)
	}
	return conns, nil
}

func (s *connectionService) ListPendingReceived(ctx context.Context, actor models.Actor) ([]models.ConnectionWithUser, error) {
	conns, err := s.repo.ListPendingReceived(ctx, actor.ID)
	if err != nil {
		log.Printf("ConnectionService: Error listing pending requests for user %d: %v", actor.ID, err)
		return nil, fmt.Errorf("internal error listing pending requests: %w", err)
	}
	return conns, nil
}
