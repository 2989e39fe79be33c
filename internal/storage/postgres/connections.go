// internal/storage/postgres/connections.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"talenthub/internal/models"
	"talenthub/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectionRepo implements storage.ConnectionRepository using PostgreSQL.
type ConnectionRepo struct {
	db Querier
}

// NewConnectionRepo creates a new ConnectionRepo.
func NewConnectionRepo(db *pgxpool.Pool) *ConnectionRepo {
	return &ConnectionRepo{db: db}
}

// Compile-time check to ensure ConnectionRepo implements ConnectionRepository
var _ storage.ConnectionRepository = (*ConnectionRepo)(nil)

const connectionColumns = `id, requester_id, receiver_id, status, created_at`

func scanConnection(row pgx.Row) (*models.Connection, error) {
	var c models.Connection
	err := row.Scan(&c.ID, &c.RequesterID, &c.ReceiverID, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create saves a new pending connection request. The pair-uniqueness index
// surfaces a duplicate logical relationship (either direction) as ErrConflict.
func (r *ConnectionRepo) Create(ctx context.Context, requesterID, receiverID int64) (*models.Connection, error) {
	query := `
		INSERT INTO connections (requester_id, receiver_id)
		VALUES ($1, $2)
		RETURNING ` + connectionColumns

	conn, err := scanConnection(r.db.QueryRow(ctx, query, requesterID, receiverID))
	if err != nil {
		log.Printf("Error creating connection %d -> %d: %v\n", requesterID, receiverID, err)
		return nil, fmt.Errorf("failed to create connection: %w", mapWriteError(err))
	}
	return conn, nil
}

// GetByID retrieves a specific connection.
func (r *ConnectionRepo) GetByID(ctx context.Context, id int64) (*models.Connection, error) {
	conn, err := scanConnection(r.db.QueryRow(ctx,
		`SELECT `+connectionColumns+` FROM connections WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	return conn, nil
}

// GetBetween returns the non-rejected connection between two users in either
// direction.
func (r *ConnectionRepo) GetBetween(ctx context.Context, userA, userB int64) (*models.Connection, error) {
	query := `
		SELECT ` + connectionColumns + ` FROM connections
		WHERE status <> 'rejected'
		  AND ((requester_id = $1 AND receiver_id = $2) OR (requester_id = $2 AND receiver_id = $1))`

	conn, err := scanConnection(r.db.QueryRow(ctx, query, userA, userB))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get connection between users: %w", err)
	}
	return conn, nil
}

// UpdateStatus applies a transition guarded on the expected current status.
func (r *ConnectionRepo) UpdateStatus(ctx context.Context, id int64, from, to models.ConnectionStatus) (*models.Connection, error) {
	query := `
		UPDATE connections SET status = $3
		WHERE id = $1 AND status = $2
		RETURNING ` + connectionColumns

	conn, err := scanConnection(r.db.QueryRow(ctx, query, id, from, to))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating connection %d status %s -> %s: %v\n", id, from, to, err)
		return nil, fmt.Errorf("failed to update connection status: %w", err)
	}
	return conn, nil
}

// Delete removes a connection (withdraw or disconnect).
func (r *ConnectionRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM connections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *ConnectionRepo) queryWithUser(ctx context.Context, query string, userID int64) ([]models.ConnectionWithUser, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query connections: %w", err)
	}
	defer rows.Close()

	conns := []models.ConnectionWithUser{}
	for rows.Next() {
		var c models.ConnectionWithUser
		err := rows.Scan(&c.ID, &c.RequesterID, &c.ReceiverID, &c.Status, &c.CreatedAt,
			&c.UserID, &c.Username, &c.Name, &c.Title)
		if err != nil {
			return nil, fmt.Errorf("failed to scan connection row: %w", err)
		}
		conns = append(conns, c)
	}
	return conns, rows.Err()
}

// ListAccepted returns a user's accepted connections with counterpart identities.
func (r *ConnectionRepo) ListAccepted(ctx context.Context, userID int64) ([]models.ConnectionWithUser, error) {
	query := `
		SELECT c.id, c.requester_id, c.receiver_id, c.status, c.created_at,
		       u.id, u.username, u.name, u.title
		FROM connections c
		JOIN users u ON u.id = CASE WHEN c.requester_id = $1 THEN c.receiver_id ELSE c.requester_id END
		WHERE c.status = 'accepted' AND (c.requester_id = $1 OR c.receiver_id = $1)
		ORDER BY c.created_at DESC`
	return r.queryWithUser(ctx, query, userID)
}

// ListPendingReceived returns pending requests addressed to the user.
func (r *ConnectionRepo) ListPendingReceived(ctx context.Context, userID int64) ([]models.ConnectionWithUser, error) {
	query := `
		SELECT c.id, c.requester_id, c.receiver_id, c.status, c.created_at,
		       u.id, u.username, u.name, u.title
		FROM connections c
		JOIN users u ON u.id = c.requester_id
		WHERE c.status = 'pending' AND c.receiver_id = $1
		ORDER BY c.created_at DESC`
	return r.queryWithUser(ctx, query, userID)
}

// AreConnected reports whether two users share an accepted connection.
func (r *ConnectionRepo) AreConnected(ctx context.Context, userA, userB int64) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM connections
			WHERE status = 'accepted'
			  AND ((requester_id = $1 AND receiver_id = $2) OR (requester_id = $2 AND receiver_id = $1))
		)`
	if err := r.db.QueryRow(ctx, query, userA, userB).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check connection: %w", err)
	}
	return exists, nil
}
