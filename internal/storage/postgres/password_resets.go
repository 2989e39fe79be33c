// internal/storage/postgres/password_resets.go
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

// PasswordResetRepo implements storage.PasswordResetRepository using PostgreSQL.
// Processing a request touches both the request row and, on approval, the
// user's password hash, so that path runs inside a single transaction.
type PasswordResetRepo struct {
	db   Querier
	pool *pgxpool.Pool
}

// NewPasswordResetRepo creates a new PasswordResetRepo.
func NewPasswordResetRepo(db *pgxpool.Pool) *PasswordResetRepo {
	return &PasswordResetRepo{db: db, pool: db}
}

// Compile-time check to ensure PasswordResetRepo implements PasswordResetRepository
var _ storage.PasswordResetRepository = (*PasswordResetRepo)(nil)

const resetColumns = `id, user_id, email, status, admin_notes, temporary_password, processed_at, processed_by, created_at`

func scanReset(row pgx.Row) (*models.PasswordResetRequest, error) {
	var pr models.PasswordResetRequest
	err := row.Scan(&pr.ID, &pr.UserID, &pr.Email, &pr.Status, &pr.AdminNotes, &pr.TemporaryPassword,
		&pr.ProcessedAt, &pr.ProcessedBy, &pr.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// Create records a pending reset request for the user.
func (r *PasswordResetRepo) Create(ctx context.Context, userID int64, email string) (*models.PasswordResetRequest, error) {
	query := `
		INSERT INTO password_reset_requests (user_id, email, status)
		VALUES ($1, $2, 'pending')
		RETURNING ` + resetColumns

	reset, err := scanReset(r.db.QueryRow(ctx, query, userID, email))
	if err != nil {
		log.Printf("Error creating password reset request: %v\n", err)
		return nil, fmt.Errorf("failed to create password reset request: %w", mapWriteError(err))
	}
	return reset, nil
}

// GetByID retrieves a specific reset request.
func (r *PasswordResetRepo) GetByID(ctx context.Context, id int64) (*models.PasswordResetRequest, error) {
	reset, err := scanReset(r.db.QueryRow(ctx,
		`SELECT `+resetColumns+` FROM password_reset_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get password reset request: %w", err)
	}
	return reset, nil
}

// List returns reset requests, optionally restricted to pending ones, newest first.
func (r *PasswordResetRepo) List(ctx context.Context, onlyPending bool, limit, offset int) ([]models.PasswordResetRequest, error) {
	query := `SELECT ` + resetColumns + ` FROM password_reset_requests`
	if onlyPending {
		query += ` WHERE status = 'pending'`
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query password reset requests: %w", err)
	}
	defer rows.Close()

	resets := []models.PasswordResetRequest{}
	for rows.Next() {
		var pr models.PasswordResetRequest
		err := rows.Scan(&pr.ID, &pr.UserID, &pr.Email, &pr.Status, &pr.AdminNotes, &pr.TemporaryPassword,
			&pr.ProcessedAt, &pr.ProcessedBy, &pr.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan password reset row: %w", err)
		}
		resets = append(resets, pr)
	}
	return resets, rows.Err()
}

// Process resolves a pending request. The conditional UPDATE guarantees that
// only one concurrent admin wins; a request that is no longer pending yields
// ErrNotFound. When approving, the user's password hash is replaced in the
// same transaction so the request and the credential change commit together.
func (r *PasswordResetRepo) Process(ctx context.Context, id int64, status models.ResetStatus, processedBy int64, notes *string, tempPassword *string, userPasswordHash *string) (*models.PasswordResetRequest, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE password_reset_requests
		SET status = $2, admin_notes = $3, temporary_password = $4, processed_at = NOW(), processed_by = $5
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + resetColumns

	reset, err := scanReset(tx.QueryRow(ctx, query, id, status, notes, tempPassword, processedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error processing password reset request %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to process password reset request: %w", err)
	}

	if status == models.ResetStatusApproved && userPasswordHash != nil {
		tag, err := tx.Exec(ctx,
			`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`,
			reset.UserID, *userPasswordHash)
		if err != nil {
			return nil, fmt.Errorf("failed to update user password: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, storage.ErrNotFound
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return reset, nil
}
