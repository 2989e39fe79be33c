// internal/storage/postgres/communities.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"talenthub/internal/models"
	"talenthub/internal/storage"
	"talenthub/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CommunityRepo implements storage.CommunityRepository using PostgreSQL.
// Membership writes and the member_count counter always change inside one
// transaction here; no other code path touches either table.
type CommunityRepo struct {
	db   Querier
	pool *pgxpool.Pool
}

// NewCommunityRepo creates a new CommunityRepo.
func NewCommunityRepo(db *pgxpool.Pool) *CommunityRepo {
	return &CommunityRepo{db: db, pool: db}
}

// Compile-time check to ensure CommunityRepo implements CommunityRepository
var _ storage.CommunityRepository = (*CommunityRepo)(nil)

const communityColumns = `id, name, description, created_by, member_count, is_private, invite_only, created_at`

func scanCommunity(row pgx.Row) (*models.Community, error) {
	var c models.Community
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedBy, &c.MemberCount,
		&c.IsPrivate, &c.InviteOnly, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create saves a new community and enrolls the creator as its admin member in
// the same transaction, so member_count starts consistent at 1.
func (r *CommunityRepo) Create(ctx context.Context, req *dto.CreateCommunityRequest) (*models.Community, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO communities (name, description, created_by, member_count, is_private, invite_only)
		VALUES ($1, $2, $3, 1, $4, $5)
		RETURNING ` + communityColumns

	community, err := scanCommunity(tx.QueryRow(ctx, query,
		req.Name, req.Description, req.CreatedBy, req.IsPrivate, req.InviteOnly))
	if err != nil {
		log.Printf("Error creating community: %v\n", err)
		return nil, fmt.Errorf("failed to create community: %w", mapWriteError(err))
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO community_members (user_id, community_id, role) VALUES ($1, $2, 'admin')`,
		req.CreatedBy, community.ID); err != nil {
		return nil, fmt.Errorf("failed to enroll creator: %w", mapWriteError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit community creation: %w", err)
	}

	log.Printf("Community created successfully with ID: %d", community.ID)
	return community, nil
}

// GetByID retrieves a specific community.
func (r *CommunityRepo) GetByID(ctx context.Context, id int64) (*models.Community, error) {
	community, err := scanCommunity(r.db.QueryRow(ctx,
		`SELECT `+communityColumns+` FROM communities WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning community by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get community: %w", err)
	}
	return community, nil
}

// Update applies the supplied community fields.
func (r *CommunityRepo) Update(ctx context.Context, req *dto.UpdateCommunityRequest) (*models.Community, error) {
	sets := []string{}
	args := []any{req.ID}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.IsPrivate != nil {
		addSet("is_private", *req.IsPrivate)
	}
	if req.InviteOnly != nil {
		addSet("invite_only", *req.InviteOnly)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	query := fmt.Sprintf(`UPDATE communities SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), communityColumns)

	community, err := scanCommunity(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating community %d: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update community: %w", mapWriteError(err))
	}
	return community, nil
}

// Delete removes a community. Members and posts cascade.
func (r *CommunityRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM communities WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting community %d: %v\n", id, err)
		return fmt.Errorf("failed to delete community: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// List returns communities, newest first.
func (r *CommunityRepo) List(ctx context.Context, limit, offset int) ([]models.Community, error) {
	query := `SELECT ` + communityColumns + ` FROM communities ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query communities: %w", err)
	}
	defer rows.Close()

	communities := []models.Community{}
	for rows.Next() {
		var c models.Community
		err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedBy, &c.MemberCount,
			&c.IsPrivate, &c.InviteOnly, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan community row: %w", err)
		}
		communities = append(communities, c)
	}
	return communities, rows.Err()
}

// AddMember inserts the membership row and increments member_count in one
// transaction. A duplicate membership aborts the transaction before the
// counter moves.
func (r *CommunityRepo) AddMember(ctx context.Context, communityID, userID int64, role models.CommunityRole, invited bool) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO community_members (user_id, community_id, role, is_invited) VALUES ($1, $2, $3, $4)`,
		userID, communityID, role, invited); err != nil {
		return fmt.Errorf("failed to add member: %w", mapWriteError(err))
	}

	tag, err := tx.Exec(ctx,
		`UPDATE communities SET member_count = member_count + 1 WHERE id = $1`, communityID)
	if err != nil {
		return fmt.Errorf("failed to increment member count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit membership: %w", err)
	}
	return nil
}

// RemoveMember deletes the membership row and decrements member_count in one
// transaction. A missing membership aborts before the counter moves.
func (r *CommunityRepo) RemoveMember(ctx context.Context, communityID, userID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`DELETE FROM community_members WHERE user_id = $1 AND community_id = $2`,
		userID, communityID)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	if _, err := tx.Exec(ctx,
		`UPDATE communities SET member_count = member_count - 1 WHERE id = $1`, communityID); err != nil {
		return fmt.Errorf("failed to decrement member count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit membership removal: %w", err)
	}
	return nil
}

// GetMember retrieves a membership row.
func (r *CommunityRepo) GetMember(ctx context.Context, communityID, userID int64) (*models.CommunityMember, error) {
	var m models.CommunityMember
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, community_id, role, is_invited, joined_at
		 FROM community_members WHERE community_id = $1 AND user_id = $2`,
		communityID, userID).
		Scan(&m.ID, &m.UserID, &m.CommunityID, &m.Role, &m.IsInvited, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return &m, nil
}

// ListMembers returns a community's members with their identities.
func (r *CommunityRepo) ListMembers(ctx context.Context, communityID int64) ([]models.CommunityMemberWithUser, error) {
	query := `
		SELECT m.id, m.user_id, m.community_id, m.role, m.is_invited, m.joined_at,
		       u.username, u.name
		FROM community_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.community_id = $1
		ORDER BY m.joined_at ASC`

	rows, err := r.db.Query(ctx, query, communityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	members := []models.CommunityMemberWithUser{}
	for rows.Next() {
		var m models.CommunityMemberWithUser
		err := rows.Scan(&m.ID, &m.UserID, &m.CommunityID, &m.Role, &m.IsInvited, &m.JoinedAt,
			&m.Username, &m.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// SetMemberRole changes a member's role.
func (r *CommunityRepo) SetMemberRole(ctx context.Context, communityID, userID int64, role models.CommunityRole) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE community_members SET role = $3 WHERE community_id = $1 AND user_id = $2`,
		communityID, userID, role)
	if err != nil {
		return fmt.Errorf("failed to set member role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
