// internal/storage/postgres/users.go
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

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, password_hash, email, name, title, bio, mobile_number,
	profile_image_url, digital_cv_url, is_recruiter, is_admin, company, industry,
	two_factor_enabled, profile_visibility, digital_cv_visibility, skills,
	experiences, education, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Email,
		&u.Name,
		&u.Title,
		&u.Bio,
		&u.MobileNumber,
		&u.ProfileImageURL,
		&u.DigitalCvURL,
		&u.IsRecruiter,
		&u.IsAdmin,
		&u.Company,
		&u.Industry,
		&u.TwoFactorEnabled,
		&u.Privacy.ProfileVisibility,
		&u.Privacy.CvVisibility,
		&u.Skills,
		&u.Experiences,
		&u.Education,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create saves a new user. Only client-suppliable registration fields are
// written; everything else takes its column default.
func (r *UserRepo) Create(ctx context.Context, req *dto.RegisterRequest, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (username, password_hash, email, name, is_recruiter, company, industry)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	row := r.db.QueryRow(ctx, query,
		req.Username,
		passwordHash,
		req.Email,
		req.Name,
		req.IsRecruiter,
		req.Company,
		req.Industry,
	)

	user, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err, "users_username_key") {
			return nil, storage.ErrDuplicateUsername
		}
		if isUniqueViolation(err, "users_email_key") {
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating user: %v\n", err)
		return nil, fmt.Errorf("failed to create user: %w", mapWriteError(err))
	}

	log.Printf("User created successfully with ID: %d", user.ID)
	return user, nil
}

// GetByID retrieves a specific user by id.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetByUsername retrieves a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by username %s: %v\n", username, err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by email: %v\n", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies the supplied profile fields. Fields left nil in the
// request are not touched.
func (r *UserRepo) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{req.ID}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.Bio != nil {
		addSet("bio", *req.Bio)
	}
	if req.MobileNumber != nil {
		addSet("mobile_number", *req.MobileNumber)
	}
	if req.ProfileImageURL != nil {
		addSet("profile_image_url", *req.ProfileImageURL)
	}
	if req.DigitalCvURL != nil {
		addSet("digital_cv_url", *req.DigitalCvURL)
	}
	if req.Company != nil {
		addSet("company", *req.Company)
	}
	if req.Industry != nil {
		addSet("industry", *req.Industry)
	}
	if req.Skills != nil {
		addSet("skills", *req.Skills)
	}
	if req.Experiences != nil {
		addSet("experiences", *req.Experiences)
	}
	if req.Education != nil {
		addSet("education", *req.Education)
	}
	if req.Privacy != nil {
		addSet("profile_visibility", req.Privacy.ProfileVisibility)
		addSet("digital_cv_visibility", req.Privacy.CvVisibility)
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating user %d: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update user: %w", mapWriteError(err))
	}
	return user, nil
}

// UpdatePassword replaces the stored password hash.
func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, passwordHash)
	if err != nil {
		log.Printf("Error updating password for user %d: %v\n", id, err)
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// SetTwoFactor toggles the two-factor flag.
func (r *UserRepo) SetTwoFactor(ctx context.Context, id int64, enabled bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET two_factor_enabled = $2, updated_at = NOW() WHERE id = $1`, id, enabled)
	if err != nil {
		log.Printf("Error setting two-factor for user %d: %v\n", id, err)
		return fmt.Errorf("failed to set two-factor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// SetRoles updates the role flags supplied; nil flags are untouched.
func (r *UserRepo) SetRoles(ctx context.Context, id int64, isRecruiter, isAdmin *bool) (*models.User, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}
	if isRecruiter != nil {
		args = append(args, *isRecruiter)
		sets = append(sets, fmt.Sprintf("is_recruiter = $%d", len(args)))
	}
	if isAdmin != nil {
		args = append(args, *isAdmin)
		sets = append(sets, fmt.Sprintf("is_admin = $%d", len(args)))
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error setting roles for user %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to set roles: %w", err)
	}
	return user, nil
}

// Delete removes a user. All owned rows cascade via foreign keys.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting user %d: %v\n", id, err)
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	log.Printf("User deleted successfully with ID: %d", id)
	return nil
}
