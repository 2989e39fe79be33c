// internal/storage/postgres/companies.go
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

// CompanyRepo implements storage.CompanyRepository using PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepo creates a new CompanyRepo.
func NewCompanyRepo(db *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Compile-time check to ensure CompanyRepo implements CompanyRepository
var _ storage.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, owner_id, description, industry, location, size, website, email, logo_url, created_at`

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	err := row.Scan(&c.ID, &c.Name, &c.OwnerID, &c.Description, &c.Industry, &c.Location,
		&c.Size, &c.Website, &c.Email, &c.LogoURL, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create saves a new company page.
func (r *CompanyRepo) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	query := `
		INSERT INTO companies (name, owner_id, description, industry, location, size, website, email, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + companyColumns

	company, err := scanCompany(r.db.QueryRow(ctx, query,
		req.Name, req.OwnerID, req.Description, req.Industry, req.Location,
		req.Size, req.Website, req.Email, req.LogoURL))
	if err != nil {
		log.Printf("Error creating company: %v\n", err)
		return nil, fmt.Errorf("failed to create company: %w", mapWriteError(err))
	}
	return company, nil
}

// GetByID retrieves a specific company.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	company, err := scanCompany(r.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

// List returns company pages, newest first.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		var c models.Company
		err := rows.Scan(&c.ID, &c.Name, &c.OwnerID, &c.Description, &c.Industry, &c.Location,
			&c.Size, &c.Website, &c.Email, &c.LogoURL, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// Update applies the supplied company fields.
func (r *CompanyRepo) Update(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error) {
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
	if req.Industry != nil {
		addSet("industry", *req.Industry)
	}
	if req.Location != nil {
		addSet("location", *req.Location)
	}
	if req.Size != nil {
		addSet("size", *req.Size)
	}
	if req.Website != nil {
		addSet("website", *req.Website)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.LogoURL != nil {
		addSet("logo_url", *req.LogoURL)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), companyColumns)

	company, err := scanCompany(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating company %d: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

// Delete removes a company page.
func (r *CompanyRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
