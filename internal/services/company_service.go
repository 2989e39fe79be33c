package services

import (
	"context"
	"fmt"
	"log"

	"talenthub/internal/models"
	"talenthub/internal/storage"
	"talenthub/internal/transport/dto"
)

type companyService struct {
	repo storage.CompanyRepository
}

// NewCompanyService creates a new instance of CompanyService.
func NewCompanyService(repo storage.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

// Create is restricted to recruiters and admins; company pages anchor job
// postings.
func (s *companyService) Create(ctx context.Context, actor models.Actor, req *dto.CreateCompanyRequest) (*models.Company, error) {
	if !actor.IsRecruiter && !actor.IsAdmin {
		return nil, ErrForbidden
	}

	req.OwnerID = actor.ID
	company, err := s.repo.Create(ctx, req)
	if err != nil {
		log.Printf("CompanyService: Error creating company: %v", err)
		return nil, MapRepoError(err, "creating company")
	}
	return company, nil
}

func (s *companyService) Get(ctx context.Context, id int64) (*models.Company, error) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, "getting company")
	}
	return company, nil
}

func (s *companyService) List(ctx context.Context, limit, offset int) ([]models.Company, error) {
	companies, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		log.Printf("CompanyService: Error listing companies: %v", err)
		return nil, fmt.Errorf("internal error listing companies: %w", err)
	}
	return companies, nil
}

func (s *companyService) Update(ctx context.Context, actor models.Actor, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	existing, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, MapRepoError(err, "fetching company for update")
	}
	if !actor.CanMutate(existing.OwnerID) {
		return nil, ErrForbidden
	}

	company, err := s.repo.Update(ctx, req)
	if err != nil {
		return nil, MapRepoError(err, "updating company")
	}
	return company, nil
}

func (s *companyService) Delete(ctx context.Context, actor models.Actor, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MapRepoError(err, "fetching company for delete")
	}
	if !actor.CanMutate(existing.OwnerID) {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return MapRepoError(err, "deleting company")
	}
	return nil
}
