package repository

import (
	"context"
	"sync"

	"formationpro/internal/model"

	"github.com/google/uuid"
)

type CompanyRepository interface {
	Insert(ctx context.Context, company *model.Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	List(ctx context.Context) ([]model.Company, error)
	Update(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type memoryCompanyRepository struct {
	mu        sync.RWMutex
	companies []model.Company
}

func NewMemoryCompanyRepository() CompanyRepository {
	return &memoryCompanyRepository{}
}

func (r *memoryCompanyRepository) Insert(ctx context.Context, company *model.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.companies = append(r.companies, *company)
	return nil
}

func (r *memoryCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.companies {
		if r.companies[i].ID == id {
			company := r.companies[i]
			return &company, nil
		}
	}
	return nil, nil
}

func (r *memoryCompanyRepository) List(ctx context.Context) ([]model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Company, len(r.companies))
	copy(result, r.companies)
	return result, nil
}

func (r *memoryCompanyRepository) Update(ctx context.Context, company *model.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.companies {
		if r.companies[i].ID == company.ID {
			r.companies[i] = *company
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.companies {
		if r.companies[i].ID == id {
			r.companies = append(r.companies[:i], r.companies[i+1:]...)
			return nil
		}
	}
	return nil
}
