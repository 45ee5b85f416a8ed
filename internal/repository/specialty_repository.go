package repository

import (
	"context"
	"sync"

	"formationpro/internal/model"

	"github.com/google/uuid"
)

type SpecialtyRepository interface {
	InsertGroup(ctx context.Context, group *model.SpecialtyGroup) error
	FindGroupByID(ctx context.Context, id uuid.UUID) (*model.SpecialtyGroup, error)
	ListGroups(ctx context.Context) ([]model.SpecialtyGroup, error)
	UpdateGroup(ctx context.Context, group *model.SpecialtyGroup) error
	DeleteGroup(ctx context.Context, id uuid.UUID) error

	InsertSpecialty(ctx context.Context, specialty *model.Specialty) error
	FindSpecialtyByID(ctx context.Context, id uuid.UUID) (*model.Specialty, error)
	ListSpecialties(ctx context.Context) ([]model.Specialty, error)
	UpdateSpecialty(ctx context.Context, specialty *model.Specialty) error
	DeleteSpecialty(ctx context.Context, id uuid.UUID) error
}

type memorySpecialtyRepository struct {
	mu          sync.RWMutex
	groups      []model.SpecialtyGroup
	specialties []model.Specialty
}

func NewMemorySpecialtyRepository() SpecialtyRepository {
	return &memorySpecialtyRepository{}
}

func (r *memorySpecialtyRepository) InsertGroup(ctx context.Context, group *model.SpecialtyGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.groups = append(r.groups, *group)
	return nil
}

func (r *memorySpecialtyRepository) FindGroupByID(ctx context.Context, id uuid.UUID) (*model.SpecialtyGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.groups {
		if r.groups[i].ID == id {
			group := r.groups[i]
			return &group, nil
		}
	}
	return nil, nil
}

func (r *memorySpecialtyRepository) ListGroups(ctx context.Context) ([]model.SpecialtyGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.SpecialtyGroup, len(r.groups))
	copy(result, r.groups)
	return result, nil
}

func (r *memorySpecialtyRepository) UpdateGroup(ctx context.Context, group *model.SpecialtyGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.groups {
		if r.groups[i].ID == group.ID {
			r.groups[i] = *group
			return nil
		}
	}
	return ErrNotFound
}

// DeleteGroup removes a group together with the specialties that belong to it.
func (r *memorySpecialtyRepository) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.groups {
		if r.groups[i].ID == id {
			r.groups = append(r.groups[:i], r.groups[i+1:]...)
			kept := r.specialties[:0]
			for _, specialty := range r.specialties {
				if specialty.GroupID != id {
					kept = append(kept, specialty)
				}
			}
			r.specialties = kept
			return nil
		}
	}
	return nil
}

func (r *memorySpecialtyRepository) InsertSpecialty(ctx context.Context, specialty *model.Specialty) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.specialties = append(r.specialties, *specialty)
	return nil
}

func (r *memorySpecialtyRepository) FindSpecialtyByID(ctx context.Context, id uuid.UUID) (*model.Specialty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.specialties {
		if r.specialties[i].ID == id {
			specialty := r.specialties[i]
			return &specialty, nil
		}
	}
	return nil, nil
}

func (r *memorySpecialtyRepository) ListSpecialties(ctx context.Context) ([]model.Specialty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Specialty, len(r.specialties))
	copy(result, r.specialties)
	return result, nil
}

func (r *memorySpecialtyRepository) UpdateSpecialty(ctx context.Context, specialty *model.Specialty) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.specialties {
		if r.specialties[i].ID == specialty.ID {
			r.specialties[i] = *specialty
			return nil
		}
	}
	return ErrNotFound
}

func (r *memorySpecialtyRepository) DeleteSpecialty(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.specialties {
		if r.specialties[i].ID == id {
			r.specialties = append(r.specialties[:i], r.specialties[i+1:]...)
			return nil
		}
	}
	return nil
}
