package repository

import (
	"context"
	"sync"

	"formationpro/internal/model"

	"github.com/google/uuid"
)

type TrainerRepository interface {
	Insert(ctx context.Context, trainer *model.Trainer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Trainer, error)
	List(ctx context.Context) ([]model.Trainer, error)
	Update(ctx context.Context, trainer *model.Trainer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type memoryTrainerRepository struct {
	mu       sync.RWMutex
	trainers []model.Trainer
}

func NewMemoryTrainerRepository() TrainerRepository {
	return &memoryTrainerRepository{}
}

func cloneTrainer(t *model.Trainer) *model.Trainer {
	clone := *t
	clone.Specialties = append([]uuid.UUID(nil), t.Specialties...)
	return &clone
}

func (r *memoryTrainerRepository) Insert(ctx context.Context, trainer *model.Trainer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.trainers = append(r.trainers, *cloneTrainer(trainer))
	return nil
}

func (r *memoryTrainerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Trainer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.trainers {
		if r.trainers[i].ID == id {
			return cloneTrainer(&r.trainers[i]), nil
		}
	}
	return nil, nil
}

func (r *memoryTrainerRepository) List(ctx context.Context) ([]model.Trainer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Trainer, 0, len(r.trainers))
	for i := range r.trainers {
		result = append(result, *cloneTrainer(&r.trainers[i]))
	}
	return result, nil
}

func (r *memoryTrainerRepository) Update(ctx context.Context, trainer *model.Trainer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.trainers {
		if r.trainers[i].ID == trainer.ID {
			r.trainers[i] = *cloneTrainer(trainer)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryTrainerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.trainers {
		if r.trainers[i].ID == id {
			r.trainers = append(r.trainers[:i], r.trainers[i+1:]...)
			return nil
		}
	}
	return nil
}
