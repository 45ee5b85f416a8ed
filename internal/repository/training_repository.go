package repository

import (
	"context"
	"sync"

	"formationpro/internal/model"

	"github.com/google/uuid"
)

type TrainingRepository interface {
	Insert(ctx context.Context, training *model.Training) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Training, error)
	List(ctx context.Context) ([]model.Training, error)
	Update(ctx context.Context, training *model.Training) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type memoryTrainingRepository struct {
	mu        sync.RWMutex
	trainings []model.Training
}

func NewMemoryTrainingRepository() TrainingRepository {
	return &memoryTrainingRepository{}
}

func cloneTraining(t *model.Training) *model.Training {
	clone := *t
	clone.Objectives = append([]string(nil), t.Objectives...)
	clone.RequiredSpecialties = append([]uuid.UUID(nil), t.RequiredSpecialties...)
	clone.Files = append([]model.TrainingFile(nil), t.Files...)
	return &clone
}

func (r *memoryTrainingRepository) Insert(ctx context.Context, training *model.Training) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.trainings = append(r.trainings, *cloneTraining(training))
	return nil
}

func (r *memoryTrainingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Training, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.trainings {
		if r.trainings[i].ID == id {
			return cloneTraining(&r.trainings[i]), nil
		}
	}
	return nil, nil
}

func (r *memoryTrainingRepository) List(ctx context.Context) ([]model.Training, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Training, 0, len(r.trainings))
	for i := range r.trainings {
		result = append(result, *cloneTraining(&r.trainings[i]))
	}
	return result, nil
}

func (r *memoryTrainingRepository) Update(ctx context.Context, training *model.Training) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.trainings {
		if r.trainings[i].ID == training.ID {
			r.trainings[i] = *cloneTraining(training)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryTrainingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.trainings {
		if r.trainings[i].ID == id {
			r.trainings = append(r.trainings[:i], r.trainings[i+1:]...)
			return nil
		}
	}
	return nil
}
