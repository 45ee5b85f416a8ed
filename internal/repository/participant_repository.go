package repository

import (
	"context"
	"sync"

	"formationpro/internal/model"

	"github.com/google/uuid"
)

type ParticipantRepository interface {
	Insert(ctx context.Context, participant *model.Participant) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Participant, error)
	List(ctx context.Context) ([]model.Participant, error)
	Update(ctx context.Context, participant *model.Participant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type memoryParticipantRepository struct {
	mu           sync.RWMutex
	participants []model.Participant
}

func NewMemoryParticipantRepository() ParticipantRepository {
	return &memoryParticipantRepository{}
}

func (r *memoryParticipantRepository) Insert(ctx context.Context, participant *model.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.participants = append(r.participants, *participant)
	return nil
}

func (r *memoryParticipantRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.participants {
		if r.participants[i].ID == id {
			participant := r.participants[i]
			return &participant, nil
		}
	}
	return nil, nil
}

func (r *memoryParticipantRepository) List(ctx context.Context) ([]model.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Participant, len(r.participants))
	copy(result, r.participants)
	return result, nil
}

func (r *memoryParticipantRepository) Update(ctx context.Context, participant *model.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.participants {
		if r.participants[i].ID == participant.ID {
			r.participants[i] = *participant
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryParticipantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.participants {
		if r.participants[i].ID == id {
			r.participants = append(r.participants[:i], r.participants[i+1:]...)
			return nil
		}
	}
	return nil
}
