package repository

import (
	"context"
	"sync"

	"formationpro/internal/model"

	"github.com/google/uuid"
)

type RegistrationRepository interface {
	Insert(ctx context.Context, registration *model.Registration) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Registration, error)
	FindBySessionAndParticipant(ctx context.Context, sessionID, participantID uuid.UUID) (*model.Registration, error)
	List(ctx context.Context) ([]model.Registration, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Registration, error)
	Update(ctx context.Context, registration *model.Registration) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type memoryRegistrationRepository struct {
	mu            sync.RWMutex
	registrations []model.Registration
}

func NewMemoryRegistrationRepository() RegistrationRepository {
	return &memoryRegistrationRepository{}
}

func (r *memoryRegistrationRepository) Insert(ctx context.Context, registration *model.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.registrations = append(r.registrations, *registration)
	return nil
}

func (r *memoryRegistrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.registrations {
		if r.registrations[i].ID == id {
			registration := r.registrations[i]
			return &registration, nil
		}
	}
	return nil, nil
}

func (r *memoryRegistrationRepository) FindBySessionAndParticipant(ctx context.Context, sessionID, participantID uuid.UUID) (*model.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.registrations {
		if r.registrations[i].SessionID == sessionID && r.registrations[i].ParticipantID == participantID {
			registration := r.registrations[i]
			return &registration, nil
		}
	}
	return nil, nil
}

func (r *memoryRegistrationRepository) List(ctx context.Context) ([]model.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Registration, len(r.registrations))
	copy(result, r.registrations)
	return result, nil
}

func (r *memoryRegistrationRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []model.Registration
	for i := range r.registrations {
		if r.registrations[i].SessionID == sessionID {
			result = append(result, r.registrations[i])
		}
	}
	return result, nil
}

func (r *memoryRegistrationRepository) Update(ctx context.Context, registration *model.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.registrations {
		if r.registrations[i].ID == registration.ID {
			r.registrations[i] = *registration
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryRegistrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.registrations {
		if r.registrations[i].ID == id {
			r.registrations = append(r.registrations[:i], r.registrations[i+1:]...)
			return nil
		}
	}
	return nil
}
