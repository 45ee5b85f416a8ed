package repository

import (
	"context"
	"sync"

	"formationpro/internal/model"

	"github.com/google/uuid"
)

type InvitationRepository interface {
	Insert(ctx context.Context, invitation *model.Invitation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error)
	List(ctx context.Context) ([]model.Invitation, error)
	Update(ctx context.Context, invitation *model.Invitation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type memoryInvitationRepository struct {
	mu          sync.RWMutex
	invitations []model.Invitation
}

func NewMemoryInvitationRepository() InvitationRepository {
	return &memoryInvitationRepository{}
}

func (r *memoryInvitationRepository) Insert(ctx context.Context, invitation *model.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.invitations = append(r.invitations, *invitation)
	return nil
}

func (r *memoryInvitationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.invitations {
		if r.invitations[i].ID == id {
			invitation := r.invitations[i]
			return &invitation, nil
		}
	}
	return nil, nil
}

func (r *memoryInvitationRepository) List(ctx context.Context) ([]model.Invitation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Invitation, len(r.invitations))
	copy(result, r.invitations)
	return result, nil
}

func (r *memoryInvitationRepository) Update(ctx context.Context, invitation *model.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.invitations {
		if r.invitations[i].ID == invitation.ID {
			r.invitations[i] = *invitation
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryInvitationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.invitations {
		if r.invitations[i].ID == id {
			r.invitations = append(r.invitations[:i], r.invitations[i+1:]...)
			return nil
		}
	}
	return nil
}
