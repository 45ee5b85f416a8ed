package repository

import (
	"context"
	"sync"

	"formationpro/internal/model"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Insert(ctx context.Context, session *model.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Session, error)
	List(ctx context.Context) ([]model.Session, error)
	Update(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// memorySessionRepository keeps sessions in insertion order. All returned
// sessions are deep copies; mutations only land through Update.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions []model.Session
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{}
}

func cloneSession(s *model.Session) *model.Session {
	clone := *s
	clone.StatusHistory = make([]model.StatusHistoryEntry, len(s.StatusHistory))
	copy(clone.StatusHistory, s.StatusHistory)
	return &clone
}

func (r *memorySessionRepository) Insert(ctx context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions = append(r.sessions, *cloneSession(session))
	return nil
}

func (r *memorySessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.sessions {
		if r.sessions[i].ID == id {
			return cloneSession(&r.sessions[i]), nil
		}
	}
	return nil, nil
}

func (r *memorySessionRepository) List(ctx context.Context) ([]model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Session, 0, len(r.sessions))
	for i := range r.sessions {
		result = append(result, *cloneSession(&r.sessions[i]))
	}
	return result, nil
}

func (r *memorySessionRepository) Update(ctx context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.sessions {
		if r.sessions[i].ID == session.ID {
			r.sessions[i] = *cloneSession(session)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memorySessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.sessions {
		if r.sessions[i].ID == id {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			return nil
		}
	}
	// deleting an absent session is a no-op
	return nil
}
