package repository

import (
	"context"
	"sync"

	"formationpro/internal/model"

	"github.com/google/uuid"
)

type EvaluationRepository interface {
	Insert(ctx context.Context, evaluation *model.Evaluation) error
	FindBySessionAndParticipant(ctx context.Context, sessionID, participantID uuid.UUID) (*model.Evaluation, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Evaluation, error)
	List(ctx context.Context) ([]model.Evaluation, error)
}

type memoryEvaluationRepository struct {
	mu          sync.RWMutex
	evaluations []model.Evaluation
}

func NewMemoryEvaluationRepository() EvaluationRepository {
	return &memoryEvaluationRepository{}
}

func (r *memoryEvaluationRepository) Insert(ctx context.Context, evaluation *model.Evaluation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evaluations = append(r.evaluations, *evaluation)
	return nil
}

func (r *memoryEvaluationRepository) FindBySessionAndParticipant(ctx context.Context, sessionID, participantID uuid.UUID) (*model.Evaluation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.evaluations {
		if r.evaluations[i].SessionID == sessionID && r.evaluations[i].ParticipantID == participantID {
			evaluation := r.evaluations[i]
			return &evaluation, nil
		}
	}
	return nil, nil
}

func (r *memoryEvaluationRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Evaluation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []model.Evaluation
	for i := range r.evaluations {
		if r.evaluations[i].SessionID == sessionID {
			result = append(result, r.evaluations[i])
		}
	}
	return result, nil
}

func (r *memoryEvaluationRepository) List(ctx context.Context) ([]model.Evaluation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Evaluation, len(r.evaluations))
	copy(result, r.evaluations)
	return result, nil
}
