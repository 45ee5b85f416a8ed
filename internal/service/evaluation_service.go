package service

import (
	"context"
	"errors"
	"time"

	"formationpro/internal/model"
	"formationpro/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrNotRegistered        = errors.New("participant has no confirmed registration for this session")
	ErrAlreadyEvaluated     = errors.New("participant has already evaluated this session")
	ErrSessionNotStartedYet = errors.New("session has not started yet")
)

type EvaluationInput struct {
	SessionID           uuid.UUID
	ParticipantID       uuid.UUID
	OverallSatisfaction int
	ContentQuality      int
	TrainerExpertise    int
	TrainingMaterials   int
	PracticalExercises  int
	Pace                int
	Organization        int
	Facilities          int
	Expectations        int
	Objectives          model.ObjectiveScores
	Strengths           string
	Improvements        string
	Comments            *string
	RecommendationScore int
}

type EvaluationService interface {
	SubmitEvaluation(ctx context.Context, input EvaluationInput) (*model.Evaluation, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Evaluation, error)
	ListEvaluations(ctx context.Context) ([]model.Evaluation, error)
}

type evaluationService struct {
	evaluationRepo   repository.EvaluationRepository
	registrationRepo repository.RegistrationRepository
	sessionRepo      repository.SessionRepository
}

func NewEvaluationService(
	evaluationRepo repository.EvaluationRepository,
	registrationRepo repository.RegistrationRepository,
	sessionRepo repository.SessionRepository,
) EvaluationService {
	return &evaluationService{
		evaluationRepo:   evaluationRepo,
		registrationRepo: registrationRepo,
		sessionRepo:      sessionRepo,
	}
}

func (s *evaluationService) SubmitEvaluation(ctx context.Context, input EvaluationInput) (*model.Evaluation, error) {
	session, err := s.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.StartDate.After(time.Now()) {
		return nil, ErrSessionNotStartedYet
	}

	registration, err := s.registrationRepo.FindBySessionAndParticipant(ctx, input.SessionID, input.ParticipantID)
	if err != nil {
		return nil, err
	}
	if registration == nil || registration.Status != model.RegistrationConfirmed {
		return nil, ErrNotRegistered
	}

	existing, err := s.evaluationRepo.FindBySessionAndParticipant(ctx, input.SessionID, input.ParticipantID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyEvaluated
	}

	evaluation := &model.Evaluation{
		ID:                  uuid.New(),
		SessionID:           input.SessionID,
		ParticipantID:       input.ParticipantID,
		OverallSatisfaction: input.OverallSatisfaction,
		ContentQuality:      input.ContentQuality,
		TrainerExpertise:    input.TrainerExpertise,
		TrainingMaterials:   input.TrainingMaterials,
		PracticalExercises:  input.PracticalExercises,
		Pace:                input.Pace,
		Organization:        input.Organization,
		Facilities:          input.Facilities,
		Expectations:        input.Expectations,
		Objectives:          input.Objectives,
		Strengths:           input.Strengths,
		Improvements:        input.Improvements,
		Comments:            input.Comments,
		RecommendationScore: input.RecommendationScore,
		CreatedAt:           time.Now(),
	}

	if err := s.evaluationRepo.Insert(ctx, evaluation); err != nil {
		return nil, err
	}
	return evaluation, nil
}

func (s *evaluationService) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Evaluation, error) {
	return s.evaluationRepo.ListBySession(ctx, sessionID)
}

func (s *evaluationService) ListEvaluations(ctx context.Context) ([]model.Evaluation, error) {
	return s.evaluationRepo.List(ctx)
}
