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
	ErrSessionNotFound  = errors.New("session not found")
	ErrTrainingNotFound = errors.New("training not found")
	// ErrUnauthorized is returned when a status change is attempted without
	// an authenticated actor to stamp the audit entry with.
	ErrUnauthorized      = errors.New("status change requires an authenticated actor")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

const sessionCreatedComment = "session created"

type CreateSessionInput struct {
	TrainingID      uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	Location        string
	TrainerID       uuid.UUID
	MaxParticipants int
	Status          model.SessionStatus
}

// SessionPatch carries the fields an update may overwrite. Nil fields are
// left untouched; set fields win wholesale.
type SessionPatch struct {
	TrainingID      *uuid.UUID
	StartDate       *time.Time
	EndDate         *time.Time
	Location        *string
	TrainerID       *uuid.UUID
	MaxParticipants *int
	Status          *model.SessionStatus
}

type SessionService interface {
	CreateSession(ctx context.Context, input CreateSessionInput, actor model.Actor) (*model.Session, error)
	UpdateSession(ctx context.Context, id uuid.UUID, patch SessionPatch, comment *string, actor *model.Actor) (*model.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error)
	ListSessions(ctx context.Context) ([]model.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
	ListEligibleTrainers(ctx context.Context, trainingID uuid.UUID) ([]model.Trainer, error)
}

type sessionService struct {
	sessionRepo  repository.SessionRepository
	trainingRepo repository.TrainingRepository
	trainerRepo  repository.TrainerRepository
}

func NewSessionService(sessionRepo repository.SessionRepository, trainingRepo repository.TrainingRepository, trainerRepo repository.TrainerRepository) SessionService {
	return &sessionService{
		sessionRepo:  sessionRepo,
		trainingRepo: trainingRepo,
		trainerRepo:  trainerRepo,
	}
}

// canTransition reports whether a session may move between two statuses.
// Every transition is currently allowed; tightening the lifecycle (for
// example rejecting completed -> scheduled) only requires changing this
// predicate, the audit logic stays as is.
func canTransition(from, to model.SessionStatus) bool {
	return true
}

func (s *sessionService) CreateSession(ctx context.Context, input CreateSessionInput, actor model.Actor) (*model.Session, error) {
	now := time.Now()
	comment := sessionCreatedComment

	session := &model.Session{
		ID:              uuid.New(),
		TrainingID:      input.TrainingID,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Location:        input.Location,
		TrainerID:       input.TrainerID,
		Participants:    0,
		MaxParticipants: input.MaxParticipants,
		Status:          input.Status,
		StatusHistory: []model.StatusHistoryEntry{
			{
				ID:       uuid.New(),
				Status:   input.Status,
				Date:     now,
				UserID:   actor.ID,
				UserName: actor.Name,
				Comment:  &comment,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.sessionRepo.Insert(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, id uuid.UUID, patch SessionPatch, comment *string, actor *model.Actor) (*model.Session, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	now := time.Now()

	// A status different from the current one is audited; the same or an
	// absent status appends nothing.
	if patch.Status != nil && *patch.Status != session.Status {
		if actor == nil {
			return nil, ErrUnauthorized
		}
		if !canTransition(session.Status, *patch.Status) {
			return nil, ErrInvalidTransition
		}
		session.StatusHistory = append(session.StatusHistory, model.StatusHistoryEntry{
			ID:       uuid.New(),
			Status:   *patch.Status,
			Date:     now,
			UserID:   actor.ID,
			UserName: actor.Name,
			Comment:  comment,
		})
	}

	if patch.TrainingID != nil {
		session.TrainingID = *patch.TrainingID
	}
	if patch.StartDate != nil {
		session.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		session.EndDate = *patch.EndDate
	}
	if patch.Location != nil {
		session.Location = *patch.Location
	}
	if patch.TrainerID != nil {
		session.TrainerID = *patch.TrainerID
	}
	if patch.MaxParticipants != nil {
		session.MaxParticipants = *patch.MaxParticipants
	}
	if patch.Status != nil {
		session.Status = *patch.Status
	}
	session.UpdatedAt = now

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *sessionService) GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *sessionService) ListSessions(ctx context.Context) ([]model.Session, error) {
	return s.sessionRepo.List(ctx)
}

func (s *sessionService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return s.sessionRepo.Delete(ctx, id)
}

func (s *sessionService) ListEligibleTrainers(ctx context.Context, trainingID uuid.UUID) ([]model.Trainer, error) {
	training, err := s.trainingRepo.FindByID(ctx, trainingID)
	if err != nil {
		return nil, err
	}
	if training == nil {
		return nil, ErrTrainingNotFound
	}

	trainers, err := s.trainerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return EligibleTrainers(training, trainers), nil
}

// EligibleTrainers filters trainers down to the ones assignable to a session
// of the given training: active status and at least one specialty in common
// with the training's required specialties. Input order is preserved and an
// empty result is a valid outcome the caller has to handle, not an error.
func EligibleTrainers(training *model.Training, trainers []model.Trainer) []model.Trainer {
	eligible := make([]model.Trainer, 0, len(trainers))
	for _, trainer := range trainers {
		if trainer.Status != model.TrainerActive {
			continue
		}
		if hasCommonSpecialty(trainer.Specialties, training.RequiredSpecialties) {
			eligible = append(eligible, trainer)
		}
	}
	return eligible
}

func hasCommonSpecialty(specialties, required []uuid.UUID) bool {
	for _, s := range specialties {
		for _, r := range required {
			if s == r {
				return true
			}
		}
	}
	return false
}
