package service_test

import (
	"context"
	"testing"
	"time"

	"formationpro/internal/model"
	"formationpro/internal/repository"
	"formationpro/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type evaluationFixture struct {
	svc              service.EvaluationService
	sessionRepo      repository.SessionRepository
	registrationRepo repository.RegistrationRepository
}

func newEvaluationFixture() *evaluationFixture {
	sessionRepo := repository.NewMemorySessionRepository()
	registrationRepo := repository.NewMemoryRegistrationRepository()
	evaluationRepo := repository.NewMemoryEvaluationRepository()
	return &evaluationFixture{
		svc:              service.NewEvaluationService(evaluationRepo, registrationRepo, sessionRepo),
		sessionRepo:      sessionRepo,
		registrationRepo: registrationRepo,
	}
}

func (f *evaluationFixture) addSession(t *testing.T, startDate time.Time) *model.Session {
	t.Helper()
	session := &model.Session{
		ID:              uuid.New(),
		TrainingID:      uuid.New(),
		StartDate:       startDate,
		EndDate:         startDate.AddDate(0, 0, 2),
		Location:        "Paris",
		TrainerID:       uuid.New(),
		MaxParticipants: 10,
		Status:          model.SessionCompleted,
		StatusHistory: []model.StatusHistoryEntry{
			{ID: uuid.New(), Status: model.SessionCompleted, Date: time.Now(), UserID: uuid.New(), UserName: "Admin"},
		},
	}
	require.NoError(t, f.sessionRepo.Insert(context.Background(), session))
	return session
}

func (f *evaluationFixture) register(t *testing.T, sessionID, participantID uuid.UUID, status model.RegistrationStatus) {
	t.Helper()
	require.NoError(t, f.registrationRepo.Insert(context.Background(), &model.Registration{
		ID:            uuid.New(),
		SessionID:     sessionID,
		ParticipantID: participantID,
		Status:        status,
	}))
}

func evaluationInput(sessionID, participantID uuid.UUID) service.EvaluationInput {
	return service.EvaluationInput{
		SessionID:           sessionID,
		ParticipantID:       participantID,
		OverallSatisfaction: 5,
		ContentQuality:      4,
		TrainerExpertise:    5,
		TrainingMaterials:   4,
		PracticalExercises:  4,
		Pace:                3,
		Organization:        4,
		Facilities:          4,
		Expectations:        5,
		Objectives:          model.ObjectiveScores{Clarity: 5, Achievement: 4},
		Strengths:           "Formatrice très pédagogue",
		Improvements:        "Plus d'exercices pratiques",
		RecommendationScore: 9,
	}
}

func TestSubmitEvaluation(t *testing.T) {
	f := newEvaluationFixture()
	session := f.addSession(t, time.Now().AddDate(0, 0, -7))
	participantID := uuid.New()
	f.register(t, session.ID, participantID, model.RegistrationConfirmed)

	evaluation, err := f.svc.SubmitEvaluation(context.Background(), evaluationInput(session.ID, participantID))
	require.NoError(t, err)
	require.Equal(t, session.ID, evaluation.SessionID)
	require.Equal(t, participantID, evaluation.ParticipantID)
	require.Equal(t, 9, evaluation.RecommendationScore)
}

func TestSubmitEvaluation_UnknownSession(t *testing.T) {
	f := newEvaluationFixture()

	_, err := f.svc.SubmitEvaluation(context.Background(), evaluationInput(uuid.New(), uuid.New()))
	require.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestSubmitEvaluation_SessionNotStarted(t *testing.T) {
	f := newEvaluationFixture()
	session := f.addSession(t, time.Now().AddDate(0, 1, 0))
	participantID := uuid.New()
	f.register(t, session.ID, participantID, model.RegistrationConfirmed)

	_, err := f.svc.SubmitEvaluation(context.Background(), evaluationInput(session.ID, participantID))
	require.ErrorIs(t, err, service.ErrSessionNotStartedYet)
}

func TestSubmitEvaluation_NotRegistered(t *testing.T) {
	f := newEvaluationFixture()
	session := f.addSession(t, time.Now().AddDate(0, 0, -7))

	_, err := f.svc.SubmitEvaluation(context.Background(), evaluationInput(session.ID, uuid.New()))
	require.ErrorIs(t, err, service.ErrNotRegistered)
}

func TestSubmitEvaluation_RegistrationNotConfirmed(t *testing.T) {
	f := newEvaluationFixture()
	session := f.addSession(t, time.Now().AddDate(0, 0, -7))
	participantID := uuid.New()
	f.register(t, session.ID, participantID, model.RegistrationWaitlist)

	_, err := f.svc.SubmitEvaluation(context.Background(), evaluationInput(session.ID, participantID))
	require.ErrorIs(t, err, service.ErrNotRegistered)
}

func TestSubmitEvaluation_AlreadyEvaluated(t *testing.T) {
	f := newEvaluationFixture()
	session := f.addSession(t, time.Now().AddDate(0, 0, -7))
	participantID := uuid.New()
	f.register(t, session.ID, participantID, model.RegistrationConfirmed)

	_, err := f.svc.SubmitEvaluation(context.Background(), evaluationInput(session.ID, participantID))
	require.NoError(t, err)

	_, err = f.svc.SubmitEvaluation(context.Background(), evaluationInput(session.ID, participantID))
	require.ErrorIs(t, err, service.ErrAlreadyEvaluated)
}

func TestListBySession(t *testing.T) {
	f := newEvaluationFixture()
	session := f.addSession(t, time.Now().AddDate(0, 0, -7))
	other := f.addSession(t, time.Now().AddDate(0, 0, -14))

	for _, sessionID := range []uuid.UUID{session.ID, session.ID, other.ID} {
		participantID := uuid.New()
		f.register(t, sessionID, participantID, model.RegistrationConfirmed)
		_, err := f.svc.SubmitEvaluation(context.Background(), evaluationInput(sessionID, participantID))
		require.NoError(t, err)
	}

	evaluations, err := f.svc.ListBySession(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, evaluations, 2)

	all, err := f.svc.ListEvaluations(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
}
