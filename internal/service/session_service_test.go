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

func newSessionService() (service.SessionService, repository.TrainingRepository, repository.TrainerRepository) {
	sessionRepo := repository.NewMemorySessionRepository()
	trainingRepo := repository.NewMemoryTrainingRepository()
	trainerRepo := repository.NewMemoryTrainerRepository()
	return service.NewSessionService(sessionRepo, trainingRepo, trainerRepo), trainingRepo, trainerRepo
}

func testActor() model.Actor {
	return model.Actor{ID: uuid.New(), Name: "Admin FormationPro"}
}

func scheduledInput() service.CreateSessionInput {
	now := time.Now()
	return service.CreateSessionInput{
		TrainingID:      uuid.New(),
		StartDate:       now.AddDate(0, 1, 0),
		EndDate:         now.AddDate(0, 1, 3),
		Location:        "Paris",
		TrainerID:       uuid.New(),
		MaxParticipants: 12,
		Status:          model.SessionScheduled,
	}
}

func TestCreateSession_SeedsStatusHistory(t *testing.T) {
	svc, _, _ := newSessionService()
	actor := testActor()

	session, err := svc.CreateSession(context.Background(), scheduledInput(), actor)
	require.NoError(t, err)

	require.Equal(t, model.SessionScheduled, session.Status)
	require.Equal(t, 0, session.Participants)
	require.Len(t, session.StatusHistory, 1)

	entry := session.StatusHistory[0]
	require.Equal(t, model.SessionScheduled, entry.Status)
	require.Equal(t, actor.ID, entry.UserID)
	require.Equal(t, actor.Name, entry.UserName)
	require.NotNil(t, entry.Comment)
	require.Equal(t, "session created", *entry.Comment)
}

func TestUpdateSession_StatusChangeAppendsHistory(t *testing.T) {
	svc, _, _ := newSessionService()
	actor := testActor()

	session, err := svc.CreateSession(context.Background(), scheduledInput(), actor)
	require.NoError(t, err)

	confirmed := model.SessionConfirmed
	comment := "Quorum atteint"
	updated, err := svc.UpdateSession(context.Background(), session.ID, service.SessionPatch{Status: &confirmed}, &comment, &actor)
	require.NoError(t, err)

	require.Equal(t, model.SessionConfirmed, updated.Status)
	require.Len(t, updated.StatusHistory, 2)

	last := updated.StatusHistory[len(updated.StatusHistory)-1]
	require.Equal(t, model.SessionConfirmed, last.Status)
	require.Equal(t, actor.ID, last.UserID)
	require.Equal(t, actor.Name, last.UserName)
	require.NotNil(t, last.Comment)
	require.Equal(t, comment, *last.Comment)
}

func TestUpdateSession_SameStatusAppendsNothing(t *testing.T) {
	svc, _, _ := newSessionService()
	actor := testActor()

	session, err := svc.CreateSession(context.Background(), scheduledInput(), actor)
	require.NoError(t, err)

	scheduled := model.SessionScheduled
	updated, err := svc.UpdateSession(context.Background(), session.ID, service.SessionPatch{Status: &scheduled}, nil, &actor)
	require.NoError(t, err)
	require.Len(t, updated.StatusHistory, 1)
}

func TestUpdateSession_FieldPatchAppendsNothing(t *testing.T) {
	svc, _, _ := newSessionService()
	actor := testActor()

	session, err := svc.CreateSession(context.Background(), scheduledInput(), actor)
	require.NoError(t, err)

	confirmed := model.SessionConfirmed
	comment := "Quorum atteint"
	_, err = svc.UpdateSession(context.Background(), session.ID, service.SessionPatch{Status: &confirmed}, &comment, &actor)
	require.NoError(t, err)

	location := "Lyon"
	updated, err := svc.UpdateSession(context.Background(), session.ID, service.SessionPatch{Location: &location}, nil, nil)
	require.NoError(t, err)

	require.Equal(t, "Lyon", updated.Location)
	require.Equal(t, model.SessionConfirmed, updated.Status)
	require.Len(t, updated.StatusHistory, 2)
}

func TestUpdateSession_StatusChangeWithoutActor(t *testing.T) {
	svc, _, _ := newSessionService()
	actor := testActor()

	session, err := svc.CreateSession(context.Background(), scheduledInput(), actor)
	require.NoError(t, err)

	cancelled := model.SessionCancelled
	_, err = svc.UpdateSession(context.Background(), session.ID, service.SessionPatch{Status: &cancelled}, nil, nil)
	require.ErrorIs(t, err, service.ErrUnauthorized)

	// The failed update must leave the session untouched.
	unchanged, err := svc.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	require.Equal(t, model.SessionScheduled, unchanged.Status)
	require.Len(t, unchanged.StatusHistory, 1)
}

func TestUpdateSession_UnknownID(t *testing.T) {
	svc, _, _ := newSessionService()
	actor := testActor()

	location := "Lyon"
	_, err := svc.UpdateSession(context.Background(), uuid.New(), service.SessionPatch{Location: &location}, nil, &actor)
	require.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestUpdateSession_HistoryMatchesStatus(t *testing.T) {
	svc, _, _ := newSessionService()
	actor := testActor()

	session, err := svc.CreateSession(context.Background(), scheduledInput(), actor)
	require.NoError(t, err)

	for _, status := range []model.SessionStatus{
		model.SessionConfirmed,
		model.SessionInProgress,
		model.SessionCompleted,
	} {
		s := status
		session, err = svc.UpdateSession(context.Background(), session.ID, service.SessionPatch{Status: &s}, nil, &actor)
		require.NoError(t, err)
		require.Equal(t, s, session.StatusHistory[len(session.StatusHistory)-1].Status)
	}
	require.Len(t, session.StatusHistory, 4)
}

func TestGetSession_UnknownID(t *testing.T) {
	svc, _, _ := newSessionService()

	_, err := svc.GetSession(context.Background(), uuid.New())
	require.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestDeleteSession_Idempotent(t *testing.T) {
	svc, _, _ := newSessionService()
	actor := testActor()

	session, err := svc.CreateSession(context.Background(), scheduledInput(), actor)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(context.Background(), session.ID))
	require.NoError(t, svc.DeleteSession(context.Background(), session.ID))

	_, err = svc.GetSession(context.Background(), session.ID)
	require.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestListEligibleTrainers_UnknownTraining(t *testing.T) {
	svc, _, _ := newSessionService()

	_, err := svc.ListEligibleTrainers(context.Background(), uuid.New())
	require.ErrorIs(t, err, service.ErrTrainingNotFound)
}

func TestListEligibleTrainers_FiltersByStatusAndSpecialty(t *testing.T) {
	svc, trainingRepo, trainerRepo := newSessionService()
	ctx := context.Background()

	react := uuid.New()
	python := uuid.New()

	training := &model.Training{
		ID:                  uuid.New(),
		Title:               "React.js Avancé",
		RequiredSpecialties: []uuid.UUID{react},
		Status:              model.TrainingActive,
	}
	require.NoError(t, trainingRepo.Insert(ctx, training))

	activeMatch := &model.Trainer{ID: uuid.New(), FirstName: "Marie", LastName: "Dubois", Specialties: []uuid.UUID{react}, Status: model.TrainerActive}
	inactiveMatch := &model.Trainer{ID: uuid.New(), FirstName: "Paul", LastName: "Durand", Specialties: []uuid.UUID{react}, Status: model.TrainerInactive}
	activeNoMatch := &model.Trainer{ID: uuid.New(), FirstName: "Thomas", LastName: "Martin", Specialties: []uuid.UUID{python}, Status: model.TrainerActive}
	secondMatch := &model.Trainer{ID: uuid.New(), FirstName: "Julie", LastName: "Bernard", Specialties: []uuid.UUID{python, react}, Status: model.TrainerActive}

	for _, trainer := range []*model.Trainer{activeMatch, inactiveMatch, activeNoMatch, secondMatch} {
		require.NoError(t, trainerRepo.Insert(ctx, trainer))
	}

	eligible, err := svc.ListEligibleTrainers(ctx, training.ID)
	require.NoError(t, err)
	require.Len(t, eligible, 2)
	require.Equal(t, activeMatch.ID, eligible[0].ID)
	require.Equal(t, secondMatch.ID, eligible[1].ID)
}

func TestEligibleTrainers_EmptyResult(t *testing.T) {
	training := &model.Training{ID: uuid.New(), RequiredSpecialties: []uuid.UUID{uuid.New()}}
	trainers := []model.Trainer{
		{ID: uuid.New(), Specialties: []uuid.UUID{uuid.New()}, Status: model.TrainerActive},
	}

	eligible := service.EligibleTrainers(training, trainers)
	require.NotNil(t, eligible)
	require.Empty(t, eligible)
}

func TestEligibleTrainers_NoRequiredSpecialties(t *testing.T) {
	training := &model.Training{ID: uuid.New()}
	trainers := []model.Trainer{
		{ID: uuid.New(), Specialties: []uuid.UUID{uuid.New()}, Status: model.TrainerActive},
	}

	require.Empty(t, service.EligibleTrainers(training, trainers))
}
