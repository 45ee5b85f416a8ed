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

type registrationFixture struct {
	svc             service.RegistrationService
	sessionRepo     repository.SessionRepository
	participantRepo repository.ParticipantRepository
	companyRepo     repository.CompanyRepository
}

func newRegistrationFixture() *registrationFixture {
	sessionRepo := repository.NewMemorySessionRepository()
	participantRepo := repository.NewMemoryParticipantRepository()
	companyRepo := repository.NewMemoryCompanyRepository()
	registrationRepo := repository.NewMemoryRegistrationRepository()
	return &registrationFixture{
		svc:             service.NewRegistrationService(registrationRepo, sessionRepo, participantRepo, companyRepo),
		sessionRepo:     sessionRepo,
		participantRepo: participantRepo,
		companyRepo:     companyRepo,
	}
}

func (f *registrationFixture) addSession(t *testing.T, participants, maxParticipants int) *model.Session {
	t.Helper()
	now := time.Now()
	session := &model.Session{
		ID:              uuid.New(),
		TrainingID:      uuid.New(),
		StartDate:       now.AddDate(0, 1, 0),
		EndDate:         now.AddDate(0, 1, 2),
		Location:        "Paris",
		TrainerID:       uuid.New(),
		Participants:    participants,
		MaxParticipants: maxParticipants,
		Status:          model.SessionConfirmed,
		StatusHistory: []model.StatusHistoryEntry{
			{ID: uuid.New(), Status: model.SessionConfirmed, Date: now, UserID: uuid.New(), UserName: "Admin"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.sessionRepo.Insert(context.Background(), session))
	return session
}

func (f *registrationFixture) addParticipant(t *testing.T, companyID *uuid.UUID) *model.Participant {
	t.Helper()
	participant := &model.Participant{
		ID:        uuid.New(),
		FirstName: "Jean",
		LastName:  "Dupont",
		Email:     "jean.dupont@example.com",
		CompanyID: companyID,
		Status:    model.ParticipantActive,
	}
	require.NoError(t, f.participantRepo.Insert(context.Background(), participant))
	return participant
}

func TestCreateRegistration_PendingUnderCapacity(t *testing.T) {
	f := newRegistrationFixture()
	session := f.addSession(t, 3, 10)
	participant := f.addParticipant(t, nil)

	registration, err := f.svc.CreateRegistration(context.Background(), service.CreateRegistrationInput{
		SessionID:     session.ID,
		ParticipantID: participant.ID,
	})
	require.NoError(t, err)

	require.Equal(t, model.RegistrationPending, registration.Status)
	require.Equal(t, model.PaymentPending, registration.PaymentStatus)
	require.Equal(t, "Jean Dupont", registration.ParticipantName)
	require.Equal(t, "jean.dupont@example.com", registration.ParticipantEmail)
	require.Equal(t, "Indépendant", registration.Company)
}

func TestCreateRegistration_WaitlistAtCapacity(t *testing.T) {
	f := newRegistrationFixture()
	session := f.addSession(t, 10, 10)
	participant := f.addParticipant(t, nil)

	registration, err := f.svc.CreateRegistration(context.Background(), service.CreateRegistrationInput{
		SessionID:     session.ID,
		ParticipantID: participant.ID,
	})
	require.NoError(t, err)
	require.Equal(t, model.RegistrationWaitlist, registration.Status)
}

func TestCreateRegistration_WaitlistOverCapacity(t *testing.T) {
	f := newRegistrationFixture()
	session := f.addSession(t, 11, 10)
	participant := f.addParticipant(t, nil)

	registration, err := f.svc.CreateRegistration(context.Background(), service.CreateRegistrationInput{
		SessionID:     session.ID,
		ParticipantID: participant.ID,
	})
	require.NoError(t, err)
	require.Equal(t, model.RegistrationWaitlist, registration.Status)
}

func TestCreateRegistration_CompanySnapshot(t *testing.T) {
	f := newRegistrationFixture()
	session := f.addSession(t, 0, 10)

	company := &model.Company{ID: uuid.New(), Name: "ACME Formation", Status: model.CompanyActive}
	require.NoError(t, f.companyRepo.Insert(context.Background(), company))
	participant := f.addParticipant(t, &company.ID)

	registration, err := f.svc.CreateRegistration(context.Background(), service.CreateRegistrationInput{
		SessionID:     session.ID,
		ParticipantID: participant.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "ACME Formation", registration.Company)
}

func TestCreateRegistration_UnknownSession(t *testing.T) {
	f := newRegistrationFixture()
	participant := f.addParticipant(t, nil)

	_, err := f.svc.CreateRegistration(context.Background(), service.CreateRegistrationInput{
		SessionID:     uuid.New(),
		ParticipantID: participant.ID,
	})
	require.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestCreateRegistration_UnknownParticipant(t *testing.T) {
	f := newRegistrationFixture()
	session := f.addSession(t, 0, 10)

	_, err := f.svc.CreateRegistration(context.Background(), service.CreateRegistrationInput{
		SessionID:     session.ID,
		ParticipantID: uuid.New(),
	})
	require.ErrorIs(t, err, service.ErrParticipantNotFound)
}

func TestConfirmRegistration_IncrementsParticipants(t *testing.T) {
	f := newRegistrationFixture()
	session := f.addSession(t, 0, 10)
	participant := f.addParticipant(t, nil)

	registration, err := f.svc.CreateRegistration(context.Background(), service.CreateRegistrationInput{
		SessionID:     session.ID,
		ParticipantID: participant.ID,
	})
	require.NoError(t, err)

	confirmed, err := f.svc.ConfirmRegistration(context.Background(), registration.ID)
	require.NoError(t, err)
	require.Equal(t, model.RegistrationConfirmed, confirmed.Status)

	stored, err := f.sessionRepo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	require.Equal(t, 1, stored.Participants)
}

func TestConfirmRegistration_AlreadyConfirmed(t *testing.T) {
	f := newRegistrationFixture()
	session := f.addSession(t, 0, 10)
	participant := f.addParticipant(t, nil)

	registration, err := f.svc.CreateRegistration(context.Background(), service.CreateRegistrationInput{
		SessionID:     session.ID,
		ParticipantID: participant.ID,
	})
	require.NoError(t, err)

	_, err = f.svc.ConfirmRegistration(context.Background(), registration.ID)
	require.NoError(t, err)

	_, err = f.svc.ConfirmRegistration(context.Background(), registration.ID)
	require.ErrorIs(t, err, service.ErrAlreadyConfirmed)

	// A failed second confirm must not bump the counter again.
	stored, err := f.sessionRepo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	require.Equal(t, 1, stored.Participants)
}

func TestConfirmRegistration_FillsLastSeatBeforeNextCreate(t *testing.T) {
	f := newRegistrationFixture()
	session := f.addSession(t, 0, 1)

	first := f.addParticipant(t, nil)
	registration, err := f.svc.CreateRegistration(context.Background(), service.CreateRegistrationInput{
		SessionID:     session.ID,
		ParticipantID: first.ID,
	})
	require.NoError(t, err)
	require.Equal(t, model.RegistrationPending, registration.Status)

	_, err = f.svc.ConfirmRegistration(context.Background(), registration.ID)
	require.NoError(t, err)

	second := f.addParticipant(t, nil)
	late, err := f.svc.CreateRegistration(context.Background(), service.CreateRegistrationInput{
		SessionID:     session.ID,
		ParticipantID: second.ID,
	})
	require.NoError(t, err)
	require.Equal(t, model.RegistrationWaitlist, late.Status)
}

func TestUpdateRegistration_Patch(t *testing.T) {
	f := newRegistrationFixture()
	session := f.addSession(t, 0, 10)
	participant := f.addParticipant(t, nil)

	registration, err := f.svc.CreateRegistration(context.Background(), service.CreateRegistrationInput{
		SessionID:     session.ID,
		ParticipantID: participant.ID,
	})
	require.NoError(t, err)

	paid := model.PaymentPaid
	prerequisites := true
	updated, err := f.svc.UpdateRegistration(context.Background(), registration.ID, service.RegistrationPatch{
		PaymentStatus: &paid,
		Prerequisites: &prerequisites,
	})
	require.NoError(t, err)
	require.Equal(t, model.PaymentPaid, updated.PaymentStatus)
	require.True(t, updated.Prerequisites)
	require.Equal(t, model.RegistrationPending, updated.Status)
}

func TestUpdateRegistration_Unknown(t *testing.T) {
	f := newRegistrationFixture()

	_, err := f.svc.UpdateRegistration(context.Background(), uuid.New(), service.RegistrationPatch{})
	require.ErrorIs(t, err, service.ErrRegistrationNotFound)
}
