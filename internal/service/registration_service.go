package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"formationpro/internal/model"
	"formationpro/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrAlreadyConfirmed     = errors.New("registration is already confirmed")
)

// independentCompany is the company snapshot used for participants without
// an employer on file.
const independentCompany = "Indépendant"

type CreateRegistrationInput struct {
	SessionID     uuid.UUID
	ParticipantID uuid.UUID
	Comments      *string
}

type RegistrationPatch struct {
	Status        *model.RegistrationStatus
	Prerequisites *bool
	PaymentStatus *model.PaymentStatus
	Comments      *string
}

type RegistrationService interface {
	CreateRegistration(ctx context.Context, input CreateRegistrationInput) (*model.Registration, error)
	ConfirmRegistration(ctx context.Context, id uuid.UUID) (*model.Registration, error)
	UpdateRegistration(ctx context.Context, id uuid.UUID, patch RegistrationPatch) (*model.Registration, error)
	GetRegistration(ctx context.Context, id uuid.UUID) (*model.Registration, error)
	ListRegistrations(ctx context.Context) ([]model.Registration, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Registration, error)
	DeleteRegistration(ctx context.Context, id uuid.UUID) error
}

type registrationService struct {
	// mu serializes the capacity check on create with the participants
	// increment on confirm, so two callers cannot both read an unsaturated
	// count.
	mu sync.Mutex

	registrationRepo repository.RegistrationRepository
	sessionRepo      repository.SessionRepository
	participantRepo  repository.ParticipantRepository
	companyRepo      repository.CompanyRepository
}

func NewRegistrationService(
	registrationRepo repository.RegistrationRepository,
	sessionRepo repository.SessionRepository,
	participantRepo repository.ParticipantRepository,
	companyRepo repository.CompanyRepository,
) RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		sessionRepo:      sessionRepo,
		participantRepo:  participantRepo,
		companyRepo:      companyRepo,
	}
}

func (s *registrationService) CreateRegistration(ctx context.Context, input CreateRegistrationInput) (*model.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	participant, err := s.participantRepo.FindByID(ctx, input.ParticipantID)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, ErrParticipantNotFound
	}

	companyName := independentCompany
	if participant.CompanyID != nil {
		company, err := s.companyRepo.FindByID(ctx, *participant.CompanyID)
		if err != nil {
			return nil, err
		}
		if company != nil {
			companyName = company.Name
		}
	}

	// At or over capacity the registration goes on the waitlist instead of
	// starting out pending. The comparison uses the participants count as it
	// stands right now.
	status := model.RegistrationPending
	if session.Participants >= session.MaxParticipants {
		status = model.RegistrationWaitlist
	}

	registration := &model.Registration{
		ID:               uuid.New(),
		SessionID:        session.ID,
		ParticipantID:    participant.ID,
		ParticipantName:  participant.FirstName + " " + participant.LastName,
		ParticipantEmail: participant.Email,
		Company:          companyName,
		Status:           status,
		RegistrationDate: time.Now(),
		Prerequisites:    false,
		PaymentStatus:    model.PaymentPending,
		Comments:         input.Comments,
	}

	if err := s.registrationRepo.Insert(ctx, registration); err != nil {
		return nil, err
	}
	return registration, nil
}

// ConfirmRegistration accepts a pending or waitlisted registration and bumps
// the session's participants counter.
func (s *registrationService) ConfirmRegistration(ctx context.Context, id uuid.UUID) (*model.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	registration, err := s.registrationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, ErrRegistrationNotFound
	}
	if registration.Status == model.RegistrationConfirmed {
		return nil, ErrAlreadyConfirmed
	}

	session, err := s.sessionRepo.FindByID(ctx, registration.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	registration.Status = model.RegistrationConfirmed
	if err := s.registrationRepo.Update(ctx, registration); err != nil {
		return nil, err
	}

	session.Participants++
	session.UpdatedAt = time.Now()
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	return registration, nil
}

func (s *registrationService) UpdateRegistration(ctx context.Context, id uuid.UUID, patch RegistrationPatch) (*model.Registration, error) {
	registration, err := s.registrationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, ErrRegistrationNotFound
	}

	if patch.Status != nil {
		registration.Status = *patch.Status
	}
	if patch.Prerequisites != nil {
		registration.Prerequisites = *patch.Prerequisites
	}
	if patch.PaymentStatus != nil {
		registration.PaymentStatus = *patch.PaymentStatus
	}
	if patch.Comments != nil {
		registration.Comments = patch.Comments
	}

	if err := s.registrationRepo.Update(ctx, registration); err != nil {
		return nil, err
	}
	return registration, nil
}

func (s *registrationService) GetRegistration(ctx context.Context, id uuid.UUID) (*model.Registration, error) {
	registration, err := s.registrationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, ErrRegistrationNotFound
	}
	return registration, nil
}

func (s *registrationService) ListRegistrations(ctx context.Context) ([]model.Registration, error) {
	return s.registrationRepo.List(ctx)
}

func (s *registrationService) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Registration, error) {
	return s.registrationRepo.ListBySession(ctx, sessionID)
}

func (s *registrationService) DeleteRegistration(ctx context.Context, id uuid.UUID) error {
	return s.registrationRepo.Delete(ctx, id)
}
