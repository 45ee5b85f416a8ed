package service

import (
	"context"
	"errors"
	"time"

	"formationpro/internal/email"
	"formationpro/internal/model"
	"formationpro/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvitationNotFound = errors.New("invitation not found")
)

const invitationTTL = 7 * 24 * time.Hour

type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	Role     model.UserRole
	Status   model.UserStatus
}

type UserPatch struct {
	Name   *string
	Role   *model.UserRole
	Status *model.UserStatus
	Avatar *string
}

type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, patch UserPatch) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ListUsers(ctx context.Context) ([]model.User, error)

	InviteUser(ctx context.Context, emailAddr string, role model.UserRole, invitedBy string) (*model.Invitation, error)
	CancelInvitation(ctx context.Context, id uuid.UUID) error
	ResendInvitation(ctx context.Context, id uuid.UUID) (*model.Invitation, error)
	ListInvitations(ctx context.Context) ([]model.Invitation, error)
}

type userService struct {
	userRepo       repository.UserRepository
	invitationRepo repository.InvitationRepository
	mailer         email.Mailer
}

func NewUserService(userRepo repository.UserRepository, invitationRepo repository.InvitationRepository, mailer email.Mailer) UserService {
	return &userService{
		userRepo:       userRepo,
		invitationRepo: invitationRepo,
		mailer:         mailer,
	}
}

func (s *userService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Name:         input.Name,
		Role:         input.Role,
		Status:       input.Status,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, err
	}

	if err := s.mailer.Send(ctx, email.Message{
		To:      []string{user.Email},
		Subject: "Bienvenue sur FormationPro",
		HTML:    email.WelcomeUser(user.Name),
	}); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, patch UserPatch) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Status != nil {
		user.Status = *patch.Status
	}
	if patch.Avatar != nil {
		user.Avatar = patch.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) InviteUser(ctx context.Context, emailAddr string, role model.UserRole, invitedBy string) (*model.Invitation, error) {
	invitation := &model.Invitation{
		ID:        uuid.New(),
		Email:     emailAddr,
		Role:      role,
		InvitedBy: invitedBy,
		ExpiresAt: time.Now().Add(invitationTTL),
	}
	if err := s.invitationRepo.Insert(ctx, invitation); err != nil {
		return nil, err
	}

	if err := s.sendInvitationEmail(ctx, invitation); err != nil {
		return nil, err
	}
	return invitation, nil
}

func (s *userService) CancelInvitation(ctx context.Context, id uuid.UUID) error {
	return s.invitationRepo.Delete(ctx, id)
}

// ResendInvitation pushes the expiry out by another full TTL and sends the
// invitation email again.
func (s *userService) ResendInvitation(ctx context.Context, id uuid.UUID) (*model.Invitation, error) {
	invitation, err := s.invitationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invitation == nil {
		return nil, ErrInvitationNotFound
	}

	invitation.ExpiresAt = time.Now().Add(invitationTTL)
	if err := s.invitationRepo.Update(ctx, invitation); err != nil {
		return nil, err
	}

	if err := s.sendInvitationEmail(ctx, invitation); err != nil {
		return nil, err
	}
	return invitation, nil
}

func (s *userService) ListInvitations(ctx context.Context) ([]model.Invitation, error) {
	return s.invitationRepo.List(ctx)
}

func (s *userService) sendInvitationEmail(ctx context.Context, invitation *model.Invitation) error {
	return s.mailer.Send(ctx, email.Message{
		To:      []string{invitation.Email},
		Subject: "Invitation à rejoindre FormationPro",
		HTML:    email.UserInvitation(string(invitation.Role), invitation.InvitedBy, invitation.ExpiresAt),
	})
}
