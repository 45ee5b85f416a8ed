package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"formationpro/internal/email"
	"formationpro/internal/model"
	"formationpro/internal/repository"
	"formationpro/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// recordingMailer captures sent messages for assertions.
type recordingMailer struct {
	mu       sync.Mutex
	messages []email.Message
}

func (m *recordingMailer) Send(ctx context.Context, msg email.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *recordingMailer) sent() []email.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]email.Message(nil), m.messages...)
}

func newUserFixture() (service.UserService, repository.UserRepository, *recordingMailer) {
	userRepo := repository.NewMemoryUserRepository()
	invitationRepo := repository.NewMemoryInvitationRepository()
	mailer := &recordingMailer{}
	return service.NewUserService(userRepo, invitationRepo, mailer), userRepo, mailer
}

func TestCreateUser(t *testing.T) {
	svc, _, mailer := newUserFixture()

	user, err := svc.CreateUser(context.Background(), service.CreateUserInput{
		Email:    "marie.dubois@formationpro.com",
		Password: "secret123",
		Name:     "Marie Dubois",
		Role:     model.RoleTrainer,
		Status:   model.UserActive,
	})
	require.NoError(t, err)

	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))

	messages := mailer.sent()
	require.Len(t, messages, 1)
	require.Equal(t, []string{"marie.dubois@formationpro.com"}, messages[0].To)
	require.Equal(t, "Bienvenue sur FormationPro", messages[0].Subject)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc, _, _ := newUserFixture()

	input := service.CreateUserInput{
		Email:    "marie.dubois@formationpro.com",
		Password: "secret123",
		Name:     "Marie Dubois",
		Role:     model.RoleTrainer,
		Status:   model.UserActive,
	}
	_, err := svc.CreateUser(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), input)
	require.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestUpdateUser(t *testing.T) {
	svc, _, _ := newUserFixture()

	user, err := svc.CreateUser(context.Background(), service.CreateUserInput{
		Email:    "marie.dubois@formationpro.com",
		Password: "secret123",
		Name:     "Marie Dubois",
		Role:     model.RoleTrainer,
		Status:   model.UserActive,
	})
	require.NoError(t, err)

	role := model.RoleManager
	inactive := model.UserInactive
	updated, err := svc.UpdateUser(context.Background(), user.ID, service.UserPatch{Role: &role, Status: &inactive})
	require.NoError(t, err)
	require.Equal(t, model.RoleManager, updated.Role)
	require.Equal(t, model.UserInactive, updated.Status)
	require.Equal(t, "Marie Dubois", updated.Name)
}

func TestUpdateUser_Unknown(t *testing.T) {
	svc, _, _ := newUserFixture()

	name := "Nobody"
	_, err := svc.UpdateUser(context.Background(), uuid.New(), service.UserPatch{Name: &name})
	require.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestInviteUser(t *testing.T) {
	svc, _, mailer := newUserFixture()

	invitation, err := svc.InviteUser(context.Background(), "nouveau@example.com", model.RoleManager, "Admin FormationPro")
	require.NoError(t, err)

	require.Equal(t, model.RoleManager, invitation.Role)
	require.Equal(t, "Admin FormationPro", invitation.InvitedBy)
	require.WithinDuration(t, time.Now().Add(7*24*time.Hour), invitation.ExpiresAt, time.Minute)

	messages := mailer.sent()
	require.Len(t, messages, 1)
	require.Equal(t, "Invitation à rejoindre FormationPro", messages[0].Subject)
}

func TestResendInvitation_ExtendsExpiry(t *testing.T) {
	svc, _, mailer := newUserFixture()

	invitation, err := svc.InviteUser(context.Background(), "nouveau@example.com", model.RoleUser, "Admin FormationPro")
	require.NoError(t, err)

	resent, err := svc.ResendInvitation(context.Background(), invitation.ID)
	require.NoError(t, err)
	require.False(t, resent.ExpiresAt.Before(invitation.ExpiresAt))
	require.Len(t, mailer.sent(), 2)
}

func TestResendInvitation_Unknown(t *testing.T) {
	svc, _, _ := newUserFixture()

	_, err := svc.ResendInvitation(context.Background(), uuid.New())
	require.ErrorIs(t, err, service.ErrInvitationNotFound)
}

func TestCancelInvitation(t *testing.T) {
	svc, _, _ := newUserFixture()

	invitation, err := svc.InviteUser(context.Background(), "nouveau@example.com", model.RoleUser, "Admin FormationPro")
	require.NoError(t, err)

	require.NoError(t, svc.CancelInvitation(context.Background(), invitation.ID))

	invitations, err := svc.ListInvitations(context.Background())
	require.NoError(t, err)
	require.Empty(t, invitations)
}
