package service_test

import (
	"context"
	"testing"

	"formationpro/internal/model"
	"formationpro/internal/repository"
	"formationpro/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (service.AuthService, repository.UserRepository) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	userRepo := repository.NewMemoryUserRepository()
	tokenRepo := repository.NewMemoryTokenRepository()
	return service.NewAuthService(userRepo, tokenRepo), userRepo
}

func addUser(t *testing.T, userRepo repository.UserRepository, password string, status model.UserStatus) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		ID:           uuid.New(),
		Email:        "admin@formationpro.com",
		PasswordHash: string(hashed),
		Name:         "Admin FormationPro",
		Role:         model.RoleAdmin,
		Status:       status,
	}
	require.NoError(t, userRepo.Insert(context.Background(), user))
	return user
}

func TestLoginUser(t *testing.T) {
	svc, userRepo := newAuthFixture(t)
	user := addUser(t, userRepo, "admin123", model.UserActive)

	accessToken, refreshToken, err := svc.LoginUser(context.Background(), user.Email, "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	stored, err := userRepo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.False(t, stored.LastLogin.IsZero())
}

func TestLoginUser_WrongPassword(t *testing.T) {
	svc, userRepo := newAuthFixture(t)
	user := addUser(t, userRepo, "admin123", model.UserActive)

	_, _, err := svc.LoginUser(context.Background(), user.Email, "wrong")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUser_UnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, err := svc.LoginUser(context.Background(), "nobody@formationpro.com", "admin123")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUser_InactiveUser(t *testing.T) {
	svc, userRepo := newAuthFixture(t)
	user := addUser(t, userRepo, "admin123", model.UserInactive)

	_, _, err := svc.LoginUser(context.Background(), user.Email, "admin123")
	require.ErrorIs(t, err, service.ErrUserNotActive)
}

func TestRefreshToken(t *testing.T) {
	svc, userRepo := newAuthFixture(t)
	user := addUser(t, userRepo, "admin123", model.UserActive)

	_, refreshToken, err := svc.LoginUser(context.Background(), user.Email, "admin123")
	require.NoError(t, err)

	newAccessToken, err := svc.RefreshToken(context.Background(), refreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, newAccessToken)
}

func TestRefreshToken_Garbage(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	require.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestRefreshToken_AfterLogout(t *testing.T) {
	svc, userRepo := newAuthFixture(t)
	user := addUser(t, userRepo, "admin123", model.UserActive)

	_, refreshToken, err := svc.LoginUser(context.Background(), user.Email, "admin123")
	require.NoError(t, err)

	require.NoError(t, svc.LogoutUser(context.Background(), refreshToken))

	_, err = svc.RefreshToken(context.Background(), refreshToken)
	require.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestGetUserProfile(t *testing.T) {
	svc, userRepo := newAuthFixture(t)
	user := addUser(t, userRepo, "admin123", model.UserActive)

	profile, err := svc.GetUserProfile(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, profile.Email)

	_, err = svc.GetUserProfile(context.Background(), uuid.New())
	require.ErrorIs(t, err, service.ErrUserNotFound)
}
