package email_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"formationpro/internal/email"

	"github.com/stretchr/testify/require"
)

func TestUserInvitation(t *testing.T) {
	expiresAt := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)

	html := email.UserInvitation("manager", "Admin FormationPro", expiresAt)
	require.Contains(t, html, "en tant que manager")
	require.Contains(t, html, "envoyée par Admin FormationPro")
	require.Contains(t, html, "expire le 05/09/2026")
}

func TestResetPassword(t *testing.T) {
	html := email.ResetPassword("Marie Dubois", "https://formationpro.com/reset?token=abc")
	require.Contains(t, html, "Bonjour Marie Dubois")
	require.Contains(t, html, `href="https://formationpro.com/reset?token=abc"`)
}

func TestWelcomeUser(t *testing.T) {
	html := email.WelcomeUser("Jean Dupont")
	require.Contains(t, html, "Bonjour Jean Dupont")
	require.True(t, strings.Contains(html, "Bienvenue sur FormationPro"))
}

func TestLogMailer_Send(t *testing.T) {
	mailer := email.NewLogMailer()

	err := mailer.Send(context.Background(), email.Message{
		To:      []string{"jean.dupont@example.com"},
		Subject: "Bienvenue sur FormationPro",
		HTML:    email.WelcomeUser("Jean Dupont"),
	})
	require.NoError(t, err)
}
