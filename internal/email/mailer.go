package email

import (
	"context"
	"log/slog"
)

const defaultFrom = "no-reply@formationpro.com"

type Message struct {
	To      []string `json:"to"`
	From    string   `json:"from"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer is the development mailer: it records every message through the
// structured logger instead of delivering it.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	if msg.From == "" {
		msg.From = defaultFrom
	}
	slog.InfoContext(ctx, "Email would be sent",
		slog.Any("to", msg.To),
		slog.String("from", msg.From),
		slog.String("subject", msg.Subject),
		slog.Int("html_bytes", len(msg.HTML)),
	)
	return nil
}
