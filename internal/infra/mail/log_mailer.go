// Package mail contains the invitation mail delivery adapter. Real delivery
// runs through an external provider; this adapter records the send in the
// application log, which is also what local development uses.
package mail

import (
	"context"
	"log/slog"

	"kidsactivity/internal/domain/service"
)

type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer is the constructor for the log-backed Mailer.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

// SendInvitation logs the invitation instead of delivering it.
func (m *logMailer) SendInvitation(ctx context.Context, mailMsg *service.InvitationMail) error {
	m.logger.LogAttrs(ctx, slog.LevelInfo, "Invitation mail queued",
		slog.String("to", mailMsg.To),
		slog.String("inviter", mailMsg.InviterName),
	)

	return nil
}
