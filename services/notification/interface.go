package notification

import (
	"context"

	"go.uber.org/zap"

	"mindhaven/models"
)

// Notifier announces lifecycle side effects to both parties. Actual email
// delivery belongs to the platform's mailer service; implementations here
// only hand the event over.
type Notifier interface {
	SessionDecided(ctx context.Context, sess *models.Session)
	SessionCompleted(ctx context.Context, sess *models.Session)
	ResetTokenIssued(ctx context.Context, account models.UserRef, token string)
}

// LogNotifier records the events that would be mailed out. Used wherever the
// mailer is not wired (local runs, tests).
type LogNotifier struct {
	Logger *zap.Logger
}

func (n *LogNotifier) SessionDecided(ctx context.Context, sess *models.Session) {
	n.Logger.Info("notify: session decided",
		zap.String("sessionID", sess.ID),
		zap.String("status", string(sess.SessionStatus)),
		zap.String("attendee", sess.AttendeeRef.String()),
		zap.String("professional", sess.ProfessionalRef.String()))
}

func (n *LogNotifier) SessionCompleted(ctx context.Context, sess *models.Session) {
	n.Logger.Info("notify: session completed",
		zap.String("sessionID", sess.ID),
		zap.String("attendee", sess.AttendeeRef.String()))
}

func (n *LogNotifier) ResetTokenIssued(ctx context.Context, account models.UserRef, token string) {
	// Token value deliberately not logged.
	n.Logger.Info("notify: password reset token issued",
		zap.String("account", account.String()))
}
