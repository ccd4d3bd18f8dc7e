package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	sessionRepo "mindhaven/database/repository/session"
	"mindhaven/models"
	"mindhaven/services/notification"
	"mindhaven/utils"
)

// DefaultSessionService is the production lifecycle engine.
type DefaultSessionService struct {
	Repo     sessionRepo.SessionRepository
	Notifier notification.Notifier
}

func (s *DefaultSessionService) Request(ctx context.Context, in RequestInput) (*models.Session, error) {
	if !in.Attendee.Valid() || !in.Professional.Valid() {
		return nil, fmt.Errorf("%w: attendee and professional references are required", ErrInvalidArgument)
	}
	stype, err := models.ParseSessionType(in.SessionType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	now := time.Now()
	sess := &models.Session{
		AttendeeRef:     in.Attendee,
		ProfessionalRef: in.Professional,
		SessionType:     stype,
		SessionStatus:   models.SessionPending,
		// Placeholder until the professional approves with a real date.
		SessionDate:   now,
		PaymentStatus: models.PaymentPending,
	}
	if err := s.Repo.Create(ctx, sess); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("session requested",
		zap.String("sessionID", sess.ID),
		zap.String("professional", sess.ProfessionalRef.String()),
		zap.String("type", string(stype)))
	return sess, nil
}

func (s *DefaultSessionService) Decide(ctx context.Context, id string, d Decision) (*models.Session, error) {
	status, err := models.ParseSessionStatus(d.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if status != models.SessionApproved && status != models.SessionDeclined {
		return nil, fmt.Errorf("%w: decision must be approved or declined", ErrInvalidArgument)
	}

	var scheduled *time.Time
	if status == models.SessionApproved {
		// The approval carries the real schedule; the request-time placeholder
		// must never survive an approval.
		if d.ScheduledDate == nil || d.ScheduledDate.IsZero() {
			return nil, fmt.Errorf("%w: scheduledDate is required when approving", ErrInvalidArgument)
		}
		scheduled = d.ScheduledDate
	}

	err = s.Repo.UpdateStatusIf(ctx, id, []models.SessionStatus{models.SessionPending}, status, scheduled)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	sess, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if s.Notifier != nil {
		s.Notifier.SessionDecided(ctx, sess)
	}
	return sess, nil
}

func (s *DefaultSessionService) Complete(ctx context.Context, id string) (*models.Session, error) {
	err := s.Repo.UpdateStatusIf(ctx, id, []models.SessionStatus{models.SessionApproved}, models.SessionCompleted, nil)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	sess, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if sess.SessionType == models.SessionOnline && sess.PaymentStatus != models.PaymentCompleted {
		// Completion does not gate on payment; flag it for reconciliation.
		utils.GetLogger().Warn("session completed with pending payment",
			zap.String("sessionID", sess.ID))
	}
	if s.Notifier != nil {
		s.Notifier.SessionCompleted(ctx, sess)
	}
	return sess, nil
}

func (s *DefaultSessionService) AttachRecommendation(ctx context.Context, id, text string) (*models.Session, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: recommendation text is required", ErrInvalidArgument)
	}
	if err := s.Repo.SetRecommendation(ctx, id, text); err != nil {
		return nil, mapRepoErr(err)
	}
	return s.getMapped(ctx, id)
}

func (s *DefaultSessionService) HandlePaymentSuccess(ctx context.Context, id string) error {
	// The gateway may deliver the same callback more than once; the repo write
	// is an absolute $set, so repeats are no-ops rather than errors.
	if err := s.Repo.MarkPaymentCompleted(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	utils.GetLogger().Info("payment completed", zap.String("sessionID", id))
	return nil
}

func (s *DefaultSessionService) GetByID(ctx context.Context, id string) (*models.Session, error) {
	return s.getMapped(ctx, id)
}

func (s *DefaultSessionService) ListByAttendee(ctx context.Context, attendee models.UserRef) ([]models.Session, error) {
	return s.Repo.ListByAttendee(ctx, attendee)
}

func (s *DefaultSessionService) ListByProfessional(ctx context.Context, professional models.UserRef) ([]models.Session, error) {
	return s.Repo.ListByProfessional(ctx, professional)
}

func (s *DefaultSessionService) JoinAccess(ctx context.Context, id string, now time.Time) (*JoinVerdict, error) {
	sess, err := s.getMapped(ctx, id)
	if err != nil {
		return nil, err
	}
	v := EvaluateJoinAccess(sess, now)
	return &v, nil
}

func (s *DefaultSessionService) getMapped(ctx context.Context, id string) (*models.Session, error) {
	sess, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return sess, nil
}

func mapRepoErr(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case errors.Is(err, sessionRepo.ErrNoMatch):
		return ErrInvalidState
	}
	return err
}
