package session

import (
	"context"
	"time"

	"mindhaven/models"
)

// RequestInput is an attendee's ask for a consultation with a professional.
type RequestInput struct {
	Attendee     models.UserRef
	Professional models.UserRef
	SessionType  string
}

// Decision is the professional's answer to a pending request.
type Decision struct {
	Status string // "approved" or "declined"
	// ScheduledDate is required when approving; it replaces the request-time
	// placeholder in sessionDate.
	ScheduledDate *time.Time
}

// JoinVerdict is the derived join-access projection. Recomputed on every view,
// never persisted.
type JoinVerdict struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// SessionService is the lifecycle engine for therapy sessions:
// pending -> {approved, declined}; approved -> completed. declined and
// completed are terminal and no transition skips a state.
type SessionService interface {
	Request(ctx context.Context, in RequestInput) (*models.Session, error)
	Decide(ctx context.Context, id string, d Decision) (*models.Session, error)
	Complete(ctx context.Context, id string) (*models.Session, error)
	AttachRecommendation(ctx context.Context, id, text string) (*models.Session, error)
	// HandlePaymentSuccess is transition 4: sets paymentStatus to completed
	// without touching sessionStatus. Idempotent for duplicate gateway
	// callbacks.
	HandlePaymentSuccess(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	ListByAttendee(ctx context.Context, attendee models.UserRef) ([]models.Session, error)
	ListByProfessional(ctx context.Context, professional models.UserRef) ([]models.Session, error)
	JoinAccess(ctx context.Context, id string, now time.Time) (*JoinVerdict, error)
}
