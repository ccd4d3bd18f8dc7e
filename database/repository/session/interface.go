// File: database/repository/session/interface.go
package sessionRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"mindhaven/database"
	"mindhaven/models"
)

// ErrNoMatch is returned by conditional updates whose status precondition did
// not hold at write time.
var ErrNoMatch = errors.New("session did not match update precondition")

type SessionRepository interface {
	Create(ctx context.Context, sess *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	ListByAttendee(ctx context.Context, attendee models.UserRef) ([]models.Session, error)
	ListByProfessional(ctx context.Context, professional models.UserRef) ([]models.Session, error)
	// UpdateStatusIf atomically moves the session to the target status only if
	// its current status is one of from. scheduledDate, when non-nil, replaces
	// sessionDate in the same write. Returns mongo.ErrNoDocuments when the id
	// does not exist and ErrNoMatch when it exists in a different status.
	UpdateStatusIf(ctx context.Context, id string, from []models.SessionStatus, to models.SessionStatus, scheduledDate *time.Time) error
	// MarkPaymentCompleted sets paymentStatus to completed. Idempotent: calling
	// it for an already-completed payment is a no-op, never a downgrade.
	MarkPaymentCompleted(ctx context.Context, id string) error
	// SetRecommendation overwrites the recommendation note (scalar field).
	SetRecommendation(ctx context.Context, id, text string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo constructs a new MongoDB SessionRepository.
func NewMongoSessionRepo() SessionRepository {
	return &mongoSessionRepo{
		coll: database.Collection("sessions"),
	}
}
