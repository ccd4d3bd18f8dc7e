// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"mindhaven/database"
	"mindhaven/models"
)

type SlotRepository interface {
	// CreateMany inserts slots best-effort: duplicates of the natural key
	// (professionalRef, date, start) are dropped silently and only the count
	// of successfully created slots is reported.
	CreateMany(ctx context.Context, slots []models.AvailabilitySlot) (int, error)
	GetByID(ctx context.Context, id string) (*models.AvailabilitySlot, error)
	ListOpenByProfessional(ctx context.Context, professional models.UserRef) ([]models.AvailabilitySlot, error)
	// Book atomically flips isBooked false -> true. The filter carries the
	// precondition, so under concurrent attempts exactly one caller gets
	// booked=true; the others observe booked=false.
	Book(ctx context.Context, id string, attendee models.UserRef, at time.Time) (booked bool, err error)
	EnsureIndexes(ctx context.Context) error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	return &mongoSlotRepo{
		coll: database.Collection("availability_slots"),
	}
}
