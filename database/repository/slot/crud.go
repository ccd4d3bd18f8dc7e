// File: database/repository/slot/crud.go
package slotRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindhaven/models"
)

func (r *mongoSlotRepo) CreateMany(ctx context.Context, slots []models.AvailabilitySlot) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		slot.CreatedAt = time.Now()
		docs[i] = slot
	}

	// Unordered insert keeps going past duplicate-key rejections.
	res, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		var bwe mongo.BulkWriteException
		if errors.As(err, &bwe) && allDuplicateKey(bwe) {
			return len(docs) - len(bwe.WriteErrors), nil
		}
		return 0, fmt.Errorf("failed to insert availability slots: %w", err)
	}
	return len(res.InsertedIDs), nil
}

func allDuplicateKey(bwe mongo.BulkWriteException) bool {
	for _, we := range bwe.WriteErrors {
		if !mongo.IsDuplicateKeyError(we.WriteError) {
			return false
		}
	}
	return len(bwe.WriteErrors) > 0
}

func (r *mongoSlotRepo) GetByID(ctx context.Context, id string) (*models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.AvailabilitySlot
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *mongoSlotRepo) Book(ctx context.Context, id string, attendee models.UserRef, at time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "isBooked": false}
	update := bson.M{"$set": bson.M{
		"isBooked": true,
		"bookedBy": attendee,
		"bookedAt": at,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to book slot: %w", err)
	}
	return res.MatchedCount > 0, nil
}
