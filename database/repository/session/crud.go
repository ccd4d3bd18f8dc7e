// File: database/repository/session/crud.go
package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"mindhaven/models"
)

func (r *mongoSessionRepo) Create(ctx context.Context, sess *models.Session) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	now := time.Now()
	sess.CreatedAt = now
	sess.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, sess); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *mongoSessionRepo) GetByID(ctx context.Context, id string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sess models.Session
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (r *mongoSessionRepo) UpdateStatusIf(ctx context.Context, id string, from []models.SessionStatus, to models.SessionStatus, scheduledDate *time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":            id,
		"sessionStatus": bson.M{"$in": from},
	}
	set := bson.M{
		"sessionStatus": to,
		"updatedAt":     time.Now(),
	}
	if scheduledDate != nil {
		set["sessionDate"] = *scheduledDate
	}

	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update session status: %w", err)
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing session from a status precondition failure.
		if exists, err := r.exists(ctx, id); err != nil {
			return err
		} else if !exists {
			return mongo.ErrNoDocuments
		}
		return ErrNoMatch
	}
	return nil
}

func (r *mongoSessionRepo) MarkPaymentCompleted(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"paymentStatus": models.PaymentCompleted,
		"updatedAt":     time.Now(),
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark payment completed: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSessionRepo) SetRecommendation(ctx context.Context, id, text string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"recommendations": text,
		"updatedAt":       time.Now(),
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set recommendation: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSessionRepo) exists(ctx context.Context, id string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to check session existence: %w", err)
	}
	return n > 0, nil
}
