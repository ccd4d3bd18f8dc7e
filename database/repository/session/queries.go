// File: database/repository/session/queries.go
package sessionRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindhaven/models"
)

// List views sort newest session first.
var listSort = options.Find().SetSort(bson.D{{Key: "sessionDate", Value: -1}})

func (r *mongoSessionRepo) ListByAttendee(ctx context.Context, attendee models.UserRef) ([]models.Session, error) {
	return r.list(ctx, bson.M{"attendeeRef": attendee})
}

func (r *mongoSessionRepo) ListByProfessional(ctx context.Context, professional models.UserRef) ([]models.Session, error) {
	return r.list(ctx, bson.M{"professionalRef": professional})
}

func (r *mongoSessionRepo) list(ctx context.Context, filter bson.M) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, listSort)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
