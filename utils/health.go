package utils

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// HealthCheck pings the datastore with a short deadline.
func HealthCheck(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx, nil)
}
