// File: database/repository/exception/mongo.go
package exceptionRepo

import (
	"context"
	"fmt"
	"time"

	"slotwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoExceptionRepo) GetExceptions(ctx context.Context, serviceID string) ([]models.Exception, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"serviceId": serviceID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exceptions for service %s: %w", serviceID, err)
	}
	defer cursor.Close(ctx)

	var exceptions []models.Exception
	if err := cursor.All(ctx, &exceptions); err != nil {
		return nil, fmt.Errorf("error decoding exceptions: %w", err)
	}
	return exceptions, nil
}

// UpsertException enforces the at-most-one-exception-per-date invariant at
// the store: the (serviceId, date) pair is the upsert key.
func (repo *mongoExceptionRepo) UpsertException(ctx context.Context, exc models.Exception) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"serviceId": exc.ServiceID, "date": exc.Date}
	update := bson.M{"$set": exc}
	if _, err := repo.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to upsert exception for service %s on %s: %w", exc.ServiceID, exc.Date, err)
	}
	return nil
}

func (repo *mongoExceptionRepo) DeleteException(ctx context.Context, serviceID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"serviceId": serviceID, "date": date}); err != nil {
		return fmt.Errorf("failed to delete exception for service %s on %s: %w", serviceID, date, err)
	}
	return nil
}
