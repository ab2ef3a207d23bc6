// File: database/repository/availability/mongo.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"slotwise/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (repo *mongoAvailabilityRepo) GetAvailabilityWindows(ctx context.Context, serviceID string) ([]models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"serviceId": serviceID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability windows for service %s: %w", serviceID, err)
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("error decoding availability windows: %w", err)
	}
	return windows, nil
}

// ReplaceForService swaps the published window set for a service wholesale.
func (repo *mongoAvailabilityRepo) ReplaceForService(ctx context.Context, serviceID string, windows []models.AvailabilityWindow) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteMany(ctx, bson.M{"serviceId": serviceID}); err != nil {
		return fmt.Errorf("failed to clear availability windows for service %s: %w", serviceID, err)
	}
	if len(windows) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(windows))
	for _, w := range windows {
		w.ServiceID = serviceID
		docs = append(docs, w)
	}
	if _, err := repo.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert availability windows for service %s: %w", serviceID, err)
	}
	return nil
}
