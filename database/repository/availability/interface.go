// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"slotwise/database"
	"slotwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository is the availability-window feed for a service.
type AvailabilityRepository interface {
	GetAvailabilityWindows(ctx context.Context, serviceID string) ([]models.AvailabilityWindow, error)
	ReplaceForService(ctx context.Context, serviceID string, windows []models.AvailabilityWindow) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &mongoAvailabilityRepo{
		coll: database.Database().Collection("availability_windows"),
	}
}
