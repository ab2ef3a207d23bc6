// File: database/repository/exception/interface.go
package exceptionRepo

import (
	"context"

	"slotwise/database"
	"slotwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ExceptionRepository is the date-override feed for a service.
type ExceptionRepository interface {
	GetExceptions(ctx context.Context, serviceID string) ([]models.Exception, error)
	UpsertException(ctx context.Context, exc models.Exception) error
	DeleteException(ctx context.Context, serviceID, date string) error
}

type mongoExceptionRepo struct {
	coll *mongo.Collection
}

// NewMongoExceptionRepo constructs a new MongoDB ExceptionRepository.
func NewMongoExceptionRepo() ExceptionRepository {
	return &mongoExceptionRepo{
		coll: database.Database().Collection("exceptions"),
	}
}
