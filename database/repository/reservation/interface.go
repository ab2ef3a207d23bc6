// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"errors"

	"slotwise/database"
	"slotwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when a guarded insert loses to an overlapping
// reservation that landed first.
var ErrSlotTaken = errors.New("requested interval overlaps an existing reservation")

// ReservationRepository is the occupancy feed plus the write side owned by
// the booking-submission collaborator. The resolution engine itself only
// ever reads.
type ReservationRepository interface {
	GetReservations(ctx context.Context, serviceID string) ([]models.Reservation, error)
	// InsertIfFree inserts the reservation only if no stored reservation for
	// the same service and date overlaps its interval; otherwise ErrSlotTaken.
	InsertIfFree(ctx context.Context, res models.Reservation) error
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	return &mongoReservationRepo{
		coll: database.Database().Collection("reservations"),
	}
}
