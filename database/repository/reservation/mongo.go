// File: database/repository/reservation/mongo.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"slotwise/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (repo *mongoReservationRepo) GetReservations(ctx context.Context, serviceID string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"serviceId": serviceID,
		"status": bson.M{"$in": []models.ReservationStatus{
			models.ReservationPending,
			models.ReservationConfirmed,
		}},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations for service %s: %w", serviceID, err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}

// InsertIfFree checks for an overlapping reservation on the same service and
// date, then inserts. Half-open semantics: back-to-back intervals do not
// conflict.
func (repo *mongoReservationRepo) InsertIfFree(ctx context.Context, res models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conflictFilter := bson.M{
		"serviceId":     res.ServiceID,
		"date":          res.Date,
		"intervalStart": bson.M{"$lt": res.IntervalEnd},
		"intervalEnd":   bson.M{"$gt": res.IntervalStart},
	}
	count, err := repo.coll.CountDocuments(ctx, conflictFilter)
	if err != nil {
		return fmt.Errorf("failed to check reservation conflicts: %w", err)
	}
	if count > 0 {
		return ErrSlotTaken
	}

	if _, err := repo.coll.InsertOne(ctx, res); err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}
