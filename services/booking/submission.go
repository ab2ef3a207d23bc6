// File: booking/submission.go
package booking

import (
	"context"
	"time"

	reservationRepo "slotwise/database/repository/reservation"
	"slotwise/models"
	"slotwise/services/scheduling"

	"github.com/google/uuid"
)

// SubmissionService is the booking-submission collaborator boundary. It owns
// write-side conflict handling; the resolution engine's re-validation is only
// a best-effort client-side guard.
type SubmissionService interface {
	Submit(ctx context.Context, payload models.SubmissionPayload) (*models.BookingConfirmation, error)
}

// DefaultSubmissionService confirms bookings against the reservation store.
type DefaultSubmissionService struct {
	Reservations reservationRepo.ReservationRepository
}

// Submit turns the finalized payload into a confirmed reservation, rejecting
// with reservationRepo.ErrSlotTaken if another confirmation landed first.
func (s *DefaultSubmissionService) Submit(ctx context.Context, payload models.SubmissionPayload) (*models.BookingConfirmation, error) {
	startMinute, err := scheduling.ToMinutes(payload.Time)
	if err != nil {
		return nil, err
	}

	res := models.Reservation{
		ID:            uuid.New().String(),
		ServiceID:     payload.ServiceID,
		UserID:        payload.UserID,
		Date:          payload.Date,
		IntervalStart: startMinute,
		IntervalEnd:   startMinute + models.SlotDurationMinutes,
		Status:        models.ReservationConfirmed,
		Notes:         payload.Notes,
		CreatedAt:     time.Now(),
	}
	if err := s.Reservations.InsertIfFree(ctx, res); err != nil {
		return nil, err
	}

	return &models.BookingConfirmation{
		BookingID: res.ID,
		ServiceID: res.ServiceID,
		Date:      res.Date,
		Time:      payload.Time,
		CreatedAt: res.CreatedAt,
	}, nil
}
