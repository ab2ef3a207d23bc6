package booking

import (
	"context"
	"errors"
	"testing"

	reservationRepo "slotwise/database/repository/reservation"
	"slotwise/models"
	"slotwise/services/scheduling"
)

type stubReservationRepo struct {
	inserted *models.Reservation
	err      error
}

func (s *stubReservationRepo) GetReservations(ctx context.Context, serviceID string) ([]models.Reservation, error) {
	return nil, nil
}

func (s *stubReservationRepo) InsertIfFree(ctx context.Context, res models.Reservation) error {
	if s.err != nil {
		return s.err
	}
	s.inserted = &res
	return nil
}

func TestSubmitBuildsHalfOpenInterval(t *testing.T) {
	repo := &stubReservationRepo{}
	svc := &DefaultSubmissionService{Reservations: repo}

	conf, err := svc.Submit(context.Background(), models.SubmissionPayload{
		ServiceID: "svc-1",
		UserID:    "user-1",
		Date:      "2024-06-10",
		Time:      "13:00",
		Notes:     "first visit",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if repo.inserted == nil {
		t.Fatal("reservation was not written")
	}
	if repo.inserted.IntervalStart != 780 || repo.inserted.IntervalEnd != 810 {
		t.Errorf("interval = [%d, %d), want [780, 810)", repo.inserted.IntervalStart, repo.inserted.IntervalEnd)
	}
	if repo.inserted.Status != models.ReservationConfirmed {
		t.Errorf("status = %s, want confirmed", repo.inserted.Status)
	}
	if repo.inserted.Notes != "first visit" {
		t.Errorf("notes = %q", repo.inserted.Notes)
	}
	if conf.BookingID == "" || conf.BookingID != repo.inserted.ID {
		t.Errorf("confirmation id %q does not match reservation id %q", conf.BookingID, repo.inserted.ID)
	}
	if conf.Time != "13:00" || conf.Date != "2024-06-10" {
		t.Errorf("confirmation echo = %s %s", conf.Date, conf.Time)
	}
}

func TestSubmitRejectsMalformedTime(t *testing.T) {
	svc := &DefaultSubmissionService{Reservations: &stubReservationRepo{}}

	_, err := svc.Submit(context.Background(), models.SubmissionPayload{
		ServiceID: "svc-1", Date: "2024-06-10", Time: "1pm",
	})

	var perr *scheduling.ParseError
	if !errors.As(err, &perr) || perr.Code != "malformedTime" {
		t.Fatalf("err = %v, want malformedTime parse error", err)
	}
}

func TestSubmitPropagatesSlotTaken(t *testing.T) {
	svc := &DefaultSubmissionService{Reservations: &stubReservationRepo{err: reservationRepo.ErrSlotTaken}}

	_, err := svc.Submit(context.Background(), models.SubmissionPayload{
		ServiceID: "svc-1", Date: "2024-06-10", Time: "13:00",
	})
	if !errors.Is(err, reservationRepo.ErrSlotTaken) {
		t.Fatalf("err = %v, want ErrSlotTaken", err)
	}
}
