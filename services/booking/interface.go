package booking

import (
	"slotwise/models"
	"slotwise/services/notification"
)

// BookingSessionService manages a stateful booking session: one immutable
// registry snapshot plus the buyer's validated (date, time) selection,
// stored in Redis under the session ID.
type BookingSessionService interface {
	InitiateSession(serviceID, userID string) (*models.BookingSession, []models.CandidateDate, error)
	GetCandidateDates(sessionID string) ([]models.CandidateDate, error)
	GetTimeSlots(sessionID, date string) ([]models.TimeSlot, error)
	ChooseDate(sessionID, date string) (models.SelectionState, error)
	ChooseTime(sessionID, clock string) (models.SelectionState, error)
	ClearSelection(sessionID string) (models.SelectionState, error)
	ConfirmBooking(sessionID, notes string) (*models.BookingConfirmation, error)
	CancelSession(sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Loader          *SnapshotLoader
	Submission      SubmissionService
	NotificationSvc notification.NotificationService
}
