// File: booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"slotwise/config"
	reservationRepo "slotwise/database/repository/reservation"
	"slotwise/models"
	"slotwise/services/scheduling"
	"slotwise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateSession fetches a fresh registry snapshot for the service, creates
// a new booking session with an empty selection, stores it in Redis, and
// returns it together with the candidate dates over the configured horizon.
func (s *DefaultBookingSessionService) InitiateSession(serviceID, userID string) (*models.BookingSession, []models.CandidateDate, error) {
	ctx := context.Background()

	snapshot := s.Loader.Load(ctx, serviceID)
	session := models.BookingSession{
		SessionID: uuid.New().String(),
		ServiceID: serviceID,
		UserID:    userID,
		Snapshot:  snapshot,
		Selection: models.SelectionState{},
		CreatedAt: time.Now(),
	}

	if err := s.saveSession(ctx, &session); err != nil {
		return nil, nil, err
	}

	engine := scheduling.NewEngine(snapshot, config.ReferenceLocation())
	dates := engine.ListCandidateDates(s.today(), config.AppConfig.BookingHorizonDays)
	return &session, dates, nil
}

// GetCandidateDates recomputes the candidate list from the session snapshot.
func (s *DefaultBookingSessionService) GetCandidateDates(sessionID string) ([]models.CandidateDate, error) {
	session, err := s.loadSession(context.Background(), sessionID)
	if err != nil {
		return nil, err
	}
	engine := scheduling.NewEngine(session.Snapshot, config.ReferenceLocation())
	return engine.ListCandidateDates(s.today(), config.AppConfig.BookingHorizonDays), nil
}

// GetTimeSlots recomputes the bookable slots for a date from the session
// snapshot.
func (s *DefaultBookingSessionService) GetTimeSlots(sessionID, date string) ([]models.TimeSlot, error) {
	session, err := s.loadSession(context.Background(), sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := scheduling.ParseDate(date, config.ReferenceLocation()); err != nil {
		return nil, err
	}
	engine := scheduling.NewEngine(session.Snapshot, config.ReferenceLocation())
	return engine.ListTimeSlots(date), nil
}

// ChooseDate runs the validated date transition and persists the result.
// Rejections propagate as TransitionErrors with the session untouched.
func (s *DefaultBookingSessionService) ChooseDate(sessionID, date string) (models.SelectionState, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return models.SelectionState{}, err
	}

	machine := s.machineFor(session)
	if err := machine.ChooseDate(date); err != nil {
		return session.Selection, err
	}

	session.Selection = machine.State()
	if err := s.saveSession(ctx, session); err != nil {
		return models.SelectionState{}, err
	}
	return session.Selection, nil
}

// ChooseTime runs the validated time transition and persists the result.
func (s *DefaultBookingSessionService) ChooseTime(sessionID, clock string) (models.SelectionState, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return models.SelectionState{}, err
	}

	machine := s.machineFor(session)
	if err := machine.ChooseTime(clock); err != nil {
		return session.Selection, err
	}

	session.Selection = machine.State()
	if err := s.saveSession(ctx, session); err != nil {
		return models.SelectionState{}, err
	}
	return session.Selection, nil
}

// ClearSelection returns the session to the Empty selection state.
func (s *DefaultBookingSessionService) ClearSelection(sessionID string) (models.SelectionState, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return models.SelectionState{}, err
	}

	machine := s.machineFor(session)
	machine.Clear()
	session.Selection = machine.State()
	if err := s.saveSession(ctx, session); err != nil {
		return models.SelectionState{}, err
	}
	return session.Selection, nil
}

// ConfirmBooking re-validates the completed selection against a freshly
// fetched snapshot, hands the payload to the submission collaborator, and
// on success enqueues a confirmation notice and discards the session. If
// the slot was taken in the interim the session reverts to DateChosen with
// the time cleared and the rejection propagates.
func (s *DefaultBookingSessionService) ConfirmBooking(sessionID, notes string) (*models.BookingConfirmation, error) {
	ctx := context.Background()
	logger := utils.GetLogger()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// A refetch fully replaces the snapshot before any further queries.
	fresh := s.Loader.Load(ctx, session.ServiceID)
	freshEngine := scheduling.NewEngine(fresh, config.ReferenceLocation())

	machine := scheduling.NewSelectionMachine(freshEngine, s.today(),
		config.AppConfig.BookingHorizonDays, session.Selection)
	if err := machine.Finalize(freshEngine); err != nil {
		session.Snapshot = fresh
		session.Selection = machine.State()
		if saveErr := s.saveSession(ctx, session); saveErr != nil {
			logger.Error("failed to persist reverted session", zap.Error(saveErr))
		}
		return nil, err
	}

	payload := models.SubmissionPayload{
		ServiceID: session.ServiceID,
		UserID:    session.UserID,
		Date:      session.Selection.Date,
		Time:      session.Selection.Time,
		Notes:     notes,
	}
	confirmation, err := s.Submission.Submit(ctx, payload)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			// Lost the write-side race: same recovery as a stale slot.
			machine.ClearTime()
			session.Snapshot = fresh
			session.Selection = machine.State()
			if saveErr := s.saveSession(ctx, session); saveErr != nil {
				logger.Error("failed to persist reverted session", zap.Error(saveErr))
			}
			return nil, scheduling.NewTimeUnavailable(payload.Time)
		}
		return nil, fmt.Errorf("failed to submit booking: %w", err)
	}

	if s.NotificationSvc != nil {
		notice := models.ConfirmationPayload{
			BookingID: confirmation.BookingID,
			ServiceID: confirmation.ServiceID,
			UserID:    session.UserID,
			Date:      confirmation.Date,
			Time:      confirmation.Time,
		}
		if err := s.NotificationSvc.EnqueueBookingConfirmation(notice); err != nil {
			logger.Warn("failed to enqueue booking confirmation notice",
				zap.String("bookingId", confirmation.BookingID), zap.Error(err))
		}
		s.scheduleReminder(confirmation, session.UserID)
	}

	utils.GetSessionCacheClient().Del(ctx, utils.SessionCachePrefix+sessionID)
	return confirmation, nil
}

// CancelSession discards the session outright.
func (s *DefaultBookingSessionService) CancelSession(sessionID string) error {
	ctx := context.Background()
	if err := utils.GetSessionCacheClient().Del(ctx, utils.SessionCachePrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// scheduleReminder queues the pre-appointment reminder, skipping bookings
// that start too soon for the configured lead time. Failures only log; the
// booking is already confirmed.
func (s *DefaultBookingSessionService) scheduleReminder(confirmation *models.BookingConfirmation, userID string) {
	logger := utils.GetLogger()
	loc := config.ReferenceLocation()

	day, err := scheduling.ParseDate(confirmation.Date, loc)
	if err != nil {
		return
	}
	startMinute, err := scheduling.ToMinutes(confirmation.Time)
	if err != nil {
		return
	}
	startsAt := day.Add(time.Duration(startMinute) * time.Minute)
	fireAt := startsAt.Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if !fireAt.After(time.Now().In(loc)) {
		return
	}

	payload := models.ReminderPayload{
		BookingID: confirmation.BookingID,
		ServiceID: confirmation.ServiceID,
		UserID:    userID,
		Date:      confirmation.Date,
		Time:      confirmation.Time,
	}
	if err := s.NotificationSvc.EnqueueBookingReminder(payload, fireAt); err != nil {
		logger.Warn("failed to enqueue booking reminder",
			zap.String("bookingId", confirmation.BookingID), zap.Error(err))
	}
}

func (s *DefaultBookingSessionService) today() time.Time {
	return time.Now().In(config.ReferenceLocation())
}

func (s *DefaultBookingSessionService) machineFor(session *models.BookingSession) *scheduling.SelectionMachine {
	engine := scheduling.NewEngine(session.Snapshot, config.ReferenceLocation())
	return scheduling.NewSelectionMachine(engine, s.today(),
		config.AppConfig.BookingHorizonDays, session.Selection)
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := utils.GetSessionCacheClient().Get(ctx, utils.SessionCachePrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("booking session not found or expired: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	if err := utils.GetSessionCacheClient().Set(ctx, utils.SessionCachePrefix+session.SessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}
