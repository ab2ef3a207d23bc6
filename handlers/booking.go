package handlers

import (
	"errors"
	"net/http"

	"slotwise/services/booking"
	"slotwise/services/scheduling"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking-session flow over HTTP.
type BookingHandler struct {
	Service booking.BookingSessionService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// InitiateSession opens a booking session for a service and returns the
// candidate dates over the horizon. An empty candidate list means no
// availability is configured (or every feed degraded).
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
		UserID    string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, dates, err := h.Service.InitiateSession(input.ServiceID, input.UserID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to initiate booking session", err.Error())
		return
	}

	resp := gin.H{
		"sessionID":      session.SessionID,
		"candidateDates": dates,
	}
	if len(dates) == 0 {
		resp["availabilityError"] = "no availability configured"
	}
	if len(session.Snapshot.DegradedSources) > 0 {
		resp["degradedSources"] = session.Snapshot.DegradedSources
	}
	c.JSON(http.StatusOK, resp)
}

// GetCandidateDates returns the candidate dates for an open session.
func (h *BookingHandler) GetCandidateDates(c *gin.Context) {
	sessionID := c.Param("sessionID")
	dates, err := h.Service.GetCandidateDates(sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "candidateDates": dates})
}

// GetTimeSlots returns the bookable slots for a date within the session.
func (h *BookingHandler) GetTimeSlots(c *gin.Context) {
	sessionID := c.Param("sessionID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "query parameter 'date' is required")
		return
	}

	slots, err := h.Service.GetTimeSlots(sessionID, date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "date": date, "timeSlots": slots})
}

// ChooseDate applies the date transition.
func (h *BookingHandler) ChooseDate(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	state, err := h.Service.ChooseDate(sessionID, input.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "selection": state})
}

// ChooseTime applies the time transition.
func (h *BookingHandler) ChooseTime(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	state, err := h.Service.ChooseTime(sessionID, input.Time)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "selection": state})
}

// ClearSelection empties the in-progress selection.
func (h *BookingHandler) ClearSelection(c *gin.Context) {
	sessionID := c.Param("sessionID")
	state, err := h.Service.ClearSelection(sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "selection": state})
}

// ConfirmBooking finalizes the selection and hands off to submission.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Notes string `json:"notes"`
	}
	// Notes are optional; an empty or absent body is fine.
	_ = c.ShouldBindJSON(&input)

	confirmation, err := h.Service.ConfirmBooking(sessionID, input.Notes)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": confirmation})
}

// CancelSession discards the session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.CancelSession(sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "cancelled": true})
}

// respondError maps service errors onto HTTP: rejected transitions are 409
// with their code, malformed input is 400, a missing session is 404.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var transition *scheduling.TransitionError
	if errors.As(err, &transition) {
		utils.JSONRejection(c, http.StatusConflict, transition.Code, transition.Message)
		return
	}
	var parse *scheduling.ParseError
	if errors.As(err, &parse) {
		utils.JSONRejection(c, http.StatusBadRequest, parse.Code, parse.Error())
		return
	}
	if errors.Is(err, redis.Nil) {
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
		return
	}
	h.Logger.Error("booking request failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
}
