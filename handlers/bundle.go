// File: slotwise/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking session endpoints.
	InitiateSession   gin.HandlerFunc
	GetCandidateDates gin.HandlerFunc
	GetTimeSlots      gin.HandlerFunc
	ChooseDate        gin.HandlerFunc
	ChooseTime        gin.HandlerFunc
	ClearSelection    gin.HandlerFunc
	ConfirmBooking    gin.HandlerFunc
	CancelSession     gin.HandlerFunc

	// Provider schedule-publishing endpoints.
	PublishWindows    gin.HandlerFunc
	PublishExceptions gin.HandlerFunc
	DeleteException   gin.HandlerFunc
}
