package routes

import (
	"net/http"
	"time"

	"slotwise/handlers"
	"slotwise/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking session flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.InitiateSession)
		bookingGroup.GET("/session/:sessionID/dates", hb.GetCandidateDates)
		bookingGroup.GET("/session/:sessionID/slots", hb.GetTimeSlots)
		bookingGroup.PUT("/session/:sessionID/date", hb.ChooseDate)
		bookingGroup.PUT("/session/:sessionID/time", hb.ChooseTime)
		bookingGroup.DELETE("/session/:sessionID/selection", hb.ClearSelection)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterScheduleRoutes sets up the provider schedule-publishing endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	scheduleGroup := r.Group("/api/services")
	{
		scheduleGroup.PUT("/:serviceID/windows", hb.PublishWindows)
		scheduleGroup.PUT("/:serviceID/exceptions", hb.PublishExceptions)
		scheduleGroup.DELETE("/:serviceID/exceptions/:date", hb.DeleteException)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
}
