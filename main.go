// File: slotwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotwise/config"
	"slotwise/cron"
	"slotwise/database"
	availabilityRepo "slotwise/database/repository/availability"
	exceptionRepo "slotwise/database/repository/exception"
	reservationRepo "slotwise/database/repository/reservation"
	"slotwise/handlers"
	"slotwise/middleware"
	"slotwise/routes"
	"slotwise/services/booking"
	"slotwise/services/notification"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories (the three source feeds plus the reservation write side).
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	excRepo := exceptionRepo.NewMongoExceptionRepo()
	resRepo := reservationRepo.NewMongoReservationRepo()

	// Services.
	notificationService := notification.NewAsynqNotificationService()
	bookingService := &booking.DefaultBookingSessionService{
		Loader: &booking.SnapshotLoader{
			Availability: availRepo,
			Exceptions:   excRepo,
			Reservations: resRepo,
		},
		Submission:      &booking.DefaultSubmissionService{Reservations: resRepo},
		NotificationSvc: notificationService,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	scheduleHandler := handlers.NewScheduleHandler(availRepo, excRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		InitiateSession:   bookingHandler.InitiateSession,
		GetCandidateDates: bookingHandler.GetCandidateDates,
		GetTimeSlots:      bookingHandler.GetTimeSlots,
		ChooseDate:        bookingHandler.ChooseDate,
		ChooseTime:        bookingHandler.ChooseTime,
		ClearSelection:    bookingHandler.ClearSelection,
		ConfirmBooking:    bookingHandler.ConfirmBooking,
		CancelSession:     bookingHandler.CancelSession,

		PublishWindows:    scheduleHandler.PublishWindows,
		PublishExceptions: scheduleHandler.PublishExceptions,
		DeleteException:   scheduleHandler.DeleteException,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background notification worker and health monitor.
	cron.InitNotificationWorker()
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := notificationService.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close notification client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
