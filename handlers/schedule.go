package handlers

import (
	"net/http"

	"slotwise/config"
	availabilityRepo "slotwise/database/repository/availability"
	exceptionRepo "slotwise/database/repository/exception"
	"slotwise/models"
	"slotwise/services/scheduling"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler lets a provider publish the availability windows and
// date exceptions the resolution engine reads.
type ScheduleHandler struct {
	Availability availabilityRepo.AvailabilityRepository
	Exceptions   exceptionRepo.ExceptionRepository
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(avail availabilityRepo.AvailabilityRepository, exc exceptionRepo.ExceptionRepository) *ScheduleHandler {
	return &ScheduleHandler{Availability: avail, Exceptions: exc}
}

// PublishWindows replaces the service's published window set wholesale.
func (h *ScheduleHandler) PublishWindows(c *gin.Context) {
	serviceID := c.Param("serviceID")
	var input struct {
		Windows []models.AvailabilityWindow `json:"windows" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Availability.ReplaceForService(c.Request.Context(), serviceID, input.Windows); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to publish availability windows", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"serviceID": serviceID, "published": len(input.Windows)})
}

// PublishExceptions upserts date overrides for the service. Each date holds
// at most one exception; publishing replaces any existing one for that date.
func (h *ScheduleHandler) PublishExceptions(c *gin.Context) {
	serviceID := c.Param("serviceID")
	var input struct {
		Exceptions []models.Exception `json:"exceptions" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	for _, exc := range input.Exceptions {
		if err := validateException(exc); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid exception", err.Error())
			return
		}
	}

	for _, exc := range input.Exceptions {
		exc.ServiceID = serviceID
		if err := h.Exceptions.UpsertException(c.Request.Context(), exc); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to publish exception", err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"serviceID": serviceID, "published": len(input.Exceptions)})
}

// DeleteException removes the override for one date.
func (h *ScheduleHandler) DeleteException(c *gin.Context) {
	serviceID := c.Param("serviceID")
	date := c.Param("date")
	if _, err := scheduling.ParseDate(date, config.ReferenceLocation()); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", date)
		return
	}

	if err := h.Exceptions.DeleteException(c.Request.Context(), serviceID, date); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete exception", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"serviceID": serviceID, "date": date, "deleted": true})
}

func validateException(exc models.Exception) error {
	if _, err := scheduling.ParseDate(exc.Date, config.ReferenceLocation()); err != nil {
		return err
	}
	switch exc.Kind {
	case models.ExceptionClosed:
		return nil
	case models.ExceptionSpecialHours:
		if exc.RangeStart >= exc.RangeEnd {
			return scheduling.NewMalformedTime(
				scheduling.FormatMinutes(exc.RangeStart) + "-" + scheduling.FormatMinutes(exc.RangeEnd))
		}
		return nil
	default:
		return scheduling.NewMalformedDate(string(exc.Kind))
	}
}
