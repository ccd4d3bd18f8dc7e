package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mindhaven/middleware"
	"mindhaven/models"
	"mindhaven/services/availability"
	"mindhaven/utils"
)

// AvailabilityHandler exposes slot publishing and booking over HTTP.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// PublishSlots handles POST /api/availability/publish (professional). Duplicate
// windows are dropped silently; only the created count comes back.
func (h *AvailabilityHandler) PublishSlots(c *gin.Context) {
	professional, ok := middleware.CallerRef(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Professional not authenticated"})
		return
	}

	var req models.PublishSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Error("Invalid slot publish request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.PublishSlots(c.Request.Context(), professional, req.Slots)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to publish slots", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"created": created})
}

// ListOpenSlots handles GET /api/availability/open/:professional.
func (h *AvailabilityHandler) ListOpenSlots(c *gin.Context) {
	professional := models.UserRef(c.Param("professional"))
	if !professional.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid professional reference"})
		return
	}

	slots, err := h.Service.ListOpenSlots(c.Request.Context(), professional)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to list slots", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// BookSlot handles POST /api/availability/book/:slotID (attendee).
// 404 when the slot is unknown, 409 when the race was lost.
func (h *AvailabilityHandler) BookSlot(c *gin.Context) {
	attendee, ok := middleware.CallerRef(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Attendee not authenticated"})
		return
	}

	slot, err := h.Service.BookSlot(c.Request.Context(), c.Param("slotID"), attendee)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to book slot", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot": slot})
}
