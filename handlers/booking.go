// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	recordsRepo "bookline/database/repository/records"
	"bookline/services/booking"
)

// BookingHandler exposes the booking commit operation and record lookups.
type BookingHandler struct {
	Engine  booking.Engine
	Records recordsRepo.BookingRecordRepository
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(engine booking.Engine, records recordsRepo.BookingRecordRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Records: records, Logger: logger}
}

// BookSlotHandler commits a booking against a validated slot.
func (h *BookingHandler) BookSlotHandler(c *gin.Context) {
	var req booking.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Engine.BookSlot(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrProviderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Provider not found"})
		case errors.Is(err, booking.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Time slot not found"})
		case errors.Is(err, booking.ErrNoCapacity):
			// Expected under contention: the slot filled between validation
			// and commit. Callers should re-run validation.
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Time slot has no remaining capacity"})
		default:
			h.Logger.Error("booking commit failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Booking service unavailable, please try again later"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBookingHandler looks up a confirmed booking by its reference.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	reference := c.Param("reference")
	record, err := h.Records.GetByReference(c.Request.Context(), reference)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}
