// File: handlers/slots.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	providerRepo "bookline/database/repository/provider"
	provider "bookline/services/provider"
	"bookline/utils"
)

// SetupSlotsHandler provisions a day's slots for the authenticated provider.
func (h *ProviderHandler) SetupSlotsHandler(c *gin.Context) {
	providerID := c.GetString("providerID")
	if providerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var schedule provider.DaySchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	slots, err := h.Service.SetupSlots(c.Request.Context(), providerID, schedule)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to set up slots", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"date": schedule.Date, "slots": slots})
}

// GetAvailableSlotsHandler lists a provider's slots for a date with their
// remaining capacity.
func (h *ProviderHandler) GetAvailableSlotsHandler(c *gin.Context) {
	name := c.Param("name")
	date := c.Param("date")

	p, views, err := h.Service.AvailableSlots(c.Request.Context(), name, date)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
			return
		}
		h.Logger.Error("slot listing failed",
			zap.String("name", name), zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch available slots", "please try again later")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"provider":        p.Name,
		"date":            date,
		"available_slots": views,
	})
}
