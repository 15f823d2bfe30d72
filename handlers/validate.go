// File: handlers/validate.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookline/models"
	"bookline/services/validation"
)

// ValidationHandler exposes the intent validation engine over HTTP.
type ValidationHandler struct {
	Validator validation.IntentValidator
	Logger    *zap.Logger
}

// NewValidationHandler constructs a ValidationHandler.
func NewValidationHandler(v validation.IntentValidator, logger *zap.Logger) *ValidationHandler {
	return &ValidationHandler{Validator: v, Logger: logger}
}

// ValidateIntentHandler validates a booking intent. Validation failures are
// structured 200 responses, never transport faults.
func (h *ValidationHandler) ValidateIntentHandler(c *gin.Context) {
	var intent models.IntentData
	if err := c.ShouldBindJSON(&intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp := h.Validator.ValidateIntent(c.Request.Context(), intent)
	h.Logger.Debug("intent validated",
		zap.String("provider", intent.ProviderName),
		zap.String("result", string(resp.ValidationResult)))
	c.JSON(http.StatusOK, resp)
}
