// File: handlers/intent.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookline/services/intent"
	"bookline/services/validation"
)

// IntentHandler wires the free-text intent extractor to the validator.
type IntentHandler struct {
	Extractor intent.Extractor
	Validator validation.IntentValidator
	Logger    *zap.Logger
}

// NewIntentHandler constructs an IntentHandler. Extractor may be nil when no
// Gemini key is configured; the endpoints then report the feature as disabled.
func NewIntentHandler(extractor intent.Extractor, validator validation.IntentValidator, logger *zap.Logger) *IntentHandler {
	return &IntentHandler{Extractor: extractor, Validator: validator, Logger: logger}
}

type utteranceInput struct {
	Text string `json:"text" binding:"required"`
}

// ExtractIntentHandler turns a free-text utterance into structured IntentData.
func (h *IntentHandler) ExtractIntentHandler(c *gin.Context) {
	if h.Extractor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "intent extraction is not configured"})
		return
	}

	var input utteranceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	data, err := h.Extractor.ExtractIntent(c.Request.Context(), input.Text)
	if err != nil {
		h.Logger.Error("intent extraction failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to extract intent, please try again later"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// AssistHandler chains extraction and validation: utterance in, validation
// response out. Booking still requires an explicit commit call.
func (h *IntentHandler) AssistHandler(c *gin.Context) {
	if h.Extractor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "intent extraction is not configured"})
		return
	}

	var input utteranceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	data, err := h.Extractor.ExtractIntent(c.Request.Context(), input.Text)
	if err != nil {
		h.Logger.Error("intent extraction failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to extract intent, please try again later"})
		return
	}

	resp := h.Validator.ValidateIntent(c.Request.Context(), *data)
	c.JSON(http.StatusOK, gin.H{"intent": data, "validation": resp})
}
