// File: handlers/provider.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	providerRepo "bookline/database/repository/provider"
	"bookline/models"
	provider "bookline/services/provider"
	"bookline/utils"
)

// ProviderHandler exposes provider registration, login and lookup.
type ProviderHandler struct {
	Service provider.Service
	Logger  *zap.Logger
}

// NewProviderHandler constructs a ProviderHandler.
func NewProviderHandler(svc provider.Service, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{Service: svc, Logger: logger}
}

// RegisterProviderHandler creates a provider account.
func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	var p models.Provider
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.Register(c.Request.Context(), &p)
	if err != nil {
		switch {
		case errors.Is(err, provider.ErrEmailTaken):
			utils.JSONError(c, http.StatusConflict, "registration failed", err.Error())
		case errors.Is(err, provider.ErrUnknownServiceType):
			utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		default:
			h.Logger.Error("provider registration failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "registration failed", "please try again later")
		}
		return
	}

	c.JSON(http.StatusCreated, created.Public())
}

// AuthenticateProviderHandler logs a provider in and returns a JWT.
func (h *ProviderHandler) AuthenticateProviderHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	token, p, err := h.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, provider.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "authentication failed", "invalid email or password")
			return
		}
		h.Logger.Error("provider authentication failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "authentication failed", "please try again later")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "provider": p.Public()})
}

// GetProviderByNameHandler resolves a provider by name fragment.
func (h *ProviderHandler) GetProviderByNameHandler(c *gin.Context) {
	name := c.Param("name")
	p, err := h.Service.GetByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
			return
		}
		h.Logger.Error("provider lookup failed", zap.String("name", name), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "provider lookup failed", "please try again later")
		return
	}
	c.JSON(http.StatusOK, p.Public())
}
