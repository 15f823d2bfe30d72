// File: services/provider/interface.go
package provider

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"

	providerRepo "bookline/database/repository/provider"
	slotRepo "bookline/database/repository/slot"
	"bookline/models"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("a provider with this email already exists")
	// ErrUnknownServiceType is returned when registering under a service type
	// outside the fixed catalogue.
	ErrUnknownServiceType = errors.New("unknown service type")
)

// SlotSpec describes one slot to provision for a date.
type SlotSpec struct {
	Time     string `json:"time" binding:"required"`
	Capacity int    `json:"capacity" binding:"required"`
}

// DaySchedule is the payload for provisioning a provider's slots on one date.
type DaySchedule struct {
	Date  string     `json:"date" binding:"required"`
	Slots []SlotSpec `json:"slots" binding:"required"`
}

// Service manages provider accounts and their slot schedules.
type Service interface {
	Register(ctx context.Context, provider *models.Provider) (*models.Provider, error)
	Authenticate(ctx context.Context, email, password string) (token string, p *models.Provider, err error)
	GetByName(ctx context.Context, name string) (*models.Provider, error)
	SetupSlots(ctx context.Context, providerID string, schedule DaySchedule) ([]models.Slot, error)
	AvailableSlots(ctx context.Context, providerName, date string) (*models.Provider, []models.SlotView, error)
}

// DefaultService implements Service and the validation.ProviderCatalog
// contract consumed by the intent validator.
type DefaultService struct {
	Repo  providerRepo.ProviderRepository
	Slots slotRepo.SlotRepository
	// Cache holds provider-by-name lookups; nil disables caching.
	Cache *redis.Client
}
