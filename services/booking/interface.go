// File: services/booking/interface.go
package booking

import (
	"context"

	providerRepo "bookline/database/repository/provider"
	recordsRepo "bookline/database/repository/records"
	slotRepo "bookline/database/repository/slot"
	"bookline/models"
)

// BookRequest identifies the slot a caller wants to commit, using the
// validated payload from intent validation.
type BookRequest struct {
	ProviderName string `json:"provider_name" binding:"required"`
	ServiceType  string `json:"service_type"`
	Date         string `json:"date" binding:"required"`
	TimeSlot     string `json:"time_slot" binding:"required"`
}

// Engine is the only state-mutating entry point: it consumes exactly one
// capacity unit of the chosen slot and records the confirmed booking.
type Engine interface {
	BookSlot(ctx context.Context, req BookRequest) (*models.BookingResult, error)
}

// DefaultEngine implements Engine over the injected repositories.
type DefaultEngine struct {
	Providers providerRepo.ProviderRepository
	Slots     slotRepo.SlotRepository
	Records   recordsRepo.BookingRecordRepository
}
