// File: services/booking/engine.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	providerRepo "bookline/database/repository/provider"
	"bookline/models"
	"bookline/services/validation"
	"bookline/utils"
)

// BookSlot commits a booking: it resolves the provider, atomically consumes
// one unit of the slot's capacity and writes the confirmed booking record.
// The capacity mutation is a single guarded increment in the slot store, so
// concurrent callers contending for the last unit never both succeed.
func (e *DefaultEngine) BookSlot(ctx context.Context, req BookRequest) (*models.BookingResult, error) {
	provider, err := e.Providers.GetByName(ctx, req.ProviderName)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to resolve provider %q: %w", req.ProviderName, err)
	}

	hhmm := validation.NormalizeTime(req.TimeSlot)
	slot, err := e.Slots.IncrementBooked(ctx, provider.ID, req.Date, hhmm)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := models.Booking{
		ProviderID:       provider.ID,
		ProviderName:     provider.Name,
		ServiceType:      provider.ServiceType,
		Date:             req.Date,
		TimeSlot:         hhmm,
		BookingReference: utils.NewBookingReference(now),
		Status:           "confirmed",
		BookedAt:         now,
	}
	if err := e.Records.Create(ctx, &booking); err != nil {
		// Capacity is already consumed; the booking stands even if the audit
		// record could not be written.
		zap.L().Warn("failed to persist booking record",
			zap.String("reference", booking.BookingReference), zap.Error(err))
	}

	return &models.BookingResult{
		Success: true,
		Message: fmt.Sprintf("Booking confirmed for %s (%s) on %s at %s.",
			provider.Name, provider.ServiceType, req.Date, hhmm),
		BookingReference:  booking.BookingReference,
		RemainingCapacity: slot.Available(),
	}, nil
}
