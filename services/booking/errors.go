// File: services/booking/errors.go
package booking

import (
	"errors"

	slotRepo "bookline/database/repository/slot"
)

var (
	// ErrProviderNotFound is returned when the provider reference does not
	// resolve to a registered provider.
	ErrProviderNotFound = errors.New("provider not found")
	// ErrSlotNotFound is returned when the (date, time) pair does not exist
	// for the provider.
	ErrSlotNotFound = slotRepo.ErrSlotNotFound
	// ErrNoCapacity is returned when the slot is full at commit time. This is
	// a normal outcome under contention, not a fault.
	ErrNoCapacity = slotRepo.ErrSlotFull
)
