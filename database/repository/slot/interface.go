// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"bookline/database"
	"bookline/models"
)

var (
	// ErrSlotNotFound is returned when no slot exists for the given
	// (provider, date, time) key.
	ErrSlotNotFound = errors.New("time slot not found")
	// ErrSlotFull is returned when the slot exists but has no remaining
	// capacity at commit time.
	ErrSlotFull = errors.New("time slot has no remaining capacity")
)

// SlotRepository defines methods for time-slot data access. Reads may run
// with unbounded concurrency; IncrementBooked is the only mutation and must
// be atomic per (provider, date, time) key.
type SlotRepository interface {
	// CreateMany inserts a batch of slots and returns their IDs.
	CreateMany(ctx context.Context, slots []models.Slot) ([]string, error)
	// GetByProviderAndDate lists a provider's slots for one date, in
	// provisioning order.
	GetByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Slot, error)
	// GetKnownDates lists the distinct dates a provider has slots for.
	GetKnownDates(ctx context.Context, providerID string) ([]string, error)
	// IncrementBooked atomically consumes one unit of capacity and returns
	// the updated slot. Fails with ErrSlotNotFound or ErrSlotFull.
	IncrementBooked(ctx context.Context, providerID, date, hhmm string) (*models.Slot, error)
	// DeleteByID removes a single slot.
	DeleteByID(ctx context.Context, providerID, slotID string) error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a MongoDB-backed SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	db := database.MongoClient.Database("bookline")
	return &mongoSlotRepo{
		coll: db.Collection("timeslots"),
	}
}
