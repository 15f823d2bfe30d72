// File: database/repository/slot/crud.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookline/models"
)

func (r *mongoSlotRepo) CreateMany(ctx context.Context, slots []models.Slot) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(slots))
	ids := make([]string, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		ids[i] = slot.ID
		docs[i] = slot
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("failed to insert slots: %w", err)
	}
	return ids, nil
}

func (r *mongoSlotRepo) GetByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"providerId": providerID, "date": date})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *mongoSlotRepo) GetKnownDates(ctx context.Context, providerID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	raw, err := r.coll.Distinct(ctx, "date", bson.M{"providerId": providerID})
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			dates = append(dates, s)
		}
	}
	return dates, nil
}

// IncrementBooked consumes one capacity unit in a single guarded update: the
// filter only matches while booked < capacity, so two callers contending for
// the last unit can never both succeed.
func (r *mongoSlotRepo) IncrementBooked(ctx context.Context, providerID, date, hhmm string) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"date":       date,
		"time":       hhmm,
		"$expr":      bson.M{"$lt": bson.A{"$booked", "$capacity"}},
	}
	update := bson.M{"$inc": bson.M{"booked": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Slot
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to increment booked count: %w", err)
	}

	// No match: distinguish a missing slot from a full one.
	count, err := r.coll.CountDocuments(ctx, bson.M{
		"providerId": providerID,
		"date":       date,
		"time":       hhmm,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check slot existence: %w", err)
	}
	if count == 0 {
		return nil, ErrSlotNotFound
	}
	return nil, ErrSlotFull
}

func (r *mongoSlotRepo) DeleteByID(ctx context.Context, providerID, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": slotID, "providerId": providerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrSlotNotFound
	}
	return nil
}
