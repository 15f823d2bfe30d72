// File: database/repository/records/interface.go
package recordsRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"bookline/database"
	"bookline/models"
)

// BookingRecordRepository persists confirmed booking records for audit and
// retrieval. It never participates in capacity accounting.
type BookingRecordRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
	GetByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Booking, error)
}

type mongoRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoRecordRepo constructs a MongoDB-backed BookingRecordRepository.
func NewMongoRecordRepo() BookingRecordRepository {
	db := database.MongoClient.Database("bookline")
	return &mongoRecordRepo{
		coll: db.Collection("bookings"),
	}
}
