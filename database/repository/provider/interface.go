// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"bookline/database"
	"bookline/models"
)

// ErrNotFound is returned when no provider matches the query.
var ErrNotFound = errors.New("provider not found")

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// Create inserts a new provider record.
	Create(ctx context.Context, provider *models.Provider) error
	// GetByID retrieves a provider by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	// GetByEmail retrieves a provider by its email address.
	GetByEmail(ctx context.Context, email string) (*models.Provider, error)
	// GetByName retrieves the first provider whose name contains the given
	// fragment, case-insensitively.
	GetByName(ctx context.Context, name string) (*models.Provider, error)
	// GetByServiceType returns providers registered under a service type.
	GetByServiceType(ctx context.Context, serviceType string) ([]models.Provider, error)
	// UpdateTokenHash stores the hash of the provider's current auth token.
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a MongoDB-backed ProviderRepository.
func NewMongoProviderRepo() ProviderRepository {
	db := database.MongoClient.Database("bookline")
	return &mongoProviderRepo{
		coll: db.Collection("providers"),
	}
}
