// File: services/validation/interface.go
package validation

import (
	"context"
	"time"

	slotRepo "bookline/database/repository/slot"
	"bookline/models"
)

// CatalogResult describes the outcome of a provider/service lookup.
type CatalogResult struct {
	// KnownService is false when the service type is not part of the catalogue.
	KnownService bool
	// Provider is the matched provider, nil when no name matched.
	Provider *models.Provider
	// ProviderNames lists providers registered under the service type, used
	// for suggestions when the requested name did not match.
	ProviderNames []string
}

// ProviderCatalog resolves whether a named provider offers a service type.
type ProviderCatalog interface {
	Lookup(ctx context.Context, providerName, serviceType string) (*CatalogResult, error)
}

// IntentValidator checks a booking intent against the provider catalogue and
// slot store. Collaborator failures are folded into the structured response;
// the method never returns a transport-level error.
type IntentValidator interface {
	ValidateIntent(ctx context.Context, intent models.IntentData) *models.ValidationResponse
}

// DefaultIntentValidator implements IntentValidator.
type DefaultIntentValidator struct {
	Catalog ProviderCatalog
	Slots   slotRepo.SlotRepository

	// MaxAdvanceDays bounds how far ahead a booking may be made; 0 means the
	// default of 90 days.
	MaxAdvanceDays int

	// Clock overrides the time source; nil means time.Now.
	Clock func() time.Time
}

func (v *DefaultIntentValidator) now() time.Time {
	if v.Clock != nil {
		return v.Clock()
	}
	return time.Now()
}

func (v *DefaultIntentValidator) maxAdvanceDays() int {
	if v.MaxAdvanceDays > 0 {
		return v.MaxAdvanceDays
	}
	return 90
}
