// File: services/provider/catalog.go
package provider

import (
	"context"
	"strings"

	"bookline/models"
	"bookline/services/validation"
)

// Lookup implements validation.ProviderCatalog. A provider matches when the
// requested name and the registered name contain each other case-insensitively
// in either direction, so "Dr. Anya Patel" matches a request for "patel" and
// a request for "Dr. Anya Patel's clinic" matches "Dr. Anya Patel".
func (s *DefaultService) Lookup(ctx context.Context, providerName, serviceType string) (*validation.CatalogResult, error) {
	serviceType = strings.ToLower(strings.TrimSpace(serviceType))
	if !models.IsKnownServiceType(serviceType) {
		return &validation.CatalogResult{KnownService: false}, nil
	}

	providers, err := s.Repo.GetByServiceType(ctx, serviceType)
	if err != nil {
		return nil, err
	}

	result := &validation.CatalogResult{KnownService: true}
	requested := strings.ToLower(strings.TrimSpace(providerName))
	for i := range providers {
		registered := strings.ToLower(providers[i].Name)
		result.ProviderNames = append(result.ProviderNames, providers[i].Name)
		if result.Provider == nil &&
			(strings.Contains(registered, requested) || strings.Contains(requested, registered)) {
			result.Provider = &providers[i]
		}
	}
	return result, nil
}
