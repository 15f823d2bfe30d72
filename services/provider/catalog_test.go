package provider

import (
	"context"
	"errors"
	"testing"

	providerRepo "bookline/database/repository/provider"
	"bookline/models"
)

// stubRepo serves a fixed set of providers keyed by service type.
type stubRepo struct {
	byService map[string][]models.Provider
	err       error
}

func (r *stubRepo) Create(ctx context.Context, p *models.Provider) error { return nil }

func (r *stubRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	return nil, providerRepo.ErrNotFound
}

func (r *stubRepo) GetByEmail(ctx context.Context, email string) (*models.Provider, error) {
	return nil, providerRepo.ErrNotFound
}

func (r *stubRepo) GetByName(ctx context.Context, name string) (*models.Provider, error) {
	return nil, providerRepo.ErrNotFound
}

func (r *stubRepo) GetByServiceType(ctx context.Context, serviceType string) ([]models.Provider, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byService[serviceType], nil
}

func (r *stubRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error { return nil }

func catalogService(providers ...models.Provider) *DefaultService {
	byService := make(map[string][]models.Provider)
	for _, p := range providers {
		byService[p.ServiceType] = append(byService[p.ServiceType], p)
	}
	return &DefaultService{Repo: &stubRepo{byService: byService}}
}

func TestLookupUnknownServiceType(t *testing.T) {
	svc := catalogService()

	result, err := svc.Lookup(context.Background(), "Dr. Patel", "astrology")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if result.KnownService {
		t.Error("expected KnownService=false for unlisted service type")
	}
}

func TestLookupMatchesEitherDirection(t *testing.T) {
	svc := catalogService(
		models.Provider{ID: "p1", Name: "Dr. Anya Patel", ServiceType: models.ServiceMedical},
		models.Provider{ID: "p2", Name: "Dr. Luis Gomez", ServiceType: models.ServiceMedical},
	)

	cases := []struct {
		name      string
		requested string
		wantID    string
	}{
		{"request is substring of registered", "patel", "p1"},
		{"registered is substring of request", "Dr. Anya Patel's downtown clinic", "p1"},
		{"exact match ignoring case", "DR. LUIS GOMEZ", "p2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.Lookup(context.Background(), tc.requested, "medical")
			if err != nil {
				t.Fatalf("Lookup failed: %v", err)
			}
			if !result.KnownService {
				t.Fatal("expected KnownService=true")
			}
			if result.Provider == nil {
				t.Fatalf("no provider matched %q", tc.requested)
			}
			if result.Provider.ID != tc.wantID {
				t.Errorf("matched provider %s, want %s", result.Provider.ID, tc.wantID)
			}
		})
	}
}

func TestLookupNoMatchStillListsProviders(t *testing.T) {
	svc := catalogService(
		models.Provider{ID: "p1", Name: "Dr. Anya Patel", ServiceType: models.ServiceMedical},
		models.Provider{ID: "p2", Name: "Dr. Luis Gomez", ServiceType: models.ServiceMedical},
	)

	result, err := svc.Lookup(context.Background(), "Dr. Nobody", "medical")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if result.Provider != nil {
		t.Errorf("unexpected match: %+v", result.Provider)
	}
	if len(result.ProviderNames) != 2 {
		t.Errorf("ProviderNames = %v, want both registered providers", result.ProviderNames)
	}
}

func TestLookupPropagatesRepositoryError(t *testing.T) {
	storeDown := errors.New("connection refused")
	svc := &DefaultService{Repo: &stubRepo{err: storeDown}}

	_, err := svc.Lookup(context.Background(), "Dr. Patel", "medical")
	if !errors.Is(err, storeDown) {
		t.Fatalf("err = %v, want repository error", err)
	}
}
