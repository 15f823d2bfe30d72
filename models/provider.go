package models

import "time"

// Known service types a provider may register under.
const (
	ServiceMedical    = "medical"
	ServiceDental     = "dental"
	ServiceBeauty     = "beauty"
	ServiceAutomotive = "automotive"
	ServiceLegal      = "legal"
	ServiceFitness    = "fitness"
)

// KnownServiceTypes is the fixed catalogue of service types, in display order.
var KnownServiceTypes = []string{
	ServiceMedical,
	ServiceDental,
	ServiceBeauty,
	ServiceAutomotive,
	ServiceLegal,
	ServiceFitness,
}

// IsKnownServiceType reports whether serviceType is part of the fixed catalogue.
func IsKnownServiceType(serviceType string) bool {
	for _, s := range KnownServiceTypes {
		if s == serviceType {
			return true
		}
	}
	return false
}

// Provider represents a bookable service provider (doctor, dentist, salon, ...).
type Provider struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	ServiceType  string    `bson:"serviceType" json:"service_type"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
}

// PublicProvider is the projection of a provider exposed to callers.
type PublicProvider struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	ServiceType string `json:"service_type"`
}

// Public strips credentials and internal-only fields.
func (p *Provider) Public() PublicProvider {
	return PublicProvider{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		ServiceType: p.ServiceType,
	}
}
