package models

import "time"

// Booking represents a confirmed booking record.
type Booking struct {
	ID               string    `bson:"id" json:"id"`
	ProviderID       string    `bson:"providerId" json:"provider_id"`
	ProviderName     string    `bson:"providerName" json:"provider_name"`
	ServiceType      string    `bson:"serviceType" json:"service_type"`
	Date             string    `bson:"date" json:"date"`
	TimeSlot         string    `bson:"timeSlot" json:"time_slot"`
	BookingReference string    `bson:"bookingReference" json:"booking_reference"`
	Status           string    `bson:"status" json:"status"` // "confirmed"
	BookedAt         time.Time `bson:"bookedAt" json:"booked_at"`
}

// BookingResult is returned by the commit operation.
type BookingResult struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	BookingReference  string `json:"booking_reference"`
	RemainingCapacity int    `json:"remaining_capacity"`
}
