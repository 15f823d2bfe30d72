package models

// Slot is a bookable (date, time) unit for one provider with a fixed capacity.
// Invariant: 0 <= Booked <= Capacity.
type Slot struct {
	ID         string `bson:"id" json:"id"`
	ProviderID string `bson:"providerId" json:"provider_id"`
	Date       string `bson:"date" json:"date"` // "2006-01-02"
	Time       string `bson:"time" json:"time"` // "15:04", minute granularity
	Capacity   int    `bson:"capacity" json:"capacity"`
	Booked     int    `bson:"booked" json:"booked"`
}

// Available returns the remaining capacity of the slot.
func (s Slot) Available() int {
	return s.Capacity - s.Booked
}

// SlotView is the availability projection returned to callers.
type SlotView struct {
	Time           string `json:"time"`
	AvailableSpots int    `json:"available_spots"`
	TotalCapacity  int    `json:"total_capacity"`
}

// AlternativeSlot is a slot with spare capacity ranked by temporal distance
// to a requested time. Derived per request, never persisted.
type AlternativeSlot struct {
	Time                  string `json:"time"`
	AvailableSpots        int    `json:"available_spots"`
	Capacity              int    `json:"capacity"`
	TimeDifferenceMinutes int    `json:"time_difference_minutes"`
}
