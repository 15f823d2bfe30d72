// File: services/validation/alternatives.go
package validation

import (
	"sort"
	"time"

	"bookline/models"
)

// MaxSuggestedAlternatives caps how many ranked alternatives are attached to
// a validation response. The ranking itself is never truncated.
const MaxSuggestedAlternatives = 5

const slotInstantLayout = "2006-01-02 15:04"

// RankAlternatives ranks a date's slots with spare capacity by absolute time
// distance to the requested HH:MM. When the requested time cannot be combined
// with the date (an un-normalizable expression passed through), the reference
// falls back to noon on that date. The sort is stable so equidistant slots
// keep their provisioning order.
func RankAlternatives(date, requestedHHMM string, slots []models.Slot) []models.AlternativeSlot {
	reference, err := time.Parse(slotInstantLayout, date+" "+requestedHHMM)
	if err != nil {
		reference, err = time.Parse(slotInstantLayout, date+" 12:00")
		if err != nil {
			return nil
		}
	}

	var alternatives []models.AlternativeSlot
	for _, slot := range slots {
		if slot.Available() <= 0 {
			continue
		}
		instant, err := time.Parse(slotInstantLayout, date+" "+slot.Time)
		if err != nil {
			continue
		}
		diff := instant.Sub(reference)
		if diff < 0 {
			diff = -diff
		}
		alternatives = append(alternatives, models.AlternativeSlot{
			Time:                  slot.Time,
			AvailableSpots:        slot.Available(),
			Capacity:              slot.Capacity,
			TimeDifferenceMinutes: int(diff.Minutes()),
		})
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].TimeDifferenceMinutes < alternatives[j].TimeDifferenceMinutes
	})
	return alternatives
}
