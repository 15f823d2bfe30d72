package validation

import (
	"testing"

	"bookline/models"
)

func slot(hhmm string, capacity, booked int) models.Slot {
	return models.Slot{
		ProviderID: "prov-1",
		Date:       "2025-05-26",
		Time:       hhmm,
		Capacity:   capacity,
		Booked:     booked,
	}
}

func TestRankAlternativesOrdersByDistance(t *testing.T) {
	slots := []models.Slot{
		slot("09:00", 3, 1),
		slot("10:00", 2, 2), // full, must be excluded
		slot("11:30", 2, 0),
		slot("08:00", 1, 0),
	}

	got := RankAlternatives("2025-05-26", "10:00", slots)

	wantTimes := []string{"09:00", "11:30", "08:00"}
	if len(got) != len(wantTimes) {
		t.Fatalf("expected %d alternatives, got %d", len(wantTimes), len(got))
	}
	for i, want := range wantTimes {
		if got[i].Time != want {
			t.Errorf("rank %d: got %s, want %s", i, got[i].Time, want)
		}
	}

	wantDiffs := []int{60, 90, 120}
	for i, want := range wantDiffs {
		if got[i].TimeDifferenceMinutes != want {
			t.Errorf("rank %d: diff = %d, want %d", i, got[i].TimeDifferenceMinutes, want)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].TimeDifferenceMinutes < got[i-1].TimeDifferenceMinutes {
			t.Fatalf("alternatives not sorted by non-decreasing distance")
		}
	}
	for _, alt := range got {
		if alt.AvailableSpots <= 0 {
			t.Errorf("alternative %s has no spare capacity", alt.Time)
		}
	}
}

func TestRankAlternativesStableOnTies(t *testing.T) {
	// 09:00 and 11:00 are both 60 minutes from 10:00; provisioning order wins.
	slots := []models.Slot{
		slot("11:00", 2, 0),
		slot("09:00", 2, 0),
	}

	got := RankAlternatives("2025-05-26", "10:00", slots)
	if len(got) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(got))
	}
	if got[0].Time != "11:00" || got[1].Time != "09:00" {
		t.Errorf("tie not broken by enumeration order: got %s, %s", got[0].Time, got[1].Time)
	}
}

func TestRankAlternativesFallsBackToNoon(t *testing.T) {
	slots := []models.Slot{
		slot("09:00", 1, 0),
		slot("13:00", 1, 0),
	}

	// An un-normalizable expression passed through; reference becomes 12:00.
	got := RankAlternatives("2025-05-26", "whenever", slots)
	if len(got) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(got))
	}
	if got[0].Time != "13:00" {
		t.Errorf("nearest to noon should be 13:00, got %s", got[0].Time)
	}
	if got[0].TimeDifferenceMinutes != 60 || got[1].TimeDifferenceMinutes != 180 {
		t.Errorf("unexpected distances: %d, %d",
			got[0].TimeDifferenceMinutes, got[1].TimeDifferenceMinutes)
	}
}

func TestRankAlternativesEmptyWhenAllFull(t *testing.T) {
	slots := []models.Slot{
		slot("09:00", 1, 1),
		slot("10:00", 2, 2),
	}
	if got := RankAlternatives("2025-05-26", "10:00", slots); len(got) != 0 {
		t.Fatalf("expected no alternatives, got %d", len(got))
	}
}
