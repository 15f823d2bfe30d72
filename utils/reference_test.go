package utils

import (
	"regexp"
	"testing"
	"time"
)

func TestNewBookingReferenceFormat(t *testing.T) {
	at := time.Date(2025, 5, 26, 14, 30, 5, 0, time.UTC)
	ref := NewBookingReference(at)

	pattern := regexp.MustCompile(`^REF_20250526_143005_[0-9a-f]{6}$`)
	if !pattern.MatchString(ref) {
		t.Errorf("reference %q does not match expected format", ref)
	}
}

func TestNewBookingReferenceUniqueWithinSecond(t *testing.T) {
	at := time.Date(2025, 5, 26, 14, 30, 5, 0, time.UTC)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ref := NewBookingReference(at)
		if seen[ref] {
			t.Fatalf("duplicate reference %q generated for same timestamp", ref)
		}
		seen[ref] = true
	}
}
