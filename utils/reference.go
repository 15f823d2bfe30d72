package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewBookingReference generates a display/audit token for a booking. The
// timestamp prefix keeps references human-readable; the random suffix keeps
// two bookings within the same second from colliding.
func NewBookingReference(t time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
	return fmt.Sprintf("REF_%s_%s", t.Format("20060102_150405"), suffix)
}
