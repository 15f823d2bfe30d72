// File: services/validation/time.go
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Word forms map to fixed anchor times.
var wordTimes = map[string]string{
	"morning":   "09:00",
	"afternoon": "14:00",
	"evening":   "18:00",
	"noon":      "12:00",
}

var (
	amPmPattern  = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)
	clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})`)
)

// NormalizeTime canonicalizes a free-form time expression into a 24-hour
// HH:MM string. Unrecognized input passes through trimmed and lowercased; it
// will simply fail to match any slot downstream, so no error is raised here.
func NormalizeTime(expression string) string {
	expr := strings.ToLower(strings.TrimSpace(expression))

	if hhmm, ok := wordTimes[expr]; ok {
		return hhmm
	}

	if m := amPmPattern.FindStringSubmatch(expr); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		switch {
		case m[3] == "pm" && hour != 12:
			hour += 12
		case m[3] == "am" && hour == 12:
			hour = 0
		}
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}

	if m := clockPattern.FindStringSubmatch(expr); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}

	return expr
}
