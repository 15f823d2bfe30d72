// File: services/intent/interface.go
package intent

import (
	"context"

	"bookline/models"
)

// Extractor pulls a structured booking intent out of a free-text utterance
// ("book me a dentist appointment tomorrow morning with Dr. Patel"). It is an
// external collaborator: the validator treats whatever it returns as an
// ordinary IntentData payload.
type Extractor interface {
	ExtractIntent(ctx context.Context, text string) (*models.IntentData, error)
}
