package models

// ValidationResult is the closed set of validation outcomes.
type ValidationResult string

const (
	Valid                ValidationResult = "valid"
	ValidWithAlternative ValidationResult = "valid_with_alternative"
	InvalidTimeSlot      ValidationResult = "invalid_time_slot"
	InvalidProvider      ValidationResult = "invalid_provider"
	InvalidService       ValidationResult = "invalid_service"
	MissingRequiredData  ValidationResult = "missing_required_data"
	ProviderNotAvailable ValidationResult = "provider_not_available"
	NoCapacity           ValidationResult = "no_capacity"
)

// Next actions consumed by the orchestration layer.
const (
	NextActionProceedToBooking = "proceed_to_booking"
	NextActionReturnError      = "return_error"
)

// Machine-readable reasons for date rejections. The validation_result for all
// three is invalid_time_slot; callers decide how finely to surface them.
const (
	ReasonDateInPast        = "date_in_past"
	ReasonDateTooFar        = "date_too_far"
	ReasonDateInvalidFormat = "date_invalid_format"
)

// IntentData is a validation request extracted from a user utterance.
type IntentData struct {
	ProviderName string `json:"provider_name"`
	ServiceType  string `json:"service_type"`
	Date         string `json:"date"`      // "2006-01-02"
	TimeSlot     string `json:"time_slot"` // free-form: "morning", "2:30 pm", "14:00"
	Confidence   string `json:"confidence,omitempty"`
}

// ValidatedBooking is the payload a caller hands to the booking endpoint
// after a valid (or valid-with-alternative) outcome.
type ValidatedBooking struct {
	ProviderName     string `json:"provider_name"`
	ServiceType      string `json:"service_type"`
	Date             string `json:"date"`
	TimeSlot         string `json:"time_slot"`
	AvailableSpots   int    `json:"available_spots"`
	BookingReference string `json:"booking_reference"`
}

// ValidationResponse is the structured outcome of intent validation.
// Every failure path carries a non-empty ErrorMessage.
type ValidationResponse struct {
	IsValid          bool              `json:"is_valid"`
	ValidationResult ValidationResult  `json:"validation_result"`
	ErrorMessage     string            `json:"error_message,omitempty"`
	Reason           string            `json:"reason,omitempty"`
	Suggestions      []string          `json:"suggestions,omitempty"`
	ValidatedData    *ValidatedBooking `json:"validated_data,omitempty"`
	AlternativeSlots []AlternativeSlot `json:"alternative_slots,omitempty"`
	NextAction       string            `json:"next_action"`
}
