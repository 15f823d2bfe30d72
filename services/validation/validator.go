// File: services/validation/validator.go
package validation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"bookline/models"
	"bookline/utils"
)

const dateLayout = "2006-01-02"

var requiredFields = []string{"provider_name", "service_type", "date", "time_slot"}

// Canned prompts for each missing field.
var fieldPrompts = map[string]string{
	"provider_name": "Please specify which doctor, salon, or service provider you'd like to book with",
	"service_type":  "Please specify what type of service you need (medical, dental, beauty, etc.)",
	"date":          "Please specify when you'd like to book (tomorrow, next Friday, specific date)",
	"time_slot":     "Please specify what time you prefer (morning, afternoon, or specific time like 2:30 PM)",
}

// ValidateIntent runs the field-completeness, provider, date and slot checks
// in order, short-circuiting on the first failure.
func (v *DefaultIntentValidator) ValidateIntent(ctx context.Context, intent models.IntentData) *models.ValidationResponse {
	if missing := missingFields(intent); len(missing) > 0 {
		return &models.ValidationResponse{
			IsValid:          false,
			ValidationResult: models.MissingRequiredData,
			ErrorMessage:     fmt.Sprintf("Missing required information: %s", strings.Join(missing, ", ")),
			Suggestions:      missingFieldSuggestions(missing),
			NextAction:       models.NextActionReturnError,
		}
	}

	match, err := v.Catalog.Lookup(ctx, intent.ProviderName, intent.ServiceType)
	if err != nil {
		zap.L().Error("provider catalogue lookup failed",
			zap.String("provider", intent.ProviderName), zap.Error(err))
		return collaboratorUnavailable("Unable to verify the provider right now")
	}
	if resp := v.checkProvider(intent, match); resp != nil {
		return resp
	}

	if resp := v.checkDateBounds(intent.Date); resp != nil {
		return resp
	}

	return v.resolveSlot(ctx, intent, match.Provider)
}

func missingFields(intent models.IntentData) []string {
	values := map[string]string{
		"provider_name": intent.ProviderName,
		"service_type":  intent.ServiceType,
		"date":          intent.Date,
		"time_slot":     intent.TimeSlot,
	}
	var missing []string
	for _, field := range requiredFields {
		if strings.TrimSpace(values[field]) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

func missingFieldSuggestions(missing []string) []string {
	suggestions := make([]string, 0, len(missing))
	for _, field := range missing {
		if prompt, ok := fieldPrompts[field]; ok {
			suggestions = append(suggestions, prompt)
		}
	}
	return suggestions
}

func (v *DefaultIntentValidator) checkProvider(intent models.IntentData, match *CatalogResult) *models.ValidationResponse {
	if !match.KnownService {
		return &models.ValidationResponse{
			IsValid:          false,
			ValidationResult: models.InvalidProvider,
			ErrorMessage:     fmt.Sprintf("Unknown service type: %s", intent.ServiceType),
			Suggestions: []string{
				fmt.Sprintf("Available service types: %s", strings.Join(models.KnownServiceTypes, ", ")),
			},
			NextAction: models.NextActionReturnError,
		}
	}
	if match.Provider == nil {
		suggestions := []string{"Please check the provider name and try again"}
		if len(match.ProviderNames) > 0 {
			suggestions = []string{
				fmt.Sprintf("Providers offering %s services: %s",
					intent.ServiceType, strings.Join(match.ProviderNames, ", ")),
			}
		}
		return &models.ValidationResponse{
			IsValid:          false,
			ValidationResult: models.InvalidProvider,
			ErrorMessage:     fmt.Sprintf("Provider '%s' does not offer %s services", intent.ProviderName, intent.ServiceType),
			Suggestions:      suggestions,
			NextAction:       models.NextActionReturnError,
		}
	}
	return nil
}

// checkDateBounds rejects unparseable, past and too-far-ahead dates. All
// three carry validation_result invalid_time_slot with a distinct reason so
// the caller chooses how finely to surface them.
func (v *DefaultIntentValidator) checkDateBounds(date string) *models.ValidationResponse {
	bookingDate, err := time.Parse(dateLayout, date)
	if err != nil {
		return dateRejection(
			models.ReasonDateInvalidFormat,
			fmt.Sprintf("Invalid date format: %s", date),
			"Please provide the date in YYYY-MM-DD format",
		)
	}

	now := v.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if bookingDate.Before(today) {
		return dateRejection(
			models.ReasonDateInPast,
			"Cannot book appointments in the past",
			"Please choose a future date",
		)
	}

	maxAdvance := v.maxAdvanceDays()
	if bookingDate.After(now.AddDate(0, 0, maxAdvance)) {
		return dateRejection(
			models.ReasonDateTooFar,
			fmt.Sprintf("Cannot book more than %d days in advance", maxAdvance),
			"Please choose a closer date",
		)
	}
	return nil
}

func (v *DefaultIntentValidator) resolveSlot(ctx context.Context, intent models.IntentData, provider *models.Provider) *models.ValidationResponse {
	slots, err := v.Slots.GetByProviderAndDate(ctx, provider.ID, intent.Date)
	if err != nil {
		zap.L().Error("slot store lookup failed",
			zap.String("provider", provider.ID), zap.String("date", intent.Date), zap.Error(err))
		return collaboratorUnavailable("Unable to fetch available slots right now")
	}

	if len(slots) == 0 {
		suggestions := []string{"Please choose a different date"}
		if dates, err := v.Slots.GetKnownDates(ctx, provider.ID); err == nil && len(dates) > 0 {
			suggestions = append(suggestions,
				fmt.Sprintf("Dates with open slots: %s", strings.Join(dates, ", ")))
		}
		return &models.ValidationResponse{
			IsValid:          false,
			ValidationResult: models.NoCapacity,
			ErrorMessage:     fmt.Sprintf("No available slots for %s on %s", provider.Name, intent.Date),
			Suggestions:      suggestions,
			NextAction:       models.NextActionReturnError,
		}
	}

	normalized := NormalizeTime(intent.TimeSlot)

	for _, slot := range slots {
		if slot.Time == normalized && slot.Available() > 0 {
			return &models.ValidationResponse{
				IsValid:          true,
				ValidationResult: models.Valid,
				ValidatedData:    v.validatedPayload(intent, slot.Time, slot.Available()),
				NextAction:       models.NextActionProceedToBooking,
			}
		}
	}

	alternatives := RankAlternatives(intent.Date, normalized, slots)
	if len(alternatives) > 0 {
		nearest := alternatives[0]
		if len(alternatives) > MaxSuggestedAlternatives {
			alternatives = alternatives[:MaxSuggestedAlternatives]
		}
		return &models.ValidationResponse{
			IsValid:          true,
			ValidationResult: models.ValidWithAlternative,
			ErrorMessage:     fmt.Sprintf("Time slot %s is not available (full or doesn't exist)", intent.TimeSlot),
			ValidatedData:    v.validatedPayload(intent, nearest.Time, nearest.AvailableSpots),
			AlternativeSlots: alternatives,
			Suggestions: []string{
				fmt.Sprintf("Your preferred time %s is not available.", intent.TimeSlot),
				fmt.Sprintf("I've found the nearest available slot: %s", nearest.Time),
				"You can also choose from other available times listed below.",
			},
			NextAction: models.NextActionProceedToBooking,
		}
	}

	return &models.ValidationResponse{
		IsValid:          false,
		ValidationResult: models.NoCapacity,
		ErrorMessage:     fmt.Sprintf("No available slots on %s. All time slots are fully booked.", intent.Date),
		Suggestions:      []string{"Please try a different date"},
		NextAction:       models.NextActionReturnError,
	}
}

func (v *DefaultIntentValidator) validatedPayload(intent models.IntentData, hhmm string, available int) *models.ValidatedBooking {
	return &models.ValidatedBooking{
		ProviderName:     intent.ProviderName,
		ServiceType:      intent.ServiceType,
		Date:             intent.Date,
		TimeSlot:         hhmm,
		AvailableSpots:   available,
		BookingReference: utils.NewBookingReference(v.now()),
	}
}

func dateRejection(reason, message, suggestion string) *models.ValidationResponse {
	return &models.ValidationResponse{
		IsValid:          false,
		ValidationResult: models.InvalidTimeSlot,
		Reason:           reason,
		ErrorMessage:     message,
		Suggestions:      []string{suggestion},
		NextAction:       models.NextActionReturnError,
	}
}

func collaboratorUnavailable(message string) *models.ValidationResponse {
	return &models.ValidationResponse{
		IsValid:          false,
		ValidationResult: models.ProviderNotAvailable,
		ErrorMessage:     message,
		Suggestions:      []string{"Please try again later"},
		NextAction:       models.NextActionReturnError,
	}
}
