package services

import (
	"math"
	"strconv"
	"strings"
)

// Derived-field calculators. Each one reads only the fields of the row being
// written, so recomputing on every save cannot race with sibling writes.
// A nil result means "insufficient inputs", which is distinct from zero and
// is stored as NULL rather than 0.

const minutesPerDay = 24 * 60

// ParseTimeOfDay parses an "HH:MM" or "HH:MM:SS" clock value into minutes
// since midnight.
func ParseTimeOfDay(value string) (int, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, false
	}
	parts := strings.Split(trimmed, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

// elapsedMinutes applies the overnight rule: an end clock earlier than the
// start clock means the session crossed midnight, so a day is added before
// subtracting.
func elapsedMinutes(start string, end string) (int, bool) {
	startMinutes, ok := ParseTimeOfDay(start)
	if !ok {
		return 0, false
	}
	endMinutes, ok := ParseTimeOfDay(end)
	if !ok {
		return 0, false
	}
	if endMinutes < startMinutes {
		endMinutes += minutesPerDay
	}
	return endMinutes - startMinutes, true
}

// SessionDurationMinutes derives a workout session's duration in whole
// minutes, or nil when either endpoint is absent.
func SessionDurationMinutes(start string, end string) *int {
	minutes, ok := elapsedMinutes(start, end)
	if !ok {
		return nil
	}
	return &minutes
}

// StudyDurationHours derives a study session's duration in fractional hours
// rounded to two decimals, or nil when either endpoint is absent.
func StudyDurationHours(start string, end string) *float64 {
	minutes, ok := elapsedMinutes(start, end)
	if !ok {
		return nil
	}
	hours := RoundTo2(float64(minutes) / 60.0)
	return &hours
}

// MacroContribution computes per100g * amountGrams / 100 for a nullable
// catalog value. An unset catalog value propagates as nil instead of
// silently zeroing.
func MacroContribution(per100g *float64, amountGrams float64) *float64 {
	if per100g == nil {
		return nil
	}
	value := ProteinContribution(*per100g, amountGrams)
	return &value
}

// ProteinContribution is the non-nullable variant for protein, which the
// catalog always carries.
func ProteinContribution(per100g float64, amountGrams float64) float64 {
	return per100g * amountGrams / 100.0
}

func RoundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}
