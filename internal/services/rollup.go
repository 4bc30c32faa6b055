package services

import "github.com/harsh-kumbhar/lifelog/internal/models"

// Read-time aggregation over derived fields. Unset row-level values are
// coalesced to zero at summation time: partial data must not disappear from
// a best-effort total, and must not fail it either.

// WorkoutVolume sums sets * reps_performed * weight over line items. A
// missing operand makes that item's contribution zero, not excluded.
func WorkoutVolume(items []models.WorkoutExercise) float64 {
	total := 0.0
	for _, item := range items {
		if item.RepsPerformed == nil || item.WeightKg == nil {
			continue
		}
		total += float64(item.Sets) * float64(*item.RepsPerformed) * *item.WeightKg
	}
	return total
}

// MealTotals sums the macro contributions of one meal's line items.
func MealTotals(items []models.MealItem) (float64, float64) {
	protein := 0.0
	calories := 0.0
	for _, item := range items {
		if item.ProteinCalculated != nil {
			protein += *item.ProteinCalculated
		}
		if item.CaloriesCalculated != nil {
			calories += *item.CaloriesCalculated
		}
	}
	return RoundTo2(protein), RoundTo2(calories)
}

// DailyMacroTotals sums meal totals across all of a day's meals.
func DailyMacroTotals(meals []models.MealEntry) (float64, float64) {
	protein := 0.0
	calories := 0.0
	for _, meal := range meals {
		mealProtein, mealCalories := MealTotals(meal.Items)
		protein += mealProtein
		calories += mealCalories
	}
	return RoundTo2(protein), RoundTo2(calories)
}

// StudyHoursTotal sums derived study durations; nil durations count as zero.
func StudyHoursTotal(sessions []models.StudySession) float64 {
	total := 0.0
	for _, session := range sessions {
		if session.DurationHours != nil {
			total += *session.DurationHours
		}
	}
	return RoundTo2(total)
}

func InternshipHoursTotal(logs []models.InternshipLog) float64 {
	total := 0.0
	for _, entry := range logs {
		total += entry.Hours
	}
	return RoundTo2(total)
}

// meanOf returns the arithmetic mean of the samples, or nil for an empty
// window: a mean over no data is "no data", not zero.
func meanOf(samples []float64) *float64 {
	if len(samples) == 0 {
		return nil
	}
	total := 0.0
	for _, sample := range samples {
		total += sample
	}
	mean := RoundTo2(total / float64(len(samples)))
	return &mean
}
