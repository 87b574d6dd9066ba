// ABOUTME: Calorie estimation from activity type and duration.
// ABOUTME: Fixed intensity coefficients keyed by lowercase activity type.
package models

import (
	"math"
	"strings"
)

// intensityCoefficients approximate kcal burned per kilogram of body
// weight per hour. Keys are lowercase activity type names.
var intensityCoefficients = map[string]float64{
	"running":    10.0,
	"cycling":    8.0,
	"swimming":   9.8,
	"walking":    3.8,
	"hiking":     6.0,
	"rowing":     7.0,
	"dancing":    7.8,
	"basketball": 6.5,
	"yoga":       2.5,
	"strength":   5.0,
}

// DefaultCoefficient is used for activity types without a table entry.
const DefaultCoefficient = 5.0

// AssumedWeightKg is the body weight used when none is configured.
const AssumedWeightKg = 70.0

// CoefficientFor returns the intensity coefficient for an activity type.
// Lookup is case-insensitive; unknown types get DefaultCoefficient.
func CoefficientFor(activityType string) float64 {
	key := strings.ToLower(strings.TrimSpace(activityType))
	if c, ok := intensityCoefficients[key]; ok {
		return c
	}
	return DefaultCoefficient
}

// EstimateCalories estimates calories burned for an activity of the given
// type and duration, assuming AssumedWeightKg of body weight.
func EstimateCalories(activityType string, durationMinutes int) int {
	return EstimateCaloriesFor(activityType, durationMinutes, AssumedWeightKg)
}

// EstimateCaloriesFor estimates calories burned using an explicit body
// weight. Returns 0 for non-positive duration or weight.
func EstimateCaloriesFor(activityType string, durationMinutes int, weightKg float64) int {
	if durationMinutes <= 0 || weightKg <= 0 {
		return 0
	}
	kcal := CoefficientFor(activityType) * weightKg * (float64(durationMinutes) / 60.0)
	return int(math.Round(kcal))
}
