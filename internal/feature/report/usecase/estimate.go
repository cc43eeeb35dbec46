// Package usecase implements the carbon estimate engine and the period
// reporting aggregator.
package usecase

import (
	"math"

	"carbon_backend/internal/feature/activity/domain/entity"
)

// Emission factors for the daily CO2 estimate, in kg per unit.
const (
	ElectricityFactor = 0.85 // kg CO2 per kWh
	DistanceFactor    = 0.12 // kg CO2 per km
	GarbageFactor     = 0.06 // kg CO2 per kg of garbage

	MealFactorVegetarian    = 3.0 // kg CO2 per meal
	MealFactorNonVegetarian = 5.0 // kg CO2 per meal

	// DailyThresholdKg is the fixed visualization cutoff used for the
	// below/above split of each day's estimate. Not a policy limit.
	DailyThresholdKg = 5.5
)

// BatchMealFactor returns the meal factor for a batch of records being
// evaluated together: 5 if any record in the batch is non-vegetarian,
// else 3. The factor is uniform across the batch, so a vegetarian day
// is rated at the non-vegetarian factor whenever the queried window
// contains a non-vegetarian day. Switching to a per-row factor would
// change every historical figure, so the batch-level coupling stays.
func BatchMealFactor(records []entity.ActivityRecord) float64 {
	for _, r := range records {
		if r.DietType == entity.DietNonVegetarian {
			return MealFactorNonVegetarian
		}
	}
	return MealFactorVegetarian
}

// EstimateCO2Kg computes one record's CO2 estimate in kg, rounded to
// two decimal places. mealFactor comes from BatchMealFactor over the
// batch the record is evaluated in.
func EstimateCO2Kg(r entity.ActivityRecord, mealFactor float64) float64 {
	est := r.ElectricityKWh*ElectricityFactor +
		r.DistanceKm*DistanceFactor +
		float64(r.Meals)*mealFactor +
		r.GarbageKg*GarbageFactor
	return round2(est)
}

// SplitThreshold divides an estimate into the portion at or below the
// daily threshold and the excess above it.
func SplitThreshold(estimate float64) (below, above float64) {
	below = math.Min(estimate, DailyThresholdKg)
	above = math.Max(0, round2(estimate-DailyThresholdKg))
	return below, above
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
