package services

import (
	"math"

	"dayplan-service/internal/domain"
)

type costRange struct {
	min int
	max int
}

// Per-category base cost ranges in the local currency unit. Static content
// calibration; never mutated at runtime.
var categoryCosts = map[string]costRange{
	"restaurant":    {80, 180},
	"cafe":          {20, 60},
	"museum":        {70, 120},
	"historic_site": {40, 90},
	"garden":        {40, 100},
	"market":        {0, 40},
	"landmark":      {0, 30},
	"neighborhood":  {0, 30},
	"nature":        {0, 30},
}

var defaultCost = costRange{20, 80}

var budgetMultiplier = map[domain.BudgetTier]float64{
	domain.BudgetLow:     0.80,
	domain.BudgetMid:     1.00,
	domain.BudgetSplurge: 1.25,
}

// estimateCost sums the per-category base cost range over the scheduled
// places, then scales both bounds by the budget-tier multiplier. Bounds are
// rounded to the nearest integer independently and floored at zero.
func estimateCost(places []*domain.POI, tier domain.BudgetTier) (int, int) {
	sumMin, sumMax := 0, 0
	for _, p := range places {
		r, ok := categoryCosts[p.Category]
		if !ok {
			r = defaultCost
		}
		sumMin += r.min
		sumMax += r.max
	}

	mult, ok := budgetMultiplier[tier]
	if !ok {
		mult = budgetMultiplier[domain.BudgetMid]
	}

	return scaleCost(sumMin, mult), scaleCost(sumMax, mult)
}

func scaleCost(v int, mult float64) int {
	scaled := int(math.Round(float64(v) * mult))
	if scaled < 0 {
		return 0
	}
	return scaled
}
