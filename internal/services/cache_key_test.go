package services

import (
	"testing"
	"time"

	"dayplan-service/internal/domain"
)

func TestCacheKeyStableUnderInputOrder(t *testing.T) {
	pois := []*domain.POI{{ID: "a", Category: "museum"}}
	now := planTime(9, 0)

	a := domain.PlanInput{
		AvailableMinutes: 240,
		Interests:        []domain.Interest{domain.InterestFood, domain.InterestHistory, domain.InterestFood},
		Pace:             domain.PaceStandard,
		Budget:           domain.BudgetMid,
		Now:              now,
		POIs:             pois,
		ExcludeIDs:       []string{"y", "x"},
	}
	b := domain.PlanInput{
		AvailableMinutes: 240,
		Interests:        []domain.Interest{domain.InterestHistory, domain.InterestFood},
		Pace:             domain.PaceStandard,
		Budget:           domain.BudgetMid,
		Now:              now,
		POIs:             pois,
		ExcludeIDs:       []string{"x", "y"},
	}

	if CacheKey(a) != CacheKey(b) {
		t.Fatal("keys must not depend on interest or exclusion ordering")
	}
}

func TestCacheKeyNormalizesTimezone(t *testing.T) {
	pois := []*domain.POI{{ID: "a", Category: "museum"}}
	now := planTime(9, 0)

	a := domain.PlanInput{AvailableMinutes: 240, Now: now, POIs: pois}
	b := domain.PlanInput{AvailableMinutes: 240, Now: now.In(time.UTC), POIs: pois}

	if CacheKey(a) != CacheKey(b) {
		t.Fatal("keys must not depend on the wall-clock zone of the reference time")
	}
}

func TestCacheKeyDistinguishesInputs(t *testing.T) {
	pois := []*domain.POI{{ID: "a", Category: "museum"}}
	base := domain.PlanInput{
		AvailableMinutes: 240,
		Pace:             domain.PaceStandard,
		Budget:           domain.BudgetMid,
		Now:              planTime(9, 0),
		POIs:             pois,
	}

	variants := []domain.PlanInput{
		{AvailableMinutes: 300, Pace: base.Pace, Budget: base.Budget, Now: base.Now, POIs: pois},
		{AvailableMinutes: 240, Pace: domain.PaceActive, Budget: base.Budget, Now: base.Now, POIs: pois},
		{AvailableMinutes: 240, Pace: base.Pace, Budget: domain.BudgetSplurge, Now: base.Now, POIs: pois},
		{AvailableMinutes: 240, Pace: base.Pace, Budget: base.Budget, Now: base.Now.Add(time.Hour), POIs: pois},
		{AvailableMinutes: 240, Pace: base.Pace, Budget: base.Budget, Now: base.Now, POIs: pois, Start: at(0.5)},
	}

	key := CacheKey(base)
	for i, v := range variants {
		if CacheKey(v) == key {
			t.Fatalf("variant %d produced the same key as the base input", i)
		}
	}
}
