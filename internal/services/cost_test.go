package services

import (
	"testing"

	"dayplan-service/internal/domain"
)

func TestEstimateCost(t *testing.T) {
	places := []*domain.POI{
		{ID: "r", Category: "restaurant"}, // 80–180
		{ID: "m", Category: "museum"},     // 70–120
		{ID: "l", Category: "landmark"},   // 0–30
	}

	tests := []struct {
		tier    domain.BudgetTier
		wantMin int
		wantMax int
	}{
		{domain.BudgetLow, 120, 264},
		{domain.BudgetMid, 150, 330},
		{domain.BudgetSplurge, 188, 413},
	}

	for _, tt := range tests {
		gotMin, gotMax := estimateCost(places, tt.tier)
		if gotMin != tt.wantMin || gotMax != tt.wantMax {
			t.Fatalf("tier %s: cost = (%d, %d), want (%d, %d)", tt.tier, gotMin, gotMax, tt.wantMin, tt.wantMax)
		}
	}
}

func TestEstimateCostUnknownCategoryUsesDefault(t *testing.T) {
	gotMin, gotMax := estimateCost([]*domain.POI{{ID: "x", Category: "observatory"}}, domain.BudgetMid)
	if gotMin != 20 || gotMax != 80 {
		t.Fatalf("cost = (%d, %d), want default (20, 80)", gotMin, gotMax)
	}
}

func TestEstimateCostEmptyPlan(t *testing.T) {
	gotMin, gotMax := estimateCost(nil, domain.BudgetSplurge)
	if gotMin != 0 || gotMax != 0 {
		t.Fatalf("cost = (%d, %d), want (0, 0)", gotMin, gotMax)
	}
}
