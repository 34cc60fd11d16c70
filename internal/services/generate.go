package services

import (
	"fmt"
	"sort"
	"strings"

	"dayplan-service/internal/domain"
	"dayplan-service/internal/ports"
)

// User-facing warnings. Degenerate planning conditions are reported through
// these, never as errors: Generate always returns a plan for well-typed input.
const (
	WarnNoTime  = "Available time is too short to generate a plan."
	WarnNoMatch = "No places match your constraints right now."
	WarnNoFit   = "No plan could fit your time and constraints. Try increasing available time or broadening interests."
	WarnClosed  = "Some places were excluded because they are closed at the planned visit time."
	WarnDropped = "Some candidate stops were dropped during schedule construction."
)

// Engine generates day plans. It is a pure, synchronous computation over its
// two collaborator ports and holds no state between calls, so a single Engine
// is safe for concurrent use.
type Engine struct {
	geo   ports.GeoService
	hours ports.HoursEvaluator
}

func NewEngine(geo ports.GeoService, hours ports.HoursEvaluator) *Engine {
	return &Engine{geo: geo, hours: hours}
}

// Generate turns available time, interests, pace, budget and position into an
// ordered, time-boxed sequence of visit stops.
//
// Control flow: filter candidates, compute required meal slots, greedy-select
// places, build the direct schedule, build a nearest-neighbor reordering of it
// when the order differs, arbitrate between the two, then estimate cost and
// attach warnings. Identical input always yields identical output.
func (e *Engine) Generate(in domain.PlanInput) domain.Plan {
	available := in.AvailableMinutes
	if available < 0 {
		available = 0
	}
	if available == 0 {
		return emptyPlan(WarnNoTime)
	}

	candidates := filterCandidates(in)
	if len(candidates) == 0 {
		return emptyPlan(WarnNoMatch)
	}

	required := requiredMealSlots(in.Now, available, in.Interests, candidates)

	selected, closedExcluded := e.selectPlaces(in, available, candidates, required)
	if len(selected) == 0 {
		plan := emptyPlan(WarnNoFit)
		if closedExcluded > 0 {
			plan.Warnings = append(plan.Warnings, WarnClosed)
		}
		return plan
	}

	direct := e.buildSchedule(selected, in.Now, in.Start, available, in.Pace)

	final := direct
	reordered := nearestNeighborOrder(selected, in.Start, e.geo)
	if !sameOrder(selected, reordered) {
		alt := e.buildSchedule(reordered, in.Now, in.Start, available, in.Pace)
		final = chooseSchedule(direct, alt, required)
	}

	var warnings []string
	if closedExcluded > 0 {
		warnings = append(warnings, WarnClosed)
	}
	if final.dropped > 0 {
		warnings = append(warnings, WarnDropped)
	}
	if missing := missingMealSlots(final.places, required); len(missing) > 0 {
		warnings = append(warnings, fmt.Sprintf("Plan does not cover meal times: %s", strings.Join(missing, ", ")))
	}

	costMin, costMax := estimateCost(final.places, in.Budget)

	return domain.Plan{
		Stops:        final.stops,
		TotalMinutes: final.totalMinutes,
		CostMin:      costMin,
		CostMax:      costMax,
		Warnings:     warnings,
	}
}

func emptyPlan(warning string) domain.Plan {
	return domain.Plan{
		Stops:    []domain.PlanStop{},
		Warnings: []string{warning},
	}
}

// missingMealSlots lists required slots not served by any scheduled place,
// sorted lexicographically for a stable warning message.
func missingMealSlots(places []*domain.POI, required map[domain.MealSlot]bool) []string {
	covered := make(map[domain.MealSlot]bool)
	for _, p := range places {
		for _, slot := range servedMealSlots(p) {
			covered[slot] = true
		}
	}

	var missing []string
	for slot := range required {
		if !covered[slot] {
			missing = append(missing, string(slot))
		}
	}
	sort.Strings(missing)
	return missing
}

func sameOrder(a, b []*domain.POI) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
