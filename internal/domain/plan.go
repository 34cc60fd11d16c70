package domain

import "time"

// PlanStop is a single timed visit within a generated day plan.
// DepartAt is always ArriveAt plus the visit duration, and consecutive stops
// never overlap.
type PlanStop struct {
	POIID         string
	ArriveAt      time.Time
	DepartAt      time.Time
	TravelMinutes int
	VisitMinutes  int
}

// Plan is the output of a single plan generation: a chronological sequence of
// stops, the elapsed time they consume, an estimated cost range, and any
// human-readable warnings raised along the way. Degenerate inputs produce an
// empty plan with warnings, never an error.
type Plan struct {
	Stops        []PlanStop
	TotalMinutes int
	CostMin      int
	CostMax      int
	Warnings     []string
}
