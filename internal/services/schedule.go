package services

import (
	"math"
	"time"

	"dayplan-service/internal/domain"
	"dayplan-service/internal/ports"
)

// schedule is the result of turning an ordered place list into concrete,
// timed stops. places holds the subset that actually made it onto the
// schedule, in stop order; dropped counts the ones that did not.
type schedule struct {
	stops        []domain.PlanStop
	places       []*domain.POI
	totalMinutes int
	dropped      int
}

// buildSchedule walks an ordered list of places and assigns arrival and
// departure times. A place that would overrun the time budget or be closed at
// its computed arrival is dropped without advancing state; the walk continues
// with the next place. No reordering or re-scoring happens here.
func (e *Engine) buildSchedule(places []*domain.POI, start time.Time, startCoord *domain.Coordinates, availableMinutes int, pace domain.Pace) schedule {
	var sched schedule
	sched.stops = []domain.PlanStop{}

	elapsed := 0
	current := startCoord

	for _, p := range places {
		travel := e.travelMinutes(current, p)
		visit := recommendedVisitMinutes(p, pace)

		if elapsed+travel+visit > availableMinutes {
			sched.dropped++
			continue
		}

		arrive := start.Add(time.Duration(elapsed+travel) * time.Minute)
		if e.hours.Status(p, arrive) == ports.StatusClosed {
			sched.dropped++
			continue
		}

		sched.stops = append(sched.stops, domain.PlanStop{
			POIID:         p.ID,
			ArriveAt:      arrive,
			DepartAt:      arrive.Add(time.Duration(visit) * time.Minute),
			TravelMinutes: travel,
			VisitMinutes:  visit,
		})
		sched.places = append(sched.places, p)

		elapsed += travel + visit
		if p.Coord != nil {
			current = p.Coord
		}
	}

	sched.totalMinutes = elapsed
	return sched
}

// nearestNeighborOrder produces an alternative visiting order: repeatedly
// pick the remaining place closest to the current position, ties broken by
// smaller identifier. Places without coordinates rank as infinitely far, so
// they sort last, and do not advance the position when picked. Without a
// start coordinate, or with a single place, the input order is returned
// unchanged.
func nearestNeighborOrder(places []*domain.POI, start *domain.Coordinates, geo ports.GeoService) []*domain.POI {
	if start == nil || len(places) <= 1 {
		return places
	}

	remaining := make([]*domain.POI, len(places))
	copy(remaining, places)

	ordered := make([]*domain.POI, 0, len(places))
	current := *start

	for len(remaining) > 0 {
		bestIdx := -1
		bestDist := math.Inf(1)

		for i, p := range remaining {
			dist := math.Inf(1)
			if p.Coord != nil {
				dist = geo.DistanceMeters(current, *p.Coord)
			}
			if bestIdx < 0 || dist < bestDist ||
				(dist == bestDist && p.ID < remaining[bestIdx].ID) {
				bestIdx = i
				bestDist = dist
			}
		}

		next := remaining[bestIdx]
		ordered = append(ordered, next)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
		if next.Coord != nil {
			current = *next.Coord
		}
	}

	return ordered
}

// chooseSchedule arbitrates between the direct-order schedule and its
// reordered alternative. Preference, in order: more required meal slots
// covered, more stops, fewer total minutes; on a full tie the direct schedule
// stands.
func chooseSchedule(direct, alt schedule, required map[domain.MealSlot]bool) schedule {
	dc := coveredRequiredCount(direct.places, required)
	ac := coveredRequiredCount(alt.places, required)
	if ac != dc {
		if ac > dc {
			return alt
		}
		return direct
	}

	if len(alt.stops) != len(direct.stops) {
		if len(alt.stops) > len(direct.stops) {
			return alt
		}
		return direct
	}

	if alt.totalMinutes < direct.totalMinutes {
		return alt
	}
	return direct
}

func coveredRequiredCount(places []*domain.POI, required map[domain.MealSlot]bool) int {
	covered := make(map[domain.MealSlot]bool)
	for _, p := range places {
		for _, slot := range servedMealSlots(p) {
			if required[slot] {
				covered[slot] = true
			}
		}
	}
	return len(covered)
}
