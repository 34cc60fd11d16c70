package services

import (
	"time"

	"dayplan-service/internal/domain"
	"dayplan-service/internal/ports"
)

// Travel clamp bounds for a single walking leg, in minutes.
const (
	minTravelMinutes = 1
	maxTravelMinutes = 60
)

// Distance under which a candidate counts as already reached.
const sameSpotMeters = 20.0

func minVisitMinutes(pace domain.Pace) int {
	switch pace {
	case domain.PaceRelaxed:
		return 40
	case domain.PaceActive:
		return 20
	default:
		return 30
	}
}

// maxStops caps the stop count by pace, further limited by the available
// time: roughly one stop per 40 minutes, never below one.
func maxStops(pace domain.Pace, availableMinutes int) int {
	ceiling := 7
	switch pace {
	case domain.PaceRelaxed:
		ceiling = 6
	case domain.PaceActive:
		ceiling = 8
	}

	byTime := availableMinutes / 40
	if byTime < 1 {
		byTime = 1
	}
	if byTime < ceiling {
		return byTime
	}
	return ceiling
}

// selectPlaces runs the greedy selection loop: at every step it scores each
// unselected feasible candidate and commits the best one, advancing time,
// position and meal coverage, until the time or stop-count budget is
// exhausted. Ties break on lower travel+visit minutes, then on the
// lexicographically smaller identifier, which makes the selection a total
// order and the result deterministic.
//
// The second return value counts candidates rejected for being closed at
// their would-be arrival time; the caller turns a non-zero count into a
// warning.
func (e *Engine) selectPlaces(in domain.PlanInput, availableMinutes int, candidates []*domain.POI, required map[domain.MealSlot]bool) ([]*domain.POI, int) {
	remaining := availableMinutes
	elapsed := 0
	current := in.Start
	bucket := timeOfDayBucket(in.Now)
	stopCap := maxStops(in.Pace, availableMinutes)
	minVisit := minVisitMinutes(in.Pace)

	selected := make([]*domain.POI, 0, stopCap)
	selectedIDs := make(map[string]struct{}, stopCap)
	covered := make(map[domain.MealSlot]bool)
	closedExcluded := 0

	for remaining >= minVisit && len(selected) < stopCap {
		var (
			best       *domain.POI
			bestScore  float64
			bestTravel int
			bestVisit  int
		)

		for _, c := range candidates {
			if _, ok := selectedIDs[c.ID]; ok {
				continue
			}

			travel := e.travelMinutes(current, c)
			visit := recommendedVisitMinutes(c, in.Pace)
			if travel+visit > remaining {
				continue
			}

			arrive := in.Now.Add(time.Duration(elapsed+travel) * time.Minute)
			if e.hours.Status(c, arrive) == ports.StatusClosed {
				closedExcluded++
				continue
			}

			score := baseScore(c, in.Interests, bucket, in.Budget)
			if !sharesCategory(selected, c) {
				score += diversityBonus
			}
			score += mealSlotBonus * float64(uncoveredServedCount(c, required, covered))
			score -= travelCostPerMin * float64(travel)

			if best == nil || score > bestScore ||
				(score == bestScore && (travel+visit < bestTravel+bestVisit ||
					(travel+visit == bestTravel+bestVisit && c.ID < best.ID))) {
				best = c
				bestScore = score
				bestTravel = travel
				bestVisit = visit
			}
		}

		if best == nil {
			break
		}

		selected = append(selected, best)
		selectedIDs[best.ID] = struct{}{}
		elapsed += bestTravel + bestVisit
		remaining -= bestTravel + bestVisit
		if best.Coord != nil {
			current = best.Coord
		}
		for _, slot := range servedMealSlots(best) {
			covered[slot] = true
		}
	}

	return selected, closedExcluded
}

// travelMinutes estimates the walking time from the current position to a
// place. Without a current position or place coordinates the leg is free;
// within sameSpotMeters it is zero; otherwise the geo estimate is clamped to
// [minTravelMinutes, maxTravelMinutes].
func (e *Engine) travelMinutes(current *domain.Coordinates, p *domain.POI) int {
	if current == nil || p.Coord == nil {
		return 0
	}

	meters := e.geo.DistanceMeters(*current, *p.Coord)
	if meters <= sameSpotMeters {
		return 0
	}

	region := p.Region
	if region == "" {
		region = e.geo.DetectRegion(*p.Coord)
	}

	minutes := e.geo.EstimateWalkMinutes(meters, region)
	if minutes < minTravelMinutes {
		return minTravelMinutes
	}
	if minutes > maxTravelMinutes {
		return maxTravelMinutes
	}
	return minutes
}

func sharesCategory(selected []*domain.POI, c *domain.POI) bool {
	for _, s := range selected {
		if s.Category == c.Category {
			return true
		}
	}
	return false
}

func uncoveredServedCount(c *domain.POI, required, covered map[domain.MealSlot]bool) int {
	n := 0
	for _, slot := range servedMealSlots(c) {
		if required[slot] && !covered[slot] {
			n++
		}
	}
	return n
}
