package services

import (
	"math"

	"dayplan-service/internal/domain"
)

// Visit-duration defaults when the content provides no bounds, by pace.
var paceDefaultVisit = map[domain.Pace]int{
	domain.PaceRelaxed:  90,
	domain.PaceStandard: 60,
	domain.PaceActive:   45,
}

// No visit is ever planned shorter than this.
const floorVisitMinutes = 20

// recommendedVisitMinutes derives the planned visit duration for a place.
// Missing bounds fall back to the pace default, both bounds are floored at
// floorVisitMinutes, and the pace picks a point in the range: relaxed lingers
// at the max, active rushes at the min, standard takes the rounded midpoint.
func recommendedVisitMinutes(p *domain.POI, pace domain.Pace) int {
	def, ok := paceDefaultVisit[pace]
	if !ok {
		def = paceDefaultVisit[domain.PaceStandard]
	}

	lo := p.MinVisitMinutes
	if lo == 0 {
		lo = def
	}
	hi := p.MaxVisitMinutes
	if hi == 0 {
		hi = def
	}

	if lo < floorVisitMinutes {
		lo = floorVisitMinutes
	}
	if hi < floorVisitMinutes {
		hi = floorVisitMinutes
	}
	if hi < lo {
		hi = lo
	}

	switch pace {
	case domain.PaceRelaxed:
		return hi
	case domain.PaceActive:
		return lo
	default:
		return int(math.Round(float64(lo+hi) / 2))
	}
}
