package geo

import (
	"math"

	"dayplan-service/internal/domain"
)

// Mean Earth radius in meters.
const earthRadiusMeters = 6371000.0

// Baseline walking speed in meters per minute (4.8 km/h).
const baseMetersPerMinute = 80.0

// Per-region walking speeds. Dense, crowded districts walk slower than the
// baseline; open riverside paths a little faster.
var regionMetersPerMinute = map[string]float64{
	"old_town":  65.0,
	"market":    60.0,
	"riverside": 85.0,
	"hills":     55.0,
}

type regionBounds struct {
	name   string
	minLat float64
	minLon float64
	maxLat float64
	maxLon float64
}

// Bounding boxes for the destination's districts. First match wins, so more
// specific regions are listed before broader ones.
var regions = []regionBounds{
	{"market", 35.000, 135.760, 35.010, 135.772},
	{"old_town", 34.995, 135.770, 35.020, 135.800},
	{"riverside", 34.990, 135.765, 35.040, 135.775},
	{"hills", 34.980, 135.772, 35.000, 135.810},
}

// Service implements the planning engine's geo port with pure local math:
// haversine distances, bearings, bounding-box region detection and
// region-adjusted walk-time estimates. All methods are deterministic and
// never fail.
type Service struct{}

func NewService() *Service { return &Service{} }

// DistanceMeters returns the great-circle distance between two coordinates
// using the haversine formula.
func (s *Service) DistanceMeters(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// BearingDegrees returns the initial bearing from a to b in degrees clockwise
// from north, normalized to [0, 360).
func (s *Service) BearingDegrees(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// EstimateWalkMinutes converts a distance to walking minutes using the
// region's speed, rounded up so short hops never report zero.
func (s *Service) EstimateWalkMinutes(meters float64, region string) int {
	if meters <= 0 {
		return 0
	}

	speed, ok := regionMetersPerMinute[region]
	if !ok {
		speed = baseMetersPerMinute
	}

	return int(math.Ceil(meters / speed))
}

// DetectRegion returns the first region whose bounding box contains the
// coordinate, or "" when none does.
func (s *Service) DetectRegion(c domain.Coordinates) string {
	for _, r := range regions {
		if c.Lat >= r.minLat && c.Lat <= r.maxLat && c.Lon >= r.minLon && c.Lon <= r.maxLon {
			return r.name
		}
	}
	return ""
}
