package ports

import "dayplan-service/internal/domain"

// GeoService is the boundary for pure geographic math used during planning.
// Implementations must be deterministic and total: degenerate input yields
// zero values, never an error, so the planning engine stays a total function.
type GeoService interface {
	// Great-circle distance between two coordinates, in meters.
	DistanceMeters(a, b domain.Coordinates) float64
	// Initial bearing from a to b in degrees clockwise from north.
	BearingDegrees(a, b domain.Coordinates) float64
	// Estimated walking time for a distance within a region. An empty or
	// unrecognized region uses the default walking speed.
	EstimateWalkMinutes(meters float64, region string) int
	// Region identifier for a coordinate, or "" when outside all known regions.
	DetectRegion(c domain.Coordinates) string
}
