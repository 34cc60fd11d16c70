package services

import (
	"math"
	"time"

	"dayplan-service/internal/domain"
	"dayplan-service/internal/ports"
)

// lineGeo is a one-dimensional world for tests: places live on the latitude
// axis, distance is |dLat| * 10000 meters and walking covers 100 m/min, so a
// latitude delta of 0.1 costs exactly 10 travel minutes.
type lineGeo struct{}

func (lineGeo) DistanceMeters(a, b domain.Coordinates) float64 {
	return math.Abs(a.Lat-b.Lat) * 10000
}

func (lineGeo) BearingDegrees(a, b domain.Coordinates) float64 { return 0 }

func (lineGeo) EstimateWalkMinutes(meters float64, region string) int {
	return int(meters / 100)
}

func (lineGeo) DetectRegion(domain.Coordinates) string { return "" }

// hoursFunc adapts a function to the HoursEvaluator port.
type hoursFunc func(p *domain.POI, at time.Time) ports.OpenStatus

func (f hoursFunc) Status(p *domain.POI, at time.Time) ports.OpenStatus { return f(p, at) }

func hoursAlways(status ports.OpenStatus) hoursFunc {
	return func(*domain.POI, time.Time) ports.OpenStatus { return status }
}

func newTestEngine(hours hoursFunc) *Engine {
	return NewEngine(lineGeo{}, hours)
}

func at(lat float64) *domain.Coordinates {
	return &domain.Coordinates{Lat: lat, Lon: 0}
}

// planTime builds a timestamp on Monday 2026-03-02 in the plan's local zone.
func planTime(hour, minute int) time.Time {
	return time.Date(2026, time.March, 2, hour, minute, 0, 0, domain.PlanLocation)
}
