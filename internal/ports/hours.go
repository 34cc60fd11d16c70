package ports

import (
	"time"

	"dayplan-service/internal/domain"
)

// OpenStatus is the opening-hours evaluator's verdict for a place at a time.
type OpenStatus int

const (
	StatusUnknown OpenStatus = iota
	StatusOpen
	StatusClosed
)

// HoursEvaluator is the boundary for opening-hours checks. The planning
// engine treats anything that is not StatusClosed as feasible, and
// implementations must report StatusUnknown (never fail) on missing or
// malformed hours data.
type HoursEvaluator interface {
	Status(p *domain.POI, at time.Time) OpenStatus
}
