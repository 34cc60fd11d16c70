package ports

import (
	"context"

	"dayplan-service/internal/domain"
)

// PlanCache memoizes generated plans. Plan generation is deterministic, so a
// cached plan for an input key is always valid until the content changes.
type PlanCache interface {
	// Get returns the cached plan for key, reporting whether one was found.
	Get(ctx context.Context, key string) (*domain.Plan, bool, error)
	// Put stores a plan under key.
	Put(ctx context.Context, key string, plan *domain.Plan) error
}
