package ports

import (
	"context"

	"dayplan-service/internal/domain"
)

// Port: a boundary for retrieving the point-of-interest universe from the
// content database.
type POIRepository interface {
	// Retrieve all points of interest available for planning.
	ListPOIs(ctx context.Context) ([]*domain.POI, error)
}
