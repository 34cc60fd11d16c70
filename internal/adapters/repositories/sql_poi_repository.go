package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"dayplan-service/internal/domain"
	"dayplan-service/internal/platform/obs"
)

// SQL-backed implementation of the POIRepository port. The queries are
// portable, so the same repository serves the embedded SQLite content pack
// and a Postgres deployment.
type SQLPOIRepository struct{ DB *sql.DB }

func NewSQLPOIRepository(db *sql.DB) *SQLPOIRepository {
	return &SQLPOIRepository{DB: db}
}

// Return all points of interest, ordered by identifier for stable plan
// generation input.
func (s *SQLPOIRepository) ListPOIs(ctx context.Context) (_ []*domain.POI, err error) {
	defer obs.Time(ctx, "repository.ListPOIs")(&err)

	if s.DB == nil {
		return nil, errors.New("sql poi repository: DB is nil")
	}

	query := `
	SELECT
		poi_id,
		name,
		category,
		tags,
		lat,
		lon,
		region,
		min_visit_minutes,
		max_visit_minutes,
		cost_min,
		cost_max,
		tourist_trap,
		best_times,
		hours
	FROM pois
	ORDER BY poi_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pois: query pois table: %w", err)
	}
	defer rows.Close()

	pois := make([]*domain.POI, 0, 64)
	for rows.Next() {
		var (
			p         domain.POI
			tags      string
			lat, lon  sql.NullFloat64
			bestTimes string
			hours     string
		)

		err := rows.Scan(
			&p.ID, &p.Name, &p.Category, &tags, &lat, &lon, &p.Region,
			&p.MinVisitMinutes, &p.MaxVisitMinutes, &p.CostMin, &p.CostMax,
			&p.TouristTrap, &bestTimes, &hours,
		)
		if err != nil {
			return nil, fmt.Errorf("list pois: scan row: %w", err)
		}

		if lat.Valid && lon.Valid {
			p.Coord = &domain.Coordinates{Lat: lat.Float64, Lon: lon.Float64}
		}

		if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
			return nil, fmt.Errorf("list pois: decode tags for %q: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(bestTimes), &p.BestTimes); err != nil {
			return nil, fmt.Errorf("list pois: decode best_times for %q: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(hours), &p.Hours); err != nil {
			return nil, fmt.Errorf("list pois: decode hours for %q: %w", p.ID, err)
		}

		pois = append(pois, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pois: row iteration: %w", err)
	}

	return pois, nil
}
