package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"dayplan-service/internal/domain"
)

// Initialize the content database schema. The statements are portable across
// SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPOIsQuery := `
	CREATE TABLE IF NOT EXISTS pois (
		poi_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '[]',
		lat REAL,
		lon REAL,
		region TEXT NOT NULL DEFAULT '',
		min_visit_minutes INTEGER NOT NULL DEFAULT 0,
		max_visit_minutes INTEGER NOT NULL DEFAULT 0,
		cost_min INTEGER NOT NULL DEFAULT 0,
		cost_max INTEGER NOT NULL DEFAULT 0,
		tourist_trap TEXT NOT NULL DEFAULT '',
		best_times TEXT NOT NULL DEFAULT '[]',
		hours TEXT NOT NULL DEFAULT '{}'
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_pois_category
	ON pois(category);
	`

	statements := []string{
		createPOIsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// POISeed is one curated place in the JSON seed file. Coordinates are
// optional; tags, best_times and hours default to empty.
type POISeed struct {
	POIID           string              `json:"poi_id"`
	Name            string              `json:"name"`
	Category        string              `json:"category"`
	Tags            []string            `json:"tags"`
	Lat             *float64            `json:"lat"`
	Lon             *float64            `json:"lon"`
	Region          string              `json:"region"`
	MinVisitMinutes int                 `json:"min_visit_minutes"`
	MaxVisitMinutes int                 `json:"max_visit_minutes"`
	CostMin         int                 `json:"cost_min"`
	CostMax         int                 `json:"cost_max"`
	TouristTrap     string              `json:"tourist_trap"`
	BestTimes       []string            `json:"best_times"`
	Hours           domain.OpeningHours `json:"hours"`
}

// Populate the SQLite content pack with places from a JSON seed file.
// Upserts use INSERT OR REPLACE, so seeding only targets the SQLite pack;
// Postgres deployments load content through their own pipeline.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed pois: read %q: %w", jsonPath, err)
	}

	var data []POISeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed pois: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.POIID) == "" {
			return fmt.Errorf("seed pois: item at index %d: poi_id cannot be empty", i+1)
		}
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("seed pois: item %q: name cannot be empty", item.POIID)
		}
		if (item.Lat == nil) != (item.Lon == nil) {
			return fmt.Errorf("seed pois: item %q: lat and lon must be set together", item.POIID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed pois: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO pois (
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
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed pois: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range data {
		tags, err := encodeJSONColumn(p.Tags, "[]")
		if err != nil {
			return fmt.Errorf("seed pois: encode tags for %q: %w", p.POIID, err)
		}
		bestTimes, err := encodeJSONColumn(p.BestTimes, "[]")
		if err != nil {
			return fmt.Errorf("seed pois: encode best_times for %q: %w", p.POIID, err)
		}
		hours, err := encodeJSONColumn(p.Hours, "{}")
		if err != nil {
			return fmt.Errorf("seed pois: encode hours for %q: %w", p.POIID, err)
		}

		_, err = stmt.Exec(
			p.POIID, p.Name, p.Category, tags,
			nullableFloat(p.Lat), nullableFloat(p.Lon),
			p.Region, p.MinVisitMinutes, p.MaxVisitMinutes,
			p.CostMin, p.CostMax, p.TouristTrap, bestTimes, hours,
		)
		if err != nil {
			return fmt.Errorf("seed pois: insert poi_id=%q: %w", p.POIID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed pois: commit tx: %w", err)
	}

	return nil
}

func encodeJSONColumn(v any, empty string) (string, error) {
	if v == nil {
		return empty, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
