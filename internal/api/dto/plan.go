package dto

import "time"

type CoordinateRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

type GeneratePlanRequest struct {
	AvailableMinutes int                `json:"available_minutes" validate:"gte=0,lte=1440"`
	Start            *CoordinateRequest `json:"start"`
	Interests        []string           `json:"interests" validate:"dive,oneof=history food shopping nature culture architecture relaxation nightlife general"`
	Pace             string             `json:"pace" validate:"omitempty,oneof=relaxed standard active"`
	Budget           string             `json:"budget" validate:"omitempty,oneof=budget mid splurge"`
	Now              *time.Time         `json:"now"`
	ExcludePOIIDs    []string           `json:"exclude_poi_ids"`
}

type PlanStopResponse struct {
	POIID         string    `json:"poi_id"`
	ArriveAt      time.Time `json:"arrive_at"`
	DepartAt      time.Time `json:"depart_at"`
	TravelMinutes int       `json:"travel_minutes"`
	VisitMinutes  int       `json:"visit_minutes"`
}

type GeneratePlanResponse struct {
	Stops        []PlanStopResponse `json:"stops"`
	TotalMinutes int                `json:"total_minutes"`
	CostMin      int                `json:"cost_min"`
	CostMax      int                `json:"cost_max"`
	Warnings     []string           `json:"warnings"`
}
