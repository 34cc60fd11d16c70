package dto

type CoordinateResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type POIResponse struct {
	POIID       string              `json:"poi_id"`
	Name        string              `json:"name"`
	Category    string              `json:"category,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	Coord       *CoordinateResponse `json:"coord,omitempty"`
	Region      string              `json:"region,omitempty"`
	TouristTrap string              `json:"tourist_trap,omitempty"`
	BestTimes   []string            `json:"best_times,omitempty"`
	CostMin     int                 `json:"cost_min"`
	CostMax     int                 `json:"cost_max"`
}

type ListPOIsResponse struct {
	POIs []POIResponse `json:"pois"`
}
