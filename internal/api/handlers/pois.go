package handlers

import (
	"log"
	"net/http"

	"dayplan-service/internal/api/dto"
	"dayplan-service/internal/ports"
)

// POIHandler exposes read-only access to the point-of-interest universe.
type POIHandler struct {
	Repo ports.POIRepository
}

func (h *POIHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	pois, err := h.Repo.ListPOIs(r.Context())
	if err != nil {
		log.Printf("list pois failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPOIsResponse{
		POIs: make([]dto.POIResponse, 0, len(pois)),
	}
	for _, p := range pois {
		out := dto.POIResponse{
			POIID:       p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Tags:        p.Tags,
			Region:      p.Region,
			TouristTrap: p.TouristTrap,
			BestTimes:   p.BestTimes,
			CostMin:     p.CostMin,
			CostMax:     p.CostMax,
		}
		if p.Coord != nil {
			out.Coord = &dto.CoordinateResponse{Lat: p.Coord.Lat, Lon: p.Coord.Lon}
		}
		res.POIs = append(res.POIs, out)
	}

	writeJSON(w, r, http.StatusOK, res)
}
