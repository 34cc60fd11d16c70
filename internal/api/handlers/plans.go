package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"dayplan-service/internal/api/dto"
	"dayplan-service/internal/domain"
	"dayplan-service/internal/ports"
	"dayplan-service/internal/services"
)

// PlanHandler turns a plan request into a generated day plan. It coordinates
// repository access, plan-cache lookups and the planning engine; the engine
// itself stays free of transport concerns.
type PlanHandler struct {
	Repo     ports.POIRepository
	Engine   *services.Engine
	Cache    ports.PlanCache
	Validate *validator.Validate
}

func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.GeneratePlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	pace := domain.Pace(req.Pace)
	if req.Pace == "" {
		pace = domain.PaceStandard
	}

	budget := domain.BudgetTier(req.Budget)
	if req.Budget == "" {
		budget = domain.BudgetMid
	}

	now := time.Now().In(domain.PlanLocation)
	if req.Now != nil {
		now = req.Now.In(domain.PlanLocation)
	}

	interests := make([]domain.Interest, 0, len(req.Interests))
	for _, i := range req.Interests {
		interests = append(interests, domain.Interest(i))
	}

	var start *domain.Coordinates
	if req.Start != nil {
		start = &domain.Coordinates{Lat: req.Start.Lat, Lon: req.Start.Lon}
	}

	pois, err := h.Repo.ListPOIs(r.Context())
	if err != nil {
		log.Printf("list pois failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	input := domain.PlanInput{
		AvailableMinutes: req.AvailableMinutes,
		Start:            start,
		Interests:        interests,
		Pace:             pace,
		Budget:           budget,
		Now:              now,
		POIs:             pois,
		ExcludeIDs:       req.ExcludePOIIDs,
	}

	// Cache failures degrade to recomputation; planning is cheap and pure.
	key := services.CacheKey(input)
	if h.Cache != nil {
		cached, ok, err := h.Cache.Get(r.Context(), key)
		if err != nil {
			log.Printf("plan cache get failed: %v", err)
		} else if ok {
			writeJSON(w, r, http.StatusOK, toPlanResponse(*cached))
			return
		}
	}

	plan := h.Engine.Generate(input)

	if h.Cache != nil {
		if err := h.Cache.Put(r.Context(), key, &plan); err != nil {
			log.Printf("plan cache put failed: %v", err)
		}
	}

	writeJSON(w, r, http.StatusOK, toPlanResponse(plan))
}

func toPlanResponse(plan domain.Plan) dto.GeneratePlanResponse {
	stops := make([]dto.PlanStopResponse, 0, len(plan.Stops))
	for _, s := range plan.Stops {
		stops = append(stops, dto.PlanStopResponse{
			POIID:         s.POIID,
			ArriveAt:      s.ArriveAt,
			DepartAt:      s.DepartAt,
			TravelMinutes: s.TravelMinutes,
			VisitMinutes:  s.VisitMinutes,
		})
	}

	warnings := plan.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return dto.GeneratePlanResponse{
		Stops:        stops,
		TotalMinutes: plan.TotalMinutes,
		CostMin:      plan.CostMin,
		CostMax:      plan.CostMax,
		Warnings:     warnings,
	}
}
