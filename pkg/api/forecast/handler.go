package forecast

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	core "premiumcast/pkg/core/forecast"
	"premiumcast/pkg/core/scenario"

	"github.com/google/uuid"
)

// Handler serves the forecasting endpoints over a shared Forecaster.
type Handler struct {
	forecaster *core.Forecaster
}

func NewHandler(f *core.Forecaster) *Handler {
	return &Handler{forecaster: f}
}

type ForecastRequest struct {
	StartYear int          `json:"start_year"`
	EndYear   int          `json:"end_year"`
	Scenario  string       `json:"scenario"`
	Country   string       `json:"country"`
	Filters   core.Filters `json:"filters"`
}

type ForecastResponse struct {
	Rows  []core.ForecastRow `json:"rows"`
	Count int                `json:"count"`
}

type ScenarioInfo struct {
	Key string `json:"key"`
	scenario.Scenario
}

func allowCORS(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

// statusFor maps engine errors onto the small status palette the API
// uses: caller mistakes are 400, missing country data is 404, anything
// unexpected is 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, scenario.ErrUnknownScenario):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrNoDataForCountry):
		return http.StatusNotFound
	case errors.Is(err, core.ErrEmptyDataset),
		errors.Is(err, core.ErrMissingEconomicData),
		errors.Is(err, core.ErrInvalidMortalityProjection),
		errors.Is(err, core.ErrInvalidYearRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (ForecastRequest, bool) {
	var req ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return req, false
	}
	if req.Scenario == "" {
		req.Scenario = "base"
	}
	if req.Country == "" {
		req.Country = "India"
	}
	return req, true
}

// HandleForecast runs one scenario: POST /api/forecast
func (h *Handler) HandleForecast(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	reqID := uuid.NewString()[:8]
	fmt.Printf("[API] [%s] forecast %d-%d scenario=%s country=%s\n",
		reqID, req.StartYear, req.EndYear, req.Scenario, req.Country)

	rows, err := h.forecaster.ForecastAveragePremium(req.StartYear, req.EndYear, req.Scenario, req.Country, req.Filters)
	if err != nil {
		fmt.Printf("[API] [%s] forecast failed: %v\n", reqID, err)
		http.Error(w, fmt.Sprintf("no forecast available: %v", err), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ForecastResponse{Rows: rows, Count: len(rows)})
}

// HandleCompare runs every scenario: POST /api/forecast/compare
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	reqID := uuid.NewString()[:8]
	fmt.Printf("[API] [%s] compare %d-%d country=%s\n", reqID, req.StartYear, req.EndYear, req.Country)

	rows := h.forecaster.CompareScenarios(req.StartYear, req.EndYear, req.Country, req.Filters)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ForecastResponse{Rows: rows, Count: len(rows)})
}

// HandleScenarios lists the registry: GET /api/forecast/scenarios
func (h *Handler) HandleScenarios(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	registry := h.forecaster.Registry()
	infos := make([]ScenarioInfo, 0, registry.Count())
	for _, key := range registry.Keys() {
		sc, err := registry.Get(key)
		if err != nil {
			continue
		}
		infos = append(infos, ScenarioInfo{Key: key, Scenario: sc})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(infos)
}
