package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"pageview-analytics/internal/aggregators"
)

// RunDefaults are the processing parameters used when a trigger request does
// not override them.
type RunDefaults struct {
	Countries []string
	Days      int
}

// runRequest optionally narrows a triggered run.
type runRequest struct {
	Countries []string `json:"countries"`
	Days      int      `json:"days"`
}

type runResponse struct {
	RunID              string         `json:"run_id"`
	ProcessedAt        time.Time      `json:"processed_at"`
	CountriesProcessed int            `json:"countries_processed"`
	DaysInSeries       int            `json:"days_in_series"`
	FilterErrors       map[string]int `json:"filter_errors"`
}

type runHandler struct {
	analyticsService aggregators.AnalyticsService
	defaults         RunDefaults
}

func NewRunHandler(analyticsService aggregators.AnalyticsService, defaults RunDefaults) AppHttpHandler {
	return &runHandler{
		analyticsService: analyticsService,
		defaults:         defaults,
	}
}

// Handle processes POST /v1/runs requests: a synchronous full processing run.
func (h *runHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	countries := h.defaults.Countries
	days := h.defaults.Days

	var request runRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidRequestBody(err)
	}
	if len(request.Countries) > 0 {
		countries = request.Countries
	}
	if request.Days > 0 {
		days = request.Days
	}

	result, svcErr := h.analyticsService.Run(r.Context(), countries, days)
	if svcErr != nil {
		return svcErr
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(runResponse{
		RunID:              result.RunID,
		ProcessedAt:        result.ProcessedAt,
		CountriesProcessed: len(result.ByCountry),
		DaysInSeries:       len(result.All),
		FilterErrors:       result.FilterErrors,
	})
}
