package http

import (
	"net/http"

	"pageview-analytics/internal/trendings"
)

type trendingRunHandler struct {
	trendingService trendings.TrendingService
}

func NewTrendingRunHandler(trendingService trendings.TrendingService) AppHttpHandler {
	return &trendingRunHandler{
		trendingService: trendingService,
	}
}

// Handle processes POST /v1/trending-runs requests: a synchronous trending
// refresh across all configured countries.
func (h *trendingRunHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if svcErr := h.trendingService.Run(r.Context()); svcErr != nil {
		return svcErr
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
