package http

import (
	"net/http"

	"pageview-analytics/internal/aggregators"
	"pageview-analytics/internal/shared/loggers"
	"pageview-analytics/internal/shared/metrics"
	"pageview-analytics/internal/trendings"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	analyticsService aggregators.AnalyticsService,
	trendingService trendings.TrendingService,
	runDefaults RunDefaults,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	runHandler := NewRunHandler(analyticsService, runDefaults)
	trendingRunHandler := NewTrendingRunHandler(trendingService)

	// Routes
	router.Post("/v1/runs", errorHandlingAdapter(runHandler))
	router.Post("/v1/trending-runs", errorHandlingAdapter(trendingRunHandler))
	router.Get("/healthz", healthz)
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
