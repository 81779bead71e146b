package trendings

import (
	"pageview-analytics/internal/shared/metrics"
)

var (
	// metricPagesRankedTotal counts content pages that made a country's
	// trending list.
	metricPagesRankedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubTrending,
			Name:      "pages_ranked_total",
		},
		[]string{"country"},
	)

	// metricCountriesRankedTotal counts per-country ranking outcomes, labeled
	// with the error code or empty on success.
	metricCountriesRankedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubTrending,
			Name:      "countries_ranked_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricRunsTotal counts full trending runs, labeled with the error code or
	// empty on success.
	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubTrending,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
