package aggregators

import (
	"pageview-analytics/internal/shared/metrics"
)

var (
	// metricDocumentsReadTotal counts raw pageview documents read per country,
	// before any filtering.
	metricDocumentsReadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcessing,
			Name:      "documents_read_total",
		},
		[]string{"country"},
	)

	// metricEventsInRangeTotal counts normalized events that fell inside the
	// processing window per country.
	metricEventsInRangeTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcessing,
			Name:      "events_in_range_total",
		},
		[]string{"country"},
	)

	// metricFilterErrorsTotal counts documents dropped for unparseable
	// timestamps per country.
	metricFilterErrorsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcessing,
			Name:      "filter_errors_total",
		},
		[]string{"country"},
	)

	// metricCountriesProcessedTotal counts per-country pipeline outcomes,
	// labeled with the error code or empty on success.
	metricCountriesProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcessing,
			Name:      "countries_processed_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricRunsTotal counts full processing runs, labeled with the error code
	// or empty on success.
	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcessing,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
