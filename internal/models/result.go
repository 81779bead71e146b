package models

import "time"

// Result is one full recomputation of the daily analytics.
//
// ByCountry holds the per-country daily series; countries whose processing
// failed are omitted entirely rather than carried as placeholders. All is the
// combined series: per-day pageviews summed across countries with rolling and
// growth recomputed on the summed series (unique visitors and time-on-page are
// not aggregatable across countries and stay per-country only).
type Result struct {
	RunID       string
	ProcessedAt time.Time
	ByCountry   map[string]MetricSeries
	All         MetricSeries

	// FilterErrors counts per-country documents dropped for unparseable
	// timestamps. Observability only, not part of the published document.
	FilterErrors map[string]int
}
