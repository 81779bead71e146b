package aggregators

import (
	"context"
	"time"

	"pageview-analytics/internal/models"
	"pageview-analytics/internal/shared/loggers"
)

// maxDetailedFilterErrors caps how many per-document failures are logged in
// full; the rest only show up in the aggregate count.
const maxDetailedFilterErrors = 5

//go:generate mockgen -source=range_filter.go -destination=./mocks/range_filter_mock.go -package=mocks
type DateRangeFilter interface {
	// Filter normalizes raw events and keeps those with start <= timestamp <= end
	// (bounds inclusive). The returned count covers normalization failures only;
	// out-of-range events are dropped silently, they are expected in a full
	// collection read.
	Filter(ctx context.Context, events []models.RawEvent, start, end time.Time) ([]*models.NormalizedEvent, int)
}

type dateRangeFilter struct {
	normalizer EventNormalizer
}

func NewDateRangeFilter(normalizer EventNormalizer) DateRangeFilter {
	return &dateRangeFilter{normalizer: normalizer}
}

func (f *dateRangeFilter) Filter(ctx context.Context, events []models.RawEvent, start, end time.Time) ([]*models.NormalizedEvent, int) {
	logger := loggers.Ctx(ctx)

	filtered := make([]*models.NormalizedEvent, 0, len(events))
	errorCount := 0

	for _, raw := range events {
		normalized, err := f.normalizer.Normalize(raw)
		if err != nil {
			errorCount++
			if errorCount <= maxDetailedFilterErrors {
				logger.Warn().Err(err).Str("document_id", raw.ID).Msg("dropping pageview document")
			}
			continue
		}

		if normalized.Timestamp.Before(start) || normalized.Timestamp.After(end) {
			continue
		}

		filtered = append(filtered, normalized)
	}

	if errorCount > maxDetailedFilterErrors {
		logger.Warn().Msgf("%d further documents dropped without detailed logs", errorCount-maxDetailedFilterErrors)
	}

	return filtered, errorCount
}
