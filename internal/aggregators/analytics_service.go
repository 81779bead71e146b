package aggregators

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pageview-analytics/internal/models"
	"pageview-analytics/internal/shared/loggers"
	"pageview-analytics/internal/shared/metrics"
	"pageview-analytics/internal/shared/svcerrors"
	"pageview-analytics/internal/shared/ulid"
	"pageview-analytics/internal/stores"
)

//go:generate mockgen -source=analytics_service.go -destination=./mocks/analytics_service_mock.go -package=mocks
type AnalyticsService interface {
	// Process recomputes the daily metrics for the given countries over the
	// trailing window of the given number of days, ending now. It never
	// publishes. A country whose pipeline fails is logged and omitted from
	// the result; the run only fails on unusable parameters.
	Process(ctx context.Context, countries []string, days int) (*models.Result, *svcerrors.ServiceError)

	// Run is Process followed by publishing. A publish failure returns both
	// the computed result and the error, so callers can tell a partial run
	// (computed but unpublished) from a successful one.
	Run(ctx context.Context, countries []string, days int) (*models.Result, *svcerrors.ServiceError)
}

// AnalyticsServiceOptions tunes the per-run fan-out.
type AnalyticsServiceOptions struct {
	// Workers bounds concurrent country pipelines. Values below 1 mean 1.
	Workers int
	// CountryTimeout bounds one country's fetch+compute; 0 disables the bound.
	// Guards the whole run against a single stalled collection read.
	CountryTimeout time.Duration
	// WriteAudit additionally stores each published result under a
	// run-scoped document ID.
	WriteAudit bool
}

type analyticsService struct {
	pageViewStore     stores.PageViewStore
	resultStore       stores.ProcessedResultStore
	rangeFilter       DateRangeFilter
	dailyBucketer     DailyBucketer
	rollingCalculator RollingCalculator

	workers        int
	countryTimeout time.Duration
	writeAudit     bool

	now func() time.Time
}

func NewAnalyticsService(
	pageViewStore stores.PageViewStore,
	resultStore stores.ProcessedResultStore,
	rangeFilter DateRangeFilter,
	dailyBucketer DailyBucketer,
	rollingCalculator RollingCalculator,
	opts AnalyticsServiceOptions,
) AnalyticsService {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	return &analyticsService{
		pageViewStore:     pageViewStore,
		resultStore:       resultStore,
		rangeFilter:       rangeFilter,
		dailyBucketer:     dailyBucketer,
		rollingCalculator: rollingCalculator,
		workers:           workers,
		countryTimeout:    opts.CountryTimeout,
		writeAudit:        opts.WriteAudit,
		now:               time.Now,
	}
}

func (s *analyticsService) Process(ctx context.Context, countries []string, days int) (*models.Result, *svcerrors.ServiceError) {
	if len(countries) == 0 {
		return nil, errInvalidRunParameters("at least one country is required")
	}
	if days < 1 {
		return nil, errInvalidRunParameters("days must be at least 1")
	}

	runID := ulid.NewULID()
	end := s.now().UTC()
	start := end.AddDate(0, 0, -days)

	runLogger := loggers.Ctx(ctx).With().Str(loggers.FieldRunID, runID).Logger()
	ctx = runLogger.WithContext(ctx)
	runLogger.Info().Msgf("processing %d countries from %s to %s",
		len(countries), models.DateOf(start), models.DateOf(end))

	result := &models.Result{
		RunID:        runID,
		ProcessedAt:  end,
		ByCountry:    make(map[string]models.MetricSeries, len(countries)),
		FilterErrors: make(map[string]int, len(countries)),
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	workerSlots := make(chan struct{}, s.workers)

	for _, country := range countries {
		wg.Add(1)
		go func(country string) {
			defer wg.Done()
			workerSlots <- struct{}{}
			defer func() { <-workerSlots }()

			series, errorCount, err := s.processCountry(ctx, country, start, end)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				svcErr := errInternalCountryProcessingFailed(err)
				runLogger.Error().
					Err(svcErr.Cause).
					Str(loggers.FieldCountry, country).
					Str(loggers.FieldErrorCode, svcErr.Code).
					Msg("country excluded from result")
				metricCountriesProcessedTotal.WithLabelValues(svcErr.Code).Inc()
				return
			}
			result.ByCountry[country] = series
			result.FilterErrors[country] = errorCount
			metricCountriesProcessedTotal.WithLabelValues(metrics.ValueNoError).Inc()
		}(country)
	}
	wg.Wait()

	result.All = combineCountrySeries(result.ByCountry)
	s.rollingCalculator.Apply(result.All)

	runLogger.Info().Msgf("processed %d/%d countries, %d days in combined series",
		len(result.ByCountry), len(countries), len(result.All))

	return result, nil
}

func (s *analyticsService) Run(ctx context.Context, countries []string, days int) (*models.Result, *svcerrors.ServiceError) {
	result, svcErr := s.Process(ctx, countries, days)
	if svcErr != nil {
		metricRunsTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	logger := loggers.Ctx(ctx)
	if err := s.resultStore.PublishLatest(ctx, result); err != nil {
		publishErr := errInternalResultPublishFailed(err)
		logger.Error().
			Err(publishErr.Cause).
			Str(loggers.FieldRunID, result.RunID).
			Str(loggers.FieldErrorCode, publishErr.Code).
			Msg("run computed but not published")
		metricRunsTotal.WithLabelValues(publishErr.Code).Inc()
		return result, publishErr
	}

	if s.writeAudit {
		// audit trail only, a failure never degrades the run
		if err := s.resultStore.WriteAudit(ctx, result); err != nil {
			logger.Warn().Err(err).Str(loggers.FieldRunID, result.RunID).Msg("audit document not written")
		}
	}

	logger.Info().Str(loggers.FieldRunID, result.RunID).Msg("run published")
	metricRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return result, nil
}

// processCountry runs fetch -> normalize+filter -> bucket -> rolling for one
// country collection.
func (s *analyticsService) processCountry(ctx context.Context, country string, start, end time.Time) (models.MetricSeries, int, error) {
	if s.countryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.countryTimeout)
		defer cancel()
	}
	countryLogger := loggers.Ctx(ctx).With().Str(loggers.FieldCountry, country).Logger()
	ctx = countryLogger.WithContext(ctx)

	rawEvents, err := s.pageViewStore.GetAll(ctx, country)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read pageviews: %w", err)
	}
	countryLogger.Info().Msgf("retrieved %d total documents", len(rawEvents))
	metricDocumentsReadTotal.WithLabelValues(country).Add(float64(len(rawEvents)))

	events, errorCount := s.rangeFilter.Filter(ctx, rawEvents, start, end)
	countryLogger.Info().Msgf("found %d documents within date range", len(events))
	if errorCount > 0 {
		countryLogger.Warn().Msgf("had %d errors while filtering", errorCount)
	}
	metricEventsInRangeTotal.WithLabelValues(country).Add(float64(len(events)))
	metricFilterErrorsTotal.WithLabelValues(country).Add(float64(errorCount))

	series := s.dailyBucketer.Bucket(events)
	s.rollingCalculator.Apply(series)
	countryLogger.Info().Msgf("processed metrics for %d days", len(series))

	return series, errorCount, nil
}

// combineCountrySeries sums per-day pageviews across countries over the union
// of their dates. Rolling and growth are left for the caller to recompute on
// the summed series; summing per-country rollups would be wrong whenever the
// countries' date sets differ.
func combineCountrySeries(byCountry map[string]models.MetricSeries) models.MetricSeries {
	all := make(models.MetricSeries)
	for _, series := range byCountry {
		for day, metric := range series {
			combined, exists := all[day]
			if !exists {
				combined = &models.DailyMetric{}
				all[day] = combined
			}
			combined.Pageviews += metric.Pageviews
		}
	}
	return all
}
