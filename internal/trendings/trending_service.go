package trendings

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"pageview-analytics/internal/models"
	"pageview-analytics/internal/shared/configs"
	"pageview-analytics/internal/shared/loggers"
	"pageview-analytics/internal/shared/metrics"
	"pageview-analytics/internal/shared/svcerrors"
	"pageview-analytics/internal/stores"
)

// cutoffLayout is a prefix of every timestamp encoding the tracker has written.
// Lexicographic comparison against it orders correctly regardless of the stored
// string's fractional seconds or zone suffix.
const cutoffLayout = "2006-01-02T15:04:05"

//go:generate mockgen -source=trending_service.go -destination=./mocks/trending_service_mock.go -package=mocks
type TrendingService interface {
	// RankCountry ranks a country's content pages by views over the lookback
	// window: pageviews under the configured content path whose referrer
	// contains the configured listing page.
	RankCountry(ctx context.Context, country string) ([]models.TrendingPage, *svcerrors.ServiceError)

	// Run ranks and stores the trending list for every configured country. A
	// failed country is logged and skipped; Run only errors when no country
	// could be updated.
	Run(ctx context.Context) *svcerrors.ServiceError
}

type trendingService struct {
	pageViewStore stores.PageViewStore
	trendingStore stores.TrendingStore

	topK         int
	lookbackDays int
	countries    map[string]configs.TrendingCountryConfig

	now func() time.Time
}

func NewTrendingService(
	pageViewStore stores.PageViewStore,
	trendingStore stores.TrendingStore,
	cfg configs.TrendingConfig,
) TrendingService {
	return &trendingService{
		pageViewStore: pageViewStore,
		trendingStore: trendingStore,
		topK:          cfg.TopK,
		lookbackDays:  cfg.LookbackDays,
		countries:     cfg.Countries,
		now:           time.Now,
	}
}

func (s *trendingService) RankCountry(ctx context.Context, country string) ([]models.TrendingPage, *svcerrors.ServiceError) {
	countryConfig, ok := s.countries[country]
	if !ok {
		return nil, errInvalidTrendingCountry(country)
	}

	events, err := s.pageViewStore.QueryByPathPrefix(ctx, country, countryConfig.ContentPath)
	if err != nil {
		return nil, errInternalCountryRankingFailed(fmt.Errorf("failed to query content pageviews: %w", err))
	}

	cutoff := s.now().UTC().AddDate(0, 0, -s.lookbackDays)
	cutoffString := cutoff.Format(cutoffLayout)

	viewsByPage := make(map[string]int64)
	for _, event := range events {
		if !strings.Contains(event.Referrer(), countryConfig.ListPage) {
			continue
		}
		if !s.inLookback(event, cutoff, cutoffString) {
			continue
		}
		page := pageName(event.Path(), countryConfig.ContentPath)
		if page == "" {
			continue
		}
		viewsByPage[page]++
	}

	pages := make([]models.TrendingPage, 0, len(viewsByPage))
	for page, views := range viewsByPage {
		pages = append(pages, models.TrendingPage{DomainName: page, Last30DaysViews: views})
	}
	sort.Slice(pages, func(i, j int) bool {
		if pages[i].Last30DaysViews != pages[j].Last30DaysViews {
			return pages[i].Last30DaysViews > pages[j].Last30DaysViews
		}
		return pages[i].DomainName < pages[j].DomainName
	})
	if len(pages) > s.topK {
		pages = pages[:s.topK]
	}
	return pages, nil
}

func (s *trendingService) Run(ctx context.Context) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)

	countries := make([]string, 0, len(s.countries))
	for country := range s.countries {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	updated := 0
	for _, country := range countries {
		if err := s.runCountry(ctx, country); err != nil {
			logger.Error().
				Err(err.Cause).
				Str(loggers.FieldCountry, country).
				Str(loggers.FieldErrorCode, err.Code).
				Msg("trending list not updated")
			metricCountriesRankedTotal.WithLabelValues(err.Code).Inc()
			continue
		}
		metricCountriesRankedTotal.WithLabelValues(metrics.ValueNoError).Inc()
		updated++
	}

	if updated == 0 {
		runErr := errInternalCountryRankingFailed(fmt.Errorf("all %d countries failed", len(countries)))
		metricRunsTotal.WithLabelValues(runErr.Code).Inc()
		return runErr
	}

	logger.Info().Msgf("updated trending lists for %d/%d countries", updated, len(countries))
	metricRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return nil
}

func (s *trendingService) runCountry(ctx context.Context, country string) *svcerrors.ServiceError {
	countryLogger := loggers.Ctx(ctx).With().Str(loggers.FieldCountry, country).Logger()
	ctx = countryLogger.WithContext(ctx)

	pages, svcErr := s.RankCountry(ctx, country)
	if svcErr != nil {
		return svcErr
	}
	countryLogger.Info().Msgf("ranked %d trending pages", len(pages))
	metricPagesRankedTotal.WithLabelValues(country).Add(float64(len(pages)))

	if err := s.trendingStore.SetTrending(ctx, country, pages); err != nil {
		return errInternalTrendingPublishFailed(err)
	}
	return nil
}

// inLookback reports whether the event was visited on or after the cutoff.
// String timestamps are compared lexicographically to match how they were
// historically queried; native timestamps are compared as instants.
func (s *trendingService) inLookback(event models.RawEvent, cutoff time.Time, cutoffString string) bool {
	visited := event.VisitedTimestamp()
	switch visited.Kind {
	case models.TimestampString:
		return visited.String >= cutoffString
	case models.TimestampNative:
		return !visited.Native.Before(cutoff)
	}
	return false
}

// pageName extracts the first path segment under the content path, the page's
// domain name. The listing root itself yields "".
func pageName(path, contentPath string) string {
	rest := strings.TrimPrefix(path, contentPath)
	if rest == path {
		return ""
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
