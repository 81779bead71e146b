package stores

import (
	"context"
	"fmt"
	"time"

	"pageview-analytics/internal/models"
	"pageview-analytics/internal/shared/docstores"
)

const (
	processedCollection = "processed_analytics"
	latestDocumentID    = "latest"
	auditDocumentPrefix = "run_"
)

// processedDocument is the persisted result shape. Per-country daily entries
// carry all metrics; the combined "all" entries carry pageviews plus rolling
// and growth only, since unique visitors and time-on-page do not aggregate
// meaningfully across countries.
type processedDocument struct {
	Timestamp time.Time     `json:"timestamp"`
	Data      processedData `json:"data"`
}

type processedData struct {
	All       combinedSeriesDocument           `json:"all"`
	ByCountry map[string]countrySeriesDocument `json:"by_country"`
}

type combinedSeriesDocument struct {
	Daily map[models.Date]combinedDailyDocument `json:"daily"`
}

type countrySeriesDocument struct {
	Daily map[models.Date]countryDailyDocument `json:"daily"`
}

type combinedDailyDocument struct {
	Pageviews int64   `json:"pageviews"`
	Rolling7  int64   `json:"rolling_7"`
	Rolling28 int64   `json:"rolling_28"`
	Growth7   float64 `json:"growth_7"`
	Growth28  float64 `json:"growth_28"`
}

type countryDailyDocument struct {
	Pageviews      int64   `json:"pageviews"`
	UniqueVisitors int64   `json:"unique_visitors"`
	TotalTime      float64 `json:"total_time"`
	Rolling7       int64   `json:"rolling_7"`
	Rolling28      int64   `json:"rolling_28"`
	Growth7        float64 `json:"growth_7"`
	Growth28       float64 `json:"growth_28"`
}

//go:generate mockgen -source=processed_result_store.go -destination=./mocks/processed_result_store_mock.go -package=mocks
type ProcessedResultStore interface {
	// PublishLatest writes the result to the well-known "latest" document,
	// fully replacing prior content.
	PublishLatest(ctx context.Context, result *models.Result) error

	// WriteAudit writes the same document under a run-scoped ID. Audit
	// documents are never read back by the jobs.
	WriteAudit(ctx context.Context, result *models.Result) error
}

type processedResultStore struct {
	docStore docstores.Store
}

func NewProcessedResultStore(docStore docstores.Store) ProcessedResultStore {
	return &processedResultStore{docStore: docStore}
}

func (s *processedResultStore) PublishLatest(ctx context.Context, result *models.Result) error {
	if err := s.docStore.Set(ctx, processedCollection, latestDocumentID, buildDocument(result)); err != nil {
		return fmt.Errorf("failed to publish latest result: %w", err)
	}
	return nil
}

func (s *processedResultStore) WriteAudit(ctx context.Context, result *models.Result) error {
	documentID := auditDocumentPrefix + result.RunID
	if err := s.docStore.Set(ctx, processedCollection, documentID, buildDocument(result)); err != nil {
		return fmt.Errorf("failed to write audit document %q: %w", documentID, err)
	}
	return nil
}

func buildDocument(result *models.Result) processedDocument {
	allDaily := make(map[models.Date]combinedDailyDocument, len(result.All))
	for day, metric := range result.All {
		allDaily[day] = combinedDailyDocument{
			Pageviews: metric.Pageviews,
			Rolling7:  metric.Rolling7,
			Rolling28: metric.Rolling28,
			Growth7:   metric.Growth7,
			Growth28:  metric.Growth28,
		}
	}

	byCountry := make(map[string]countrySeriesDocument, len(result.ByCountry))
	for country, series := range result.ByCountry {
		daily := make(map[models.Date]countryDailyDocument, len(series))
		for day, metric := range series {
			daily[day] = countryDailyDocument{
				Pageviews:      metric.Pageviews,
				UniqueVisitors: metric.UniqueVisitors,
				TotalTime:      metric.TotalTime,
				Rolling7:       metric.Rolling7,
				Rolling28:      metric.Rolling28,
				Growth7:        metric.Growth7,
				Growth28:       metric.Growth28,
			}
		}
		byCountry[country] = countrySeriesDocument{Daily: daily}
	}

	return processedDocument{
		Timestamp: result.ProcessedAt,
		Data: processedData{
			All:       combinedSeriesDocument{Daily: allDaily},
			ByCountry: byCountry,
		},
	}
}
