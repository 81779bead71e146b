package aggregators

import (
	"pageview-analytics/internal/models"
)

//go:generate mockgen -source=daily_bucketer.go -destination=./mocks/daily_bucketer_mock.go -package=mocks
type DailyBucketer interface {
	// Bucket groups events by UTC calendar day and computes per-day pageview
	// count, distinct visitor count, and total time-on-page. Days with no
	// events are absent from the result, never zero-filled. Rolling and growth
	// fields are left at zero for RollingCalculator to populate.
	Bucket(events []*models.NormalizedEvent) models.MetricSeries
}

type dailyBucketer struct{}

func NewDailyBucketer() DailyBucketer {
	return &dailyBucketer{}
}

func (b *dailyBucketer) Bucket(events []*models.NormalizedEvent) models.MetricSeries {
	series := make(models.MetricSeries)
	visitorsByDay := make(map[models.Date]map[string]struct{})

	for _, event := range events {
		day := models.DateOf(event.Timestamp)

		metric, exists := series[day]
		if !exists {
			metric = &models.DailyMetric{}
			series[day] = metric
			visitorsByDay[day] = make(map[string]struct{})
		}

		metric.Pageviews++
		metric.TotalTime += event.TimeOnPage
		visitorsByDay[day][event.VisitorID] = struct{}{}
	}

	for day, visitors := range visitorsByDay {
		series[day].UniqueVisitors = int64(len(visitors))
	}

	return series
}
