package models

// DailyMetric holds the derived metrics for one populated calendar day.
//
// Rolling7/Rolling28 are trailing sums of pageviews over the 7 and 28
// most-recent populated days ending at this day, zero until enough history
// exists. Growth7/Growth28 are the percentage change (2-decimal rounded)
// between the current rolling window and the window immediately preceding it,
// zero until 2N days of history exist or when the previous window is empty.
type DailyMetric struct {
	Pageviews      int64   `json:"pageviews"`
	UniqueVisitors int64   `json:"unique_visitors"`
	TotalTime      float64 `json:"total_time"`
	Rolling7       int64   `json:"rolling_7"`
	Rolling28      int64   `json:"rolling_28"`
	Growth7        float64 `json:"growth_7"`
	Growth28       float64 `json:"growth_28"`
}

// MetricSeries maps populated days to their metrics. Days with zero events are
// absent, never zero-filled. Map iteration order is meaningless; consumers that
// need order go through SortedDates.
type MetricSeries map[Date]*DailyMetric

// SortedDates returns the series' days ordered ascending by calendar date.
func (s MetricSeries) SortedDates() []Date {
	dates := make([]Date, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	SortDates(dates)
	return dates
}
