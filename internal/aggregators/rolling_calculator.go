package aggregators

import (
	"math"

	"pageview-analytics/internal/models"
)

const (
	windowShort = 7
	windowLong  = 28
)

//go:generate mockgen -source=rolling_calculator.go -destination=./mocks/rolling_calculator_mock.go -package=mocks
type RollingCalculator interface {
	// Apply populates the rolling-7/28 sums and growth-7/28 percentages of
	// every day in the series, in place.
	//
	// Windows are positional by default: the N-day window ends at a day's
	// position in the date-sorted series and covers the N most recent
	// populated days, so a window can span more than N calendar days when
	// days are missing. rolling_N stays 0 until N populated days exist;
	// growth_N stays 0 until 2N days exist or while the preceding window
	// sums to 0.
	Apply(series models.MetricSeries)
}

type rollingCalculator struct {
	// calendarBased flips the window semantics: missing calendar days between
	// the first and last populated day count as zero-pageview positions, so a
	// window always spans exactly N calendar days.
	calendarBased bool
}

func NewRollingCalculator(calendarBased bool) RollingCalculator {
	return &rollingCalculator{calendarBased: calendarBased}
}

func (c *rollingCalculator) Apply(series models.MetricSeries) {
	dates := series.SortedDates()
	if len(dates) == 0 {
		return
	}

	var pageviews []int64
	positionOf := make(map[models.Date]int, len(dates))

	if c.calendarBased {
		last := dates[len(dates)-1]
		for day := dates[0]; !last.Before(day); day = day.AddDays(1) {
			if metric, populated := series[day]; populated {
				positionOf[day] = len(pageviews)
				pageviews = append(pageviews, metric.Pageviews)
			} else {
				pageviews = append(pageviews, 0)
			}
		}
	} else {
		pageviews = make([]int64, len(dates))
		for i, day := range dates {
			positionOf[day] = i
			pageviews[i] = series[day].Pageviews
		}
	}

	prefixSums := make([]int64, len(pageviews)+1)
	for i, count := range pageviews {
		prefixSums[i+1] = prefixSums[i] + count
	}

	for _, day := range dates {
		position := positionOf[day]
		metric := series[day]
		metric.Rolling7, metric.Growth7 = windowAt(prefixSums, position, windowShort)
		metric.Rolling28, metric.Growth28 = windowAt(prefixSums, position, windowLong)
	}
}

// windowAt returns the trailing n-position sum ending at position and its
// period-over-period growth percent, applying the sufficiency gates.
func windowAt(prefixSums []int64, position, n int) (int64, float64) {
	if position+1 < n {
		return 0, 0
	}
	current := prefixSums[position+1] - prefixSums[position+1-n]

	if position+1 < 2*n {
		return current, 0
	}
	previous := prefixSums[position+1-n] - prefixSums[position+1-2*n]
	if previous == 0 {
		// no comparable baseline reads as zero growth, not infinity
		return current, 0
	}

	growth := math.Round((float64(current)/float64(previous)-1)*100*100) / 100
	return current, growth
}
