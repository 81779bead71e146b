package aggregators

import (
	"testing"
	"time"

	"pageview-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalizedEvent(timestamp time.Time, visitorID string, timeOnPage float64) *models.NormalizedEvent {
	return &models.NormalizedEvent{Timestamp: timestamp, VisitorID: visitorID, TimeOnPage: timeOnPage}
}

func TestDailyBucketer_Bucket_GroupsByUTCCalendarDay(t *testing.T) {
	t.Parallel()

	bucketer := NewDailyBucketer()

	day1 := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)
	day2 := time.Date(2024, 6, 2, 0, 30, 0, 0, time.UTC)

	series := bucketer.Bucket([]*models.NormalizedEvent{
		normalizedEvent(day1, "a", 10),
		normalizedEvent(day1.Add(10*time.Minute), "b", 20),
		normalizedEvent(day2, "a", 5),
	})

	require.Len(t, series, 2)

	june1, _ := models.ParseDate("2024-06-01")
	june2, _ := models.ParseDate("2024-06-02")

	require.Contains(t, series, june1)
	assert.Equal(t, int64(2), series[june1].Pageviews)
	assert.Equal(t, int64(2), series[june1].UniqueVisitors)
	assert.Equal(t, 30.0, series[june1].TotalTime)

	require.Contains(t, series, june2)
	assert.Equal(t, int64(1), series[june2].Pageviews)
	assert.Equal(t, int64(1), series[june2].UniqueVisitors)
	assert.Equal(t, 5.0, series[june2].TotalTime)
}

func TestDailyBucketer_Bucket_UnknownVisitorsCollapseIntoOne(t *testing.T) {
	t.Parallel()

	bucketer := NewDailyBucketer()

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	series := bucketer.Bucket([]*models.NormalizedEvent{
		normalizedEvent(at, models.VisitorUnknown, 0),
		normalizedEvent(at.Add(time.Hour), models.VisitorUnknown, 0),
		normalizedEvent(at.Add(2*time.Hour), "visitor-1", 0),
	})

	june1, _ := models.ParseDate("2024-06-01")
	require.Contains(t, series, june1)
	assert.Equal(t, int64(3), series[june1].Pageviews)
	// the two anonymous events are one synthetic visitor, not two
	assert.Equal(t, int64(2), series[june1].UniqueVisitors)
}

func TestDailyBucketer_Bucket_RepeatVisitorCountedOnce(t *testing.T) {
	t.Parallel()

	bucketer := NewDailyBucketer()

	at := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	series := bucketer.Bucket([]*models.NormalizedEvent{
		normalizedEvent(at, "visitor-1", 10),
		normalizedEvent(at.Add(time.Hour), "visitor-1", 15),
		normalizedEvent(at.Add(2*time.Hour), "visitor-1", 20),
	})

	june1, _ := models.ParseDate("2024-06-01")
	require.Contains(t, series, june1)
	assert.Equal(t, int64(3), series[june1].Pageviews)
	assert.Equal(t, int64(1), series[june1].UniqueVisitors)
	assert.Equal(t, 45.0, series[june1].TotalTime)
}

func TestDailyBucketer_Bucket_NumericVisitorIDsStayDistinct(t *testing.T) {
	t.Parallel()

	normalizer := NewEventNormalizer()
	bucketer := NewDailyBucketer()

	// numeric IDs arrive as float64 from JSON decoding
	var events []*models.NormalizedEvent
	for _, id := range []float64{111, 222} {
		event, err := normalizer.Normalize(rawEvent(map[string]any{
			"visitedTimestamp": "2024-06-01T12:00:00Z",
			"dailyId":          id,
		}))
		require.NoError(t, err)
		events = append(events, event)
	}

	series := bucketer.Bucket(events)

	june1, _ := models.ParseDate("2024-06-01")
	require.Contains(t, series, june1)
	assert.Equal(t, int64(2), series[june1].UniqueVisitors)
}

func TestDailyBucketer_Bucket_NoEventsNoDays(t *testing.T) {
	t.Parallel()

	bucketer := NewDailyBucketer()

	series := bucketer.Bucket(nil)

	assert.Empty(t, series)
}
