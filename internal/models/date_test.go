package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"pageview-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_RoundTrips(t *testing.T) {
	t.Parallel()

	day, err := models.ParseDate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", day.String())
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), day.Time())
}

func TestParseDate_RejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "2024-6-1", "10/06/2024", "2024-06-10T00:00:00Z", "not-a-date"} {
		_, err := models.ParseDate(value)
		assert.Error(t, err, value)
	}
}

func TestDateOf_NormalizesToUTCMidnight(t *testing.T) {
	t.Parallel()

	oslo, err := time.LoadLocation("Europe/Oslo")
	require.NoError(t, err)

	// 00:30 in Oslo during summer is still the previous day in UTC.
	day := models.DateOf(time.Date(2024, 6, 10, 0, 30, 0, 0, oslo))
	assert.Equal(t, "2024-06-09", day.String())
}

func TestDateOf_EqualInstantsAreEqualMapKeys(t *testing.T) {
	t.Parallel()

	parsed, err := models.ParseDate("2024-06-10")
	require.NoError(t, err)
	constructed := models.DateOf(time.Date(2024, 6, 10, 15, 4, 5, 0, time.UTC))

	counts := map[models.Date]int{}
	counts[parsed]++
	counts[constructed]++
	assert.Len(t, counts, 1)
}

func TestDate_AddDays_CrossesMonthBoundary(t *testing.T) {
	t.Parallel()

	day, err := models.ParseDate("2024-06-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-07-02", day.AddDays(3).String())
	assert.Equal(t, "2024-06-22", day.AddDays(-7).String())
}

func TestDate_MarshalsAsMapKey(t *testing.T) {
	t.Parallel()

	day, err := models.ParseDate("2024-06-10")
	require.NoError(t, err)

	raw, err := json.Marshal(map[models.Date]int{day: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"2024-06-10": 3}`, string(raw))

	var decoded map[models.Date]int
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 3, decoded[day])
}

func TestSortDates_OrdersByCalendarDate(t *testing.T) {
	t.Parallel()

	mustParse := func(value string) models.Date {
		day, err := models.ParseDate(value)
		require.NoError(t, err)
		return day
	}

	dates := []models.Date{
		mustParse("2024-06-10"),
		mustParse("2023-12-31"),
		mustParse("2024-01-01"),
	}
	models.SortDates(dates)

	assert.Equal(t, "2023-12-31", dates[0].String())
	assert.Equal(t, "2024-01-01", dates[1].String())
	assert.Equal(t, "2024-06-10", dates[2].String())
}
