package stores_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pageview-analytics/internal/models"
	docstoremocks "pageview-analytics/internal/shared/docstores/mocks"
	"pageview-analytics/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleResult() *models.Result {
	day := models.DateOf(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	return &models.Result{
		RunID:       "01J0000000000000000000TEST",
		ProcessedAt: time.Date(2024, 6, 11, 8, 30, 0, 0, time.UTC),
		ByCountry: map[string]models.MetricSeries{
			"se": {
				day: &models.DailyMetric{
					Pageviews:      12,
					UniqueVisitors: 5,
					TotalTime:      341.5,
					Rolling7:       12,
					Rolling28:      12,
				},
			},
		},
		All: models.MetricSeries{
			day: &models.DailyMetric{
				Pageviews: 12,
				Rolling7:  12,
				Rolling28: 12,
				Growth7:   3.25,
			},
		},
	}
}

func TestProcessedResultStore_PublishLatest_WritesDocumentShape(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	docStore := docstoremocks.NewMockStore(ctrl)
	store := stores.NewProcessedResultStore(docStore)

	var written any
	docStore.EXPECT().
		Set(gomock.Any(), "processed_analytics", "latest", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, value any) error {
			written = value
			return nil
		})

	require.NoError(t, store.PublishLatest(context.Background(), sampleResult()))

	raw, err := json.Marshal(written)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"timestamp": "2024-06-11T08:30:00Z",
		"data": {
			"all": {
				"daily": {
					"2024-06-10": {
						"pageviews": 12,
						"rolling_7": 12,
						"rolling_28": 12,
						"growth_7": 3.25,
						"growth_28": 0
					}
				}
			},
			"by_country": {
				"se": {
					"daily": {
						"2024-06-10": {
							"pageviews": 12,
							"unique_visitors": 5,
							"total_time": 341.5,
							"rolling_7": 12,
							"rolling_28": 12,
							"growth_7": 0,
							"growth_28": 0
						}
					}
				}
			}
		}
	}`, string(raw))
}

func TestProcessedResultStore_PublishLatest_OmitsPerVisitorFieldsInCombinedSeries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	docStore := docstoremocks.NewMockStore(ctrl)
	store := stores.NewProcessedResultStore(docStore)

	var written any
	docStore.EXPECT().
		Set(gomock.Any(), "processed_analytics", "latest", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, value any) error {
			written = value
			return nil
		})

	require.NoError(t, store.PublishLatest(context.Background(), sampleResult()))

	raw, err := json.Marshal(written)
	require.NoError(t, err)

	var document map[string]any
	require.NoError(t, json.Unmarshal(raw, &document))
	allDaily := document["data"].(map[string]any)["all"].(map[string]any)["daily"].(map[string]any)
	entry := allDaily["2024-06-10"].(map[string]any)
	assert.NotContains(t, entry, "unique_visitors")
	assert.NotContains(t, entry, "total_time")
}

func TestProcessedResultStore_PublishLatest_WrapsStoreError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	docStore := docstoremocks.NewMockStore(ctrl)
	store := stores.NewProcessedResultStore(docStore)

	cause := errors.New("disk full")
	docStore.EXPECT().
		Set(gomock.Any(), "processed_analytics", "latest", gomock.Any()).
		Return(cause)

	err := store.PublishLatest(context.Background(), sampleResult())
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestProcessedResultStore_WriteAudit_UsesRunScopedDocumentID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	docStore := docstoremocks.NewMockStore(ctrl)
	store := stores.NewProcessedResultStore(docStore)

	docStore.EXPECT().
		Set(gomock.Any(), "processed_analytics", "run_01J0000000000000000000TEST", gomock.Any()).
		Return(nil)

	require.NoError(t, store.WriteAudit(context.Background(), sampleResult()))
}
