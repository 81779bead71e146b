package stores_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"pageview-analytics/internal/models"
	docstoremocks "pageview-analytics/internal/shared/docstores/mocks"
	"pageview-analytics/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTrendingStore_SetTrending_WritesUppercaseCountryDocument(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	docStore := docstoremocks.NewMockStore(ctrl)
	store := stores.NewTrendingStore(docStore)

	var written any
	docStore.EXPECT().
		Set(gomock.Any(), "trendingContent", "SE", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, value any) error {
			written = value
			return nil
		})

	pages := []models.TrendingPage{
		{DomainName: "vasaloppet", Last30DaysViews: 42},
		{DomainName: "lidingoloppet", Last30DaysViews: 17},
	}
	require.NoError(t, store.SetTrending(context.Background(), "se", pages))

	raw, err := json.Marshal(written)
	require.NoError(t, err)

	var document map[string]any
	require.NoError(t, json.Unmarshal(raw, &document))
	assert.Contains(t, document, "races")
	assert.Contains(t, document, "updated_at")

	races := document["races"].([]any)
	require.Len(t, races, 2)
	first := races[0].(map[string]any)
	assert.Equal(t, "vasaloppet", first["domain_name"])
	assert.Equal(t, float64(42), first["last_30_days_views"])
}

func TestTrendingStore_SetTrending_WrapsStoreError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	docStore := docstoremocks.NewMockStore(ctrl)
	store := stores.NewTrendingStore(docStore)

	cause := errors.New("store unavailable")
	docStore.EXPECT().
		Set(gomock.Any(), "trendingContent", "NO", gomock.Any()).
		Return(cause)

	err := store.SetTrending(context.Background(), "no", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}
