package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	aggregatormocks "pageview-analytics/internal/aggregators/mocks"
	"pageview-analytics/internal/models"
	"pageview-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testRunDefaults = RunDefaults{
	Countries: []string{"se", "no"},
	Days:      60,
}

func TestRunHandler_Handle_UsesDefaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyticsService := aggregatormocks.NewMockAnalyticsService(ctrl)
	handler := NewRunHandler(mockAnalyticsService, testRunDefaults)

	req := httptest.NewRequest(http.MethodPost, "/v1/runs", nil)
	rr := httptest.NewRecorder()

	mockAnalyticsService.EXPECT().
		Run(gomock.Any(), []string{"se", "no"}, 60).
		Return(&models.Result{
			RunID:       "01J0000000000000000000TEST",
			ProcessedAt: time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC),
			ByCountry: map[string]models.MetricSeries{
				"se": {}, "no": {},
			},
			All:          models.MetricSeries{},
			FilterErrors: map[string]int{"se": 2, "no": 0},
		}, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"run_id": "01J0000000000000000000TEST",
		"processed_at": "2024-07-01T08:00:00Z",
		"countries_processed": 2,
		"days_in_series": 0,
		"filter_errors": {"se": 2, "no": 0}
	}`, rr.Body.String())
}

func TestRunHandler_Handle_BodyOverridesDefaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyticsService := aggregatormocks.NewMockAnalyticsService(ctrl)
	handler := NewRunHandler(mockAnalyticsService, testRunDefaults)

	body := []byte(`{"countries": ["dk"], "days": 7}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/runs", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	mockAnalyticsService.EXPECT().
		Run(gomock.Any(), []string{"dk"}, 7).
		Return(&models.Result{}, nil)

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRunHandler_Handle_InvalidBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyticsService := aggregatormocks.NewMockAnalyticsService(ctrl)
	handler := NewRunHandler(mockAnalyticsService, testRunDefaults)

	req := httptest.NewRequest(http.MethodPost, "/v1/runs", bytes.NewReader([]byte(`{not json`)))
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "HTP_1000", svcErr.Code)
}

func TestRunHandler_Handle_ServiceError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyticsService := aggregatormocks.NewMockAnalyticsService(ctrl)
	handler := NewRunHandler(mockAnalyticsService, testRunDefaults)

	req := httptest.NewRequest(http.MethodPost, "/v1/runs", nil)
	rr := httptest.NewRecorder()

	svcErr := svcerrors.NewInvalidArgumentError("ANA_1000", "days must be at least 1", nil)
	mockAnalyticsService.EXPECT().
		Run(gomock.Any(), []string{"se", "no"}, 60).
		Return(nil, svcErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	assert.Equal(t, svcErr, err)
}
