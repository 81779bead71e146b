package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pageview-analytics/internal/shared/svcerrors"
	trendingmocks "pageview-analytics/internal/trendings/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTrendingRunHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrendingService := trendingmocks.NewMockTrendingService(ctrl)
	handler := NewTrendingRunHandler(mockTrendingService)

	req := httptest.NewRequest(http.MethodPost, "/v1/trending-runs", nil)
	rr := httptest.NewRecorder()

	mockTrendingService.EXPECT().Run(gomock.Any()).Return(nil)

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestTrendingRunHandler_Handle_ServiceError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrendingService := trendingmocks.NewMockTrendingService(ctrl)
	handler := NewTrendingRunHandler(mockTrendingService)

	req := httptest.NewRequest(http.MethodPost, "/v1/trending-runs", nil)
	rr := httptest.NewRecorder()

	svcErr := svcerrors.NewInternalError("TRD_9000", assert.AnError)
	mockTrendingService.EXPECT().Run(gomock.Any()).Return(svcErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	assert.Equal(t, svcErr, err)
}
