package trendings

import (
	"fmt"

	"pageview-analytics/internal/shared/svcerrors"
)

// TrendingService errors
const (
	codeInvalidTrendingCountry = "TRD_1000"

	codeInternalCountryRankingFailed  = "TRD_9000"
	codeInternalTrendingPublishFailed = "TRD_9001"
)

// errInvalidTrendingCountry returns an error for a country without trending configuration.
func errInvalidTrendingCountry(country string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidTrendingCountry, fmt.Sprintf("no trending configuration for country %q", country), nil)
}

// errInternalCountryRankingFailed returns an error when one country's ranking fails.
func errInternalCountryRankingFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCountryRankingFailed, fmt.Errorf("countryRankingFailed: %w", cause))
}

// errInternalTrendingPublishFailed returns an error when a ranked list cannot be stored.
func errInternalTrendingPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTrendingPublishFailed, fmt.Errorf("trendingPublishFailed: %w", cause))
}
