package aggregators

import (
	"fmt"

	"pageview-analytics/internal/shared/svcerrors"
)

// AnalyticsService errors
const (
	codeInvalidRunParameters = "ANA_1000"

	codeInternalCountryProcessingFailed = "ANA_9000"
	codeInternalResultPublishFailed     = "ANA_9001"
)

// errInvalidRunParameters returns an error for unusable run parameters.
func errInvalidRunParameters(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRunParameters, msg, nil)
}

// errInternalCountryProcessingFailed returns an error when one country's pipeline fails.
func errInternalCountryProcessingFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCountryProcessingFailed, fmt.Errorf("countryProcessingFailed: %w", cause))
}

// errInternalResultPublishFailed returns an error when the computed result cannot be published.
func errInternalResultPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalResultPublishFailed, fmt.Errorf("resultPublishFailed: %w", cause))
}
