package http

import (
	"pageview-analytics/internal/shared/svcerrors"
)

// HTTP layer errors
const (
	codeInvalidRequestBody = "HTP_1000"
)

// errInvalidRequestBody returns an error for an unparseable request body.
func errInvalidRequestBody(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequestBody, "request body is not valid JSON", cause)
}
