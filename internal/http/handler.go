package http

import "net/http"

// AppHttpHandler is an http handler that returns an error to be translated
// into an HTTP error response by errorHandlingAdapter.
type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}
