// Package apperr defines the typed errors the API surfaces to clients. Every
// rejection carries a machine-stable reason code plus the Portuguese display
// message shown by the front-end; raw internal errors never leave the server.
package apperr

import "net/http"

// Stable reason codes. The companion front-end switches on these, so they
// must never change once published.
const (
	CodeValidation       = "validation"
	CodeNotInCatalog     = "not_in_catalog"
	CodeStoreUnavailable = "store_unavailable"
	CodeNotFound         = "not_found"
	CodeInvalidJSON      = "invalid_json"
	CodeInternal         = "internal"
)

// Error is a client-facing rejection.
type Error struct {
	Code    string // machine-stable reason code
	Message string // localized display message
}

func (e *Error) Error() string { return e.Code + ": " + e.Message }

// Status maps the reason code to an HTTP status.
func (e *Error) Status() int {
	switch e.Code {
	case CodeValidation, CodeNotInCatalog, CodeInvalidJSON:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Validation builds a required-field/empty-input rejection.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// NotInCatalog builds a rejection for a track outside the official setlist.
func NotInCatalog(msg string) *Error {
	return &Error{Code: CodeNotInCatalog, Message: msg}
}

// NotFound builds a missing-resource rejection.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// InvalidJSON is returned when a request body cannot be decoded.
var InvalidJSON = &Error{Code: CodeInvalidJSON, Message: "JSON inválido"}

// StoreUnavailable is returned when a write cannot reach the data store.
// Reads degrade to empty results instead; only writes fail loudly.
var StoreUnavailable = &Error{Code: CodeStoreUnavailable, Message: "Banco de dados indisponível no momento"}
