package response

import "net/http"

// ErrorCode is a stable, client-visible error category, decoupled from the
// HTTP status it maps to. Clients branch on this field; richer failure detail
// belongs in description/details, never in new codes.
type ErrorCode string

const (
	// CodeNotFound indicates the requested resource does not exist.
	CodeNotFound ErrorCode = "NotFound"
	// CodeBadRequest indicates the request was malformed or failed validation.
	CodeBadRequest ErrorCode = "BadRequest"
	// CodeUnauthorized indicates missing or invalid credentials.
	CodeUnauthorized ErrorCode = "UnAuthorized"
	// CodeConflict indicates the request conflicts with current resource state.
	CodeConflict ErrorCode = "Conflict"
	// CodeInternal indicates an unexpected server-side failure.
	CodeInternal ErrorCode = "InternalServerError"
)

// Codes lists every declared ErrorCode. Tests iterate this to enforce that
// the status table stays total: adding a code requires adding its status in
// the same change.
var Codes = []ErrorCode{
	CodeNotFound,
	CodeBadRequest,
	CodeUnauthorized,
	CodeConflict,
	CodeInternal,
}

var statusByCode = map[ErrorCode]int{
	CodeNotFound:     http.StatusNotFound,
	CodeBadRequest:   http.StatusBadRequest,
	CodeUnauthorized: http.StatusUnauthorized,
	CodeConflict:     http.StatusConflict,
	CodeInternal:     http.StatusInternalServerError,
}

// StatusOf returns the HTTP status for a code. It is total over Codes;
// unknown values fall back to 500 so a miswired code can never produce a
// zero status on the wire.
func StatusOf(code ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
