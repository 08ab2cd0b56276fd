// Package handler wires HTTP routes to the mock services. Handlers are
// pass-through glue: bind, validate, call the service, and hand any failure
// to the uniform error-rendering layer exactly once.
package handler

import (
	"github.com/skillsenselab/templateapi/response"
)

// bindError reports a request body that could not be decoded. The decode
// failure stays on the cause chain for operators.
type bindError struct {
	cause error
}

func (e *bindError) Error() string { return "invalid request data" }

func (e *bindError) Unwrap() error { return e.cause }

func (e *bindError) Category() response.ErrorCode { return response.CodeBadRequest }

func (e *bindError) TechnicalDescription() string { return "request body is not valid JSON" }
