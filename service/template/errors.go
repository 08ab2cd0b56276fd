package template

import (
	"fmt"

	"github.com/skillsenselab/templateapi/response"
)

// ErrKind enumerates the failure variants of the template service.
type ErrKind int

const (
	ErrNotFound ErrKind = iota
	ErrInvalidInput
	ErrUnauthorized
	ErrInternal
)

// Error is the template service's typed failure. Each variant owns the data
// needed to render it; it is constructed where the failure is detected and
// consumed exactly once by the rendering layer.
type Error struct {
	Kind   ErrKind
	ID     string // resource id, set for ErrNotFound
	Reason string // validation context, set for ErrInvalidInput
	cause  error
}

// NotFound reports that no template exists under id.
func NotFound(id string) *Error { return &Error{Kind: ErrNotFound, ID: id} }

// InvalidInput reports a rejected request payload.
func InvalidInput(reason string) *Error { return &Error{Kind: ErrInvalidInput, Reason: reason} }

// Unauthorized reports missing or invalid credentials.
func Unauthorized() *Error { return &Error{Kind: ErrUnauthorized} }

// Internal reports an unexpected dependency failure, keeping cause on the
// chain for operator diagnostics.
func Internal(cause error) *Error { return &Error{Kind: ErrInternal, cause: cause} }

func (e *Error) Error() string {
	switch e.Kind {
	case ErrNotFound:
		return fmt.Sprintf("template not found with ID: %s", e.ID)
	case ErrInvalidInput:
		return "invalid request data"
	case ErrUnauthorized:
		return "authentication required"
	default:
		return "internal server error occurred"
	}
}

func (e *Error) Unwrap() error { return e.cause }

// Category classifies the variant; the rendering layer derives the HTTP
// status from this, never from the service directly.
func (e *Error) Category() response.ErrorCode {
	switch e.Kind {
	case ErrNotFound:
		return response.CodeNotFound
	case ErrInvalidInput:
		return response.CodeBadRequest
	case ErrUnauthorized:
		return response.CodeUnauthorized
	default:
		return response.CodeInternal
	}
}

// UserMessage overrides the default text only where it would confuse an end
// user; the remaining variants already read fine as-is.
func (e *Error) UserMessage() string {
	if e.Kind == ErrNotFound {
		return "The requested template could not be found"
	}
	return ""
}

// TechnicalDescription supplies one-line operator context per variant.
func (e *Error) TechnicalDescription() string {
	switch e.Kind {
	case ErrNotFound:
		return fmt.Sprintf("template with ID '%s' was not found in the database", e.ID)
	case ErrInvalidInput:
		return "request validation failed: " + e.Reason
	case ErrUnauthorized:
		return "JWT token missing, expired, or invalid"
	default:
		return ""
	}
}

// TechnicalDetails supplies full diagnostics for the lookup failure; other
// variants fall back to their cause chain.
func (e *Error) TechnicalDetails() string {
	if e.Kind == ErrNotFound {
		return fmt.Sprintf("template lookup failed for ID: %s; the query returned no results, so the template was deleted or the ID is incorrect", e.ID)
	}
	return ""
}
