package response

import (
	"errors"
	"strings"
)

// ServiceError is the capability a domain error implements to be classified
// by this layer. Category must be pure and deterministic for a given value.
type ServiceError interface {
	error
	Category() ErrorCode
}

// UserMessager optionally overrides the client-facing message. Implement it
// only when the error's own text would confuse an end user; return "" to fall
// back to Error().
type UserMessager interface {
	UserMessage() string
}

// Describer optionally supplies one-line operator-facing context (which id,
// which field). Absence is meaningful: no extra context exists.
type Describer interface {
	TechnicalDescription() string
}

// Detailer optionally supplies full diagnostic text. When absent, the cause
// chain (via errors.Unwrap) is joined instead.
type Detailer interface {
	TechnicalDetails() string
}

// fallbackMessage is what clients see when a plain error reaches the
// rendering layer without the ServiceError capability. Never echo Error()
// of an unclassified error to clients.
const fallbackMessage = "An unexpected error occurred. Please try again or contact support."

// CategoryOf classifies err. Errors without the ServiceError capability are
// treated as internal failures.
func CategoryOf(err error) ErrorCode {
	var svcErr ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Category()
	}
	return CodeInternal
}

// Status derives the HTTP status from the error's category. It is never
// settable independently, so status and code cannot drift apart.
func Status(err error) int {
	return StatusOf(CategoryOf(err))
}

// MessageOf returns the client-facing message: the UserMessage override when
// present, otherwise the error's own text for classified errors, otherwise a
// safe generic message.
func MessageOf(err error) string {
	var um UserMessager
	if errors.As(err, &um) {
		if msg := um.UserMessage(); msg != "" {
			return msg
		}
	}
	var svcErr ServiceError
	if errors.As(err, &svcErr) {
		return err.Error()
	}
	return fallbackMessage
}

// DescriptionOf returns operator-facing context, or "" when the error
// supplies none. There is no synthesized fallback.
func DescriptionOf(err error) string {
	var d Describer
	if errors.As(err, &d) {
		return d.TechnicalDescription()
	}
	return ""
}

// DetailsOf returns full diagnostic text: the TechnicalDetails override when
// present, otherwise the newline-joined cause chain (immediate cause first,
// root cause last), or "" when neither exists.
func DetailsOf(err error) string {
	var d Detailer
	if errors.As(err, &d) {
		if details := d.TechnicalDetails(); details != "" {
			return details
		}
	}
	return joinCauses(err)
}

// joinCauses walks the Unwrap chain below err, collecting each cause's text.
// err itself is excluded; its text already backs the default message.
func joinCauses(err error) string {
	var causes []string
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		causes = append(causes, cause.Error())
	}
	return strings.Join(causes, "\n")
}
