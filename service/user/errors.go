package user

import (
	"fmt"

	"github.com/skillsenselab/templateapi/response"
)

// ErrKind enumerates the failure variants of the user service.
type ErrKind int

const (
	ErrNotFound ErrKind = iota
	ErrInvalidEmail
	ErrAlreadyExists
	ErrDatabase
)

// Error is the user service's typed failure.
type Error struct {
	Kind  ErrKind
	ID    string // user id, set for ErrNotFound
	Email string // offending input, set for ErrInvalidEmail
	cause error
}

// NotFound reports that no user exists under id.
func NotFound(id string) *Error { return &Error{Kind: ErrNotFound, ID: id} }

// InvalidEmail reports a malformed email address.
func InvalidEmail(email string) *Error { return &Error{Kind: ErrInvalidEmail, Email: email} }

// AlreadyExists reports a uniqueness conflict on creation.
func AlreadyExists() *Error { return &Error{Kind: ErrAlreadyExists} }

// Database reports a failed storage operation, keeping cause on the chain.
func Database(cause error) *Error { return &Error{Kind: ErrDatabase, cause: cause} }

func (e *Error) Error() string {
	switch e.Kind {
	case ErrNotFound:
		return fmt.Sprintf("user not found with ID: %s", e.ID)
	case ErrInvalidEmail:
		return fmt.Sprintf("invalid email format: %s", e.Email)
	case ErrAlreadyExists:
		return "user already exists"
	default:
		return "database operation failed"
	}
}

func (e *Error) Unwrap() error { return e.cause }

// Category classifies the variant. Uniqueness conflicts are a distinct
// client-visible category rather than a generic bad request.
func (e *Error) Category() response.ErrorCode {
	switch e.Kind {
	case ErrNotFound:
		return response.CodeNotFound
	case ErrInvalidEmail:
		return response.CodeBadRequest
	case ErrAlreadyExists:
		return response.CodeConflict
	default:
		return response.CodeInternal
	}
}

// UserMessage rewrites the variants whose default text is too mechanical for
// end users; "user already exists" reads fine as-is.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case ErrNotFound:
		return "The requested user could not be found"
	case ErrInvalidEmail:
		return "Please provide a valid email address"
	case ErrDatabase:
		return "Unable to process your request at this time"
	default:
		return ""
	}
}

// TechnicalDescription supplies one-line operator context per variant.
func (e *Error) TechnicalDescription() string {
	switch e.Kind {
	case ErrNotFound:
		return fmt.Sprintf("user with ID '%s' was not found in the database", e.ID)
	case ErrInvalidEmail:
		return fmt.Sprintf("email '%s' does not match the required format", e.Email)
	case ErrAlreadyExists:
		return "user creation failed: email address already registered"
	default:
		return "database operation failed"
	}
}
