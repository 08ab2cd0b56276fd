package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// APIError is the structured error payload returned to clients. Status picks
// the transport status and is excluded from the body: clients read the status
// from the transport layer, not the JSON.
type APIError struct {
	TraceID string `json:"trace_id"`
	// Timestamp is the capture time in UTC. Epoch millis would be smaller on
	// the wire, but operators read these by eye.
	Timestamp   time.Time `json:"timestamp"`
	Code        ErrorCode `json:"code"`
	Status      int       `json:"-"`
	Message     string    `json:"message"`
	Description string    `json:"description,omitempty"`
	Details     string    `json:"details,omitempty"`
}

// APIErrorResponse is the top-level error envelope. Success is always false
// on this path.
type APIErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

// Exposure controls whether operator-facing fields reach the client. Both
// default to on for development; production deployments disable them through
// configuration and read the full error from server logs instead.
type Exposure struct {
	Description bool `yaml:"description" mapstructure:"description"`
	Details     bool `yaml:"details" mapstructure:"details"`
}

// exposure is set once at startup via SetExposure; not safe for concurrent
// mutation afterwards.
var exposure = Exposure{Description: true, Details: true}

// SetExposure installs the deployment's exposure policy. Call before serving.
func SetExposure(e Exposure) {
	exposure = e
}

// Build constructs the single APIError for err, deriving every field from the
// error value and the exposure policy. It never fails: missing information
// degrades to absent fields, never to a placeholder error.
func Build(traceID string, err error) APIError {
	apiErr := APIError{
		TraceID:   traceID,
		Timestamp: time.Now().UTC(),
		Code:      CategoryOf(err),
		Status:    Status(err),
		Message:   MessageOf(err),
	}
	if exposure.Description {
		apiErr.Description = DescriptionOf(err)
	}
	if exposure.Details {
		apiErr.Details = DetailsOf(err)
	}
	return apiErr
}

// Error renders err as the uniform error envelope with the status derived
// from its category. This is the single entry point handlers call on every
// failure path; traceID is the caller's request-correlation id, passed
// through opaquely.
func Error(c *gin.Context, traceID string, err error) {
	apiErr := Build(traceID, err)
	c.JSON(apiErr.Status, APIErrorResponse{Success: false, Error: apiErr})
}
