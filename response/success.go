package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http/httpguts"
)

// SuccessResponse is the top-level success envelope. Success is always true
// on this path; error responses use APIErrorResponse instead. These are the
// only two response shapes.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// Success sends data in the success envelope with status 200.
func Success(c *gin.Context, data any) {
	SuccessWithStatus(c, http.StatusOK, data)
}

// SuccessWithStatus sends data in the success envelope with a caller-chosen
// status (e.g. 201 for creations).
func SuccessWithStatus(c *gin.Context, status int, data any) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}

// SuccessWithHeaders sends data in the 200 success envelope with additional
// response headers. Malformed header names or values are a programmer error
// and are rejected before anything is written, rather than silently dropped.
func SuccessWithHeaders(c *gin.Context, data any, headers map[string]string) error {
	for name, value := range headers {
		if !httpguts.ValidHeaderFieldName(name) {
			return fmt.Errorf("response: invalid header name %q", name)
		}
		if !httpguts.ValidHeaderFieldValue(value) {
			return fmt.Errorf("response: invalid value for header %q", name)
		}
	}
	for name, value := range headers {
		c.Header(name, value)
	}
	Success(c, data)
	return nil
}
