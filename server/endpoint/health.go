// Package endpoint provides the default operational endpoints.
package endpoint

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/templateapi/response"
)

// Health reports service liveness through the standard success envelope.
func Health(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Success(c, gin.H{
			"status":    "healthy",
			"service":   serviceName,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
