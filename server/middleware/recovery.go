package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/templateapi/logger"
	"github.com/skillsenselab/templateapi/response"
)

// Recovery recovers from handler panics, logs the stack, and renders the
// uniform internal-error envelope so even a panic produces the standard
// error shape.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", map[string]interface{}{
					"error":     fmt.Sprintf("%v", r),
					"stack":     string(debug.Stack()),
					"path":      c.Request.URL.Path,
					"method":    c.Request.Method,
					"client_ip": c.ClientIP(),
					"trace_id":  GetTraceID(c),
				})
				response.Error(c, GetTraceID(c), fmt.Errorf("panic: %v", r))
				c.Abort()
			}
		}()
		c.Next()
	}
}
