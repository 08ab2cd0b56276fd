package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/skillsenselab/templateapi/logger"
	"github.com/skillsenselab/templateapi/observability"
)

// Metrics records per-request count and duration through the global meter
// provider. When no meter provider is installed the instruments are no-ops.
func Metrics() gin.HandlerFunc {
	meter := observability.Meter("templateapi/http")

	requests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Completed HTTP requests"))
	if err != nil {
		logger.Warn("metrics disabled", logger.ErrorFields("middleware.metrics", err))
		return func(c *gin.Context) { c.Next() }
	}
	duration, err := meter.Float64Histogram("http.server.duration",
		metric.WithDescription("HTTP request duration"),
		metric.WithUnit("ms"))
	if err != nil {
		logger.Warn("metrics disabled", logger.ErrorFields("middleware.metrics", err))
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := metric.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", c.FullPath()),
			attribute.String("http.status", fmt.Sprintf("%d", c.Writer.Status())),
		)
		ctx := c.Request.Context()
		requests.Add(ctx, 1, attrs)
		duration.Record(ctx, float64(time.Since(start).Microseconds())/1000.0, attrs)
	}
}
