package endpoint

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/templateapi/response"
	"github.com/skillsenselab/templateapi/version"
)

// startTime records when the process started for uptime calculation.
var startTime = time.Now()

// Info reports service version and build information.
func Info(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v := version.Get()
		response.Success(c, gin.H{
			"service":    serviceName,
			"version":    v.Version,
			"git_commit": v.GitCommit,
			"build_time": v.BuildTime,
			"go_version": v.GoVersion,
			"uptime":     time.Since(startTime).String(),
		})
	}
}
