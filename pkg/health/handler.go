package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// LivenessHandler answers /health/live. A running process is alive; it never
// consults the checkers.
func LivenessHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": StatusUp})
	}
}

// ReadinessHandler answers /health/ready by running every registered checker
// under the given timeout. One failing dependency flips the response to 503.
func ReadinessHandler(registry *Registry, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		report := registry.CheckAll(ctx)

		code := http.StatusOK
		if report.Status == StatusDown {
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, report)
	}
}
