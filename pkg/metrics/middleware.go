package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GinMiddleware observes request duration and count per route template, so
// /returns/:return_id aggregates under one label instead of one per id.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		elapsed := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}

		HTTPRequestDuration.WithLabelValues(route, c.Request.Method, status).Observe(elapsed)
		HTTPRequestsTotal.WithLabelValues(route, c.Request.Method, status).Inc()
	}
}
