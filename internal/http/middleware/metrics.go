package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/theUncluded/430Frontend/internal/metrics"
)

func Metrics(m *metrics.Storefront) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		m.ObserveRequest(handler, c.Writer.Status(), time.Since(start))
	}
}
