package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// quietRoutes are polled by infrastructure; they log at debug.
var quietRoutes = map[string]bool{
	"/healthz": true,
	"/metrics": true,
}

// Logger emits one http_request record per request. The route template
// is logged instead of the raw URL so product ids and query strings do not
// fan out the log index.
func Logger(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		case quietRoutes[route]:
			level = slog.LevelDebug
		}
		if !l.Enabled(c.Request.Context(), level) {
			return
		}

		attrs := make([]slog.Attr, 0, 10)
		attrs = append(attrs,
			slog.String("request_id", GetRequestID(c)),
			slog.String("method", c.Request.Method),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes", c.Writer.Size()),
		)
		if id := GetCartID(c); id != "" {
			attrs = append(attrs, slog.String("cart_id", id))
		}
		if loc := c.Writer.Header().Get("Location"); loc != "" {
			attrs = append(attrs, slog.String("location", loc))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		l.LogAttrs(c.Request.Context(), level, "http_request", attrs...)
	}
}
